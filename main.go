// Copyright 2026 Kanbanly Ltd.
// SPDX-License-Identifier: AGPL-3.0

package main

import "github.com/kanbanly/workspace-service/cmd"

func main() {
	cmd.Execute()
}
