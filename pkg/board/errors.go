// Copyright 2026 Kanbanly Ltd.
// SPDX-License-Identifier: AGPL-3.0

package board

import (
	"errors"
)

var (
	ErrBoardLimit        = errors.New("board limit reached for this workspace (max 10)")
	ErrInvalidVisibility = errors.New("visibility must be PUBLIC, WORKSPACE or PRIVATE")
)
