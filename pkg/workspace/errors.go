// Copyright 2026 Kanbanly Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workspace

import (
	"errors"
)

var (
	ErrWorkspaceLimit = errors.New("workspace limit reached (max 10)")
	ErrDuplicateName  = errors.New("a workspace with this name already exists for this user")
	ErrNotFound       = errors.New("workspace not found")

	// ErrSlugGeneration means the bounded retry loop ran out of
	// candidates, which indicates a data or generator problem rather
	// than a user error.
	ErrSlugGeneration = errors.New("could not generate a unique slug")
)
