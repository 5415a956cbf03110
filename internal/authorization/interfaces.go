// Copyright 2026 Kanbanly Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/kanbanly/workspace-service/internal/types"
)

type CheckerInterface interface {
	RequireRole(ctx context.Context, workspaceID, userID string, allowedRoles ...types.Role) (*types.WorkspaceMember, error)
	RequireMembership(ctx context.Context, workspaceID, userID string) (*types.WorkspaceMember, error)
	CheckBoardAccess(ctx context.Context, boardID, userID string) (*types.Board, error)
}

type StorageInterface interface {
	GetWorkspaceMember(ctx context.Context, workspaceID, userID string) (*types.WorkspaceMember, error)
	GetBoardByID(ctx context.Context, id string) (*types.Board, error)
	GetBoardMember(ctx context.Context, boardID, userID string) (*types.BoardMember, error)
}
