// Copyright 2026 Kanbanly Ltd.
// SPDX-License-Identifier: AGPL-3.0

package board

import (
	"context"

	"github.com/kanbanly/workspace-service/internal/types"
	"github.com/kanbanly/workspace-service/pkg/activities"
)

type ServiceInterface interface {
	Create(ctx context.Context, user *types.User, workspaceID string, req CreateRequest) (*types.Board, error)
	Get(ctx context.Context, userID, boardID string) (*types.Board, error)
	ListInWorkspace(ctx context.Context, userID, workspaceID string) ([]*types.Board, error)
	Update(ctx context.Context, user *types.User, boardID string, req UpdateRequest) (*types.Board, error)
	Delete(ctx context.Context, user *types.User, boardID string) error
}

type StorageInterface interface {
	GetWorkspaceByID(ctx context.Context, id string) (*types.Workspace, error)

	CreateBoard(ctx context.Context, b *types.Board) (*types.Board, error)
	GetBoardByID(ctx context.Context, id string) (*types.Board, error)
	CountBoardsByWorkspaceID(ctx context.Context, workspaceID string) (int, error)
	ListBoardsForUser(ctx context.Context, workspaceID, userID string) ([]*types.Board, error)
	UpdateBoard(ctx context.Context, id string, fields map[string]any) error
	DeleteBoard(ctx context.Context, id string) error
	AddBoardMember(ctx context.Context, boardID, userID string) error
}

type AuthzInterface interface {
	RequireRole(ctx context.Context, workspaceID, userID string, allowedRoles ...types.Role) (*types.WorkspaceMember, error)
	RequireMembership(ctx context.Context, workspaceID, userID string) (*types.WorkspaceMember, error)
	CheckBoardAccess(ctx context.Context, boardID, userID string) (*types.Board, error)
}

type ActivitiesInterface interface {
	Log(ctx context.Context, e activities.Entry) error
}

type TxManagerInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}
