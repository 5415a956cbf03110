// Copyright 2026 Kanbanly Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workspace

import (
	"context"

	"github.com/kanbanly/workspace-service/internal/types"
	"github.com/kanbanly/workspace-service/pkg/activities"
)

type ServiceInterface interface {
	Create(ctx context.Context, user *types.User, name, description string) (*types.Workspace, error)
	Update(ctx context.Context, user *types.User, workspaceID string, req UpdateRequest) (*types.Workspace, error)
	Delete(ctx context.Context, user *types.User, workspaceID string) error
	List(ctx context.Context, userID string) ([]*types.WorkspaceSummary, error)
	Get(ctx context.Context, workspaceID, userID string) (*Detail, error)
}

type StorageInterface interface {
	CreateWorkspace(ctx context.Context, w *types.Workspace) (*types.Workspace, error)
	GetWorkspaceByID(ctx context.Context, id string) (*types.Workspace, error)
	GetWorkspaceIDBySlug(ctx context.Context, slug string) (string, error)
	CountWorkspacesOwnedByUser(ctx context.Context, userID string) (int, error)
	WorkspaceNameExistsForUser(ctx context.Context, name, userID string) (bool, error)
	ListWorkspacesByUserID(ctx context.Context, userID string) ([]*types.WorkspaceSummary, error)
	UpdateWorkspace(ctx context.Context, id string, fields map[string]any) error
	DeleteWorkspace(ctx context.Context, id string) error
	AddWorkspaceMember(ctx context.Context, workspaceID, userID string, role types.Role) (*types.WorkspaceMember, error)
	ListWorkspaceMembers(ctx context.Context, workspaceID string) ([]*types.MemberDetail, error)
}

type AuthzInterface interface {
	RequireRole(ctx context.Context, workspaceID, userID string, allowedRoles ...types.Role) (*types.WorkspaceMember, error)
	RequireMembership(ctx context.Context, workspaceID, userID string) (*types.WorkspaceMember, error)
}

type ActivitiesInterface interface {
	Log(ctx context.Context, e activities.Entry) error
}

// TxManagerInterface scopes a function to one database transaction.
type TxManagerInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}
