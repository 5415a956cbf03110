// Copyright 2026 Kanbanly Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitation

import (
	"context"
	"time"

	"github.com/kanbanly/workspace-service/internal/types"
	"github.com/kanbanly/workspace-service/pkg/activities"
)

type ServiceInterface interface {
	IssueBatch(ctx context.Context, inviter *types.User, workspaceID string, entries []BatchEntry) (*BatchResult, error)
	Accept(ctx context.Context, user *types.User, token string) (*types.WorkspaceMember, error)
	CancelOrRemove(ctx context.Context, requester *types.User, workspaceID, targetEmail string) error
	ListAll(ctx context.Context, requester *types.User, workspaceID string, sortBy Sort) ([]*Entry, error)
	ValidateToken(ctx context.Context, token string) (*TokenInfo, error)
}

type StorageInterface interface {
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetWorkspaceByID(ctx context.Context, id string) (*types.Workspace, error)

	AddWorkspaceMember(ctx context.Context, workspaceID, userID string, role types.Role) (*types.WorkspaceMember, error)
	GetWorkspaceMember(ctx context.Context, workspaceID, userID string) (*types.WorkspaceMember, error)
	GetMemberByEmail(ctx context.Context, workspaceID, email string) (*types.MemberDetail, error)
	ListWorkspaceMembers(ctx context.Context, workspaceID string) ([]*types.MemberDetail, error)
	ListMembersByRole(ctx context.Context, workspaceID string, role types.Role) ([]*types.MemberDetail, error)
	RemoveWorkspaceMember(ctx context.Context, memberID string) error

	CreateInvitation(ctx context.Context, inv *types.WorkspaceInvitation) (*types.WorkspaceInvitation, error)
	RefreshInvitation(ctx context.Context, id, token string, role types.Role, expiresAt time.Time) error
	GetInvitationByEmail(ctx context.Context, workspaceID, email string) (*types.WorkspaceInvitation, error)
	GetInvitationByToken(ctx context.Context, token string) (*types.WorkspaceInvitation, error)
	SetInvitationStatus(ctx context.Context, id string, status types.InvitationStatus) error
	CancelConsumedInvitations(ctx context.Context, workspaceID, email string) error
	FindCancelableInvitation(ctx context.Context, workspaceID, email string) (*types.WorkspaceInvitation, error)
	ExpirePendingInvitations(ctx context.Context, workspaceID string, now time.Time) (int64, error)
	ListInvitationsByWorkspaceID(ctx context.Context, workspaceID string) ([]*types.WorkspaceInvitation, error)
}

type AuthzInterface interface {
	RequireRole(ctx context.Context, workspaceID, userID string, allowedRoles ...types.Role) (*types.WorkspaceMember, error)
}

type ActivitiesInterface interface {
	Log(ctx context.Context, e activities.Entry) error
}

type TxManagerInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

type MailerInterface interface {
	SendInvitation(ctx context.Context, to, inviterName, workspaceName, token string) error
}
