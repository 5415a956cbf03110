// Copyright 2026 Kanbanly Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/kanbanly/workspace-service/internal/types"
)

type StorageInterface interface {
	// Users (reference data, read only)
	GetUserByID(ctx context.Context, id string) (*types.User, error)

	// Workspaces
	CreateWorkspace(ctx context.Context, w *types.Workspace) (*types.Workspace, error)
	GetWorkspaceByID(ctx context.Context, id string) (*types.Workspace, error)
	GetWorkspaceIDBySlug(ctx context.Context, slug string) (string, error)
	CountWorkspacesOwnedByUser(ctx context.Context, userID string) (int, error)
	WorkspaceNameExistsForUser(ctx context.Context, name, userID string) (bool, error)
	ListWorkspacesByUserID(ctx context.Context, userID string) ([]*types.WorkspaceSummary, error)
	UpdateWorkspace(ctx context.Context, id string, fields map[string]any) error
	DeleteWorkspace(ctx context.Context, id string) error

	// Workspace members
	AddWorkspaceMember(ctx context.Context, workspaceID, userID string, role types.Role) (*types.WorkspaceMember, error)
	GetWorkspaceMember(ctx context.Context, workspaceID, userID string) (*types.WorkspaceMember, error)
	GetMemberByEmail(ctx context.Context, workspaceID, email string) (*types.MemberDetail, error)
	ListWorkspaceMembers(ctx context.Context, workspaceID string) ([]*types.MemberDetail, error)
	ListMembersByRole(ctx context.Context, workspaceID string, role types.Role) ([]*types.MemberDetail, error)
	RemoveWorkspaceMember(ctx context.Context, memberID string) error

	// Invitations
	CreateInvitation(ctx context.Context, inv *types.WorkspaceInvitation) (*types.WorkspaceInvitation, error)
	RefreshInvitation(ctx context.Context, id, token string, role types.Role, expiresAt time.Time) error
	GetInvitationByEmail(ctx context.Context, workspaceID, email string) (*types.WorkspaceInvitation, error)
	GetInvitationByToken(ctx context.Context, token string) (*types.WorkspaceInvitation, error)
	SetInvitationStatus(ctx context.Context, id string, status types.InvitationStatus) error
	CancelConsumedInvitations(ctx context.Context, workspaceID, email string) error
	FindCancelableInvitation(ctx context.Context, workspaceID, email string) (*types.WorkspaceInvitation, error)
	ExpirePendingInvitations(ctx context.Context, workspaceID string, now time.Time) (int64, error)
	ListInvitationsByWorkspaceID(ctx context.Context, workspaceID string) ([]*types.WorkspaceInvitation, error)

	// Boards
	CreateBoard(ctx context.Context, b *types.Board) (*types.Board, error)
	GetBoardByID(ctx context.Context, id string) (*types.Board, error)
	CountBoardsByWorkspaceID(ctx context.Context, workspaceID string) (int, error)
	ListBoardsForUser(ctx context.Context, workspaceID, userID string) ([]*types.Board, error)
	UpdateBoard(ctx context.Context, id string, fields map[string]any) error
	DeleteBoard(ctx context.Context, id string) error
	GetBoardMember(ctx context.Context, boardID, userID string) (*types.BoardMember, error)
	AddBoardMember(ctx context.Context, boardID, userID string) error

	// Activities
	CreateActivity(ctx context.Context, a *types.Activity) (*types.Activity, error)
	ListActivitiesByWorkspaceID(ctx context.Context, workspaceID string, page, size int64) ([]*types.Activity, error)
}
