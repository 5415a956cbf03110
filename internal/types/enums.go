// Copyright 2026 Kanbanly Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

// Role is the per-workspace role held by a member. There is no implicit
// hierarchy: permission checks match against an explicit allow-list.
type Role string

const (
	RoleOwner  Role = "OWNER"
	RoleAdmin  Role = "ADMIN"
	RoleMember Role = "MEMBER"
	RoleViewer Role = "VIEWER"
)

func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleMember, RoleViewer:
		return true
	}
	return false
}

// InvitationStatus is the invitation lifecycle state. CANCELLED is
// terminal. EXPIRED is materialized lazily on read, never by a timer.
type InvitationStatus string

const (
	InvitationPending   InvitationStatus = "PENDING"
	InvitationConsumed  InvitationStatus = "CONSUMED"
	InvitationExpired   InvitationStatus = "EXPIRED"
	InvitationCancelled InvitationStatus = "CANCELLED"
)

func (s InvitationStatus) Valid() bool {
	switch s {
	case InvitationPending, InvitationConsumed, InvitationExpired, InvitationCancelled:
		return true
	}
	return false
}

// BoardVisibility selects the board access cascade tier.
type BoardVisibility string

const (
	BoardPublic    BoardVisibility = "PUBLIC"
	BoardWorkspace BoardVisibility = "WORKSPACE"
	BoardPrivate   BoardVisibility = "PRIVATE"
)

func (v BoardVisibility) Valid() bool {
	switch v {
	case BoardPublic, BoardWorkspace, BoardPrivate:
		return true
	}
	return false
}

// ActivityAction enumerates audit log actions.
type ActivityAction string

const (
	ActionWorkspaceCreated    ActivityAction = "WORKSPACE_CREATED"
	ActionWorkspaceUpdated    ActivityAction = "WORKSPACE_UPDATED"
	ActionWorkspaceDeleted    ActivityAction = "WORKSPACE_DELETED"
	ActionBoardCreated        ActivityAction = "BOARD_CREATED"
	ActionBoardUpdated        ActivityAction = "BOARD_UPDATED"
	ActionBoardDeleted        ActivityAction = "BOARD_DELETED"
	ActionInvitationSent      ActivityAction = "INVITATION_SENT"
	ActionInvitationRefreshed ActivityAction = "INVITATION_REFRESHED"
	ActionInvitationCanceled  ActivityAction = "INVITATION_CANCELED"
	ActionMemberAdded         ActivityAction = "MEMBER_ADDED"
	ActionMemberRemoved       ActivityAction = "MEMBER_REMOVED"
)
