// Copyright 2026 Kanbanly Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// User is reference data owned by the external authentication core. The
// workspace service never creates or mutates user rows.
type User struct {
	ID       string `db:"id"`
	Email    string `db:"email"`
	Username string `db:"username"`
}

type Workspace struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Slug        string    `db:"slug"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type WorkspaceMember struct {
	ID          string    `db:"id"`
	WorkspaceID string    `db:"workspace_id"`
	UserID      string    `db:"user_id"`
	Role        Role      `db:"role"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// MemberDetail is a member row joined with its user record.
type MemberDetail struct {
	WorkspaceMember
	Email    string
	Username string
}

// WorkspaceSummary is a workspace as seen by one of its members.
type WorkspaceSummary struct {
	Workspace
	MemberCount int
	UserRole    Role
}

type WorkspaceInvitation struct {
	ID          string           `db:"id"`
	WorkspaceID string           `db:"workspace_id"`
	Email       string           `db:"email"`
	Role        Role             `db:"role"`
	Token       string           `db:"token"`
	Status      InvitationStatus `db:"status"`
	InvitedByID string           `db:"invited_by_id"`
	CreatedAt   time.Time        `db:"created_at"`
	UpdatedAt   time.Time        `db:"updated_at"`
	ExpiresAt   time.Time        `db:"expires_at"`
}

type Board struct {
	ID          string          `db:"id"`
	WorkspaceID string          `db:"workspace_id"`
	Name        string          `db:"name"`
	Description string          `db:"description"`
	Color       string          `db:"color"`
	Visibility  BoardVisibility `db:"visibility"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

type BoardMember struct {
	BoardID   string    `db:"board_id"`
	UserID    string    `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
}

// Activity is an append-only audit record. Rows are written in the same
// transaction as the mutation they document and are never updated or
// deleted afterwards.
type Activity struct {
	ID          string         `db:"id"`
	Action      ActivityAction `db:"action"`
	Description string         `db:"description"`
	UserID      string         `db:"user_id"`
	WorkspaceID string         `db:"workspace_id"`
	BoardID     string         `db:"board_id"`
	CardID      string         `db:"card_id"`
	Metadata    map[string]any `db:"metadata"`
	CreatedAt   time.Time      `db:"created_at"`
}
