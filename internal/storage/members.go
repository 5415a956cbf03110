// Copyright 2026 Kanbanly Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/kanbanly/workspace-service/internal/types"
)

func (s *Storage) AddWorkspaceMember(ctx context.Context, workspaceID, userID string, role types.Role) (*types.WorkspaceMember, error) {
	ctx, span := s.tracer.Start(ctx, "storage.AddWorkspaceMember")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	var m types.WorkspaceMember
	err = s.db.Statement(ctx).
		Insert("workspace_members").
		Columns("id", "workspace_id", "user_id", "role").
		Values(id, workspaceID, userID, role).
		Suffix("RETURNING id, workspace_id, user_id, role, created_at, updated_at").
		QueryRowContext(ctx).
		Scan(&m.ID, &m.WorkspaceID, &m.UserID, &m.Role, &m.CreatedAt, &m.UpdatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	return &m, nil
}

func (s *Storage) GetWorkspaceMember(ctx context.Context, workspaceID, userID string) (*types.WorkspaceMember, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetWorkspaceMember")
	defer span.End()

	var m types.WorkspaceMember
	err := s.db.Statement(ctx).
		Select("id", "workspace_id", "user_id", "role", "created_at", "updated_at").
		From("workspace_members").
		Where(sq.Eq{"workspace_id": workspaceID, "user_id": userID}).
		QueryRowContext(ctx).
		Scan(&m.ID, &m.WorkspaceID, &m.UserID, &m.Role, &m.CreatedAt, &m.UpdatedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return &m, nil
}

func (s *Storage) GetMemberByEmail(ctx context.Context, workspaceID, email string) (*types.MemberDetail, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMemberByEmail")
	defer span.End()

	var m types.MemberDetail
	err := s.db.Statement(ctx).
		Select("m.id", "m.workspace_id", "m.user_id", "m.role", "m.created_at", "m.updated_at", "u.email", "u.username").
		From("workspace_members m").
		Join("users u ON m.user_id = u.id").
		Where(sq.Eq{"m.workspace_id": workspaceID, "u.email": email}).
		QueryRowContext(ctx).
		Scan(&m.ID, &m.WorkspaceID, &m.UserID, &m.Role, &m.CreatedAt, &m.UpdatedAt, &m.Email, &m.Username)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get member by email: %w", err)
	}

	return &m, nil
}

func (s *Storage) ListWorkspaceMembers(ctx context.Context, workspaceID string) ([]*types.MemberDetail, error) {
	return s.listMembers(ctx, "storage.ListWorkspaceMembers", sq.Eq{"m.workspace_id": workspaceID})
}

func (s *Storage) ListMembersByRole(ctx context.Context, workspaceID string, role types.Role) ([]*types.MemberDetail, error) {
	return s.listMembers(ctx, "storage.ListMembersByRole", sq.Eq{"m.workspace_id": workspaceID, "m.role": role})
}

func (s *Storage) listMembers(ctx context.Context, spanName string, where sq.Eq) ([]*types.MemberDetail, error) {
	ctx, span := s.tracer.Start(ctx, spanName)
	defer span.End()

	query := s.db.Statement(ctx).
		Select("m.id", "m.workspace_id", "m.user_id", "m.role", "m.created_at", "m.updated_at", "u.email", "u.username").
		From("workspace_members m").
		Join("users u ON m.user_id = u.id").
		Where(where).
		OrderBy("m.created_at ASC")

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []*types.MemberDetail
	for rows.Next() {
		var m types.MemberDetail
		if err := rows.Scan(&m.ID, &m.WorkspaceID, &m.UserID, &m.Role, &m.CreatedAt, &m.UpdatedAt, &m.Email, &m.Username); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}

func (s *Storage) RemoveWorkspaceMember(ctx context.Context, memberID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.RemoveWorkspaceMember")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("workspace_members").
		Where(sq.Eq{"id": memberID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}
