// Copyright 2026 Kanbanly Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/kanbanly/workspace-service/internal/types"
)

func (s *Storage) CreateWorkspace(ctx context.Context, w *types.Workspace) (*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateWorkspace")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	var created types.Workspace
	var description sql.NullString
	err = s.db.Statement(ctx).
		Insert("workspaces").
		Columns("id", "name", "slug", "description").
		Values(id, w.Name, w.Slug, nullable(w.Description)).
		Suffix("RETURNING id, name, slug, description, created_at, updated_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.Name, &created.Slug, &description, &created.CreatedAt, &created.UpdatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert workspace: %w", err)
	}

	created.Description = description.String
	return &created, nil
}

func (s *Storage) GetWorkspaceByID(ctx context.Context, id string) (*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetWorkspaceByID")
	defer span.End()

	var w types.Workspace
	var description sql.NullString
	err := s.db.Statement(ctx).
		Select("id", "name", "slug", "description", "created_at", "updated_at").
		From("workspaces").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&w.ID, &w.Name, &w.Slug, &description, &w.CreatedAt, &w.UpdatedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}

	w.Description = description.String
	return &w, nil
}

func (s *Storage) GetWorkspaceIDBySlug(ctx context.Context, slug string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetWorkspaceIDBySlug")
	defer span.End()

	var id string
	err := s.db.Statement(ctx).
		Select("id").
		From("workspaces").
		Where(sq.Eq{"slug": slug}).
		QueryRowContext(ctx).
		Scan(&id)

	if err != nil {
		if isNoRows(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to look up slug: %w", err)
	}

	return id, nil
}

func (s *Storage) CountWorkspacesOwnedByUser(ctx context.Context, userID string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountWorkspacesOwnedByUser")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("workspace_members").
		Where(sq.Eq{"user_id": userID, "role": types.RoleOwner}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count owned workspaces: %w", err)
	}

	return count, nil
}

func (s *Storage) WorkspaceNameExistsForUser(ctx context.Context, name, userID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.WorkspaceNameExistsForUser")
	defer span.End()

	var exists bool
	err := s.db.Statement(ctx).
		Select().
		Column("EXISTS (SELECT 1 FROM workspaces w JOIN workspace_members m ON w.id = m.workspace_id WHERE w.name = ? AND m.user_id = ?)", name, userID).
		QueryRowContext(ctx).
		Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("failed to check workspace name: %w", err)
	}

	return exists, nil
}

func (s *Storage) ListWorkspacesByUserID(ctx context.Context, userID string) ([]*types.WorkspaceSummary, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListWorkspacesByUserID")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(
			"w.id", "w.name", "w.slug", "w.description", "w.created_at", "w.updated_at",
			"m.role",
			"(SELECT COUNT(*) FROM workspace_members c WHERE c.workspace_id = w.id) AS member_count",
		).
		From("workspaces w").
		Join("workspace_members m ON w.id = m.workspace_id").
		Where(sq.Eq{"m.user_id": userID})

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}
	defer rows.Close()

	var summaries []*types.WorkspaceSummary
	for rows.Next() {
		var ws types.WorkspaceSummary
		var description sql.NullString
		if err := rows.Scan(
			&ws.ID, &ws.Name, &ws.Slug, &description, &ws.CreatedAt, &ws.UpdatedAt,
			&ws.UserRole, &ws.MemberCount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan workspace: %w", err)
		}
		ws.Description = description.String
		summaries = append(summaries, &ws)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return summaries, nil
}

func (s *Storage) UpdateWorkspace(ctx context.Context, id string, fields map[string]any) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateWorkspace")
	defer span.End()

	if len(fields) == 0 {
		return nil
	}

	fields["updated_at"] = sq.Expr("NOW()")

	res, err := s.db.Statement(ctx).
		Update("workspaces").
		SetMap(fields).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("failed to update workspace: %w", err)
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

func (s *Storage) DeleteWorkspace(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteWorkspace")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("workspaces").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete workspace: %w", err)
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
