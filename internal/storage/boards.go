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

func (s *Storage) CreateBoard(ctx context.Context, b *types.Board) (*types.Board, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateBoard")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	var created types.Board
	var description, color sql.NullString
	err = s.db.Statement(ctx).
		Insert("boards").
		Columns("id", "workspace_id", "name", "description", "color", "visibility").
		Values(id, b.WorkspaceID, b.Name, nullable(b.Description), nullable(b.Color), b.Visibility).
		Suffix("RETURNING id, workspace_id, name, description, color, visibility, created_at, updated_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.WorkspaceID, &created.Name, &description, &color, &created.Visibility, &created.CreatedAt, &created.UpdatedAt)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert board: %w", err)
	}

	created.Description = description.String
	created.Color = color.String
	return &created, nil
}

func (s *Storage) GetBoardByID(ctx context.Context, id string) (*types.Board, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetBoardByID")
	defer span.End()

	var b types.Board
	var description, color sql.NullString
	err := s.db.Statement(ctx).
		Select("id", "workspace_id", "name", "description", "color", "visibility", "created_at", "updated_at").
		From("boards").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&b.ID, &b.WorkspaceID, &b.Name, &description, &color, &b.Visibility, &b.CreatedAt, &b.UpdatedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get board: %w", err)
	}

	b.Description = description.String
	b.Color = color.String
	return &b, nil
}

func (s *Storage) CountBoardsByWorkspaceID(ctx context.Context, workspaceID string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountBoardsByWorkspaceID")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("boards").
		Where(sq.Eq{"workspace_id": workspaceID}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count boards: %w", err)
	}

	return count, nil
}

// ListBoardsForUser returns the boards in a workspace the user may see:
// WORKSPACE and PUBLIC boards plus PRIVATE boards they hold a board
// membership on. Workspace membership is checked by the caller.
func (s *Storage) ListBoardsForUser(ctx context.Context, workspaceID, userID string) ([]*types.Board, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListBoardsForUser")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("id", "workspace_id", "name", "description", "color", "visibility", "created_at", "updated_at").
		From("boards").
		Where(sq.Eq{"workspace_id": workspaceID}).
		Where(sq.Or{
			sq.Eq{"visibility": []types.BoardVisibility{types.BoardWorkspace, types.BoardPublic}},
			sq.And{
				sq.Eq{"visibility": types.BoardPrivate},
				sq.Expr("EXISTS (SELECT 1 FROM board_members bm WHERE bm.board_id = boards.id AND bm.user_id = ?)", userID),
			},
		}).
		OrderBy("created_at ASC")

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list boards: %w", err)
	}
	defer rows.Close()

	var boards []*types.Board
	for rows.Next() {
		var b types.Board
		var description, color sql.NullString
		if err := rows.Scan(&b.ID, &b.WorkspaceID, &b.Name, &description, &color, &b.Visibility, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan board: %w", err)
		}
		b.Description = description.String
		b.Color = color.String
		boards = append(boards, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return boards, nil
}

func (s *Storage) UpdateBoard(ctx context.Context, id string, fields map[string]any) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateBoard")
	defer span.End()

	if len(fields) == 0 {
		return nil
	}

	fields["updated_at"] = sq.Expr("NOW()")

	res, err := s.db.Statement(ctx).
		Update("boards").
		SetMap(fields).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update board: %w", err)
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

func (s *Storage) DeleteBoard(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteBoard")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("boards").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete board: %w", err)
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

func (s *Storage) GetBoardMember(ctx context.Context, boardID, userID string) (*types.BoardMember, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetBoardMember")
	defer span.End()

	var m types.BoardMember
	err := s.db.Statement(ctx).
		Select("board_id", "user_id", "created_at").
		From("board_members").
		Where(sq.Eq{"board_id": boardID, "user_id": userID}).
		QueryRowContext(ctx).
		Scan(&m.BoardID, &m.UserID, &m.CreatedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get board member: %w", err)
	}

	return &m, nil
}

func (s *Storage) AddBoardMember(ctx context.Context, boardID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.AddBoardMember")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("board_members").
		Columns("board_id", "user_id").
		Values(boardID, userID).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to add board member: %w", err)
	}

	return nil
}
