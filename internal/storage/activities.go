// Copyright 2026 Kanbanly Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/kanbanly/workspace-service/internal/db"
	"github.com/kanbanly/workspace-service/internal/types"
)

// CreateActivity appends an audit record. It runs through Statement(ctx),
// so when the caller is inside a transaction scope the insert is part of
// the same atomic unit as the mutation it documents.
func (s *Storage) CreateActivity(ctx context.Context, a *types.Activity) (*types.Activity, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateActivity")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	metadata, err := json.Marshal(a.Metadata)
	if err != nil {
		return nil, fmt.Errorf("failed to encode activity metadata: %w", err)
	}

	var created types.Activity
	var workspaceID, boardID, cardID sql.NullString
	var rawMetadata []byte
	err = s.db.Statement(ctx).
		Insert("activities").
		Columns("id", "action", "description", "user_id", "workspace_id", "board_id", "card_id", "metadata").
		Values(id, a.Action, a.Description, a.UserID, nullable(a.WorkspaceID), nullable(a.BoardID), nullable(a.CardID), metadata).
		Suffix("RETURNING id, action, description, user_id, workspace_id, board_id, card_id, metadata, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.Action, &created.Description, &created.UserID, &workspaceID, &boardID, &cardID, &rawMetadata, &created.CreatedAt)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert activity: %w", err)
	}

	created.WorkspaceID = workspaceID.String
	created.BoardID = boardID.String
	created.CardID = cardID.String
	if len(rawMetadata) > 0 {
		if err := json.Unmarshal(rawMetadata, &created.Metadata); err != nil {
			return nil, fmt.Errorf("failed to decode activity metadata: %w", err)
		}
	}

	return &created, nil
}

func (s *Storage) ListActivitiesByWorkspaceID(ctx context.Context, workspaceID string, page, size int64) ([]*types.Activity, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListActivitiesByWorkspaceID")
	defer span.End()

	pageSize := db.PageSize(size)

	query := s.db.Statement(ctx).
		Select("id", "action", "description", "user_id", "workspace_id", "board_id", "card_id", "metadata", "created_at").
		From("activities").
		Where(sq.Eq{"workspace_id": workspaceID}).
		OrderBy("created_at DESC").
		Offset(db.Offset(page, pageSize)).
		Limit(pageSize)

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	var activities []*types.Activity
	for rows.Next() {
		var a types.Activity
		var wsID, boardID, cardID sql.NullString
		var rawMetadata []byte
		if err := rows.Scan(&a.ID, &a.Action, &a.Description, &a.UserID, &wsID, &boardID, &cardID, &rawMetadata, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		a.WorkspaceID = wsID.String
		a.BoardID = boardID.String
		a.CardID = cardID.String
		if len(rawMetadata) > 0 {
			if err := json.Unmarshal(rawMetadata, &a.Metadata); err != nil {
				return nil, fmt.Errorf("failed to decode activity metadata: %w", err)
			}
		}
		activities = append(activities, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return activities, nil
}
