// Copyright 2026 Kanbanly Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package board manages boards inside a workspace, including the
// per-workspace quota and the three-tier visibility model enforced by
// the authorization checker.
package board

import (
	"context"
	"fmt"

	"github.com/kanbanly/workspace-service/internal/diff"
	"github.com/kanbanly/workspace-service/internal/logging"
	"github.com/kanbanly/workspace-service/internal/monitoring"
	"github.com/kanbanly/workspace-service/internal/tracing"
	"github.com/kanbanly/workspace-service/internal/types"
	"github.com/kanbanly/workspace-service/pkg/activities"
)

const maxBoardsPerWorkspace = 10

type CreateRequest struct {
	Name        string
	Description string
	Color       string
	Visibility  types.BoardVisibility
}

type UpdateRequest struct {
	Name        *string
	Description *string
	Color       *string
	Visibility  *types.BoardVisibility
}

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage    StorageInterface
	authz      AuthzInterface
	activities ActivitiesInterface
	tx         TxManagerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Create adds a board to the workspace. PRIVATE boards start with the
// creator as their only board member, otherwise nobody could open them.
func (s *Service) Create(ctx context.Context, user *types.User, workspaceID string, req CreateRequest) (*types.Board, error) {
	ctx, span := s.tracer.Start(ctx, "board.Service.Create")
	defer span.End()

	if _, err := s.authz.RequireRole(ctx, workspaceID, user.ID, types.RoleOwner, types.RoleAdmin); err != nil {
		return nil, err
	}

	visibility := req.Visibility
	if visibility == "" {
		visibility = types.BoardWorkspace
	}
	if !visibility.Valid() {
		return nil, ErrInvalidVisibility
	}

	count, err := s.storage.CountBoardsByWorkspaceID(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to count boards: %w", err)
	}
	if count >= maxBoardsPerWorkspace {
		return nil, ErrBoardLimit
	}

	workspace, err := s.storage.GetWorkspaceByID(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	var created *types.Board
	err = s.tx.WithTx(ctx, func(txCtx context.Context) error {
		created, err = s.storage.CreateBoard(txCtx, &types.Board{
			WorkspaceID: workspaceID,
			Name:        req.Name,
			Description: req.Description,
			Color:       req.Color,
			Visibility:  visibility,
		})
		if err != nil {
			return err
		}

		if visibility == types.BoardPrivate {
			if err := s.storage.AddBoardMember(txCtx, created.ID, user.ID); err != nil {
				return fmt.Errorf("failed to add board creator: %w", err)
			}
		}

		return s.activities.Log(txCtx, activities.Entry{
			User:          user,
			Action:        types.ActionBoardCreated,
			WorkspaceID:   workspaceID,
			WorkspaceName: workspace.Name,
			BoardID:       created.ID,
			BoardName:     created.Name,
			Metadata: map[string]any{
				"boardId":    created.ID,
				"boardName":  created.Name,
				"visibility": created.Visibility,
			},
		})
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Service) Get(ctx context.Context, userID, boardID string) (*types.Board, error) {
	ctx, span := s.tracer.Start(ctx, "board.Service.Get")
	defer span.End()

	return s.authz.CheckBoardAccess(ctx, boardID, userID)
}

// ListInWorkspace returns the boards the caller can open: all PUBLIC
// and WORKSPACE boards plus PRIVATE boards the caller is a board member
// of.
func (s *Service) ListInWorkspace(ctx context.Context, userID, workspaceID string) ([]*types.Board, error) {
	ctx, span := s.tracer.Start(ctx, "board.Service.ListInWorkspace")
	defer span.End()

	if _, err := s.authz.RequireMembership(ctx, workspaceID, userID); err != nil {
		return nil, err
	}

	return s.storage.ListBoardsForUser(ctx, workspaceID, userID)
}

func (s *Service) Update(ctx context.Context, user *types.User, boardID string, req UpdateRequest) (*types.Board, error) {
	ctx, span := s.tracer.Start(ctx, "board.Service.Update")
	defer span.End()

	board, err := s.authz.CheckBoardAccess(ctx, boardID, user.ID)
	if err != nil {
		return nil, err
	}

	if _, err := s.authz.RequireRole(ctx, board.WorkspaceID, user.ID, types.RoleOwner, types.RoleAdmin); err != nil {
		return nil, err
	}

	if req.Visibility != nil && !req.Visibility.Valid() {
		return nil, ErrInvalidVisibility
	}

	workspace, err := s.storage.GetWorkspaceByID(ctx, board.WorkspaceID)
	if err != nil {
		return nil, err
	}

	var updated *types.Board
	err = s.tx.WithTx(ctx, func(txCtx context.Context) error {
		fields := make(map[string]any)
		diffKeys := make([]string, 0, 4)

		if req.Name != nil {
			fields["name"] = *req.Name
			diffKeys = append(diffKeys, "name")
		}
		if req.Description != nil {
			fields["description"] = *req.Description
			diffKeys = append(diffKeys, "description")
		}
		if req.Color != nil {
			fields["color"] = *req.Color
			diffKeys = append(diffKeys, "color")
		}
		if req.Visibility != nil {
			fields["visibility"] = *req.Visibility
			diffKeys = append(diffKeys, "visibility")
		}

		if err := s.storage.UpdateBoard(txCtx, boardID, fields); err != nil {
			return err
		}

		updated, err = s.storage.GetBoardByID(txCtx, boardID)
		if err != nil {
			return err
		}

		return s.activities.Log(txCtx, activities.Entry{
			User:          user,
			Action:        types.ActionBoardUpdated,
			WorkspaceID:   board.WorkspaceID,
			WorkspaceName: workspace.Name,
			BoardID:       boardID,
			BoardName:     updated.Name,
			Metadata: map[string]any{
				"boardId":      boardID,
				"fieldChanges": diffBoards(board, updated, diffKeys),
			},
		})
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *Service) Delete(ctx context.Context, user *types.User, boardID string) error {
	ctx, span := s.tracer.Start(ctx, "board.Service.Delete")
	defer span.End()

	board, err := s.authz.CheckBoardAccess(ctx, boardID, user.ID)
	if err != nil {
		return err
	}

	if _, err := s.authz.RequireRole(ctx, board.WorkspaceID, user.ID, types.RoleOwner, types.RoleAdmin); err != nil {
		return err
	}

	workspace, err := s.storage.GetWorkspaceByID(ctx, board.WorkspaceID)
	if err != nil {
		return err
	}

	return s.tx.WithTx(ctx, func(txCtx context.Context) error {
		if err := s.activities.Log(txCtx, activities.Entry{
			User:          user,
			Action:        types.ActionBoardDeleted,
			WorkspaceID:   board.WorkspaceID,
			WorkspaceName: workspace.Name,
			BoardID:       board.ID,
			BoardName:     board.Name,
			Metadata: map[string]any{
				"boardId":   board.ID,
				"boardName": board.Name,
			},
		}); err != nil {
			return err
		}

		return s.storage.DeleteBoard(txCtx, boardID)
	})
}

func diffBoards(before, after *types.Board, keys []string) map[string]any {
	return diff.Fields(
		map[string]any{
			"name": before.Name, "description": before.Description,
			"color": before.Color, "visibility": string(before.Visibility),
		},
		map[string]any{
			"name": after.Name, "description": after.Description,
			"color": after.Color, "visibility": string(after.Visibility),
		},
		keys,
	)
}

func NewService(
	storage StorageInterface,
	authz AuthzInterface,
	activitiesSvc ActivitiesInterface,
	tx TxManagerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.storage = storage
	s.authz = authz
	s.activities = activitiesSvc
	s.tx = tx
	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
