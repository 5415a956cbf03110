// Copyright 2026 Kanbanly Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/kanbanly/workspace-service/internal/logging"
	"github.com/kanbanly/workspace-service/internal/monitoring"
	"github.com/kanbanly/workspace-service/internal/storage"
	"github.com/kanbanly/workspace-service/internal/tracing"
	"github.com/kanbanly/workspace-service/internal/types"
)

var (
	// ErrNotMember deliberately covers both "workspace does not exist"
	// and "caller is not a member": non-members must not be able to
	// probe for workspace existence.
	ErrNotMember = errors.New("workspace not found or user is not a member")

	ErrInsufficientRole = errors.New("user does not have permission to perform this action")
	ErrBoardNotFound    = errors.New("board not found")
	ErrAccessDenied     = errors.New("user does not have access to this board")
)

var _ CheckerInterface = (*Checker)(nil)

// Checker answers the membership and role questions every workspace
// operation gates on. Roles are matched against an explicit allow-list;
// there is no ordering between roles.
type Checker struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// RequireRole returns the caller's member row when it exists and its
// role is in allowedRoles.
func (c *Checker) RequireRole(ctx context.Context, workspaceID, userID string, allowedRoles ...types.Role) (*types.WorkspaceMember, error) {
	ctx, span := c.tracer.Start(ctx, "authorization.Checker.RequireRole")
	defer span.End()

	member, err := c.RequireMembership(ctx, workspaceID, userID)
	if err != nil {
		return nil, err
	}

	if !slices.Contains(allowedRoles, member.Role) {
		c.logger.Security().PermissionDenied(userID, fmt.Sprintf("workspace:%s", workspaceID))
		return nil, ErrInsufficientRole
	}

	return member, nil
}

// RequireMembership is the weaker read-path gate: any role passes.
func (c *Checker) RequireMembership(ctx context.Context, workspaceID, userID string) (*types.WorkspaceMember, error) {
	ctx, span := c.tracer.Start(ctx, "authorization.Checker.RequireMembership")
	defer span.End()

	member, err := c.storage.GetWorkspaceMember(ctx, workspaceID, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotMember
		}
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}

	return member, nil
}

// CheckBoardAccess resolves the board and walks the visibility cascade
// in order: PUBLIC boards short-circuit before any membership lookup,
// WORKSPACE boards need workspace membership, PRIVATE boards need a
// board member row on top of that.
func (c *Checker) CheckBoardAccess(ctx context.Context, boardID, userID string) (*types.Board, error) {
	ctx, span := c.tracer.Start(ctx, "authorization.Checker.CheckBoardAccess")
	defer span.End()

	board, err := c.storage.GetBoardByID(ctx, boardID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrBoardNotFound
		}
		return nil, fmt.Errorf("failed to get board: %w", err)
	}

	if board.Visibility == types.BoardPublic {
		return board, nil
	}

	if _, err := c.RequireMembership(ctx, board.WorkspaceID, userID); err != nil {
		if errors.Is(err, ErrNotMember) {
			c.logger.Security().PermissionDenied(userID, fmt.Sprintf("board:%s", boardID))
			return nil, ErrAccessDenied
		}
		return nil, err
	}

	if board.Visibility == types.BoardWorkspace {
		return board, nil
	}

	if _, err := c.storage.GetBoardMember(ctx, boardID, userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.logger.Security().PermissionDenied(userID, fmt.Sprintf("board:%s", boardID))
			return nil, ErrAccessDenied
		}
		return nil, fmt.Errorf("failed to check board membership: %w", err)
	}

	return board, nil
}

func NewChecker(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Checker {
	c := new(Checker)

	c.storage = storage
	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c
}
