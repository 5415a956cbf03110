// Copyright 2026 Kanbanly Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package activities is the append-only audit log. Every state-changing
// operation in the service writes exactly one entry here, inside the
// same transaction scope as the mutation itself.
package activities

import (
	"context"
	"fmt"

	"github.com/kanbanly/workspace-service/internal/logging"
	"github.com/kanbanly/workspace-service/internal/monitoring"
	"github.com/kanbanly/workspace-service/internal/tracing"
	"github.com/kanbanly/workspace-service/internal/types"
)

// Entry describes one auditable event.
type Entry struct {
	User   *types.User
	Action types.ActivityAction

	WorkspaceID   string
	WorkspaceName string
	BoardID       string
	BoardName     string
	CardID        string
	TargetEmail   string

	Metadata map[string]any
}

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	authz   AuthzInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Log appends the audit record for e. The ctx argument carries the
// caller's transaction scope; the insert joins it, so a rolled-back
// mutation takes its audit entry down with it and a committed one can
// never lose it.
func (s *Service) Log(ctx context.Context, e Entry) error {
	ctx, span := s.tracer.Start(ctx, "activities.Service.Log")
	defer span.End()

	activity := &types.Activity{
		Action:      e.Action,
		Description: describe(e),
		UserID:      e.User.ID,
		WorkspaceID: e.WorkspaceID,
		BoardID:     e.BoardID,
		CardID:      e.CardID,
		Metadata:    e.Metadata,
	}

	if _, err := s.storage.CreateActivity(ctx, activity); err != nil {
		return fmt.Errorf("failed to append activity: %w", err)
	}

	return nil
}

func (s *Service) ListByWorkspace(ctx context.Context, workspaceID, userID string, page, size int64) ([]*types.Activity, error) {
	ctx, span := s.tracer.Start(ctx, "activities.Service.ListByWorkspace")
	defer span.End()

	if _, err := s.authz.RequireMembership(ctx, workspaceID, userID); err != nil {
		return nil, err
	}

	return s.storage.ListActivitiesByWorkspaceID(ctx, workspaceID, page, size)
}

func describe(e Entry) string {
	actor := e.User.Username
	if actor == "" {
		actor = e.User.Email
	}

	switch e.Action {
	case types.ActionWorkspaceCreated:
		return fmt.Sprintf("%s created workspace %q", actor, e.WorkspaceName)
	case types.ActionWorkspaceUpdated:
		return fmt.Sprintf("%s updated workspace %q", actor, e.WorkspaceName)
	case types.ActionWorkspaceDeleted:
		return fmt.Sprintf("%s deleted workspace %q", actor, e.WorkspaceName)
	case types.ActionBoardCreated:
		return fmt.Sprintf("%s created board %q", actor, e.BoardName)
	case types.ActionBoardUpdated:
		return fmt.Sprintf("%s updated board %q", actor, e.BoardName)
	case types.ActionBoardDeleted:
		return fmt.Sprintf("%s deleted board %q", actor, e.BoardName)
	case types.ActionInvitationSent:
		return fmt.Sprintf("%s invited %s to workspace %q", actor, e.TargetEmail, e.WorkspaceName)
	case types.ActionInvitationRefreshed:
		return fmt.Sprintf("%s refreshed the invitation for %s to workspace %q", actor, e.TargetEmail, e.WorkspaceName)
	case types.ActionInvitationCanceled:
		return fmt.Sprintf("%s canceled the invitation for %s to workspace %q", actor, e.TargetEmail, e.WorkspaceName)
	case types.ActionMemberAdded:
		return fmt.Sprintf("%s joined workspace %q", actor, e.WorkspaceName)
	case types.ActionMemberRemoved:
		return fmt.Sprintf("%s removed %s from workspace %q", actor, e.TargetEmail, e.WorkspaceName)
	default:
		return fmt.Sprintf("%s performed %s", actor, e.Action)
	}
}

func NewService(storage StorageInterface, authz AuthzInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage
	s.authz = authz
	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
