// Copyright 2026 Kanbanly Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workspace

import (
	"context"
	"fmt"
	"sort"

	"github.com/kanbanly/workspace-service/internal/diff"
	"github.com/kanbanly/workspace-service/internal/logging"
	"github.com/kanbanly/workspace-service/internal/monitoring"
	"github.com/kanbanly/workspace-service/internal/tracing"
	"github.com/kanbanly/workspace-service/internal/types"
	"github.com/kanbanly/workspace-service/pkg/activities"
)

const maxWorkspacesPerUser = 10

// UpdateRequest carries the fields to change; nil means leave untouched.
type UpdateRequest struct {
	Name        *string
	Description *string
}

// Detail is a workspace with its member list, as returned to a member.
type Detail struct {
	types.Workspace
	UserRole types.Role
	Members  []*types.MemberDetail
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

func NewService(
	storage StorageInterface,
	authz AuthzInterface,
	activitiesSvc ActivitiesInterface,
	tx TxManagerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:    storage,
		authz:      authz,
		activities: activitiesSvc,
		tx:         tx,
		tracer:     tracer,
		monitor:    monitor,
		logger:     logger,
	}
}

// Create makes a new workspace with the caller as its sole OWNER. The
// workspace row, the owner member row and the audit entry commit as one
// unit.
func (s *Service) Create(ctx context.Context, user *types.User, name, description string) (*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "workspace.Service.Create")
	defer span.End()

	owned, err := s.storage.CountWorkspacesOwnedByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count owned workspaces: %w", err)
	}
	if owned >= maxWorkspacesPerUser {
		return nil, ErrWorkspaceLimit
	}

	exists, err := s.storage.WorkspaceNameExistsForUser(ctx, name, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check workspace name: %w", err)
	}
	if exists {
		return nil, ErrDuplicateName
	}

	slug, err := s.uniqueSlug(ctx, name, "")
	if err != nil {
		return nil, err
	}

	var created *types.Workspace
	err = s.tx.WithTx(ctx, func(txCtx context.Context) error {
		created, err = s.storage.CreateWorkspace(txCtx, &types.Workspace{
			Name:        name,
			Slug:        slug,
			Description: description,
		})
		if err != nil {
			return err
		}

		if _, err := s.storage.AddWorkspaceMember(txCtx, created.ID, user.ID, types.RoleOwner); err != nil {
			return fmt.Errorf("failed to add owner member: %w", err)
		}

		return s.activities.Log(txCtx, activities.Entry{
			User:          user,
			Action:        types.ActionWorkspaceCreated,
			WorkspaceID:   created.ID,
			WorkspaceName: created.Name,
			Metadata: map[string]any{
				"workspaceId":   created.ID,
				"workspaceName": created.Name,
				"description":   created.Description,
			},
		})
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// Update applies the requested field changes and stores a structural
// diff of exactly those fields as audit metadata.
func (s *Service) Update(ctx context.Context, user *types.User, workspaceID string, req UpdateRequest) (*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "workspace.Service.Update")
	defer span.End()

	if _, err := s.authz.RequireRole(ctx, workspaceID, user.ID, types.RoleOwner, types.RoleAdmin); err != nil {
		return nil, err
	}

	var updated *types.Workspace
	err := s.tx.WithTx(ctx, func(txCtx context.Context) error {
		existing, err := s.storage.GetWorkspaceByID(txCtx, workspaceID)
		if err != nil {
			return err
		}

		fields := make(map[string]any)
		diffKeys := make([]string, 0, 3)

		if req.Name != nil {
			newSlug, err := s.uniqueSlug(txCtx, *req.Name, workspaceID)
			if err != nil {
				return err
			}
			fields["name"] = *req.Name
			fields["slug"] = newSlug
			diffKeys = append(diffKeys, "name", "slug")
		}
		if req.Description != nil {
			fields["description"] = *req.Description
			diffKeys = append(diffKeys, "description")
		}

		if err := s.storage.UpdateWorkspace(txCtx, workspaceID, fields); err != nil {
			return err
		}

		updated, err = s.storage.GetWorkspaceByID(txCtx, workspaceID)
		if err != nil {
			return err
		}

		fieldChanges := diffWorkspaces(existing, updated, diffKeys)

		return s.activities.Log(txCtx, activities.Entry{
			User:          user,
			Action:        types.ActionWorkspaceUpdated,
			WorkspaceID:   updated.ID,
			WorkspaceName: updated.Name,
			Metadata: map[string]any{
				"workspaceId":  updated.ID,
				"fieldChanges": fieldChanges,
			},
		})
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes the workspace; members, boards and invitations go with
// it. The audit entry commits in the same transaction as the delete.
func (s *Service) Delete(ctx context.Context, user *types.User, workspaceID string) error {
	ctx, span := s.tracer.Start(ctx, "workspace.Service.Delete")
	defer span.End()

	if _, err := s.authz.RequireRole(ctx, workspaceID, user.ID, types.RoleOwner); err != nil {
		return err
	}

	return s.tx.WithTx(ctx, func(txCtx context.Context) error {
		w, err := s.storage.GetWorkspaceByID(txCtx, workspaceID)
		if err != nil {
			return err
		}

		if err := s.activities.Log(txCtx, activities.Entry{
			User:          user,
			Action:        types.ActionWorkspaceDeleted,
			WorkspaceID:   w.ID,
			WorkspaceName: w.Name,
			Metadata: map[string]any{
				"workspaceId":   w.ID,
				"workspaceName": w.Name,
				"workspaceSlug": w.Slug,
			},
		}); err != nil {
			return err
		}

		return s.storage.DeleteWorkspace(txCtx, workspaceID)
	})
}

// List returns the caller's workspaces, highest role first and newest
// first within a role.
func (s *Service) List(ctx context.Context, userID string) ([]*types.WorkspaceSummary, error) {
	ctx, span := s.tracer.Start(ctx, "workspace.Service.List")
	defer span.End()

	summaries, err := s.storage.ListWorkspacesByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	rolePriority := map[types.Role]int{
		types.RoleOwner:  1,
		types.RoleAdmin:  2,
		types.RoleMember: 3,
		types.RoleViewer: 4,
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		if rolePriority[summaries[i].UserRole] != rolePriority[summaries[j].UserRole] {
			return rolePriority[summaries[i].UserRole] < rolePriority[summaries[j].UserRole]
		}
		return summaries[i].CreatedAt.After(summaries[j].CreatedAt)
	})

	return summaries, nil
}

func (s *Service) Get(ctx context.Context, workspaceID, userID string) (*Detail, error) {
	ctx, span := s.tracer.Start(ctx, "workspace.Service.Get")
	defer span.End()

	member, err := s.authz.RequireMembership(ctx, workspaceID, userID)
	if err != nil {
		return nil, err
	}

	w, err := s.storage.GetWorkspaceByID(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	members, err := s.storage.ListWorkspaceMembers(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	return &Detail{
		Workspace: *w,
		UserRole:  member.Role,
		Members:   members,
	}, nil
}

func diffWorkspaces(before, after *types.Workspace, keys []string) map[string]any {
	return diff.Fields(
		map[string]any{"name": before.Name, "slug": before.Slug, "description": before.Description},
		map[string]any{"name": after.Name, "slug": after.Slug, "description": after.Description},
		keys,
	)
}
