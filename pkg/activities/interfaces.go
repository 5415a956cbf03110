// Copyright 2026 Kanbanly Ltd.
// SPDX-License-Identifier: AGPL-3.0

package activities

import (
	"context"

	"github.com/kanbanly/workspace-service/internal/types"
)

type ServiceInterface interface {
	Log(ctx context.Context, e Entry) error
	ListByWorkspace(ctx context.Context, workspaceID, userID string, page, size int64) ([]*types.Activity, error)
}

type StorageInterface interface {
	CreateActivity(ctx context.Context, a *types.Activity) (*types.Activity, error)
	ListActivitiesByWorkspaceID(ctx context.Context, workspaceID string, page, size int64) ([]*types.Activity, error)
}

type AuthzInterface interface {
	RequireMembership(ctx context.Context, workspaceID, userID string) (*types.WorkspaceMember, error)
}
