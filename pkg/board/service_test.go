// Copyright 2026 Kanbanly Ltd.
// SPDX-License-Identifier: AGPL-3.0

package board

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/kanbanly/workspace-service/internal/diff"
	"github.com/kanbanly/workspace-service/internal/logging"
	"github.com/kanbanly/workspace-service/internal/monitoring"
	"github.com/kanbanly/workspace-service/internal/tracing"
	"github.com/kanbanly/workspace-service/internal/types"
	"github.com/kanbanly/workspace-service/pkg/activities"
)

//go:generate mockgen -build_flags=--mod=mod -package board -destination ./mock_board.go -source=./interfaces.go

type svcMocks struct {
	storage    *MockStorageInterface
	authz      *MockAuthzInterface
	activities *MockActivitiesInterface
	tx         *MockTxManagerInterface
}

func newTestService(ctrl *gomock.Controller) (*Service, svcMocks) {
	m := svcMocks{
		storage:    NewMockStorageInterface(ctrl),
		authz:      NewMockAuthzInterface(ctrl),
		activities: NewMockActivitiesInterface(ctrl),
		tx:         NewMockTxManagerInterface(ctrl),
	}

	s := NewService(
		m.storage, m.authz, m.activities, m.tx,
		tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger(),
	)

	return s, m
}

func passThroughTx(m *MockTxManagerInterface) {
	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
}

var (
	admin     = &types.User{ID: "u-1", Email: "admin@x.com", Username: "admin"}
	workspace = &types.Workspace{ID: "ws-1", Name: "Acme", Slug: "acme"}
)

func expectCreateGate(m svcMocks, boardCount int) {
	m.authz.EXPECT().RequireRole(gomock.Any(), "ws-1", admin.ID, types.RoleOwner, types.RoleAdmin).
		Return(&types.WorkspaceMember{Role: types.RoleAdmin}, nil)
	m.storage.EXPECT().CountBoardsByWorkspaceID(gomock.Any(), "ws-1").Return(boardCount, nil)
}

func TestService_CreateDefaultsToWorkspaceVisibility(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)
	expectCreateGate(m, 2)
	passThroughTx(m.tx)

	m.storage.EXPECT().GetWorkspaceByID(gomock.Any(), "ws-1").Return(workspace, nil)
	m.storage.EXPECT().CreateBoard(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *types.Board) (*types.Board, error) {
			if b.Visibility != types.BoardWorkspace {
				t.Errorf("expected default visibility WORKSPACE, got %s", b.Visibility)
			}
			created := *b
			created.ID = "b-1"
			return &created, nil
		})
	m.activities.EXPECT().Log(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e activities.Entry) error {
		if e.Action != types.ActionBoardCreated {
			t.Errorf("expected BOARD_CREATED audit, got %s", e.Action)
		}
		return nil
	})

	created, err := s.Create(context.Background(), admin, "ws-1", CreateRequest{Name: "Sprint"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != "b-1" {
		t.Errorf("unexpected board: %+v", created)
	}
}

func TestService_CreatePrivateBoardSeedsCreatorMembership(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)
	expectCreateGate(m, 0)
	passThroughTx(m.tx)

	m.storage.EXPECT().GetWorkspaceByID(gomock.Any(), "ws-1").Return(workspace, nil)
	m.storage.EXPECT().CreateBoard(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *types.Board) (*types.Board, error) {
			created := *b
			created.ID = "b-1"
			return &created, nil
		})
	m.storage.EXPECT().AddBoardMember(gomock.Any(), "b-1", "u-1").Return(nil)
	m.activities.EXPECT().Log(gomock.Any(), gomock.Any()).Return(nil)

	_, err := s.Create(context.Background(), admin, "ws-1", CreateRequest{
		Name: "Secret", Visibility: types.BoardPrivate,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestService_CreateEnforcesBoardQuota(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)
	expectCreateGate(m, 10)

	_, err := s.Create(context.Background(), admin, "ws-1", CreateRequest{Name: "Eleventh"})
	if !errors.Is(err, ErrBoardLimit) {
		t.Fatalf("expected ErrBoardLimit, got %v", err)
	}
}

func TestService_CreateRejectsUnknownVisibility(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)
	m.authz.EXPECT().RequireRole(gomock.Any(), "ws-1", admin.ID, types.RoleOwner, types.RoleAdmin).
		Return(&types.WorkspaceMember{Role: types.RoleAdmin}, nil)

	_, err := s.Create(context.Background(), admin, "ws-1", CreateRequest{
		Name: "Bad", Visibility: types.BoardVisibility("SECRET"),
	})
	if !errors.Is(err, ErrInvalidVisibility) {
		t.Fatalf("expected ErrInvalidVisibility, got %v", err)
	}
}

func TestService_GetDelegatesToAccessCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)
	board := &types.Board{ID: "b-1", WorkspaceID: "ws-1", Visibility: types.BoardPublic}
	m.authz.EXPECT().CheckBoardAccess(gomock.Any(), "b-1", "u-1").Return(board, nil)

	got, err := s.Get(context.Background(), "u-1", "b-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != board {
		t.Errorf("expected board from access check, got %+v", got)
	}
}

func TestService_ListInWorkspaceRequiresMembership(t *testing.T) {
	notMember := errors.New("not a member")

	testCases := []struct {
		name        string
		setupMocks  func(svcMocks)
		expectedErr error
	}{
		{
			name: "member sees visible boards",
			setupMocks: func(m svcMocks) {
				m.authz.EXPECT().RequireMembership(gomock.Any(), "ws-1", "u-1").
					Return(&types.WorkspaceMember{Role: types.RoleViewer}, nil)
				m.storage.EXPECT().ListBoardsForUser(gomock.Any(), "ws-1", "u-1").
					Return([]*types.Board{{ID: "b-1"}}, nil)
			},
		},
		{
			name: "non-member is rejected",
			setupMocks: func(m svcMocks) {
				m.authz.EXPECT().RequireMembership(gomock.Any(), "ws-1", "u-1").Return(nil, notMember)
			},
			expectedErr: notMember,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			tc.setupMocks(m)

			_, err := s.ListInWorkspace(context.Background(), "u-1", "ws-1")
			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestService_UpdateRecordsFieldChanges(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)
	passThroughTx(m.tx)

	before := &types.Board{ID: "b-1", WorkspaceID: "ws-1", Name: "Sprint", Color: "#ff0000", Visibility: types.BoardWorkspace}
	after := &types.Board{ID: "b-1", WorkspaceID: "ws-1", Name: "Sprint", Color: "#ff0000", Visibility: types.BoardPrivate}

	m.authz.EXPECT().CheckBoardAccess(gomock.Any(), "b-1", "u-1").Return(before, nil)
	m.authz.EXPECT().RequireRole(gomock.Any(), "ws-1", "u-1", types.RoleOwner, types.RoleAdmin).
		Return(&types.WorkspaceMember{Role: types.RoleAdmin}, nil)
	m.storage.EXPECT().GetWorkspaceByID(gomock.Any(), "ws-1").Return(workspace, nil)
	m.storage.EXPECT().UpdateBoard(gomock.Any(), "b-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, fields map[string]any) error {
			if fields["visibility"] != types.BoardPrivate {
				t.Errorf("unexpected update fields: %v", fields)
			}
			return nil
		})
	m.storage.EXPECT().GetBoardByID(gomock.Any(), "b-1").Return(after, nil)

	var logged activities.Entry
	m.activities.EXPECT().Log(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e activities.Entry) error {
		logged = e
		return nil
	})

	visibility := types.BoardPrivate
	updated, err := s.Update(context.Background(), admin, "b-1", UpdateRequest{Visibility: &visibility})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated != after {
		t.Errorf("expected refreshed board, got %+v", updated)
	}

	changes, ok := logged.Metadata["fieldChanges"].(map[string]any)
	if !ok {
		t.Fatalf("expected fieldChanges metadata, got %v", logged.Metadata)
	}
	if changes["visibility"] != (diff.Change{From: "WORKSPACE", To: "PRIVATE"}) {
		t.Errorf("unexpected visibility change: %v", changes["visibility"])
	}
	if _, present := changes["name"]; present {
		t.Errorf("untouched name must not appear in fieldChanges: %v", changes)
	}
}

func TestService_UpdateNeedsRoleOnTopOfAccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)

	board := &types.Board{ID: "b-1", WorkspaceID: "ws-1", Visibility: types.BoardWorkspace}
	denied := errors.New("insufficient role")
	m.authz.EXPECT().CheckBoardAccess(gomock.Any(), "b-1", "u-1").Return(board, nil)
	m.authz.EXPECT().RequireRole(gomock.Any(), "ws-1", "u-1", types.RoleOwner, types.RoleAdmin).Return(nil, denied)

	name := "New"
	if _, err := s.Update(context.Background(), admin, "b-1", UpdateRequest{Name: &name}); !errors.Is(err, denied) {
		t.Fatalf("expected role error, got %v", err)
	}
}

func TestService_DeleteAuditsBeforeRemoving(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)
	passThroughTx(m.tx)

	board := &types.Board{ID: "b-1", WorkspaceID: "ws-1", Name: "Sprint", Visibility: types.BoardWorkspace}
	m.authz.EXPECT().CheckBoardAccess(gomock.Any(), "b-1", "u-1").Return(board, nil)
	m.authz.EXPECT().RequireRole(gomock.Any(), "ws-1", "u-1", types.RoleOwner, types.RoleAdmin).
		Return(&types.WorkspaceMember{Role: types.RoleAdmin}, nil)
	m.storage.EXPECT().GetWorkspaceByID(gomock.Any(), "ws-1").Return(workspace, nil)

	gomock.InOrder(
		m.activities.EXPECT().Log(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e activities.Entry) error {
			if e.Action != types.ActionBoardDeleted {
				t.Errorf("expected BOARD_DELETED audit, got %s", e.Action)
			}
			return nil
		}),
		m.storage.EXPECT().DeleteBoard(gomock.Any(), "b-1").Return(nil),
	)

	if err := s.Delete(context.Background(), admin, "b-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
