// Copyright 2026 Kanbanly Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workspace

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/kanbanly/workspace-service/internal/diff"
	"github.com/kanbanly/workspace-service/internal/logging"
	"github.com/kanbanly/workspace-service/internal/monitoring"
	"github.com/kanbanly/workspace-service/internal/storage"
	"github.com/kanbanly/workspace-service/internal/tracing"
	"github.com/kanbanly/workspace-service/internal/types"
	"github.com/kanbanly/workspace-service/pkg/activities"
)

//go:generate mockgen -build_flags=--mod=mod -package workspace -destination ./mock_workspace.go -source=./interfaces.go

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

var creator = &types.User{ID: "u-1", Email: "owner@x.com", Username: "owner"}

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)
	passThroughTx(m.tx)

	m.storage.EXPECT().CountWorkspacesOwnedByUser(gomock.Any(), "u-1").Return(3, nil)
	m.storage.EXPECT().WorkspaceNameExistsForUser(gomock.Any(), "Acme Inc", "u-1").Return(false, nil)
	m.storage.EXPECT().GetWorkspaceIDBySlug(gomock.Any(), "acme-inc").Return("", storage.ErrNotFound)
	m.storage.EXPECT().CreateWorkspace(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, w *types.Workspace) (*types.Workspace, error) {
			if w.Slug != "acme-inc" {
				t.Errorf("expected slug acme-inc, got %s", w.Slug)
			}
			created := *w
			created.ID = "ws-1"
			return &created, nil
		})
	m.storage.EXPECT().AddWorkspaceMember(gomock.Any(), "ws-1", "u-1", types.RoleOwner).
		Return(&types.WorkspaceMember{ID: "m-1", Role: types.RoleOwner}, nil)
	m.activities.EXPECT().Log(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e activities.Entry) error {
		if e.Action != types.ActionWorkspaceCreated {
			t.Errorf("expected WORKSPACE_CREATED audit, got %s", e.Action)
		}
		return nil
	})

	created, err := s.Create(context.Background(), creator, "Acme Inc", "the mothership")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != "ws-1" || created.Name != "Acme Inc" {
		t.Errorf("unexpected workspace: %+v", created)
	}
}

func TestService_CreateEnforcesOwnedQuota(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)
	m.storage.EXPECT().CountWorkspacesOwnedByUser(gomock.Any(), "u-1").Return(10, nil)

	_, err := s.Create(context.Background(), creator, "One Too Many", "")
	if !errors.Is(err, ErrWorkspaceLimit) {
		t.Fatalf("expected ErrWorkspaceLimit, got %v", err)
	}
}

func TestService_CreateRejectsDuplicateName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)
	m.storage.EXPECT().CountWorkspacesOwnedByUser(gomock.Any(), "u-1").Return(0, nil)
	m.storage.EXPECT().WorkspaceNameExistsForUser(gomock.Any(), "Acme", "u-1").Return(true, nil)

	_, err := s.Create(context.Background(), creator, "Acme", "")
	if !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
}

func TestService_CreateRetriesSlugOnCollision(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)
	passThroughTx(m.tx)

	m.storage.EXPECT().CountWorkspacesOwnedByUser(gomock.Any(), "u-1").Return(0, nil)
	m.storage.EXPECT().WorkspaceNameExistsForUser(gomock.Any(), "Acme", "u-1").Return(false, nil)

	// The base slug is taken by another workspace; the suffixed retry is
	// free.
	gomock.InOrder(
		m.storage.EXPECT().GetWorkspaceIDBySlug(gomock.Any(), "acme").Return("ws-other", nil),
		m.storage.EXPECT().GetWorkspaceIDBySlug(gomock.Any(), gomock.Any()).Return("", storage.ErrNotFound),
	)

	var createdSlug string
	m.storage.EXPECT().CreateWorkspace(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, w *types.Workspace) (*types.Workspace, error) {
			createdSlug = w.Slug
			created := *w
			created.ID = "ws-1"
			return &created, nil
		})
	m.storage.EXPECT().AddWorkspaceMember(gomock.Any(), "ws-1", "u-1", types.RoleOwner).
		Return(&types.WorkspaceMember{}, nil)
	m.activities.EXPECT().Log(gomock.Any(), gomock.Any()).Return(nil)

	if _, err := s.Create(context.Background(), creator, "Acme", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// "acme" plus a dash plus a 2-byte hex suffix.
	if len(createdSlug) != len("acme")+5 || createdSlug[:5] != "acme-" {
		t.Errorf("expected a suffixed slug, got %q", createdSlug)
	}
}

func TestService_CreateGivesUpAfterSlugRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)
	m.storage.EXPECT().CountWorkspacesOwnedByUser(gomock.Any(), "u-1").Return(0, nil)
	m.storage.EXPECT().WorkspaceNameExistsForUser(gomock.Any(), "Acme", "u-1").Return(false, nil)
	m.storage.EXPECT().GetWorkspaceIDBySlug(gomock.Any(), gomock.Any()).Return("ws-other", nil).Times(5)

	_, err := s.Create(context.Background(), creator, "Acme", "")
	if !errors.Is(err, ErrSlugGeneration) {
		t.Fatalf("expected ErrSlugGeneration, got %v", err)
	}
}

func TestService_UpdateRecordsFieldChanges(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)
	passThroughTx(m.tx)

	before := &types.Workspace{ID: "ws-1", Name: "Acme", Slug: "acme", Description: "old"}
	after := &types.Workspace{ID: "ws-1", Name: "Acme Labs", Slug: "acme-labs", Description: "old"}

	m.authz.EXPECT().RequireRole(gomock.Any(), "ws-1", "u-1", types.RoleOwner, types.RoleAdmin).
		Return(&types.WorkspaceMember{Role: types.RoleAdmin}, nil)

	gomock.InOrder(
		m.storage.EXPECT().GetWorkspaceByID(gomock.Any(), "ws-1").Return(before, nil),
		m.storage.EXPECT().GetWorkspaceIDBySlug(gomock.Any(), "acme-labs").Return("", storage.ErrNotFound),
		m.storage.EXPECT().UpdateWorkspace(gomock.Any(), "ws-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, fields map[string]any) error {
				if fields["name"] != "Acme Labs" || fields["slug"] != "acme-labs" {
					t.Errorf("unexpected update fields: %v", fields)
				}
				return nil
			}),
		m.storage.EXPECT().GetWorkspaceByID(gomock.Any(), "ws-1").Return(after, nil),
	)

	var logged activities.Entry
	m.activities.EXPECT().Log(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e activities.Entry) error {
		logged = e
		return nil
	})

	name := "Acme Labs"
	updated, err := s.Update(context.Background(), creator, "ws-1", UpdateRequest{Name: &name})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated != after {
		t.Errorf("expected refreshed workspace, got %+v", updated)
	}

	if logged.Action != types.ActionWorkspaceUpdated {
		t.Fatalf("expected WORKSPACE_UPDATED audit, got %s", logged.Action)
	}
	changes, ok := logged.Metadata["fieldChanges"].(map[string]any)
	if !ok {
		t.Fatalf("expected fieldChanges metadata, got %v", logged.Metadata)
	}
	if changes["name"] != (diff.Change{From: "Acme", To: "Acme Labs"}) {
		t.Errorf("unexpected name change: %v", changes["name"])
	}
	if changes["slug"] != (diff.Change{From: "acme", To: "acme-labs"}) {
		t.Errorf("unexpected slug change: %v", changes["slug"])
	}
	if _, present := changes["description"]; present {
		t.Errorf("untouched description must not appear in fieldChanges: %v", changes)
	}
}

func TestService_UpdateRequiresOwnerOrAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)
	m.authz.EXPECT().RequireRole(gomock.Any(), "ws-1", "u-1", types.RoleOwner, types.RoleAdmin).
		Return(nil, errors.New("insufficient role"))

	desc := "new"
	if _, err := s.Update(context.Background(), creator, "ws-1", UpdateRequest{Description: &desc}); err == nil {
		t.Fatal("expected the authz error to propagate")
	}
}

func TestService_DeleteIsOwnerOnly(t *testing.T) {
	denied := errors.New("insufficient role")

	testCases := []struct {
		name        string
		setupMocks  func(svcMocks)
		expectedErr error
	}{
		{
			name: "owner deletes with audit in the same unit",
			setupMocks: func(m svcMocks) {
				m.authz.EXPECT().RequireRole(gomock.Any(), "ws-1", "u-1", types.RoleOwner).
					Return(&types.WorkspaceMember{Role: types.RoleOwner}, nil)
				passThroughTx(m.tx)
				m.storage.EXPECT().GetWorkspaceByID(gomock.Any(), "ws-1").
					Return(&types.Workspace{ID: "ws-1", Name: "Acme", Slug: "acme"}, nil)
				m.activities.EXPECT().Log(gomock.Any(), gomock.Any()).Return(nil)
				m.storage.EXPECT().DeleteWorkspace(gomock.Any(), "ws-1").Return(nil)
			},
		},
		{
			name: "admin is rejected",
			setupMocks: func(m svcMocks) {
				m.authz.EXPECT().RequireRole(gomock.Any(), "ws-1", "u-1", types.RoleOwner).
					Return(nil, denied)
			},
			expectedErr: denied,
		},
		{
			name: "audit failure aborts the delete",
			setupMocks: func(m svcMocks) {
				m.authz.EXPECT().RequireRole(gomock.Any(), "ws-1", "u-1", types.RoleOwner).
					Return(&types.WorkspaceMember{Role: types.RoleOwner}, nil)
				passThroughTx(m.tx)
				m.storage.EXPECT().GetWorkspaceByID(gomock.Any(), "ws-1").
					Return(&types.Workspace{ID: "ws-1", Name: "Acme"}, nil)
				m.activities.EXPECT().Log(gomock.Any(), gomock.Any()).Return(denied)
			},
			expectedErr: denied,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			tc.setupMocks(m)

			err := s.Delete(context.Background(), creator, "ws-1")
			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_ListOrdersByRoleThenRecency(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)

	base := time.Now()
	m.storage.EXPECT().ListWorkspacesByUserID(gomock.Any(), "u-1").Return([]*types.WorkspaceSummary{
		{Workspace: types.Workspace{ID: "viewer-old", CreatedAt: base.Add(-time.Hour)}, UserRole: types.RoleViewer},
		{Workspace: types.Workspace{ID: "owner-old", CreatedAt: base.Add(-time.Hour)}, UserRole: types.RoleOwner},
		{Workspace: types.Workspace{ID: "owner-new", CreatedAt: base}, UserRole: types.RoleOwner},
		{Workspace: types.Workspace{ID: "member-new", CreatedAt: base}, UserRole: types.RoleMember},
	}, nil)

	summaries, err := s.List(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expectedOrder := []string{"owner-new", "owner-old", "member-new", "viewer-old"}
	for i, id := range expectedOrder {
		if summaries[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, summaries[i].ID)
		}
	}
}

func TestService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)

	members := []*types.MemberDetail{
		{WorkspaceMember: types.WorkspaceMember{ID: "m-1", Role: types.RoleOwner}, Email: "owner@x.com"},
	}

	m.authz.EXPECT().RequireMembership(gomock.Any(), "ws-1", "u-1").
		Return(&types.WorkspaceMember{ID: "m-1", Role: types.RoleOwner}, nil)
	m.storage.EXPECT().GetWorkspaceByID(gomock.Any(), "ws-1").
		Return(&types.Workspace{ID: "ws-1", Name: "Acme"}, nil)
	m.storage.EXPECT().ListWorkspaceMembers(gomock.Any(), "ws-1").Return(members, nil)

	detail, err := s.Get(context.Background(), "ws-1", "u-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.UserRole != types.RoleOwner || len(detail.Members) != 1 {
		t.Errorf("unexpected detail: %+v", detail)
	}
}

func TestService_GetHidesWorkspaceFromNonMembers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)
	notMember := errors.New("not a member")
	m.authz.EXPECT().RequireMembership(gomock.Any(), "ws-1", "u-1").Return(nil, notMember)

	if _, err := s.Get(context.Background(), "ws-1", "u-1"); !errors.Is(err, notMember) {
		t.Fatalf("expected membership error, got %v", err)
	}
}
