// Copyright 2026 Kanbanly Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitation

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/kanbanly/workspace-service/internal/authorization"
	"github.com/kanbanly/workspace-service/internal/logging"
	"github.com/kanbanly/workspace-service/internal/monitoring"
	"github.com/kanbanly/workspace-service/internal/storage"
	"github.com/kanbanly/workspace-service/internal/tracing"
	"github.com/kanbanly/workspace-service/internal/types"
	"github.com/kanbanly/workspace-service/pkg/activities"
)

//go:generate mockgen -build_flags=--mod=mod -package invitation -destination ./mock_invitation.go -source=./interfaces.go

type svcMocks struct {
	storage    *MockStorageInterface
	authz      *MockAuthzInterface
	activities *MockActivitiesInterface
	tx         *MockTxManagerInterface
	mailer     *MockMailerInterface
}

func newTestService(ctrl *gomock.Controller) (*Service, svcMocks) {
	m := svcMocks{
		storage:    NewMockStorageInterface(ctrl),
		authz:      NewMockAuthzInterface(ctrl),
		activities: NewMockActivitiesInterface(ctrl),
		tx:         NewMockTxManagerInterface(ctrl),
		mailer:     NewMockMailerInterface(ctrl),
	}

	s := NewService(
		m.storage, m.authz, m.activities, m.tx, m.mailer, 72*time.Hour,
		tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger(),
	)

	return s, m
}

// passThroughTx makes the mocked transaction manager run the unit
// directly, which keeps the commit/rollback decision observable through
// the returned error.
func passThroughTx(m *MockTxManagerInterface) {
	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
}

var (
	inviter   = &types.User{ID: "u-owner", Email: "owner@x.com", Username: "owner"}
	workspace = &types.Workspace{ID: "ws-1", Name: "Acme", Slug: "acme"}
)

func expectIssueGate(m svcMocks) {
	m.authz.EXPECT().RequireRole(gomock.Any(), "ws-1", inviter.ID, types.RoleOwner, types.RoleAdmin).
		Return(&types.WorkspaceMember{Role: types.RoleOwner}, nil)
	m.storage.EXPECT().GetWorkspaceByID(gomock.Any(), "ws-1").Return(workspace, nil)
}

func TestService_IssueBatchAggregatesConflictsWithZeroWrites(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)
	expectIssueGate(m)

	// a@x.com is already a member.
	m.storage.EXPECT().GetMemberByEmail(gomock.Any(), "ws-1", "a@x.com").
		Return(&types.MemberDetail{Email: "a@x.com"}, nil)

	// b@x.com holds a live pending invitation.
	m.storage.EXPECT().GetMemberByEmail(gomock.Any(), "ws-1", "b@x.com").Return(nil, storage.ErrNotFound)
	m.storage.EXPECT().GetInvitationByEmail(gomock.Any(), "ws-1", "b@x.com").
		Return(&types.WorkspaceInvitation{
			ID: "inv-b", Status: types.InvitationPending, ExpiresAt: time.Now().Add(time.Hour),
		}, nil)

	// c@x.com is clean, yet must not be written because the batch fails.
	m.storage.EXPECT().GetMemberByEmail(gomock.Any(), "ws-1", "c@x.com").Return(nil, storage.ErrNotFound)
	m.storage.EXPECT().GetInvitationByEmail(gomock.Any(), "ws-1", "c@x.com").Return(nil, storage.ErrNotFound)

	_, err := s.IssueBatch(context.Background(), inviter, "ws-1", []BatchEntry{
		{Email: "a@x.com", Role: types.RoleMember},
		{Email: "b@x.com", Role: types.RoleMember},
		{Email: "c@x.com", Role: types.RoleViewer},
	})

	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if len(conflict.AlreadyMember) != 1 || conflict.AlreadyMember[0] != "a@x.com" {
		t.Errorf("expected alreadyMember [a@x.com], got %v", conflict.AlreadyMember)
	}
	if len(conflict.AlreadyInvited) != 1 || conflict.AlreadyInvited[0] != "b@x.com" {
		t.Errorf("expected alreadyInvited [b@x.com], got %v", conflict.AlreadyInvited)
	}
}

func TestService_IssueBatchTreatsConsumedInvitationAsActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)
	expectIssueGate(m)

	m.storage.EXPECT().GetMemberByEmail(gomock.Any(), "ws-1", "a@x.com").Return(nil, storage.ErrNotFound)
	m.storage.EXPECT().GetInvitationByEmail(gomock.Any(), "ws-1", "a@x.com").
		Return(&types.WorkspaceInvitation{
			ID: "inv-a", Status: types.InvitationConsumed, ExpiresAt: time.Now().Add(-time.Hour),
		}, nil)

	_, err := s.IssueBatch(context.Background(), inviter, "ws-1", []BatchEntry{
		{Email: "a@x.com", Role: types.RoleMember},
	})

	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if len(conflict.AlreadyInvited) != 1 {
		t.Errorf("expected consumed invitation to conflict, got %v", conflict.AlreadyInvited)
	}
}

func TestService_IssueBatchReusesExpiredRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)
	expectIssueGate(m)
	passThroughTx(m.tx)

	m.storage.EXPECT().GetMemberByEmail(gomock.Any(), "ws-1", "a@x.com").Return(nil, storage.ErrNotFound)
	m.storage.EXPECT().GetInvitationByEmail(gomock.Any(), "ws-1", "a@x.com").
		Return(&types.WorkspaceInvitation{
			ID: "inv-a", Status: types.InvitationPending, ExpiresAt: time.Now().Add(-time.Hour),
		}, nil)

	var issuedToken string
	m.storage.EXPECT().RefreshInvitation(gomock.Any(), "inv-a", gomock.Any(), types.RoleMember, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, token string, _ types.Role, _ time.Time) error {
			issuedToken = token
			return nil
		})
	m.activities.EXPECT().Log(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e activities.Entry) error {
		if e.Action != types.ActionInvitationRefreshed {
			t.Errorf("expected INVITATION_REFRESHED audit, got %s", e.Action)
		}
		return nil
	})
	m.mailer.EXPECT().SendInvitation(gomock.Any(), "a@x.com", "owner", "Acme", gomock.Any()).Return(nil)

	result, err := s.IssueBatch(context.Background(), inviter, "ws-1", []BatchEntry{
		{Email: "a@x.com", Role: types.RoleMember},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Invitations) != 1 {
		t.Fatalf("expected 1 invitation, got %d", len(result.Invitations))
	}
	if result.Invitations[0].ID != "inv-a" {
		t.Errorf("expected row inv-a to be reused, got %s", result.Invitations[0].ID)
	}
	if len(issuedToken) != 64 {
		t.Errorf("expected a 256-bit hex token, got %q", issuedToken)
	}
	if len(result.FailedEmails) != 0 {
		t.Errorf("expected no failed emails, got %v", result.FailedEmails)
	}
}

func TestService_IssueBatchCreatesNewInvitation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)
	expectIssueGate(m)
	passThroughTx(m.tx)

	m.storage.EXPECT().GetMemberByEmail(gomock.Any(), "ws-1", "a@x.com").Return(nil, storage.ErrNotFound)
	m.storage.EXPECT().GetInvitationByEmail(gomock.Any(), "ws-1", "a@x.com").Return(nil, storage.ErrNotFound)

	m.storage.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inv *types.WorkspaceInvitation) (*types.WorkspaceInvitation, error) {
			if inv.Email != "a@x.com" || inv.Role != types.RoleViewer {
				t.Errorf("unexpected invitation payload: %+v", inv)
			}
			created := *inv
			created.ID = "inv-new"
			created.Status = types.InvitationPending
			return &created, nil
		})
	m.activities.EXPECT().Log(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e activities.Entry) error {
		if e.Action != types.ActionInvitationSent {
			t.Errorf("expected INVITATION_SENT audit, got %s", e.Action)
		}
		if e.TargetEmail != "a@x.com" {
			t.Errorf("expected target email a@x.com, got %s", e.TargetEmail)
		}
		return nil
	})
	m.mailer.EXPECT().SendInvitation(gomock.Any(), "a@x.com", "owner", "Acme", gomock.Any()).Return(nil)

	result, err := s.IssueBatch(context.Background(), inviter, "ws-1", []BatchEntry{
		{Email: "A@X.com ", Role: types.RoleViewer},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Invitations[0].ID != "inv-new" {
		t.Errorf("expected created invitation, got %+v", result.Invitations[0])
	}
}

func TestService_IssueBatchReportsMailFailuresWithoutRollback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)
	expectIssueGate(m)
	passThroughTx(m.tx)

	m.storage.EXPECT().GetMemberByEmail(gomock.Any(), "ws-1", "a@x.com").Return(nil, storage.ErrNotFound)
	m.storage.EXPECT().GetInvitationByEmail(gomock.Any(), "ws-1", "a@x.com").Return(nil, storage.ErrNotFound)
	m.storage.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inv *types.WorkspaceInvitation) (*types.WorkspaceInvitation, error) {
			created := *inv
			created.ID = "inv-new"
			return &created, nil
		})
	m.activities.EXPECT().Log(gomock.Any(), gomock.Any()).Return(nil)
	m.mailer.EXPECT().SendInvitation(gomock.Any(), "a@x.com", gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("smtp unavailable"))

	result, err := s.IssueBatch(context.Background(), inviter, "ws-1", []BatchEntry{
		{Email: "a@x.com", Role: types.RoleMember},
	})
	if err != nil {
		t.Fatalf("mail failure must not fail the batch, got %v", err)
	}
	if len(result.Invitations) != 1 {
		t.Fatalf("expected the committed invitation in the result, got %d", len(result.Invitations))
	}
	if len(result.FailedEmails) != 1 || result.FailedEmails[0] != "a@x.com" {
		t.Errorf("expected failedEmails [a@x.com], got %v", result.FailedEmails)
	}
}

func TestService_IssueBatchRejectsOwnerRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)
	expectIssueGate(m)

	_, err := s.IssueBatch(context.Background(), inviter, "ws-1", []BatchEntry{
		{Email: "a@x.com", Role: types.RoleOwner},
	})
	if !errors.Is(err, ErrOwnerRole) {
		t.Fatalf("expected ErrOwnerRole, got %v", err)
	}
}

func TestService_IssueBatchAuditFailureAbortsUnit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)
	expectIssueGate(m)
	passThroughTx(m.tx)

	auditErr := errors.New("audit insert failed")

	m.storage.EXPECT().GetMemberByEmail(gomock.Any(), "ws-1", "a@x.com").Return(nil, storage.ErrNotFound)
	m.storage.EXPECT().GetInvitationByEmail(gomock.Any(), "ws-1", "a@x.com").Return(nil, storage.ErrNotFound)
	m.storage.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inv *types.WorkspaceInvitation) (*types.WorkspaceInvitation, error) {
			created := *inv
			created.ID = "inv-new"
			return &created, nil
		})
	m.activities.EXPECT().Log(gomock.Any(), gomock.Any()).Return(auditErr)

	// No mail may go out for an aborted unit.
	_, err := s.IssueBatch(context.Background(), inviter, "ws-1", []BatchEntry{
		{Email: "a@x.com", Role: types.RoleMember},
	})
	if !errors.Is(err, auditErr) {
		t.Fatalf("expected audit error to surface, got %v", err)
	}
}

func TestService_IssueBatchPropagatesAuthzDenial(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)
	m.authz.EXPECT().RequireRole(gomock.Any(), "ws-1", inviter.ID, types.RoleOwner, types.RoleAdmin).
		Return(nil, authorization.ErrInsufficientRole)

	_, err := s.IssueBatch(context.Background(), inviter, "ws-1", []BatchEntry{
		{Email: "a@x.com", Role: types.RoleMember},
	})
	if !errors.Is(err, authorization.ErrInsufficientRole) {
		t.Fatalf("expected ErrInsufficientRole, got %v", err)
	}
}

func TestService_Accept(t *testing.T) {
	user := &types.User{ID: "u-2", Email: "a@x.com", Username: "alice"}
	pending := func() *types.WorkspaceInvitation {
		return &types.WorkspaceInvitation{
			ID: "inv-1", WorkspaceID: "ws-1", Email: "a@x.com", Role: types.RoleMember,
			Token: "tok", Status: types.InvitationPending, ExpiresAt: time.Now().Add(time.Hour),
		}
	}

	testCases := []struct {
		name        string
		setupMocks  func(svcMocks)
		expectedErr error
	}{
		{
			name: "unknown token",
			setupMocks: func(m svcMocks) {
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), "tok").Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrNotFound,
		},
		{
			name: "expired wins over status",
			setupMocks: func(m svcMocks) {
				inv := pending()
				inv.Status = types.InvitationConsumed
				inv.ExpiresAt = time.Now().Add(-time.Minute)
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), "tok").Return(inv, nil)
			},
			expectedErr: ErrExpired,
		},
		{
			name: "cancelled invitation cannot be accepted",
			setupMocks: func(m svcMocks) {
				inv := pending()
				inv.Status = types.InvitationCancelled
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), "tok").Return(inv, nil)
			},
			expectedErr: ErrAlreadyUsed,
		},
		{
			name: "email mismatch",
			setupMocks: func(m svcMocks) {
				inv := pending()
				inv.Email = "someone-else@x.com"
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), "tok").Return(inv, nil)
			},
			expectedErr: ErrEmailMismatch,
		},
		{
			name: "already a member",
			setupMocks: func(m svcMocks) {
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), "tok").Return(pending(), nil)
				m.storage.EXPECT().GetWorkspaceMember(gomock.Any(), "ws-1", "u-2").
					Return(&types.WorkspaceMember{ID: "m-1"}, nil)
			},
			expectedErr: ErrAlreadyMember,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			tc.setupMocks(m)

			_, err := s.Accept(context.Background(), user, "tok")
			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestService_AcceptCreatesMemberAndConsumesInvitation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)
	passThroughTx(m.tx)

	user := &types.User{ID: "u-2", Email: "A@x.com", Username: "alice"}
	inv := &types.WorkspaceInvitation{
		ID: "inv-1", WorkspaceID: "ws-1", Email: "a@x.com", Role: types.RoleViewer,
		Token: "tok", Status: types.InvitationPending, ExpiresAt: time.Now().Add(time.Hour),
	}
	member := &types.WorkspaceMember{ID: "m-9", WorkspaceID: "ws-1", UserID: "u-2", Role: types.RoleViewer}

	m.storage.EXPECT().GetInvitationByToken(gomock.Any(), "tok").Return(inv, nil)
	m.storage.EXPECT().GetWorkspaceMember(gomock.Any(), "ws-1", "u-2").Return(nil, storage.ErrNotFound)
	m.storage.EXPECT().GetWorkspaceByID(gomock.Any(), "ws-1").Return(workspace, nil)
	m.storage.EXPECT().AddWorkspaceMember(gomock.Any(), "ws-1", "u-2", types.RoleViewer).Return(member, nil)
	m.storage.EXPECT().SetInvitationStatus(gomock.Any(), "inv-1", types.InvitationConsumed).Return(nil)
	m.activities.EXPECT().Log(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e activities.Entry) error {
		if e.Action != types.ActionMemberAdded {
			t.Errorf("expected MEMBER_ADDED audit, got %s", e.Action)
		}
		return nil
	})

	got, err := s.Accept(context.Background(), user, "tok")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != member {
		t.Errorf("expected created member, got %+v", got)
	}
}

func TestService_CancelOrRemove(t *testing.T) {
	requester := &types.User{ID: "u-owner", Email: "owner@x.com"}

	expectGate := func(m svcMocks) {
		m.authz.EXPECT().RequireRole(gomock.Any(), "ws-1", requester.ID, types.RoleOwner, types.RoleAdmin).
			Return(&types.WorkspaceMember{Role: types.RoleOwner}, nil)
	}

	t.Run("self removal rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newTestService(ctrl)
		expectGate(m)

		err := s.CancelOrRemove(context.Background(), requester, "ws-1", "owner@x.com")
		if !errors.Is(err, ErrSelfRemoval) {
			t.Fatalf("expected ErrSelfRemoval, got %v", err)
		}
	})

	t.Run("member removal cancels consumed invitation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newTestService(ctrl)
		expectGate(m)
		passThroughTx(m.tx)

		member := &types.MemberDetail{
			WorkspaceMember: types.WorkspaceMember{ID: "m-2", WorkspaceID: "ws-1", UserID: "u-2", Role: types.RoleMember},
			Email:           "a@x.com",
		}

		m.storage.EXPECT().GetWorkspaceByID(gomock.Any(), "ws-1").Return(workspace, nil)
		m.storage.EXPECT().GetMemberByEmail(gomock.Any(), "ws-1", "a@x.com").Return(member, nil)
		m.storage.EXPECT().RemoveWorkspaceMember(gomock.Any(), "m-2").Return(nil)
		m.storage.EXPECT().CancelConsumedInvitations(gomock.Any(), "ws-1", "a@x.com").Return(nil)
		m.activities.EXPECT().Log(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e activities.Entry) error {
			if e.Action != types.ActionMemberRemoved {
				t.Errorf("expected MEMBER_REMOVED audit, got %s", e.Action)
			}
			return nil
		})

		if err := s.CancelOrRemove(context.Background(), requester, "ws-1", "a@x.com"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("owners are never a removable target", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newTestService(ctrl)
		expectGate(m)

		// The owner's member row falls through to the invitation lookup,
		// which cannot match an owner either.
		owner := &types.MemberDetail{
			WorkspaceMember: types.WorkspaceMember{ID: "m-1", Role: types.RoleOwner},
			Email:           "other-owner@x.com",
		}
		m.storage.EXPECT().GetWorkspaceByID(gomock.Any(), "ws-1").Return(workspace, nil)
		m.storage.EXPECT().GetMemberByEmail(gomock.Any(), "ws-1", "other-owner@x.com").Return(owner, nil)
		m.storage.EXPECT().FindCancelableInvitation(gomock.Any(), "ws-1", "other-owner@x.com").
			Return(nil, storage.ErrNotFound)

		err := s.CancelOrRemove(context.Background(), requester, "ws-1", "other-owner@x.com")
		if !errors.Is(err, ErrNoTarget) {
			t.Fatalf("expected ErrNoTarget, got %v", err)
		}
	})

	t.Run("falls back to cancelling a pending invitation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newTestService(ctrl)
		expectGate(m)
		passThroughTx(m.tx)

		m.storage.EXPECT().GetWorkspaceByID(gomock.Any(), "ws-1").Return(workspace, nil)
		m.storage.EXPECT().GetMemberByEmail(gomock.Any(), "ws-1", "a@x.com").Return(nil, storage.ErrNotFound)
		m.storage.EXPECT().FindCancelableInvitation(gomock.Any(), "ws-1", "a@x.com").
			Return(&types.WorkspaceInvitation{ID: "inv-1", Status: types.InvitationPending}, nil)
		m.storage.EXPECT().SetInvitationStatus(gomock.Any(), "inv-1", types.InvitationCancelled).Return(nil)
		m.activities.EXPECT().Log(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e activities.Entry) error {
			if e.Action != types.ActionInvitationCanceled {
				t.Errorf("expected INVITATION_CANCELED audit, got %s", e.Action)
			}
			return nil
		})

		if err := s.CancelOrRemove(context.Background(), requester, "ws-1", "a@x.com"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("nothing to cancel or remove", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newTestService(ctrl)
		expectGate(m)

		m.storage.EXPECT().GetWorkspaceByID(gomock.Any(), "ws-1").Return(workspace, nil)
		m.storage.EXPECT().GetMemberByEmail(gomock.Any(), "ws-1", "ghost@x.com").Return(nil, storage.ErrNotFound)
		m.storage.EXPECT().FindCancelableInvitation(gomock.Any(), "ws-1", "ghost@x.com").Return(nil, storage.ErrNotFound)

		err := s.CancelOrRemove(context.Background(), requester, "ws-1", "ghost@x.com")
		if !errors.Is(err, ErrNoTarget) {
			t.Fatalf("expected ErrNoTarget, got %v", err)
		}
	})
}

func TestService_ListAllFiltersAndSynthesizesOwners(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)
	requester := &types.User{ID: "u-owner", Email: "owner@x.com"}

	m.authz.EXPECT().RequireRole(gomock.Any(), "ws-1", requester.ID, types.RoleOwner, types.RoleAdmin).
		Return(&types.WorkspaceMember{Role: types.RoleOwner}, nil)
	m.storage.EXPECT().ExpirePendingInvitations(gomock.Any(), "ws-1", gomock.Any()).Return(int64(1), nil)

	base := time.Now()
	m.storage.EXPECT().ListInvitationsByWorkspaceID(gomock.Any(), "ws-1").Return([]*types.WorkspaceInvitation{
		{ID: "inv-p", Email: "p@x.com", Role: types.RoleMember, Status: types.InvitationPending, CreatedAt: base},
		{ID: "inv-x", Email: "x@x.com", Role: types.RoleMember, Status: types.InvitationCancelled, CreatedAt: base},
		{ID: "inv-c", Email: "c@x.com", Role: types.RoleViewer, Status: types.InvitationConsumed, CreatedAt: base},
		{ID: "inv-o", Email: "gone@x.com", Role: types.RoleMember, Status: types.InvitationConsumed, CreatedAt: base},
	}, nil)
	m.storage.EXPECT().ListWorkspaceMembers(gomock.Any(), "ws-1").Return([]*types.MemberDetail{
		{WorkspaceMember: types.WorkspaceMember{ID: "m-owner", Role: types.RoleOwner, CreatedAt: base.Add(-time.Hour)}, Email: "owner@x.com"},
		{WorkspaceMember: types.WorkspaceMember{ID: "m-c", Role: types.RoleViewer}, Email: "c@x.com"},
	}, nil)
	m.storage.EXPECT().ListMembersByRole(gomock.Any(), "ws-1", types.RoleOwner).Return([]*types.MemberDetail{
		{WorkspaceMember: types.WorkspaceMember{ID: "m-owner", Role: types.RoleOwner, CreatedAt: base.Add(-time.Hour)}, Email: "owner@x.com"},
	}, nil)

	entries, err := s.ListAll(context.Background(), requester, "ws-1", SortByStatus)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Owner row first, then consumed-with-member, then pending. The
	// cancelled row and the orphaned consumed row never appear.
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if !entries[0].IsOwner || entries[0].Email != "owner@x.com" {
		t.Errorf("expected synthesized owner entry first, got %+v", entries[0])
	}
	if entries[0].Status != types.InvitationConsumed || entries[0].ExpiresAt != nil {
		t.Errorf("owner entry must be CONSUMED with no expiry, got %+v", entries[0])
	}
	if entries[1].ID != "inv-c" || entries[2].ID != "inv-p" {
		t.Errorf("expected status order CONSUMED < PENDING, got %s then %s", entries[1].ID, entries[2].ID)
	}
}

func TestService_ListAllSortModes(t *testing.T) {
	base := time.Now()
	invitations := []*types.WorkspaceInvitation{
		{ID: "old-expired-admin", Email: "a@x.com", Role: types.RoleAdmin, Status: types.InvitationExpired, CreatedAt: base.Add(-2 * time.Hour)},
		{ID: "new-pending-viewer", Email: "b@x.com", Role: types.RoleViewer, Status: types.InvitationPending, CreatedAt: base},
		{ID: "mid-pending-member", Email: "c@x.com", Role: types.RoleMember, Status: types.InvitationPending, CreatedAt: base.Add(-time.Hour)},
	}

	testCases := []struct {
		name          string
		sortBy        Sort
		expectedOrder []string
	}{
		{
			name:          "status priority",
			sortBy:        SortByStatus,
			expectedOrder: []string{"new-pending-viewer", "mid-pending-member", "old-expired-admin"},
		},
		{
			name:          "newest first",
			sortBy:        SortByNewest,
			expectedOrder: []string{"new-pending-viewer", "mid-pending-member", "old-expired-admin"},
		},
		{
			name:          "oldest first",
			sortBy:        SortByOldest,
			expectedOrder: []string{"old-expired-admin", "mid-pending-member", "new-pending-viewer"},
		},
		{
			name:          "role priority",
			sortBy:        SortByRole,
			expectedOrder: []string{"old-expired-admin", "mid-pending-member", "new-pending-viewer"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			requester := &types.User{ID: "u-owner", Email: "owner@x.com"}

			m.authz.EXPECT().RequireRole(gomock.Any(), "ws-1", requester.ID, types.RoleOwner, types.RoleAdmin).
				Return(&types.WorkspaceMember{Role: types.RoleOwner}, nil)
			m.storage.EXPECT().ExpirePendingInvitations(gomock.Any(), "ws-1", gomock.Any()).Return(int64(0), nil)
			m.storage.EXPECT().ListInvitationsByWorkspaceID(gomock.Any(), "ws-1").Return(invitations, nil)
			m.storage.EXPECT().ListWorkspaceMembers(gomock.Any(), "ws-1").Return([]*types.MemberDetail{}, nil)
			m.storage.EXPECT().ListMembersByRole(gomock.Any(), "ws-1", types.RoleOwner).Return([]*types.MemberDetail{}, nil)

			entries, err := s.ListAll(context.Background(), requester, "ws-1", tc.sortBy)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(entries) != len(tc.expectedOrder) {
				t.Fatalf("expected %d entries, got %d", len(tc.expectedOrder), len(entries))
			}
			for i, id := range tc.expectedOrder {
				if entries[i].ID != id {
					t.Errorf("position %d: expected %s, got %s", i, id, entries[i].ID)
				}
			}
		})
	}
}

func TestService_ValidateToken(t *testing.T) {
	testCases := []struct {
		name        string
		setupMocks  func(svcMocks)
		expectedErr error
	}{
		{
			name: "unknown token",
			setupMocks: func(m svcMocks) {
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), "tok").Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrNotFound,
		},
		{
			name: "expired token",
			setupMocks: func(m svcMocks) {
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), "tok").
					Return(&types.WorkspaceInvitation{
						Status: types.InvitationPending, ExpiresAt: time.Now().Add(-time.Minute),
					}, nil)
			},
			expectedErr: ErrExpired,
		},
		{
			name: "consumed token",
			setupMocks: func(m svcMocks) {
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), "tok").
					Return(&types.WorkspaceInvitation{
						Status: types.InvitationConsumed, ExpiresAt: time.Now().Add(time.Hour),
					}, nil)
			},
			expectedErr: ErrAlreadyUsed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			tc.setupMocks(m)

			_, err := s.ValidateToken(context.Background(), "tok")
			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}

	t.Run("valid token resolves workspace and inviter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newTestService(ctrl)

		expiresAt := time.Now().Add(time.Hour)
		m.storage.EXPECT().GetInvitationByToken(gomock.Any(), "tok").
			Return(&types.WorkspaceInvitation{
				ID: "inv-1", WorkspaceID: "ws-1", Email: "a@x.com", Role: types.RoleMember,
				Status: types.InvitationPending, InvitedByID: "u-owner", ExpiresAt: expiresAt,
			}, nil)
		m.storage.EXPECT().GetWorkspaceByID(gomock.Any(), "ws-1").Return(workspace, nil)
		m.storage.EXPECT().GetUserByID(gomock.Any(), "u-owner").Return(inviter, nil)

		info, err := s.ValidateToken(context.Background(), "tok")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if info.WorkspaceName != "Acme" || info.Email != "a@x.com" || info.InviterName != "owner" {
			t.Errorf("unexpected token info: %+v", info)
		}
	})
}
