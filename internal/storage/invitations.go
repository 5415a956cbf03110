// Copyright 2026 Kanbanly Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/kanbanly/workspace-service/internal/types"
)

const invitationColumns = "id, workspace_id, email, role, token, status, invited_by_id, created_at, updated_at, expires_at"

func scanInvitation(row sq.RowScanner) (*types.WorkspaceInvitation, error) {
	var inv types.WorkspaceInvitation
	err := row.Scan(
		&inv.ID, &inv.WorkspaceID, &inv.Email, &inv.Role, &inv.Token,
		&inv.Status, &inv.InvitedByID, &inv.CreatedAt, &inv.UpdatedAt, &inv.ExpiresAt,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (s *Storage) CreateInvitation(ctx context.Context, inv *types.WorkspaceInvitation) (*types.WorkspaceInvitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateInvitation")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	created, err := scanInvitation(s.db.Statement(ctx).
		Insert("workspace_invitations").
		Columns("id", "workspace_id", "email", "role", "token", "status", "invited_by_id", "expires_at").
		Values(id, inv.WorkspaceID, inv.Email, inv.Role, inv.Token, types.InvitationPending, inv.InvitedByID, inv.ExpiresAt).
		Suffix("RETURNING " + invitationColumns).
		QueryRowContext(ctx))

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert invitation: %w", err)
	}

	return created, nil
}

// RefreshInvitation reuses an existing invitation row, resetting it to
// PENDING with a fresh token and expiry. The prior token is invalidated
// by the overwrite.
func (s *Storage) RefreshInvitation(ctx context.Context, id, token string, role types.Role, expiresAt time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.RefreshInvitation")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("workspace_invitations").
		Set("token", token).
		Set("role", role).
		Set("status", types.InvitationPending).
		Set("expires_at", expiresAt).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("failed to refresh invitation: %w", err)
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

// GetInvitationByEmail returns the most recent invitation for the pair.
// Historical CANCELLED rows may exist alongside; the latest row is the
// one the active-invitation invariant applies to.
func (s *Storage) GetInvitationByEmail(ctx context.Context, workspaceID, email string) (*types.WorkspaceInvitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInvitationByEmail")
	defer span.End()

	inv, err := scanInvitation(s.db.Statement(ctx).
		Select(invitationColumns).
		From("workspace_invitations").
		Where(sq.Eq{"workspace_id": workspaceID, "email": email}).
		OrderBy("created_at DESC").
		Limit(1).
		QueryRowContext(ctx))

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}

	return inv, nil
}

func (s *Storage) GetInvitationByToken(ctx context.Context, token string) (*types.WorkspaceInvitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInvitationByToken")
	defer span.End()

	inv, err := scanInvitation(s.db.Statement(ctx).
		Select(invitationColumns).
		From("workspace_invitations").
		Where(sq.Eq{"token": token}).
		QueryRowContext(ctx))

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invitation by token: %w", err)
	}

	return inv, nil
}

func (s *Storage) SetInvitationStatus(ctx context.Context, id string, status types.InvitationStatus) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetInvitationStatus")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("workspace_invitations").
		Set("status", status).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to set invitation status: %w", err)
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

// CancelConsumedInvitations flips CONSUMED invitations for the email to
// CANCELLED. Used when the corresponding member is removed so the email
// can be invited again later.
func (s *Storage) CancelConsumedInvitations(ctx context.Context, workspaceID, email string) error {
	ctx, span := s.tracer.Start(ctx, "storage.CancelConsumedInvitations")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("workspace_invitations").
		Set("status", types.InvitationCancelled).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{
			"workspace_id": workspaceID,
			"email":        email,
			"status":       types.InvitationConsumed,
		}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to cancel consumed invitations: %w", err)
	}

	return nil
}

func (s *Storage) FindCancelableInvitation(ctx context.Context, workspaceID, email string) (*types.WorkspaceInvitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.FindCancelableInvitation")
	defer span.End()

	inv, err := scanInvitation(s.db.Statement(ctx).
		Select(invitationColumns).
		From("workspace_invitations").
		Where(sq.Eq{
			"workspace_id": workspaceID,
			"email":        email,
			"status":       []types.InvitationStatus{types.InvitationPending, types.InvitationExpired},
		}).
		Where(sq.NotEq{"role": types.RoleOwner}).
		OrderBy("created_at DESC").
		Limit(1).
		QueryRowContext(ctx))

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find cancelable invitation: %w", err)
	}

	return inv, nil
}

// ExpirePendingInvitations is the lazy-expiry sweep: PENDING rows whose
// expiry has passed become EXPIRED. Pure bookkeeping, no audit entry.
func (s *Storage) ExpirePendingInvitations(ctx context.Context, workspaceID string, now time.Time) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ExpirePendingInvitations")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("workspace_invitations").
		Set("status", types.InvitationExpired).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"workspace_id": workspaceID, "status": types.InvitationPending}).
		Where(sq.Lt{"expires_at": now}).
		ExecContext(ctx)

	if err != nil {
		return 0, fmt.Errorf("failed to expire invitations: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return rows, nil
}

func (s *Storage) ListInvitationsByWorkspaceID(ctx context.Context, workspaceID string) ([]*types.WorkspaceInvitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListInvitationsByWorkspaceID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(invitationColumns).
		From("workspace_invitations").
		Where(sq.Eq{"workspace_id": workspaceID}).
		OrderBy("created_at ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}
	defer rows.Close()

	var invitations []*types.WorkspaceInvitation
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invitation: %w", err)
		}
		invitations = append(invitations, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return invitations, nil
}
