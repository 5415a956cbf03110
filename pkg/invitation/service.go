// Copyright 2026 Kanbanly Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package invitation implements the invitation lifecycle: issuance,
// acceptance, cancellation and listing. Invitations move through
// PENDING, CONSUMED, EXPIRED and CANCELLED; CANCELLED is terminal and
// EXPIRED is materialized lazily on reads, there is no background
// timer.
package invitation

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/kanbanly/workspace-service/internal/logging"
	"github.com/kanbanly/workspace-service/internal/monitoring"
	"github.com/kanbanly/workspace-service/internal/storage"
	"github.com/kanbanly/workspace-service/internal/tracing"
	"github.com/kanbanly/workspace-service/internal/types"
	"github.com/kanbanly/workspace-service/pkg/activities"
)

const tokenBytes = 32

// BatchEntry is one requested invitation in an IssueBatch call.
type BatchEntry struct {
	Email string     `json:"email" validate:"required,email"`
	Role  types.Role `json:"role" validate:"required"`
}

// BatchResult reports what a successful IssueBatch committed. Emails in
// FailedEmails got their invitation row but not their notification;
// delivery failures never roll back the committed state.
type BatchResult struct {
	Invitations  []*types.WorkspaceInvitation `json:"invitations"`
	FailedEmails []string                     `json:"failedEmails,omitempty"`
}

// Entry is one row of a ListAll response. Owner rows are synthesized
// from the member table: owners never go through an invitation, so
// they appear with status CONSUMED, no expiry and IsOwner set.
type Entry struct {
	ID        string                 `json:"id"`
	Email     string                 `json:"email"`
	Role      types.Role             `json:"role"`
	Status    types.InvitationStatus `json:"status"`
	IsOwner   bool                   `json:"isOwner"`
	CreatedAt time.Time              `json:"createdAt"`
	ExpiresAt *time.Time             `json:"expiresAt,omitempty"`
}

// TokenInfo is the public view of a pending invitation, shown before
// the invitee authenticates.
type TokenInfo struct {
	WorkspaceID   string     `json:"workspaceId"`
	WorkspaceName string     `json:"workspaceName"`
	Email         string     `json:"email"`
	Role          types.Role `json:"role"`
	InviterName   string     `json:"inviterName"`
	ExpiresAt     time.Time  `json:"expiresAt"`
}

type Sort string

const (
	SortByStatus Sort = "status"
	SortByNewest Sort = "newest"
	SortByOldest Sort = "oldest"
	SortByRole   Sort = "role"
)

func ParseSort(s string) Sort {
	switch Sort(s) {
	case SortByNewest, SortByOldest, SortByRole:
		return Sort(s)
	default:
		return SortByStatus
	}
}

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage    StorageInterface
	authz      AuthzInterface
	activities ActivitiesInterface
	tx         TxManagerInterface
	mailer     MailerInterface

	lifetime time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// candidate is one validated batch entry, ready for the execution
// phase. refreshID is set when an existing expired row will be reused.
type candidate struct {
	email     string
	role      types.Role
	refreshID string
}

// IssueBatch creates or refreshes one invitation per entry. The batch
// is strictly two-phase: every entry is validated against current
// member and invitation state first, and conflicts across the whole
// batch are aggregated into one ConflictError with zero writes. Only a
// fully clean batch proceeds to the write phase, which commits all
// invitation rows and their audit entries in one transaction. Email
// delivery happens after commit and failures are reported, not rolled
// back.
func (s *Service) IssueBatch(ctx context.Context, inviter *types.User, workspaceID string, entries []BatchEntry) (*BatchResult, error) {
	ctx, span := s.tracer.Start(ctx, "invitation.Service.IssueBatch")
	defer span.End()

	if _, err := s.authz.RequireRole(ctx, workspaceID, inviter.ID, types.RoleOwner, types.RoleAdmin); err != nil {
		return nil, err
	}

	workspace, err := s.storage.GetWorkspaceByID(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	candidates := make([]candidate, 0, len(entries))
	conflicts := &ConflictError{}

	for _, entry := range entries {
		email := strings.ToLower(strings.TrimSpace(entry.Email))

		switch entry.Role {
		case types.RoleAdmin, types.RoleMember, types.RoleViewer:
		case types.RoleOwner:
			return nil, fmt.Errorf("%w: %s", ErrOwnerRole, email)
		default:
			return nil, fmt.Errorf("invalid role %q for %s", entry.Role, email)
		}

		_, err := s.storage.GetMemberByEmail(ctx, workspaceID, email)
		if err == nil {
			conflicts.AlreadyMember = append(conflicts.AlreadyMember, email)
			continue
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("failed to check membership for %s: %w", email, err)
		}

		existing, err := s.storage.GetInvitationByEmail(ctx, workspaceID, email)
		if errors.Is(err, storage.ErrNotFound) {
			candidates = append(candidates, candidate{email: email, role: entry.Role})
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to check invitation for %s: %w", email, err)
		}

		switch {
		case existing.Status == types.InvitationPending && existing.ExpiresAt.After(now):
			conflicts.AlreadyInvited = append(conflicts.AlreadyInvited, email)
		case existing.Status == types.InvitationConsumed:
			// Membership has no expiry, so a consumed invitation stays
			// active until the member is removed.
			conflicts.AlreadyInvited = append(conflicts.AlreadyInvited, email)
		case existing.Status == types.InvitationPending || existing.Status == types.InvitationExpired:
			candidates = append(candidates, candidate{email: email, role: entry.Role, refreshID: existing.ID})
		default:
			candidates = append(candidates, candidate{email: email, role: entry.Role})
		}
	}

	if len(conflicts.AlreadyMember) > 0 || len(conflicts.AlreadyInvited) > 0 {
		return nil, conflicts
	}

	result := &BatchResult{
		Invitations: make([]*types.WorkspaceInvitation, 0, len(candidates)),
	}

	err = s.tx.WithTx(ctx, func(txCtx context.Context) error {
		for _, c := range candidates {
			token, err := newToken()
			if err != nil {
				return err
			}
			expiresAt := time.Now().Add(s.lifetime)

			var inv *types.WorkspaceInvitation
			action := types.ActionInvitationSent

			if c.refreshID != "" {
				if err := s.storage.RefreshInvitation(txCtx, c.refreshID, token, c.role, expiresAt); err != nil {
					return err
				}
				inv = &types.WorkspaceInvitation{
					ID:          c.refreshID,
					WorkspaceID: workspaceID,
					Email:       c.email,
					Role:        c.role,
					Token:       token,
					Status:      types.InvitationPending,
					InvitedByID: inviter.ID,
					ExpiresAt:   expiresAt,
				}
				action = types.ActionInvitationRefreshed
			} else {
				inv, err = s.storage.CreateInvitation(txCtx, &types.WorkspaceInvitation{
					WorkspaceID: workspaceID,
					Email:       c.email,
					Role:        c.role,
					Token:       token,
					InvitedByID: inviter.ID,
					ExpiresAt:   expiresAt,
				})
				if err != nil {
					return err
				}
			}

			if err := s.activities.Log(txCtx, activities.Entry{
				User:          inviter,
				Action:        action,
				WorkspaceID:   workspaceID,
				WorkspaceName: workspace.Name,
				TargetEmail:   c.email,
				Metadata: map[string]any{
					"invitationId": inv.ID,
					"email":        c.email,
					"role":         c.role,
				},
			}); err != nil {
				return err
			}

			result.Invitations = append(result.Invitations, inv)
		}
		return nil
	})
	if err != nil {
		// The partial unique index on active invitations is the final
		// authority for the validate/write race between concurrent
		// batches; a duplicate-key failure here means another batch won.
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, &ConflictError{AlreadyInvited: emailsOf(candidates)}
		}
		return nil, err
	}

	for _, inv := range result.Invitations {
		if err := s.mailer.SendInvitation(ctx, inv.Email, inviterName(inviter), workspace.Name, inv.Token); err != nil {
			s.logger.Warnf("failed to send invitation email to %s: %v", inv.Email, err)
			result.FailedEmails = append(result.FailedEmails, inv.Email)
		}
	}

	return result, nil
}

// Accept redeems a pending invitation for the authenticated user.
// Possession of the token is not enough: the caller's email must match
// the one the invitation was issued to.
func (s *Service) Accept(ctx context.Context, user *types.User, token string) (*types.WorkspaceMember, error) {
	ctx, span := s.tracer.Start(ctx, "invitation.Service.Accept")
	defer span.End()

	inv, err := s.storage.GetInvitationByToken(ctx, token)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if time.Now().After(inv.ExpiresAt) {
		return nil, ErrExpired
	}
	if inv.Status != types.InvitationPending {
		return nil, ErrAlreadyUsed
	}
	if !strings.EqualFold(inv.Email, user.Email) {
		s.logger.Security().PermissionDenied(user.ID, fmt.Sprintf("invitation:%s", inv.ID))
		return nil, ErrEmailMismatch
	}

	if _, err := s.storage.GetWorkspaceMember(ctx, inv.WorkspaceID, user.ID); err == nil {
		return nil, ErrAlreadyMember
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	workspace, err := s.storage.GetWorkspaceByID(ctx, inv.WorkspaceID)
	if err != nil {
		return nil, err
	}

	var member *types.WorkspaceMember
	err = s.tx.WithTx(ctx, func(txCtx context.Context) error {
		member, err = s.storage.AddWorkspaceMember(txCtx, inv.WorkspaceID, user.ID, inv.Role)
		if err != nil {
			if errors.Is(err, storage.ErrDuplicateKey) {
				return ErrAlreadyMember
			}
			return err
		}

		if err := s.storage.SetInvitationStatus(txCtx, inv.ID, types.InvitationConsumed); err != nil {
			return err
		}

		return s.activities.Log(txCtx, activities.Entry{
			User:          user,
			Action:        types.ActionMemberAdded,
			WorkspaceID:   inv.WorkspaceID,
			WorkspaceName: workspace.Name,
			Metadata: map[string]any{
				"invitationId": inv.ID,
				"role":         inv.Role,
			},
		})
	})
	if err != nil {
		return nil, err
	}

	return member, nil
}

// CancelOrRemove retires an email from the workspace. A matching
// non-OWNER member is removed (and any consumed invitation for the
// email flipped to CANCELLED so it can be re-invited later); failing
// that, a pending or expired invitation is cancelled. OWNER rows are
// never removable: they fall through to the invitation lookup, which
// cannot match an owner either, so the request reports no target.
func (s *Service) CancelOrRemove(ctx context.Context, requester *types.User, workspaceID, targetEmail string) error {
	ctx, span := s.tracer.Start(ctx, "invitation.Service.CancelOrRemove")
	defer span.End()

	if _, err := s.authz.RequireRole(ctx, workspaceID, requester.ID, types.RoleOwner, types.RoleAdmin); err != nil {
		return err
	}

	email := strings.ToLower(strings.TrimSpace(targetEmail))
	if strings.EqualFold(email, requester.Email) {
		return ErrSelfRemoval
	}

	workspace, err := s.storage.GetWorkspaceByID(ctx, workspaceID)
	if err != nil {
		return err
	}

	member, err := s.storage.GetMemberByEmail(ctx, workspaceID, email)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	if err == nil && member.Role != types.RoleOwner {
		return s.tx.WithTx(ctx, func(txCtx context.Context) error {
			if err := s.storage.RemoveWorkspaceMember(txCtx, member.ID); err != nil {
				return err
			}
			if err := s.storage.CancelConsumedInvitations(txCtx, workspaceID, email); err != nil {
				return err
			}
			return s.activities.Log(txCtx, activities.Entry{
				User:          requester,
				Action:        types.ActionMemberRemoved,
				WorkspaceID:   workspaceID,
				WorkspaceName: workspace.Name,
				TargetEmail:   email,
				Metadata: map[string]any{
					"memberId": member.ID,
					"email":    email,
					"role":     member.Role,
				},
			})
		})
	}

	inv, err := s.storage.FindCancelableInvitation(ctx, workspaceID, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNoTarget
		}
		return err
	}

	return s.tx.WithTx(ctx, func(txCtx context.Context) error {
		if err := s.storage.SetInvitationStatus(txCtx, inv.ID, types.InvitationCancelled); err != nil {
			return err
		}
		return s.activities.Log(txCtx, activities.Entry{
			User:          requester,
			Action:        types.ActionInvitationCanceled,
			WorkspaceID:   workspaceID,
			WorkspaceName: workspace.Name,
			TargetEmail:   email,
			Metadata: map[string]any{
				"invitationId": inv.ID,
				"email":        email,
			},
		})
	})
}

// ListAll returns the invitation view of a workspace: one synthesized
// row per OWNER followed by the real invitations. The lazy-expiry sweep
// runs first so stale PENDING rows surface as EXPIRED. CANCELLED rows
// never appear; CONSUMED rows appear only while the email still maps to
// an active member.
func (s *Service) ListAll(ctx context.Context, requester *types.User, workspaceID string, sortBy Sort) ([]*Entry, error) {
	ctx, span := s.tracer.Start(ctx, "invitation.Service.ListAll")
	defer span.End()

	if _, err := s.authz.RequireRole(ctx, workspaceID, requester.ID, types.RoleOwner, types.RoleAdmin); err != nil {
		return nil, err
	}

	if _, err := s.storage.ExpirePendingInvitations(ctx, workspaceID, time.Now()); err != nil {
		return nil, err
	}

	invitations, err := s.storage.ListInvitationsByWorkspaceID(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	members, err := s.storage.ListWorkspaceMembers(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	memberEmails := make(map[string]bool, len(members))
	for _, m := range members {
		memberEmails[strings.ToLower(m.Email)] = true
	}

	real := make([]*Entry, 0, len(invitations))
	for _, inv := range invitations {
		switch inv.Status {
		case types.InvitationCancelled:
			continue
		case types.InvitationConsumed:
			if !memberEmails[strings.ToLower(inv.Email)] {
				continue
			}
		}

		expiresAt := inv.ExpiresAt
		real = append(real, &Entry{
			ID:        inv.ID,
			Email:     inv.Email,
			Role:      inv.Role,
			Status:    inv.Status,
			CreatedAt: inv.CreatedAt,
			ExpiresAt: &expiresAt,
		})
	}

	sortEntries(real, sortBy)

	ownerMembers, err := s.storage.ListMembersByRole(ctx, workspaceID, types.RoleOwner)
	if err != nil {
		return nil, err
	}

	owners := make([]*Entry, 0, len(ownerMembers))
	for _, m := range ownerMembers {
		owners = append(owners, &Entry{
			ID:        m.ID,
			Email:     m.Email,
			Role:      types.RoleOwner,
			Status:    types.InvitationConsumed,
			IsOwner:   true,
			CreatedAt: m.CreatedAt,
		})
	}

	return append(owners, real...), nil
}

// ValidateToken is the unauthenticated pre-acceptance check: it reports
// what the token is for without redeeming it.
func (s *Service) ValidateToken(ctx context.Context, token string) (*TokenInfo, error) {
	ctx, span := s.tracer.Start(ctx, "invitation.Service.ValidateToken")
	defer span.End()

	inv, err := s.storage.GetInvitationByToken(ctx, token)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if time.Now().After(inv.ExpiresAt) {
		return nil, ErrExpired
	}
	if inv.Status != types.InvitationPending {
		return nil, ErrAlreadyUsed
	}

	workspace, err := s.storage.GetWorkspaceByID(ctx, inv.WorkspaceID)
	if err != nil {
		return nil, err
	}

	info := &TokenInfo{
		WorkspaceID:   inv.WorkspaceID,
		WorkspaceName: workspace.Name,
		Email:         inv.Email,
		Role:          inv.Role,
		ExpiresAt:     inv.ExpiresAt,
	}

	if inviter, err := s.storage.GetUserByID(ctx, inv.InvitedByID); err == nil {
		info.InviterName = inviterName(inviter)
	}

	return info, nil
}

func sortEntries(entries []*Entry, sortBy Sort) {
	statusPriority := map[types.InvitationStatus]int{
		types.InvitationConsumed: 1,
		types.InvitationPending:  2,
		types.InvitationExpired:  3,
	}
	rolePriority := map[types.Role]int{
		types.RoleAdmin:  1,
		types.RoleMember: 2,
		types.RoleViewer: 3,
	}

	sort.SliceStable(entries, func(i, j int) bool {
		switch sortBy {
		case SortByNewest:
			return entries[i].CreatedAt.After(entries[j].CreatedAt)
		case SortByOldest:
			return entries[i].CreatedAt.Before(entries[j].CreatedAt)
		case SortByRole:
			return rolePriority[entries[i].Role] < rolePriority[entries[j].Role]
		default:
			return statusPriority[entries[i].Status] < statusPriority[entries[j].Status]
		}
	})
}

// newToken returns a 256-bit random value rendered as hex. Store-wide
// uniqueness is enforced by the unique index on the token column.
func newToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTokenGeneration, err)
	}
	return hex.EncodeToString(b), nil
}

func inviterName(u *types.User) string {
	if u.Username != "" {
		return u.Username
	}
	return u.Email
}

func emailsOf(candidates []candidate) []string {
	emails := make([]string, len(candidates))
	for i, c := range candidates {
		emails[i] = c.email
	}
	return emails
}

func NewService(
	storage StorageInterface,
	authz AuthzInterface,
	activitiesSvc ActivitiesInterface,
	tx TxManagerInterface,
	mailer MailerInterface,
	lifetime time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.storage = storage
	s.authz = authz
	s.activities = activitiesSvc
	s.tx = tx
	s.mailer = mailer
	s.lifetime = lifetime
	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
