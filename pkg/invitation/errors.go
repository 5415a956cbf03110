// Copyright 2026 Kanbanly Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitation

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound      = errors.New("invitation not found")
	ErrExpired       = errors.New("invitation has expired")
	ErrAlreadyUsed   = errors.New("invitation is no longer pending")
	ErrEmailMismatch = errors.New("invitation was issued to a different email address")
	ErrAlreadyMember = errors.New("user is already a member of this workspace")
	ErrSelfRemoval   = errors.New("cannot remove yourself from the workspace")
	ErrOwnerRole     = errors.New("the OWNER role cannot be granted through an invitation")

	// ErrNoTarget means the email matched neither a removable member nor
	// a cancelable invitation.
	ErrNoTarget = errors.New("no member or cancelable invitation found for this email")

	// ErrTokenGeneration indicates the process entropy source failed,
	// which is fatal rather than a user error.
	ErrTokenGeneration = errors.New("could not generate an invitation token")
)

// ConflictError aggregates every conflicting email in a batch. It is
// only returned when the validation pass fails, in which case no write
// has happened.
type ConflictError struct {
	AlreadyMember  []string
	AlreadyInvited []string
}

func (e *ConflictError) Error() string {
	parts := make([]string, 0, 2)
	if len(e.AlreadyMember) > 0 {
		parts = append(parts, fmt.Sprintf("already members: %s", strings.Join(e.AlreadyMember, ", ")))
	}
	if len(e.AlreadyInvited) > 0 {
		parts = append(parts, fmt.Sprintf("already invited: %s", strings.Join(e.AlreadyInvited, ", ")))
	}
	return "invitation batch conflicts: " + strings.Join(parts, "; ")
}
