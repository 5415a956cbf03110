// Copyright 2026 Kanbanly Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"
)

// MailerInterface is the best-effort notification channel. Failures are
// reported to the caller but must never abort or roll back the state
// transition that triggered the mail.
type MailerInterface interface {
	SendInvitation(ctx context.Context, to, inviterName, workspaceName, token string) error
}
