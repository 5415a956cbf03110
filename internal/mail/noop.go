// Copyright 2026 Kanbanly Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"

	"github.com/kanbanly/workspace-service/internal/logging"
)

var _ MailerInterface = (*NoopMailer)(nil)

// NoopMailer logs instead of sending. Used when mail is disabled and in
// tests.
type NoopMailer struct {
	logger logging.LoggerInterface
}

func (m *NoopMailer) SendInvitation(ctx context.Context, to, inviterName, workspaceName, token string) error {
	m.logger.Debugf("mail disabled, dropping invitation mail to %s for workspace %q", to, workspaceName)
	return nil
}

func NewNoopMailer(logger logging.LoggerInterface) *NoopMailer {
	return &NoopMailer{logger: logger}
}
