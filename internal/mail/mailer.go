// Copyright 2026 Kanbanly Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"
	"fmt"
	"time"

	gomail "github.com/wneessen/go-mail"

	"github.com/kanbanly/workspace-service/internal/logging"
	"github.com/kanbanly/workspace-service/internal/monitoring"
	"github.com/kanbanly/workspace-service/internal/tracing"
)

var _ MailerInterface = (*Mailer)(nil)

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string

	// BaseURL is the public origin accept links point at.
	BaseURL string

	// LinkLifetime is how long accept links stay valid; it drives the
	// expiry wording in the message body.
	LinkLifetime time.Duration
}

type Mailer struct {
	client *gomail.Client
	config Config

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (m *Mailer) SendInvitation(ctx context.Context, to, inviterName, workspaceName, token string) error {
	ctx, span := m.tracer.Start(ctx, "mail.Mailer.SendInvitation")
	defer span.End()

	msg := gomail.NewMsg()
	if err := msg.From(m.config.From); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}

	acceptURL := fmt.Sprintf("%s/invitations/accept?token=%s", m.config.BaseURL, token)

	msg.Subject(fmt.Sprintf("%s invited you to join %q", inviterName, workspaceName))
	msg.SetBodyString(gomail.TypeTextHTML, fmt.Sprintf(
		"<p>Hello,</p><p>%s invited you to join the workspace %q.</p>"+
			"<p><a href=%q>Accept the invitation</a> (the link expires in %s).</p>",
		inviterName, workspaceName, acceptURL, lifetimeText(m.config.LinkLifetime),
	))

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send invitation mail: %w", err)
	}

	return nil
}

// lifetimeText renders a duration as whole days when it divides evenly,
// hours otherwise.
func lifetimeText(d time.Duration) string {
	if d <= 0 {
		d = 72 * time.Hour
	}

	if d%(24*time.Hour) == 0 {
		days := int(d / (24 * time.Hour))
		if days == 1 {
			return "1 day"
		}
		return fmt.Sprintf("%d days", days)
	}

	hours := int(d.Round(time.Hour) / time.Hour)
	if hours <= 1 {
		return "1 hour"
	}
	return fmt.Sprintf("%d hours", hours)
}

func NewMailer(config Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*Mailer, error) {
	client, err := gomail.NewClient(
		config.Host,
		gomail.WithPort(config.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(config.Username),
		gomail.WithPassword(config.Password),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}

	m := new(Mailer)
	m.client = client
	m.config = config

	m.tracer = tracer
	m.monitor = monitor
	m.logger = logger

	return m, nil
}
