package app

import (
	"context"
	"strings"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/RubenSilva-Londublis/KeepBotAlive/internal/errors"
)

// NotifyFunc delivers an alert. A nil NotifyFunc means alerting is disabled.
type NotifyFunc func(ctx context.Context, subject, body string) error

type mailNotifier struct {
	cfg EmailConfig
}

// NewMailNotifier builds the SMTP notifier from the email config. Returns
// (nil, nil) when email alerts are disabled. When enabled, host, port, from
// and at least one recipient are required.
func NewMailNotifier(cfg EmailConfig) (NotifyFunc, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	if strings.TrimSpace(cfg.SMTPHost) == "" {
		return nil, errors.Newf(errors.InvalidConfig, nil, "email enabled but smtp_host is empty")
	}
	if cfg.SMTPPort <= 0 || cfg.SMTPPort > 65535 {
		return nil, errors.Newf(errors.InvalidConfig, nil, "email enabled but smtp_port %d is invalid", cfg.SMTPPort)
	}
	if strings.TrimSpace(cfg.From) == "" {
		return nil, errors.Newf(errors.InvalidConfig, nil, "email enabled but from is empty")
	}
	if len(cfg.To) == 0 {
		return nil, errors.Newf(errors.InvalidConfig, nil, "email enabled but to is empty")
	}

	n := mailNotifier{cfg: cfg}
	return n.Notify, nil
}

// Notify sends one plain-text message to every configured recipient. Single
// attempt; retrying a failed alert is the caller's call.
func (n mailNotifier) Notify(ctx context.Context, subject, body string) error {
	msg := mail.NewMsg()
	if err := msg.From(n.cfg.From); err != nil {
		return errors.Newf(errors.Notify, err, "invalid sender address %q", n.cfg.From)
	}
	if err := msg.To(n.cfg.To...); err != nil {
		return errors.Newf(errors.Notify, err, "invalid recipient in %v", n.cfg.To)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	opts := []mail.Option{
		mail.WithPort(n.cfg.SMTPPort),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(30 * time.Second),
	}
	if n.cfg.SMTPUsername != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(n.cfg.SMTPUsername),
			mail.WithPassword(n.cfg.SMTPPassword),
		)
	}

	client, err := mail.NewClient(n.cfg.SMTPHost, opts...)
	if err != nil {
		return errors.Newf(errors.Notify, err, "smtp client for %s:%d", n.cfg.SMTPHost, n.cfg.SMTPPort)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Newf(errors.Notify, err, "send alert via %s:%d", n.cfg.SMTPHost, n.cfg.SMTPPort)
	}
	return nil
}
