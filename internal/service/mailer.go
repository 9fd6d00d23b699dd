package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

// Mailer delivers verification codes to students.
type Mailer interface {
	Send(ctx context.Context, email, code string) error
}

// LogMailer writes codes to the log instead of delivering them.
type LogMailer struct {
	logger *zap.Logger
}

// NewLogMailer constructs a LogMailer.
func NewLogMailer(logger *zap.Logger) *LogMailer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogMailer{logger: logger}
}

// Send logs the code.
func (m *LogMailer) Send(ctx context.Context, email, code string) error {
	m.logger.Info("verification code issued", zap.String("email", email), zap.String("code", code))
	return nil
}

type sendGridClient interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// SendGridConfig configures the SendGrid transport.
type SendGridConfig struct {
	APIKey      string
	FromEmail   string
	FromName    string
	SandboxMode bool
	CodeTTL     time.Duration
}

// SendGridMailer delivers codes through the SendGrid v3 API.
type SendGridMailer struct {
	client  sendGridClient
	from    *mail.Email
	sandbox bool
	ttl     time.Duration
	logger  *zap.Logger
}

// NewSendGridMailer constructs a SendGridMailer.
func NewSendGridMailer(cfg SendGridConfig, logger *zap.Logger) *SendGridMailer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SendGridMailer{
		client:  sendgrid.NewSendClient(cfg.APIKey),
		from:    mail.NewEmail(cfg.FromName, cfg.FromEmail),
		sandbox: cfg.SandboxMode,
		ttl:     cfg.CodeTTL,
		logger:  logger,
	}
}

const (
	verificationSubject = "Your interview booking verification code"
	verificationText    = "Your verification code is %s. It expires in %d minutes."
	verificationHTML    = "<p>Your verification code is <strong>%s</strong>.</p><p>It expires in %d minutes.</p>"
)

// Send delivers the code. Non-2xx responses are reported as errors.
func (m *SendGridMailer) Send(ctx context.Context, email, code string) error {
	minutes := int(m.ttl.Minutes())
	if minutes <= 0 {
		minutes = 10
	}
	to := mail.NewEmail("", email)
	msg := mail.NewSingleEmail(m.from, verificationSubject, to,
		fmt.Sprintf(verificationText, code, minutes), fmt.Sprintf(verificationHTML, code, minutes))
	if m.sandbox {
		ms := mail.NewMailSettings()
		ms.SetSandboxMode(mail.NewSetting(true))
		msg.MailSettings = ms
	}

	resp, err := m.client.SendWithContext(ctx, msg)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid send: status %d: %s", resp.StatusCode, resp.Body)
	}
	m.logger.Debug("verification code sent", zap.String("email", email), zap.Int("status", resp.StatusCode))
	return nil
}
