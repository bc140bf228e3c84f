// Package mail sends outbound application mail. The core never retries a
// failed dispatch; callers log and move on.
package mail

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"regexp"

	"go.uber.org/zap"
)

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// IsValidEmail checks address syntax only; deliverability is not our problem.
func IsValidEmail(address string) bool {
	return emailRegex.MatchString(address)
}

type Dispatcher interface {
	Dispatch(ctx context.Context, recipient, subject, body string) error
}

// SMTPDispatcher sends through a plain-auth SMTP relay.
type SMTPDispatcher struct {
	Host     string
	Port     string
	Username string
	Password string
	Sender   string
}

func (d *SMTPDispatcher) Dispatch(_ context.Context, recipient, subject, body string) error {
	addr := net.JoinHostPort(d.Host, d.Port)
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		d.Sender, recipient, subject, body)

	var auth smtp.Auth
	if d.Username != "" {
		auth = smtp.PlainAuth("", d.Username, d.Password, d.Host)
	}
	if err := smtp.SendMail(addr, auth, d.Sender, []string{recipient}, []byte(msg)); err != nil {
		return fmt.Errorf("smtp dispatch to %s: %w", recipient, err)
	}
	return nil
}

// LogDispatcher logs instead of sending. Used when SMTP_HOST is unset so
// registration and reset flows still work in development.
type LogDispatcher struct {
	Logger *zap.Logger
}

func (d *LogDispatcher) Dispatch(_ context.Context, recipient, subject, body string) error {
	d.Logger.Info("mail dispatch (log only)",
		zap.String("recipient", recipient),
		zap.String("subject", subject),
		zap.String("body", body),
	)
	return nil
}
