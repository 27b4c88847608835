package mailer

import (
	"context"
	"fmt"

	"github.com/assogestion/assogestion/internal/core/ports"
	"github.com/google/uuid"
	"gopkg.in/gomail.v2"
)

// SMTPMailer delivers transactional mail over SMTP.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

var _ ports.Mailer = (*SMTPMailer)(nil)

// NewSMTPMailer creates a mailer for the given SMTP server.
func NewSMTPMailer(host string, port int, username, password, from string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// Send delivers one HTML message. SMTP gives us no provider id back, so the
// Message-ID header we stamp on the mail is returned as the provider message id.
func (m *SMTPMailer) Send(ctx context.Context, to, subject, html string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	messageID := fmt.Sprintf("<%s@assogestion>", uuid.NewString())

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetHeader("Message-ID", messageID)
	msg.SetBody("text/html", html)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return "", fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	return messageID, nil
}
