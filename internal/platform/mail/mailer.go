// Package mail sends notification emails through SMTP.
package mail

import (
	"fmt"
	"net/smtp"

	"carprice_backend/internal/config"
)

// Mailer sends plain-text emails through an SMTP relay.
type Mailer struct {
	from     string
	password string
	host     string
	port     string
}

// NewMailer creates a Mailer from the SMTP configuration.
func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		from:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
	}
}

// Send delivers a single plain-text email with subject and body.
func (m *Mailer) Send(to, subject, body string) error {
	if m.host == "" || m.port == "" || m.from == "" || m.password == "" {
		return fmt.Errorf("missing SMTP configuration")
	}

	msg := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/plain; charset=\"utf-8\"\r\n"+
			"\r\n%s\r\n",
		m.from, to, subject, body,
	))

	auth := smtp.PlainAuth("", m.from, m.password, m.host)
	return smtp.SendMail(m.host+":"+m.port, auth, m.from, []string{to}, msg)
}
