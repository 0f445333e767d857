package infra

import (
	"fmt"
	"net/smtp"
	"strings"

	"einsatzplan/internal/config"

	"github.com/jordan-wright/email"
	"github.com/rs/zerolog/log"
)

// Mailer wraps SMTP configuration for the notification mails. Without SMTP
// credentials it degrades to a silent no-op so local setups run mail-free.
type Mailer struct {
	host     string
	user     string
	password string
	from     string
	addr     string
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		from:     cfg.MailFrom,
		addr:     fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
	}
}

// Send delivers one plaintext mail. Missing configuration or recipient is
// not an error: the mail is dropped and logged.
func (m *Mailer) Send(to, subject, body string) error {
	to = strings.TrimSpace(to)
	if m.user == "" || m.password == "" || to == "" {
		log.Debug().Str("to", to).Str("subject", subject).Msg("mail skipped, smtp not configured")
		return nil
	}

	e := email.NewEmail()
	e.From = m.from
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)

	auth := smtp.PlainAuth("", m.user, m.password, m.host)
	return e.Send(m.addr, auth)
}
