// Package notify sends the best-effort email notification for new contact
// submissions. Delivery is fire-and-forget: the write path never waits on
// it and never fails because of it.
package notify

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/portfolio-site/go-portfolio-backend/internal/portfolio/domain"
)

type Config struct {
	Host string
	Port int
	User string
	Pass string
	From string
	To   string
}

// Mailer delivers contact notifications over SMTP.
type Mailer struct {
	cfg Config
}

// NewMailer returns nil when the SMTP credentials are not configured, which
// disables notifications entirely.
func NewMailer(cfg Config) *Mailer {
	if cfg.Host == "" || cfg.User == "" || cfg.Pass == "" || cfg.To == "" {
		return nil
	}
	if cfg.From == "" {
		cfg.From = cfg.User
	}
	return &Mailer{cfg: cfg}
}

func (m *Mailer) NotifyContact(sub domain.ContactSubmission) error {
	var body strings.Builder
	fmt.Fprintf(&body, "From: %s\r\n", m.cfg.From)
	fmt.Fprintf(&body, "To: %s\r\n", m.cfg.To)
	fmt.Fprintf(&body, "Subject: New contact submission from %s\r\n", sub.Name)
	body.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	fmt.Fprintf(&body, "Name: %s\nEmail: %s\nSubmitted: %s\n\n%s\n",
		sub.Name, sub.Email, sub.CreatedAt.Format("2006-01-02 15:04:05 MST"), sub.Message)

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)

	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{m.cfg.To}, []byte(body.String())); err != nil {
		return fmt.Errorf("send contact notification: %w", err)
	}
	return nil
}
