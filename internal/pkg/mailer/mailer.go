// Package mailer sends transactional email over SMTP. Sends are best
// effort everywhere in this service: callers log failures and move on,
// they never roll back business state because an email bounced.
package mailer

import (
	"log"

	gomail "gopkg.in/gomail.v2"
)

// Attachment references a file on disk to attach under a friendly name.
type Attachment struct {
	Filename string
	Path     string
}

type Message struct {
	To          string
	Subject     string
	Text        string
	HTML        string
	Attachments []Attachment
}

// Sender delivers a single message.
type Sender interface {
	Send(msg Message) error
}

// SMTPSender delivers through an SMTP relay using gomail.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPSender(host string, port int, user, password, from string) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(host, port, user, password),
		from:   from,
	}
}

func (s *SMTPSender) Send(msg Message) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Text)
	if msg.HTML != "" {
		m.AddAlternative("text/html", msg.HTML)
	}
	for _, a := range msg.Attachments {
		m.Attach(a.Path, gomail.Rename(a.Filename))
	}
	return s.dialer.DialAndSend(m)
}

// LogSender is the fallback when SMTP is not configured: it records the
// send instead of delivering, so development flows still complete.
type LogSender struct{}

func (LogSender) Send(msg Message) error {
	log.Printf("level=info msg=mail suppressed (SMTP not configured) to=%s subject=%q attachments=%d",
		msg.To, msg.Subject, len(msg.Attachments))
	return nil
}
