package libs_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	qt "github.com/frankban/quicktest"
	"gopkg.in/gomail.v2"

	"glamar-shop/config"
	"glamar-shop/libs"
	"glamar-shop/models"
)

type captureSender struct {
	sent []*gomail.Message
	err  error
}

func (s *captureSender) DialAndSend(m ...*gomail.Message) error {
	s.sent = append(s.sent, m...)
	return s.err
}

func TestNewMailerRequiresSMTP(t *testing.T) {
	c := qt.New(t)

	_, err := libs.NewMailer(&config.Config{SMTPHost: "smtp.example.com"})
	c.Assert(err, qt.ErrorMatches, "SMTP configuration missing")

	mailer, err := libs.NewMailer(&config.Config{
		SMTPHost:     "smtp.example.com",
		SMTPUser:     "shop@example.com",
		SMTPPass:     "pass",
		ContactInbox: "owner@example.com",
	})
	c.Assert(err, qt.IsNil)
	c.Assert(mailer, qt.IsNotNil)
}

func TestNotifyContact(t *testing.T) {
	c := qt.New(t)

	sender := &captureSender{}
	mailer := libs.NewMailerWithSender(sender, "shop@example.com", "owner@example.com")

	err := mailer.NotifyContact(context.Background(), models.ContactMessage{
		Name:    "Ada",
		Email:   "ada@example.com",
		Message: "Do you ship <abroad>?",
	})
	c.Assert(err, qt.IsNil)
	c.Assert(sender.sent, qt.HasLen, 1)

	m := sender.sent[0]
	c.Assert(m.GetHeader("To"), qt.DeepEquals, []string{"owner@example.com"})
	c.Assert(m.GetHeader("Reply-To"), qt.DeepEquals, []string{"ada@example.com"})
	c.Assert(m.GetHeader("Subject"), qt.DeepEquals, []string{"New contact message from Ada"})

	var buf bytes.Buffer
	_, err = m.WriteTo(&buf)
	c.Assert(err, qt.IsNil)
	c.Assert(buf.String(), qt.Contains, "Do you ship <abroad>?")
}

func TestNotifyContactSendFailure(t *testing.T) {
	c := qt.New(t)

	sender := &captureSender{err: errors.New("connection refused")}
	mailer := libs.NewMailerWithSender(sender, "shop@example.com", "owner@example.com")

	err := mailer.NotifyContact(context.Background(), models.ContactMessage{Name: "Ada", Email: "a@b.c", Message: "hi"})
	c.Assert(err, qt.ErrorMatches, "send contact notification: connection refused")
}
