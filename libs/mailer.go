package libs

import (
	"context"
	"fmt"
	"html"

	"github.com/pkg/errors"
	"gopkg.in/gomail.v2"

	"glamar-shop/config"
	"glamar-shop/models"
)

// Sender abstracts gomail.Dialer so messages can be captured in tests.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type Mailer struct {
	sender Sender
	from   string
	inbox  string
}

// NewMailer returns an error when SMTP is not fully configured.
func NewMailer(cfg *config.Config) (*Mailer, error) {
	if !cfg.SMTPEnabled() {
		return nil, errors.New("SMTP configuration missing")
	}

	port := cfg.SMTPPort
	if port == 0 {
		port = 587
	}

	from := cfg.SMTPFrom
	if from == "" {
		from = cfg.SMTPUser
	}

	dialer := gomail.NewDialer(cfg.SMTPHost, port, cfg.SMTPUser, cfg.SMTPPass)
	return NewMailerWithSender(dialer, from, cfg.ContactInbox), nil
}

func NewMailerWithSender(sender Sender, from, inbox string) *Mailer {
	return &Mailer{sender: sender, from: from, inbox: inbox}
}

// NotifyContact forwards a contact-form submission to the shop inbox.
func (s *Mailer) NotifyContact(ctx context.Context, msg models.ContactMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", s.inbox)
	m.SetHeader("Reply-To", msg.Email)
	m.SetHeader("Subject", fmt.Sprintf("New contact message from %s", msg.Name))

	m.SetBody("text/plain", fmt.Sprintf("From: %s <%s>\n\n%s\n", msg.Name, msg.Email, msg.Message))
	m.AddAlternative("text/html", fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif;">
    <h2>New contact message</h2>
    <p><strong>From:</strong> %s &lt;%s&gt;</p>
    <div style="white-space: pre-wrap; border-left: 3px solid #d63384; padding-left: 12px;">%s</div>
</body>
</html>
	`, html.EscapeString(msg.Name), html.EscapeString(msg.Email), html.EscapeString(msg.Message)))

	if err := s.sender.DialAndSend(m); err != nil {
		return errors.Wrap(err, "send contact notification")
	}

	return nil
}
