package mailer

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/strataworks/website-api/internal/models"
)

// Client sends transactional mail over SMTP. One client is shared across
// concurrent requests; DialAndSend opens a short-lived connection per call.
type Client struct {
	smtp *mail.Client
}

func New(host string, port int, username, password string) (*Client, error) {
	opts := []mail.Option{
		mail.WithPort(port),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	}
	if username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(username),
			mail.WithPassword(password),
		)
	}
	c, err := mail.NewClient(host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	return &Client{smtp: c}, nil
}

// Send dispatches one message with a plain-text body and an HTML alternative.
func (c *Client) Send(ctx context.Context, msg *models.Message) error {
	m := mail.NewMsg()
	if err := m.From(msg.From); err != nil {
		return fmt.Errorf("mail from %s: %w", msg.From, err)
	}
	if err := m.To(msg.To...); err != nil {
		return fmt.Errorf("mail to %v: %w", msg.To, err)
	}
	if msg.ReplyTo != "" {
		if err := m.ReplyTo(msg.ReplyTo); err != nil {
			return fmt.Errorf("mail reply-to %s: %w", msg.ReplyTo, err)
		}
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.TextBody)
	if msg.HTMLBody != "" {
		m.AddAlternativeString(mail.TypeTextHTML, msg.HTMLBody)
	}

	if err := c.smtp.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("send %q to %v: %w", msg.Subject, msg.To, err)
	}
	return nil
}
