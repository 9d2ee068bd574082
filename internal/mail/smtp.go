package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"
)

// SMTPConfig holds the connection settings for the SMTP mailer.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string

	// From is the fixed sender identity applied to every outgoing message.
	From Address
}

// SMTPMailer delivers messages over SMTP using go-mail.
// The underlying client dials per send, which is fine at this volume; there
// is no retry policy — a failed send surfaces to the caller.
type SMTPMailer struct {
	client *gomail.Client
	from   Address
}

// NewSMTPMailer constructs an SMTPMailer from the given config.
func NewSMTPMailer(cfg SMTPConfig) (*SMTPMailer, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("mail.NewSMTPMailer: %w", err)
	}

	return &SMTPMailer{client: client, from: cfg.From}, nil
}

// Send implements Mailer.
func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	mm := gomail.NewMsg()
	if err := mm.FromFormat(m.from.Name, m.from.Email); err != nil {
		return fmt.Errorf("mail.SMTPMailer.Send: from: %w", err)
	}
	if err := mm.AddToFormat(msg.To.Name, msg.To.Email); err != nil {
		return fmt.Errorf("mail.SMTPMailer.Send: to: %w", err)
	}
	mm.Subject(msg.Subject)
	mm.SetBodyString(gomail.TypeTextHTML, msg.HTML)

	if err := m.client.DialAndSendWithContext(ctx, mm); err != nil {
		return fmt.Errorf("mail.SMTPMailer.Send: %w", err)
	}
	return nil
}
