// Package mail defines the outbound email gateway for the planner API.
// Services depend on the Mailer interface; the SMTP implementation lives in
// smtp.go and the HTML bodies in template.go.
package mail

import "context"

// Address is a display name plus email address. Name may be empty.
type Address struct {
	Name  string
	Email string
}

// Message is a single outbound email. The sender identity is fixed per
// Mailer, so messages carry only the varying fields.
type Message struct {
	To      Address
	Subject string
	HTML    string
}

// Mailer delivers a message to its recipient.
//
// Implementations must honor ctx cancellation. Send is called from request
// handlers (trip creation, invites) and from the confirmation fan-out, so it
// must be safe for concurrent use.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// Noop is a Mailer that discards every message. It is the default when no
// SMTP host is configured, and a convenient stand-in for tests.
type Noop struct{}

// Send implements Mailer by doing nothing.
func (Noop) Send(ctx context.Context, msg Message) error { return nil }
