// Package mail abstracts the transactional-email provider behind a minimal
// Dispatcher interface so services never touch SMTP details directly.
package mail

import "context"

// Attachment is one file carried by an outbound message.
type Attachment struct {
	Filename    string
	Content     []byte
	ContentType string
}

// Message is a fully assembled outbound email.
type Message struct {
	From        string
	To          string
	Subject     string
	HTML        string
	Text        string
	Attachments []Attachment
}

// Dispatcher sends a single message. Implementations report failure, they
// never panic past the boundary.
type Dispatcher interface {
	Send(ctx context.Context, msg Message) error
}
