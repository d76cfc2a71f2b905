// Package mail delivers HTML email over authenticated SMTP.
package mail

// Attachment is a binary file carried by a message.
type Attachment struct {
	Filename    string
	Content     []byte
	ContentType string
}

// Message describes a single outbound email.
type Message struct {
	FromName    string
	To          string
	ReplyTo     string
	Subject     string
	HTML        string
	Attachments []Attachment
}

// Sender defines the contract for sending emails.
type Sender interface {
	Send(msg Message) error
}
