package mail

import (
	"crypto/tls"
	"fmt"
	"io"
	"sync"

	gomail "github.com/go-mail/mail"
)

// SMTPSender implements Sender over an authenticated SMTP submission connection.
//
// The connection is dialed lazily on first send and kept open across requests.
// A failed send closes the handle so the next send redials; the failed send
// itself is not retried.
type SMTPSender struct {
	Host               string
	Port               int
	From               string
	User               string
	Pass               string
	TLSMode            string // "auto" | "ssl" | "none"
	InsecureSkipVerify bool

	mu   sync.Mutex
	conn gomail.SendCloser
}

// NewSMTPSender creates a sender for the given submission endpoint. The From
// address doubles as the authenticated user, matching typical mailbox setups.
func NewSMTPSender(host string, port int, user, pass string) *SMTPSender {
	return &SMTPSender{
		Host:    host,
		Port:    port,
		From:    user,
		User:    user,
		Pass:    pass,
		TLSMode: "auto",
	}
}

// Verify dials and authenticates once, then closes the connection. Intended
// for a boot-time configuration check.
func (s *SMTPSender) Verify() error {
	conn, err := s.dialer().Dial()
	if err != nil {
		return fmt.Errorf("smtp verify: %w", err)
	}
	return conn.Close()
}

// Send delivers a single message, dialing if no connection is cached.
func (s *SMTPSender) Send(msg Message) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.From, msg.FromName)
	m.SetHeader("To", msg.To)
	if msg.ReplyTo != "" {
		m.SetHeader("Reply-To", msg.ReplyTo)
	}
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)
	for _, att := range msg.Attachments {
		content := att.Content
		settings := []gomail.FileSetting{
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(content)
				return err
			}),
		}
		if att.ContentType != "" {
			settings = append(settings, gomail.SetHeader(map[string][]string{
				"Content-Type": {att.ContentType},
			}))
		}
		m.Attach(att.Filename, settings...)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		conn, err := s.dialer().Dial()
		if err != nil {
			return fmt.Errorf("smtp dial: %w", err)
		}
		s.conn = conn
	}
	if err := gomail.Send(s.conn, m); err != nil {
		_ = s.conn.Close()
		s.conn = nil
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

// Close releases the cached connection if one is open.
func (s *SMTPSender) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	return err
}

func (s *SMTPSender) dialer() *gomail.Dialer {
	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Pass)
	d.TLSConfig = &tls.Config{
		ServerName:         s.Host,
		InsecureSkipVerify: s.InsecureSkipVerify,
	}
	switch s.TLSMode {
	case "ssl":
		d.SSL = true
	case "none":
		d.TLSConfig = &tls.Config{InsecureSkipVerify: s.InsecureSkipVerify}
	default:
		// "auto": STARTTLS is negotiated when the server offers it.
	}
	return d
}
