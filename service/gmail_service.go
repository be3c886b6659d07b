package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"mime"
	"strings"
	"sync"

	"afterschool-registration/models"

	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// GmailService sends email through the Gmail API using a Service Account.
// The API client is created lazily on first send so that construction
// never touches the network; the handle lives on the service value, not
// in a package-level singleton.
type GmailService struct {
	credentialsPath string
	sender          string

	initOnce sync.Once
	client   *gmail.Service
	initErr  error
}

// NewGmailService creates a new GmailService instance
// credentialsPath should be the path to the Service Account JSON file,
// sender the address the account is authorized to send as.
func NewGmailService(credentialsPath, sender string) *GmailService {
	return &GmailService{
		credentialsPath: credentialsPath,
		sender:          sender,
	}
}

// Ensure GmailService implements MailServiceInterface
var _ MailServiceInterface = (*GmailService)(nil)

func (s *GmailService) service(ctx context.Context) (*gmail.Service, error) {
	s.initOnce.Do(func() {
		// option.WithCredentialsFile automatically handles Service Account authentication
		client, err := gmail.NewService(ctx, option.WithCredentialsFile(s.credentialsPath))
		if err != nil {
			s.initErr = fmt.Errorf("failed to create gmail service: %w", err)
			return
		}
		s.client = client
		log.Printf("✅ GmailService: client initialized for sender %s", s.sender)
	})
	return s.client, s.initErr
}

// Send composes msg as a raw RFC 2822 message and sends it through the
// Gmail API as the configured sender.
func (s *GmailService) Send(ctx context.Context, msg models.OutboundEmail) error {
	client, err := s.service(ctx)
	if err != nil {
		return err
	}

	raw, err := buildMIMEMessage(s.sender, msg)
	if err != nil {
		return fmt.Errorf("failed to build message: %w", err)
	}

	_, err = client.Users.Messages.Send("me", &gmail.Message{
		Raw: base64.URLEncoding.EncodeToString(raw),
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to send email to %s: %w", msg.To, err)
	}

	log.Printf("✅ GmailService: sent %q to %s", msg.Subject, msg.To)
	return nil
}

// buildMIMEMessage assembles the raw message the Gmail API expects:
// multipart/mixed wrapping a multipart/alternative (text + optional HTML)
// plus an optional attachment.
func buildMIMEMessage(from string, msg models.OutboundEmail) ([]byte, error) {
	if msg.To == "" {
		return nil, fmt.Errorf("recipient is required")
	}
	if msg.TextBody == "" && msg.HTMLBody == "" {
		return nil, fmt.Errorf("message body is required")
	}

	var b strings.Builder

	const mixedBoundary = "mixed-afterschool-0001"
	const altBoundary = "alt-afterschool-0001"

	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + msg.To + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", msg.Subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: multipart/mixed; boundary=" + mixedBoundary + "\r\n")
	b.WriteString("\r\n")

	// Body parts
	b.WriteString("--" + mixedBoundary + "\r\n")
	b.WriteString("Content-Type: multipart/alternative; boundary=" + altBoundary + "\r\n")
	b.WriteString("\r\n")

	if msg.TextBody != "" {
		b.WriteString("--" + altBoundary + "\r\n")
		b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
		b.WriteString("Content-Transfer-Encoding: base64\r\n")
		b.WriteString("\r\n")
		b.WriteString(wrapBase64([]byte(msg.TextBody)))
	}
	if msg.HTMLBody != "" {
		b.WriteString("--" + altBoundary + "\r\n")
		b.WriteString("Content-Type: text/html; charset=utf-8\r\n")
		b.WriteString("Content-Transfer-Encoding: base64\r\n")
		b.WriteString("\r\n")
		b.WriteString(wrapBase64([]byte(msg.HTMLBody)))
	}
	b.WriteString("--" + altBoundary + "--\r\n")

	if att := msg.Attachment; att != nil {
		mimeType := att.MIMEType
		if mimeType == "" {
			mimeType = "application/octet-stream"
		}
		b.WriteString("--" + mixedBoundary + "\r\n")
		b.WriteString("Content-Type: " + mimeType + "\r\n")
		b.WriteString("Content-Transfer-Encoding: base64\r\n")
		b.WriteString("Content-Disposition: attachment; filename=\"" + att.Filename + "\"\r\n")
		b.WriteString("\r\n")
		b.WriteString(wrapBase64(att.Data))
	}
	b.WriteString("--" + mixedBoundary + "--\r\n")

	return []byte(b.String()), nil
}

// wrapBase64 encodes data and folds it at 76 characters per RFC 2045.
func wrapBase64(data []byte) string {
	encoded := base64.StdEncoding.EncodeToString(data)

	var b strings.Builder
	b.Grow(len(encoded) + len(encoded)/76*2 + 2)
	for len(encoded) > 76 {
		b.WriteString(encoded[:76])
		b.WriteString("\r\n")
		encoded = encoded[76:]
	}
	b.WriteString(encoded)
	b.WriteString("\r\n")
	return b.String()
}
