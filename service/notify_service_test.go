package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"afterschool-registration/models"
)

type fakeMailService struct {
	sent    []models.OutboundEmail
	sendErr error
}

func (f *fakeMailService) Send(ctx context.Context, msg models.OutboundEmail) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, msg)
	return nil
}

var _ MailServiceInterface = (*fakeMailService)(nil)

type fakeInvoiceService struct {
	pdf []byte
	err error
}

func (f *fakeInvoiceService) GeneratePDF(ctx context.Context, html string) ([]byte, error) {
	return f.pdf, f.err
}

var _ InvoiceServiceInterface = (*fakeInvoiceService)(nil)

func TestSendStaffNotification(t *testing.T) {
	mailer := &fakeMailService{}
	svc := NewNotifyService(mailer, NewTemplateService("../templates"), nil, "staff@program.example.com")

	if err := svc.SendStaffNotification(context.Background(), sampleEmailData()); err != nil {
		t.Fatalf("SendStaffNotification: %v", err)
	}

	if len(mailer.sent) != 1 {
		t.Fatalf("sent %d emails, want 1", len(mailer.sent))
	}
	msg := mailer.sent[0]
	if msg.To != "staff@program.example.com" {
		t.Errorf("To = %q, want the staff inbox", msg.To)
	}
	if !strings.Contains(msg.Subject, "REG-9F1C2A4B") || !strings.Contains(msg.Subject, "Mia Torres") {
		t.Errorf("Subject = %q, want reference and child name", msg.Subject)
	}
	if msg.HTMLBody != "" {
		t.Error("staff notification should be plain text")
	}
}

func TestSendParentConfirmation(t *testing.T) {
	t.Run("attaches the invoice PDF", func(t *testing.T) {
		mailer := &fakeMailService{}
		invoices := &fakeInvoiceService{pdf: []byte("%PDF-1.4 fake")}
		svc := NewNotifyService(mailer, NewTemplateService("../templates"), invoices, "staff@program.example.com")

		if err := svc.SendParentConfirmation(context.Background(), sampleEmailData()); err != nil {
			t.Fatalf("SendParentConfirmation: %v", err)
		}

		msg := mailer.sent[0]
		if msg.To != "ana@example.com" {
			t.Errorf("To = %q, want the parent", msg.To)
		}
		if msg.HTMLBody == "" || msg.TextBody == "" {
			t.Error("confirmation needs both HTML and text bodies")
		}
		if msg.Attachment == nil {
			t.Fatal("missing PDF attachment")
		}
		if msg.Attachment.Filename != "invoice-REG-9F1C2A4B.pdf" {
			t.Errorf("attachment filename = %q", msg.Attachment.Filename)
		}
	})

	t.Run("sends without attachment when the PDF fails", func(t *testing.T) {
		mailer := &fakeMailService{}
		invoices := &fakeInvoiceService{err: fmt.Errorf("no chrome")}
		svc := NewNotifyService(mailer, NewTemplateService("../templates"), invoices, "staff@program.example.com")

		if err := svc.SendParentConfirmation(context.Background(), sampleEmailData()); err != nil {
			t.Fatalf("SendParentConfirmation: %v", err)
		}
		if mailer.sent[0].Attachment != nil {
			t.Error("attachment present despite PDF failure")
		}
	})

	t.Run("skips the PDF when invoicing is disabled", func(t *testing.T) {
		mailer := &fakeMailService{}
		svc := NewNotifyService(mailer, NewTemplateService("../templates"), nil, "staff@program.example.com")

		if err := svc.SendParentConfirmation(context.Background(), sampleEmailData()); err != nil {
			t.Fatalf("SendParentConfirmation: %v", err)
		}
		if mailer.sent[0].Attachment != nil {
			t.Error("attachment present with invoicing disabled")
		}
	})
}

func TestSendPaymentReceived(t *testing.T) {
	mailer := &fakeMailService{}
	svc := NewNotifyService(mailer, NewTemplateService("../templates"), nil, "staff@program.example.com")

	if err := svc.SendPaymentReceived(context.Background(), "REG-9F1C2A4B", "ana@example.com"); err != nil {
		t.Fatalf("SendPaymentReceived: %v", err)
	}

	msg := mailer.sent[0]
	if msg.To != "staff@program.example.com" {
		t.Errorf("To = %q, want the staff inbox", msg.To)
	}
	if !strings.Contains(msg.TextBody, "REG-9F1C2A4B") || !strings.Contains(msg.TextBody, "ana@example.com") {
		t.Errorf("body missing reference or parent email: %q", msg.TextBody)
	}
}
