package service

import (
	"context"
	"fmt"
	"log"

	"afterschool-registration/models"
)

// NotifyService composes the notification emails for a registration and
// hands them to the mail provider. The invoice service is optional; when
// nil the parent confirmation goes out without a PDF attachment.
type NotifyService struct {
	mailer     MailServiceInterface
	templates  *TemplateService
	invoices   InvoiceServiceInterface
	staffEmail string
}

// NewNotifyService creates a new NotifyService
func NewNotifyService(mailer MailServiceInterface, templates *TemplateService, invoices InvoiceServiceInterface, staffEmail string) *NotifyService {
	return &NotifyService{
		mailer:     mailer,
		templates:  templates,
		invoices:   invoices,
		staffEmail: staffEmail,
	}
}

// Ensure NotifyService implements NotifyServiceInterface
var _ NotifyServiceInterface = (*NotifyService)(nil)

// SendStaffNotification sends the plain-text registration summary to the
// staff inbox.
func (s *NotifyService) SendStaffNotification(ctx context.Context, data EmailData) error {
	body, err := s.templates.RenderStaffText(data)
	if err != nil {
		return fmt.Errorf("failed to render staff notification: %w", err)
	}

	subject := fmt.Sprintf("New registration %s: %s (%d days/week, %s)",
		data.Reference, data.Form.ChildName, data.Input.DaysPerWeek, data.Input.Frequency)

	return s.mailer.Send(ctx, models.OutboundEmail{
		To:       s.staffEmail,
		Subject:  subject,
		TextBody: body,
	})
}

// SendParentConfirmation sends the HTML confirmation to the parent, with
// a PDF invoice attached when invoice rendering is enabled. A failed PDF
// render downgrades to a plain confirmation instead of failing the send.
func (s *NotifyService) SendParentConfirmation(ctx context.Context, data EmailData) error {
	html, err := s.templates.RenderParentHTML(data)
	if err != nil {
		return fmt.Errorf("failed to render confirmation: %w", err)
	}

	text := fmt.Sprintf(
		"Hi %s,\n\nThank you for registering %s for the afterschool program.\n"+
			"Reference: %s\nWeekly charge: %s\nTotal due: %s\n\n"+
			"Our staff will be in touch to confirm the schedule.\n",
		data.Form.ParentName, data.Form.ChildName, data.Reference, data.FinalWeekly, data.Total)

	msg := models.OutboundEmail{
		To:       data.Form.ParentEmail,
		Subject:  fmt.Sprintf("Registration confirmed — %s", data.Reference),
		TextBody: text,
		HTMLBody: html,
	}

	if s.invoices != nil {
		pdf, err := s.invoices.GeneratePDF(ctx, html)
		if err != nil {
			log.Printf("⚠️  SendParentConfirmation: invoice PDF failed, sending without attachment: %v", err)
		} else {
			msg.Attachment = &models.EmailAttachment{
				Filename: fmt.Sprintf("invoice-%s.pdf", data.Reference),
				MIMEType: "application/pdf",
				Data:     pdf,
			}
		}
	}

	return s.mailer.Send(ctx, msg)
}

// SendPaymentReceived tells staff that the hosted checkout for a
// registration completed.
func (s *NotifyService) SendPaymentReceived(ctx context.Context, reference, parentEmail string) error {
	body := fmt.Sprintf("Checkout completed for registration %s (parent: %s).\n", reference, parentEmail)
	return s.mailer.Send(ctx, models.OutboundEmail{
		To:       s.staffEmail,
		Subject:  fmt.Sprintf("Payment received — %s", reference),
		TextBody: body,
	})
}
