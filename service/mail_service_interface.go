package service

import (
	"context"

	"afterschool-registration/models"
)

// MailServiceInterface defines the contract for sending email
type MailServiceInterface interface {
	Send(ctx context.Context, msg models.OutboundEmail) error
}
