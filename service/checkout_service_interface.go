package service

import (
	"context"

	"afterschool-registration/models"

	"github.com/stripe/stripe-go/v78"
)

// CheckoutServiceInterface defines the contract for the hosted payment provider
type CheckoutServiceInterface interface {
	CreateSession(ctx context.Context, req models.CheckoutSessionRequest, pricing models.PriceBreakdown) (*models.CheckoutSessionResponse, error)
	VerifyWebhook(payload []byte, signatureHeader string) (stripe.Event, error)
}
