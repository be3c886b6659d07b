package service

import (
	"context"
	"fmt"
	"log"

	"afterschool-registration/models"
	"afterschool-registration/utils"

	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/checkout/session"
	"github.com/stripe/stripe-go/v78/webhook"
)

// CheckoutService creates hosted Stripe Checkout sessions covering one
// billing period and verifies incoming webhook signatures.
type CheckoutService struct {
	webhookSecret string
	successURL    string
	cancelURL     string
}

// NewCheckoutService creates a new CheckoutService and sets the API key
// for the Stripe client.
func NewCheckoutService(secretKey, webhookSecret, successURL, cancelURL string) *CheckoutService {
	stripe.Key = secretKey
	return &CheckoutService{
		webhookSecret: webhookSecret,
		successURL:    successURL,
		cancelURL:     cancelURL,
	}
}

// Ensure CheckoutService implements CheckoutServiceInterface
var _ CheckoutServiceInterface = (*CheckoutService)(nil)

// CreateSession creates a payment session for the full amount due:
// finalWeekly × periodWeeks + registrationFee, as a single line item.
// The breakdown is computed server-side by the caller; the provider only
// ever sees the total.
func (s *CheckoutService) CreateSession(ctx context.Context, req models.CheckoutSessionRequest, pricing models.PriceBreakdown) (*models.CheckoutSessionResponse, error) {
	name := fmt.Sprintf("Afterschool program — %d days/week, billed %s",
		req.PricingInput.DaysPerWeek, req.PricingInput.Frequency)
	description := fmt.Sprintf("%d weeks at %s/week", pricing.PeriodWeeks, utils.FormatUSD(int64(pricing.FinalWeekly)))

	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:    stripe.String(s.successURL),
		CancelURL:     stripe.String(s.cancelURL),
		CustomerEmail: stripe.String(req.ParentEmail),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Quantity: stripe.Int64(1),
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(string(stripe.CurrencyUSD)),
					UnitAmount: stripe.Int64(int64(pricing.TotalForPeriod)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(name),
						Description: stripe.String(description),
					},
				},
			},
		},
	}
	params.Context = ctx
	if req.Reference != "" {
		params.ClientReferenceID = stripe.String(req.Reference)
		params.AddMetadata("reference", req.Reference)
	}

	sess, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	log.Printf("✅ CheckoutService: created session %s for %s (total %d cents)", sess.ID, req.ParentEmail, int64(pricing.TotalForPeriod))
	return &models.CheckoutSessionResponse{
		SessionID: sess.ID,
		URL:       sess.URL,
	}, nil
}

// VerifyWebhook checks the Stripe-Signature header against the endpoint
// secret and returns the decoded event.
func (s *CheckoutService) VerifyWebhook(payload []byte, signatureHeader string) (stripe.Event, error) {
	event, err := webhook.ConstructEvent(payload, signatureHeader, s.webhookSecret)
	if err != nil {
		return stripe.Event{}, fmt.Errorf("webhook signature verification failed: %w", err)
	}
	return event, nil
}
