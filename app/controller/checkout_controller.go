package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"afterschool-registration/models"
	"afterschool-registration/pricing"
	"afterschool-registration/service"

	"github.com/stripe/stripe-go/v78"
)

// maxWebhookBody bounds the webhook payload size (Stripe events are small).
const maxWebhookBody = 1 << 16

// CheckoutController handles hosted payment checkout
type CheckoutController struct {
	checkout service.CheckoutServiceInterface
	notify   service.NotifyServiceInterface
}

// NewCheckoutController creates a new CheckoutController
func NewCheckoutController(checkout service.CheckoutServiceInterface, notify service.NotifyServiceInterface) *CheckoutController {
	return &CheckoutController{
		checkout: checkout,
		notify:   notify,
	}
}

// CreateSession handles POST /api/checkout/session
// Prices the enrollment server-side and returns the provider-hosted
// payment page URL for one billing period.
func (c *CheckoutController) CreateSession(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 CreateSession: Received %s request to %s", r.Method, r.URL.Path)

	// Only allow POST method
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Parse request body
	var req models.CheckoutSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ CreateSession: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	// Validate input
	if err := req.Validate(); err != nil {
		log.Printf("❌ CreateSession: Invalid request: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// The amount charged always comes from a fresh server-side
	// computation, never from the client.
	breakdown := pricing.ComputePrice(req.PricingInput)

	response, err := c.checkout.CreateSession(r.Context(), req, breakdown)
	if err != nil {
		log.Printf("❌ CreateSession: %v", err)
		http.Error(w, "Failed to create checkout session", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("❌ CreateSession: Error encoding response: %v", err)
	}
}

// Webhook handles POST /api/checkout/webhook
// Verifies the provider signature; on checkout.session.completed the
// staff inbox gets a best-effort payment notice. Verified events are
// always acknowledged with 200 so the provider stops retrying.
func (c *CheckoutController) Webhook(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
	if err != nil {
		log.Printf("❌ Webhook: Failed to read payload: %v", err)
		http.Error(w, "Failed to read payload", http.StatusBadRequest)
		return
	}

	event, err := c.checkout.VerifyWebhook(payload, r.Header.Get("Stripe-Signature"))
	if err != nil {
		log.Printf("❌ Webhook: %v", err)
		http.Error(w, "Invalid signature", http.StatusBadRequest)
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			log.Printf("❌ Webhook: Failed to parse session from event %s: %v", event.ID, err)
			http.Error(w, "Malformed event payload", http.StatusBadRequest)
			return
		}

		reference := session.ClientReferenceID
		if reference == "" {
			reference = session.Metadata["reference"]
		}
		log.Printf("✅ Webhook: Checkout completed - session=%s, reference=%s", session.ID, reference)

		// Secondary notification: best-effort, never blocks the 200.
		go func(reference, email string) {
			ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
			defer cancel()
			if err := c.notify.SendPaymentReceived(ctx, reference, email); err != nil {
				log.Printf("⚠️  Webhook: Payment notice for %s failed: %v", reference, err)
			}
		}(reference, session.CustomerEmail)
	default:
		log.Printf("📋 Webhook: Ignoring event type %s", event.Type)
	}

	w.WriteHeader(http.StatusOK)
}
