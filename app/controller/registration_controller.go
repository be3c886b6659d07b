package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"afterschool-registration/models"
	"afterschool-registration/pricing"
	"afterschool-registration/service"
	"afterschool-registration/utils"
)

// RegistrationController handles registration form submissions
type RegistrationController struct {
	notify service.NotifyServiceInterface
}

// NewRegistrationController creates a new RegistrationController
func NewRegistrationController(notify service.NotifyServiceInterface) *RegistrationController {
	return &RegistrationController{
		notify: notify,
	}
}

// Register handles POST /api/register
// Validates the submission, notifies staff synchronously (the request
// fails if staff cannot be reached) and sends the parent confirmation
// best-effort in the background.
func (c *RegistrationController) Register(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Register: Received %s request to %s", r.Method, r.URL.Path)

	// Only allow POST method
	if r.Method != http.MethodPost {
		log.Printf("❌ Register: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Parse request body
	var req models.RegistrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Register: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	// Validate input
	if err := req.Validate(); err != nil {
		log.Printf("❌ Register: Invalid submission: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// The posted pricing object is passed through to the emails as-is;
	// the breakdown is only computed here when the client omitted it.
	var breakdown models.PriceBreakdown
	if req.Pricing != nil {
		breakdown = *req.Pricing
	} else {
		breakdown = pricing.ComputePrice(req.PricingInput)
	}

	reference := utils.NewRegistrationReference()
	paymentMethod := ""
	if req.Payment != nil {
		paymentMethod = req.Payment.Method
	}
	data := service.NewEmailData(reference, req.Form, req.PricingInput, breakdown, paymentMethod)

	log.Printf("📋 Register: %s - child=%s, days=%d, frequency=%s, total=%s",
		reference, req.Form.ChildName, req.PricingInput.DaysPerWeek, req.PricingInput.Frequency, data.Total)

	// Staff must be notified for the registration to count.
	if err := c.notify.SendStaffNotification(r.Context(), data); err != nil {
		log.Printf("❌ Register: Failed to notify staff for %s: %v", reference, err)
		http.Error(w, "Failed to deliver registration to staff", http.StatusBadGateway)
		return
	}

	// Parent confirmation is best-effort and must not block the response.
	go func(data service.EmailData) {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		if err := c.notify.SendParentConfirmation(ctx, data); err != nil {
			log.Printf("⚠️  Register: Parent confirmation for %s failed: %v", data.Reference, err)
		}
	}(data)

	log.Printf("✅ Register: %s accepted", reference)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	response := models.RegistrationResponse{
		Status:    "ok",
		Reference: reference,
		Pricing:   breakdown,
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("❌ Register: Error encoding response: %v", err)
	}
}
