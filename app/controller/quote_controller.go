package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"afterschool-registration/models"
	"afterschool-registration/pricing"
)

// QuoteController handles live price quotes for the registration form
type QuoteController struct{}

// NewQuoteController creates a new QuoteController
func NewQuoteController() *QuoteController {
	return &QuoteController{}
}

// Quote handles POST /api/quote
// The form calls this on every input change to keep the displayed price
// in sync with the enrollment choices.
func (c *QuoteController) Quote(w http.ResponseWriter, r *http.Request) {
	// Only allow POST method
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Parse request body
	var cfg models.EnrollmentConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		log.Printf("❌ Quote: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	// Validate input
	if err := cfg.Validate(); err != nil {
		log.Printf("❌ Quote: Invalid pricing input: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	breakdown := pricing.ComputePrice(cfg)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(breakdown); err != nil {
		log.Printf("❌ Quote: Error encoding response: %v", err)
	}
}
