package router

import (
	"log"
	"net/http"

	"afterschool-registration/app/controller"
)

type Controllers struct {
	Quote        *controller.QuoteController
	Registration *controller.RegistrationController
	Checkout     *controller.CheckoutController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// withCORS answers preflights and sets the CORS headers for the
// browser-facing API endpoints. allowedOrigin is a single origin or "*".
func withCORS(allowedOrigin string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && (allowedOrigin == "*" || origin == allowedOrigin) {
			w.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
			w.Header().Set("Vary", "Origin")
		}
		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.Header().Set("Access-Control-Max-Age", "86400")
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next(w, r)
	}
}

func SetupRoutes(controllers *Controllers, allowedOrigin string) {
	// Ping endpoint
	http.HandleFunc("/ping", pingHandler)

	// Live quote for the registration form
	http.HandleFunc("/api/quote", withCORS(allowedOrigin, controllers.Quote.Quote))

	// Registration submission
	http.HandleFunc("/api/register", withCORS(allowedOrigin, controllers.Registration.Register))

	// Hosted checkout, only when the payment provider is configured
	if controllers.Checkout != nil {
		http.HandleFunc("/api/checkout/session", withCORS(allowedOrigin, controllers.Checkout.CreateSession))
		// The webhook is called server-to-server by the provider; no CORS
		http.HandleFunc("/api/checkout/webhook", controllers.Checkout.Webhook)
	} else {
		log.Printf("⚠️  SetupRoutes: Checkout not configured, /api/checkout/* disabled")
	}
}
