package models

import (
	"fmt"
	"strings"
)

// RegistrationForm carries the child/parent details collected by the form.
// Example: {"childName": "Mia Torres", "childBirthDate": "2017-04-02",
// "grade": "2", "parentName": "Ana Torres", "parentEmail": "ana@example.com",
// "parentPhone": "+1 555 010 2233"}
type RegistrationForm struct {
	ChildName        string `json:"childName"`
	ChildBirthDate   string `json:"childBirthDate,omitempty"`
	Grade            string `json:"grade,omitempty"`
	ParentName       string `json:"parentName"`
	ParentEmail      string `json:"parentEmail"`
	ParentPhone      string `json:"parentPhone,omitempty"`
	EmergencyContact string `json:"emergencyContact,omitempty"`
	Notes            string `json:"notes,omitempty"`
}

// PaymentInfo describes how the family intends to pay.
// Method values: "checkout" (hosted payment page), "cash", "transfer".
type PaymentInfo struct {
	Method string `json:"method"`
}

// RegistrationRequest is the submission payload posted by the form.
// The pricing object, when present, was computed client-side by the same
// engine and is passed through to the emails as-is; when absent the
// server computes it from pricingInput.
type RegistrationRequest struct {
	Form         RegistrationForm `json:"form"`
	PricingInput EnrollmentConfig `json:"pricingInput"`
	Pricing      *PriceBreakdown  `json:"pricing,omitempty"`
	Payment      *PaymentInfo     `json:"payment,omitempty"`
}

// RegistrationResponse acknowledges a submission.
type RegistrationResponse struct {
	Status    string         `json:"status"`
	Reference string         `json:"reference"`
	Pricing   PriceBreakdown `json:"pricing"`
}

// CheckoutSessionRequest asks for a hosted payment page covering one
// billing period of the given enrollment.
type CheckoutSessionRequest struct {
	PricingInput EnrollmentConfig `json:"pricingInput"`
	ParentEmail  string           `json:"parentEmail"`
	Reference    string           `json:"reference,omitempty"`
}

// CheckoutSessionResponse returns the provider-hosted page to redirect to.
type CheckoutSessionResponse struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

// Validate checks the required form fields.
func (f *RegistrationForm) Validate() error {
	if strings.TrimSpace(f.ChildName) == "" {
		return fmt.Errorf("childName is required")
	}
	if strings.TrimSpace(f.ParentName) == "" {
		return fmt.Errorf("parentName is required")
	}
	if err := validateEmail(f.ParentEmail); err != nil {
		return err
	}
	return nil
}

// Validate checks the submission payload: the form fields plus the
// pricing input ranges the engine depends on.
func (r *RegistrationRequest) Validate() error {
	if err := r.Form.Validate(); err != nil {
		return err
	}
	return r.PricingInput.Validate()
}

// Validate checks a checkout session request.
func (r *CheckoutSessionRequest) Validate() error {
	if err := validateEmail(r.ParentEmail); err != nil {
		return err
	}
	return r.PricingInput.Validate()
}

func validateEmail(email string) error {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return fmt.Errorf("parentEmail is required")
	}
	at := strings.Index(trimmed, "@")
	if at <= 0 || at == len(trimmed)-1 || !strings.Contains(trimmed[at+1:], ".") {
		return fmt.Errorf("parentEmail %q is not a valid address", email)
	}
	return nil
}
