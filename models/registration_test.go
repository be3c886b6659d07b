package models

import "testing"

func validConfig() EnrollmentConfig {
	return EnrollmentConfig{
		DaysPerWeek: 3,
		TimeBlock:   TimeBlockStandard,
		School:      SchoolOther,
		Frequency:   FrequencyWeekly,
	}
}

func validForm() RegistrationForm {
	return RegistrationForm{
		ChildName:   "Mia Torres",
		ParentName:  "Ana Torres",
		ParentEmail: "ana@example.com",
	}
}

func TestEnrollmentConfigValidate(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*EnrollmentConfig)
	}{
		{"zero days", func(c *EnrollmentConfig) { c.DaysPerWeek = 0 }},
		{"six days", func(c *EnrollmentConfig) { c.DaysPerWeek = 6 }},
		{"unknown time block", func(c *EnrollmentConfig) { c.TimeBlock = "lateNight" }},
		{"unknown school", func(c *EnrollmentConfig) { c.School = "hogwarts" }},
		{"unknown frequency", func(c *EnrollmentConfig) { c.Frequency = "biweekly" }},
		{"empty enums", func(c *EnrollmentConfig) { c.TimeBlock = ""; c.School = ""; c.Frequency = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("Validate accepted %+v, want error", cfg)
			}
		})
	}
}

func TestRegistrationRequestValidate(t *testing.T) {
	req := RegistrationRequest{Form: validForm(), PricingInput: validConfig()}
	if err := req.Validate(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*RegistrationRequest)
	}{
		{"missing child name", func(r *RegistrationRequest) { r.Form.ChildName = "  " }},
		{"missing parent name", func(r *RegistrationRequest) { r.Form.ParentName = "" }},
		{"missing email", func(r *RegistrationRequest) { r.Form.ParentEmail = "" }},
		{"email without at sign", func(r *RegistrationRequest) { r.Form.ParentEmail = "ana.example.com" }},
		{"email without domain dot", func(r *RegistrationRequest) { r.Form.ParentEmail = "ana@example" }},
		{"bad pricing input", func(r *RegistrationRequest) { r.PricingInput.DaysPerWeek = 9 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bad := RegistrationRequest{Form: validForm(), PricingInput: validConfig()}
			tt.mutate(&bad)
			if err := bad.Validate(); err == nil {
				t.Errorf("Validate accepted %+v, want error", bad)
			}
		})
	}
}

func TestCheckoutSessionRequestValidate(t *testing.T) {
	req := CheckoutSessionRequest{PricingInput: validConfig(), ParentEmail: "ana@example.com"}
	if err := req.Validate(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	req.ParentEmail = "not-an-email"
	if err := req.Validate(); err == nil {
		t.Error("Validate accepted a malformed email, want error")
	}
}
