package service

import (
	"strings"
	"testing"

	"afterschool-registration/models"
	"afterschool-registration/pricing"
)

func sampleEmailData() EmailData {
	input := models.EnrollmentConfig{
		DaysPerWeek:       3,
		TimeBlock:         models.TimeBlockExtendedA,
		School:            models.SchoolAffiliated,
		Frequency:         models.FrequencyQuarter,
		ExtensionsEnabled: true,
		AbacusEnabled:     true,
	}
	form := models.RegistrationForm{
		ChildName:   "Mia Torres",
		ParentName:  "Ana Torres",
		ParentEmail: "ana@example.com",
		Notes:       "Allergic to peanuts",
	}
	return NewEmailData("REG-9F1C2A4B", form, input, pricing.ComputePrice(input), "checkout")
}

func TestNewEmailDataFormatsMoney(t *testing.T) {
	data := sampleEmailData()

	if data.BaseWeekly != "$225.00" {
		t.Errorf("BaseWeekly = %s, want $225.00", data.BaseWeekly)
	}
	if data.AbacusWeekly != "$87.50" {
		t.Errorf("AbacusWeekly = %s, want $87.50", data.AbacusWeekly)
	}
	if data.SchoolDiscount != "$126.00" {
		t.Errorf("SchoolDiscount = %s, want $126.00", data.SchoolDiscount)
	}
}

func TestRenderStaffText(t *testing.T) {
	svc := NewTemplateService("../templates")

	body, err := svc.RenderStaffText(sampleEmailData())
	if err != nil {
		t.Fatalf("RenderStaffText: %v", err)
	}

	for _, want := range []string{
		"REG-9F1C2A4B",
		"Mia Torres",
		"ana@example.com",
		"Allergic to peanuts",
		"$87.50",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("staff email missing %q\n%s", want, body)
		}
	}
}

func TestRenderParentHTML(t *testing.T) {
	svc := NewTemplateService("../templates")

	html, err := svc.RenderParentHTML(sampleEmailData())
	if err != nil {
		t.Fatalf("RenderParentHTML: %v", err)
	}

	for _, want := range []string{"REG-9F1C2A4B", "Mia Torres", "Ana Torres", "Total due"} {
		if !strings.Contains(html, want) {
			t.Errorf("confirmation missing %q", want)
		}
	}
	// Parent email never leaks internal notes.
	if strings.Contains(html, "Allergic to peanuts") {
		t.Error("confirmation leaks staff-only notes")
	}
}

func TestTemplateServiceMissingDir(t *testing.T) {
	svc := NewTemplateService("does-not-exist")
	if _, err := svc.RenderStaffText(sampleEmailData()); err == nil {
		t.Error("RenderStaffText with bad dir succeeded, want error")
	}
}
