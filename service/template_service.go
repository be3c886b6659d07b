package service

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"path/filepath"
	texttemplate "text/template"

	"afterschool-registration/models"
	"afterschool-registration/utils"
)

// EmailData is the template payload for both notification emails. Money
// fields are pre-formatted so the templates stay free of logic.
type EmailData struct {
	Reference string
	Form      models.RegistrationForm
	Input     models.EnrollmentConfig
	Pricing   models.PriceBreakdown

	PaymentMethod string

	BaseWeekly      string
	AddOnWeekly     string
	AbacusWeekly    string
	SchoolDiscount  string
	PrepayDiscount  string
	FinalWeekly     string
	RegistrationFee string
	Total           string
}

// NewEmailData builds the template payload for one submission.
func NewEmailData(reference string, form models.RegistrationForm, input models.EnrollmentConfig, pricing models.PriceBreakdown, paymentMethod string) EmailData {
	if paymentMethod == "" {
		paymentMethod = "not specified"
	}
	return EmailData{
		Reference:       reference,
		Form:            form,
		Input:           input,
		Pricing:         pricing,
		PaymentMethod:   paymentMethod,
		BaseWeekly:      utils.FormatUSD(int64(pricing.BaseWeekly)),
		AddOnWeekly:     utils.FormatUSD(int64(pricing.AddOnWeekly)),
		AbacusWeekly:    utils.FormatUSD(int64(pricing.AbacusWeekly)),
		SchoolDiscount:  utils.FormatUSD(int64(pricing.SchoolDiscountWeekly)),
		PrepayDiscount:  utils.FormatUSD(int64(pricing.PrepayDiscountWeekly)),
		FinalWeekly:     utils.FormatUSD(int64(pricing.FinalWeekly)),
		RegistrationFee: utils.FormatUSD(int64(pricing.RegistrationFee)),
		Total:           utils.FormatUSD(int64(pricing.TotalForPeriod)),
	}
}

// TemplateService renders the notification emails from the templates
// directory.
type TemplateService struct {
	templatesDir string
}

// NewTemplateService creates a new TemplateService. templatesDir is the
// directory holding staff_notification.txt and confirmation.html.
func NewTemplateService(templatesDir string) *TemplateService {
	return &TemplateService{templatesDir: templatesDir}
}

// RenderStaffText renders the plain-text registration summary sent to staff.
func (s *TemplateService) RenderStaffText(data EmailData) (string, error) {
	templatePath := filepath.Join(s.templatesDir, "staff_notification.txt")
	tmpl, err := texttemplate.ParseFiles(templatePath)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

// RenderParentHTML renders the HTML confirmation sent to the parent. The
// same HTML feeds the PDF invoice when that feature is enabled.
func (s *TemplateService) RenderParentHTML(data EmailData) (string, error) {
	templatePath := filepath.Join(s.templatesDir, "confirmation.html")
	tmpl, err := htmltemplate.ParseFiles(templatePath)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}
