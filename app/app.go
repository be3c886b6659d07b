package app

import (
	"fmt"
	"log"
	"os"

	"afterschool-registration/app/controller"
	"afterschool-registration/app/router"
	"afterschool-registration/service"
)

// Initialize initializes the application
func Initialize() error {
	// Get credentials path from environment variable
	credentialsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	if credentialsPath == "" {
		return fmt.Errorf("GOOGLE_APPLICATION_CREDENTIALS environment variable is not set")
	}

	sender := os.Getenv("MAIL_SENDER")
	if sender == "" {
		return fmt.Errorf("MAIL_SENDER environment variable is not set")
	}

	staffEmail := os.Getenv("STAFF_EMAIL")
	if staffEmail == "" {
		return fmt.Errorf("STAFF_EMAIL environment variable is not set")
	}

	// Initialize mail and template services
	mailService := service.NewGmailService(credentialsPath, sender)
	templateService := service.NewTemplateService("templates")

	// PDF invoices are optional: they need a Chrome/Chromium install
	var invoiceService service.InvoiceServiceInterface
	if os.Getenv("INVOICE_PDF_ENABLED") == "true" {
		invoiceService = service.NewInvoiceService()
		log.Printf("✅ Initialize: PDF invoice attachments enabled")
	}

	notifyService := service.NewNotifyService(mailService, templateService, invoiceService, staffEmail)

	// Create controllers
	controllers := &router.Controllers{
		Quote:        controller.NewQuoteController(),
		Registration: controller.NewRegistrationController(notifyService),
	}

	// Hosted checkout is optional: enabled only when the provider keys are set
	if secretKey := os.Getenv("STRIPE_SECRET_KEY"); secretKey != "" {
		checkoutService := service.NewCheckoutService(
			secretKey,
			os.Getenv("STRIPE_WEBHOOK_SECRET"),
			os.Getenv("CHECKOUT_SUCCESS_URL"),
			os.Getenv("CHECKOUT_CANCEL_URL"),
		)
		controllers.Checkout = controller.NewCheckoutController(checkoutService, notifyService)
	}

	allowedOrigin := os.Getenv("ALLOWED_ORIGIN")
	if allowedOrigin == "" {
		allowedOrigin = "*"
	}

	// Setup routes using standard http router
	router.SetupRoutes(controllers, allowedOrigin)

	return nil
}
