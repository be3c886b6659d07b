package service

import "context"

// InvoiceServiceInterface defines the contract for PDF invoice rendering
type InvoiceServiceInterface interface {
	GeneratePDF(ctx context.Context, html string) ([]byte, error)
}
