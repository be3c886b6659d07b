package service

import "context"

// NotifyServiceInterface defines the contract for registration notifications
type NotifyServiceInterface interface {
	SendStaffNotification(ctx context.Context, data EmailData) error
	SendParentConfirmation(ctx context.Context, data EmailData) error
	SendPaymentReceived(ctx context.Context, reference, parentEmail string) error
}
