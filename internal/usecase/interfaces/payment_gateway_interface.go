package interfaces

import (
	"context"
	"loja_xpto/internal/domain/entities"
)

// IPaymentGateway abstracts the Mercado Pago API surface this service uses:
// preference creation during checkout and payment lookup during webhook
// processing.
type IPaymentGateway interface {
	// CreatePreference creates the provider preference and returns its remote
	// id plus the customer-facing redirect (init point) URL.
	CreatePreference(ctx context.Context, pref entities.Preference) (preferenceID string, paymentURL string, err error)

	// GetPaymentByID fetches a payment pushed through a webhook notification.
	GetPaymentByID(ctx context.Context, paymentID string) (entities.PaymentInfo, error)
}
