package response

import (
	"loja_xpto/internal/usecase"
)

// CheckoutResponse is the payload returned after a successful checkout.
type CheckoutResponse struct {
	Order      OrderResponse `json:"order"`
	PaymentURL string        `json:"payment_url"`
}

func FromCheckoutResult(result usecase.CheckoutResult) CheckoutResponse {
	return CheckoutResponse{
		Order:      FromOrder(result.Order),
		PaymentURL: result.PaymentURL,
	}
}
