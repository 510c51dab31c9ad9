package entities

// PaymentInfo is the subset of a Mercado Pago payment the webhook flow cares
// about after looking the payment up through the provider API.
type PaymentInfo struct {
	ID                string  `json:"id"`
	Status            string  `json:"status"`
	StatusDetail      string  `json:"status_detail,omitempty"`
	TransactionAmount float64 `json:"transaction_amount"`
	CurrencyID        string  `json:"currency_id"`
	PaymentMethodID   string  `json:"payment_method_id"`
	PaymentTypeID     string  `json:"payment_type_id,omitempty"`
	PayerEmail        string  `json:"payer_email,omitempty"`
	ExternalReference string  `json:"external_reference,omitempty"`
}
