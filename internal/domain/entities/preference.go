package entities

import "time"

// PreferenceItem is a single line of a provider preference payload with the
// configured currency attached.
type PreferenceItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Quantity    int64  `json:"quantity"`
	UnitPrice   int64  `json:"unit_price"`
	CurrencyID  string `json:"currency_id"`
}

// Preference is the Mercado Pago preference payload derived from a validated
// checkout request. It is built deterministically (apart from synthetic item
// ids) and never mutated after BuildPreference.
type Preference struct {
	Items             []PreferenceItem `json:"items"`
	PayerEmail        string           `json:"payer_email"`
	PayerName         string           `json:"payer_name"`
	ExternalReference string           `json:"external_reference"`
	NotificationURL   string           `json:"notification_url"`
	SuccessURL        string           `json:"success_url"`
	PendingURL        string           `json:"pending_url"`
	FailureURL        string           `json:"failure_url"`
	TotalAmount       int64            `json:"total_amount"`
	TotalItems        int64            `json:"total_items"`
	ExpiresAt         time.Time        `json:"expires_at"`
}
