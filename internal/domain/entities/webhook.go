package entities

import "time"

// WebhookEvent is the notification body Mercado Pago pushes to the webhook
// endpoint. It is untrusted input until the signature check passes.
type WebhookEvent struct {
	ID          int64            `json:"id"`
	LiveMode    bool             `json:"live_mode"`
	Type        string           `json:"type"`
	DateCreated string           `json:"date_created"`
	UserID      int64            `json:"user_id,omitempty"`
	APIVersion  string           `json:"api_version"`
	Action      string           `json:"action"`
	Data        WebhookEventData `json:"data"`
}

type WebhookEventData struct {
	ID string `json:"id"`
}

// WebhookLogRecord flattens a processed webhook plus the fetched payment
// fields into one normalized audit row.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (payment_id-index): payment_id
type WebhookLogRecord struct {
	ID                string      `json:"id"`
	Topic             string      `json:"topic"`
	Action            string      `json:"action,omitempty"`
	PaymentID         string      `json:"payment_id,omitempty"`
	RequestID         string      `json:"request_id,omitempty"`
	SignatureChecked  bool        `json:"signature_checked"`
	RawBody           string      `json:"raw_body,omitempty"`
	ProviderStatus    string      `json:"provider_status,omitempty"`
	MappedStatus      OrderStatus `json:"mapped_status,omitempty"`
	Amount            float64     `json:"amount,omitempty"`
	Currency          string      `json:"currency,omitempty"`
	PaymentMethod     string      `json:"payment_method,omitempty"`
	PayerEmail        string      `json:"payer_email,omitempty"`
	ExternalReference string      `json:"external_reference,omitempty"`
	ReceivedAt        time.Time   `json:"received_at"`
}
