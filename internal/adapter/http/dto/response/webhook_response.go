package response

import (
	"time"

	"loja_xpto/internal/domain/entities"
	"loja_xpto/internal/usecase"
)

// WebhookResponse mirrors the uniform result shape produced by the webhook
// use case, so the provider always receives the same envelope regardless of
// which step short-circuited.
type WebhookResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message,omitempty"`
	Error   string              `json:"error,omitempty"`
	Data    *WebhookLogResponse `json:"data,omitempty"`
}

type WebhookLogResponse struct {
	ID                string  `json:"id"`
	Topic             string  `json:"topic"`
	Action            string  `json:"action,omitempty"`
	PaymentID         string  `json:"payment_id,omitempty"`
	RequestID         string  `json:"request_id,omitempty"`
	SignatureChecked  bool    `json:"signature_checked"`
	ProviderStatus    string  `json:"provider_status,omitempty"`
	MappedStatus      string  `json:"mapped_status,omitempty"`
	Amount            float64 `json:"amount,omitempty"`
	Currency          string  `json:"currency,omitempty"`
	PaymentMethod     string  `json:"payment_method,omitempty"`
	PayerEmail        string  `json:"payer_email,omitempty"`
	ExternalReference string  `json:"external_reference,omitempty"`
	ReceivedAt        string  `json:"received_at"`
}

func FromWebhookResult(result usecase.WebhookResult) WebhookResponse {
	resp := WebhookResponse{
		Success: result.Success,
		Message: result.Message,
		Error:   result.Error,
	}
	if result.Data != nil {
		log := FromWebhookLogRecord(*result.Data)
		resp.Data = &log
	}
	return resp
}

func FromWebhookLogRecord(rec entities.WebhookLogRecord) WebhookLogResponse {
	return WebhookLogResponse{
		ID:                rec.ID,
		Topic:             rec.Topic,
		Action:            rec.Action,
		PaymentID:         rec.PaymentID,
		RequestID:         rec.RequestID,
		SignatureChecked:  rec.SignatureChecked,
		ProviderStatus:    rec.ProviderStatus,
		MappedStatus:      string(rec.MappedStatus),
		Amount:            rec.Amount,
		Currency:          rec.Currency,
		PaymentMethod:     rec.PaymentMethod,
		PayerEmail:        rec.PayerEmail,
		ExternalReference: rec.ExternalReference,
		ReceivedAt:        rec.ReceivedAt.UTC().Format(time.RFC3339Nano),
	}
}
