package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"loja_xpto/internal/domain/entities"
	"loja_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrInvalidWebhookPaymentID = errors.New("invalid webhook payment id")

// TopicPayment is the only webhook topic that triggers a provider lookup;
// every other topic is acknowledged without further processing.
const TopicPayment = "payment"

// paymentStatusMap is the fixed raw-status -> local-status table. Statuses
// not listed here map to OrderStatusUnknown.
var paymentStatusMap = map[string]entities.OrderStatus{
	"approved":     entities.OrderStatusApproved,
	"authorized":   entities.OrderStatusApproved,
	"rejected":     entities.OrderStatusRejected,
	"cancelled":    entities.OrderStatusCancelled,
	"in_process":   entities.OrderStatusPending,
	"in_mediation": entities.OrderStatusPending,
	"refunded":     entities.OrderStatusRefunded,
	"charged_back": entities.OrderStatusChargeback,
	"pending":      entities.OrderStatusPending,
}

// MapPaymentStatus maps a raw Mercado Pago payment status into the local
// vocabulary. Total over all inputs.
func MapPaymentStatus(raw string) entities.OrderStatus {
	if mapped, ok := paymentStatusMap[strings.TrimSpace(raw)]; ok {
		return mapped
	}
	return entities.OrderStatusUnknown
}

// WebhookRequest is the raw material extracted from an inbound notification:
// body bytes, signature headers, and the query-string hints Mercado Pago
// sends alongside the payload.
type WebhookRequest struct {
	Body      []byte
	Signature string
	RequestID string
	PaymentID string
	Topic     string
}

// WebhookResult is the uniform outcome envelope: nothing escapes the webhook
// use case as a panic or bare error.
type WebhookResult struct {
	Success bool                       `json:"success"`
	Status  int                        `json:"status"`
	Message string                     `json:"message"`
	Error   string                     `json:"error,omitempty"`
	Data    *entities.WebhookLogRecord `json:"data,omitempty"`
}

type IWebhookUseCase interface {
	ProcessWebhook(ctx context.Context, req WebhookRequest) WebhookResult
	ListLogsByPaymentID(ctx context.Context, paymentID string) ([]entities.WebhookLogRecord, error)
}

// WebhookUseCase processes inbound Mercado Pago notifications. Stateless per
// call: each invocation runs extraction -> signature check -> parse ->
// processing in order, returning early with a structured result.
type WebhookUseCase struct {
	secret            string
	validateSignature bool
	gateway           interfaces.IPaymentGateway
	logs              interfaces.IWebhookLogRepository
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

func NewWebhookUseCase(secret string, validateSignature bool, gateway interfaces.IPaymentGateway, logs interfaces.IWebhookLogRepository) *WebhookUseCase {
	return &WebhookUseCase{secret: secret, validateSignature: validateSignature, gateway: gateway, logs: logs}
}

func (u *WebhookUseCase) ProcessWebhook(ctx context.Context, req WebhookRequest) WebhookResult {
	log.Printf("[webhook][usecase] process start topic=%q payment_id=%q body_len=%d", req.Topic, req.PaymentID, len(req.Body))

	if u.validateSignature {
		if u.secret == "" {
			log.Printf("[webhook][usecase] signature validation enabled without a secret")
			return WebhookResult{Status: http.StatusInternalServerError, Message: "webhook secret not configured"}
		}
		if err := VerifyWebhookSignature(u.secret, req.PaymentID, req.RequestID, req.Signature); err != nil {
			log.Printf("[webhook][usecase] signature rejected payment_id=%q err=%v", req.PaymentID, err)
			return WebhookResult{Status: http.StatusUnauthorized, Message: "webhook signature rejected", Error: err.Error()}
		}
	}

	var event entities.WebhookEvent
	if err := json.Unmarshal(req.Body, &event); err != nil {
		log.Printf("[webhook][usecase] payload parse failed err=%v", err)
		return WebhookResult{Status: http.StatusBadRequest, Message: "invalid webhook payload", Error: err.Error()}
	}

	topic := event.Type
	if topic == "" {
		topic = req.Topic
	}
	paymentID := strings.TrimSpace(event.Data.ID)
	if paymentID == "" {
		paymentID = strings.TrimSpace(req.PaymentID)
	}

	record := entities.WebhookLogRecord{
		ID:               uuid.NewString(),
		Topic:            topic,
		Action:           event.Action,
		PaymentID:        paymentID,
		RequestID:        req.RequestID,
		SignatureChecked: u.validateSignature,
		RawBody:          string(req.Body),
		ReceivedAt:       time.Now().UTC(),
	}

	if topic != TopicPayment || paymentID == "" {
		u.persistLog(ctx, record)
		log.Printf("[webhook][usecase] acknowledged topic=%q payment_id=%q", topic, paymentID)
		return WebhookResult{Success: true, Status: http.StatusOK, Message: "webhook acknowledged", Data: &record}
	}

	if u.gateway == nil {
		log.Printf("[webhook][usecase] payment gateway not configured payment_id=%s", paymentID)
		u.persistLog(ctx, record)
		return WebhookResult{Status: http.StatusInternalServerError, Message: "payment gateway not configured", Data: &record}
	}

	info, err := u.gateway.GetPaymentByID(ctx, paymentID)
	if err != nil {
		log.Printf("[webhook][usecase] payment lookup failed payment_id=%s err=%v", paymentID, err)
		u.persistLog(ctx, record)
		return WebhookResult{Status: http.StatusBadGateway, Message: "failed to fetch payment from provider", Error: err.Error(), Data: &record}
	}

	record.ProviderStatus = info.Status
	record.MappedStatus = MapPaymentStatus(info.Status)
	record.Amount = info.TransactionAmount
	record.Currency = info.CurrencyID
	record.PaymentMethod = info.PaymentMethodID
	record.PayerEmail = info.PayerEmail
	record.ExternalReference = info.ExternalReference

	u.persistLog(ctx, record)
	log.Printf("[webhook][usecase] process success payment_id=%s provider_status=%s mapped_status=%s", paymentID, info.Status, record.MappedStatus)
	return WebhookResult{Success: true, Status: http.StatusOK, Message: "payment webhook processed", Data: &record}
}

// persistLog writes the audit record best-effort; webhook processing never
// fails because the log write did.
func (u *WebhookUseCase) persistLog(ctx context.Context, record entities.WebhookLogRecord) {
	if u.logs == nil {
		log.Printf("[webhook][usecase] no log repository registered; skipping persistence record_id=%s", record.ID)
		return
	}
	if _, err := u.logs.Create(ctx, record); err != nil {
		log.Printf("[webhook][usecase] log persistence failed record_id=%s err=%v", record.ID, err)
	}
}

func (u *WebhookUseCase) ListLogsByPaymentID(ctx context.Context, paymentID string) ([]entities.WebhookLogRecord, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return nil, ErrInvalidWebhookPaymentID
	}
	if u.logs == nil {
		return nil, errors.New("webhook log repository not configured")
	}
	return u.logs.ListByPaymentID(ctx, paymentID)
}
