package handlers

import (
	"errors"
	"log"
	"net/http"

	response "loja_xpto/internal/adapter/http/dto/response"
	"loja_xpto/internal/usecase"
	"loja_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// WebhookHandler handles Mercado Pago webhook notifications.

type WebhookHandler struct {
	usecase usecase.IWebhookUseCase
}

func NewWebhookHandler(uc usecase.IWebhookUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// HandleMercadoPagoWebhook receives a provider notification and replies with
// the status the use case decided. The body is read raw so the signature can
// be checked before any JSON parsing happens.
func (h *WebhookHandler) HandleMercadoPagoWebhook(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		log.Printf("[webhook][handler] body read failed err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	req := usecase.WebhookRequest{
		Body:      body,
		Signature: c.GetHeader("x-signature"),
		RequestID: c.GetHeader("x-request-id"),
		PaymentID: queryFirst(c, "data.id", "id"),
		Topic:     queryFirst(c, "type", "topic"),
	}
	log.Printf("[webhook][handler] received topic=%s payment_id=%s request_id=%s", req.Topic, req.PaymentID, req.RequestID)

	result := h.usecase.ProcessWebhook(c.Request.Context(), req)
	log.Printf("[webhook][handler] processed status=%d success=%t message=%s", result.Status, result.Success, result.Message)

	c.JSON(result.Status, response.FromWebhookResult(result))
}

// ListWebhookLogs returns every stored notification for a payment id.
func (h *WebhookHandler) ListWebhookLogs(c *gin.Context) {
	paymentID := c.Param("payment_id")
	log.Printf("[webhook][handler] list-logs start payment_id=%s", paymentID)

	records, err := h.usecase.ListLogsByPaymentID(c.Request.Context(), paymentID)
	if err != nil {
		log.Printf("[webhook][handler] list-logs failed payment_id=%s err=%v", paymentID, err)
		appErr := mapWebhookError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if len(records) == 0 {
		log.Printf("[webhook][handler] list-logs not-found payment_id=%s", paymentID)
		appErr := pkg.NewDomainErrorSimple("WEBHOOK_LOGS_NOT_FOUND", "No webhook logs found for this payment", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.WebhookLogResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, response.FromWebhookLogRecord(rec))
	}
	c.JSON(http.StatusOK, out)
}

// queryFirst returns the first non-empty value among the given query params.
// Mercado Pago sends "data.id"/"type" on current notifications and "id"/
// "topic" on legacy ones.
func queryFirst(c *gin.Context, keys ...string) string {
	for _, k := range keys {
		if v := c.Query(k); v != "" {
			return v
		}
	}
	return ""
}

func mapWebhookError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWebhookPaymentID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
