package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"loja_xpto/internal/adapter/http/handlers/mocks"
	"loja_xpto/internal/domain/entities"
	"loja_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func sampleLogRecord() entities.WebhookLogRecord {
	return entities.WebhookLogRecord{
		ID:             "log-1",
		Topic:          "payment",
		PaymentID:      "123",
		ProviderStatus: "approved",
		MappedStatus:   entities.OrderStatusApproved,
		Amount:         200,
		Currency:       "BRL",
		ReceivedAt:     time.Now().UTC(),
	}
}

func TestWebhookHandler_HandleMercadoPagoWebhook(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("forwards headers, query hints and raw body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		h := NewWebhookHandler(uc)

		r := gin.New()
		r.POST("/v1/webhooks/mercadopago", h.HandleMercadoPagoWebhook)

		body := `{"type":"payment","data":{"id":"123"}}`
		uc.EXPECT().ProcessWebhook(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, req usecase.WebhookRequest) usecase.WebhookResult {
			if string(req.Body) != body {
				t.Fatalf("unexpected body: %s", req.Body)
			}
			if req.Signature != "ts=1,v1=abc" || req.RequestID != "req-1" {
				t.Fatalf("unexpected headers: %+v", req)
			}
			if req.PaymentID != "123" || req.Topic != "payment" {
				t.Fatalf("unexpected query hints: %+v", req)
			}
			rec := sampleLogRecord()
			return usecase.WebhookResult{Success: true, Status: http.StatusOK, Message: "payment webhook processed", Data: &rec}
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/mercadopago?data.id=123&type=payment", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("x-signature", "ts=1,v1=abc")
		req.Header.Set("x-request-id", "req-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
			Data    *struct {
				PaymentID    string `json:"payment_id"`
				MappedStatus string `json:"mapped_status"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if !resp.Success || resp.Message != "payment webhook processed" {
			t.Fatalf("unexpected response: %+v", resp)
		}
		if resp.Data == nil || resp.Data.PaymentID != "123" || resp.Data.MappedStatus != "approved" {
			t.Fatalf("unexpected data: %+v", resp.Data)
		}
	})

	t.Run("legacy query params", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		h := NewWebhookHandler(uc)

		r := gin.New()
		r.POST("/v1/webhooks/mercadopago", h.HandleMercadoPagoWebhook)

		uc.EXPECT().ProcessWebhook(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, req usecase.WebhookRequest) usecase.WebhookResult {
			if req.PaymentID != "456" || req.Topic != "merchant_order" {
				t.Fatalf("unexpected query hints: %+v", req)
			}
			return usecase.WebhookResult{Success: true, Status: http.StatusOK, Message: "webhook acknowledged"}
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/mercadopago?id=456&topic=merchant_order", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("status from result is propagated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		h := NewWebhookHandler(uc)

		r := gin.New()
		r.POST("/v1/webhooks/mercadopago", h.HandleMercadoPagoWebhook)

		uc.EXPECT().ProcessWebhook(gomock.Any(), gomock.Any()).Return(usecase.WebhookResult{Success: false, Status: http.StatusUnauthorized, Error: "signature verification failed"})

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/mercadopago", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("body read failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		h := NewWebhookHandler(uc)

		r := gin.New()
		r.POST("/v1/webhooks/mercadopago", h.HandleMercadoPagoWebhook)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/mercadopago", nil)
		req.Body = failingReadCloser{}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestWebhookHandler_ListWebhookLogs(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payment id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		h := NewWebhookHandler(uc)

		r := gin.New()
		r.GET("/v1/webhooks/logs/:payment_id", h.ListWebhookLogs)

		uc.EXPECT().ListLogsByPaymentID(gomock.Any(), " ").Return(nil, usecase.ErrInvalidWebhookPaymentID)

		req := httptest.NewRequest(http.MethodGet, "/v1/webhooks/logs/%20", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		h := NewWebhookHandler(uc)

		r := gin.New()
		r.GET("/v1/webhooks/logs/:payment_id", h.ListWebhookLogs)

		uc.EXPECT().ListLogsByPaymentID(gomock.Any(), "999").Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/webhooks/logs/999", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		h := NewWebhookHandler(uc)

		r := gin.New()
		r.GET("/v1/webhooks/logs/:payment_id", h.ListWebhookLogs)

		uc.EXPECT().ListLogsByPaymentID(gomock.Any(), "123").Return([]entities.WebhookLogRecord{sampleLogRecord()}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/webhooks/logs/123", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var out []struct {
			ID        string `json:"id"`
			PaymentID string `json:"payment_id"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if len(out) != 1 || out[0].PaymentID != "123" {
			t.Fatalf("unexpected payload: %+v", out)
		}
	})
}
