package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"loja_xpto/internal/domain/entities"
	mock_interfaces "loja_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func testSettings() BuilderSettings {
	return BuilderSettings{
		CurrencyID:      "BRL",
		NotificationURL: "https://shop.example/v1/webhooks/mercadopago",
		SuccessURL:      "https://shop.example/checkout/success",
		PendingURL:      "https://shop.example/checkout/pending",
		FailureURL:      "https://shop.example/checkout/failure",
	}
}

func testRequest() entities.CheckoutRequest {
	return entities.CheckoutRequest{
		CustomerInfo: entities.CustomerInfo{Email: "a@b.com", Name: "Jo"},
		Items: []entities.CheckoutItem{
			{Title: "Widget", Quantity: 2, UnitPrice: 100},
		},
	}
}

func TestPreferenceBuilder_StepOrder(t *testing.T) {
	t.Run("build before set request", func(t *testing.T) {
		b := NewPreferenceBuilder(testSettings(), nil, nil)
		if _, err := b.BuildPreference(); !errors.Is(err, ErrRequestNotSet) {
			t.Fatalf("expected ErrRequestNotSet, got %v", err)
		}
	})

	t.Run("create before build", func(t *testing.T) {
		b := NewPreferenceBuilder(testSettings(), nil, nil)
		b.SetRequest(testRequest())
		if _, err := b.CreatePreference(context.Background()); !errors.Is(err, ErrPreferenceNotBuilt) {
			t.Fatalf("expected ErrPreferenceNotBuilt, got %v", err)
		}
	})

	t.Run("save before create", func(t *testing.T) {
		b := NewPreferenceBuilder(testSettings(), nil, nil)
		b.SetRequest(testRequest())
		if _, err := b.BuildPreference(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := b.SaveOrder(context.Background()); !errors.Is(err, ErrOrderNotCreated) {
			t.Fatalf("expected ErrOrderNotCreated, got %v", err)
		}
	})

	t.Run("result before create", func(t *testing.T) {
		b := NewPreferenceBuilder(testSettings(), nil, nil)
		b.SetRequest(testRequest())
		if _, err := b.BuildPreference(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := b.Result(); !errors.Is(err, ErrOrderNotCreated) {
			t.Fatalf("expected ErrOrderNotCreated, got %v", err)
		}
	})
}

func TestPreferenceBuilder_BuildPreference(t *testing.T) {
	req := entities.CheckoutRequest{
		CustomerInfo: entities.CustomerInfo{Email: "a@b.com", Name: "Jo"},
		Items: []entities.CheckoutItem{
			{ID: "sku-1", Title: "Widget", Quantity: 2, UnitPrice: 100},
			{Title: "Gadget", Quantity: 3, UnitPrice: 50},
		},
	}

	b := NewPreferenceBuilder(testSettings(), nil, nil)
	b.SetRequest(req)

	before := time.Now().UTC()
	pref, err := b.BuildPreference()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if pref.TotalAmount != 2*100+3*50 {
		t.Fatalf("expected total 350, got %d", pref.TotalAmount)
	}
	if pref.TotalItems != 5 {
		t.Fatalf("expected 5 items, got %d", pref.TotalItems)
	}
	if pref.Items[0].ID != "sku-1" {
		t.Fatalf("expected explicit item id kept, got %q", pref.Items[0].ID)
	}
	if pref.Items[1].ID == "" {
		t.Fatalf("expected synthetic id for item lacking one")
	}
	if pref.Items[0].CurrencyID != "BRL" || pref.Items[1].CurrencyID != "BRL" {
		t.Fatalf("expected fixed currency on every item: %+v", pref.Items)
	}
	if pref.ExternalReference == "" {
		t.Fatalf("expected external reference")
	}

	window := pref.ExpiresAt.Sub(before)
	if window < 19*time.Minute || window > 21*time.Minute {
		t.Fatalf("expected default 20 minute expiration window, got %v", window)
	}
}

func TestPreferenceBuilder_CreatePreference(t *testing.T) {
	t.Run("success builds pending order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		gateway.EXPECT().CreatePreference(gomock.Any(), gomock.Any()).Return("pref-1", "https://mp.example/redirect", nil)

		b := NewPreferenceBuilder(testSettings(), gateway, nil)
		b.SetRequest(testRequest())
		if _, err := b.BuildPreference(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		order, err := b.CreatePreference(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.Status != entities.OrderStatusPending {
			t.Fatalf("expected pending order, got %s", order.Status)
		}
		if order.PreferenceID != "pref-1" || order.PaymentURL != "https://mp.example/redirect" {
			t.Fatalf("unexpected order: %+v", order)
		}
		if order.TotalAmount != 200 || order.TotalItems != 2 {
			t.Fatalf("unexpected totals: %+v", order)
		}
		if order.Items[0].Total != 200 {
			t.Fatalf("expected line total 200, got %d", order.Items[0].Total)
		}
	})

	t.Run("missing redirect url fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		gateway.EXPECT().CreatePreference(gomock.Any(), gomock.Any()).Return("pref-1", "", nil)

		b := NewPreferenceBuilder(testSettings(), gateway, nil)
		b.SetRequest(testRequest())
		if _, err := b.BuildPreference(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := b.CreatePreference(context.Background()); !errors.Is(err, ErrPreferenceIncomplete) {
			t.Fatalf("expected ErrPreferenceIncomplete, got %v", err)
		}
	})

	t.Run("gateway error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		gateway.EXPECT().CreatePreference(gomock.Any(), gomock.Any()).Return("", "", errors.New("provider down"))

		b := NewPreferenceBuilder(testSettings(), gateway, nil)
		b.SetRequest(testRequest())
		if _, err := b.BuildPreference(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := b.CreatePreference(context.Background()); err == nil || err.Error() != "provider down" {
			t.Fatalf("expected provider down error, got %v", err)
		}
	})
}

func TestPreferenceBuilder_SaveOrder(t *testing.T) {
	runToOrder := func(t *testing.T, save func(ctx context.Context, order entities.Order) error) *PreferenceBuilder {
		t.Helper()
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		gateway.EXPECT().CreatePreference(gomock.Any(), gomock.Any()).Return("pref-1", "https://mp.example/redirect", nil)

		b := NewPreferenceBuilder(testSettings(), gateway, save)
		b.SetRequest(testRequest())
		if _, err := b.BuildPreference(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := b.CreatePreference(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return b
	}

	t.Run("nil save function is a no-op", func(t *testing.T) {
		b := runToOrder(t, nil)
		if err := b.SaveOrder(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("save function receives the order", func(t *testing.T) {
		var saved entities.Order
		b := runToOrder(t, func(_ context.Context, order entities.Order) error {
			saved = order
			return nil
		})
		if err := b.SaveOrder(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved.PreferenceID != "pref-1" || saved.Status != entities.OrderStatusPending {
			t.Fatalf("unexpected saved order: %+v", saved)
		}
	})

	t.Run("save failure propagates", func(t *testing.T) {
		b := runToOrder(t, func(_ context.Context, _ entities.Order) error {
			return errors.New("store down")
		})
		if err := b.SaveOrder(context.Background()); err == nil || err.Error() != "store down" {
			t.Fatalf("expected store down error, got %v", err)
		}
	})
}

func TestPreferenceBuilder_Reset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	gateway.EXPECT().CreatePreference(gomock.Any(), gomock.Any()).Return("pref-1", "https://mp.example/redirect", nil)

	b := NewPreferenceBuilder(testSettings(), gateway, nil)
	b.SetRequest(testRequest())
	if _, err := b.BuildPreference(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := b.CreatePreference(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := b.Result(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b.Reset()
	if _, err := b.BuildPreference(); !errors.Is(err, ErrRequestNotSet) {
		t.Fatalf("expected ErrRequestNotSet after reset, got %v", err)
	}
	if _, err := b.Result(); !errors.Is(err, ErrPreferenceNotBuilt) {
		t.Fatalf("expected ErrPreferenceNotBuilt after reset, got %v", err)
	}
}
