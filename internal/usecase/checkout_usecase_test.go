package usecase

import (
	"context"
	"errors"
	"testing"

	"loja_xpto/internal/domain/entities"
	mock_interfaces "loja_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCheckoutUseCase_ProcessCheckout(t *testing.T) {
	t.Run("invalid payload returns accumulated details", func(t *testing.T) {
		uc := NewCheckoutUseCase(testSettings(), nil, nil, nil)
		_, details, err := uc.ProcessCheckout(context.Background(), map[string]any{})
		if !errors.Is(err, ErrInvalidCheckoutPayload) {
			t.Fatalf("expected ErrInvalidCheckoutPayload, got %v", err)
		}
		if len(details) == 0 {
			t.Fatalf("expected validation details")
		}
	})

	t.Run("valid payload runs full sequence", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		gateway.EXPECT().CreatePreference(gomock.Any(), gomock.Any()).Return("pref-1", "https://mp.example/redirect", nil)

		var saved entities.Order
		save := func(_ context.Context, order entities.Order) error {
			saved = order
			return nil
		}

		uc := NewCheckoutUseCase(testSettings(), gateway, save, nil)
		result, details, err := uc.ProcessCheckout(context.Background(), validPayload())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if details != nil {
			t.Fatalf("expected no details, got %v", details)
		}
		if result.Order.TotalAmount != 200 || result.Order.TotalItems != 2 {
			t.Fatalf("expected total_amount=200 total_items=2, got %+v", result.Order)
		}
		if result.PaymentURL != "https://mp.example/redirect" {
			t.Fatalf("unexpected payment url: %s", result.PaymentURL)
		}
		if saved.ID != result.Order.ID {
			t.Fatalf("expected saved order %q, got %q", result.Order.ID, saved.ID)
		}
	})

	t.Run("gateway failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		gateway.EXPECT().CreatePreference(gomock.Any(), gomock.Any()).Return("", "", errors.New("provider down"))

		uc := NewCheckoutUseCase(testSettings(), gateway, nil, nil)
		_, _, err := uc.ProcessCheckout(context.Background(), validPayload())
		if err == nil || err.Error() != "provider down" {
			t.Fatalf("expected provider down error, got %v", err)
		}
	})
}

func TestCheckoutUseCase_GetOrderByID(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := NewCheckoutUseCase(testSettings(), nil, nil, nil)
		if _, err := uc.GetOrderByID(context.Background(), " "); !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{}, nil)

		uc := NewCheckoutUseCase(testSettings(), nil, nil, orders)
		if _, err := uc.GetOrderByID(context.Background(), "ord-1"); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1"}, nil)

		uc := NewCheckoutUseCase(testSettings(), nil, nil, orders)
		o, err := uc.GetOrderByID(context.Background(), "ord-1")
		if err != nil || o.ID != "ord-1" {
			t.Fatalf("unexpected result: %+v err=%v", o, err)
		}
	})
}

func TestCheckoutUseCase_GetOrderByPreferenceID(t *testing.T) {
	t.Run("empty preference id", func(t *testing.T) {
		uc := NewCheckoutUseCase(testSettings(), nil, nil, nil)
		if _, err := uc.GetOrderByPreferenceID(context.Background(), ""); !errors.Is(err, ErrInvalidPreferenceID) {
			t.Fatalf("expected ErrInvalidPreferenceID, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		orders.EXPECT().GetByPreferenceID(gomock.Any(), "pref-1").Return(entities.Order{ID: "ord-1", PreferenceID: "pref-1"}, nil)

		uc := NewCheckoutUseCase(testSettings(), nil, nil, orders)
		o, err := uc.GetOrderByPreferenceID(context.Background(), "pref-1")
		if err != nil || o.PreferenceID != "pref-1" {
			t.Fatalf("unexpected result: %+v err=%v", o, err)
		}
	})
}
