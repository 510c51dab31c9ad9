package payments

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"loja_xpto/internal/domain/entities"
)

func testPreference() entities.Preference {
	return entities.Preference{
		Items: []entities.PreferenceItem{
			{ID: "sku-1", Title: "Widget", Quantity: 2, UnitPrice: 100, CurrencyID: "BRL"},
		},
		PayerEmail:        "a@b.com",
		PayerName:         "Jo",
		ExternalReference: "ord-1",
		TotalAmount:       200,
		TotalItems:        2,
		ExpiresAt:         time.Now().UTC().Add(20 * time.Minute),
	}
}

func TestNewMercadoPagoGateway_MissingToken(t *testing.T) {
	if _, err := NewMercadoPagoGateway("", 0, false); !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
		t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
	}
}

func TestMercadoPagoGateway_MockMode(t *testing.T) {
	g, err := NewMercadoPagoGateway("", 0, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("create preference", func(t *testing.T) {
		id, url, err := g.CreatePreference(context.Background(), testPreference())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(id, "mock-pref-") {
			t.Fatalf("unexpected preference id: %s", id)
		}
		if !strings.Contains(url, id) {
			t.Fatalf("expected redirect url to carry the preference id: %s", url)
		}
	})

	t.Run("get payment", func(t *testing.T) {
		info, err := g.GetPaymentByID(context.Background(), "123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if info.ID != "123" || info.Status != "approved" {
			t.Fatalf("unexpected payment info: %+v", info)
		}
	})
}

func TestMercadoPagoGateway_NotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	if _, _, err := g.CreatePreference(context.Background(), testPreference()); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}
	if _, err := g.GetPaymentByID(context.Background(), "123"); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}
}
