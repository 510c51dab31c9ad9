package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"loja_xpto/internal/domain/entities"
	"loja_xpto/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway implements IPaymentGateway on top of the official SDK.
// Mock mode serves deterministic fake responses for local runs without
// provider credentials.
type MercadoPagoGateway struct {
	preferences preference.Client
	payments    payment.Client
	timeout     time.Duration
	mockMode    bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, timeout time.Duration, mockMode bool) (*MercadoPagoGateway, error) {
	if mockMode {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{
		preferences: preference.NewClient(cfg),
		payments:    payment.NewClient(cfg),
		timeout:     timeout,
	}, nil
}

func (g *MercadoPagoGateway) CreatePreference(ctx context.Context, pref entities.Preference) (string, string, error) {
	if g != nil && g.mockMode {
		id := "mock-pref-" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		url := "https://sandbox.mercadopago.com.br/checkout/v1/redirect?pref_id=" + id
		log.Printf("[payment][gateway] mock preference created preference_id=%s", id)
		return id, url, nil
	}
	if g == nil || g.preferences == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return "", "", ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] preference create start external_reference=%s items=%d", pref.ExternalReference, len(pref.Items))

	items := make([]preference.ItemRequest, 0, len(pref.Items))
	for _, it := range pref.Items {
		items = append(items, preference.ItemRequest{
			ID:          it.ID,
			Title:       it.Title,
			Description: it.Description,
			Quantity:    int(it.Quantity),
			UnitPrice:   float64(it.UnitPrice),
			CurrencyID:  it.CurrencyID,
		})
	}

	expiresAt := pref.ExpiresAt
	req := preference.Request{
		Items: items,
		Payer: &preference.PayerRequest{
			Name:  pref.PayerName,
			Email: pref.PayerEmail,
		},
		BackURLs: &preference.BackURLsRequest{
			Success: pref.SuccessURL,
			Pending: pref.PendingURL,
			Failure: pref.FailureURL,
		},
		NotificationURL:   pref.NotificationURL,
		ExternalReference: pref.ExternalReference,
		Expires:           true,
		ExpirationDateTo:  &expiresAt,
	}

	ctx, cancel := g.callContext(ctx)
	defer cancel()

	resp, err := g.preferences.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] sdk preference create failed external_reference=%s err=%v", pref.ExternalReference, err)
		return "", "", err
	}
	log.Printf("[payment][gateway] preference create success preference_id=%s", resp.ID)

	return resp.ID, resp.InitPoint, nil
}

func (g *MercadoPagoGateway) GetPaymentByID(ctx context.Context, paymentID string) (entities.PaymentInfo, error) {
	if g != nil && g.mockMode {
		log.Printf("[payment][gateway] mock payment lookup payment_id=%s", paymentID)
		return entities.PaymentInfo{
			ID:                paymentID,
			Status:            "approved",
			StatusDetail:      "accredited",
			CurrencyID:        "BRL",
			PaymentMethodID:   "pix",
			PayerEmail:        "test_user_br@testuser.com",
			ExternalReference: "mock-order",
		}, nil
	}
	if g == nil || g.payments == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return entities.PaymentInfo{}, ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(strings.TrimSpace(paymentID))
	if err != nil {
		return entities.PaymentInfo{}, fmt.Errorf("invalid payment id %q: %w", paymentID, err)
	}
	log.Printf("[payment][gateway] payment lookup start payment_id=%d", id)

	ctx, cancel := g.callContext(ctx)
	defer cancel()

	resp, err := g.payments.Get(ctx, id)
	if err != nil {
		log.Printf("[payment][gateway] sdk payment lookup failed payment_id=%d err=%v", id, err)
		return entities.PaymentInfo{}, err
	}
	log.Printf("[payment][gateway] payment lookup success payment_id=%d status=%s", resp.ID, resp.Status)

	return entities.PaymentInfo{
		ID:                strconv.Itoa(resp.ID),
		Status:            resp.Status,
		StatusDetail:      resp.StatusDetail,
		TransactionAmount: resp.TransactionAmount,
		CurrencyID:        resp.CurrencyID,
		PaymentMethodID:   resp.PaymentMethodID,
		PaymentTypeID:     resp.PaymentTypeID,
		PayerEmail:        resp.Payer.Email,
		ExternalReference: resp.ExternalReference,
	}, nil
}

// callContext bounds provider calls with the configured request timeout.
func (g *MercadoPagoGateway) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if g.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, g.timeout)
}
