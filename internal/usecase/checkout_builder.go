package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"loja_xpto/internal/domain/entities"
	"loja_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// Precondition sentinels returned when builder steps run out of order. These
// are programmer errors, not runtime conditions, and each names the missing
// prerequisite.
var (
	ErrRequestNotSet        = errors.New("checkout request not set: call SetRequest first")
	ErrPreferenceNotBuilt   = errors.New("preference not built: call BuildPreference first")
	ErrOrderNotCreated      = errors.New("order not created: call CreatePreference first")
	ErrPreferenceIncomplete = errors.New("payment provider returned an incomplete preference")
)

const defaultExpirationWindow = 20 * time.Minute

// BuilderSettings carries the configuration the builder bakes into every
// preference. The expiration window defaults to 20 minutes when zero.
type BuilderSettings struct {
	CurrencyID       string
	NotificationURL  string
	SuccessURL       string
	PendingURL       string
	FailureURL       string
	ExpirationWindow time.Duration
}

// CheckoutResult is what a completed builder sequence yields.
type CheckoutResult struct {
	Order      entities.Order `json:"order"`
	PaymentURL string         `json:"payment_url"`
}

// PreferenceBuilder runs the ordered checkout sequence: SetRequest ->
// BuildPreference -> CreatePreference -> SaveOrder -> Result. One instance
// serves one request; Reset clears all per-request state for reuse. A single
// instance must not be shared across overlapping requests.
type PreferenceBuilder struct {
	settings BuilderSettings
	gateway  interfaces.IPaymentGateway
	save     interfaces.OrderSaveFunc

	request    *entities.CheckoutRequest
	preference *entities.Preference
	order      *entities.Order
	paymentURL string
}

func NewPreferenceBuilder(settings BuilderSettings, gateway interfaces.IPaymentGateway, save interfaces.OrderSaveFunc) *PreferenceBuilder {
	if settings.ExpirationWindow <= 0 {
		settings.ExpirationWindow = defaultExpirationWindow
	}
	return &PreferenceBuilder{settings: settings, gateway: gateway, save: save}
}

// SetRequest stores an already-validated checkout request.
func (b *PreferenceBuilder) SetRequest(req entities.CheckoutRequest) {
	b.request = &req
}

// BuildPreference derives the provider payload from the stored request:
// totals from quantity*unit_price, synthetic ids for items lacking one, the
// configured currency and URLs, and an expiration timestamp.
func (b *PreferenceBuilder) BuildPreference() (entities.Preference, error) {
	if b.request == nil {
		return entities.Preference{}, ErrRequestNotSet
	}

	now := time.Now().UTC()
	pref := entities.Preference{
		PayerEmail:        b.request.CustomerInfo.Email,
		PayerName:         b.request.CustomerInfo.Name,
		ExternalReference: uuid.NewString(),
		NotificationURL:   b.settings.NotificationURL,
		SuccessURL:        b.settings.SuccessURL,
		PendingURL:        b.settings.PendingURL,
		FailureURL:        b.settings.FailureURL,
		ExpiresAt:         now.Add(b.settings.ExpirationWindow),
	}

	for _, it := range b.request.Items {
		id := it.ID
		if id == "" {
			id = uuid.NewString()
		}
		pref.Items = append(pref.Items, entities.PreferenceItem{
			ID:          id,
			Title:       it.Title,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			CurrencyID:  b.settings.CurrencyID,
		})
		pref.TotalAmount += it.Quantity * it.UnitPrice
		pref.TotalItems += it.Quantity
	}

	b.preference = &pref
	log.Printf("[checkout][builder] preference built external_reference=%s total_amount=%d total_items=%d", pref.ExternalReference, pref.TotalAmount, pref.TotalItems)
	return pref, nil
}

// CreatePreference calls the provider and derives the local Order. Both a
// remote preference id and a redirect URL are required from the provider.
func (b *PreferenceBuilder) CreatePreference(ctx context.Context) (entities.Order, error) {
	if b.request == nil {
		return entities.Order{}, ErrRequestNotSet
	}
	if b.preference == nil {
		return entities.Order{}, ErrPreferenceNotBuilt
	}
	if b.gateway == nil {
		return entities.Order{}, errors.New("payment gateway not configured")
	}

	prefID, paymentURL, err := b.gateway.CreatePreference(ctx, *b.preference)
	if err != nil {
		log.Printf("[checkout][builder] preference creation failed external_reference=%s err=%v", b.preference.ExternalReference, err)
		return entities.Order{}, err
	}
	if prefID == "" || paymentURL == "" {
		log.Printf("[checkout][builder] incomplete provider response preference_id=%q has_url=%t", prefID, paymentURL != "")
		return entities.Order{}, ErrPreferenceIncomplete
	}

	now := time.Now().UTC()
	order := entities.Order{
		ID:           b.preference.ExternalReference,
		Customer:     b.request.CustomerInfo,
		TotalAmount:  b.preference.TotalAmount,
		TotalItems:   b.preference.TotalItems,
		PreferenceID: prefID,
		PaymentURL:   paymentURL,
		Status:       entities.OrderStatusPending,
		CreatedAt:    now,
		ExpiresAt:    b.preference.ExpiresAt,
	}
	for _, it := range b.preference.Items {
		order.Items = append(order.Items, entities.OrderItem{
			ID:        it.ID,
			Title:     it.Title,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Total:     it.Quantity * it.UnitPrice,
		})
	}

	b.order = &order
	b.paymentURL = paymentURL
	log.Printf("[checkout][builder] preference created order_id=%s preference_id=%s", order.ID, prefID)
	return order, nil
}

// SaveOrder hands the order to the caller-supplied save function. Without a
// registered function the save is a logged no-op: persistence belongs to the
// caller, not this library.
func (b *PreferenceBuilder) SaveOrder(ctx context.Context) error {
	if b.order == nil {
		return ErrOrderNotCreated
	}
	if b.save == nil {
		log.Printf("[checkout][builder] no order save function registered; skipping persistence order_id=%s", b.order.ID)
		return nil
	}
	if err := b.save(ctx, *b.order); err != nil {
		log.Printf("[checkout][builder] order save failed order_id=%s err=%v", b.order.ID, err)
		return err
	}
	log.Printf("[checkout][builder] order saved order_id=%s", b.order.ID)
	return nil
}

// Result returns the completed order and its payment URL.
func (b *PreferenceBuilder) Result() (CheckoutResult, error) {
	if b.preference == nil {
		return CheckoutResult{}, ErrPreferenceNotBuilt
	}
	if b.order == nil {
		return CheckoutResult{}, ErrOrderNotCreated
	}
	return CheckoutResult{Order: *b.order, PaymentURL: b.paymentURL}, nil
}

// Reset clears all per-request state so the instance can serve another
// request.
func (b *PreferenceBuilder) Reset() {
	b.request = nil
	b.preference = nil
	b.order = nil
	b.paymentURL = ""
}
