package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"loja_xpto/internal/domain/entities"
	"loja_xpto/internal/usecase/interfaces"
)

var (
	ErrInvalidCheckoutPayload = errors.New("invalid checkout payload")
	ErrInvalidOrderID         = errors.New("invalid order id")
	ErrInvalidPreferenceID    = errors.New("invalid preference id")
	ErrOrderNotFound          = errors.New("order not found")
)

// ICheckoutUseCase exposes the checkout flow plus order lookups.
//
// ProcessCheckout returns the accumulated validation messages alongside
// ErrInvalidCheckoutPayload when the payload is rejected, so handlers can
// surface every defect at once.
type ICheckoutUseCase interface {
	ProcessCheckout(ctx context.Context, payload map[string]any) (CheckoutResult, []string, error)
	GetOrderByID(ctx context.Context, id string) (entities.Order, error)
	GetOrderByPreferenceID(ctx context.Context, preferenceID string) (entities.Order, error)
}

type CheckoutUseCase struct {
	settings BuilderSettings
	gateway  interfaces.IPaymentGateway
	save     interfaces.OrderSaveFunc
	orders   interfaces.IOrderRepository
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

// NewCheckoutUseCase wires the checkout flow. orders may be nil when the
// caller handles persistence elsewhere; save may be nil to skip persistence
// entirely.
func NewCheckoutUseCase(settings BuilderSettings, gateway interfaces.IPaymentGateway, save interfaces.OrderSaveFunc, orders interfaces.IOrderRepository) *CheckoutUseCase {
	return &CheckoutUseCase{settings: settings, gateway: gateway, save: save, orders: orders}
}

// ProcessCheckout validates the raw payload and drives a fresh builder
// through the full step sequence. A new builder per call keeps request state
// isolated; instances are never shared across requests.
func (u *CheckoutUseCase) ProcessCheckout(ctx context.Context, payload map[string]any) (CheckoutResult, []string, error) {
	log.Printf("[checkout][usecase] process start")

	validation := ValidateCheckoutPayload(payload)
	if !validation.Valid {
		log.Printf("[checkout][usecase] payload rejected errors=%d", len(validation.Errors))
		return CheckoutResult{}, validation.Errors, ErrInvalidCheckoutPayload
	}

	b := NewPreferenceBuilder(u.settings, u.gateway, u.save)
	b.SetRequest(DecodeCheckoutRequest(payload))

	if _, err := b.BuildPreference(); err != nil {
		return CheckoutResult{}, nil, err
	}
	if _, err := b.CreatePreference(ctx); err != nil {
		return CheckoutResult{}, nil, err
	}
	if err := b.SaveOrder(ctx); err != nil {
		return CheckoutResult{}, nil, err
	}

	result, err := b.Result()
	if err != nil {
		return CheckoutResult{}, nil, err
	}
	log.Printf("[checkout][usecase] process success order_id=%s preference_id=%s total_amount=%d", result.Order.ID, result.Order.PreferenceID, result.Order.TotalAmount)
	return result, nil, nil
}

func (u *CheckoutUseCase) GetOrderByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	if u.orders == nil {
		return entities.Order{}, errors.New("order repository not configured")
	}

	o, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *CheckoutUseCase) GetOrderByPreferenceID(ctx context.Context, preferenceID string) (entities.Order, error) {
	preferenceID = strings.TrimSpace(preferenceID)
	if preferenceID == "" {
		return entities.Order{}, ErrInvalidPreferenceID
	}
	if u.orders == nil {
		return entities.Order{}, errors.New("order repository not configured")
	}

	o, err := u.orders.GetByPreferenceID(ctx, preferenceID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}
