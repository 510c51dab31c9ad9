package interfaces

import (
	"context"
	"loja_xpto/internal/domain/entities"
)

// OrderSaveFunc is the caller-supplied persistence handoff invoked by the
// preference builder after an order is created. The library itself holds no
// persistence responsibility: a nil function turns the save into a logged
// no-op.
type OrderSaveFunc func(ctx context.Context, order entities.Order) error

// IOrderRepository abstracts DynamoDB persistence for Order. The service
// wiring registers Save as the builder's OrderSaveFunc and serves the read
// endpoints from the same repository.
type IOrderRepository interface {
	Save(ctx context.Context, order entities.Order) error
	GetByID(ctx context.Context, id string) (entities.Order, error)
	GetByPreferenceID(ctx context.Context, preferenceID string) (entities.Order, error)
}
