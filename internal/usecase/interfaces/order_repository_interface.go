package interfaces

import (
	"context"
	"pedido_venda/internal/domain/entities"
)

// IOrderRepository abstracts the session store for orders being edited.
//
// Lookups of unknown ids return a zero Order (empty ID) and no error.
// Mutate runs fn on a copy of the stored order under the store lock and
// saves the copy only when fn returns nil.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	Mutate(ctx context.Context, id string, fn func(o *entities.Order) error) (entities.Order, error)
	Delete(ctx context.Context, id string) (bool, error)
}
