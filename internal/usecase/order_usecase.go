package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"pedido_venda/internal/domain/entities"
	"pedido_venda/internal/domain/ledger"
	"pedido_venda/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrInvalidOrderID   = errors.New("invalid order id")
	ErrLineItemNotFound = errors.New("line item not found")
	ErrInvalidItemID    = errors.New("invalid line item id")
	ErrInvalidOption    = errors.New("invalid option")
	ErrUnknownItemField = errors.New("unknown line item field")
)

// IOrderUseCase exposes the editing session of a sales order.
//
// One session holds one order. Line-item edits go through the ledger so
// that line totals are recomputed on every change.

type IOrderUseCase interface {
	CreateOrder(ctx context.Context) (entities.Order, error)
	GetOrder(ctx context.Context, id string) (entities.Order, error)
	UpdateOrder(ctx context.Context, id string, patch entities.OrderPatch) (entities.Order, error)
	DeleteOrder(ctx context.Context, id string) error
	AddItem(ctx context.Context, id string) (entities.LineItem, error)
	UpdateItem(ctx context.Context, id string, update entities.ItemUpdate) (entities.LineItem, error)
	RemoveItem(ctx context.Context, id, itemID string) (bool, error)
}

type OrderUseCase struct {
	repo interfaces.IOrderRepository
	now  func() time.Time
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo, now: time.Now}
}

func (u *OrderUseCase) CreateOrder(ctx context.Context) (entities.Order, error) {
	now := u.now()
	o := entities.NewOrder(now)
	o.ID = uuid.NewString()
	o.CreatedAt = now.UTC()
	o.UpdatedAt = now.UTC()

	created, err := u.repo.Create(ctx, o)
	if err != nil {
		return entities.Order{}, err
	}
	log.Printf("[order][usecase] created order_id=%s", created.ID)
	return created, nil
}

func (u *OrderUseCase) GetOrder(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) UpdateOrder(ctx context.Context, id string, patch entities.OrderPatch) (entities.Order, error) {
	return u.mutate(ctx, id, func(o *entities.Order) error {
		o.Apply(patch)
		if field, ok := o.ValidateOptions(); !ok {
			return fmt.Errorf("%w: %s", ErrInvalidOption, field)
		}
		return nil
	})
}

func (u *OrderUseCase) DeleteOrder(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidOrderID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrOrderNotFound
	}
	log.Printf("[order][usecase] deleted order_id=%s", id)
	return nil
}

func (u *OrderUseCase) AddItem(ctx context.Context, id string) (entities.LineItem, error) {
	var added entities.LineItem
	_, err := u.mutate(ctx, id, func(o *entities.Order) error {
		l := ledger.FromItems(o.LineItems)
		added = l.AddItem()
		o.LineItems = l.Items()
		return nil
	})
	if err != nil {
		return entities.LineItem{}, err
	}
	return added, nil
}

// UpdateItem applies one field edit. Unlike the ledger, an unknown item id is
// reported as ErrLineItemNotFound so API clients can tell.
func (u *OrderUseCase) UpdateItem(ctx context.Context, id string, update entities.ItemUpdate) (entities.LineItem, error) {
	update.ID = strings.TrimSpace(update.ID)
	if update.ID == "" {
		return entities.LineItem{}, ErrInvalidItemID
	}

	var updated entities.LineItem
	_, err := u.mutate(ctx, id, func(o *entities.Order) error {
		l := ledger.FromItems(o.LineItems)
		found, err := l.Apply(update)
		if err != nil {
			if errors.Is(err, ledger.ErrUnknownField) {
				return fmt.Errorf("%w: %q", ErrUnknownItemField, update.Field)
			}
			return err
		}
		if !found {
			return ErrLineItemNotFound
		}
		updated, _ = l.Get(update.ID)
		o.LineItems = l.Items()
		return nil
	})
	if err != nil {
		return entities.LineItem{}, err
	}
	return updated, nil
}

// RemoveItem deletes a row. Removing an unknown row is not an error; the
// result reports whether anything was removed.
func (u *OrderUseCase) RemoveItem(ctx context.Context, id, itemID string) (bool, error) {
	itemID = strings.TrimSpace(itemID)
	removed := false
	_, err := u.mutate(ctx, id, func(o *entities.Order) error {
		l := ledger.FromItems(o.LineItems)
		removed = l.RemoveItem(itemID)
		o.LineItems = l.Items()
		return nil
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}

func (u *OrderUseCase) mutate(ctx context.Context, id string, fn func(o *entities.Order) error) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	updated, err := u.repo.Mutate(ctx, id, fn)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return updated, nil
}
