package repository

import (
	"context"
	"errors"
	"log"
	"pedido_venda/internal/domain/entities"
	"pedido_venda/internal/usecase/interfaces"
	"sync"
	"time"
)

var ErrEmptyOrderID = errors.New("order id is required")

const DefaultSessionTTL = 8 * time.Hour

type session struct {
	order   entities.Order
	touched time.Time
}

// OrderMemoryRepository keeps editing sessions in process memory.
//
// Sessions idle for longer than the TTL are dropped lazily on access and on
// every Create. Stored orders never share slices with callers.
type OrderMemoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]*session
	ttl      time.Duration
	now      func() time.Time
}

var _ interfaces.IOrderRepository = (*OrderMemoryRepository)(nil)

func NewOrderMemoryRepository(ttl time.Duration) *OrderMemoryRepository {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &OrderMemoryRepository{
		sessions: make(map[string]*session),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (r *OrderMemoryRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	if err := ctx.Err(); err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrEmptyOrderID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.purgeLocked(now)
	r.sessions[o.ID] = &session{order: cloneOrder(o), touched: now}
	log.Printf("[order][repository] session created order_id=%s sessions=%d", o.ID, len(r.sessions))

	return cloneOrder(o), nil
}

func (r *OrderMemoryRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	if err := ctx.Err(); err != nil {
		return entities.Order{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.liveLocked(id, r.now())
	if !ok {
		return entities.Order{}, nil
	}
	return cloneOrder(s.order), nil
}

func (r *OrderMemoryRepository) Mutate(ctx context.Context, id string, fn func(o *entities.Order) error) (entities.Order, error) {
	if err := ctx.Err(); err != nil {
		return entities.Order{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	s, ok := r.liveLocked(id, now)
	if !ok {
		return entities.Order{}, nil
	}

	working := cloneOrder(s.order)
	if err := fn(&working); err != nil {
		return entities.Order{}, err
	}
	working.ID = s.order.ID
	working.UpdatedAt = now.UTC()
	s.order = working

	return cloneOrder(working), nil
}

func (r *OrderMemoryRepository) Delete(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.liveLocked(id, r.now()); !ok {
		return false, nil
	}
	delete(r.sessions, id)
	log.Printf("[order][repository] session deleted order_id=%s", id)
	return true, nil
}

// Len reports the number of stored sessions, expired ones included until
// they are purged.
func (r *OrderMemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// PurgeExpired drops every idle session and returns how many were removed.
func (r *OrderMemoryRepository) PurgeExpired() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.purgeLocked(r.now())
}

func (r *OrderMemoryRepository) liveLocked(id string, now time.Time) (*session, bool) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	if now.Sub(s.touched) > r.ttl {
		delete(r.sessions, id)
		log.Printf("[order][repository] session expired order_id=%s", id)
		return nil, false
	}
	s.touched = now
	return s, true
}

func (r *OrderMemoryRepository) purgeLocked(now time.Time) int {
	n := 0
	for id, s := range r.sessions {
		if now.Sub(s.touched) > r.ttl {
			delete(r.sessions, id)
			n++
		}
	}
	if n > 0 {
		log.Printf("[order][repository] purged expired sessions count=%d", n)
	}
	return n
}

func cloneOrder(o entities.Order) entities.Order {
	items := make([]entities.LineItem, len(o.LineItems))
	copy(items, o.LineItems)
	o.LineItems = items
	return o
}
