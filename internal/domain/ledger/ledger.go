// Package ledger keeps the product rows of an order and their derived totals.
//
// Every mutation recomputes the affected line total, so a snapshot returned by
// Items always satisfies LineTotal == ParseQuantity(Quantity) * UnitPrice.
package ledger

import (
	"errors"
	"fmt"
	"math"
	"pedido_venda/internal/domain/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrUnknownField = errors.New("unknown line item field")

// IDGenerator returns a fresh line-item identifier.
type IDGenerator func() string

type Ledger struct {
	items []entities.LineItem
	newID IDGenerator
}

func New() *Ledger {
	return &Ledger{newID: uuid.NewString}
}

// NewWithIDs is New with a custom identifier source.
func NewWithIDs(gen IDGenerator) *Ledger {
	if gen == nil {
		gen = uuid.NewString
	}
	return &Ledger{newID: gen}
}

// FromItems rebuilds a ledger from a snapshot. Missing identifiers are filled
// in and every line total is recomputed.
func FromItems(items []entities.LineItem) *Ledger {
	l := New()
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if it.ID == "" || seen[it.ID] {
			it.ID = l.newID()
		}
		seen[it.ID] = true
		it.UnitPrice = clampPrice(it.UnitPrice)
		it.LineTotal = lineTotal(it.Quantity, it.UnitPrice)
		l.items = append(l.items, it)
	}
	return l
}

// AddItem appends an empty row and returns it.
func (l *Ledger) AddItem() entities.LineItem {
	it := entities.LineItem{ID: l.newID()}
	l.items = append(l.items, it)
	return it
}

// RemoveItem deletes the row with the given id. It reports false, leaving the
// ledger unchanged, when no such row exists.
func (l *Ledger) RemoveItem(id string) bool {
	i := l.indexOf(id)
	if i < 0 {
		return false
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	return true
}

func (l *Ledger) UpdateDescription(id, description string) bool {
	return l.update(id, func(it *entities.LineItem) { it.Description = description })
}

func (l *Ledger) UpdateUnit(id, unit string) bool {
	return l.update(id, func(it *entities.LineItem) { it.Unit = unit })
}

// UpdateQuantity stores the raw text and recomputes the line total from its
// leading number.
func (l *Ledger) UpdateQuantity(id, raw string) bool {
	return l.update(id, func(it *entities.LineItem) {
		it.Quantity = raw
		it.LineTotal = lineTotal(it.Quantity, it.UnitPrice)
	})
}

// UpdateUnitPrice sets the price, clamping negative and non-finite values to
// zero, and recomputes the line total.
func (l *Ledger) UpdateUnitPrice(id string, price float64) bool {
	return l.update(id, func(it *entities.LineItem) {
		it.UnitPrice = clampPrice(price)
		it.LineTotal = lineTotal(it.Quantity, it.UnitPrice)
	})
}

// Apply dispatches a single-field edit. It reports whether the row exists.
func (l *Ledger) Apply(u entities.ItemUpdate) (bool, error) {
	switch u.Field {
	case entities.ItemFieldDescription:
		return l.UpdateDescription(u.ID, u.Text), nil
	case entities.ItemFieldUnit:
		return l.UpdateUnit(u.ID, u.Text), nil
	case entities.ItemFieldQuantity:
		return l.UpdateQuantity(u.ID, u.Text), nil
	case entities.ItemFieldUnitPrice:
		return l.UpdateUnitPrice(u.ID, u.Price), nil
	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownField, u.Field)
	}
}

func (l *Ledger) Get(id string) (entities.LineItem, bool) {
	i := l.indexOf(id)
	if i < 0 {
		return entities.LineItem{}, false
	}
	return l.items[i], true
}

// Items returns a copy of the rows in insertion order.
func (l *Ledger) Items() []entities.LineItem {
	out := make([]entities.LineItem, len(l.items))
	copy(out, l.items)
	return out
}

func (l *Ledger) Len() int { return len(l.items) }

// GrandTotal is the sum of all line totals.
func (l *Ledger) GrandTotal() float64 {
	return Sum(l.items)
}

// Sum adds the line totals of items as they are, without recomputing them.
func Sum(items []entities.LineItem) float64 {
	total := decimal.Zero
	for _, it := range items {
		if math.IsNaN(it.LineTotal) || math.IsInf(it.LineTotal, 0) {
			continue
		}
		total = total.Add(decimal.NewFromFloat(it.LineTotal))
	}
	return total.InexactFloat64()
}

func (l *Ledger) update(id string, fn func(it *entities.LineItem)) bool {
	i := l.indexOf(id)
	if i < 0 {
		return false
	}
	fn(&l.items[i])
	return true
}

func (l *Ledger) indexOf(id string) int {
	for i := range l.items {
		if l.items[i].ID == id {
			return i
		}
	}
	return -1
}

func lineTotal(quantity string, price float64) float64 {
	q := ParseQuantity(quantity)
	if q == 0 || price == 0 {
		return 0
	}
	return decimal.NewFromFloat(q).Mul(decimal.NewFromFloat(price)).InexactFloat64()
}

func clampPrice(p float64) float64 {
	if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
		return 0
	}
	return p
}
