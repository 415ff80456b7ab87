package request

import (
	"encoding/json"
	"errors"
	"math"
	"pedido_venda/internal/domain/entities"
	"pedido_venda/internal/domain/ledger"
	"strconv"
	"strings"
)

var (
	ErrInvalidItemField = errors.New("invalid line item field")
	ErrInvalidItemValue = errors.New("invalid line item value")
)

// UpdateItemRequest edits one column of a line item:
//
//	{"field": "quantity", "value": "10"}
//	{"field": "unit_price", "value": 25.5}
//
// Text columns accept strings or numbers. unit_price accepts a number or a
// numeric string; anything unparseable counts as zero.
type UpdateItemRequest struct {
	Field string          `json:"field" binding:"required"`
	Value json.RawMessage `json:"value"`
}

func (r UpdateItemRequest) ToItemUpdate(itemID string) (entities.ItemUpdate, error) {
	u := entities.ItemUpdate{ID: strings.TrimSpace(itemID), Field: entities.ItemField(strings.TrimSpace(r.Field))}

	switch u.Field {
	case entities.ItemFieldDescription, entities.ItemFieldUnit, entities.ItemFieldQuantity:
		text, err := r.text()
		if err != nil {
			return entities.ItemUpdate{}, err
		}
		u.Text = text
	case entities.ItemFieldUnitPrice:
		price, err := r.price()
		if err != nil {
			return entities.ItemUpdate{}, err
		}
		u.Price = price
	default:
		return entities.ItemUpdate{}, ErrInvalidItemField
	}
	return u, nil
}

func (r UpdateItemRequest) text() (string, error) {
	if len(r.Value) == 0 || string(r.Value) == "null" {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(r.Value, &s); err == nil {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(r.Value, &n); err == nil {
		return n.String(), nil
	}
	return "", ErrInvalidItemValue
}

func (r UpdateItemRequest) price() (float64, error) {
	if len(r.Value) == 0 || string(r.Value) == "null" {
		return 0, nil
	}
	var f float64
	if err := json.Unmarshal(r.Value, &f); err == nil {
		return f, nil
	}
	var s string
	if err := json.Unmarshal(r.Value, &s); err == nil {
		s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
		if v, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(v, 0) && !math.IsNaN(v) {
			return v, nil
		}
		return ledger.ParseQuantity(s), nil
	}
	return 0, ErrInvalidItemValue
}
