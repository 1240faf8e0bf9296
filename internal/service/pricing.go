package service

import (
	"cafeteria-admin/internal/model"

	"github.com/shopspring/decimal"
)

var taxRate = decimal.RequireFromString(model.TaxRate)

// PricedOrder is the outcome of pricing a list of requested lines.
type PricedOrder struct {
	Lines    []model.OrderLine
	Subtotal float64
	Tax      float64
	Total    float64
}

// PriceOrder snapshots title and price of every requested line from menu
// (keyed by lowercase hex id) and derives the totals. Lines store the menu
// item's own id; a missing item is reported with the id as requested.
// The subtotal is accumulated at full precision; rounding to cents happens
// only on tax, total and the stored subtotal. Quantities are taken as
// given, zero and negative included.
func PriceOrder(items []OrderItemRequest, menu map[string]model.MenuItem) (*PricedOrder, error) {
	lines := make([]model.OrderLine, 0, len(items))
	subtotal := decimal.Zero

	for _, it := range items {
		key := it.MenuItemID
		if oid, err := model.ParseID(key); err == nil {
			key = oid.Hex()
		}
		m, ok := menu[key]
		if !ok {
			return nil, &MenuItemNotFoundError{ID: it.MenuItemID}
		}
		qty := it.quantity()
		price := decimal.NewFromFloat(m.Price)
		subtotal = subtotal.Add(price.Mul(decimal.NewFromInt(int64(qty))))

		lines = append(lines, model.OrderLine{
			MenuItemID: m.ID,
			Quantity:   qty,
			Price:      m.Price,
			Title:      m.Title,
		})
	}

	tax := subtotal.Mul(taxRate).Round(2)
	total := subtotal.Add(tax).Round(2)

	return &PricedOrder{
		Lines:    lines,
		Subtotal: subtotal.Round(2).InexactFloat64(),
		Tax:      tax.InexactFloat64(),
		Total:    total.InexactFloat64(),
	}, nil
}
