package cart

import (
	"strconv"

	"storefront/models"
)

// Catalog is the lookup capability the calculator joins cart lines against.
type Catalog interface {
	ProductsByIDs(ids []uint) ([]models.Product, error)
}

// LineItem is a priced cart entry.
type LineItem struct {
	Product   models.Product `json:"product"`
	Qty       int            `json:"qty"`
	LineTotal float64        `json:"line_total"`
}

// Price resolves the cart against the catalog and returns priced line
// items in the cart's insertion order plus the grand total. Product ids
// that no longer resolve are treated as stale and skipped silently. The
// cart itself is never mutated.
func Price(c *Cart, catalog Catalog) ([]LineItem, float64, error) {
	var ids []uint
	for _, l := range c.Lines {
		if id, err := strconv.ParseUint(l.ProductID, 10, 64); err == nil {
			ids = append(ids, uint(id))
		}
	}

	byID := make(map[uint]models.Product)
	if len(ids) > 0 {
		products, err := catalog.ProductsByIDs(ids)
		if err != nil {
			return nil, 0, err
		}
		for _, p := range products {
			byID[p.ID] = p
		}
	}

	var items []LineItem
	var total float64
	for _, l := range c.Lines {
		id, err := strconv.ParseUint(l.ProductID, 10, 64)
		if err != nil {
			continue
		}
		p, ok := byID[uint(id)]
		if !ok {
			continue
		}
		lineTotal := p.Price * float64(l.Qty)
		total += lineTotal
		items = append(items, LineItem{Product: p, Qty: l.Qty, LineTotal: lineTotal})
	}
	return items, total, nil
}
