package cart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/cart"
	"storefront/models"
)

var _ cart.Catalog = mockCatalog{}

type mockCatalog map[uint]models.Product

func (m mockCatalog) ProductsByIDs(ids []uint) ([]models.Product, error) {
	var products []models.Product
	for _, id := range ids {
		if p, ok := m[id]; ok {
			products = append(products, p)
		}
	}
	return products, nil
}

func TestPrice(t *testing.T) {
	catalog := mockCatalog{
		5: {ID: 5, Title: "Smart Watch", Price: 100.0},
		7: {ID: 7, Title: "Cotton T-Shirt", Price: 499.0},
	}

	t.Run("prices two units of a product", func(t *testing.T) {
		c := cart.New()
		c.Add("5", 2)

		items, total, err := cart.Price(c, catalog)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, 2, items[0].Qty)
		assert.Equal(t, 200.0, items[0].LineTotal)
		assert.Equal(t, 200.0, total)
	})

	t.Run("total is the sum of line totals", func(t *testing.T) {
		c := cart.New()
		c.Add("5", 2)
		c.Add("7", 3)

		items, total, err := cart.Price(c, catalog)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, 200.0+3*499.0, total)
		assert.Equal(t, items[0].LineTotal+items[1].LineTotal, total)
	})

	t.Run("empty cart", func(t *testing.T) {
		items, total, err := cart.Price(cart.New(), catalog)
		require.NoError(t, err)
		assert.Empty(t, items)
		assert.Equal(t, 0.0, total)
	})

	t.Run("skips stale product ids", func(t *testing.T) {
		c := cart.New()
		c.Add("5", 1)
		c.Add("999", 4)

		items, total, err := cart.Price(c, catalog)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, uint(5), items[0].Product.ID)
		assert.Equal(t, 100.0, total)
	})

	t.Run("skips non-numeric keys", func(t *testing.T) {
		c := cart.New()
		c.Add("not-a-number", 2)

		items, total, err := cart.Price(c, catalog)
		require.NoError(t, err)
		assert.Empty(t, items)
		assert.Equal(t, 0.0, total)
	})

	t.Run("keeps insertion order", func(t *testing.T) {
		c := cart.New()
		c.Add("7", 1)
		c.Add("5", 1)

		items, _, err := cart.Price(c, catalog)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, uint(7), items[0].Product.ID)
		assert.Equal(t, uint(5), items[1].Product.ID)
	})

	t.Run("does not mutate the cart", func(t *testing.T) {
		c := cart.New()
		c.Add("5", 2)
		c.Add("999", 1)
		before := append([]cart.Line(nil), c.Lines...)

		_, _, err := cart.Price(c, catalog)
		require.NoError(t, err)
		assert.Equal(t, before, c.Lines)
	})
}
