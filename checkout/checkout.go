package checkout

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"storefront/cart"
	"storefront/models"
	"storefront/store"
)

var ErrEmptyCart = errors.New("cart is empty")

type Service struct {
	catalog cart.Catalog
	orders  store.OrderStore
}

func NewService(catalog cart.Catalog, orders store.OrderStore) *Service {
	return &Service{catalog: catalog, orders: orders}
}

// PlaceOrder reprices the cart against the live catalog (client-submitted
// prices are never trusted), persists the order snapshot, and clears the
// cart only after the order is durable. A failed insert leaves the cart
// untouched so the caller can retry. userID is nil for guest checkouts.
func (s *Service) PlaceOrder(c *cart.Cart, userID *uint) (*models.Order, error) {
	items, total, err := cart.Price(c, s.catalog)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	order := &models.Order{
		OrderRef:  newOrderRef(),
		UserID:    userID,
		Total:     total,
		CreatedAt: time.Now().UTC(),
	}
	for _, it := range items {
		order.Items = append(order.Items, models.OrderItem{
			ProductID: it.Product.ID,
			Title:     it.Product.Title,
			Qty:       it.Qty,
			Price:     it.Product.Price,
		})
	}

	if err := s.orders.Create(order); err != nil {
		return nil, err
	}

	c.Clear()
	return order, nil
}

func newOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}
