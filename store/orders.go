package store

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"storefront/models"
)

type GormOrders struct {
	db *gorm.DB
}

func NewOrders(db *gorm.DB) *GormOrders {
	return &GormOrders{db: db}
}

// Create writes the order and its items in a single transaction, so a
// partial snapshot can never become durable.
func (s *GormOrders) Create(order *models.Order) error {
	if err := s.db.Create(order).Error; err != nil {
		return errors.Wrap(err, "create order")
	}
	return nil
}

func (s *GormOrders) Find(id uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_items.id")
	}).First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "find order")
	}
	return &order, nil
}
