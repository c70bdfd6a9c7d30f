package store

import (
	"errors"

	"storefront/models"
)

// ErrNotFound is returned by all Find* methods when no record matches.
var ErrNotFound = errors.New("record not found")

// CatalogStore serves category and product reads for browsing and pricing.
type CatalogStore interface {
	// Search filters by case-insensitive substring on title/description
	// when query is non-empty and by exact category when categoryID is
	// non-zero. Results come back most-recently-created first.
	Search(query string, categoryID uint) ([]models.Product, error)
	FindProduct(id uint) (*models.Product, error)
	ProductsByIDs(ids []uint) ([]models.Product, error)
	Categories() ([]models.Category, error)
}

type UserStore interface {
	Create(user *models.User) error
	Find(id uint) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
}

type OrderStore interface {
	// Create persists the order and its item snapshot atomically.
	Create(order *models.Order) error
	Find(id uint) (*models.Order, error)
}
