package store

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"storefront/models"
)

type GormCatalog struct {
	db *gorm.DB
}

func NewCatalog(db *gorm.DB) *GormCatalog {
	return &GormCatalog{db: db}
}

func (s *GormCatalog) Search(query string, categoryID uint) ([]models.Product, error) {
	q := s.db.Model(&models.Product{}).Preload("Category")
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("title ILIKE ? OR description ILIKE ?", like, like)
	}
	if categoryID != 0 {
		q = q.Where("category_id = ?", categoryID)
	}

	var products []models.Product
	if err := q.Order("id DESC").Find(&products).Error; err != nil {
		return nil, errors.Wrap(err, "search products")
	}
	return products, nil
}

func (s *GormCatalog) FindProduct(id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.Preload("Category").First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "find product")
	}
	return &product, nil
}

func (s *GormCatalog) ProductsByIDs(ids []uint) ([]models.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var products []models.Product
	if err := s.db.Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, errors.Wrap(err, "products by ids")
	}
	return products, nil
}

func (s *GormCatalog) Categories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("name").Find(&categories).Error; err != nil {
		return nil, errors.Wrap(err, "list categories")
	}
	return categories, nil
}
