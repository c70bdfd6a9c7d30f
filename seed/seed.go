package seed

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"storefront/models"
)

// InitDB creates the full schema.
func InitDB(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	)
}

type sampleProduct struct {
	title       string
	description string
	price       float64
	imageURL    string
	category    string
}

var defaultCategories = []string{"Electronics", "Clothing", "Books", "Home"}

var sampleProducts = []sampleProduct{
	{"Wireless Headphones", "Comfortable over-ear headphones with clear sound.", 1999.0, "https://picsum.photos/seed/headphones/600/400", "Electronics"},
	{"Smart Watch", "Track fitness, notifications, and heart rate.", 3499.0, "https://picsum.photos/seed/smartwatch/600/400", "Electronics"},
	{"Cotton T-Shirt", "Soft, breathable cotton tee in multiple colors.", 499.0, "https://picsum.photos/seed/tshirt/600/400", "Clothing"},
	{"Stainless Water Bottle", "Insulated bottle keeps drinks cold for 24h.", 699.0, "https://picsum.photos/seed/bottle/600/400", "Home"},
	{"Programming Book", "Master Go with practical examples.", 899.0, "https://picsum.photos/seed/book/600/400", "Books"},
}

// Seed populates the default categories and products. It is idempotent:
// each table is only filled when it is still empty.
func Seed(db *gorm.DB) error {
	var categories []models.Category

	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return errors.Wrap(err, "count categories")
	}
	if count == 0 {
		for _, name := range defaultCategories {
			categories = append(categories, models.Category{Name: name})
		}
		if err := db.Create(&categories).Error; err != nil {
			return errors.Wrap(err, "seed categories")
		}
		logrus.Infof("seeded %d categories", len(categories))
	} else {
		if err := db.Find(&categories).Error; err != nil {
			return errors.Wrap(err, "load categories")
		}
		logrus.Info("categories already present, skipping")
	}

	byName := make(map[string]uint, len(categories))
	for _, c := range categories {
		byName[c.Name] = c.ID
	}

	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return errors.Wrap(err, "count products")
	}
	if count > 0 {
		logrus.Info("products already present, skipping")
		return nil
	}

	var products []models.Product
	for _, s := range sampleProducts {
		p := models.Product{
			Title:       s.title,
			Description: s.description,
			Price:       s.price,
			ImageURL:    s.imageURL,
		}
		if id, ok := byName[s.category]; ok {
			cid := id
			p.CategoryID = &cid
		}
		products = append(products, p)
	}
	if err := db.Create(&products).Error; err != nil {
		return errors.Wrap(err, "seed products")
	}
	logrus.Infof("seeded %d products", len(products))
	return nil
}
