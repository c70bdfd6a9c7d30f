package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"storefront/account"
	"storefront/checkout"
	"storefront/config"
	"storefront/store"
)

// SetupRoutes is the single entry-point that wires up the storefront,
// account, and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	catalog := store.NewCatalog(db)
	users := store.NewUsers(db)
	orders := store.NewOrders(db)

	accounts := account.NewService(users, account.BcryptHasher{})
	checkouts := checkout.NewService(catalog, orders)

	SetupStorefrontRoutes(r, catalog, checkouts, orders)
	SetupAccountRoutes(r, accounts)
	SetupAdminRoutes(r, catalog, cfg.AdminAPIKey)
}
