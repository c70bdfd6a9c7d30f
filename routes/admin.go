package routes

import (
	"github.com/gin-gonic/gin"

	catalogControllers "storefront/controllers/catalog"
	"storefront/middleware"
	"storefront/store"
)

// SetupAdminRoutes registers the "/admin/*" endpoints. Requires API-key middleware.
func SetupAdminRoutes(r *gin.Engine, catalog store.CatalogStore, apiKey string) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey(apiKey))
	{
		adminGroup.GET("/products/export-excel", catalogControllers.ExportProductsToExcel(catalog))
	}
}
