package routes

import (
	"github.com/gin-gonic/gin"

	"storefront/checkout"
	cartControllers "storefront/controllers/cart"
	catalogControllers "storefront/controllers/catalog"
	orderControllers "storefront/controllers/order"
	"storefront/store"
)

// SetupStorefrontRoutes registers the public browse/cart/checkout surface.
func SetupStorefrontRoutes(r *gin.Engine, catalog store.CatalogStore, checkouts *checkout.Service, orders store.OrderStore) {
	r.GET("/", catalogControllers.Index(catalog))
	r.GET("/product/:id", catalogControllers.ProductDetail(catalog))

	r.POST("/add-to-cart/:id", cartControllers.AddToCart(catalog))
	r.GET("/cart", cartControllers.Show(catalog))
	r.POST("/cart", cartControllers.Mutate())

	r.GET("/checkout", orderControllers.Preview(catalog))
	r.POST("/checkout", orderControllers.Create(checkouts))
	r.GET("/orders/:id", orderControllers.GetOrder(orders))
}
