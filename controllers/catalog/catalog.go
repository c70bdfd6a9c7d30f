package catalogControllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront/session"
	"storefront/store"
)

// GET /
// Query params: q (substring search), category (exact filter).
func Index(catalog store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := strings.TrimSpace(c.Query("q"))
		categoryParam := c.Query("category")

		var categoryID uint
		if categoryParam != "" {
			cid, err := strconv.ParseUint(categoryParam, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
				return
			}
			categoryID = uint(cid)
		}

		products, err := catalog.Search(q, categoryID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		categories, err := catalog.Categories()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"products":   products,
			"categories": categories,
			"q":          q,
			"category":   categoryParam,
			"cart_count": session.Cart(c).Count(),
			"messages":   session.Flashes(c),
		})
	}
}

// GET /product/:id
func ProductDetail(catalog store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		product, err := catalog.FindProduct(uint(id))
		if err != nil {
			if err == store.ErrNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"product":    product,
			"cart_count": session.Cart(c).Count(),
			"messages":   session.Flashes(c),
		})
	}
}
