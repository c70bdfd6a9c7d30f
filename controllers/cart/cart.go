package cartControllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront/cart"
	"storefront/session"
	"storefront/store"
)

// POST /add-to-cart/:id
// Form field qty defaults to 1; anything below 1 still adds one unit.
func AddToCart(catalog store.CatalogStore) gin.HandlerFunc {
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
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			}
			return
		}

		qty, err := strconv.Atoi(c.DefaultPostForm("qty", "1"))
		if err != nil {
			session.Flash(c, "warning", "Quantity must be a number.")
			c.Redirect(http.StatusSeeOther, backTo(c))
			return
		}
		if qty < 1 {
			qty = 1
		}

		ct := session.Cart(c)
		ct.Add(strconv.FormatUint(id, 10), qty)
		if err := session.SaveCart(c, ct); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}

		session.Flash(c, "success", fmt.Sprintf("Added %s (x%d) to cart.", product.Title, qty))
		c.Redirect(http.StatusSeeOther, backTo(c))
	}
}

// GET /cart
func Show(catalog store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ct := session.Cart(c)
		items, total, err := cart.Price(ct, catalog)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to price cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"items":      items,
			"total":      total,
			"cart_count": ct.Count(),
			"messages":   session.Flashes(c),
		})
	}
}

// POST /cart
// Form fields: action in {update, clear}; update also takes pid and qty.
func Mutate() gin.HandlerFunc {
	return func(c *gin.Context) {
		ct := session.Cart(c)

		switch c.PostForm("action") {
		case "update":
			pid := c.PostForm("pid")
			qty, err := strconv.Atoi(c.DefaultPostForm("qty", "1"))
			if err != nil {
				session.Flash(c, "warning", "Quantity must be a number.")
				c.Redirect(http.StatusSeeOther, "/cart")
				return
			}
			ct.Update(pid, qty)
		case "clear":
			ct.Clear()
		default:
			session.Flash(c, "warning", "Unknown cart action.")
			c.Redirect(http.StatusSeeOther, "/cart")
			return
		}

		if err := session.SaveCart(c, ct); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}
		c.Redirect(http.StatusSeeOther, "/cart")
	}
}

func backTo(c *gin.Context) string {
	if ref := c.Request.Referer(); ref != "" {
		return ref
	}
	return "/"
}
