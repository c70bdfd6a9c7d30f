package orderControllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"storefront/cart"
	"storefront/checkout"
	"storefront/session"
	"storefront/store"
)

// GET /checkout
func Preview(catalog store.CatalogStore) gin.HandlerFunc {
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

// POST /checkout
func Create(svc *checkout.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ct := session.Cart(c)

		order, err := svc.PlaceOrder(ct, session.UserID(c))
		if err != nil {
			if errors.Is(err, checkout.ErrEmptyCart) {
				session.Flash(c, "warning", "Your cart is empty.")
				c.Redirect(http.StatusSeeOther, "/")
				return
			}
			logrus.WithError(err).Error("checkout failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}

		// The cart was cleared only after the order became durable.
		if err := session.SaveCart(c, ct); err != nil {
			logrus.WithError(err).Warn("order placed but cart cookie not cleared")
		}

		session.Flash(c, "success", fmt.Sprintf("Order #%d placed successfully!", order.ID))
		c.Redirect(http.StatusSeeOther, "/")
	}
}

// GET /orders/:id
func GetOrder(orders store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		order, err := orders.Find(uint(id))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve order"})
			}
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
