package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/session"
)

// RequireLogin redirects guests to the login page.
func RequireLogin(c *gin.Context) {
	if session.UserID(c) == nil {
		session.Flash(c, "warning", "Please log in to continue.")
		c.Redirect(http.StatusSeeOther, "/login?next="+c.Request.URL.Path)
		c.Abort()
		return
	}
	c.Next()
}
