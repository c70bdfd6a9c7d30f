package accountControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"storefront/account"
	"storefront/session"
)

// GET /register and GET /login both just surface pending flashes for the
// client rendering the form.
func Form() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"messages": session.Flashes(c)})
	}
}

// POST /register
// Form fields: name, email, password.
func Register(svc *account.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, err := svc.Register(c.PostForm("name"), c.PostForm("email"), c.PostForm("password"))
		switch {
		case err == nil:
			session.Flash(c, "success", "Registration successful. Please login.")
			c.Redirect(http.StatusSeeOther, "/login")
		case errors.Is(err, account.ErrDuplicateEmail):
			session.Flash(c, "warning", "Email already registered.")
			c.Redirect(http.StatusSeeOther, "/register")
		case errors.Is(err, account.ErrMissingFields):
			session.Flash(c, "warning", "Name, email and password are required.")
			c.Redirect(http.StatusSeeOther, "/register")
		default:
			logrus.WithError(err).Error("registration failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register"})
		}
	}
}

// POST /login
// Form fields: email, password. Optional query param next.
func Login(svc *account.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := svc.Authenticate(c.PostForm("email"), c.PostForm("password"))
		if err != nil {
			if errors.Is(err, account.ErrInvalidCredentials) {
				session.Flash(c, "danger", "Invalid credentials.")
				c.Redirect(http.StatusSeeOther, "/login")
				return
			}
			logrus.WithError(err).Error("login failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
			return
		}

		if err := session.SetUserID(c, user.ID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start session"})
			return
		}

		session.Flash(c, "success", "Welcome back!")
		next := c.Query("next")
		if next == "" || next[0] != '/' {
			next = "/"
		}
		c.Redirect(http.StatusSeeOther, next)
	}
}

// GET /logout
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := session.ClearUser(c); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to end session"})
			return
		}
		session.Flash(c, "info", "Logged out.")
		c.Redirect(http.StatusSeeOther, "/")
	}
}
