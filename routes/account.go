package routes

import (
	"github.com/gin-gonic/gin"

	"storefront/account"
	accountControllers "storefront/controllers/account"
	"storefront/middleware"
)

// SetupAccountRoutes registers registration, login and logout.
func SetupAccountRoutes(r *gin.Engine, accounts *account.Service) {
	r.GET("/register", accountControllers.Form())
	r.POST("/register", accountControllers.Register(accounts))

	r.GET("/login", accountControllers.Form())
	r.POST("/login", accountControllers.Login(accounts))

	r.GET("/logout", middleware.RequireLogin, accountControllers.Logout())
}
