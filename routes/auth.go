package routes

import (
	"github.com/Unsorted-Wings/sweet-shop/controller"
	"github.com/Unsorted-Wings/sweet-shop/middleware"
	"github.com/gin-gonic/gin"
)

// AuthRoute sets up the registration and login routes, rate-limited per IP.
func AuthRoute(router *gin.Engine) {
	auth := router.Group("/api/auth")
	{
		auth.POST("/register", middleware.RateLimiter(), controller.Register)
		auth.POST("/login", middleware.RateLimiter(), controller.Login)
	}
}
