package routes

import (
	"github.com/Unsorted-Wings/sweet-shop/controller"
	"github.com/Unsorted-Wings/sweet-shop/middleware"
	"github.com/gin-gonic/gin"
)

// SweetRoute sets up the routes for the sweet resource. Every route
// requires authentication; mutations other than purchase are admin only.
func SweetRoute(router *gin.Engine) {
	sweets := router.Group("/api/sweets")
	sweets.Use(middleware.RequireAuth)
	{
		sweets.GET("", controller.GetSweets)
		sweets.GET("/search", controller.SearchSweets)
		sweets.GET("/:id", controller.GetSweetByID)
		sweets.POST("/:id/purchase", controller.PurchaseSweet)

		sweets.POST("", middleware.RequireAdmin, controller.CreateSweet)
		sweets.PUT("/:id", middleware.RequireAdmin, controller.UpdateSweet)
		sweets.DELETE("/:id", middleware.RequireAdmin, controller.DeleteSweet)
		sweets.POST("/:id/restock", middleware.RequireAdmin, controller.RestockSweet)
	}
}
