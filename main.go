package main

import (
	"net/http"
	"os"

	"github.com/Unsorted-Wings/sweet-shop/config"
	"github.com/Unsorted-Wings/sweet-shop/middleware"
	"github.com/Unsorted-Wings/sweet-shop/routes"
	"github.com/gin-gonic/gin"
)

func main() {
	config.Connection()
	config.InitRedis()

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Sweet Shop API is running",
		})
	})

	routes.AuthRoute(router)
	routes.SweetRoute(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	router.Run(":" + port)
}
