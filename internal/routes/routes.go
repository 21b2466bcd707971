package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"psychportal_backend/internal/handlers"
)

// RegisterRoutes mounts the HTTP API.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := ginRouter.Group("/api/v1")
	{
		appHandlers.RegisterAll(api)
	}
}
