package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dbxconsole/internal/handlers"
)

func RegisterRoutes(router *gin.Engine, configHandler *handlers.ConfigHandler, tableHandler *handlers.TableHandler, rowHandler *handlers.RowHandler) {
	api := router.Group("/api")

	configRoutes := NewConfigRoutes(configHandler)
	configRoutes.RegisterRoutes(api)

	tableRoutes := NewTableRoutes(tableHandler)
	tableRoutes.RegisterRoutes(api)

	rowRoutes := NewRowRoutes(rowHandler)
	rowRoutes.RegisterRoutes(api)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
}
