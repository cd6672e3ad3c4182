package routes

import (
	"github.com/gin-gonic/gin"

	"dbxconsole/internal/handlers"
)

type ConfigRoutes struct {
	configHandler *handlers.ConfigHandler
}

func NewConfigRoutes(configHandler *handlers.ConfigHandler) *ConfigRoutes {
	return &ConfigRoutes{
		configHandler: configHandler,
	}
}

func (r *ConfigRoutes) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/configure", r.configHandler.Configure)
}
