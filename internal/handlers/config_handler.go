package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dbxconsole/internal/config"
	"dbxconsole/internal/responses"
)

type ConfigHandler struct {
	store *config.Store
}

func NewConfigHandler(store *config.Store) *ConfigHandler {
	return &ConfigHandler{store: store}
}

type configureRequest struct {
	Config config.Connection `json:"config" binding:"required"`
}

func (h *ConfigHandler) Configure(c *gin.Context) {
	var req configureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, http.StatusBadRequest, err, "Invalid configuration")
		return
	}

	h.store.Set(req.Config)

	c.JSON(http.StatusOK, gin.H{
		"message": "Configuration updated",
	})
}
