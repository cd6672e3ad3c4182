package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"dbxconsole/internal/config"
	"dbxconsole/internal/responses"
	"dbxconsole/internal/services"
)

type RowHandler struct {
	rowService *services.RowService
	store      *config.Store
}

func NewRowHandler(rowService *services.RowService, store *config.Store) *RowHandler {
	return &RowHandler{
		rowService: rowService,
		store:      store,
	}
}

func (h *RowHandler) connection(c *gin.Context) (config.Connection, bool) {
	cfg, ok := h.store.Current()
	if !ok {
		responses.Error(c, http.StatusBadRequest, nil, "No connection configured; call /api/configure first")
		return config.Connection{}, false
	}
	return cfg, true
}

func (h *RowHandler) GetRows(c *gin.Context) {
	cfg, ok := h.connection(c)
	if !ok {
		return
	}

	data, err := h.rowService.GetRows(c.Request.Context(), cfg, c.Param("id"))
	if err != nil {
		responses.Error(c, http.StatusBadGateway, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": data,
	})
}

func (h *RowHandler) InsertRow(c *gin.Context) {
	cfg, ok := h.connection(c)
	if !ok {
		return
	}

	var row map[string]any
	if err := c.ShouldBindJSON(&row); err != nil {
		responses.Error(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	fieldErrs, err := h.rowService.InsertRow(c.Request.Context(), cfg, c.Param("id"), row)
	if err != nil {
		if errors.Is(err, services.ErrRowInvalid) {
			responses.ValidationError(c, http.StatusBadRequest, fieldErrs)
			return
		}
		responses.Error(c, http.StatusBadRequest, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Row inserted successfully",
	})
}

func (h *RowHandler) UpdateRow(c *gin.Context) {
	cfg, ok := h.connection(c)
	if !ok {
		return
	}

	pkColumn := c.Query("pkColumn")
	if pkColumn == "" {
		responses.Error(c, http.StatusBadRequest, nil, "pkColumn query parameter is required")
		return
	}

	var row map[string]any
	if err := c.ShouldBindJSON(&row); err != nil {
		responses.Error(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	fieldErrs, err := h.rowService.UpdateRow(c.Request.Context(), cfg, c.Param("id"), pkColumn, c.Param("rowId"), row)
	if err != nil {
		if errors.Is(err, services.ErrRowInvalid) {
			responses.ValidationError(c, http.StatusBadRequest, fieldErrs)
			return
		}
		responses.Error(c, http.StatusBadRequest, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Row updated successfully",
	})
}

func (h *RowHandler) DeleteRow(c *gin.Context) {
	cfg, ok := h.connection(c)
	if !ok {
		return
	}

	pkColumn := c.Query("pkColumn")
	if pkColumn == "" {
		responses.Error(c, http.StatusBadRequest, nil, "pkColumn query parameter is required")
		return
	}

	if err := h.rowService.DeleteRow(c.Request.Context(), cfg, c.Param("id"), pkColumn, c.Param("rowId")); err != nil {
		responses.Error(c, http.StatusBadRequest, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Row deleted successfully",
	})
}
