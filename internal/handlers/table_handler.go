package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dbxconsole/internal/config"
	"dbxconsole/internal/responses"
	"dbxconsole/internal/services"
)

type TableHandler struct {
	tableService *services.TableService
	store        *config.Store
}

func NewTableHandler(tableService *services.TableService, store *config.Store) *TableHandler {
	return &TableHandler{
		tableService: tableService,
		store:        store,
	}
}

func (h *TableHandler) connection(c *gin.Context) (config.Connection, bool) {
	cfg, ok := h.store.Current()
	if !ok {
		responses.Error(c, http.StatusBadRequest, nil, "No connection configured; call /api/configure first")
		return config.Connection{}, false
	}
	return cfg, true
}

func (h *TableHandler) ListTables(c *gin.Context) {
	cfg, ok := h.connection(c)
	if !ok {
		return
	}

	tables, err := h.tableService.ListTables(c.Request.Context(), cfg)
	if err != nil {
		responses.Error(c, http.StatusBadGateway, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tables": tables,
	})
}

func (h *TableHandler) GetStructure(c *gin.Context) {
	cfg, ok := h.connection(c)
	if !ok {
		return
	}

	table := c.Param("id")
	columns, warnings, err := h.tableService.GetStructure(c.Request.Context(), cfg, table)
	if err != nil {
		responses.Error(c, http.StatusBadGateway, err, "")
		return
	}

	response := gin.H{
		"columns": columns,
	}
	if len(warnings) > 0 {
		response["warnings"] = warnings
	}

	c.JSON(http.StatusOK, response)
}

func (h *TableHandler) CreateTable(c *gin.Context) {
	cfg, ok := h.connection(c)
	if !ok {
		return
	}

	var req services.CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	if err := h.tableService.CreateTable(c.Request.Context(), cfg, &req); err != nil {
		responses.Error(c, http.StatusBadRequest, err, "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Table created successfully",
		"sql":     req.SQL,
	})
}

func (h *TableHandler) GetHistory(c *gin.Context) {
	entries, err := h.tableService.History(c.Request.Context())
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"history": entries,
	})
}
