package routes

import (
	"github.com/gin-gonic/gin"

	"dbxconsole/internal/handlers"
)

type RowRoutes struct {
	rowHandler *handlers.RowHandler
}

func NewRowRoutes(rowHandler *handlers.RowHandler) *RowRoutes {
	return &RowRoutes{
		rowHandler: rowHandler,
	}
}

func (r *RowRoutes) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/tables/:id/data", r.rowHandler.GetRows)
	router.POST("/tables/:id/data", r.rowHandler.InsertRow)
	router.PUT("/tables/:id/data/:rowId", r.rowHandler.UpdateRow)
	router.DELETE("/tables/:id/data/:rowId", r.rowHandler.DeleteRow)
}
