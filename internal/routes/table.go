package routes

import (
	"github.com/gin-gonic/gin"

	"dbxconsole/internal/handlers"
)

type TableRoutes struct {
	tableHandler *handlers.TableHandler
}

func NewTableRoutes(tableHandler *handlers.TableHandler) *TableRoutes {
	return &TableRoutes{
		tableHandler: tableHandler,
	}
}

func (r *TableRoutes) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/tables", r.tableHandler.ListTables)
	router.GET("/tables/:id/structure", r.tableHandler.GetStructure)
	router.POST("/create-table", r.tableHandler.CreateTable)
	router.GET("/history", r.tableHandler.GetHistory)
}
