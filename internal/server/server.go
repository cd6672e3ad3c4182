package server

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"

	"dbxconsole/internal/config"
	"dbxconsole/internal/database"
	"dbxconsole/internal/handlers"
	"dbxconsole/internal/middlewares"
	"dbxconsole/internal/repositories"
	"dbxconsole/internal/routes"
	"dbxconsole/internal/services"
)

// NewServer wires the application together and returns a configured HTTP
// server. Warehouse connections are opened per request from the config store's
// snapshot; only the local history store stays open for the process lifetime.
func NewServer(port int) *http.Server {
	if port == 0 {
		port, _ = strconv.Atoi(os.Getenv("PORT"))
	}
	if port == 0 {
		port = 8080
	}

	configStore := config.NewStore()
	if _, ok := configStore.Current(); ok {
		log.Println("Warehouse connection configured from environment")
	}

	historyDb, err := database.OpenHistory()
	if err != nil {
		log.Fatalf("failed to open history store: %v", err)
	}

	openWarehouse := func(cfg config.Connection) (services.Warehouse, error) {
		db, err := database.OpenWarehouse(cfg)
		if err != nil {
			return nil, err
		}
		return repositories.NewWarehouseRepository(db, cfg.Namespace()), nil
	}

	// Dependency injection
	historyRepo := repositories.NewHistoryRepository(historyDb)
	tableService := services.NewTableService(openWarehouse, historyRepo)
	rowService := services.NewRowService(openWarehouse)
	configHandler := handlers.NewConfigHandler(configStore)
	tableHandler := handlers.NewTableHandler(tableService, configStore)
	rowHandler := handlers.NewRowHandler(rowService, configStore)

	router := gin.Default()
	router.Use(cors.Default())
	router.Use(middlewares.RequestID)
	routes.RegisterRoutes(router, configHandler, tableHandler, rowHandler)

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 120 * time.Second,
	}
}
