package main

import (
	"github.com/gin-gonic/gin"
	"github.com/ridloal/product-catalog-service/internal/platform/config"
	"github.com/ridloal/product-catalog-service/internal/platform/database"
	"github.com/ridloal/product-catalog-service/internal/platform/logger"
	productAPI "github.com/ridloal/product-catalog-service/internal/product/api"
	productRepo "github.com/ridloal/product-catalog-service/internal/product/repository"
	productService "github.com/ridloal/product-catalog-service/internal/product/service"
)

func main() {
	// Load Config
	dbCfg := config.LoadProductDBConfig()
	serverCfg := config.LoadServerConfig("8080")

	// Setup Logger
	logger.Info("Starting Product Catalog Service...")

	// Setup Database
	db, err := database.Connect(dbCfg.DSN)
	if err != nil {
		logger.Error("Failed to connect to database for Product Catalog Service", err, nil)
		return
	}
	defer db.Close()

	// Setup Dependencies
	prodRepository := productRepo.NewPostgresProductRepository(db)
	prodService := productService.NewProductService(prodRepository)
	productHandler := productAPI.NewProductHandler(prodService)

	// Setup Gin Router
	router := gin.Default()
	router.RedirectTrailingSlash = false

	apiRoot := router.Group(serverCfg.APIPrefix)
	productHandler.RegisterRoutes(apiRoot)

	logger.Info("Product Catalog Service running on port " + serverCfg.Port)
	if err := router.Run(serverCfg.Port); err != nil {
		logger.Error("Failed to run Product Catalog Service server", err, nil)
	}
}
