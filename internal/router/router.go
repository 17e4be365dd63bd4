// internal/router/router.go
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/forgepeptides/forge-backend/internal/config"
	"github.com/forgepeptides/forge-backend/internal/handlers"
	"github.com/forgepeptides/forge-backend/internal/middleware"
	"github.com/forgepeptides/forge-backend/internal/services"
	"github.com/forgepeptides/forge-backend/internal/store"
)

// Initialize wires services, handlers, and routes into a gin engine.
// The store may be nil; every handler copes with a missing store.
func Initialize(st store.Store, cfg *config.Config) *gin.Engine {
	// Initialize services
	catalogService := services.NewCatalogService(st)
	inquiryService := services.NewInquiryService(st)

	// Initialize handlers
	productHandler := handlers.NewProductHandler(catalogService)
	inquiryHandler := handlers.NewInquiryHandler(inquiryService, cfg.Inquiry)
	statusHandler := handlers.NewStatusHandler(st)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())

	// Root and diagnostics
	r.GET("/", statusHandler.Root)
	r.GET("/test", statusHandler.Test)

	// API routes
	api := r.Group("/api")
	{
		api.GET("/products", productHandler.ListProducts)
		api.GET("/products/:id", productHandler.GetProduct)
		api.GET("/categories", productHandler.Categories)
		api.POST("/inquiry", inquiryHandler.Submit)
	}

	return r
}
