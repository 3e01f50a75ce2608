// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/honey-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/honey-ledger/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                   *gin.Engine
	healthController         *controller.HealthController
	beekeeperController      *controller.BeekeeperController
	factoryController        *controller.FactoryController
	supplierController       *controller.SupplierController
	productController        *controller.ProductController
	reconciliationController *controller.ReconciliationController
	rateLimiter              *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	beekeeperController *controller.BeekeeperController,
	factoryController *controller.FactoryController,
	supplierController *controller.SupplierController,
	productController *controller.ProductController,
	reconciliationController *controller.ReconciliationController,
	rateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:         healthController,
		beekeeperController:      beekeeperController,
		factoryController:        factoryController,
		supplierController:       supplierController,
		productController:        productController,
		reconciliationController: reconciliationController,
		rateLimiter:              rateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	if r.rateLimiter != nil {
		v1.Use(r.rateLimiter.Middleware())
	}
	{
		if r.beekeeperController != nil {
			beekeepers := v1.Group("/beekeepers")
			{
				beekeepers.GET("", r.beekeeperController.List)
				beekeepers.POST("", r.beekeeperController.Create)
				beekeepers.PUT("/:id", r.beekeeperController.Update)
				beekeepers.DELETE("/:id", r.beekeeperController.Delete)
				beekeepers.GET("/:id/book", r.beekeeperController.GetBook)
				beekeepers.POST("/:id/entries/received", r.beekeeperController.SaveReceived)
				beekeepers.POST("/:id/entries/given", r.beekeeperController.SaveGiven)
				beekeepers.POST("/:id/entries/reorder", r.beekeeperController.Reorder)
			}

			entries := v1.Group("/entries")
			{
				entries.DELETE("/:id", r.beekeeperController.DeleteEntry)
				entries.PATCH("/:id/hidden", r.beekeeperController.ToggleHidden)
			}
		}

		if r.factoryController != nil {
			factories := v1.Group("/factories")
			{
				factories.GET("", r.factoryController.List)
				factories.POST("", r.factoryController.Create)
				factories.GET("/suggestions", r.factoryController.Suggestions)
				factories.PUT("/:id", r.factoryController.Update)
				factories.DELETE("/:id", r.factoryController.Delete)
				factories.GET("/:id/book", r.factoryController.GetBook)
				factories.POST("/:id/shipments", r.factoryController.SaveShipment)
				factories.POST("/:id/payments", r.factoryController.SavePayment)
			}

			shipments := v1.Group("/shipments")
			{
				shipments.DELETE("/:id", r.factoryController.DeleteShipment)
				shipments.POST("/:id/lines", r.factoryController.SaveLine)
				shipments.GET("/:id/owner", r.factoryController.ResolveShipmentOwner)
			}

			v1.DELETE("/lines/:id", r.factoryController.DeleteLine)
			v1.DELETE("/payments/:id", r.factoryController.DeletePayment)
		}

		if r.supplierController != nil {
			suppliers := v1.Group("/suppliers")
			{
				suppliers.GET("", r.supplierController.List)
				suppliers.POST("", r.supplierController.Create)
				suppliers.PUT("/:id", r.supplierController.Update)
				suppliers.DELETE("/:id", r.supplierController.Delete)
				suppliers.GET("/:id/book", r.supplierController.GetBook)
				suppliers.POST("/:id/purchases", r.supplierController.SavePurchase)
				suppliers.POST("/:id/payments", r.supplierController.SavePayment)
				suppliers.POST("/:id/given", r.supplierController.SaveGiven)
				suppliers.DELETE("/entries/:id", r.supplierController.DeleteEntry)
			}
		}

		if r.productController != nil {
			products := v1.Group("/products")
			{
				products.GET("", r.productController.List)
				products.POST("", r.productController.Create)
				products.GET("/lookup", r.productController.Lookup)
				products.GET("/suggested-price", r.productController.SuggestedUnitPrice)
				products.POST("/import-defaults", r.productController.ImportDefaults)
				products.POST("/normalize-units", r.productController.NormalizeUnits)
				products.PUT("/:id", r.productController.Update)
				products.DELETE("/:id", r.productController.Delete)
			}
		}

		if r.reconciliationController != nil {
			reconciliation := v1.Group("/reconciliation")
			{
				reconciliation.POST("/normalize", r.reconciliationController.Normalize)
				reconciliation.POST("/backfill-sold", r.reconciliationController.BackfillSold)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
