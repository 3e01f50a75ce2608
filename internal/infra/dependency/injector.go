// Package dependency provides dependency injection for the application.
package dependency

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/honey-ledger/backend/config"
	"github.com/honey-ledger/backend/internal/application/usecase/beekeeper"
	"github.com/honey-ledger/backend/internal/application/usecase/factory"
	"github.com/honey-ledger/backend/internal/application/usecase/product"
	"github.com/honey-ledger/backend/internal/application/usecase/reconciliation"
	"github.com/honey-ledger/backend/internal/application/usecase/supplier"
	"github.com/honey-ledger/backend/internal/domain/valueobject"
	"github.com/honey-ledger/backend/internal/infra/db"
	"github.com/honey-ledger/backend/internal/infra/server/router"
	"github.com/honey-ledger/backend/internal/integration/cache"
	"github.com/honey-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/honey-ledger/backend/internal/integration/entrypoint/middleware"
	"github.com/honey-ledger/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, gormDB *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	entryRepo := persistence.NewEntryRepository(gormDB, cfg.Ledger.BatchLimit)
	beekeeperRepo := persistence.NewBeekeeperRepository(gormDB)
	factoryRepo := persistence.NewFactoryRepository(gormDB)
	supplierRepo := persistence.NewSupplierRepository(gormDB)
	productRepo := persistence.NewProductRepository(gormDB)
	productCache := cache.NewProductCache(redisClient)

	pricing := valueobject.DefaultPricingTable()
	ledgerModes := valueobject.DefaultLedgerModeTable()

	// Create beekeeper use cases
	listBeekeepersUseCase := beekeeper.NewListBeekeepersUseCase(beekeeperRepo)
	createBeekeeperUseCase := beekeeper.NewCreateBeekeeperUseCase(beekeeperRepo)
	updateBeekeeperUseCase := beekeeper.NewUpdateBeekeeperUseCase(beekeeperRepo)
	deleteBeekeeperUseCase := beekeeper.NewDeleteBeekeeperUseCase(beekeeperRepo, entryRepo)
	beekeeperBookUseCase := beekeeper.NewGetBookUseCase(beekeeperRepo, entryRepo)
	saveReceivedUseCase := beekeeper.NewSaveReceivedEntryUseCase(entryRepo)
	saveGivenEntryUseCase := beekeeper.NewSaveGivenEntryUseCase(entryRepo, pricing)
	deleteBeekeeperEntryUseCase := beekeeper.NewDeleteEntryUseCase(entryRepo)
	toggleHiddenUseCase := beekeeper.NewToggleHiddenUseCase(entryRepo)
	reorderEntriesUseCase := beekeeper.NewReorderEntriesUseCase(entryRepo)

	// Create factory use cases
	listFactoriesUseCase := factory.NewListFactoriesUseCase(factoryRepo)
	createFactoryUseCase := factory.NewCreateFactoryUseCase(factoryRepo)
	updateFactoryUseCase := factory.NewUpdateFactoryUseCase(factoryRepo)
	deleteFactoryUseCase := factory.NewDeleteFactoryUseCase(factoryRepo, entryRepo)
	factoryBookUseCase := factory.NewGetBookUseCase(factoryRepo, entryRepo)
	saveShipmentUseCase := factory.NewSaveShipmentUseCase(entryRepo)
	deleteShipmentUseCase := factory.NewDeleteShipmentUseCase(entryRepo)
	saveLineUseCase := factory.NewSaveLineUseCase(entryRepo)
	deleteLineUseCase := factory.NewDeleteLineUseCase(entryRepo)
	saveFactoryPaymentUseCase := factory.NewSavePaymentUseCase(entryRepo)
	deleteFactoryPaymentUseCase := factory.NewDeletePaymentUseCase(entryRepo)
	suggestInventoryUseCase := factory.NewSuggestInventoryUseCase(beekeeperRepo, entryRepo)
	resolveShipmentOwnerUseCase := factory.NewResolveShipmentOwnerUseCase(entryRepo)

	// Create supplier use cases
	listSuppliersUseCase := supplier.NewListSuppliersUseCase(supplierRepo)
	createSupplierUseCase := supplier.NewCreateSupplierUseCase(supplierRepo)
	updateSupplierUseCase := supplier.NewUpdateSupplierUseCase(supplierRepo)
	deleteSupplierUseCase := supplier.NewDeleteSupplierUseCase(supplierRepo, entryRepo)
	supplierBookUseCase := supplier.NewGetBookUseCase(supplierRepo, entryRepo, ledgerModes)
	savePurchaseUseCase := supplier.NewSavePurchaseUseCase(entryRepo)
	saveSupplierPaymentUseCase := supplier.NewSavePaymentUseCase(entryRepo)
	saveGivenUseCase := supplier.NewSaveGivenUseCase(entryRepo)
	deleteSupplierEntryUseCase := supplier.NewDeleteEntryUseCase(entryRepo)

	// Create product use cases
	listProductsUseCase := product.NewListProductsUseCase(productRepo)
	saveProductUseCase := product.NewSaveProductUseCase(productRepo, productCache, cfg.Redis.CacheTTL)
	deleteProductUseCase := product.NewDeleteProductUseCase(productRepo, productCache)
	lookupByBarcodeUseCase := product.NewLookupByBarcodeUseCase(productRepo, productCache, cfg.Redis.CacheTTL)
	suggestedUnitPriceUseCase := product.NewSuggestedUnitPriceUseCase(productRepo)
	importDefaultsUseCase := product.NewImportDefaultsUseCase(productRepo)
	normalizeUnitsUseCase := product.NewNormalizeUnitsUseCase(productRepo)

	// Create reconciliation use cases
	normalizeEntriesUseCase := reconciliation.NewNormalizeEntriesUseCase(entryRepo)
	backfillSoldUseCase := reconciliation.NewBackfillSoldReferencesUseCase(entryRepo)

	// Create controllers
	healthController := controller.NewHealthController(
		func() bool {
			sqlDB, err := gormDB.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		},
		db.RedisHealthCheck(redisClient),
	)

	beekeeperController := controller.NewBeekeeperController(
		listBeekeepersUseCase,
		createBeekeeperUseCase,
		updateBeekeeperUseCase,
		deleteBeekeeperUseCase,
		beekeeperBookUseCase,
		saveReceivedUseCase,
		saveGivenEntryUseCase,
		deleteBeekeeperEntryUseCase,
		toggleHiddenUseCase,
		reorderEntriesUseCase,
	)

	factoryController := controller.NewFactoryController(
		listFactoriesUseCase,
		createFactoryUseCase,
		updateFactoryUseCase,
		deleteFactoryUseCase,
		factoryBookUseCase,
		saveShipmentUseCase,
		deleteShipmentUseCase,
		saveLineUseCase,
		deleteLineUseCase,
		saveFactoryPaymentUseCase,
		deleteFactoryPaymentUseCase,
		suggestInventoryUseCase,
		resolveShipmentOwnerUseCase,
	)

	supplierController := controller.NewSupplierController(
		listSuppliersUseCase,
		createSupplierUseCase,
		updateSupplierUseCase,
		deleteSupplierUseCase,
		supplierBookUseCase,
		savePurchaseUseCase,
		saveSupplierPaymentUseCase,
		saveGivenUseCase,
		deleteSupplierEntryUseCase,
	)

	productController := controller.NewProductController(
		listProductsUseCase,
		saveProductUseCase,
		deleteProductUseCase,
		lookupByBarcodeUseCase,
		suggestedUnitPriceUseCase,
		importDefaultsUseCase,
		normalizeUnitsUseCase,
	)

	reconciliationController := controller.NewReconciliationController(
		normalizeEntriesUseCase,
		backfillSoldUseCase,
	)

	rateLimiter := middleware.NewRateLimiter()

	r := router.NewRouter(
		healthController,
		beekeeperController,
		factoryController,
		supplierController,
		productController,
		reconciliationController,
		rateLimiter,
	)

	return &Injector{
		Config: cfg,
		DB:     gormDB,
		Router: r,
	}
}
