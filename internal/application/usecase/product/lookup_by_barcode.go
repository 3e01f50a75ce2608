package product

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/honey-ledger/backend/internal/application/adapter"
	domainerror "github.com/honey-ledger/backend/internal/domain/error"
)

// LookupByBarcodeInput represents the input for a barcode lookup.
type LookupByBarcodeInput struct {
	Barcode string
}

// LookupByBarcodeOutput represents the output of a barcode lookup.
type LookupByBarcodeOutput struct {
	Product  *ProductOutput
	CacheHit bool
}

// LookupByBarcodeUseCase resolves a scanned barcode to a product.
// Repeated scans of the same code hit the cache instead of the store.
type LookupByBarcodeUseCase struct {
	productRepo adapter.ProductRepository
	cache       adapter.ProductCache
	cacheTTL    time.Duration
}

// NewLookupByBarcodeUseCase creates a new LookupByBarcodeUseCase instance.
func NewLookupByBarcodeUseCase(productRepo adapter.ProductRepository, cache adapter.ProductCache, cacheTTL time.Duration) *LookupByBarcodeUseCase {
	return &LookupByBarcodeUseCase{
		productRepo: productRepo,
		cache:       cache,
		cacheTTL:    cacheTTL,
	}
}

// Execute performs the lookup on the exact trimmed code.
func (uc *LookupByBarcodeUseCase) Execute(ctx context.Context, input LookupByBarcodeInput) (*LookupByBarcodeOutput, error) {
	barcode := strings.TrimSpace(input.Barcode)
	if barcode == "" {
		return nil, domainerror.NewProductError(
			domainerror.ErrCodeProductNotFound,
			"product not found",
			domainerror.ErrProductNotFound,
		)
	}

	if uc.cache != nil {
		if id, ok, err := uc.cache.GetBarcode(ctx, barcode); err == nil && ok {
			prod, err := uc.productRepo.FindByID(ctx, id)
			if err == nil {
				return &LookupByBarcodeOutput{Product: toProductOutput(prod), CacheHit: true}, nil
			}
			// Stale mapping; fall through to the store.
			_ = uc.cache.DeleteBarcode(ctx, barcode)
		} else if err != nil {
			slog.Debug("Barcode cache unavailable, falling back to store", "error", err)
		}
	}

	prod, err := uc.productRepo.FindByBarcode(ctx, barcode)
	if err != nil {
		return nil, domainerror.NewProductError(
			domainerror.ErrCodeProductNotFound,
			"product not found",
			domainerror.ErrProductNotFound,
		)
	}

	if uc.cache != nil {
		_ = uc.cache.SetBarcode(ctx, barcode, prod.ID, uc.cacheTTL)
	}
	return &LookupByBarcodeOutput{Product: toProductOutput(prod)}, nil
}
