package product

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/honey-ledger/backend/internal/application/adapter"
	"github.com/honey-ledger/backend/internal/domain/entity"
	domainerror "github.com/honey-ledger/backend/internal/domain/error"
	"github.com/honey-ledger/backend/internal/domain/textnorm"
)

// SaveProductInput represents the input for a catalog save. ProductID
// nil creates a new product.
type SaveProductInput struct {
	ProductID *uuid.UUID
	Name      string
	Price     *decimal.Decimal
	Unit      string
	Barcode   string
	Active    bool
}

// SaveProductOutput represents the output of a catalog save.
type SaveProductOutput struct {
	Product *ProductOutput
}

// SaveProductUseCase creates or updates a catalog product. Barcodes
// are globally unique when present; the scanner cache entry for a
// replaced barcode is invalidated.
type SaveProductUseCase struct {
	productRepo adapter.ProductRepository
	cache       adapter.ProductCache
	cacheTTL    time.Duration
}

// NewSaveProductUseCase creates a new SaveProductUseCase instance.
func NewSaveProductUseCase(productRepo adapter.ProductRepository, cache adapter.ProductCache, cacheTTL time.Duration) *SaveProductUseCase {
	return &SaveProductUseCase{
		productRepo: productRepo,
		cache:       cache,
		cacheTTL:    cacheTTL,
	}
}

// Execute validates and persists the product.
func (uc *SaveProductUseCase) Execute(ctx context.Context, input SaveProductInput) (*SaveProductOutput, error) {
	name := textnorm.NormalizeSpaces(input.Name)
	if name == "" {
		return nil, domainerror.NewProductError(
			domainerror.ErrCodeMissingProductName,
			"product name is required",
			domainerror.ErrMissingProductName,
		)
	}
	barcode := strings.TrimSpace(input.Barcode)

	if barcode != "" {
		holder, err := uc.productRepo.FindByBarcode(ctx, barcode)
		if err == nil && (input.ProductID == nil || holder.ID != *input.ProductID) {
			return nil, domainerror.NewProductError(
				domainerror.ErrCodeBarcodeTaken,
				fmt.Sprintf("barcode %s already belongs to %s", barcode, holder.Name),
				domainerror.ErrBarcodeTaken,
			)
		}
	}

	var prod *entity.Product
	var previousBarcode string
	if input.ProductID == nil {
		prod = entity.NewProduct(name, input.Price, textnorm.NormalizeUnit(input.Unit), barcode)
		prod.Active = input.Active
		if err := uc.productRepo.Create(ctx, prod); err != nil {
			return nil, fmt.Errorf("failed to create product: %w", err)
		}
	} else {
		found, err := uc.productRepo.FindByID(ctx, *input.ProductID)
		if err != nil {
			return nil, domainerror.NewProductError(
				domainerror.ErrCodeProductNotFound,
				"product not found",
				domainerror.ErrProductNotFound,
			)
		}
		prod = found
		previousBarcode = prod.Barcode

		prod.Name = name
		prod.Price = input.Price
		prod.Unit = textnorm.NormalizeUnit(input.Unit)
		prod.Barcode = barcode
		prod.Active = input.Active
		prod.UpdatedAt = time.Now().UTC()
		if err := uc.productRepo.Update(ctx, prod); err != nil {
			return nil, fmt.Errorf("failed to update product: %w", err)
		}
	}

	uc.refreshCache(ctx, prod, previousBarcode)

	return &SaveProductOutput{Product: toProductOutput(prod)}, nil
}

func (uc *SaveProductUseCase) refreshCache(ctx context.Context, prod *entity.Product, previousBarcode string) {
	if uc.cache == nil {
		return
	}
	if previousBarcode != "" && previousBarcode != prod.Barcode {
		_ = uc.cache.DeleteBarcode(ctx, previousBarcode)
	}
	if prod.Barcode != "" {
		_ = uc.cache.SetBarcode(ctx, prod.Barcode, prod.ID, uc.cacheTTL)
	}
}
