package product

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/honey-ledger/backend/internal/application/adapter"
	domainerror "github.com/honey-ledger/backend/internal/domain/error"
)

// DeleteProductInput represents the input for product deletion.
type DeleteProductInput struct {
	ProductID uuid.UUID
}

// DeleteProductUseCase removes a product and its cached barcode.
type DeleteProductUseCase struct {
	productRepo adapter.ProductRepository
	cache       adapter.ProductCache
}

// NewDeleteProductUseCase creates a new DeleteProductUseCase instance.
func NewDeleteProductUseCase(productRepo adapter.ProductRepository, cache adapter.ProductCache) *DeleteProductUseCase {
	return &DeleteProductUseCase{
		productRepo: productRepo,
		cache:       cache,
	}
}

// Execute performs the deletion.
func (uc *DeleteProductUseCase) Execute(ctx context.Context, input DeleteProductInput) error {
	prod, err := uc.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		return domainerror.NewProductError(
			domainerror.ErrCodeProductNotFound,
			"product not found",
			domainerror.ErrProductNotFound,
		)
	}

	if err := uc.productRepo.Delete(ctx, input.ProductID); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if uc.cache != nil && prod.Barcode != "" {
		_ = uc.cache.DeleteBarcode(ctx, prod.Barcode)
	}
	return nil
}
