package product

import (
	"context"
	"fmt"
	"sort"

	"github.com/honey-ledger/backend/internal/application/adapter"
	"github.com/honey-ledger/backend/internal/domain/textnorm"
)

// ListProductsOutput represents the catalog list.
type ListProductsOutput struct {
	Products []*ProductOutput
}

// ListProductsUseCase lists the catalog, name-sorted in the Turkish
// locale ordering of the normalized names.
type ListProductsUseCase struct {
	productRepo adapter.ProductRepository
}

// NewListProductsUseCase creates a new ListProductsUseCase instance.
func NewListProductsUseCase(productRepo adapter.ProductRepository) *ListProductsUseCase {
	return &ListProductsUseCase{productRepo: productRepo}
}

// Execute returns all products.
func (uc *ListProductsUseCase) Execute(ctx context.Context) (*ListProductsOutput, error) {
	products, err := uc.productRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	sort.SliceStable(products, func(i, j int) bool {
		return textnorm.NormalizeText(products[i].Name) < textnorm.NormalizeText(products[j].Name)
	})

	output := &ListProductsOutput{Products: make([]*ProductOutput, 0, len(products))}
	for _, p := range products {
		output.Products = append(output.Products, toProductOutput(p))
	}
	return output, nil
}
