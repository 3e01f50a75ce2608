package product

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/honey-ledger/backend/internal/application/adapter"
	"github.com/honey-ledger/backend/internal/domain/textnorm"
)

// SuggestedUnitPriceInput represents the input for a price suggestion.
type SuggestedUnitPriceInput struct {
	Name string
}

// SuggestedUnitPriceOutput carries the catalog price for an exactly
// matching name. Price is nil when no product matches or the match
// has no price.
type SuggestedUnitPriceOutput struct {
	Price *decimal.Decimal
	Unit  string
}

// SuggestedUnitPriceUseCase prefills entry forms from the catalog.
type SuggestedUnitPriceUseCase struct {
	productRepo adapter.ProductRepository
}

// NewSuggestedUnitPriceUseCase creates a new SuggestedUnitPriceUseCase instance.
func NewSuggestedUnitPriceUseCase(productRepo adapter.ProductRepository) *SuggestedUnitPriceUseCase {
	return &SuggestedUnitPriceUseCase{productRepo: productRepo}
}

// Execute matches on the locale-normalized name.
func (uc *SuggestedUnitPriceUseCase) Execute(ctx context.Context, input SuggestedUnitPriceInput) (*SuggestedUnitPriceOutput, error) {
	wanted := textnorm.NormalizeText(input.Name)
	if wanted == "" {
		return &SuggestedUnitPriceOutput{}, nil
	}

	products, err := uc.productRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	for _, p := range products {
		if textnorm.NormalizeText(p.Name) == wanted {
			return &SuggestedUnitPriceOutput{Price: p.Price, Unit: p.Unit}, nil
		}
	}
	return &SuggestedUnitPriceOutput{}, nil
}
