package product

import (
	"context"
	"fmt"
	"time"

	"github.com/honey-ledger/backend/internal/application/adapter"
	"github.com/honey-ledger/backend/internal/domain/textnorm"
)

// NormalizeUnitsOutput reports how many products were rewritten.
type NormalizeUnitsOutput struct {
	Examined int
	Updated  int
}

// NormalizeUnitsUseCase rewrites product units to their canonical
// spelling. Products already canonical are not written, so the pass is
// idempotent.
type NormalizeUnitsUseCase struct {
	productRepo adapter.ProductRepository
}

// NewNormalizeUnitsUseCase creates a new NormalizeUnitsUseCase instance.
func NewNormalizeUnitsUseCase(productRepo adapter.ProductRepository) *NormalizeUnitsUseCase {
	return &NormalizeUnitsUseCase{productRepo: productRepo}
}

// Execute performs the pass.
func (uc *NormalizeUnitsUseCase) Execute(ctx context.Context) (*NormalizeUnitsOutput, error) {
	products, err := uc.productRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	output := &NormalizeUnitsOutput{Examined: len(products)}
	for _, p := range products {
		canonical := textnorm.NormalizeUnit(p.Unit)
		if canonical == p.Unit {
			continue
		}
		p.Unit = canonical
		p.UpdatedAt = time.Now().UTC()
		if err := uc.productRepo.Update(ctx, p); err != nil {
			return nil, fmt.Errorf("failed to normalize product %q: %w", p.Name, err)
		}
		output.Updated++
	}
	return output, nil
}
