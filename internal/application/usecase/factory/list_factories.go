package factory

import (
	"context"
	"fmt"
	"sort"

	"github.com/honey-ledger/backend/internal/application/adapter"
	"github.com/honey-ledger/backend/internal/domain/textnorm"
)

// ListFactoriesOutput represents the factory list.
type ListFactoriesOutput struct {
	Factories []*FactoryOutput
}

// ListFactoriesUseCase lists factories, name-sorted.
type ListFactoriesUseCase struct {
	factoryRepo adapter.FactoryRepository
}

// NewListFactoriesUseCase creates a new ListFactoriesUseCase instance.
func NewListFactoriesUseCase(factoryRepo adapter.FactoryRepository) *ListFactoriesUseCase {
	return &ListFactoriesUseCase{factoryRepo: factoryRepo}
}

// Execute returns all factories.
func (uc *ListFactoriesUseCase) Execute(ctx context.Context) (*ListFactoriesOutput, error) {
	factories, err := uc.factoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list factories: %w", err)
	}

	sort.SliceStable(factories, func(i, j int) bool {
		return textnorm.NormalizeText(factories[i].Name) < textnorm.NormalizeText(factories[j].Name)
	})

	output := &ListFactoriesOutput{Factories: make([]*FactoryOutput, 0, len(factories))}
	for _, f := range factories {
		output.Factories = append(output.Factories, toFactoryOutput(f))
	}
	return output, nil
}
