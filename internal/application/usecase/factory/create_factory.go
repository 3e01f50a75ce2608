package factory

import (
	"context"
	"fmt"

	"github.com/honey-ledger/backend/internal/application/adapter"
	"github.com/honey-ledger/backend/internal/domain/entity"
	domainerror "github.com/honey-ledger/backend/internal/domain/error"
	"github.com/honey-ledger/backend/internal/domain/textnorm"
)

// CreateFactoryInput represents the input for factory creation.
type CreateFactoryInput struct {
	Name string
	Note string
}

// CreateFactoryOutput represents the output of factory creation.
type CreateFactoryOutput struct {
	Factory *FactoryOutput
}

// CreateFactoryUseCase handles factory creation.
type CreateFactoryUseCase struct {
	factoryRepo adapter.FactoryRepository
}

// NewCreateFactoryUseCase creates a new CreateFactoryUseCase instance.
func NewCreateFactoryUseCase(factoryRepo adapter.FactoryRepository) *CreateFactoryUseCase {
	return &CreateFactoryUseCase{factoryRepo: factoryRepo}
}

// Execute performs the creation.
func (uc *CreateFactoryUseCase) Execute(ctx context.Context, input CreateFactoryInput) (*CreateFactoryOutput, error) {
	name := textnorm.TitleCase(input.Name)
	if name == "" {
		return nil, domainerror.NewOwnerError(
			domainerror.ErrCodeMissingOwnerName,
			"factory name is required",
			domainerror.ErrMissingOwnerName,
		)
	}

	fac := entity.NewFactory(name, textnorm.NormalizeSpaces(input.Note))
	if err := uc.factoryRepo.Create(ctx, fac); err != nil {
		return nil, fmt.Errorf("failed to create factory: %w", err)
	}
	return &CreateFactoryOutput{Factory: toFactoryOutput(fac)}, nil
}
