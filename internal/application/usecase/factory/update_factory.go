package factory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/honey-ledger/backend/internal/application/adapter"
	domainerror "github.com/honey-ledger/backend/internal/domain/error"
	"github.com/honey-ledger/backend/internal/domain/textnorm"
)

// UpdateFactoryInput represents the input for factory updates.
type UpdateFactoryInput struct {
	FactoryID uuid.UUID
	Name      string
	Note      string
	Active    bool
}

// UpdateFactoryOutput represents the output of a factory update.
type UpdateFactoryOutput struct {
	Factory *FactoryOutput
}

// UpdateFactoryUseCase handles factory updates.
type UpdateFactoryUseCase struct {
	factoryRepo adapter.FactoryRepository
}

// NewUpdateFactoryUseCase creates a new UpdateFactoryUseCase instance.
func NewUpdateFactoryUseCase(factoryRepo adapter.FactoryRepository) *UpdateFactoryUseCase {
	return &UpdateFactoryUseCase{factoryRepo: factoryRepo}
}

// Execute performs the update.
func (uc *UpdateFactoryUseCase) Execute(ctx context.Context, input UpdateFactoryInput) (*UpdateFactoryOutput, error) {
	name := textnorm.TitleCase(input.Name)
	if name == "" {
		return nil, domainerror.NewOwnerError(
			domainerror.ErrCodeMissingOwnerName,
			"factory name is required",
			domainerror.ErrMissingOwnerName,
		)
	}

	fac, err := uc.factoryRepo.FindByID(ctx, input.FactoryID)
	if err != nil {
		return nil, domainerror.NewOwnerError(
			domainerror.ErrCodeOwnerNotFound,
			"factory not found",
			domainerror.ErrOwnerNotFound,
		)
	}

	fac.Name = name
	fac.Note = textnorm.NormalizeSpaces(input.Note)
	fac.Active = input.Active
	fac.UpdatedAt = time.Now().UTC()

	if err := uc.factoryRepo.Update(ctx, fac); err != nil {
		return nil, fmt.Errorf("failed to update factory: %w", err)
	}
	return &UpdateFactoryOutput{Factory: toFactoryOutput(fac)}, nil
}
