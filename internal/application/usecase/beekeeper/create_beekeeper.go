package beekeeper

import (
	"context"
	"fmt"

	"github.com/honey-ledger/backend/internal/application/adapter"
	"github.com/honey-ledger/backend/internal/domain/entity"
	domainerror "github.com/honey-ledger/backend/internal/domain/error"
	"github.com/honey-ledger/backend/internal/domain/textnorm"
)

// CreateBeekeeperInput represents the input for beekeeper creation.
type CreateBeekeeperInput struct {
	Number int
	Name   string
	Note   string
}

// CreateBeekeeperOutput represents the output of beekeeper creation.
type CreateBeekeeperOutput struct {
	Beekeeper *BeekeeperOutput
}

// CreateBeekeeperUseCase handles beekeeper creation.
type CreateBeekeeperUseCase struct {
	beekeeperRepo adapter.BeekeeperRepository
}

// NewCreateBeekeeperUseCase creates a new CreateBeekeeperUseCase instance.
func NewCreateBeekeeperUseCase(beekeeperRepo adapter.BeekeeperRepository) *CreateBeekeeperUseCase {
	return &CreateBeekeeperUseCase{beekeeperRepo: beekeeperRepo}
}

// Execute performs the creation. Names are stored in canonical
// title-case form.
func (uc *CreateBeekeeperUseCase) Execute(ctx context.Context, input CreateBeekeeperInput) (*CreateBeekeeperOutput, error) {
	name := textnorm.TitleCase(input.Name)
	if name == "" {
		return nil, domainerror.NewOwnerError(
			domainerror.ErrCodeMissingOwnerName,
			"beekeeper name is required",
			domainerror.ErrMissingOwnerName,
		)
	}

	keeper := entity.NewBeekeeper(input.Number, name, textnorm.NormalizeSpaces(input.Note))
	if err := uc.beekeeperRepo.Create(ctx, keeper); err != nil {
		return nil, fmt.Errorf("failed to create beekeeper: %w", err)
	}

	return &CreateBeekeeperOutput{Beekeeper: toBeekeeperOutput(keeper)}, nil
}
