package beekeeper

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/honey-ledger/backend/internal/application/adapter"
	domainerror "github.com/honey-ledger/backend/internal/domain/error"
	"github.com/honey-ledger/backend/internal/domain/textnorm"
)

// UpdateBeekeeperInput represents the input for beekeeper updates.
type UpdateBeekeeperInput struct {
	BeekeeperID uuid.UUID
	Number      int
	Name        string
	Note        string
	Active      bool
}

// UpdateBeekeeperOutput represents the output of a beekeeper update.
type UpdateBeekeeperOutput struct {
	Beekeeper *BeekeeperOutput
}

// UpdateBeekeeperUseCase handles beekeeper updates.
type UpdateBeekeeperUseCase struct {
	beekeeperRepo adapter.BeekeeperRepository
}

// NewUpdateBeekeeperUseCase creates a new UpdateBeekeeperUseCase instance.
func NewUpdateBeekeeperUseCase(beekeeperRepo adapter.BeekeeperRepository) *UpdateBeekeeperUseCase {
	return &UpdateBeekeeperUseCase{beekeeperRepo: beekeeperRepo}
}

// Execute performs the update.
func (uc *UpdateBeekeeperUseCase) Execute(ctx context.Context, input UpdateBeekeeperInput) (*UpdateBeekeeperOutput, error) {
	name := textnorm.TitleCase(input.Name)
	if name == "" {
		return nil, domainerror.NewOwnerError(
			domainerror.ErrCodeMissingOwnerName,
			"beekeeper name is required",
			domainerror.ErrMissingOwnerName,
		)
	}

	keeper, err := uc.beekeeperRepo.FindByID(ctx, input.BeekeeperID)
	if err != nil {
		return nil, domainerror.NewOwnerError(
			domainerror.ErrCodeOwnerNotFound,
			"beekeeper not found",
			domainerror.ErrOwnerNotFound,
		)
	}

	keeper.Number = input.Number
	keeper.Name = name
	keeper.Note = textnorm.NormalizeSpaces(input.Note)
	keeper.Active = input.Active
	keeper.UpdatedAt = time.Now().UTC()

	if err := uc.beekeeperRepo.Update(ctx, keeper); err != nil {
		return nil, fmt.Errorf("failed to update beekeeper: %w", err)
	}

	return &UpdateBeekeeperOutput{Beekeeper: toBeekeeperOutput(keeper)}, nil
}
