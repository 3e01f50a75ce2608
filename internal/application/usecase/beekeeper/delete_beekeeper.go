package beekeeper

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/honey-ledger/backend/internal/application/adapter"
	"github.com/honey-ledger/backend/internal/domain/entity"
	domainerror "github.com/honey-ledger/backend/internal/domain/error"
)

// DeleteBeekeeperInput represents the input for beekeeper deletion.
type DeleteBeekeeperInput struct {
	BeekeeperID uuid.UUID
}

// DeleteBeekeeperOutput reports the cascade size.
type DeleteBeekeeperOutput struct {
	EntriesDeleted int
	Batches        int
}

// DeleteBeekeeperUseCase removes a beekeeper and every entry in their
// book. Entry deletion runs in bounded batches before the owner record
// goes; a partial failure leaves committed batches deleted and the
// owner in place, so a retry completes the cascade.
type DeleteBeekeeperUseCase struct {
	beekeeperRepo adapter.BeekeeperRepository
	entryRepo     adapter.EntryRepository
}

// NewDeleteBeekeeperUseCase creates a new DeleteBeekeeperUseCase instance.
func NewDeleteBeekeeperUseCase(beekeeperRepo adapter.BeekeeperRepository, entryRepo adapter.EntryRepository) *DeleteBeekeeperUseCase {
	return &DeleteBeekeeperUseCase{
		beekeeperRepo: beekeeperRepo,
		entryRepo:     entryRepo,
	}
}

// Execute performs the cascade deletion.
func (uc *DeleteBeekeeperUseCase) Execute(ctx context.Context, input DeleteBeekeeperInput) (*DeleteBeekeeperOutput, error) {
	if _, err := uc.beekeeperRepo.FindByID(ctx, input.BeekeeperID); err != nil {
		return nil, domainerror.NewOwnerError(
			domainerror.ErrCodeOwnerNotFound,
			"beekeeper not found",
			domainerror.ErrOwnerNotFound,
		)
	}

	entries, err := uc.entryRepo.FindByOwner(ctx, entity.OwnerTypeBeekeeper, input.BeekeeperID)
	if err != nil {
		return nil, fmt.Errorf("failed to load beekeeper entries: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
	}

	result, err := uc.entryRepo.DeleteBatch(ctx, ids)
	if err != nil {
		return nil, domainerror.NewOwnerError(
			domainerror.ErrCodeCascadeIncomplete,
			fmt.Sprintf("deleted %d of %d entries before failing", result.Operations, len(ids)),
			domainerror.ErrCascadeIncomplete,
		)
	}

	if err := uc.beekeeperRepo.Delete(ctx, input.BeekeeperID); err != nil {
		return nil, fmt.Errorf("failed to delete beekeeper: %w", err)
	}

	slog.Info("Deleted beekeeper book",
		"beekeeperID", input.BeekeeperID,
		"entries", result.Operations,
		"batches", result.Batches,
	)

	return &DeleteBeekeeperOutput{
		EntriesDeleted: result.Operations,
		Batches:        result.Batches,
	}, nil
}
