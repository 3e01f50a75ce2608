package factory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/honey-ledger/backend/internal/application/adapter"
	"github.com/honey-ledger/backend/internal/domain/entity"
	domainerror "github.com/honey-ledger/backend/internal/domain/error"
)

// DeleteFactoryInput represents the input for factory deletion.
type DeleteFactoryInput struct {
	FactoryID uuid.UUID
}

// DeleteFactoryOutput reports the cascade size.
type DeleteFactoryOutput struct {
	EntriesDeleted int
	SourcesCleared int
	Batches        int
}

// DeleteFactoryUseCase removes a factory and its whole book. Sold
// references held by shipment lines are cleared on the beekeeper side
// first so no inventory stays marked as sold to a vanished factory.
type DeleteFactoryUseCase struct {
	factoryRepo adapter.FactoryRepository
	entryRepo   adapter.EntryRepository
}

// NewDeleteFactoryUseCase creates a new DeleteFactoryUseCase instance.
func NewDeleteFactoryUseCase(factoryRepo adapter.FactoryRepository, entryRepo adapter.EntryRepository) *DeleteFactoryUseCase {
	return &DeleteFactoryUseCase{
		factoryRepo: factoryRepo,
		entryRepo:   entryRepo,
	}
}

// Execute performs the cascade deletion.
func (uc *DeleteFactoryUseCase) Execute(ctx context.Context, input DeleteFactoryInput) (*DeleteFactoryOutput, error) {
	if _, err := uc.factoryRepo.FindByID(ctx, input.FactoryID); err != nil {
		return nil, domainerror.NewOwnerError(
			domainerror.ErrCodeOwnerNotFound,
			"factory not found",
			domainerror.ErrOwnerNotFound,
		)
	}

	entries, err := uc.entryRepo.FindByOwner(ctx, entity.OwnerTypeFactory, input.FactoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load factory entries: %w", err)
	}

	var clears []adapter.EntryUpdate
	ids := make([]uuid.UUID, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
		if e.EntryType == entity.EntryTypeShipmentLine && e.SourceEntryID != nil {
			clears = append(clears, adapter.EntryUpdate{
				ID:    *e.SourceEntryID,
				Patch: adapter.EntryPatch{ClearSold: true},
			})
		}
	}

	cleared, err := uc.entryRepo.PatchBatch(ctx, clears)
	if err != nil {
		slog.Warn("Failed to clear some sold references during factory delete",
			"factoryID", input.FactoryID,
			"error", err,
		)
	}

	result, err := uc.entryRepo.DeleteBatch(ctx, ids)
	if err != nil {
		return nil, domainerror.NewOwnerError(
			domainerror.ErrCodeCascadeIncomplete,
			fmt.Sprintf("deleted %d of %d entries before failing", result.Operations, len(ids)),
			domainerror.ErrCascadeIncomplete,
		)
	}

	if err := uc.factoryRepo.Delete(ctx, input.FactoryID); err != nil {
		return nil, fmt.Errorf("failed to delete factory: %w", err)
	}

	slog.Info("Deleted factory book",
		"factoryID", input.FactoryID,
		"entries", result.Operations,
		"sourcesCleared", cleared.Operations,
	)

	return &DeleteFactoryOutput{
		EntriesDeleted: result.Operations,
		SourcesCleared: cleared.Operations,
		Batches:        result.Batches,
	}, nil
}
