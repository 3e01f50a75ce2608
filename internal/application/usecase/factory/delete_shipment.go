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

// DeleteShipmentInput represents the input for a shipment deletion.
type DeleteShipmentInput struct {
	ShipmentID uuid.UUID
}

// DeleteShipmentOutput reports the cascade size.
type DeleteShipmentOutput struct {
	LinesDeleted   int
	SourcesCleared int
	Batches        int
}

// DeleteShipmentUseCase removes a shipment, its lines, and the sold
// references the lines left on beekeeper inventory. The order matters:
// sources are unlinked first so an interrupted delete never leaves a
// sold reference pointing at a missing line.
type DeleteShipmentUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewDeleteShipmentUseCase creates a new DeleteShipmentUseCase instance.
func NewDeleteShipmentUseCase(entryRepo adapter.EntryRepository) *DeleteShipmentUseCase {
	return &DeleteShipmentUseCase{entryRepo: entryRepo}
}

// Execute performs the cascade.
func (uc *DeleteShipmentUseCase) Execute(ctx context.Context, input DeleteShipmentInput) (*DeleteShipmentOutput, error) {
	header, err := uc.entryRepo.FindByID(ctx, input.ShipmentID)
	if err != nil || header.EntryType != entity.EntryTypeShipment {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeShipmentNotFound,
			"shipment not found",
			domainerror.ErrShipmentNotFound,
		)
	}

	lines, err := uc.entryRepo.FindShipmentLines(ctx, input.ShipmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load shipment lines: %w", err)
	}

	var clears []adapter.EntryUpdate
	lineIDs := make([]uuid.UUID, 0, len(lines))
	for _, line := range lines {
		lineIDs = append(lineIDs, line.ID)
		if line.SourceEntryID != nil {
			clears = append(clears, adapter.EntryUpdate{
				ID:    *line.SourceEntryID,
				Patch: adapter.EntryPatch{ClearSold: true},
			})
		}
	}

	cleared, err := uc.entryRepo.PatchBatch(ctx, clears)
	if err != nil {
		// A vanished source entry is tolerable; the reference is gone
		// either way once the line is deleted.
		slog.Warn("Failed to clear some sold references during shipment delete",
			"shipmentID", input.ShipmentID,
			"error", err,
		)
	}

	deleted, err := uc.entryRepo.DeleteBatch(ctx, lineIDs)
	if err != nil {
		return nil, domainerror.NewOwnerError(
			domainerror.ErrCodeCascadeIncomplete,
			fmt.Sprintf("deleted %d of %d lines before failing", deleted.Operations, len(lineIDs)),
			domainerror.ErrCascadeIncomplete,
		)
	}

	if err := uc.entryRepo.Delete(ctx, input.ShipmentID); err != nil {
		return nil, fmt.Errorf("failed to delete shipment header: %w", err)
	}

	return &DeleteShipmentOutput{
		LinesDeleted:   deleted.Operations,
		SourcesCleared: cleared.Operations,
		Batches:        deleted.Batches,
	}, nil
}
