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

// DeleteLineInput represents the input for a shipment line deletion.
type DeleteLineInput struct {
	LineID uuid.UUID
}

// DeleteLineUseCase removes a line and releases the inventory entry it
// had consumed.
type DeleteLineUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewDeleteLineUseCase creates a new DeleteLineUseCase instance.
func NewDeleteLineUseCase(entryRepo adapter.EntryRepository) *DeleteLineUseCase {
	return &DeleteLineUseCase{entryRepo: entryRepo}
}

// Execute performs the deletion.
func (uc *DeleteLineUseCase) Execute(ctx context.Context, input DeleteLineInput) error {
	line, err := uc.entryRepo.FindByID(ctx, input.LineID)
	if err != nil || line.EntryType != entity.EntryTypeShipmentLine {
		return domainerror.NewEntryError(
			domainerror.ErrCodeLineNotFound,
			"shipment line not found",
			domainerror.ErrLineNotFound,
		)
	}

	if line.SourceEntryID != nil {
		if err := uc.entryRepo.Patch(ctx, *line.SourceEntryID, adapter.EntryPatch{ClearSold: true}); err != nil {
			slog.Warn("Failed to clear sold reference on line delete",
				"sourceEntryID", *line.SourceEntryID,
				"lineID", line.ID,
				"error", err,
			)
		}
	}

	if err := uc.entryRepo.Delete(ctx, input.LineID); err != nil {
		return fmt.Errorf("failed to delete shipment line: %w", err)
	}
	return nil
}
