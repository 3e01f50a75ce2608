package beekeeper

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/honey-ledger/backend/internal/application/adapter"
	domainerror "github.com/honey-ledger/backend/internal/domain/error"
)

// DeleteEntryInput represents the input for entry deletion.
type DeleteEntryInput struct {
	EntryID uuid.UUID
}

// DeleteEntryUseCase removes one ledger entry.
type DeleteEntryUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewDeleteEntryUseCase creates a new DeleteEntryUseCase instance.
func NewDeleteEntryUseCase(entryRepo adapter.EntryRepository) *DeleteEntryUseCase {
	return &DeleteEntryUseCase{entryRepo: entryRepo}
}

// Execute performs the deletion.
func (uc *DeleteEntryUseCase) Execute(ctx context.Context, input DeleteEntryInput) error {
	if _, err := uc.entryRepo.FindByID(ctx, input.EntryID); err != nil {
		return domainerror.NewEntryError(
			domainerror.ErrCodeEntryNotFound,
			"entry not found",
			domainerror.ErrEntryNotFound,
		)
	}
	if err := uc.entryRepo.Delete(ctx, input.EntryID); err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	return nil
}
