package beekeeper

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/honey-ledger/backend/internal/application/adapter"
	domainerror "github.com/honey-ledger/backend/internal/domain/error"
)

// ToggleHiddenInput represents the input for archiving or restoring an entry.
type ToggleHiddenInput struct {
	EntryID uuid.UUID
	Hidden  bool
}

// ToggleHiddenUseCase soft-archives an entry. Only the hidden flag is
// written; amounts and ordering stay untouched.
type ToggleHiddenUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewToggleHiddenUseCase creates a new ToggleHiddenUseCase instance.
func NewToggleHiddenUseCase(entryRepo adapter.EntryRepository) *ToggleHiddenUseCase {
	return &ToggleHiddenUseCase{entryRepo: entryRepo}
}

// Execute flips the flag via a partial-merge write.
func (uc *ToggleHiddenUseCase) Execute(ctx context.Context, input ToggleHiddenInput) error {
	if _, err := uc.entryRepo.FindByID(ctx, input.EntryID); err != nil {
		return domainerror.NewEntryError(
			domainerror.ErrCodeEntryNotFound,
			"entry not found",
			domainerror.ErrEntryNotFound,
		)
	}
	patch := adapter.EntryPatch{Hidden: &input.Hidden}
	if err := uc.entryRepo.Patch(ctx, input.EntryID, patch); err != nil {
		return fmt.Errorf("failed to update hidden flag: %w", err)
	}
	return nil
}
