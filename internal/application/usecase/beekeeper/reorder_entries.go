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

// ReorderEntriesInput carries the full ordered id list of one side
// after a manual move.
type ReorderEntriesInput struct {
	BeekeeperID uuid.UUID
	Side        entity.Side
	OrderedIDs  []uuid.UUID
}

// ReorderEntriesOutput reports how many orders actually changed.
type ReorderEntriesOutput struct {
	Updated int
	Batches int
}

// ReorderEntriesUseCase renumbers one side 1..n and writes only the
// entries whose position moved.
type ReorderEntriesUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewReorderEntriesUseCase creates a new ReorderEntriesUseCase instance.
func NewReorderEntriesUseCase(entryRepo adapter.EntryRepository) *ReorderEntriesUseCase {
	return &ReorderEntriesUseCase{entryRepo: entryRepo}
}

// Execute performs the reorder.
func (uc *ReorderEntriesUseCase) Execute(ctx context.Context, input ReorderEntriesInput) (*ReorderEntriesOutput, error) {
	entries, err := uc.entryRepo.FindByOwner(ctx, entity.OwnerTypeBeekeeper, input.BeekeeperID)
	if err != nil {
		return nil, fmt.Errorf("failed to load beekeeper entries: %w", err)
	}

	sideEntries := make(map[uuid.UUID]*entity.Entry, len(entries))
	for _, e := range entries {
		if e.Side == input.Side {
			sideEntries[e.ID] = e
		}
	}

	var updates []adapter.EntryUpdate
	for i, id := range input.OrderedIDs {
		entry, ok := sideEntries[id]
		if !ok {
			return nil, domainerror.NewEntryError(
				domainerror.ErrCodeEntryNotInSide,
				fmt.Sprintf("entry %s is not in the reordered side", id),
				domainerror.ErrEntryNotInSide,
			)
		}
		position := i + 1
		if entry.Order != nil && *entry.Order == position {
			continue
		}
		pos := position
		updates = append(updates, adapter.EntryUpdate{
			ID:    id,
			Patch: adapter.EntryPatch{Order: &pos},
		})
	}

	if len(updates) == 0 {
		return &ReorderEntriesOutput{}, nil
	}

	result, err := uc.entryRepo.PatchBatch(ctx, updates)
	if err != nil {
		return nil, fmt.Errorf("failed to write new order: %w", err)
	}

	slog.Debug("Reordered ledger side",
		"beekeeperID", input.BeekeeperID,
		"side", input.Side,
		"updated", result.Operations,
	)

	return &ReorderEntriesOutput{
		Updated: result.Operations,
		Batches: result.Batches,
	}, nil
}
