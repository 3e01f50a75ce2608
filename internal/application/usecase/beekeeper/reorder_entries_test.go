package beekeeper

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/honey-ledger/backend/internal/application/adapter/adaptertest"
	"github.com/honey-ledger/backend/internal/domain/entity"
	domainerror "github.com/honey-ledger/backend/internal/domain/error"
)

func TestReorderEntriesUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	keeperID := uuid.New()

	setup := func() (*adaptertest.EntryRepo, []uuid.UUID) {
		repo := adaptertest.NewEntryRepo()
		ids := make([]uuid.UUID, 0, 3)
		for i, date := range []string{"2024-01-01", "2024-01-02", "2024-01-03"} {
			e := seedEntry(repo, keeperID, entity.SideLeft, date, 100, false)
			order := i + 1
			_ = repo.Patch(ctx, e.ID, patchOrder(order))
			ids = append(ids, e.ID)
		}
		return repo, ids
	}

	t.Run("moving an entry renumbers the side 1..n", func(t *testing.T) {
		repo, ids := setup()
		uc := NewReorderEntriesUseCase(repo)

		// Move the last entry to the front.
		out, err := uc.Execute(ctx, ReorderEntriesInput{
			BeekeeperID: keeperID,
			Side:        entity.SideLeft,
			OrderedIDs:  []uuid.UUID{ids[2], ids[0], ids[1]},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Updated != 3 {
			t.Errorf("expected 3 order writes, got %d", out.Updated)
		}

		wantOrder := map[uuid.UUID]int{ids[2]: 1, ids[0]: 2, ids[1]: 3}
		for id, want := range wantOrder {
			entry, _ := repo.FindByID(ctx, id)
			if entry.Order == nil || *entry.Order != want {
				t.Errorf("entry %s: expected order %d, got %v", id, want, entry.Order)
			}
		}
	})

	t.Run("unchanged positions are not rewritten", func(t *testing.T) {
		repo, ids := setup()
		uc := NewReorderEntriesUseCase(repo)

		// Swap only the last two; the first keeps position 1.
		out, err := uc.Execute(ctx, ReorderEntriesInput{
			BeekeeperID: keeperID,
			Side:        entity.SideLeft,
			OrderedIDs:  []uuid.UUID{ids[0], ids[2], ids[1]},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Updated != 2 {
			t.Errorf("expected 2 order writes, got %d", out.Updated)
		}
	})

	t.Run("identity reorder writes nothing", func(t *testing.T) {
		repo, ids := setup()
		uc := NewReorderEntriesUseCase(repo)

		out, err := uc.Execute(ctx, ReorderEntriesInput{
			BeekeeperID: keeperID,
			Side:        entity.SideLeft,
			OrderedIDs:  ids,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Updated != 0 || out.Batches != 0 {
			t.Errorf("expected no writes, got %d updates in %d batches", out.Updated, out.Batches)
		}
	})

	t.Run("entry from the other side is rejected", func(t *testing.T) {
		repo, ids := setup()
		stray := seedEntry(repo, keeperID, entity.SideRight, "2024-02-01", 100, false)
		uc := NewReorderEntriesUseCase(repo)

		_, err := uc.Execute(ctx, ReorderEntriesInput{
			BeekeeperID: keeperID,
			Side:        entity.SideLeft,
			OrderedIDs:  []uuid.UUID{ids[0], stray.ID},
		})
		if !errors.Is(err, domainerror.ErrEntryNotInSide) {
			t.Errorf("expected ErrEntryNotInSide, got %v", err)
		}
	})
}
