package beekeeper

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/honey-ledger/backend/internal/application/adapter"
	"github.com/honey-ledger/backend/internal/application/adapter/adaptertest"
	"github.com/honey-ledger/backend/internal/domain/entity"
	domainerror "github.com/honey-ledger/backend/internal/domain/error"
	"github.com/honey-ledger/backend/internal/domain/valueobject"
)

func patchOrder(n int) adapter.EntryPatch {
	return adapter.EntryPatch{Order: &n}
}

func seedEntry(repo *adaptertest.EntryRepo, keeperID uuid.UUID, side entity.Side, date string, price int64, hidden bool) *entity.Entry {
	entry := entity.NewEntry(entity.OwnerTypeBeekeeper, keeperID)
	entry.Side = side
	entry.Date = date
	p := decimal.NewFromInt(price)
	entry.Price = &p
	entry.Hidden = hidden
	_ = repo.Create(context.Background(), entry)
	return entry
}

func TestGetBookUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("balance reflects the side totals", func(t *testing.T) {
		keeperRepo := adaptertest.NewBeekeeperRepo()
		entryRepo := adaptertest.NewEntryRepo()
		keeper := entity.NewBeekeeper(7, "Ali Veli", "")
		_ = keeperRepo.Create(ctx, keeper)

		seedEntry(entryRepo, keeper.ID, entity.SideLeft, "2024-03-01", 5000, false)
		seedEntry(entryRepo, keeper.ID, entity.SideLeft, "2024-03-05", 2500, false)
		seedEntry(entryRepo, keeper.ID, entity.SideRight, "2024-03-10", 3000, false)

		uc := NewGetBookUseCase(keeperRepo, entryRepo)
		out, err := uc.Execute(ctx, GetBookInput{BeekeeperID: keeper.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !out.Balance.Received.Equal(decimal.NewFromInt(7500)) {
			t.Errorf("expected received 7500, got %s", out.Balance.Received)
		}
		if !out.Balance.Net.Equal(decimal.NewFromInt(4500)) {
			t.Errorf("expected net 4500, got %s", out.Balance.Net)
		}
		if out.Balance.Status != valueobject.BalanceOwedToOwner {
			t.Errorf("expected status owedToOwner, got %s", out.Balance.Status)
		}
	})

	t.Run("given exceeding received flips the status", func(t *testing.T) {
		keeperRepo := adaptertest.NewBeekeeperRepo()
		entryRepo := adaptertest.NewEntryRepo()
		keeper := entity.NewBeekeeper(1, "Ayşe", "")
		_ = keeperRepo.Create(ctx, keeper)

		seedEntry(entryRepo, keeper.ID, entity.SideLeft, "2024-01-01", 1000, false)
		seedEntry(entryRepo, keeper.ID, entity.SideRight, "2024-01-02", 4000, false)

		uc := NewGetBookUseCase(keeperRepo, entryRepo)
		out, err := uc.Execute(ctx, GetBookInput{BeekeeperID: keeper.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Balance.Status != valueobject.BalanceOwedByOwner {
			t.Errorf("expected status owedByOwner, got %s", out.Balance.Status)
		}
	})

	t.Run("hidden entries are excluded from lists and totals", func(t *testing.T) {
		keeperRepo := adaptertest.NewBeekeeperRepo()
		entryRepo := adaptertest.NewEntryRepo()
		keeper := entity.NewBeekeeper(2, "Mehmet", "")
		_ = keeperRepo.Create(ctx, keeper)

		seedEntry(entryRepo, keeper.ID, entity.SideLeft, "2024-01-01", 1000, false)
		seedEntry(entryRepo, keeper.ID, entity.SideLeft, "2024-01-02", 999, true)

		uc := NewGetBookUseCase(keeperRepo, entryRepo)
		out, err := uc.Execute(ctx, GetBookInput{BeekeeperID: keeper.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Left) != 1 {
			t.Fatalf("expected 1 visible left entry, got %d", len(out.Left))
		}
		if !out.Balance.Received.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected hidden entry excluded from total, got %s", out.Balance.Received)
		}

		// Requesting hidden entries returns them but keeps them out of totals.
		out, err = uc.Execute(ctx, GetBookInput{BeekeeperID: keeper.ID, IncludeHidden: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Left) != 2 {
			t.Fatalf("expected 2 left entries with hidden included, got %d", len(out.Left))
		}
		if !out.Balance.Received.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected total unchanged with hidden included, got %s", out.Balance.Received)
		}
	})

	t.Run("manual order wins over dates when both entries carry one", func(t *testing.T) {
		keeperRepo := adaptertest.NewBeekeeperRepo()
		entryRepo := adaptertest.NewEntryRepo()
		keeper := entity.NewBeekeeper(3, "Fatma", "")
		_ = keeperRepo.Create(ctx, keeper)

		first := seedEntry(entryRepo, keeper.ID, entity.SideLeft, "2024-06-01", 100, false)
		second := seedEntry(entryRepo, keeper.ID, entity.SideLeft, "2024-01-01", 200, false)
		one, two := 1, 2
		_ = entryRepo.Patch(ctx, first.ID, patchOrder(one))
		_ = entryRepo.Patch(ctx, second.ID, patchOrder(two))

		uc := NewGetBookUseCase(keeperRepo, entryRepo)
		out, err := uc.Execute(ctx, GetBookInput{BeekeeperID: keeper.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Left[0].ID != first.ID {
			t.Errorf("expected manually ordered entry first despite later date")
		}
	})

	t.Run("unknown beekeeper returns owner not found", func(t *testing.T) {
		uc := NewGetBookUseCase(adaptertest.NewBeekeeperRepo(), adaptertest.NewEntryRepo())
		_, err := uc.Execute(ctx, GetBookInput{BeekeeperID: uuid.New()})
		if !errors.Is(err, domainerror.ErrOwnerNotFound) {
			t.Errorf("expected ErrOwnerNotFound, got %v", err)
		}
	})
}
