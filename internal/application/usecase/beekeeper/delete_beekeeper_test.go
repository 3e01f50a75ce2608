package beekeeper

import (
	"context"
	"errors"
	"testing"

	"github.com/honey-ledger/backend/internal/application/adapter/adaptertest"
	"github.com/honey-ledger/backend/internal/domain/entity"
	domainerror "github.com/honey-ledger/backend/internal/domain/error"
)

func TestDeleteBeekeeperUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("cascade deletes entries in bounded batches", func(t *testing.T) {
		keeperRepo := adaptertest.NewBeekeeperRepo()
		entryRepo := adaptertest.NewEntryRepo()
		keeper := entity.NewBeekeeper(5, "Hasan", "")
		_ = keeperRepo.Create(ctx, keeper)

		for i := 0; i < 1000; i++ {
			seedEntry(entryRepo, keeper.ID, entity.SideLeft, "2024-01-01", 10, false)
		}

		uc := NewDeleteBeekeeperUseCase(keeperRepo, entryRepo)
		out, err := uc.Execute(ctx, DeleteBeekeeperInput{BeekeeperID: keeper.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.EntriesDeleted != 1000 {
			t.Errorf("expected 1000 entries deleted, got %d", out.EntriesDeleted)
		}
		// 450 + 450 + 100.
		if out.Batches != 3 {
			t.Errorf("expected 3 batches, got %d", out.Batches)
		}
		if len(entryRepo.Entries) != 0 {
			t.Errorf("expected no entries left, got %d", len(entryRepo.Entries))
		}
		if _, err := keeperRepo.FindByID(ctx, keeper.ID); err == nil {
			t.Error("expected the beekeeper record to be gone")
		}
	})

	t.Run("partial batch failure keeps the owner and reports the cascade", func(t *testing.T) {
		keeperRepo := adaptertest.NewBeekeeperRepo()
		entryRepo := adaptertest.NewEntryRepo()
		entryRepo.FailAfterBatches = 1
		keeper := entity.NewBeekeeper(6, "Osman", "")
		_ = keeperRepo.Create(ctx, keeper)

		for i := 0; i < 600; i++ {
			seedEntry(entryRepo, keeper.ID, entity.SideLeft, "2024-01-01", 10, false)
		}

		uc := NewDeleteBeekeeperUseCase(keeperRepo, entryRepo)
		_, err := uc.Execute(ctx, DeleteBeekeeperInput{BeekeeperID: keeper.ID})
		if !errors.Is(err, domainerror.ErrCascadeIncomplete) {
			t.Fatalf("expected ErrCascadeIncomplete, got %v", err)
		}

		// The first committed chunk stays deleted; the owner survives
		// so the cascade can be retried.
		if len(entryRepo.Entries) != 150 {
			t.Errorf("expected 150 entries remaining, got %d", len(entryRepo.Entries))
		}
		if _, err := keeperRepo.FindByID(ctx, keeper.ID); err != nil {
			t.Error("expected the beekeeper record to remain")
		}
	})
}
