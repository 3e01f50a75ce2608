package reconciliation

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/honey-ledger/backend/internal/application/adapter/adaptertest"
	"github.com/honey-ledger/backend/internal/domain/entity"
)

func TestBackfillSoldReferencesUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	seedShipment := func(repo *adaptertest.EntryRepo, factoryID uuid.UUID, title, date string) *entity.Entry {
		return seedEntry(repo, entity.OwnerTypeFactory, factoryID, func(e *entity.Entry) {
			e.EntryType = entity.EntryTypeShipment
			e.Side = entity.SideLeft
			e.Title = title
			e.Date = date
		})
	}
	seedLine := func(repo *adaptertest.EntryRepo, factoryID uuid.UUID, shipmentID, sourceID *uuid.UUID, status string) *entity.Entry {
		return seedEntry(repo, entity.OwnerTypeFactory, factoryID, func(e *entity.Entry) {
			e.EntryType = entity.EntryTypeShipmentLine
			e.ShipmentID = shipmentID
			e.SourceEntryID = sourceID
			e.PaymentStatus = status
		})
	}
	seedHoney := func(repo *adaptertest.EntryRepo, keeperID uuid.UUID) *entity.Entry {
		return seedEntry(repo, entity.OwnerTypeBeekeeper, keeperID, func(e *entity.Entry) {
			e.Side = entity.SideLeft
			e.ItemType = entity.ItemTypeHoney
			e.Description = "Bal - Kestane"
		})
	}

	t.Run("drifted source fields are realigned to the header", func(t *testing.T) {
		repo := adaptertest.NewEntryRepo()
		factoryID := uuid.New()
		honey := seedHoney(repo, uuid.New())
		shipment := seedShipment(repo, factoryID, "Nisan Sevkiyatı", "2025-04-10")
		seedLine(repo, factoryID, &shipment.ID, &honey.ID, "Ödendi")

		// Simulate a header rename that never reached the source.
		staleTitle := "Eski Başlık"
		stored := repo.Entries[honey.ID]
		stored.SoldShipmentID = &shipment.ID
		stored.SoldShipmentTitle = &staleTitle
		stored.SoldShipmentDate = &shipment.Date
		stored.SoldFactoryID = &factoryID

		uc := NewBackfillSoldReferencesUseCase(repo)
		out, err := uc.Execute(ctx, BackfillSoldReferencesInput{FactoryID: factoryID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Examined != 1 || out.Updated != 1 {
			t.Fatalf("expected 1 examined and 1 updated, got %+v", out)
		}

		source := repo.Entries[honey.ID]
		if source.SoldShipmentTitle == nil || *source.SoldShipmentTitle != "Nisan Sevkiyatı" {
			t.Errorf("expected realigned title, got %v", source.SoldShipmentTitle)
		}
		if source.SoldPaymentStatus == nil || *source.SoldPaymentStatus != "Ödendi" {
			t.Errorf("expected payment status stamped, got %v", source.SoldPaymentStatus)
		}
	})

	t.Run("aligned sources are not rewritten", func(t *testing.T) {
		repo := adaptertest.NewEntryRepo()
		factoryID := uuid.New()
		honey := seedHoney(repo, uuid.New())
		shipment := seedShipment(repo, factoryID, "Nisan Sevkiyatı", "2025-04-10")
		seedLine(repo, factoryID, &shipment.ID, &honey.ID, "")

		uc := NewBackfillSoldReferencesUseCase(repo)
		first, err := uc.Execute(ctx, BackfillSoldReferencesInput{FactoryID: factoryID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.Updated != 1 {
			t.Fatalf("expected the first run to stamp the source, got %+v", first)
		}

		second, err := uc.Execute(ctx, BackfillSoldReferencesInput{FactoryID: factoryID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if second.Updated != 0 {
			t.Errorf("expected no writes on the second run, got %+v", second)
		}
	})

	t.Run("missing source entries are skipped", func(t *testing.T) {
		repo := adaptertest.NewEntryRepo()
		factoryID := uuid.New()
		shipment := seedShipment(repo, factoryID, "Mayıs Sevkiyatı", "2025-05-01")
		ghost := uuid.New()
		seedLine(repo, factoryID, &shipment.ID, &ghost, "Ödenmedi")

		uc := NewBackfillSoldReferencesUseCase(repo)
		out, err := uc.Execute(ctx, BackfillSoldReferencesInput{FactoryID: factoryID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Skipped != 1 || out.Updated != 0 {
			t.Errorf("expected 1 skip and no writes, got %+v", out)
		}
	})

	t.Run("orphan lines without a header are ignored", func(t *testing.T) {
		repo := adaptertest.NewEntryRepo()
		factoryID := uuid.New()
		honey := seedHoney(repo, uuid.New())
		gone := uuid.New()
		seedLine(repo, factoryID, &gone, &honey.ID, "Ödendi")

		uc := NewBackfillSoldReferencesUseCase(repo)
		out, err := uc.Execute(ctx, BackfillSoldReferencesInput{FactoryID: factoryID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Examined != 0 || out.Updated != 0 {
			t.Errorf("expected the orphan line to be ignored, got %+v", out)
		}
		if repo.Entries[honey.ID].IsSold() {
			t.Error("expected the inventory entry to stay unsold")
		}
	})
}
