package reconciliation

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/honey-ledger/backend/internal/application/adapter/adaptertest"
	"github.com/honey-ledger/backend/internal/domain/entity"
	domainerror "github.com/honey-ledger/backend/internal/domain/error"
)

func seedEntry(repo *adaptertest.EntryRepo, ownerType entity.OwnerType, ownerID uuid.UUID, mutate func(*entity.Entry)) *entity.Entry {
	entry := entity.NewEntry(ownerType, ownerID)
	entry.Date = "2025-03-01"
	mutate(entry)
	repo.Entries[entry.ID] = entry
	return entry
}

func TestNormalizeEntriesUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("beekeeper left side rebuilds the honey description and detail", func(t *testing.T) {
		repo := adaptertest.NewEntryRepo()
		keeperID := uuid.New()
		entry := seedEntry(repo, entity.OwnerTypeBeekeeper, keeperID, func(e *entity.Entry) {
			e.Side = entity.SideLeft
			e.Description = "bal - çiçek balı"
			e.Unit = "teneke"
		})

		uc := NewNormalizeEntriesUseCase(repo)
		out, err := uc.Execute(ctx, NormalizeEntriesInput{OwnerType: entity.OwnerTypeBeekeeper, OwnerID: keeperID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Updated != 1 {
			t.Fatalf("expected 1 update, got %d", out.Updated)
		}

		stored := repo.Entries[entry.ID]
		if stored.Description != "Bal - Çiçek Balı" {
			t.Errorf("expected canonical description, got %q", stored.Description)
		}
		if stored.Detail != "Çiçek Balı" {
			t.Errorf("expected backfilled detail, got %q", stored.Detail)
		}
		if stored.Unit != "Teneke" {
			t.Errorf("expected title-cased unit, got %q", stored.Unit)
		}
	})

	t.Run("beekeeper right side title-cases the description", func(t *testing.T) {
		repo := adaptertest.NewEntryRepo()
		keeperID := uuid.New()
		entry := seedEntry(repo, entity.OwnerTypeBeekeeper, keeperID, func(e *entity.Entry) {
			e.Side = entity.SideRight
			e.Description = "boş teneke"
			e.Unit = "Adet"
		})

		uc := NewNormalizeEntriesUseCase(repo)
		if _, err := uc.Execute(ctx, NormalizeEntriesInput{OwnerType: entity.OwnerTypeBeekeeper, OwnerID: keeperID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := repo.Entries[entry.ID].Description; got != "Boş Teneke" {
			t.Errorf("expected Boş Teneke, got %q", got)
		}
	})

	t.Run("the pass is idempotent", func(t *testing.T) {
		repo := adaptertest.NewEntryRepo()
		keeperID := uuid.New()
		seedEntry(repo, entity.OwnerTypeBeekeeper, keeperID, func(e *entity.Entry) {
			e.Side = entity.SideLeft
			e.Description = "bal - kestane"
			e.Unit = "kilo"
		})

		uc := NewNormalizeEntriesUseCase(repo)
		if _, err := uc.Execute(ctx, NormalizeEntriesInput{OwnerType: entity.OwnerTypeBeekeeper, OwnerID: keeperID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.Execute(ctx, NormalizeEntriesInput{OwnerType: entity.OwnerTypeBeekeeper, OwnerID: keeperID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if second.Updated != 0 {
			t.Errorf("expected no writes on the second run, got %d", second.Updated)
		}
	})

	t.Run("factory entries normalize per entry type", func(t *testing.T) {
		repo := adaptertest.NewEntryRepo()
		factoryID := uuid.New()
		header := seedEntry(repo, entity.OwnerTypeFactory, factoryID, func(e *entity.Entry) {
			e.EntryType = entity.EntryTypeShipment
			e.Side = entity.SideLeft
			e.Title = "mart sevkiyatı"
		})
		line := seedEntry(repo, entity.OwnerTypeFactory, factoryID, func(e *entity.Entry) {
			e.EntryType = entity.EntryTypeShipmentLine
			e.ShipmentID = &header.ID
			e.PersonName = "MEHMET YILMAZ"
			e.Type = "çiçek"
			e.PaymentStatus = "ödendi"
			e.Unit = "ADET"
		})
		payment := seedEntry(repo, entity.OwnerTypeFactory, factoryID, func(e *entity.Entry) {
			e.EntryType = entity.EntryTypePayment
			e.Side = entity.SideRight
			e.Note = "nakit ödeme"
		})
		legacy := seedEntry(repo, entity.OwnerTypeFactory, factoryID, func(e *entity.Entry) {
			e.Side = entity.SideLeft
			e.Description = "eski kayıt"
			e.Unit = "kg"
		})

		uc := NewNormalizeEntriesUseCase(repo)
		out, err := uc.Execute(ctx, NormalizeEntriesInput{OwnerType: entity.OwnerTypeFactory, OwnerID: factoryID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Updated != 4 {
			t.Errorf("expected 4 updates, got %d", out.Updated)
		}
		if got := repo.Entries[header.ID].Title; got != "Mart Sevkiyatı" {
			t.Errorf("expected canonical title, got %q", got)
		}
		storedLine := repo.Entries[line.ID]
		if storedLine.PersonName != "Mehmet Yılmaz" || storedLine.Type != "Çiçek" || storedLine.PaymentStatus != "Ödendi" || storedLine.Unit != "Adet" {
			t.Errorf("unexpected line fields: %+v", storedLine)
		}
		if got := repo.Entries[payment.ID].Note; got != "Nakit Ödeme" {
			t.Errorf("expected canonical note, got %q", got)
		}
		storedLegacy := repo.Entries[legacy.ID]
		if storedLegacy.Description != "Eski Kayıt" || storedLegacy.Unit != "Kg" {
			t.Errorf("unexpected legacy fields: %+v", storedLegacy)
		}
	})

	t.Run("supplier payments normalize the note only", func(t *testing.T) {
		repo := adaptertest.NewEntryRepo()
		supplierID := uuid.New()
		payment := seedEntry(repo, entity.OwnerTypeSupplier, supplierID, func(e *entity.Entry) {
			e.EntryType = entity.EntryTypePayment
			e.Side = entity.SideRight
			e.Note = "ilk taksit"
			e.Description = "nakit"
		})

		uc := NewNormalizeEntriesUseCase(repo)
		if _, err := uc.Execute(ctx, NormalizeEntriesInput{OwnerType: entity.OwnerTypeSupplier, OwnerID: supplierID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		stored := repo.Entries[payment.ID]
		if stored.Note != "İlk Taksit" {
			t.Errorf("expected canonical note, got %q", stored.Note)
		}
		if stored.Description != "nakit" {
			t.Errorf("expected payment description untouched, got %q", stored.Description)
		}
	})

	t.Run("unknown owner type is rejected", func(t *testing.T) {
		uc := NewNormalizeEntriesUseCase(adaptertest.NewEntryRepo())
		_, err := uc.Execute(ctx, NormalizeEntriesInput{OwnerType: "warehouse", OwnerID: uuid.New()})
		if !errors.Is(err, domainerror.ErrUnknownOwnerType) {
			t.Errorf("expected ErrUnknownOwnerType, got %v", err)
		}
	})
}
