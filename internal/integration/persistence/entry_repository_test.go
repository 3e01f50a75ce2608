package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/honey-ledger/backend/internal/application/adapter"
	"github.com/honey-ledger/backend/internal/domain/entity"
	domainerror "github.com/honey-ledger/backend/internal/domain/error"
	"github.com/honey-ledger/backend/internal/integration/persistence/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&model.EntryModel{},
		&model.BeekeeperModel{},
		&model.FactoryModel{},
		&model.SupplierModel{},
		&model.ProductModel{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func newTestEntry(ownerType entity.OwnerType, ownerID uuid.UUID, date string) *entity.Entry {
	entry := entity.NewEntry(ownerType, ownerID)
	entry.Side = entity.SideLeft
	entry.Date = date
	entry.Description = "Bal - Kestane"
	entry.ItemType = entity.ItemTypeHoney
	qty := decimal.NewFromInt(10)
	entry.Quantity = &qty
	entry.Unit = "Teneke"
	return entry
}

func TestEntryRepository_PatchSoldFields(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewEntryRepository(db, 450)

	keeperID := uuid.New()
	entry := newTestEntry(entity.OwnerTypeBeekeeper, keeperID, "2025-03-01")
	if err := repo.Create(ctx, entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ref := adapter.SoldReference{
		ShipmentID:    uuid.New(),
		ShipmentTitle: "Mart Sevkiyatı",
		ShipmentDate:  "2025-03-15",
		PaymentStatus: "Ödendi",
		FactoryID:     uuid.New(),
	}
	if err := repo.Patch(ctx, entry.ID, adapter.EntryPatch{SetSold: &ref}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, err := repo.FindByID(ctx, entry.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !stored.IsSold() {
		t.Fatal("expected the entry to read as sold")
	}
	if stored.SoldShipmentID == nil || *stored.SoldShipmentID != ref.ShipmentID {
		t.Errorf("expected shipment id stamped, got %v", stored.SoldShipmentID)
	}
	if stored.SoldShipmentTitle == nil || *stored.SoldShipmentTitle != ref.ShipmentTitle {
		t.Errorf("expected shipment title stamped, got %v", stored.SoldShipmentTitle)
	}
	if stored.SoldFactoryID == nil || *stored.SoldFactoryID != ref.FactoryID {
		t.Errorf("expected factory id stamped, got %v", stored.SoldFactoryID)
	}

	if err := repo.Patch(ctx, entry.ID, adapter.EntryPatch{ClearSold: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cleared, err := repo.FindByID(ctx, entry.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cleared.IsSold() {
		t.Error("expected every sold field cleared")
	}
	if cleared.SoldShipmentDate != nil || cleared.SoldPaymentStatus != nil || cleared.SoldFactoryID != nil {
		t.Error("expected sold date, status and factory cleared together")
	}
}

func TestEntryRepository_PatchBatchChunks(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewEntryRepository(db, 4)

	keeperID := uuid.New()
	var updates []adapter.EntryUpdate
	hidden := true
	for i := 0; i < 10; i++ {
		entry := newTestEntry(entity.OwnerTypeBeekeeper, keeperID, "2025-03-01")
		if err := repo.Create(ctx, entry); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		updates = append(updates, adapter.EntryUpdate{
			ID:    entry.ID,
			Patch: adapter.EntryPatch{Hidden: &hidden},
		})
	}

	result, err := repo.PatchBatch(ctx, updates)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Operations != 10 || result.Batches != 3 {
		t.Errorf("expected 10 operations over 3 chunks, got %+v", result)
	}

	entries, err := repo.FindByOwner(ctx, entity.OwnerTypeBeekeeper, keeperID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, e := range entries {
		if !e.Hidden {
			t.Fatal("expected every entry hidden after the batch")
		}
	}
}

func TestEntryRepository_DeleteBatchChunks(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewEntryRepository(db, 3)

	keeperID := uuid.New()
	var ids []uuid.UUID
	for i := 0; i < 7; i++ {
		entry := newTestEntry(entity.OwnerTypeBeekeeper, keeperID, "2025-03-01")
		if err := repo.Create(ctx, entry); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		ids = append(ids, entry.ID)
	}

	result, err := repo.DeleteBatch(ctx, ids)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Operations != 7 || result.Batches != 3 {
		t.Errorf("expected 7 operations over 3 chunks, got %+v", result)
	}

	remaining, err := repo.FindByOwner(ctx, entity.OwnerTypeBeekeeper, keeperID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(remaining) != 0 {
		t.Errorf("expected an empty partition, got %d entries", len(remaining))
	}
}

func TestEntryRepository_FindShipmentLines(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewEntryRepository(db, 450)

	factoryID := uuid.New()
	header := entity.NewEntry(entity.OwnerTypeFactory, factoryID)
	header.EntryType = entity.EntryTypeShipment
	header.Side = entity.SideLeft
	header.Title = "Nisan Sevkiyatı"
	header.Date = "2025-04-01"
	if err := repo.Create(ctx, header); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 3; i >= 1; i-- {
		line := entity.NewEntry(entity.OwnerTypeFactory, factoryID)
		line.EntryType = entity.EntryTypeShipmentLine
		line.ShipmentID = &header.ID
		lineNo := i
		line.LineNo = &lineNo
		line.PersonName = "Mehmet Yılmaz"
		line.Date = "2025-04-02"
		if err := repo.Create(ctx, line); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	lines, err := repo.FindShipmentLines(ctx, header.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if line.LineNo == nil || *line.LineNo != i+1 {
			t.Errorf("expected lines ordered by line number, got %v at %d", line.LineNo, i)
		}
	}
}

func TestEntryRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewEntryRepository(db, 450)

	if _, err := repo.FindByID(ctx, uuid.New()); !errors.Is(err, domainerror.ErrEntryNotFound) {
		t.Errorf("expected ErrEntryNotFound, got %v", err)
	}
	if err := repo.Delete(ctx, uuid.New()); !errors.Is(err, domainerror.ErrEntryNotFound) {
		t.Errorf("expected ErrEntryNotFound, got %v", err)
	}
	hidden := true
	if err := repo.Patch(ctx, uuid.New(), adapter.EntryPatch{Hidden: &hidden}); !errors.Is(err, domainerror.ErrEntryNotFound) {
		t.Errorf("expected ErrEntryNotFound, got %v", err)
	}
}
