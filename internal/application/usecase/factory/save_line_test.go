package factory

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/honey-ledger/backend/internal/application/adapter/adaptertest"
	"github.com/honey-ledger/backend/internal/domain/entity"
	domainerror "github.com/honey-ledger/backend/internal/domain/error"
)

func seedShipment(repo *adaptertest.EntryRepo, factoryID uuid.UUID, date, title string) *entity.Entry {
	header := entity.NewEntry(entity.OwnerTypeFactory, factoryID)
	header.EntryType = entity.EntryTypeShipment
	header.Side = entity.SideLeft
	header.Date = date
	header.Title = title
	header.PaymentStatus = "Bekliyor"
	_ = repo.Create(context.Background(), header)
	return header
}

func seedHoney(repo *adaptertest.EntryRepo, keeperID uuid.UUID, date string, qty, unitPrice int64) *entity.Entry {
	entry := entity.NewEntry(entity.OwnerTypeBeekeeper, keeperID)
	entry.Side = entity.SideLeft
	entry.Date = date
	entry.ItemType = entity.ItemTypeHoney
	entry.Description = "Bal - Çiçek"
	entry.Detail = "Çiçek"
	q := decimal.NewFromInt(qty)
	up := decimal.NewFromInt(unitPrice)
	price := q.Mul(up)
	entry.Quantity = &q
	entry.UnitPrice = &up
	entry.Price = &price
	entry.Unit = "Teneke"
	_ = repo.Create(context.Background(), entry)
	return entry
}

func TestSaveLineUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	factoryID := uuid.New()
	keeperID := uuid.New()

	t.Run("linking a line stamps all five sold fields on the source", func(t *testing.T) {
		repo := adaptertest.NewEntryRepo()
		header := seedShipment(repo, factoryID, "2024-07-01", "Temmuz Sevkiyatı")
		source := seedHoney(repo, keeperID, "2024-06-20", 10, 900)

		uc := NewSaveLineUseCase(repo)
		out, err := uc.Execute(ctx, SaveLineInput{
			ShipmentID:    header.ID,
			Date:          "2024-07-01",
			PersonName:    "Ali Veli",
			Type:          "Çiçek",
			Quantity:      decimal.NewFromInt(10),
			Unit:          "teneke",
			UnitPrice:     decimal.NewFromInt(950),
			PaymentStatus: "Bekliyor",
			SourceEntryID: &source.ID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Warning != "" {
			t.Errorf("unexpected warning: %q", out.Warning)
		}
		if !out.Line.Total.Equal(decimal.NewFromInt(9500)) {
			t.Errorf("expected line total 9500, got %s", out.Line.Total)
		}

		got, _ := repo.FindByID(ctx, source.ID)
		if got.SoldShipmentID == nil || *got.SoldShipmentID != header.ID {
			t.Fatal("expected soldShipmentID to point at the shipment")
		}
		if got.SoldShipmentTitle == nil || *got.SoldShipmentTitle != header.Title {
			t.Error("expected soldShipmentTitle set")
		}
		if got.SoldShipmentDate == nil || *got.SoldShipmentDate != header.Date {
			t.Error("expected soldShipmentDate set")
		}
		if got.SoldPaymentStatus == nil || *got.SoldPaymentStatus != "Bekliyor" {
			t.Error("expected soldPaymentStatus set")
		}
		if got.SoldFactoryID == nil || *got.SoldFactoryID != factoryID {
			t.Error("expected soldFactoryID set")
		}
	})

	t.Run("unlinking clears all five sold fields together", func(t *testing.T) {
		repo := adaptertest.NewEntryRepo()
		header := seedShipment(repo, factoryID, "2024-07-01", "Sevkiyat")
		source := seedHoney(repo, keeperID, "2024-06-20", 10, 900)

		uc := NewSaveLineUseCase(repo)
		created, err := uc.Execute(ctx, SaveLineInput{
			ShipmentID:    header.ID,
			Date:          "2024-07-01",
			PersonName:    "Ali",
			Quantity:      decimal.NewFromInt(10),
			UnitPrice:     decimal.NewFromInt(950),
			SourceEntryID: &source.ID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err = uc.Execute(ctx, SaveLineInput{
			ShipmentID: header.ID,
			LineID:     &created.Line.ID,
			Date:       "2024-07-01",
			PersonName: "Ali",
			Quantity:   decimal.NewFromInt(10),
			UnitPrice:  decimal.NewFromInt(950),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, _ := repo.FindByID(ctx, source.ID)
		if got.SoldShipmentID != nil || got.SoldShipmentTitle != nil || got.SoldShipmentDate != nil ||
			got.SoldPaymentStatus != nil || got.SoldFactoryID != nil {
			t.Error("expected every sold field cleared")
		}
	})

	t.Run("re-pointing a line releases the old source", func(t *testing.T) {
		repo := adaptertest.NewEntryRepo()
		header := seedShipment(repo, factoryID, "2024-07-01", "Sevkiyat")
		first := seedHoney(repo, keeperID, "2024-06-20", 10, 900)
		second := seedHoney(repo, keeperID, "2024-06-25", 5, 1000)

		uc := NewSaveLineUseCase(repo)
		created, err := uc.Execute(ctx, SaveLineInput{
			ShipmentID:    header.ID,
			Date:          "2024-07-01",
			PersonName:    "Ali",
			Quantity:      decimal.NewFromInt(10),
			UnitPrice:     decimal.NewFromInt(950),
			SourceEntryID: &first.ID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err = uc.Execute(ctx, SaveLineInput{
			ShipmentID:    header.ID,
			LineID:        &created.Line.ID,
			Date:          "2024-07-01",
			PersonName:    "Ali",
			Quantity:      decimal.NewFromInt(5),
			UnitPrice:     decimal.NewFromInt(1000),
			SourceEntryID: &second.ID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		old, _ := repo.FindByID(ctx, first.ID)
		if old.SoldShipmentID != nil {
			t.Error("expected the old source to be released")
		}
		now, _ := repo.FindByID(ctx, second.ID)
		if now.SoldShipmentID == nil || *now.SoldShipmentID != header.ID {
			t.Error("expected the new source to carry the reference")
		}
	})

	t.Run("missing source entry saves the line with a warning", func(t *testing.T) {
		repo := adaptertest.NewEntryRepo()
		header := seedShipment(repo, factoryID, "2024-07-01", "Sevkiyat")
		ghost := uuid.New()

		uc := NewSaveLineUseCase(repo)
		out, err := uc.Execute(ctx, SaveLineInput{
			ShipmentID:    header.ID,
			Date:          "2024-07-01",
			PersonName:    "Ali",
			Quantity:      decimal.NewFromInt(10),
			UnitPrice:     decimal.NewFromInt(950),
			SourceEntryID: &ghost,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Warning == "" {
			t.Error("expected a warning about the missing source")
		}
	})

	t.Run("blank unit price falls back to the source price", func(t *testing.T) {
		repo := adaptertest.NewEntryRepo()
		header := seedShipment(repo, factoryID, "2024-07-01", "Sevkiyat")
		source := seedHoney(repo, keeperID, "2024-06-20", 10, 900)

		uc := NewSaveLineUseCase(repo)
		out, err := uc.Execute(ctx, SaveLineInput{
			ShipmentID:    header.ID,
			Date:          "2024-07-01",
			PersonName:    "Ali",
			Quantity:      decimal.NewFromInt(10),
			SourceEntryID: &source.ID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Line.UnitPrice == nil || !out.Line.UnitPrice.Equal(decimal.NewFromInt(900)) {
			t.Errorf("expected unit price 900 from source, got %v", out.Line.UnitPrice)
		}
	})

	t.Run("priceless source blocks the save", func(t *testing.T) {
		repo := adaptertest.NewEntryRepo()
		header := seedShipment(repo, factoryID, "2024-07-01", "Sevkiyat")

		source := entity.NewEntry(entity.OwnerTypeBeekeeper, keeperID)
		source.Side = entity.SideLeft
		source.ItemType = entity.ItemTypeHoney
		source.Date = "2024-06-20"
		_ = repo.Create(ctx, source)

		uc := NewSaveLineUseCase(repo)
		_, err := uc.Execute(ctx, SaveLineInput{
			ShipmentID:    header.ID,
			Date:          "2024-07-01",
			PersonName:    "Ali",
			Quantity:      decimal.NewFromInt(10),
			SourceEntryID: &source.ID,
		})
		if !errors.Is(err, domainerror.ErrSourceEntryNoPrice) {
			t.Errorf("expected ErrSourceEntryNoPrice, got %v", err)
		}
	})

	t.Run("line numbers default to max plus one", func(t *testing.T) {
		repo := adaptertest.NewEntryRepo()
		header := seedShipment(repo, factoryID, "2024-07-01", "Sevkiyat")

		uc := NewSaveLineUseCase(repo)
		for want := 1; want <= 3; want++ {
			out, err := uc.Execute(ctx, SaveLineInput{
				ShipmentID: header.ID,
				Date:       "2024-07-01",
				PersonName: "Ali",
				Quantity:   decimal.NewFromInt(1),
				UnitPrice:  decimal.NewFromInt(100),
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Line.LineNo == nil || *out.Line.LineNo != want {
				t.Errorf("expected line number %d, got %v", want, out.Line.LineNo)
			}
		}
	})
}
