package factory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/honey-ledger/backend/internal/application/adapter/adaptertest"
	"github.com/honey-ledger/backend/internal/domain/entity"
)

func TestGetBookUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("book groups lines under shipments and totals everything", func(t *testing.T) {
		factoryRepo := adaptertest.NewFactoryRepo()
		entryRepo := adaptertest.NewEntryRepo()
		fac := entity.NewFactory("Anzer Gıda", "")
		_ = factoryRepo.Create(ctx, fac)

		header := seedShipment(entryRepo, fac.ID, "2024-07-01", "Temmuz")
		lineUC := NewSaveLineUseCase(entryRepo)
		for i, price := range []int64{900, 1000} {
			n := i + 1
			_, err := lineUC.Execute(ctx, SaveLineInput{
				ShipmentID: header.ID,
				Date:       "2024-07-01",
				LineNo:     &n,
				PersonName: "Ali",
				Quantity:   decimal.NewFromInt(10),
				UnitPrice:  decimal.NewFromInt(price),
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		// A payment and a legacy flat entry.
		payUC := NewSavePaymentUseCase(entryRepo)
		if _, err := payUC.Execute(ctx, SavePaymentInput{
			FactoryID: fac.ID,
			Date:      "2024-07-10",
			Amount:    decimal.NewFromInt(5000),
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		legacy := entity.NewEntry(entity.OwnerTypeFactory, fac.ID)
		legacy.Side = entity.SideLeft
		legacy.Date = "2023-05-01"
		q := decimal.NewFromInt(20)
		p := decimal.NewFromInt(100)
		legacy.Quantity = &q
		legacy.Price = &p
		legacy.Description = "Bal"
		_ = entryRepo.Create(ctx, legacy)

		uc := NewGetBookUseCase(factoryRepo, entryRepo)
		out, err := uc.Execute(ctx, GetBookInput{FactoryID: fac.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(out.Shipments) != 1 {
			t.Fatalf("expected 1 shipment, got %d", len(out.Shipments))
		}
		if len(out.Shipments[0].Lines) != 2 {
			t.Fatalf("expected 2 lines, got %d", len(out.Shipments[0].Lines))
		}
		if !out.Shipments[0].Total.Equal(decimal.NewFromInt(19000)) {
			t.Errorf("expected shipment total 19000, got %s", out.Shipments[0].Total)
		}
		// 19000 from lines plus 2000 legacy price×quantity.
		if !out.ShipmentsTotal.Equal(decimal.NewFromInt(21000)) {
			t.Errorf("expected shipments total 21000, got %s", out.ShipmentsTotal)
		}
		if !out.PaymentsTotal.Equal(decimal.NewFromInt(5000)) {
			t.Errorf("expected payments total 5000, got %s", out.PaymentsTotal)
		}
		if !out.Remaining.Equal(decimal.NewFromInt(16000)) {
			t.Errorf("expected remaining 16000, got %s", out.Remaining)
		}
	})

	t.Run("lines sort by number before dates", func(t *testing.T) {
		factoryRepo := adaptertest.NewFactoryRepo()
		entryRepo := adaptertest.NewEntryRepo()
		fac := entity.NewFactory("Fabrika", "")
		_ = factoryRepo.Create(ctx, fac)
		header := seedShipment(entryRepo, fac.ID, "2024-07-01", "Sevkiyat")

		lineUC := NewSaveLineUseCase(entryRepo)
		two, one := 2, 1
		late, err := lineUC.Execute(ctx, SaveLineInput{
			ShipmentID: header.ID,
			Date:       "2024-07-01",
			LineNo:     &two,
			PersonName: "B",
			Quantity:   decimal.NewFromInt(1),
			UnitPrice:  decimal.NewFromInt(1),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		early, err := lineUC.Execute(ctx, SaveLineInput{
			ShipmentID: header.ID,
			Date:       "2024-07-05",
			LineNo:     &one,
			PersonName: "A",
			Quantity:   decimal.NewFromInt(1),
			UnitPrice:  decimal.NewFromInt(1),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		uc := NewGetBookUseCase(factoryRepo, entryRepo)
		out, err := uc.Execute(ctx, GetBookInput{FactoryID: fac.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		lines := out.Shipments[0].Lines
		if lines[0].ID != early.Line.ID || lines[1].ID != late.Line.ID {
			t.Error("expected lines ordered by line number despite dates")
		}
	})

	t.Run("unknown factory returns owner not found", func(t *testing.T) {
		uc := NewGetBookUseCase(adaptertest.NewFactoryRepo(), adaptertest.NewEntryRepo())
		if _, err := uc.Execute(ctx, GetBookInput{FactoryID: uuid.New()}); err == nil {
			t.Error("expected an error for an unknown factory")
		}
	})
}
