package beekeeper

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/honey-ledger/backend/internal/application/adapter/adaptertest"
	"github.com/honey-ledger/backend/internal/domain/entity"
	domainerror "github.com/honey-ledger/backend/internal/domain/error"
	"github.com/honey-ledger/backend/internal/domain/valueobject"
)

func TestSaveReceivedEntryUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	keeperID := uuid.New()

	t.Run("honey entry builds the legacy description and tin unit", func(t *testing.T) {
		repo := adaptertest.NewEntryRepo()
		uc := NewSaveReceivedEntryUseCase(repo)

		out, err := uc.Execute(ctx, SaveReceivedEntryInput{
			BeekeeperID: keeperID,
			Date:        "2024-05-10",
			ItemType:    entity.ItemTypeHoney,
			Detail:      "çiçek balı",
			Quantity:    decimal.NewFromInt(10),
			UnitPrice:   decimal.NewFromInt(900),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Entry.Description != "Bal - Çiçek Balı" {
			t.Errorf("expected description %q, got %q", "Bal - Çiçek Balı", out.Entry.Description)
		}
		if out.Entry.Unit != "Teneke" {
			t.Errorf("expected unit Teneke, got %q", out.Entry.Unit)
		}
		if out.Entry.DisplayUnit != "Adet" {
			t.Errorf("expected tins to display as Adet, got %q", out.Entry.DisplayUnit)
		}
		if !out.Entry.Price.Equal(decimal.NewFromInt(9000)) {
			t.Errorf("expected price 9000, got %s", out.Entry.Price)
		}
		if out.Entry.Side != entity.SideLeft {
			t.Errorf("expected left side, got %s", out.Entry.Side)
		}
	})

	t.Run("wax entry uses Kg and no detail", func(t *testing.T) {
		repo := adaptertest.NewEntryRepo()
		uc := NewSaveReceivedEntryUseCase(repo)

		out, err := uc.Execute(ctx, SaveReceivedEntryInput{
			BeekeeperID: keeperID,
			Date:        "2024-05-10",
			ItemType:    entity.ItemTypeWax,
			Detail:      "should be dropped",
			Quantity:    decimal.NewFromInt(3),
			UnitPrice:   decimal.NewFromInt(200),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Entry.Description != entity.ItemTypeWax || out.Entry.Unit != "Kg" {
			t.Errorf("expected Mum/Kg, got %q/%q", out.Entry.Description, out.Entry.Unit)
		}
		if out.Entry.Detail != "" {
			t.Errorf("expected empty detail for wax, got %q", out.Entry.Detail)
		}
	})

	t.Run("invalid date is rejected", func(t *testing.T) {
		uc := NewSaveReceivedEntryUseCase(adaptertest.NewEntryRepo())
		_, err := uc.Execute(ctx, SaveReceivedEntryInput{
			BeekeeperID: keeperID,
			Date:        "10.05.2024",
			ItemType:    entity.ItemTypeHoney,
			Quantity:    decimal.NewFromInt(1),
			UnitPrice:   decimal.NewFromInt(1),
		})
		if !errors.Is(err, domainerror.ErrInvalidEntryDate) {
			t.Errorf("expected ErrInvalidEntryDate, got %v", err)
		}
	})

	t.Run("zero quantity is rejected", func(t *testing.T) {
		uc := NewSaveReceivedEntryUseCase(adaptertest.NewEntryRepo())
		_, err := uc.Execute(ctx, SaveReceivedEntryInput{
			BeekeeperID: keeperID,
			Date:        "2024-05-10",
			ItemType:    entity.ItemTypeHoney,
			Quantity:    decimal.Zero,
			UnitPrice:   decimal.NewFromInt(1),
		})
		if !errors.Is(err, domainerror.ErrInvalidQuantity) {
			t.Errorf("expected ErrInvalidQuantity, got %v", err)
		}
	})

	t.Run("update keeps identity and rewrites amounts", func(t *testing.T) {
		repo := adaptertest.NewEntryRepo()
		uc := NewSaveReceivedEntryUseCase(repo)

		created, err := uc.Execute(ctx, SaveReceivedEntryInput{
			BeekeeperID: keeperID,
			Date:        "2024-05-10",
			ItemType:    entity.ItemTypeHoney,
			Detail:      "Çiçek",
			Quantity:    decimal.NewFromInt(10),
			UnitPrice:   decimal.NewFromInt(900),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		updated, err := uc.Execute(ctx, SaveReceivedEntryInput{
			BeekeeperID: keeperID,
			EntryID:     &created.Entry.ID,
			Date:        "2024-05-11",
			ItemType:    entity.ItemTypeHoney,
			Detail:      "Çam",
			Quantity:    decimal.NewFromInt(5),
			UnitPrice:   decimal.NewFromInt(1000),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Entry.ID != created.Entry.ID {
			t.Errorf("expected update to keep the entry id")
		}
		if !updated.Entry.Price.Equal(decimal.NewFromInt(5000)) {
			t.Errorf("expected recomputed price 5000, got %s", updated.Entry.Price)
		}
	})
}

func TestSaveGivenEntryUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	keeperID := uuid.New()
	pricing := valueobject.DefaultPricingTable()

	t.Run("bulk discount applies per complete dozen", func(t *testing.T) {
		uc := NewSaveGivenEntryUseCase(adaptertest.NewEntryRepo(), pricing)

		out, err := uc.Execute(ctx, SaveGivenEntryInput{
			BeekeeperID: keeperID,
			Date:        "2024-05-10",
			ItemType:    entity.ItemTypeMaterial,
			Description: "RULAMIT",
			Quantity:    decimal.NewFromInt(25),
			Unit:        "kutu",
			UnitPrice:   decimal.NewFromInt(90),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 2 full dozens at 1000 plus one unit at 90.
		if !out.Entry.Price.Equal(decimal.NewFromInt(2090)) {
			t.Errorf("expected price 2090, got %s", out.Entry.Price)
		}
	})

	t.Run("below a dozen prices flat", func(t *testing.T) {
		uc := NewSaveGivenEntryUseCase(adaptertest.NewEntryRepo(), pricing)

		out, err := uc.Execute(ctx, SaveGivenEntryInput{
			BeekeeperID: keeperID,
			Date:        "2024-05-10",
			ItemType:    entity.ItemTypeMaterial,
			Description: "Varoset",
			Quantity:    decimal.NewFromInt(11),
			UnitPrice:   decimal.NewFromInt(90),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Entry.Price.Equal(decimal.NewFromInt(990)) {
			t.Errorf("expected price 990, got %s", out.Entry.Price)
		}
	})

	t.Run("non-allowlisted material prices flat", func(t *testing.T) {
		uc := NewSaveGivenEntryUseCase(adaptertest.NewEntryRepo(), pricing)

		out, err := uc.Execute(ctx, SaveGivenEntryInput{
			BeekeeperID: keeperID,
			Date:        "2024-05-10",
			ItemType:    entity.ItemTypeMaterial,
			Description: "Kovan",
			Quantity:    decimal.NewFromInt(24),
			UnitPrice:   decimal.NewFromInt(1150),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Entry.Price.Equal(decimal.NewFromInt(27600)) {
			t.Errorf("expected flat price 27600, got %s", out.Entry.Price)
		}
	})

	t.Run("cash entry forces quantity 1 and TL unit", func(t *testing.T) {
		uc := NewSaveGivenEntryUseCase(adaptertest.NewEntryRepo(), pricing)

		out, err := uc.Execute(ctx, SaveGivenEntryInput{
			BeekeeperID: keeperID,
			Date:        "2024-05-10",
			ItemType:    entity.ItemTypeCash,
			UnitPrice:   decimal.NewFromInt(15000),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Entry.Description != entity.ItemTypeCash || out.Entry.Unit != "TL" {
			t.Errorf("expected Nakit/TL, got %q/%q", out.Entry.Description, out.Entry.Unit)
		}
		if !out.Entry.Quantity.Equal(decimal.NewFromInt(1)) {
			t.Errorf("expected quantity 1, got %s", out.Entry.Quantity)
		}
		if !out.Entry.Price.Equal(decimal.NewFromInt(15000)) {
			t.Errorf("expected price 15000, got %s", out.Entry.Price)
		}
	})

	t.Run("material without description is rejected", func(t *testing.T) {
		uc := NewSaveGivenEntryUseCase(adaptertest.NewEntryRepo(), pricing)
		_, err := uc.Execute(ctx, SaveGivenEntryInput{
			BeekeeperID: keeperID,
			Date:        "2024-05-10",
			ItemType:    entity.ItemTypeMaterial,
			Quantity:    decimal.NewFromInt(1),
			UnitPrice:   decimal.NewFromInt(1),
		})
		if !errors.Is(err, domainerror.ErrMissingDescription) {
			t.Errorf("expected ErrMissingDescription, got %v", err)
		}
	})
}
