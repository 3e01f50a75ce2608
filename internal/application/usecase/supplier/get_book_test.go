package supplier

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/honey-ledger/backend/internal/application/adapter/adaptertest"
	"github.com/honey-ledger/backend/internal/domain/entity"
	"github.com/honey-ledger/backend/internal/domain/valueobject"
)

func TestGetBookUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	modes := valueobject.DefaultLedgerModeTable()

	t.Run("payments mode values purchases by price times quantity", func(t *testing.T) {
		supplierRepo := adaptertest.NewSupplierRepo()
		entryRepo := adaptertest.NewEntryRepo()
		sup := entity.NewSupplier("Arı Malzemecisi", "")
		_ = supplierRepo.Create(ctx, sup)

		purchaseUC := NewSavePurchaseUseCase(entryRepo)
		if _, err := purchaseUC.Execute(ctx, SavePurchaseInput{
			SupplierID:  sup.ID,
			Date:        "2024-04-01",
			Description: "kovan",
			Quantity:    decimal.NewFromInt(10),
			Unit:        "adet",
			UnitPrice:   decimal.NewFromInt(1150),
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		paymentUC := NewSavePaymentUseCase(entryRepo)
		if _, err := paymentUC.Execute(ctx, SavePaymentInput{
			SupplierID: sup.ID,
			Date:       "2024-04-15",
			Amount:     decimal.NewFromInt(4000),
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		uc := NewGetBookUseCase(supplierRepo, entryRepo, modes)
		out, err := uc.Execute(ctx, GetBookInput{SupplierID: sup.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Mode != valueobject.LedgerModePayments {
			t.Errorf("expected payments mode, got %s", out.Mode)
		}
		if !out.PurchasesTotal.Equal(decimal.NewFromInt(11500)) {
			t.Errorf("expected purchases total 11500, got %s", out.PurchasesTotal)
		}
		if !out.RightTotal.Equal(decimal.NewFromInt(4000)) {
			t.Errorf("expected right total 4000, got %s", out.RightTotal)
		}
		if !out.Balance.Net.Equal(decimal.NewFromInt(7500)) {
			t.Errorf("expected net 7500, got %s", out.Balance.Net)
		}
		if out.Balance.Status != valueobject.BalanceOwedToOwner {
			t.Errorf("expected owedToOwner, got %s", out.Balance.Status)
		}
		if out.Purchases[0].Description != "Kovan" || out.Purchases[0].DisplayUnit != "Adet" {
			t.Errorf("expected normalized purchase text, got %+v", out.Purchases[0])
		}
	})

	t.Run("folded supplier name selects the material-given mode", func(t *testing.T) {
		supplierRepo := adaptertest.NewSupplierRepo()
		entryRepo := adaptertest.NewEntryRepo()
		sup := entity.NewSupplier("BINÇAĞ PETEK", "")
		_ = supplierRepo.Create(ctx, sup)

		givenUC := NewSaveGivenUseCase(entryRepo)
		unitPrice := decimal.NewFromInt(250)
		if _, err := givenUC.Execute(ctx, SaveGivenInput{
			SupplierID: sup.ID,
			Date:       "2024-05-01",
			Quantity:   decimal.NewFromInt(8),
			UnitPrice:  &unitPrice,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		uc := NewGetBookUseCase(supplierRepo, entryRepo, modes)
		out, err := uc.Execute(ctx, GetBookInput{SupplierID: sup.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Mode != valueobject.LedgerModeMaterialGiven {
			t.Errorf("expected materialGiven mode, got %s", out.Mode)
		}
		if len(out.Given) != 1 {
			t.Fatalf("expected 1 given row, got %d", len(out.Given))
		}
		if out.Given[0].Description != entity.ItemTypeWax || out.Given[0].Unit != "Kg" {
			t.Errorf("expected Mum/Kg, got %+v", out.Given[0])
		}
		if !out.RightTotal.Equal(decimal.NewFromInt(2000)) {
			t.Errorf("expected right total 2000, got %s", out.RightTotal)
		}
	})

	t.Run("given row without a unit price contributes no value", func(t *testing.T) {
		supplierRepo := adaptertest.NewSupplierRepo()
		entryRepo := adaptertest.NewEntryRepo()
		sup := entity.NewSupplier("Bıncağ Petek", "")
		_ = supplierRepo.Create(ctx, sup)

		givenUC := NewSaveGivenUseCase(entryRepo)
		if _, err := givenUC.Execute(ctx, SaveGivenInput{
			SupplierID: sup.ID,
			Date:       "2024-05-01",
			Quantity:   decimal.NewFromInt(8),
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		uc := NewGetBookUseCase(supplierRepo, entryRepo, modes)
		out, err := uc.Execute(ctx, GetBookInput{SupplierID: sup.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.RightTotal.IsZero() {
			t.Errorf("expected zero right total, got %s", out.RightTotal)
		}
	})
}
