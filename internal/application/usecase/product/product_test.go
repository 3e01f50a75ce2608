package product

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/honey-ledger/backend/internal/application/adapter/adaptertest"
	domainerror "github.com/honey-ledger/backend/internal/domain/error"
)

const testTTL = time.Hour

func TestSaveProductUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("save normalizes the unit and trims the barcode", func(t *testing.T) {
		repo := adaptertest.NewProductRepo()
		cache := adaptertest.NewProductCache()
		uc := NewSaveProductUseCase(repo, cache, testTTL)

		price := decimal.NewFromInt(90)
		out, err := uc.Execute(ctx, SaveProductInput{
			Name:    "VAROSET",
			Price:   &price,
			Unit:    "  kutu ",
			Barcode: " 869000123 ",
			Active:  true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Product.Unit != "Kutu" {
			t.Errorf("expected unit Kutu, got %q", out.Product.Unit)
		}
		if out.Product.Barcode != "869000123" {
			t.Errorf("expected trimmed barcode, got %q", out.Product.Barcode)
		}
		if _, ok := cache.Barcodes["869000123"]; !ok {
			t.Error("expected the barcode to be cached on save")
		}
	})

	t.Run("barcode held by another product is rejected", func(t *testing.T) {
		repo := adaptertest.NewProductRepo()
		uc := NewSaveProductUseCase(repo, adaptertest.NewProductCache(), testTTL)

		if _, err := uc.Execute(ctx, SaveProductInput{Name: "TEL", Barcode: "111", Active: true}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err := uc.Execute(ctx, SaveProductInput{Name: "FONDAN", Barcode: "111", Active: true})
		if !errors.Is(err, domainerror.ErrBarcodeTaken) {
			t.Errorf("expected ErrBarcodeTaken, got %v", err)
		}
	})

	t.Run("a product keeps its own barcode on update", func(t *testing.T) {
		repo := adaptertest.NewProductRepo()
		uc := NewSaveProductUseCase(repo, adaptertest.NewProductCache(), testTTL)

		created, err := uc.Execute(ctx, SaveProductInput{Name: "TEL", Barcode: "111", Active: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.Execute(ctx, SaveProductInput{
			ProductID: &created.Product.ID,
			Name:      "TEL",
			Barcode:   "111",
			Active:    true,
		}); err != nil {
			t.Errorf("expected own barcode to be allowed, got %v", err)
		}
	})

	t.Run("missing name is rejected", func(t *testing.T) {
		uc := NewSaveProductUseCase(adaptertest.NewProductRepo(), adaptertest.NewProductCache(), testTTL)
		_, err := uc.Execute(ctx, SaveProductInput{Name: "   "})
		if !errors.Is(err, domainerror.ErrMissingProductName) {
			t.Errorf("expected ErrMissingProductName, got %v", err)
		}
	})
}

func TestLookupByBarcodeUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("second scan hits the cache", func(t *testing.T) {
		repo := adaptertest.NewProductRepo()
		cache := adaptertest.NewProductCache()
		saveUC := NewSaveProductUseCase(repo, adaptertest.NewProductCache(), testTTL)
		created, err := saveUC.Execute(ctx, SaveProductInput{Name: "ŞEKER", Barcode: "222", Active: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		uc := NewLookupByBarcodeUseCase(repo, cache, testTTL)
		first, err := uc.Execute(ctx, LookupByBarcodeInput{Barcode: "222"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.CacheHit {
			t.Error("expected the first scan to miss the cache")
		}
		if first.Product.ID != created.Product.ID {
			t.Error("expected the saved product")
		}

		second, err := uc.Execute(ctx, LookupByBarcodeInput{Barcode: " 222 "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !second.CacheHit {
			t.Error("expected the second scan to hit the cache")
		}
	})

	t.Run("unknown barcode returns product not found", func(t *testing.T) {
		uc := NewLookupByBarcodeUseCase(adaptertest.NewProductRepo(), adaptertest.NewProductCache(), testTTL)
		_, err := uc.Execute(ctx, LookupByBarcodeInput{Barcode: "999"})
		if !errors.Is(err, domainerror.ErrProductNotFound) {
			t.Errorf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("stale cache mapping falls back to the store", func(t *testing.T) {
		repo := adaptertest.NewProductRepo()
		cache := adaptertest.NewProductCache()
		cache.Barcodes["333"] = uuid.New()

		uc := NewLookupByBarcodeUseCase(repo, cache, testTTL)
		_, err := uc.Execute(ctx, LookupByBarcodeInput{Barcode: "333"})
		if !errors.Is(err, domainerror.ErrProductNotFound) {
			t.Errorf("expected ErrProductNotFound, got %v", err)
		}
		if _, ok := cache.Barcodes["333"]; ok {
			t.Error("expected the stale mapping to be evicted")
		}
	})
}

func TestImportDefaultsUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("import seeds the catalog once", func(t *testing.T) {
		repo := adaptertest.NewProductRepo()
		uc := NewImportDefaultsUseCase(repo)

		out, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Imported != len(defaultCatalog) {
			t.Errorf("expected %d imports, got %d", len(defaultCatalog), out.Imported)
		}

		again, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if again.Imported != 0 || again.Skipped != len(defaultCatalog) {
			t.Errorf("expected a repeat import to skip everything, got %+v", again)
		}
	})

	t.Run("existing names are matched case-insensitively", func(t *testing.T) {
		repo := adaptertest.NewProductRepo()
		saveUC := NewSaveProductUseCase(repo, adaptertest.NewProductCache(), testTTL)
		if _, err := saveUC.Execute(ctx, SaveProductInput{Name: "kovan", Active: true}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		uc := NewImportDefaultsUseCase(repo)
		out, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Skipped != 1 {
			t.Errorf("expected the lowercase duplicate to be skipped, got %+v", out)
		}
	})
}

func TestSuggestedUnitPriceUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	repo := adaptertest.NewProductRepo()
	saveUC := NewSaveProductUseCase(repo, adaptertest.NewProductCache(), testTTL)
	price := decimal.NewFromInt(1150)
	if _, err := saveUC.Execute(ctx, SaveProductInput{Name: "KOVAN", Price: &price, Unit: "ADET", Active: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	uc := NewSuggestedUnitPriceUseCase(repo)

	t.Run("exact normalized match returns the price", func(t *testing.T) {
		out, err := uc.Execute(ctx, SuggestedUnitPriceInput{Name: "kovan"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Price == nil || !out.Price.Equal(price) {
			t.Errorf("expected price 1150, got %v", out.Price)
		}
	})

	t.Run("no match returns nil", func(t *testing.T) {
		out, err := uc.Execute(ctx, SuggestedUnitPriceInput{Name: "ÇADIR"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Price != nil {
			t.Errorf("expected nil price, got %v", out.Price)
		}
	})
}

func TestNormalizeUnitsUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	repo := adaptertest.NewProductRepo()
	importUC := NewImportDefaultsUseCase(repo)
	if _, err := importUC.Execute(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	uc := NewNormalizeUnitsUseCase(repo)
	first, err := uc.Execute(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Import already normalizes, so the pass finds nothing to do.
	if first.Updated != 0 {
		t.Errorf("expected no updates on a clean catalog, got %d", first.Updated)
	}

	// Corrupt one unit and run again.
	for _, p := range repo.Products {
		if p.Name == "TEL" {
			p.Unit = "KILO"
		}
	}
	second, err := uc.Execute(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Updated != 1 {
		t.Errorf("expected 1 update, got %d", second.Updated)
	}
}
