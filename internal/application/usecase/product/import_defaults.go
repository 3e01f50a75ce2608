package product

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/honey-ledger/backend/internal/application/adapter"
	"github.com/honey-ledger/backend/internal/domain/entity"
	"github.com/honey-ledger/backend/internal/domain/textnorm"
)

// defaultProduct is one row of the seed catalog the business started
// from. Names keep their historical upper-case spelling.
type defaultProduct struct {
	name  string
	price int64
	unit  string
}

var defaultCatalog = []defaultProduct{
	{"BÜYÜK KÖRÜK", 700, "ADET"},
	{"ORTA BOY KÖRÜK", 650, "ADET"},
	{"KÜÇÜK KÖRÜK", 450, "ADET"},
	{"ORDU KÖRÜK", 700, "ADET"},
	{"VAROSET", 90, "KUTU"},
	{"RULAMIT", 90, "KUTU"},
	{"VİTAMİN", 60, "KUTU"},
	{"NOSEMİT", 50, "ADET"},
	{"ESMOLİN", 100, "ADET"},
	{"ÇUBUK", 130, "ADET"},
	{"MASKE", 250, "ADET"},
	{"ÇOCUK MASKESİ", 200, "ADET"},
	{"AKÜ", 750, "ADET"},
	{"MAHFUZ", 150, "ADET"},
	{"EL DEMİRİ", 150, "ADET"},
	{"SİR TARAĞI", 150, "ADET"},
	{"FIRÇA", 150, "ADET"},
	{"ÇAKMAK", 100, "ADET"},
	{"ELDİVEN", 150, "ADET"},
	{"ÇORAP", 150, "ADET"},
	{"İBRİK", 200, "ADET"},
	{"TEL", 250, "KİLO"},
	{"YEMLİK", 60, "ADET"},
	{"İNVERT ŞURUBU", 950, "TENEKE"},
	{"FONDAN", 55, "KİLO"},
	{"SAĞIM MAKİNESİ", 2500, "ADET"},
	{"ÇADIR", 800, "ADET"},
	{"KOVAN", 1150, "ADET"},
	{"PETEK TAHTASI", 200, "ADET"},
	{"ÇADIR 4X4", 8000, "ADET"},
	{"ÇADIR 3X4", 7000, "ADET"},
	{"ÇITA", 25, "ADET"},
	{"ŞEKER", 1750, "TORBA"},
}

// ImportDefaultsOutput reports how many seed products were inserted.
type ImportDefaultsOutput struct {
	Imported int
	Skipped  int
}

// ImportDefaultsUseCase seeds the catalog with the standard material
// list. Products whose name already exists are left untouched, so the
// import can be repeated safely.
type ImportDefaultsUseCase struct {
	productRepo adapter.ProductRepository
}

// NewImportDefaultsUseCase creates a new ImportDefaultsUseCase instance.
func NewImportDefaultsUseCase(productRepo adapter.ProductRepository) *ImportDefaultsUseCase {
	return &ImportDefaultsUseCase{productRepo: productRepo}
}

// Execute performs the import. Units are normalized on insert.
func (uc *ImportDefaultsUseCase) Execute(ctx context.Context) (*ImportDefaultsOutput, error) {
	existing, err := uc.productRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	taken := make(map[string]struct{}, len(existing))
	for _, p := range existing {
		taken[textnorm.NormalizeText(p.Name)] = struct{}{}
	}

	output := &ImportDefaultsOutput{}
	for _, seed := range defaultCatalog {
		if _, ok := taken[textnorm.NormalizeText(seed.name)]; ok {
			output.Skipped++
			continue
		}
		price := decimal.NewFromInt(seed.price)
		prod := entity.NewProduct(seed.name, &price, textnorm.NormalizeUnit(seed.unit), "")
		if err := uc.productRepo.Create(ctx, prod); err != nil {
			return nil, fmt.Errorf("failed to import product %q: %w", seed.name, err)
		}
		output.Imported++
	}

	slog.Info("Imported default catalog",
		"imported", output.Imported,
		"skipped", output.Skipped,
	)
	return output, nil
}
