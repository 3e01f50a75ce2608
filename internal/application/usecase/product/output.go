// Package product contains product catalog use cases.
package product

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/honey-ledger/backend/internal/domain/entity"
	"github.com/honey-ledger/backend/internal/domain/textnorm"
)

// ProductOutput represents product data in use case responses.
type ProductOutput struct {
	ID          uuid.UUID
	Name        string
	Price       *decimal.Decimal
	Unit        string
	DisplayUnit string
	Barcode     string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func toProductOutput(p *entity.Product) *ProductOutput {
	return &ProductOutput{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Unit:        p.Unit,
		DisplayUnit: textnorm.DisplayUnit(p.Unit),
		Barcode:     p.Barcode,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
