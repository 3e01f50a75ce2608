package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog item used to prefill transaction forms. Name
// is the matching key; Barcode is optional but globally unique when
// present.
type Product struct {
	ID        uuid.UUID
	Name      string
	Price     *decimal.Decimal
	Unit      string
	Barcode   string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewProduct creates a Product with a fresh id and timestamps.
func NewProduct(name string, price *decimal.Decimal, unit, barcode string) *Product {
	now := time.Now().UTC()
	return &Product{
		ID:        uuid.New(),
		Name:      name,
		Price:     price,
		Unit:      unit,
		Barcode:   barcode,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
