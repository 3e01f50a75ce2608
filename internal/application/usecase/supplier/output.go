// Package supplier contains supplier ledger use cases.
package supplier

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/honey-ledger/backend/internal/domain/entity"
	"github.com/honey-ledger/backend/internal/domain/textnorm"
)

// SupplierOutput represents supplier data in use case responses.
type SupplierOutput struct {
	ID        uuid.UUID
	Name      string
	Note      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PurchaseOutput is one material purchase row. Price holds the unit
// price; Value is price×quantity.
type PurchaseOutput struct {
	ID          uuid.UUID
	Date        string
	DisplayDate string
	Description string
	Note        string
	Quantity    *decimal.Decimal
	Unit        string
	DisplayUnit string
	Price       *decimal.Decimal
	Value       decimal.Decimal
	CreatedAt   time.Time
}

// PaymentOutput is one cash payment made to the supplier.
type PaymentOutput struct {
	ID          uuid.UUID
	Date        string
	DisplayDate string
	Amount      decimal.Decimal
	Note        string
	CreatedAt   time.Time
}

// GivenOutput is one in-kind settlement row (wax returned to the
// supplier). Value is price×quantity when a unit price is recorded.
type GivenOutput struct {
	ID          uuid.UUID
	Date        string
	DisplayDate string
	Description string
	Quantity    *decimal.Decimal
	Unit        string
	Price       *decimal.Decimal
	Value       decimal.Decimal
	CreatedAt   time.Time
}

func toSupplierOutput(s *entity.Supplier) *SupplierOutput {
	return &SupplierOutput{
		ID:        s.ID,
		Name:      s.Name,
		Note:      s.Note,
		Active:    s.Active,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func toPurchaseOutput(e *entity.Entry) *PurchaseOutput {
	return &PurchaseOutput{
		ID:          e.ID,
		Date:        e.Date,
		DisplayDate: entity.FormatDisplayDate(e.Date),
		Description: e.Description,
		Note:        e.Note,
		Quantity:    e.Quantity,
		Unit:        e.Unit,
		DisplayUnit: textnorm.DisplayUnit(e.Unit),
		Price:       e.Price,
		Value:       e.LegacyValue(),
		CreatedAt:   e.CreatedAt,
	}
}

func isValidDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}
