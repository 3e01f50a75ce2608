package dto

import (
	"time"

	"github.com/honey-ledger/backend/internal/application/usecase/supplier"
)

// CreateSupplierRequest represents the request body for supplier creation.
type CreateSupplierRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
	Note string `json:"note,omitempty" binding:"omitempty,max=1000"`
}

// UpdateSupplierRequest represents the request body for supplier update.
type UpdateSupplierRequest struct {
	Name   string `json:"name" binding:"required,min=1,max=255"`
	Note   string `json:"note,omitempty" binding:"omitempty,max=1000"`
	Active bool   `json:"active"`
}

// SavePurchaseRequest represents the request body for a purchase save.
type SavePurchaseRequest struct {
	EntryID     *string `json:"entry_id,omitempty"`
	Date        string  `json:"date" binding:"required"`
	Description string  `json:"description" binding:"required,min=1,max=255"`
	Quantity    float64 `json:"quantity" binding:"required"`
	Unit        string  `json:"unit,omitempty"`
	UnitPrice   float64 `json:"unit_price" binding:"required"`
	Note        string  `json:"note,omitempty" binding:"omitempty,max=1000"`
}

// SaveSupplierPaymentRequest represents the request body for a
// supplier payment save.
type SaveSupplierPaymentRequest struct {
	PaymentID *string `json:"payment_id,omitempty"`
	Date      string  `json:"date" binding:"required"`
	Amount    float64 `json:"amount" binding:"required"`
	Note      string  `json:"note,omitempty" binding:"omitempty,max=1000"`
}

// SaveGivenRequest represents the request body for an in-kind
// settlement save (wax returned to the supplier).
type SaveGivenRequest struct {
	EntryID   *string  `json:"entry_id,omitempty"`
	Date      string   `json:"date" binding:"required"`
	Quantity  float64  `json:"quantity" binding:"required"`
	UnitPrice *float64 `json:"unit_price,omitempty"`
	Note      string   `json:"note,omitempty" binding:"omitempty,max=1000"`
}

// SupplierResponse represents a supplier in API responses.
type SupplierResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Note      string    `json:"note,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PurchaseResponse represents one purchase row in API responses.
type PurchaseResponse struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	DisplayDate string    `json:"display_date"`
	Description string    `json:"description"`
	Note        string    `json:"note,omitempty"`
	Quantity    *string   `json:"quantity,omitempty"`
	Unit        string    `json:"unit,omitempty"`
	DisplayUnit string    `json:"display_unit,omitempty"`
	Price       *string   `json:"price,omitempty"`
	Value       string    `json:"value"`
	CreatedAt   time.Time `json:"created_at"`
}

// SupplierPaymentResponse represents one payment row in API responses.
type SupplierPaymentResponse struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	DisplayDate string    `json:"display_date"`
	Amount      string    `json:"amount"`
	Note        string    `json:"note,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// GivenResponse represents one in-kind settlement row.
type GivenResponse struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	DisplayDate string    `json:"display_date"`
	Description string    `json:"description"`
	Quantity    *string   `json:"quantity,omitempty"`
	Unit        string    `json:"unit,omitempty"`
	Price       *string   `json:"price,omitempty"`
	Value       string    `json:"value"`
	CreatedAt   time.Time `json:"created_at"`
}

// SupplierBookResponse represents a supplier's full book. Mode selects
// whether the right page lists cash payments or material given.
type SupplierBookResponse struct {
	Supplier       SupplierResponse          `json:"supplier"`
	Mode           string                    `json:"mode"`
	Purchases      []PurchaseResponse        `json:"purchases"`
	Payments       []SupplierPaymentResponse `json:"payments"`
	Given          []GivenResponse           `json:"given"`
	PurchasesTotal string                    `json:"purchases_total"`
	RightTotal     string                    `json:"right_total"`
	Balance        BalanceResponse           `json:"balance"`
}

// SupplierListResponse represents the supplier directory.
type SupplierListResponse struct {
	Suppliers []SupplierResponse `json:"suppliers"`
}

// ToSupplierResponse converts a use case supplier output to its DTO.
func ToSupplierResponse(s *supplier.SupplierOutput) SupplierResponse {
	return SupplierResponse{
		ID:        s.ID.String(),
		Name:      s.Name,
		Note:      s.Note,
		Active:    s.Active,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// ToPurchaseResponse converts a purchase row to its DTO.
func ToPurchaseResponse(p *supplier.PurchaseOutput) PurchaseResponse {
	return PurchaseResponse{
		ID:          p.ID.String(),
		Date:        p.Date,
		DisplayDate: p.DisplayDate,
		Description: p.Description,
		Note:        p.Note,
		Quantity:    decimalString(p.Quantity),
		Unit:        p.Unit,
		DisplayUnit: p.DisplayUnit,
		Price:       decimalString(p.Price),
		Value:       p.Value.String(),
		CreatedAt:   p.CreatedAt,
	}
}

// ToSupplierPaymentResponse converts a payment row to its DTO.
func ToSupplierPaymentResponse(p *supplier.PaymentOutput) SupplierPaymentResponse {
	return SupplierPaymentResponse{
		ID:          p.ID.String(),
		Date:        p.Date,
		DisplayDate: p.DisplayDate,
		Amount:      p.Amount.String(),
		Note:        p.Note,
		CreatedAt:   p.CreatedAt,
	}
}

// ToGivenResponse converts an in-kind settlement row to its DTO.
func ToGivenResponse(g *supplier.GivenOutput) GivenResponse {
	return GivenResponse{
		ID:          g.ID.String(),
		Date:        g.Date,
		DisplayDate: g.DisplayDate,
		Description: g.Description,
		Quantity:    decimalString(g.Quantity),
		Unit:        g.Unit,
		Price:       decimalString(g.Price),
		Value:       g.Value.String(),
		CreatedAt:   g.CreatedAt,
	}
}

// ToSupplierBookResponse converts a supplier book snapshot to its DTO.
func ToSupplierBookResponse(output *supplier.GetBookOutput) SupplierBookResponse {
	purchases := make([]PurchaseResponse, len(output.Purchases))
	for i, p := range output.Purchases {
		purchases[i] = ToPurchaseResponse(p)
	}
	payments := make([]SupplierPaymentResponse, len(output.Payments))
	for i, p := range output.Payments {
		payments[i] = ToSupplierPaymentResponse(p)
	}
	given := make([]GivenResponse, len(output.Given))
	for i, g := range output.Given {
		given[i] = ToGivenResponse(g)
	}
	return SupplierBookResponse{
		Supplier:       ToSupplierResponse(output.Supplier),
		Mode:           string(output.Mode),
		Purchases:      purchases,
		Payments:       payments,
		Given:          given,
		PurchasesTotal: output.PurchasesTotal.String(),
		RightTotal:     output.RightTotal.String(),
		Balance:        ToBalanceResponse(output.Balance),
	}
}
