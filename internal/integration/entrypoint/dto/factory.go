package dto

import (
	"time"

	"github.com/honey-ledger/backend/internal/application/usecase/factory"
)

// CreateFactoryRequest represents the request body for factory creation.
type CreateFactoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
	Note string `json:"note,omitempty" binding:"omitempty,max=1000"`
}

// UpdateFactoryRequest represents the request body for factory update.
type UpdateFactoryRequest struct {
	Name   string `json:"name" binding:"required,min=1,max=255"`
	Note   string `json:"note,omitempty" binding:"omitempty,max=1000"`
	Active bool   `json:"active"`
}

// SaveShipmentRequest represents the request body for a shipment header save.
type SaveShipmentRequest struct {
	ShipmentID    *string `json:"shipment_id,omitempty"`
	Date          string  `json:"date" binding:"required"`
	Title         string  `json:"title" binding:"required,min=1,max=255"`
	PaymentStatus string  `json:"payment_status,omitempty"`
}

// SaveLineRequest represents the request body for a shipment line save.
type SaveLineRequest struct {
	LineID        *string  `json:"line_id,omitempty"`
	Date          string   `json:"date" binding:"required"`
	LineNo        *int     `json:"line_no,omitempty"`
	PersonName    string   `json:"person_name" binding:"required,min=1,max=255"`
	Type          string   `json:"type,omitempty"`
	Quantity      float64  `json:"quantity" binding:"required"`
	Unit          string   `json:"unit,omitempty"`
	UnitPrice     *float64 `json:"unit_price,omitempty"`
	PaymentStatus string   `json:"payment_status,omitempty"`
	SourceEntryID *string  `json:"source_entry_id,omitempty"`
}

// SaveFactoryPaymentRequest represents the request body for a factory payment save.
type SaveFactoryPaymentRequest struct {
	PaymentID *string `json:"payment_id,omitempty"`
	Date      string  `json:"date" binding:"required"`
	Amount    float64 `json:"amount" binding:"required"`
	Note      string  `json:"note,omitempty" binding:"omitempty,max=1000"`
}

// FactoryResponse represents a factory in API responses.
type FactoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Note      string    `json:"note,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ShipmentLineResponse represents one shipment line in API responses.
type ShipmentLineResponse struct {
	ID            string    `json:"id"`
	ShipmentID    string    `json:"shipment_id"`
	LineNo        *int      `json:"line_no,omitempty"`
	Date          string    `json:"date"`
	DisplayDate   string    `json:"display_date"`
	PersonName    string    `json:"person_name"`
	Type          string    `json:"type,omitempty"`
	Quantity      *string   `json:"quantity,omitempty"`
	Unit          string    `json:"unit,omitempty"`
	DisplayUnit   string    `json:"display_unit,omitempty"`
	UnitPrice     *string   `json:"unit_price,omitempty"`
	Total         string    `json:"total"`
	PaymentStatus string    `json:"payment_status,omitempty"`
	SourceEntryID *string   `json:"source_entry_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// ShipmentResponse represents a shipment header with its lines.
type ShipmentResponse struct {
	ID            string                 `json:"id"`
	Date          string                 `json:"date"`
	DisplayDate   string                 `json:"display_date"`
	Title         string                 `json:"title"`
	PaymentStatus string                 `json:"payment_status,omitempty"`
	Lines         []ShipmentLineResponse `json:"lines"`
	Total         string                 `json:"total"`
	CreatedAt     time.Time              `json:"created_at"`
}

// FactoryPaymentResponse represents one payment in API responses.
type FactoryPaymentResponse struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	DisplayDate string    `json:"display_date"`
	Amount      string    `json:"amount"`
	Note        string    `json:"note,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// LegacyEntryResponse represents a pre-shipment flat record.
type LegacyEntryResponse struct {
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

// FactoryBookResponse represents a factory's full book.
type FactoryBookResponse struct {
	Factory        FactoryResponse          `json:"factory"`
	Shipments      []ShipmentResponse       `json:"shipments"`
	Payments       []FactoryPaymentResponse `json:"payments"`
	Legacy         []LegacyEntryResponse    `json:"legacy"`
	ShipmentsTotal string                   `json:"shipments_total"`
	PaymentsTotal  string                   `json:"payments_total"`
	Remaining      string                   `json:"remaining"`
}

// FactoryListResponse represents the factory directory.
type FactoryListResponse struct {
	Factories []FactoryResponse `json:"factories"`
}

// InventorySuggestionResponse represents one unsold inventory entry
// offered for linking a shipment line.
type InventorySuggestionResponse struct {
	EntryID       string  `json:"entry_id"`
	BeekeeperID   string  `json:"beekeeper_id"`
	BeekeeperName string  `json:"beekeeper_name"`
	Date          string  `json:"date"`
	DisplayDate   string  `json:"display_date"`
	Detail        string  `json:"detail,omitempty"`
	Quantity      *string `json:"quantity,omitempty"`
	Unit          string  `json:"unit,omitempty"`
	UnitPrice     *string `json:"unit_price,omitempty"`
	PriceKnown    bool    `json:"price_known"`
}

// InventorySuggestionListResponse represents the suggestion list response.
type InventorySuggestionListResponse struct {
	Suggestions []InventorySuggestionResponse `json:"suggestions"`
}

// ShipmentOwnerResponse resolves a shipment to its factory.
type ShipmentOwnerResponse struct {
	FactoryID string `json:"factory_id"`
}

// ShipmentCascadeResponse reports a shipment delete's size.
type ShipmentCascadeResponse struct {
	LinesDeleted   int `json:"lines_deleted"`
	SourcesCleared int `json:"sources_cleared"`
	Batches        int `json:"batches"`
}

// FactoryCascadeResponse reports a factory delete's size.
type FactoryCascadeResponse struct {
	EntriesDeleted int `json:"entries_deleted"`
	SourcesCleared int `json:"sources_cleared"`
	Batches        int `json:"batches"`
}

// SaveLineResponse carries the saved line and any non-fatal warning
// from the cross-reference sync.
type SaveLineResponse struct {
	Line    ShipmentLineResponse `json:"line"`
	Warning string               `json:"warning,omitempty"`
}

// ToFactoryResponse converts a use case factory output to its DTO.
func ToFactoryResponse(f *factory.FactoryOutput) FactoryResponse {
	return FactoryResponse{
		ID:        f.ID.String(),
		Name:      f.Name,
		Note:      f.Note,
		Active:    f.Active,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

// ToShipmentLineResponse converts a use case line output to its DTO.
func ToShipmentLineResponse(l *factory.LineOutput) ShipmentLineResponse {
	var sourceID *string
	if l.SourceEntryID != nil {
		s := l.SourceEntryID.String()
		sourceID = &s
	}
	return ShipmentLineResponse{
		ID:            l.ID.String(),
		ShipmentID:    l.ShipmentID.String(),
		LineNo:        l.LineNo,
		Date:          l.Date,
		DisplayDate:   l.DisplayDate,
		PersonName:    l.PersonName,
		Type:          l.Type,
		Quantity:      decimalString(l.Quantity),
		Unit:          l.Unit,
		DisplayUnit:   l.DisplayUnit,
		UnitPrice:     decimalString(l.UnitPrice),
		Total:         l.Total.String(),
		PaymentStatus: l.PaymentStatus,
		SourceEntryID: sourceID,
		CreatedAt:     l.CreatedAt,
	}
}

// ToShipmentResponse converts a use case shipment output to its DTO.
func ToShipmentResponse(s *factory.ShipmentOutput) ShipmentResponse {
	lines := make([]ShipmentLineResponse, len(s.Lines))
	for i, l := range s.Lines {
		lines[i] = ToShipmentLineResponse(l)
	}
	return ShipmentResponse{
		ID:            s.ID.String(),
		Date:          s.Date,
		DisplayDate:   s.DisplayDate,
		Title:         s.Title,
		PaymentStatus: s.PaymentStatus,
		Lines:         lines,
		Total:         s.Total.String(),
		CreatedAt:     s.CreatedAt,
	}
}

// ToFactoryPaymentResponse converts a payment row to its DTO.
func ToFactoryPaymentResponse(p *factory.PaymentOutput) FactoryPaymentResponse {
	return FactoryPaymentResponse{
		ID:          p.ID.String(),
		Date:        p.Date,
		DisplayDate: p.DisplayDate,
		Amount:      p.Amount.String(),
		Note:        p.Note,
		CreatedAt:   p.CreatedAt,
	}
}

// ToFactoryBookResponse converts a factory book snapshot to its DTO.
func ToFactoryBookResponse(output *factory.GetBookOutput) FactoryBookResponse {
	shipments := make([]ShipmentResponse, len(output.Shipments))
	for i, s := range output.Shipments {
		shipments[i] = ToShipmentResponse(s)
	}
	payments := make([]FactoryPaymentResponse, len(output.Payments))
	for i, p := range output.Payments {
		payments[i] = ToFactoryPaymentResponse(p)
	}
	legacy := make([]LegacyEntryResponse, len(output.Legacy))
	for i, l := range output.Legacy {
		legacy[i] = LegacyEntryResponse{
			ID:          l.ID.String(),
			Date:        l.Date,
			DisplayDate: l.DisplayDate,
			Description: l.Description,
			Quantity:    decimalString(l.Quantity),
			Unit:        l.Unit,
			Price:       decimalString(l.Price),
			Value:       l.Value.String(),
			CreatedAt:   l.CreatedAt,
		}
	}
	return FactoryBookResponse{
		Factory:        ToFactoryResponse(output.Factory),
		Shipments:      shipments,
		Payments:       payments,
		Legacy:         legacy,
		ShipmentsTotal: output.ShipmentsTotal.String(),
		PaymentsTotal:  output.PaymentsTotal.String(),
		Remaining:      output.Remaining.String(),
	}
}

// ToInventorySuggestionResponses converts suggestion outputs to DTOs.
func ToInventorySuggestionResponses(suggestions []*factory.InventorySuggestion) []InventorySuggestionResponse {
	out := make([]InventorySuggestionResponse, len(suggestions))
	for i, s := range suggestions {
		out[i] = InventorySuggestionResponse{
			EntryID:       s.EntryID.String(),
			BeekeeperID:   s.BeekeeperID.String(),
			BeekeeperName: s.BeekeeperName,
			Date:          s.Date,
			DisplayDate:   s.DisplayDate,
			Detail:        s.Detail,
			Quantity:      decimalString(s.Quantity),
			Unit:          s.Unit,
			UnitPrice:     decimalString(s.UnitPrice),
			PriceKnown:    s.PriceKnown,
		}
	}
	return out
}
