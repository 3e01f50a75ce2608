// Package factory contains factory ledger use cases.
package factory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/honey-ledger/backend/internal/domain/entity"
	"github.com/honey-ledger/backend/internal/domain/textnorm"
)

// FactoryOutput represents factory data in use case responses.
type FactoryOutput struct {
	ID        uuid.UUID
	Name      string
	Note      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LineOutput is one row of a shipment: honey delivered under one
// beekeeper's name.
type LineOutput struct {
	ID            uuid.UUID
	ShipmentID    uuid.UUID
	LineNo        *int
	Date          string
	DisplayDate   string
	PersonName    string
	Type          string
	Quantity      *decimal.Decimal
	Unit          string
	DisplayUnit   string
	UnitPrice     *decimal.Decimal
	Total         decimal.Decimal
	PaymentStatus string
	SourceEntryID *uuid.UUID
	CreatedAt     time.Time
}

// ShipmentOutput is a shipment header with its lines and their sum.
type ShipmentOutput struct {
	ID            uuid.UUID
	Date          string
	DisplayDate   string
	Title         string
	PaymentStatus string
	Lines         []*LineOutput
	Total         decimal.Decimal
	CreatedAt     time.Time
}

// PaymentOutput is one payment received from the factory.
type PaymentOutput struct {
	ID          uuid.UUID
	Date        string
	DisplayDate string
	Amount      decimal.Decimal
	Note        string
	CreatedAt   time.Time
}

// LegacyEntryOutput is a pre-shipment flat record; its price field
// holds the unit price and the row value is price×quantity.
type LegacyEntryOutput struct {
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

func toFactoryOutput(f *entity.Factory) *FactoryOutput {
	return &FactoryOutput{
		ID:        f.ID,
		Name:      f.Name,
		Note:      f.Note,
		Active:    f.Active,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

func toLineOutput(e *entity.Entry) *LineOutput {
	var shipmentID uuid.UUID
	if e.ShipmentID != nil {
		shipmentID = *e.ShipmentID
	}
	return &LineOutput{
		ID:            e.ID,
		ShipmentID:    shipmentID,
		LineNo:        e.LineNo,
		Date:          e.Date,
		DisplayDate:   entity.FormatDisplayDate(e.Date),
		PersonName:    e.PersonName,
		Type:          e.Type,
		Quantity:      e.Quantity,
		Unit:          e.Unit,
		DisplayUnit:   textnorm.DisplayUnit(e.Unit),
		UnitPrice:     e.UnitPrice,
		Total:         e.LineTotal(),
		PaymentStatus: e.PaymentStatus,
		SourceEntryID: e.SourceEntryID,
		CreatedAt:     e.CreatedAt,
	}
}

func isValidDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}
