// Package beekeeper contains beekeeper ledger use cases.
package beekeeper

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/honey-ledger/backend/internal/domain/entity"
	"github.com/honey-ledger/backend/internal/domain/textnorm"
)

// BeekeeperOutput represents beekeeper data in use case responses.
type BeekeeperOutput struct {
	ID        uuid.UUID
	Number    int
	Name      string
	Note      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EntryOutput represents one ledger row of a beekeeper book.
type EntryOutput struct {
	ID          uuid.UUID
	Side        entity.Side
	Date        string
	DisplayDate string
	Description string
	Detail      string
	ItemType    string
	Note        string
	Quantity    *decimal.Decimal
	Unit        string
	DisplayUnit string
	UnitPrice   *decimal.Decimal
	Price       *decimal.Decimal
	Order       *int
	Hidden      bool

	// Sold linkage, read-only in this book. Set when a factory
	// shipment line has consumed the entry.
	SoldShipmentID    *uuid.UUID
	SoldShipmentTitle *string
	SoldShipmentDate  *string
	SoldPaymentStatus *string
	SoldFactoryID     *uuid.UUID

	CreatedAt time.Time
}

func toBeekeeperOutput(b *entity.Beekeeper) *BeekeeperOutput {
	return &BeekeeperOutput{
		ID:        b.ID,
		Number:    b.Number,
		Name:      b.Name,
		Note:      b.Note,
		Active:    b.Active,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func toEntryOutput(e *entity.Entry) *EntryOutput {
	return &EntryOutput{
		ID:                e.ID,
		Side:              e.Side,
		Date:              e.Date,
		DisplayDate:       entity.FormatDisplayDate(e.Date),
		Description:       e.Description,
		Detail:            e.Detail,
		ItemType:          e.ItemType,
		Note:              e.Note,
		Quantity:          e.Quantity,
		Unit:              e.Unit,
		DisplayUnit:       textnorm.DisplayUnit(e.Unit),
		UnitPrice:         e.UnitPrice,
		Price:             e.Price,
		Order:             e.Order,
		Hidden:            e.Hidden,
		SoldShipmentID:    e.SoldShipmentID,
		SoldShipmentTitle: e.SoldShipmentTitle,
		SoldShipmentDate:  e.SoldShipmentDate,
		SoldPaymentStatus: e.SoldPaymentStatus,
		SoldFactoryID:     e.SoldFactoryID,
		CreatedAt:         e.CreatedAt,
	}
}

func isValidDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}
