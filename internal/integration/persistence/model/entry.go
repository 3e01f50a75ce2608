// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/honey-ledger/backend/internal/domain/entity"
)

// EntryModel represents the entries table in the database. One table
// carries every record kind; the owner columns partition it and the
// entry_type column discriminates shipment headers, lines, payments
// and material-given rows from plain rows.
type EntryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerType string    `gorm:"type:varchar(20);not null;index:idx_entries_owner"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index:idx_entries_owner"`
	EntryType string    `gorm:"type:varchar(20);not null;default:'';index"`
	Side      string    `gorm:"type:varchar(5)"`

	Date        string `gorm:"type:varchar(10);index"`
	Description string `gorm:"type:varchar(255)"`
	Detail      string `gorm:"type:varchar(255)"`
	ItemType    string `gorm:"type:varchar(30)"`
	Note        string `gorm:"type:text"`

	Quantity  *decimal.Decimal `gorm:"type:decimal(15,3)"`
	Unit      string           `gorm:"type:varchar(30)"`
	UnitPrice *decimal.Decimal `gorm:"type:decimal(15,2)"`
	Price     *decimal.Decimal `gorm:"type:decimal(15,2)"`

	DisplayOrder *int `gorm:"type:integer"`
	Hidden       bool `gorm:"default:false"`

	SoldShipmentID    *uuid.UUID `gorm:"type:uuid;index"`
	SoldShipmentTitle *string    `gorm:"type:varchar(255)"`
	SoldShipmentDate  *string    `gorm:"type:varchar(10)"`
	SoldPaymentStatus *string    `gorm:"type:varchar(30)"`
	SoldFactoryID     *uuid.UUID `gorm:"type:uuid"`

	Title string `gorm:"type:varchar(255)"`

	ShipmentID    *uuid.UUID       `gorm:"type:uuid;index"`
	LineNo        *int             `gorm:"type:integer"`
	PersonName    string           `gorm:"type:varchar(255)"`
	Type          string           `gorm:"type:varchar(50)"`
	PaymentStatus string           `gorm:"type:varchar(30)"`
	SourceEntryID *uuid.UUID       `gorm:"type:uuid;index"`
	Total         *decimal.Decimal `gorm:"type:decimal(15,2)"`

	Amount *decimal.Decimal `gorm:"type:decimal(15,2)"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the EntryModel.
func (EntryModel) TableName() string {
	return "entries"
}

// ToEntity converts an EntryModel to a domain Entry entity.
func (m *EntryModel) ToEntity() *entity.Entry {
	return &entity.Entry{
		ID:        m.ID,
		OwnerType: entity.OwnerType(m.OwnerType),
		OwnerID:   m.OwnerID,
		EntryType: entity.EntryType(m.EntryType),
		Side:      entity.Side(m.Side),

		Date:        m.Date,
		Description: m.Description,
		Detail:      m.Detail,
		ItemType:    m.ItemType,
		Note:        m.Note,

		Quantity:  m.Quantity,
		Unit:      m.Unit,
		UnitPrice: m.UnitPrice,
		Price:     m.Price,

		Order:  m.DisplayOrder,
		Hidden: m.Hidden,

		SoldShipmentID:    m.SoldShipmentID,
		SoldShipmentTitle: m.SoldShipmentTitle,
		SoldShipmentDate:  m.SoldShipmentDate,
		SoldPaymentStatus: m.SoldPaymentStatus,
		SoldFactoryID:     m.SoldFactoryID,

		Title: m.Title,

		ShipmentID:    m.ShipmentID,
		LineNo:        m.LineNo,
		PersonName:    m.PersonName,
		Type:          m.Type,
		PaymentStatus: m.PaymentStatus,
		SourceEntryID: m.SourceEntryID,
		Total:         m.Total,

		Amount: m.Amount,

		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// EntryFromEntity converts a domain Entry entity to an EntryModel.
func EntryFromEntity(e *entity.Entry) *EntryModel {
	return &EntryModel{
		ID:        e.ID,
		OwnerType: string(e.OwnerType),
		OwnerID:   e.OwnerID,
		EntryType: string(e.EntryType),
		Side:      string(e.Side),

		Date:        e.Date,
		Description: e.Description,
		Detail:      e.Detail,
		ItemType:    e.ItemType,
		Note:        e.Note,

		Quantity:  e.Quantity,
		Unit:      e.Unit,
		UnitPrice: e.UnitPrice,
		Price:     e.Price,

		DisplayOrder: e.Order,
		Hidden:       e.Hidden,

		SoldShipmentID:    e.SoldShipmentID,
		SoldShipmentTitle: e.SoldShipmentTitle,
		SoldShipmentDate:  e.SoldShipmentDate,
		SoldPaymentStatus: e.SoldPaymentStatus,
		SoldFactoryID:     e.SoldFactoryID,

		Title: e.Title,

		ShipmentID:    e.ShipmentID,
		LineNo:        e.LineNo,
		PersonName:    e.PersonName,
		Type:          e.Type,
		PaymentStatus: e.PaymentStatus,
		SourceEntryID: e.SourceEntryID,
		Total:         e.Total,

		Amount: e.Amount,

		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
