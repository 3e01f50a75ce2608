// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OwnerType identifies which ledger partition an entry belongs to.
type OwnerType string

const (
	OwnerTypeBeekeeper OwnerType = "beekeeper"
	OwnerTypeFactory   OwnerType = "factory"
	OwnerTypeSupplier  OwnerType = "supplier"
)

// EntryType distinguishes structurally different records sharing the
// entries collection. Plain transactions carry the empty type.
type EntryType string

const (
	EntryTypePlain        EntryType = ""
	EntryTypeShipment     EntryType = "shipment"
	EntryTypeShipmentLine EntryType = "shipmentLine"
	EntryTypePayment      EntryType = "payment"
	EntryTypeSupplierGive EntryType = "supplierGive"
)

// Side designates the direction of value flow within a ledger book:
// left = received by the business, right = given by the business.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Item type literals as stored by the ledgers. The values are the
// Turkish labels the books were kept in; they are data, not UI copy.
const (
	ItemTypeHoney     = "Bal"
	ItemTypeWax       = "Mum"
	ItemTypeLegacyWax = "Bal mumu"
	ItemTypeMaterial  = "Malzeme"
	ItemTypeCash      = "Nakit"
	ItemTypeEmptyTin  = "Boş teneke"
)

// Entry is the universal transaction record. Which fields are
// populated depends on EntryType; the zero value of every optional
// field is "absent".
type Entry struct {
	ID        uuid.UUID
	OwnerType OwnerType
	OwnerID   uuid.UUID
	EntryType EntryType
	Side      Side

	// Date is an ISO calendar date (YYYY-MM-DD). Lexicographic order
	// is chronological order, which the sort helpers rely on.
	Date string

	Description string
	Detail      string
	ItemType    string
	Note        string

	Quantity  *decimal.Decimal
	Unit      string
	UnitPrice *decimal.Decimal
	// Price is the authoritative total. It is derived from
	// UnitPrice×Quantity at write time and never recomputed on read.
	Price *decimal.Decimal

	// Order is the manual display position within a side. Nil means
	// the side's default chronological sort governs this entry.
	Order *int

	Hidden bool

	// Cross-reference fields, set on a beekeeper honey entry when a
	// factory shipment line consumes it. All five live and die together.
	SoldShipmentID    *uuid.UUID
	SoldShipmentTitle *string
	SoldShipmentDate  *string
	SoldPaymentStatus *string
	SoldFactoryID     *uuid.UUID

	// Shipment header field.
	Title string

	// Shipment line fields.
	ShipmentID    *uuid.UUID
	LineNo        *int
	PersonName    string
	Type          string
	PaymentStatus string
	SourceEntryID *uuid.UUID
	Total         *decimal.Decimal

	// Payment field.
	Amount *decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewEntry creates an Entry with a fresh id and timestamps.
func NewEntry(ownerType OwnerType, ownerID uuid.UUID) *Entry {
	now := time.Now().UTC()
	return &Entry{
		ID:        uuid.New(),
		OwnerType: ownerType,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsHoney reports whether the entry is honey inventory: either tagged
// with the honey item type or carrying a legacy "Bal…" description.
func (e *Entry) IsHoney() bool {
	return e.ItemType == ItemTypeHoney || strings.HasPrefix(e.Description, ItemTypeHoney)
}

// IsSold reports whether a shipment line has consumed this entry.
func (e *Entry) IsSold() bool {
	return e.SoldShipmentID != nil || (e.SoldShipmentTitle != nil && *e.SoldShipmentTitle != "")
}

// HoneyDetail returns the honey variety, falling back to the legacy
// "Bal - X" description encoding for entries written before the
// detail field existed.
func (e *Entry) HoneyDetail() string {
	if e.Detail != "" {
		return e.Detail
	}
	if strings.HasPrefix(e.Description, "Bal - ") {
		return strings.TrimSpace(strings.TrimPrefix(e.Description, "Bal - "))
	}
	return ""
}

// EffectiveUnitPrice returns the stored unit price, or derives one
// from total and quantity when possible. Nil when neither is known.
func (e *Entry) EffectiveUnitPrice() *decimal.Decimal {
	if e.UnitPrice != nil {
		return e.UnitPrice
	}
	if e.Price != nil && e.Quantity != nil && !e.Quantity.IsZero() {
		derived := e.Price.Div(*e.Quantity)
		return &derived
	}
	return nil
}

// LineTotal returns the cached line total, or quantity×unitPrice when
// the cache is absent. Zero when neither is computable.
func (e *Entry) LineTotal() decimal.Decimal {
	if e.Total != nil {
		return *e.Total
	}
	if e.Quantity != nil && e.UnitPrice != nil {
		return e.Quantity.Mul(*e.UnitPrice)
	}
	return decimal.Zero
}

// LegacyValue returns price×quantity for untyped factory/supplier
// entries, whose price field held the unit price.
func (e *Entry) LegacyValue() decimal.Decimal {
	if e.Price != nil && e.Quantity != nil {
		return e.Price.Mul(*e.Quantity)
	}
	return decimal.Zero
}

// SortChronological orders entries by date, ties broken by creation
// time. Dates compare lexicographically because they are ISO strings.
func SortChronological(a, b *Entry) bool {
	if a.Date != b.Date {
		return a.Date < b.Date
	}
	return a.CreatedAt.Before(b.CreatedAt)
}

// SortManual orders entries by manual order when both carry one, and
// chronologically otherwise.
func SortManual(a, b *Entry) bool {
	if a.Order != nil && b.Order != nil {
		if *a.Order != *b.Order {
			return *a.Order < *b.Order
		}
	}
	return SortChronological(a, b)
}

// FormatDisplayDate converts YYYY-MM-DD to the DD.MM.YYYY form the
// books are printed with. Malformed values pass through unchanged.
func FormatDisplayDate(date string) string {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return date
	}
	return parts[2] + "." + parts[1] + "." + parts[0]
}

// Today returns the current date in the entry date format.
func Today() string {
	return time.Now().Format("2006-01-02")
}
