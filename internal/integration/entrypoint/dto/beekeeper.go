package dto

import (
	"time"

	"github.com/honey-ledger/backend/internal/application/usecase/beekeeper"
)

// CreateBeekeeperRequest represents the request body for beekeeper creation.
type CreateBeekeeperRequest struct {
	Number int    `json:"number" binding:"required,min=1"`
	Name   string `json:"name" binding:"required,min=1,max=255"`
	Note   string `json:"note,omitempty" binding:"omitempty,max=1000"`
}

// UpdateBeekeeperRequest represents the request body for beekeeper update.
type UpdateBeekeeperRequest struct {
	Number int    `json:"number" binding:"required,min=1"`
	Name   string `json:"name" binding:"required,min=1,max=255"`
	Note   string `json:"note,omitempty" binding:"omitempty,max=1000"`
	Active bool   `json:"active"`
}

// SaveReceivedEntryRequest represents the request body for a received-side save.
type SaveReceivedEntryRequest struct {
	EntryID   *string `json:"entry_id,omitempty"`
	Date      string  `json:"date" binding:"required"`
	ItemType  string  `json:"item_type" binding:"required"`
	Detail    string  `json:"detail,omitempty"`
	Quantity  float64 `json:"quantity" binding:"required"`
	UnitPrice float64 `json:"unit_price"`
	Note      string  `json:"note,omitempty" binding:"omitempty,max=1000"`
}

// SaveGivenEntryRequest represents the request body for a given-side save.
type SaveGivenEntryRequest struct {
	EntryID     *string `json:"entry_id,omitempty"`
	Date        string  `json:"date" binding:"required"`
	ItemType    string  `json:"item_type" binding:"required"`
	Description string  `json:"description,omitempty"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit,omitempty"`
	UnitPrice   float64 `json:"unit_price"`
	Note        string  `json:"note,omitempty" binding:"omitempty,max=1000"`
}

// ToggleHiddenRequest represents the request body for hiding or
// unhiding an entry.
type ToggleHiddenRequest struct {
	Hidden bool `json:"hidden"`
}

// ReorderEntriesRequest represents the request body for a manual
// reorder of one book side.
type ReorderEntriesRequest struct {
	Side       string   `json:"side" binding:"required,oneof=left right"`
	OrderedIDs []string `json:"ordered_ids" binding:"required,min=1"`
}

// BeekeeperResponse represents a beekeeper in API responses.
type BeekeeperResponse struct {
	ID        string    `json:"id"`
	Number    int       `json:"number"`
	Name      string    `json:"name"`
	Note      string    `json:"note,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SoldReferenceResponse represents the sold linkage on an inventory row.
type SoldReferenceResponse struct {
	ShipmentID    string `json:"shipment_id"`
	ShipmentTitle string `json:"shipment_title,omitempty"`
	ShipmentDate  string `json:"shipment_date,omitempty"`
	PaymentStatus string `json:"payment_status,omitempty"`
	FactoryID     string `json:"factory_id,omitempty"`
}

// BookEntryResponse represents one ledger row in API responses.
type BookEntryResponse struct {
	ID          string                 `json:"id"`
	Side        string                 `json:"side"`
	Date        string                 `json:"date"`
	DisplayDate string                 `json:"display_date"`
	Description string                 `json:"description"`
	Detail      string                 `json:"detail,omitempty"`
	ItemType    string                 `json:"item_type,omitempty"`
	Note        string                 `json:"note,omitempty"`
	Quantity    *string                `json:"quantity,omitempty"`
	Unit        string                 `json:"unit,omitempty"`
	DisplayUnit string                 `json:"display_unit,omitempty"`
	UnitPrice   *string                `json:"unit_price,omitempty"`
	Price       *string                `json:"price,omitempty"`
	Order       *int                   `json:"order,omitempty"`
	Hidden      bool                   `json:"hidden"`
	Sold        *SoldReferenceResponse `json:"sold,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
}

// BeekeeperBookResponse represents the full two-sided book.
type BeekeeperBookResponse struct {
	Beekeeper BeekeeperResponse   `json:"beekeeper"`
	Left      []BookEntryResponse `json:"left"`
	Right     []BookEntryResponse `json:"right"`
	Balance   BalanceResponse     `json:"balance"`
}

// BeekeeperListResponse represents the beekeeper directory.
type BeekeeperListResponse struct {
	Beekeepers []BeekeeperResponse `json:"beekeepers"`
}

// CascadeDeleteResponse reports a cascade delete's size.
type CascadeDeleteResponse struct {
	EntriesDeleted int `json:"entries_deleted"`
	Batches        int `json:"batches"`
}

// ReorderEntriesResponse reports a reorder's write count.
type ReorderEntriesResponse struct {
	Updated int `json:"updated"`
	Batches int `json:"batches"`
}

// ToBeekeeperResponse converts a use case beekeeper output to its DTO.
func ToBeekeeperResponse(b *beekeeper.BeekeeperOutput) BeekeeperResponse {
	return BeekeeperResponse{
		ID:        b.ID.String(),
		Number:    b.Number,
		Name:      b.Name,
		Note:      b.Note,
		Active:    b.Active,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// ToBookEntryResponse converts a use case entry output to its DTO.
func ToBookEntryResponse(e *beekeeper.EntryOutput) BookEntryResponse {
	resp := BookEntryResponse{
		ID:          e.ID.String(),
		Side:        string(e.Side),
		Date:        e.Date,
		DisplayDate: e.DisplayDate,
		Description: e.Description,
		Detail:      e.Detail,
		ItemType:    e.ItemType,
		Note:        e.Note,
		Quantity:    decimalString(e.Quantity),
		Unit:        e.Unit,
		DisplayUnit: e.DisplayUnit,
		UnitPrice:   decimalString(e.UnitPrice),
		Price:       decimalString(e.Price),
		Order:       e.Order,
		Hidden:      e.Hidden,
		CreatedAt:   e.CreatedAt,
	}
	if e.SoldShipmentID != nil || (e.SoldShipmentTitle != nil && *e.SoldShipmentTitle != "") {
		sold := &SoldReferenceResponse{}
		if e.SoldShipmentID != nil {
			sold.ShipmentID = e.SoldShipmentID.String()
		}
		if e.SoldShipmentTitle != nil {
			sold.ShipmentTitle = *e.SoldShipmentTitle
		}
		if e.SoldShipmentDate != nil {
			sold.ShipmentDate = *e.SoldShipmentDate
		}
		if e.SoldPaymentStatus != nil {
			sold.PaymentStatus = *e.SoldPaymentStatus
		}
		if e.SoldFactoryID != nil {
			sold.FactoryID = e.SoldFactoryID.String()
		}
		resp.Sold = sold
	}
	return resp
}

// ToBeekeeperBookResponse converts a book snapshot to its DTO.
func ToBeekeeperBookResponse(output *beekeeper.GetBookOutput) BeekeeperBookResponse {
	left := make([]BookEntryResponse, len(output.Left))
	for i, e := range output.Left {
		left[i] = ToBookEntryResponse(e)
	}
	right := make([]BookEntryResponse, len(output.Right))
	for i, e := range output.Right {
		right[i] = ToBookEntryResponse(e)
	}
	return BeekeeperBookResponse{
		Beekeeper: ToBeekeeperResponse(output.Beekeeper),
		Left:      left,
		Right:     right,
		Balance:   ToBalanceResponse(output.Balance),
	}
}
