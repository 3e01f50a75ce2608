// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/honey-ledger/backend/internal/domain/entity"
)

// SoldReference carries the five cross-reference fields written onto a
// beekeeper inventory entry when a shipment line consumes it. The
// fields are only ever set or cleared together.
type SoldReference struct {
	ShipmentID    uuid.UUID
	ShipmentTitle string
	ShipmentDate  string
	PaymentStatus string
	FactoryID     uuid.UUID
}

// EntryPatch is a partial-merge update. Nil pointer fields are left
// untouched. SetSold and ClearSold are the only way to mutate the
// sold* fields, which keeps the five-field invariant in one place.
type EntryPatch struct {
	Description   *string
	Detail        *string
	Unit          *string
	Title         *string
	PersonName    *string
	Type          *string
	PaymentStatus *string
	Note          *string
	Order         *int
	Hidden        *bool

	SetSold   *SoldReference
	ClearSold bool
}

// IsEmpty reports whether the patch carries no changes.
func (p EntryPatch) IsEmpty() bool {
	return p.Description == nil && p.Detail == nil && p.Unit == nil &&
		p.Title == nil && p.PersonName == nil && p.Type == nil &&
		p.PaymentStatus == nil && p.Note == nil && p.Order == nil &&
		p.Hidden == nil && p.SetSold == nil && !p.ClearSold
}

// EntryUpdate pairs an entry id with its patch for batched writes.
type EntryUpdate struct {
	ID    uuid.UUID
	Patch EntryPatch
}

// BatchResult reports how a chunked multi-record write went. Chunks
// committed before a failure stay committed; the error names the
// failing chunk.
type BatchResult struct {
	Operations int
	Batches    int
}

// EntryRepository defines the interface for entry persistence
// operations. Multi-record operations are chunked so no single store
// batch exceeds the configured operation limit; the overall operation
// is not atomic.
type EntryRepository interface {
	// Create persists a new entry.
	Create(ctx context.Context, entry *entity.Entry) error

	// Update replaces an existing entry's fields.
	Update(ctx context.Context, entry *entity.Entry) error

	// Patch applies a partial-merge update to one entry.
	Patch(ctx context.Context, id uuid.UUID, patch EntryPatch) error

	// PatchBatch applies partial-merge updates in bounded batches.
	PatchBatch(ctx context.Context, updates []EntryUpdate) (BatchResult, error)

	// FindByID retrieves an entry by its id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Entry, error)

	// FindByOwner retrieves every entry in one owner partition.
	FindByOwner(ctx context.Context, ownerType entity.OwnerType, ownerID uuid.UUID) ([]*entity.Entry, error)

	// FindShipmentLines retrieves the line entries of one shipment.
	FindShipmentLines(ctx context.Context, shipmentID uuid.UUID) ([]*entity.Entry, error)

	// Delete removes one entry.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteBatch removes entries in bounded batches.
	DeleteBatch(ctx context.Context, ids []uuid.UUID) (BatchResult, error)
}
