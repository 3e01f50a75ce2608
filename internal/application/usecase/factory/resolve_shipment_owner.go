package factory

import (
	"context"

	"github.com/google/uuid"

	"github.com/honey-ledger/backend/internal/application/adapter"
	"github.com/honey-ledger/backend/internal/domain/entity"
	domainerror "github.com/honey-ledger/backend/internal/domain/error"
)

// ResolveShipmentOwnerInput represents the input for owner resolution.
type ResolveShipmentOwnerInput struct {
	ShipmentID uuid.UUID
}

// ResolveShipmentOwnerOutput carries the owning factory id, used to
// navigate from a sold reference back to the factory book.
type ResolveShipmentOwnerOutput struct {
	FactoryID uuid.UUID
}

// ResolveShipmentOwnerUseCase looks up which factory a shipment belongs to.
type ResolveShipmentOwnerUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewResolveShipmentOwnerUseCase creates a new ResolveShipmentOwnerUseCase instance.
func NewResolveShipmentOwnerUseCase(entryRepo adapter.EntryRepository) *ResolveShipmentOwnerUseCase {
	return &ResolveShipmentOwnerUseCase{entryRepo: entryRepo}
}

// Execute performs the lookup.
func (uc *ResolveShipmentOwnerUseCase) Execute(ctx context.Context, input ResolveShipmentOwnerInput) (*ResolveShipmentOwnerOutput, error) {
	entry, err := uc.entryRepo.FindByID(ctx, input.ShipmentID)
	if err != nil || entry.EntryType != entity.EntryTypeShipment {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeShipmentNotFound,
			"shipment not found",
			domainerror.ErrShipmentNotFound,
		)
	}
	return &ResolveShipmentOwnerOutput{FactoryID: entry.OwnerID}, nil
}
