package factory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/honey-ledger/backend/internal/application/adapter"
	"github.com/honey-ledger/backend/internal/domain/entity"
	domainerror "github.com/honey-ledger/backend/internal/domain/error"
	"github.com/honey-ledger/backend/internal/domain/textnorm"
)

// SaveShipmentInput represents the input for a shipment header save.
// ShipmentID nil creates a new shipment.
type SaveShipmentInput struct {
	FactoryID     uuid.UUID
	ShipmentID    *uuid.UUID
	Date          string
	Title         string
	PaymentStatus string
}

// SaveShipmentOutput represents the output of a shipment save.
type SaveShipmentOutput struct {
	Shipment *ShipmentOutput
}

// SaveShipmentUseCase creates or updates a shipment header. Sold
// references on source entries are not touched here; the backfill pass
// realigns them after header edits.
type SaveShipmentUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewSaveShipmentUseCase creates a new SaveShipmentUseCase instance.
func NewSaveShipmentUseCase(entryRepo adapter.EntryRepository) *SaveShipmentUseCase {
	return &SaveShipmentUseCase{entryRepo: entryRepo}
}

// Execute validates and persists the header.
func (uc *SaveShipmentUseCase) Execute(ctx context.Context, input SaveShipmentInput) (*SaveShipmentOutput, error) {
	if !isValidDate(input.Date) {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeInvalidEntryDate,
			"date must be YYYY-MM-DD",
			domainerror.ErrInvalidEntryDate,
		)
	}
	title := textnorm.TitleCase(input.Title)
	if title == "" {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeMissingDescription,
			"shipment title is required",
			domainerror.ErrMissingDescription,
		)
	}

	var entry *entity.Entry
	if input.ShipmentID == nil {
		entry = entity.NewEntry(entity.OwnerTypeFactory, input.FactoryID)
		entry.EntryType = entity.EntryTypeShipment
		entry.Side = entity.SideLeft
	} else {
		found, err := uc.entryRepo.FindByID(ctx, *input.ShipmentID)
		if err != nil || found.EntryType != entity.EntryTypeShipment {
			return nil, domainerror.NewEntryError(
				domainerror.ErrCodeShipmentNotFound,
				"shipment not found",
				domainerror.ErrShipmentNotFound,
			)
		}
		entry = found
	}

	entry.Date = input.Date
	entry.Title = title
	entry.PaymentStatus = textnorm.TitleCase(input.PaymentStatus)

	if input.ShipmentID == nil {
		if err := uc.entryRepo.Create(ctx, entry); err != nil {
			return nil, fmt.Errorf("failed to create shipment: %w", err)
		}
	} else {
		if err := uc.entryRepo.Update(ctx, entry); err != nil {
			return nil, fmt.Errorf("failed to update shipment: %w", err)
		}
	}

	return &SaveShipmentOutput{Shipment: &ShipmentOutput{
		ID:            entry.ID,
		Date:          entry.Date,
		DisplayDate:   entity.FormatDisplayDate(entry.Date),
		Title:         entry.Title,
		PaymentStatus: entry.PaymentStatus,
		CreatedAt:     entry.CreatedAt,
	}}, nil
}
