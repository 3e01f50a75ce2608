package beekeeper

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/honey-ledger/backend/internal/application/adapter"
	"github.com/honey-ledger/backend/internal/domain/entity"
	domainerror "github.com/honey-ledger/backend/internal/domain/error"
	"github.com/honey-ledger/backend/internal/domain/textnorm"
	"github.com/honey-ledger/backend/internal/domain/valueobject"
)

// SaveGivenEntryInput represents input for the right (given) side:
// material from the catalog, cash, or empty tins.
type SaveGivenEntryInput struct {
	BeekeeperID uuid.UUID
	EntryID     *uuid.UUID
	Date        string
	ItemType    string // Malzeme, Nakit or Boş teneke
	Description string // material name; ignored for cash and tins
	Quantity    decimal.Decimal
	Unit        string
	UnitPrice   decimal.Decimal
	Note        string
}

// SaveGivenEntryOutput represents the output of a given-side save.
type SaveGivenEntryOutput struct {
	Entry *EntryOutput
}

// SaveGivenEntryUseCase records value given to a beekeeper. Bulk
// pricing from the rule table applies to allowlisted material names.
type SaveGivenEntryUseCase struct {
	entryRepo adapter.EntryRepository
	pricing   valueobject.PricingTable
}

// NewSaveGivenEntryUseCase creates a new SaveGivenEntryUseCase instance.
func NewSaveGivenEntryUseCase(entryRepo adapter.EntryRepository, pricing valueobject.PricingTable) *SaveGivenEntryUseCase {
	return &SaveGivenEntryUseCase{
		entryRepo: entryRepo,
		pricing:   pricing,
	}
}

// Execute validates and persists the entry.
func (uc *SaveGivenEntryUseCase) Execute(ctx context.Context, input SaveGivenEntryInput) (*SaveGivenEntryOutput, error) {
	if !isValidDate(input.Date) {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeInvalidEntryDate,
			"date must be YYYY-MM-DD",
			domainerror.ErrInvalidEntryDate,
		)
	}

	description := textnorm.TitleCase(input.Description)
	quantity := input.Quantity
	unit := textnorm.NormalizeUnit(input.Unit)

	switch input.ItemType {
	case entity.ItemTypeCash:
		description = entity.ItemTypeCash
		quantity = decimal.NewFromInt(1)
		unit = "TL"
	case entity.ItemTypeEmptyTin:
		if description == "" {
			description = entity.ItemTypeEmptyTin
		}
		unit = "Adet"
	default:
		if description == "" {
			return nil, domainerror.NewEntryError(
				domainerror.ErrCodeMissingDescription,
				"material description is required",
				domainerror.ErrMissingDescription,
			)
		}
	}

	if quantity.Sign() <= 0 {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeInvalidQuantity,
			"quantity must be greater than zero",
			domainerror.ErrInvalidQuantity,
		)
	}
	if input.UnitPrice.Sign() <= 0 {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeMissingUnitPrice,
			"unit price must be greater than zero",
			domainerror.ErrMissingUnitPrice,
		)
	}

	// The rule table only matches allowlisted names; everything else
	// prices flat at unitPrice×quantity.
	price := uc.pricing.Total(description, quantity, input.UnitPrice)

	var entry *entity.Entry
	if input.EntryID == nil {
		entry = entity.NewEntry(entity.OwnerTypeBeekeeper, input.BeekeeperID)
		entry.Order = nextOrder(ctx, uc.entryRepo, input.BeekeeperID, entity.SideRight)
	} else {
		found, err := uc.entryRepo.FindByID(ctx, *input.EntryID)
		if err != nil {
			return nil, domainerror.NewEntryError(
				domainerror.ErrCodeEntryNotFound,
				"entry not found",
				domainerror.ErrEntryNotFound,
			)
		}
		entry = found
	}

	entry.Side = entity.SideRight
	entry.Date = input.Date
	entry.Description = description
	entry.ItemType = input.ItemType
	entry.Note = textnorm.NormalizeSpaces(input.Note)
	entry.Quantity = &quantity
	entry.Unit = unit
	entry.UnitPrice = &input.UnitPrice
	entry.Price = &price

	if input.EntryID == nil {
		if err := uc.entryRepo.Create(ctx, entry); err != nil {
			return nil, fmt.Errorf("failed to create entry: %w", err)
		}
	} else {
		if err := uc.entryRepo.Update(ctx, entry); err != nil {
			return nil, fmt.Errorf("failed to update entry: %w", err)
		}
	}

	return &SaveGivenEntryOutput{Entry: toEntryOutput(entry)}, nil
}
