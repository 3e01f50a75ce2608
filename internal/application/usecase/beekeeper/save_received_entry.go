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
)

// SaveReceivedEntryInput represents input for the left (received) side.
// EntryID nil creates a new entry, non-nil updates an existing one.
type SaveReceivedEntryInput struct {
	BeekeeperID uuid.UUID
	EntryID     *uuid.UUID
	Date        string
	ItemType    string // entity.ItemTypeHoney or entity.ItemTypeWax
	Detail      string // honey variety, e.g. "Çiçek"
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Note        string
}

// SaveReceivedEntryOutput represents the output of a received-side save.
type SaveReceivedEntryOutput struct {
	Entry *EntryOutput
}

// SaveReceivedEntryUseCase records honey or wax received from a beekeeper.
type SaveReceivedEntryUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewSaveReceivedEntryUseCase creates a new SaveReceivedEntryUseCase instance.
func NewSaveReceivedEntryUseCase(entryRepo adapter.EntryRepository) *SaveReceivedEntryUseCase {
	return &SaveReceivedEntryUseCase{entryRepo: entryRepo}
}

// Execute validates and persists the entry. The stored price is always
// unitPrice×quantity computed here; reads never recompute it.
func (uc *SaveReceivedEntryUseCase) Execute(ctx context.Context, input SaveReceivedEntryInput) (*SaveReceivedEntryOutput, error) {
	if !isValidDate(input.Date) {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeInvalidEntryDate,
			"date must be YYYY-MM-DD",
			domainerror.ErrInvalidEntryDate,
		)
	}
	if input.Quantity.Sign() <= 0 {
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

	var description, unit string
	detail := textnorm.TitleCase(input.Detail)
	switch input.ItemType {
	case entity.ItemTypeWax:
		description = entity.ItemTypeWax
		unit = "Kg"
		detail = ""
	default:
		// Honey keeps the legacy "Bal - X" description so older
		// records and new ones render identically.
		description = entity.ItemTypeHoney
		if detail != "" {
			description = entity.ItemTypeHoney + " - " + detail
		}
		unit = "Teneke"
	}

	price := input.UnitPrice.Mul(input.Quantity)

	entry, err := uc.loadOrCreate(ctx, input)
	if err != nil {
		return nil, err
	}

	entry.Side = entity.SideLeft
	entry.Date = input.Date
	entry.Description = description
	entry.Detail = detail
	entry.ItemType = input.ItemType
	entry.Note = textnorm.NormalizeSpaces(input.Note)
	entry.Quantity = &input.Quantity
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

	return &SaveReceivedEntryOutput{Entry: toEntryOutput(entry)}, nil
}

func (uc *SaveReceivedEntryUseCase) loadOrCreate(ctx context.Context, input SaveReceivedEntryInput) (*entity.Entry, error) {
	if input.EntryID == nil {
		entry := entity.NewEntry(entity.OwnerTypeBeekeeper, input.BeekeeperID)
		entry.Order = nextOrder(ctx, uc.entryRepo, input.BeekeeperID, entity.SideLeft)
		return entry, nil
	}
	entry, err := uc.entryRepo.FindByID(ctx, *input.EntryID)
	if err != nil {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeEntryNotFound,
			"entry not found",
			domainerror.ErrEntryNotFound,
		)
	}
	return entry, nil
}

// nextOrder appends a manual position only when the side already uses
// manual ordering; otherwise new entries keep the chronological default.
func nextOrder(ctx context.Context, repo adapter.EntryRepository, beekeeperID uuid.UUID, side entity.Side) *int {
	entries, err := repo.FindByOwner(ctx, entity.OwnerTypeBeekeeper, beekeeperID)
	if err != nil {
		return nil
	}
	max := 0
	found := false
	for _, e := range entries {
		if e.Side != side || e.Order == nil {
			continue
		}
		found = true
		if *e.Order > max {
			max = *e.Order
		}
	}
	if !found {
		return nil
	}
	next := max + 1
	return &next
}
