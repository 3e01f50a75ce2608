package supplier

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

// SavePurchaseInput represents the input for a purchase save. The
// supplier pages keep the ledger's historical convention: UnitPrice is
// stored in the entry's price field and row values multiply on read.
type SavePurchaseInput struct {
	SupplierID  uuid.UUID
	EntryID     *uuid.UUID
	Date        string
	Description string
	Quantity    decimal.Decimal
	Unit        string
	UnitPrice   decimal.Decimal
	Note        string
}

// SavePurchaseOutput represents the output of a purchase save.
type SavePurchaseOutput struct {
	Purchase *PurchaseOutput
}

// SavePurchaseUseCase records material bought from a supplier.
type SavePurchaseUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewSavePurchaseUseCase creates a new SavePurchaseUseCase instance.
func NewSavePurchaseUseCase(entryRepo adapter.EntryRepository) *SavePurchaseUseCase {
	return &SavePurchaseUseCase{entryRepo: entryRepo}
}

// Execute validates and persists the purchase.
func (uc *SavePurchaseUseCase) Execute(ctx context.Context, input SavePurchaseInput) (*SavePurchaseOutput, error) {
	if !isValidDate(input.Date) {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeInvalidEntryDate,
			"date must be YYYY-MM-DD",
			domainerror.ErrInvalidEntryDate,
		)
	}
	description := textnorm.TitleCase(input.Description)
	if description == "" {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeMissingDescription,
			"description is required",
			domainerror.ErrMissingDescription,
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

	var entry *entity.Entry
	if input.EntryID == nil {
		entry = entity.NewEntry(entity.OwnerTypeSupplier, input.SupplierID)
		entry.Side = entity.SideLeft
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

	entry.Date = input.Date
	entry.Description = description
	entry.Note = textnorm.NormalizeSpaces(input.Note)
	entry.Quantity = &input.Quantity
	entry.Unit = textnorm.NormalizeUnit(input.Unit)
	entry.Price = &input.UnitPrice

	if input.EntryID == nil {
		if err := uc.entryRepo.Create(ctx, entry); err != nil {
			return nil, fmt.Errorf("failed to create purchase: %w", err)
		}
	} else {
		if err := uc.entryRepo.Update(ctx, entry); err != nil {
			return nil, fmt.Errorf("failed to update purchase: %w", err)
		}
	}

	return &SavePurchaseOutput{Purchase: toPurchaseOutput(entry)}, nil
}
