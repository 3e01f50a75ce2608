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

// SaveGivenInput represents the input for an in-kind settlement save.
// The quantity is wax in kilograms; the unit price is optional and
// only affects the valued balance when present.
type SaveGivenInput struct {
	SupplierID uuid.UUID
	EntryID    *uuid.UUID
	Date       string
	Quantity   decimal.Decimal
	UnitPrice  *decimal.Decimal
	Note       string
}

// SaveGivenOutput represents the output of an in-kind settlement save.
type SaveGivenOutput struct {
	Given *GivenOutput
}

// SaveGivenUseCase records material returned to a supplier in lieu of
// cash. Used by suppliers running in the material-given ledger mode.
type SaveGivenUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewSaveGivenUseCase creates a new SaveGivenUseCase instance.
func NewSaveGivenUseCase(entryRepo adapter.EntryRepository) *SaveGivenUseCase {
	return &SaveGivenUseCase{entryRepo: entryRepo}
}

// Execute validates and persists the settlement.
func (uc *SaveGivenUseCase) Execute(ctx context.Context, input SaveGivenInput) (*SaveGivenOutput, error) {
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
	if input.UnitPrice != nil && input.UnitPrice.Sign() < 0 {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeMissingUnitPrice,
			"unit price cannot be negative",
			domainerror.ErrMissingUnitPrice,
		)
	}

	var entry *entity.Entry
	if input.EntryID == nil {
		entry = entity.NewEntry(entity.OwnerTypeSupplier, input.SupplierID)
		entry.EntryType = entity.EntryTypeSupplierGive
		entry.Side = entity.SideRight
	} else {
		found, err := uc.entryRepo.FindByID(ctx, *input.EntryID)
		if err != nil || found.EntryType != entity.EntryTypeSupplierGive {
			return nil, domainerror.NewEntryError(
				domainerror.ErrCodeEntryNotFound,
				"entry not found",
				domainerror.ErrEntryNotFound,
			)
		}
		entry = found
	}

	entry.Date = input.Date
	entry.Description = entity.ItemTypeWax
	entry.Note = textnorm.NormalizeSpaces(input.Note)
	entry.Quantity = &input.Quantity
	entry.Unit = "Kg"
	entry.Price = input.UnitPrice

	if input.EntryID == nil {
		if err := uc.entryRepo.Create(ctx, entry); err != nil {
			return nil, fmt.Errorf("failed to create settlement: %w", err)
		}
	} else {
		if err := uc.entryRepo.Update(ctx, entry); err != nil {
			return nil, fmt.Errorf("failed to update settlement: %w", err)
		}
	}

	return &SaveGivenOutput{Given: &GivenOutput{
		ID:          entry.ID,
		Date:        entry.Date,
		DisplayDate: entity.FormatDisplayDate(entry.Date),
		Description: entry.Description,
		Quantity:    entry.Quantity,
		Unit:        entry.Unit,
		Price:       entry.Price,
		Value:       entry.LegacyValue(),
		CreatedAt:   entry.CreatedAt,
	}}, nil
}
