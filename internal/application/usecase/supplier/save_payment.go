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

// SavePaymentInput represents the input for a supplier payment save.
type SavePaymentInput struct {
	SupplierID uuid.UUID
	PaymentID  *uuid.UUID
	Date       string
	Amount     decimal.Decimal
	Note       string
}

// SavePaymentOutput represents the output of a payment save.
type SavePaymentOutput struct {
	Payment *PaymentOutput
}

// SavePaymentUseCase records cash paid to a supplier.
type SavePaymentUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewSavePaymentUseCase creates a new SavePaymentUseCase instance.
func NewSavePaymentUseCase(entryRepo adapter.EntryRepository) *SavePaymentUseCase {
	return &SavePaymentUseCase{entryRepo: entryRepo}
}

// Execute validates and persists the payment.
func (uc *SavePaymentUseCase) Execute(ctx context.Context, input SavePaymentInput) (*SavePaymentOutput, error) {
	if !isValidDate(input.Date) {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeInvalidEntryDate,
			"date must be YYYY-MM-DD",
			domainerror.ErrInvalidEntryDate,
		)
	}
	if input.Amount.Sign() <= 0 {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeInvalidAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidAmount,
		)
	}

	var entry *entity.Entry
	if input.PaymentID == nil {
		entry = entity.NewEntry(entity.OwnerTypeSupplier, input.SupplierID)
		entry.EntryType = entity.EntryTypePayment
		entry.Side = entity.SideRight
	} else {
		found, err := uc.entryRepo.FindByID(ctx, *input.PaymentID)
		if err != nil || found.EntryType != entity.EntryTypePayment {
			return nil, domainerror.NewEntryError(
				domainerror.ErrCodeEntryNotFound,
				"payment not found",
				domainerror.ErrEntryNotFound,
			)
		}
		entry = found
	}

	entry.Date = input.Date
	entry.Amount = &input.Amount
	entry.Note = textnorm.NormalizeSpaces(input.Note)

	if input.PaymentID == nil {
		if err := uc.entryRepo.Create(ctx, entry); err != nil {
			return nil, fmt.Errorf("failed to create payment: %w", err)
		}
	} else {
		if err := uc.entryRepo.Update(ctx, entry); err != nil {
			return nil, fmt.Errorf("failed to update payment: %w", err)
		}
	}

	return &SavePaymentOutput{Payment: &PaymentOutput{
		ID:          entry.ID,
		Date:        entry.Date,
		DisplayDate: entity.FormatDisplayDate(entry.Date),
		Amount:      *entry.Amount,
		Note:        entry.Note,
		CreatedAt:   entry.CreatedAt,
	}}, nil
}
