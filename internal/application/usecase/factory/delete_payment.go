package factory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/honey-ledger/backend/internal/application/adapter"
	"github.com/honey-ledger/backend/internal/domain/entity"
	domainerror "github.com/honey-ledger/backend/internal/domain/error"
)

// DeletePaymentInput represents the input for a payment deletion.
type DeletePaymentInput struct {
	PaymentID uuid.UUID
}

// DeletePaymentUseCase removes one factory payment.
type DeletePaymentUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewDeletePaymentUseCase creates a new DeletePaymentUseCase instance.
func NewDeletePaymentUseCase(entryRepo adapter.EntryRepository) *DeletePaymentUseCase {
	return &DeletePaymentUseCase{entryRepo: entryRepo}
}

// Execute performs the deletion.
func (uc *DeletePaymentUseCase) Execute(ctx context.Context, input DeletePaymentInput) error {
	payment, err := uc.entryRepo.FindByID(ctx, input.PaymentID)
	if err != nil || payment.EntryType != entity.EntryTypePayment {
		return domainerror.NewEntryError(
			domainerror.ErrCodeEntryNotFound,
			"payment not found",
			domainerror.ErrEntryNotFound,
		)
	}
	if err := uc.entryRepo.Delete(ctx, input.PaymentID); err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}
	return nil
}
