package supplier

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/honey-ledger/backend/internal/application/adapter"
	"github.com/honey-ledger/backend/internal/domain/entity"
	domainerror "github.com/honey-ledger/backend/internal/domain/error"
	"github.com/honey-ledger/backend/internal/domain/valueobject"
)

// GetBookInput represents the input for reading a supplier's book.
type GetBookInput struct {
	SupplierID uuid.UUID
}

// GetBookOutput is the full supplier book. Mode decides which right
// side list is populated: Payments for cash-settled suppliers, Given
// for suppliers settled in returned material.
type GetBookOutput struct {
	Supplier       *SupplierOutput
	Mode           valueobject.LedgerMode
	Purchases      []*PurchaseOutput
	Payments       []*PaymentOutput
	Given          []*GivenOutput
	PurchasesTotal decimal.Decimal
	RightTotal     decimal.Decimal
	Balance        valueobject.Balance
}

// GetBookUseCase assembles a supplier's ledger book snapshot.
type GetBookUseCase struct {
	supplierRepo adapter.SupplierRepository
	entryRepo    adapter.EntryRepository
	modes        valueobject.LedgerModeTable
}

// NewGetBookUseCase creates a new GetBookUseCase instance.
func NewGetBookUseCase(supplierRepo adapter.SupplierRepository, entryRepo adapter.EntryRepository, modes valueobject.LedgerModeTable) *GetBookUseCase {
	return &GetBookUseCase{
		supplierRepo: supplierRepo,
		entryRepo:    entryRepo,
		modes:        modes,
	}
}

// Execute reads the book.
func (uc *GetBookUseCase) Execute(ctx context.Context, input GetBookInput) (*GetBookOutput, error) {
	sup, err := uc.supplierRepo.FindByID(ctx, input.SupplierID)
	if err != nil {
		return nil, domainerror.NewOwnerError(
			domainerror.ErrCodeOwnerNotFound,
			"supplier not found",
			domainerror.ErrOwnerNotFound,
		)
	}

	entries, err := uc.entryRepo.FindByOwner(ctx, entity.OwnerTypeSupplier, input.SupplierID)
	if err != nil {
		return nil, fmt.Errorf("failed to load supplier entries: %w", err)
	}
	sort.SliceStable(entries, func(i, j int) bool { return entity.SortChronological(entries[i], entries[j]) })

	output := &GetBookOutput{
		Supplier:       toSupplierOutput(sup),
		Mode:           uc.modes.ModeFor(sup.Name),
		PurchasesTotal: decimal.Zero,
		RightTotal:     decimal.Zero,
	}

	for _, e := range entries {
		switch {
		case e.Side == entity.SideLeft:
			output.Purchases = append(output.Purchases, toPurchaseOutput(e))
			output.PurchasesTotal = output.PurchasesTotal.Add(e.LegacyValue())
		case e.EntryType == entity.EntryTypePayment:
			amount := decimal.Zero
			if e.Amount != nil {
				amount = *e.Amount
			}
			output.RightTotal = output.RightTotal.Add(amount)
			output.Payments = append(output.Payments, &PaymentOutput{
				ID:          e.ID,
				Date:        e.Date,
				DisplayDate: entity.FormatDisplayDate(e.Date),
				Amount:      amount,
				Note:        e.Note,
				CreatedAt:   e.CreatedAt,
			})
		case e.EntryType == entity.EntryTypeSupplierGive:
			value := e.LegacyValue()
			output.RightTotal = output.RightTotal.Add(value)
			output.Given = append(output.Given, &GivenOutput{
				ID:          e.ID,
				Date:        e.Date,
				DisplayDate: entity.FormatDisplayDate(e.Date),
				Description: e.Description,
				Quantity:    e.Quantity,
				Unit:        e.Unit,
				Price:       e.Price,
				Value:       value,
				CreatedAt:   e.CreatedAt,
			})
		}
	}

	output.Balance = valueobject.NewBalance(output.PurchasesTotal, output.RightTotal)
	return output, nil
}
