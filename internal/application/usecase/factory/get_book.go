package factory

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/honey-ledger/backend/internal/application/adapter"
	"github.com/honey-ledger/backend/internal/domain/entity"
	domainerror "github.com/honey-ledger/backend/internal/domain/error"
)

// GetBookInput represents the input for reading a factory's book.
type GetBookInput struct {
	FactoryID uuid.UUID
}

// GetBookOutput is the full factory book: shipments with their lines,
// payments, legacy flat entries and the running totals.
type GetBookOutput struct {
	Factory        *FactoryOutput
	Shipments      []*ShipmentOutput
	Payments       []*PaymentOutput
	Legacy         []*LegacyEntryOutput
	ShipmentsTotal decimal.Decimal
	PaymentsTotal  decimal.Decimal
	Remaining      decimal.Decimal
}

// GetBookUseCase assembles a factory's ledger book snapshot.
type GetBookUseCase struct {
	factoryRepo adapter.FactoryRepository
	entryRepo   adapter.EntryRepository
}

// NewGetBookUseCase creates a new GetBookUseCase instance.
func NewGetBookUseCase(factoryRepo adapter.FactoryRepository, entryRepo adapter.EntryRepository) *GetBookUseCase {
	return &GetBookUseCase{
		factoryRepo: factoryRepo,
		entryRepo:   entryRepo,
	}
}

// Execute reads the book. Shipment totals come from the cached line
// totals; legacy untyped entries contribute price×quantity.
func (uc *GetBookUseCase) Execute(ctx context.Context, input GetBookInput) (*GetBookOutput, error) {
	fac, err := uc.factoryRepo.FindByID(ctx, input.FactoryID)
	if err != nil {
		return nil, domainerror.NewOwnerError(
			domainerror.ErrCodeOwnerNotFound,
			"factory not found",
			domainerror.ErrOwnerNotFound,
		)
	}

	entries, err := uc.entryRepo.FindByOwner(ctx, entity.OwnerTypeFactory, input.FactoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load factory entries: %w", err)
	}

	var headers []*entity.Entry
	linesByShipment := make(map[uuid.UUID][]*entity.Entry)
	var payments, legacy []*entity.Entry
	for _, e := range entries {
		switch e.EntryType {
		case entity.EntryTypeShipment:
			headers = append(headers, e)
		case entity.EntryTypeShipmentLine:
			if e.ShipmentID != nil {
				linesByShipment[*e.ShipmentID] = append(linesByShipment[*e.ShipmentID], e)
			}
		case entity.EntryTypePayment:
			payments = append(payments, e)
		case entity.EntryTypePlain:
			legacy = append(legacy, e)
		}
	}

	sort.SliceStable(headers, func(i, j int) bool { return entity.SortChronological(headers[i], headers[j]) })
	sort.SliceStable(payments, func(i, j int) bool { return entity.SortChronological(payments[i], payments[j]) })
	sort.SliceStable(legacy, func(i, j int) bool { return entity.SortChronological(legacy[i], legacy[j]) })

	output := &GetBookOutput{
		Factory:        toFactoryOutput(fac),
		Shipments:      make([]*ShipmentOutput, 0, len(headers)),
		Payments:       make([]*PaymentOutput, 0, len(payments)),
		Legacy:         make([]*LegacyEntryOutput, 0, len(legacy)),
		ShipmentsTotal: decimal.Zero,
		PaymentsTotal:  decimal.Zero,
	}

	for _, h := range headers {
		lines := linesByShipment[h.ID]
		sortLines(lines)

		shipment := &ShipmentOutput{
			ID:            h.ID,
			Date:          h.Date,
			DisplayDate:   entity.FormatDisplayDate(h.Date),
			Title:         h.Title,
			PaymentStatus: h.PaymentStatus,
			Lines:         make([]*LineOutput, 0, len(lines)),
			Total:         decimal.Zero,
			CreatedAt:     h.CreatedAt,
		}
		for _, line := range lines {
			shipment.Lines = append(shipment.Lines, toLineOutput(line))
			shipment.Total = shipment.Total.Add(line.LineTotal())
		}
		output.ShipmentsTotal = output.ShipmentsTotal.Add(shipment.Total)
		output.Shipments = append(output.Shipments, shipment)
	}

	for _, p := range payments {
		amount := decimal.Zero
		if p.Amount != nil {
			amount = *p.Amount
		}
		output.PaymentsTotal = output.PaymentsTotal.Add(amount)
		output.Payments = append(output.Payments, &PaymentOutput{
			ID:          p.ID,
			Date:        p.Date,
			DisplayDate: entity.FormatDisplayDate(p.Date),
			Amount:      amount,
			Note:        p.Note,
			CreatedAt:   p.CreatedAt,
		})
	}

	for _, e := range legacy {
		value := e.LegacyValue()
		output.ShipmentsTotal = output.ShipmentsTotal.Add(value)
		output.Legacy = append(output.Legacy, &LegacyEntryOutput{
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

	output.Remaining = output.ShipmentsTotal.Sub(output.PaymentsTotal)
	return output, nil
}

// sortLines orders by line number when both rows carry one, dates
// breaking ties and covering unnumbered rows.
func sortLines(lines []*entity.Entry) {
	sort.SliceStable(lines, func(i, j int) bool {
		a, b := lines[i], lines[j]
		if a.LineNo != nil && b.LineNo != nil && *a.LineNo != *b.LineNo {
			return *a.LineNo < *b.LineNo
		}
		if a.LineNo != nil && b.LineNo == nil {
			return true
		}
		if a.LineNo == nil && b.LineNo != nil {
			return false
		}
		return entity.SortChronological(a, b)
	})
}
