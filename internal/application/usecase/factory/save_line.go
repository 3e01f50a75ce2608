package factory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/honey-ledger/backend/internal/application/adapter"
	"github.com/honey-ledger/backend/internal/domain/entity"
	domainerror "github.com/honey-ledger/backend/internal/domain/error"
	"github.com/honey-ledger/backend/internal/domain/textnorm"
)

// SaveLineInput represents the input for a shipment line save. LineID
// nil creates a new line. SourceEntryID links the line to a beekeeper
// inventory entry; nil leaves the line unlinked.
type SaveLineInput struct {
	ShipmentID    uuid.UUID
	LineID        *uuid.UUID
	Date          string
	LineNo        *int
	PersonName    string
	Type          string
	Quantity      decimal.Decimal
	Unit          string
	UnitPrice     decimal.Decimal
	PaymentStatus string
	SourceEntryID *uuid.UUID
}

// SaveLineOutput represents the output of a line save. Warning is set
// when a requested source link could not be established.
type SaveLineOutput struct {
	Line    *LineOutput
	Warning string
}

// SaveLineUseCase creates or updates a shipment line and maintains the
// cross-reference on the beekeeper inventory it consumes: the line is
// persisted first, then the previous source is unlinked if the link
// moved, then the new source gets the reference.
type SaveLineUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewSaveLineUseCase creates a new SaveLineUseCase instance.
func NewSaveLineUseCase(entryRepo adapter.EntryRepository) *SaveLineUseCase {
	return &SaveLineUseCase{entryRepo: entryRepo}
}

// Execute performs the save.
func (uc *SaveLineUseCase) Execute(ctx context.Context, input SaveLineInput) (*SaveLineOutput, error) {
	header, err := uc.entryRepo.FindByID(ctx, input.ShipmentID)
	if err != nil || header.EntryType != entity.EntryTypeShipment {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeShipmentNotFound,
			"shipment not found",
			domainerror.ErrShipmentNotFound,
		)
	}

	if !isValidDate(input.Date) {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeInvalidEntryDate,
			"date must be YYYY-MM-DD",
			domainerror.ErrInvalidEntryDate,
		)
	}
	personName := textnorm.TitleCase(input.PersonName)
	if personName == "" {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeMissingDescription,
			"person name is required",
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

	unitPrice, err := uc.resolveUnitPrice(ctx, input)
	if err != nil {
		return nil, err
	}

	var line *entity.Entry
	var previousSource *uuid.UUID
	if input.LineID == nil {
		line = entity.NewEntry(entity.OwnerTypeFactory, header.OwnerID)
		line.EntryType = entity.EntryTypeShipmentLine
		line.Side = entity.SideLeft
		line.ShipmentID = &input.ShipmentID
	} else {
		found, err := uc.entryRepo.FindByID(ctx, *input.LineID)
		if err != nil || found.EntryType != entity.EntryTypeShipmentLine {
			return nil, domainerror.NewEntryError(
				domainerror.ErrCodeLineNotFound,
				"shipment line not found",
				domainerror.ErrLineNotFound,
			)
		}
		line = found
		previousSource = found.SourceEntryID
	}

	lineNo := input.LineNo
	if lineNo == nil {
		next, err := uc.nextLineNo(ctx, input.ShipmentID)
		if err != nil {
			return nil, err
		}
		lineNo = &next
	}

	total := input.Quantity.Mul(unitPrice)

	line.Date = input.Date
	line.LineNo = lineNo
	line.PersonName = personName
	line.Type = textnorm.TitleCase(input.Type)
	line.Quantity = &input.Quantity
	line.Unit = textnorm.NormalizeUnit(input.Unit)
	line.UnitPrice = &unitPrice
	line.Total = &total
	line.PaymentStatus = textnorm.TitleCase(input.PaymentStatus)
	line.SourceEntryID = input.SourceEntryID

	if input.LineID == nil {
		if err := uc.entryRepo.Create(ctx, line); err != nil {
			return nil, fmt.Errorf("failed to create shipment line: %w", err)
		}
	} else {
		if err := uc.entryRepo.Update(ctx, line); err != nil {
			return nil, fmt.Errorf("failed to update shipment line: %w", err)
		}
	}

	warning := uc.syncSourceReferences(ctx, header, line, previousSource)

	return &SaveLineOutput{Line: toLineOutput(line), Warning: warning}, nil
}

// resolveUnitPrice takes the supplied unit price, falling back to the
// linked inventory entry's price when the form left it blank. A linked
// source with no derivable price blocks the save.
func (uc *SaveLineUseCase) resolveUnitPrice(ctx context.Context, input SaveLineInput) (decimal.Decimal, error) {
	if input.UnitPrice.Sign() > 0 {
		return input.UnitPrice, nil
	}
	if input.SourceEntryID != nil {
		source, err := uc.entryRepo.FindByID(ctx, *input.SourceEntryID)
		if err == nil {
			if derived := source.EffectiveUnitPrice(); derived != nil && derived.Sign() > 0 {
				return *derived, nil
			}
		}
		return decimal.Zero, domainerror.NewEntryError(
			domainerror.ErrCodeSourceEntryNoPrice,
			"Seçilen balda fiyat yok. Lütfen birim fiyat girin.",
			domainerror.ErrSourceEntryNoPrice,
		)
	}
	return decimal.Zero, domainerror.NewEntryError(
		domainerror.ErrCodeMissingUnitPrice,
		"unit price must be greater than zero",
		domainerror.ErrMissingUnitPrice,
	)
}

func (uc *SaveLineUseCase) nextLineNo(ctx context.Context, shipmentID uuid.UUID) (int, error) {
	lines, err := uc.entryRepo.FindShipmentLines(ctx, shipmentID)
	if err != nil {
		return 0, fmt.Errorf("failed to load shipment lines: %w", err)
	}
	max := 0
	for _, l := range lines {
		if l.LineNo != nil && *l.LineNo > max {
			max = *l.LineNo
		}
	}
	return max + 1, nil
}

// syncSourceReferences clears the reference on a source the line moved
// away from, then stamps the new source with the current shipment and
// payment status. A missing source entry is logged and skipped rather
// than failing the already-persisted line.
func (uc *SaveLineUseCase) syncSourceReferences(ctx context.Context, header, line *entity.Entry, previousSource *uuid.UUID) string {
	if previousSource != nil && (line.SourceEntryID == nil || *line.SourceEntryID != *previousSource) {
		if err := uc.entryRepo.Patch(ctx, *previousSource, adapter.EntryPatch{ClearSold: true}); err != nil {
			slog.Warn("Failed to clear sold reference on previous source",
				"sourceEntryID", *previousSource,
				"lineID", line.ID,
				"error", err,
			)
		}
	}

	if line.SourceEntryID == nil {
		return ""
	}

	if _, err := uc.entryRepo.FindByID(ctx, *line.SourceEntryID); err != nil {
		slog.Warn("Source entry missing, leaving inventory unlinked",
			"sourceEntryID", *line.SourceEntryID,
			"lineID", line.ID,
		)
		return "kaynak kayıt bulunamadı, stok bağlantısı kurulmadı"
	}

	ref := adapter.SoldReference{
		ShipmentID:    header.ID,
		ShipmentTitle: header.Title,
		ShipmentDate:  header.Date,
		PaymentStatus: line.PaymentStatus,
		FactoryID:     header.OwnerID,
	}
	if err := uc.entryRepo.Patch(ctx, *line.SourceEntryID, adapter.EntryPatch{SetSold: &ref}); err != nil {
		slog.Warn("Failed to set sold reference on source entry",
			"sourceEntryID", *line.SourceEntryID,
			"lineID", line.ID,
			"error", err,
		)
		return "kaynak kayıt güncellenemedi"
	}
	return ""
}
