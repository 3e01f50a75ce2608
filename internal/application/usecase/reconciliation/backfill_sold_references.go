package reconciliation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/honey-ledger/backend/internal/application/adapter"
	"github.com/honey-ledger/backend/internal/domain/entity"
	"github.com/honey-ledger/backend/internal/domain/textnorm"
)

// BackfillSoldReferencesInput addresses one factory partition.
type BackfillSoldReferencesInput struct {
	FactoryID uuid.UUID
}

// BackfillSoldReferencesOutput reports what the pass touched. Skipped
// counts lines whose source entry no longer exists.
type BackfillSoldReferencesOutput struct {
	Examined int
	Updated  int
	Skipped  int
	Batches  int
}

// BackfillSoldReferencesUseCase realigns beekeeper inventory with the
// factory's shipment lines: for every line holding a source entry id
// whose parent shipment still exists, the five sold fields on the
// source are recomputed from the current header and corrected when
// they drifted. When two lines claim the same source the later line
// wins, matching the write path.
type BackfillSoldReferencesUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewBackfillSoldReferencesUseCase creates a new BackfillSoldReferencesUseCase instance.
func NewBackfillSoldReferencesUseCase(entryRepo adapter.EntryRepository) *BackfillSoldReferencesUseCase {
	return &BackfillSoldReferencesUseCase{entryRepo: entryRepo}
}

// Execute runs the pass over the factory's lines.
func (uc *BackfillSoldReferencesUseCase) Execute(ctx context.Context, input BackfillSoldReferencesInput) (*BackfillSoldReferencesOutput, error) {
	entries, err := uc.entryRepo.FindByOwner(ctx, entity.OwnerTypeFactory, input.FactoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load factory entries: %w", err)
	}

	shipments := make(map[uuid.UUID]*entity.Entry)
	for _, entry := range entries {
		if entry.EntryType == entity.EntryTypeShipment {
			shipments[entry.ID] = entry
		}
	}

	output := &BackfillSoldReferencesOutput{}
	var updates []adapter.EntryUpdate
	for _, entry := range entries {
		if entry.EntryType != entity.EntryTypeShipmentLine || entry.SourceEntryID == nil {
			continue
		}
		if entry.ShipmentID == nil {
			continue
		}
		header, ok := shipments[*entry.ShipmentID]
		if !ok {
			// Orphan line; nothing to align against.
			continue
		}
		output.Examined++

		want := adapter.SoldReference{
			ShipmentID:    header.ID,
			ShipmentTitle: header.Title,
			ShipmentDate:  header.Date,
			FactoryID:     input.FactoryID,
		}
		if entry.PaymentStatus != "" {
			want.PaymentStatus = textnorm.TitleCase(entry.PaymentStatus)
		}

		source, err := uc.entryRepo.FindByID(ctx, *entry.SourceEntryID)
		if err != nil {
			output.Skipped++
			slog.Debug("Source entry missing during backfill",
				"sourceEntryID", *entry.SourceEntryID,
				"lineID", entry.ID,
			)
			continue
		}
		if soldMatches(source, want) {
			continue
		}

		ref := want
		updates = append(updates, adapter.EntryUpdate{
			ID:    source.ID,
			Patch: adapter.EntryPatch{SetSold: &ref},
		})
	}

	if len(updates) == 0 {
		return output, nil
	}

	result, err := uc.entryRepo.PatchBatch(ctx, updates)
	output.Updated = result.Operations
	output.Batches = result.Batches
	if err != nil {
		return output, fmt.Errorf("failed to backfill sold references: %w", err)
	}

	slog.Info("Backfilled sold references",
		"factoryID", input.FactoryID,
		"examined", output.Examined,
		"updated", output.Updated,
		"skipped", output.Skipped,
	)
	return output, nil
}

// soldMatches reports whether the source already carries exactly the
// wanted reference. An empty payment status matches a nil field.
func soldMatches(source *entity.Entry, want adapter.SoldReference) bool {
	if source.SoldShipmentID == nil || *source.SoldShipmentID != want.ShipmentID {
		return false
	}
	if source.SoldFactoryID == nil || *source.SoldFactoryID != want.FactoryID {
		return false
	}
	if strValue(source.SoldShipmentTitle) != want.ShipmentTitle {
		return false
	}
	if strValue(source.SoldShipmentDate) != want.ShipmentDate {
		return false
	}
	return strValue(source.SoldPaymentStatus) == want.PaymentStatus
}

func strValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
