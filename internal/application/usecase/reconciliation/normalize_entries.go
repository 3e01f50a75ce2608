// Package reconciliation contains the repair passes that keep stored
// text fields canonical and cross-references aligned. Both passes are
// pure equality checks over the current rows, so re-running them from
// any number of clients is safe.
package reconciliation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/honey-ledger/backend/internal/application/adapter"
	"github.com/honey-ledger/backend/internal/domain/entity"
	domainerror "github.com/honey-ledger/backend/internal/domain/error"
	"github.com/honey-ledger/backend/internal/domain/textnorm"
)

// NormalizeEntriesInput addresses one owner partition.
type NormalizeEntriesInput struct {
	OwnerType entity.OwnerType
	OwnerID   uuid.UUID
}

// NormalizeEntriesOutput reports what the pass touched.
type NormalizeEntriesOutput struct {
	Examined int
	Updated  int
	Batches  int
}

// NormalizeEntriesUseCase rewrites the text fields of one owner
// partition to their canonical casing. Each owner type has its own
// field rules; entries already canonical are not written.
type NormalizeEntriesUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewNormalizeEntriesUseCase creates a new NormalizeEntriesUseCase instance.
func NewNormalizeEntriesUseCase(entryRepo adapter.EntryRepository) *NormalizeEntriesUseCase {
	return &NormalizeEntriesUseCase{entryRepo: entryRepo}
}

// Execute runs the pass over the partition.
func (uc *NormalizeEntriesUseCase) Execute(ctx context.Context, input NormalizeEntriesInput) (*NormalizeEntriesOutput, error) {
	switch input.OwnerType {
	case entity.OwnerTypeBeekeeper, entity.OwnerTypeFactory, entity.OwnerTypeSupplier:
	default:
		return nil, domainerror.NewOwnerError(
			domainerror.ErrCodeUnknownOwnerType,
			fmt.Sprintf("unknown owner type %q", input.OwnerType),
			domainerror.ErrUnknownOwnerType,
		)
	}

	entries, err := uc.entryRepo.FindByOwner(ctx, input.OwnerType, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}

	var updates []adapter.EntryUpdate
	for _, entry := range entries {
		var patch adapter.EntryPatch
		switch input.OwnerType {
		case entity.OwnerTypeBeekeeper:
			patch = normalizeBeekeeperEntry(entry)
		case entity.OwnerTypeFactory:
			patch = normalizeFactoryEntry(entry)
		case entity.OwnerTypeSupplier:
			patch = normalizeSupplierEntry(entry)
		}
		if !patch.IsEmpty() {
			updates = append(updates, adapter.EntryUpdate{ID: entry.ID, Patch: patch})
		}
	}

	output := &NormalizeEntriesOutput{Examined: len(entries)}
	if len(updates) == 0 {
		return output, nil
	}

	result, err := uc.entryRepo.PatchBatch(ctx, updates)
	output.Updated = result.Operations
	output.Batches = result.Batches
	if err != nil {
		return output, fmt.Errorf("failed to normalize entries: %w", err)
	}

	slog.Info("Normalized ledger entries",
		"ownerType", input.OwnerType,
		"ownerID", input.OwnerID,
		"examined", output.Examined,
		"updated", output.Updated,
	)
	return output, nil
}

// normalizeBeekeeperEntry recomputes unit for both sides, the honey
// "Bal - X" description and detail backfill for the left side, and
// plain title casing for the right side.
func normalizeBeekeeperEntry(entry *entity.Entry) adapter.EntryPatch {
	var patch adapter.EntryPatch

	if unit := textnorm.NormalizeUnit(entry.Unit); unit != "" && unit != entry.Unit {
		patch.Unit = &unit
	}

	normalizedDescription := textnorm.TitleCase(entry.Description)
	switch entry.Side {
	case entity.SideLeft:
		lower := textnorm.NormalizeText(entry.Description)
		detail := entry.Detail
		if detail == "" && strings.HasPrefix(lower, "bal -") {
			pieces := strings.Split(entry.Description, "-")
			detail = strings.TrimSpace(strings.Join(pieces[1:], "-"))
		}
		normalizedDetail := ""
		if detail != "" {
			normalizedDetail = textnorm.TitleCase(detail)
		}

		final := normalizedDescription
		if strings.HasPrefix(lower, "bal -") && normalizedDetail != "" {
			final = "Bal - " + normalizedDetail
		}
		if final != "" && final != entry.Description {
			patch.Description = &final
		}
		if normalizedDetail != "" && normalizedDetail != entry.Detail {
			patch.Detail = &normalizedDetail
		}
	case entity.SideRight:
		if normalizedDescription != "" && normalizedDescription != entry.Description {
			patch.Description = &normalizedDescription
		}
	}
	return patch
}

// normalizeFactoryEntry dispatches on the entry type: shipment headers
// carry a title, lines carry person/type/status/unit, payments a note,
// and untyped legacy rows a description and unit.
func normalizeFactoryEntry(entry *entity.Entry) adapter.EntryPatch {
	var patch adapter.EntryPatch
	switch entry.EntryType {
	case entity.EntryTypeShipment:
		if title := textnorm.TitleCase(entry.Title); title != "" && title != entry.Title {
			patch.Title = &title
		}
	case entity.EntryTypeShipmentLine:
		if name := textnorm.TitleCase(entry.PersonName); name != "" && name != entry.PersonName {
			patch.PersonName = &name
		}
		lineType := ""
		if entry.Type != "" {
			lineType = textnorm.TitleCase(entry.Type)
		}
		if lineType != entry.Type {
			patch.Type = &lineType
		}
		status := ""
		if entry.PaymentStatus != "" {
			status = textnorm.TitleCase(entry.PaymentStatus)
		}
		if status != entry.PaymentStatus {
			patch.PaymentStatus = &status
		}
		if unit := textnorm.NormalizeUnit(entry.Unit); unit != "" && unit != entry.Unit {
			patch.Unit = &unit
		}
	case entity.EntryTypePayment:
		note := ""
		if entry.Note != "" {
			note = textnorm.TitleCase(entry.Note)
		}
		if note != entry.Note {
			patch.Note = &note
		}
	default:
		if desc := textnorm.TitleCase(entry.Description); desc != "" && desc != entry.Description {
			patch.Description = &desc
		}
		if unit := textnorm.NormalizeUnit(entry.Unit); unit != "" && unit != entry.Unit {
			patch.Unit = &unit
		}
	}
	return patch
}

// normalizeSupplierEntry handles payments by note and everything else
// by description and unit.
func normalizeSupplierEntry(entry *entity.Entry) adapter.EntryPatch {
	var patch adapter.EntryPatch
	if entry.EntryType == entity.EntryTypePayment {
		note := ""
		if entry.Note != "" {
			note = textnorm.TitleCase(entry.Note)
		}
		if note != entry.Note {
			patch.Note = &note
		}
		return patch
	}
	if desc := textnorm.TitleCase(entry.Description); desc != "" && desc != entry.Description {
		patch.Description = &desc
	}
	if unit := textnorm.NormalizeUnit(entry.Unit); unit != "" && unit != entry.Unit {
		patch.Unit = &unit
	}
	return patch
}
