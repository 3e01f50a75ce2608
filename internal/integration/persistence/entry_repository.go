// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/honey-ledger/backend/internal/application/adapter"
	"github.com/honey-ledger/backend/internal/domain/entity"
	domainerror "github.com/honey-ledger/backend/internal/domain/error"
	"github.com/honey-ledger/backend/internal/integration/persistence/model"
)

// entryRepository implements the adapter.EntryRepository interface.
// Multi-record writes are chunked at batchLimit operations; each chunk
// commits in its own transaction.
type entryRepository struct {
	db         *gorm.DB
	batchLimit int
}

// NewEntryRepository creates a new entry repository instance.
func NewEntryRepository(db *gorm.DB, batchLimit int) adapter.EntryRepository {
	return &entryRepository{
		db:         db,
		batchLimit: batchLimit,
	}
}

// Create creates a new entry in the database.
func (r *entryRepository) Create(ctx context.Context, entry *entity.Entry) error {
	entryModel := model.EntryFromEntity(entry)
	result := r.db.WithContext(ctx).Create(entryModel)
	if result.Error != nil {
		return fmt.Errorf("failed to create entry: %w", result.Error)
	}
	return nil
}

// Update replaces an existing entry's fields.
func (r *entryRepository) Update(ctx context.Context, entry *entity.Entry) error {
	entryModel := model.EntryFromEntity(entry)
	result := r.db.WithContext(ctx).Save(entryModel)
	if result.Error != nil {
		return fmt.Errorf("failed to update entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrEntryNotFound
	}
	return nil
}

// Patch applies a partial-merge update to one entry.
func (r *entryRepository) Patch(ctx context.Context, id uuid.UUID, patch adapter.EntryPatch) error {
	updates := patchColumns(patch)
	if len(updates) == 0 {
		return nil
	}
	result := r.db.WithContext(ctx).
		Model(&model.EntryModel{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to patch entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrEntryNotFound
	}
	return nil
}

// PatchBatch applies partial-merge updates in bounded batches, one
// transaction per chunk. Chunks committed before a failure stay
// committed.
func (r *entryRepository) PatchBatch(ctx context.Context, updates []adapter.EntryUpdate) (adapter.BatchResult, error) {
	var result adapter.BatchResult
	err := forEachChunk(len(updates), r.batchLimit, func(start, end int) error {
		chunk := updates[start:end]
		txErr := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			for _, u := range chunk {
				columns := patchColumns(u.Patch)
				if len(columns) == 0 {
					continue
				}
				if err := tx.Model(&model.EntryModel{}).
					Where("id = ?", u.ID).
					Updates(columns).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if txErr != nil {
			return fmt.Errorf("failed to patch batch %d: %w", result.Batches+1, txErr)
		}
		result.Operations += len(chunk)
		result.Batches++
		return nil
	})
	return result, err
}

// FindByID retrieves an entry by its ID.
func (r *entryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Entry, error) {
	var entryModel model.EntryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&entryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to find entry: %w", result.Error)
	}
	return entryModel.ToEntity(), nil
}

// FindByOwner retrieves every entry in one owner partition.
func (r *entryRepository) FindByOwner(ctx context.Context, ownerType entity.OwnerType, ownerID uuid.UUID) ([]*entity.Entry, error) {
	var entryModels []model.EntryModel
	result := r.db.WithContext(ctx).
		Where("owner_type = ? AND owner_id = ?", string(ownerType), ownerID).
		Order("date ASC, created_at ASC").
		Find(&entryModels)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find entries: %w", result.Error)
	}
	return toEntities(entryModels), nil
}

// FindShipmentLines retrieves the line entries of one shipment.
func (r *entryRepository) FindShipmentLines(ctx context.Context, shipmentID uuid.UUID) ([]*entity.Entry, error) {
	var entryModels []model.EntryModel
	result := r.db.WithContext(ctx).
		Where("entry_type = ? AND shipment_id = ?", string(entity.EntryTypeShipmentLine), shipmentID).
		Order("line_no ASC, date ASC").
		Find(&entryModels)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find shipment lines: %w", result.Error)
	}
	return toEntities(entryModels), nil
}

// Delete removes one entry.
func (r *entryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.EntryModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrEntryNotFound
	}
	return nil
}

// DeleteBatch removes entries in bounded batches, one transaction per
// chunk.
func (r *entryRepository) DeleteBatch(ctx context.Context, ids []uuid.UUID) (adapter.BatchResult, error) {
	var result adapter.BatchResult
	err := forEachChunk(len(ids), r.batchLimit, func(start, end int) error {
		chunk := ids[start:end]
		txErr := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return tx.Where("id IN ?", chunk).Delete(&model.EntryModel{}).Error
		})
		if txErr != nil {
			return fmt.Errorf("failed to delete batch %d: %w", result.Batches+1, txErr)
		}
		result.Operations += len(chunk)
		result.Batches++
		return nil
	})
	return result, err
}

func toEntities(entryModels []model.EntryModel) []*entity.Entry {
	entries := make([]*entity.Entry, len(entryModels))
	for i := range entryModels {
		entries[i] = entryModels[i].ToEntity()
	}
	return entries
}

// patchColumns maps a patch onto column updates. The five sold columns
// are written together, never individually.
func patchColumns(patch adapter.EntryPatch) map[string]interface{} {
	updates := map[string]interface{}{}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Detail != nil {
		updates["detail"] = *patch.Detail
	}
	if patch.Unit != nil {
		updates["unit"] = *patch.Unit
	}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.PersonName != nil {
		updates["person_name"] = *patch.PersonName
	}
	if patch.Type != nil {
		updates["type"] = *patch.Type
	}
	if patch.PaymentStatus != nil {
		updates["payment_status"] = *patch.PaymentStatus
	}
	if patch.Note != nil {
		updates["note"] = *patch.Note
	}
	if patch.Order != nil {
		updates["display_order"] = *patch.Order
	}
	if patch.Hidden != nil {
		updates["hidden"] = *patch.Hidden
	}
	if patch.ClearSold {
		updates["sold_shipment_id"] = nil
		updates["sold_shipment_title"] = nil
		updates["sold_shipment_date"] = nil
		updates["sold_payment_status"] = nil
		updates["sold_factory_id"] = nil
	}
	if patch.SetSold != nil {
		updates["sold_shipment_id"] = patch.SetSold.ShipmentID
		updates["sold_shipment_title"] = patch.SetSold.ShipmentTitle
		updates["sold_shipment_date"] = patch.SetSold.ShipmentDate
		updates["sold_payment_status"] = patch.SetSold.PaymentStatus
		updates["sold_factory_id"] = patch.SetSold.FactoryID
	}
	if len(updates) > 0 {
		updates["updated_at"] = time.Now().UTC()
	}
	return updates
}
