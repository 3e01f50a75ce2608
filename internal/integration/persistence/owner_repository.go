package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/honey-ledger/backend/internal/application/adapter"
	"github.com/honey-ledger/backend/internal/domain/entity"
	domainerror "github.com/honey-ledger/backend/internal/domain/error"
	"github.com/honey-ledger/backend/internal/integration/persistence/model"
)

// beekeeperRepository implements the adapter.BeekeeperRepository interface.
type beekeeperRepository struct {
	db *gorm.DB
}

// NewBeekeeperRepository creates a new beekeeper repository instance.
func NewBeekeeperRepository(db *gorm.DB) adapter.BeekeeperRepository {
	return &beekeeperRepository{db: db}
}

func (r *beekeeperRepository) Create(ctx context.Context, beekeeper *entity.Beekeeper) error {
	result := r.db.WithContext(ctx).Create(model.BeekeeperFromEntity(beekeeper))
	if result.Error != nil {
		return fmt.Errorf("failed to create beekeeper: %w", result.Error)
	}
	return nil
}

func (r *beekeeperRepository) Update(ctx context.Context, beekeeper *entity.Beekeeper) error {
	result := r.db.WithContext(ctx).Save(model.BeekeeperFromEntity(beekeeper))
	if result.Error != nil {
		return fmt.Errorf("failed to update beekeeper: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrOwnerNotFound
	}
	return nil
}

func (r *beekeeperRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Beekeeper, error) {
	var beekeeperModel model.BeekeeperModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&beekeeperModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrOwnerNotFound
		}
		return nil, fmt.Errorf("failed to find beekeeper: %w", result.Error)
	}
	return beekeeperModel.ToEntity(), nil
}

func (r *beekeeperRepository) FindAll(ctx context.Context) ([]*entity.Beekeeper, error) {
	var beekeeperModels []model.BeekeeperModel
	result := r.db.WithContext(ctx).Order("number ASC").Find(&beekeeperModels)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list beekeepers: %w", result.Error)
	}
	beekeepers := make([]*entity.Beekeeper, len(beekeeperModels))
	for i := range beekeeperModels {
		beekeepers[i] = beekeeperModels[i].ToEntity()
	}
	return beekeepers, nil
}

func (r *beekeeperRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.BeekeeperModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete beekeeper: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrOwnerNotFound
	}
	return nil
}

// factoryRepository implements the adapter.FactoryRepository interface.
type factoryRepository struct {
	db *gorm.DB
}

// NewFactoryRepository creates a new factory repository instance.
func NewFactoryRepository(db *gorm.DB) adapter.FactoryRepository {
	return &factoryRepository{db: db}
}

func (r *factoryRepository) Create(ctx context.Context, factory *entity.Factory) error {
	result := r.db.WithContext(ctx).Create(model.FactoryFromEntity(factory))
	if result.Error != nil {
		return fmt.Errorf("failed to create factory: %w", result.Error)
	}
	return nil
}

func (r *factoryRepository) Update(ctx context.Context, factory *entity.Factory) error {
	result := r.db.WithContext(ctx).Save(model.FactoryFromEntity(factory))
	if result.Error != nil {
		return fmt.Errorf("failed to update factory: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrOwnerNotFound
	}
	return nil
}

func (r *factoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Factory, error) {
	var factoryModel model.FactoryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&factoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrOwnerNotFound
		}
		return nil, fmt.Errorf("failed to find factory: %w", result.Error)
	}
	return factoryModel.ToEntity(), nil
}

func (r *factoryRepository) FindAll(ctx context.Context) ([]*entity.Factory, error) {
	var factoryModels []model.FactoryModel
	result := r.db.WithContext(ctx).Order("name ASC").Find(&factoryModels)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list factories: %w", result.Error)
	}
	factories := make([]*entity.Factory, len(factoryModels))
	for i := range factoryModels {
		factories[i] = factoryModels[i].ToEntity()
	}
	return factories, nil
}

func (r *factoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.FactoryModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete factory: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrOwnerNotFound
	}
	return nil
}

// supplierRepository implements the adapter.SupplierRepository interface.
type supplierRepository struct {
	db *gorm.DB
}

// NewSupplierRepository creates a new supplier repository instance.
func NewSupplierRepository(db *gorm.DB) adapter.SupplierRepository {
	return &supplierRepository{db: db}
}

func (r *supplierRepository) Create(ctx context.Context, supplier *entity.Supplier) error {
	result := r.db.WithContext(ctx).Create(model.SupplierFromEntity(supplier))
	if result.Error != nil {
		return fmt.Errorf("failed to create supplier: %w", result.Error)
	}
	return nil
}

func (r *supplierRepository) Update(ctx context.Context, supplier *entity.Supplier) error {
	result := r.db.WithContext(ctx).Save(model.SupplierFromEntity(supplier))
	if result.Error != nil {
		return fmt.Errorf("failed to update supplier: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrOwnerNotFound
	}
	return nil
}

func (r *supplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	var supplierModel model.SupplierModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&supplierModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrOwnerNotFound
		}
		return nil, fmt.Errorf("failed to find supplier: %w", result.Error)
	}
	return supplierModel.ToEntity(), nil
}

func (r *supplierRepository) FindAll(ctx context.Context) ([]*entity.Supplier, error) {
	var supplierModels []model.SupplierModel
	result := r.db.WithContext(ctx).Order("name ASC").Find(&supplierModels)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", result.Error)
	}
	suppliers := make([]*entity.Supplier, len(supplierModels))
	for i := range supplierModels {
		suppliers[i] = supplierModels[i].ToEntity()
	}
	return suppliers, nil
}

func (r *supplierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.SupplierModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete supplier: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrOwnerNotFound
	}
	return nil
}
