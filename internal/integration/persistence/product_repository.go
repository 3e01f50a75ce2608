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

// productRepository implements the adapter.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository instance.
func NewProductRepository(db *gorm.DB) adapter.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	result := r.db.WithContext(ctx).Create(model.ProductFromEntity(product))
	if result.Error != nil {
		return fmt.Errorf("failed to create product: %w", result.Error)
	}
	return nil
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	result := r.db.WithContext(ctx).Save(model.ProductFromEntity(product))
	if result.Error != nil {
		return fmt.Errorf("failed to update product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrProductNotFound
	}
	return nil
}

func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productModel model.ProductModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&productModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product: %w", result.Error)
	}
	return productModel.ToEntity(), nil
}

func (r *productRepository) FindByBarcode(ctx context.Context, barcode string) (*entity.Product, error) {
	var productModel model.ProductModel
	result := r.db.WithContext(ctx).Where("barcode = ? AND barcode <> ''", barcode).First(&productModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by barcode: %w", result.Error)
	}
	return productModel.ToEntity(), nil
}

func (r *productRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	var productModels []model.ProductModel
	result := r.db.WithContext(ctx).Order("name ASC").Find(&productModels)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list products: %w", result.Error)
	}
	products := make([]*entity.Product, len(productModels))
	for i := range productModels {
		products[i] = productModels[i].ToEntity()
	}
	return products, nil
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProductModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrProductNotFound
	}
	return nil
}
