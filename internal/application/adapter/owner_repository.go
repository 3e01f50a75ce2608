package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/honey-ledger/backend/internal/domain/entity"
)

// BeekeeperRepository defines the interface for beekeeper persistence operations.
type BeekeeperRepository interface {
	Create(ctx context.Context, beekeeper *entity.Beekeeper) error
	Update(ctx context.Context, beekeeper *entity.Beekeeper) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Beekeeper, error)
	FindAll(ctx context.Context) ([]*entity.Beekeeper, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// FactoryRepository defines the interface for factory persistence operations.
type FactoryRepository interface {
	Create(ctx context.Context, factory *entity.Factory) error
	Update(ctx context.Context, factory *entity.Factory) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Factory, error)
	FindAll(ctx context.Context) ([]*entity.Factory, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SupplierRepository defines the interface for supplier persistence operations.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	Update(ctx context.Context, supplier *entity.Supplier) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error)
	FindAll(ctx context.Context) ([]*entity.Supplier, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
