package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/honey-ledger/backend/internal/domain/entity"
)

// ProductRepository defines the interface for product catalog persistence.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	FindByBarcode(ctx context.Context, barcode string) (*entity.Product, error)
	FindAll(ctx context.Context) ([]*entity.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductCache caches barcode lookups so scanner-driven flows skip the
// database on repeated scans. A miss is (uuid.Nil, false, nil).
type ProductCache interface {
	GetBarcode(ctx context.Context, barcode string) (uuid.UUID, bool, error)
	SetBarcode(ctx context.Context, barcode string, productID uuid.UUID, ttl time.Duration) error
	DeleteBarcode(ctx context.Context, barcode string) error
}
