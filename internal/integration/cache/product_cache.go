// Package cache implements the barcode lookup cache on Redis.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/honey-ledger/backend/internal/application/adapter"
)

const barcodeKeyPrefix = "honey-ledger:barcode:"

// productCache implements the adapter.ProductCache interface. Each
// barcode maps to the product id under its own key so single barcodes
// can be invalidated when a product is edited.
type productCache struct {
	client *redis.Client
}

// NewProductCache creates a new product cache instance.
func NewProductCache(client *redis.Client) adapter.ProductCache {
	return &productCache{client: client}
}

// GetBarcode resolves a barcode to a product id. The second return is
// false on a cache miss.
func (c *productCache) GetBarcode(ctx context.Context, barcode string) (uuid.UUID, bool, error) {
	value, err := c.client.Get(ctx, barcodeKey(barcode)).Result()
	if errors.Is(err, redis.Nil) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("failed to read barcode cache: %w", err)
	}
	id, err := uuid.Parse(value)
	if err != nil {
		// Corrupt value; treat as a miss so the store repairs it.
		_ = c.client.Del(ctx, barcodeKey(barcode)).Err()
		return uuid.Nil, false, nil
	}
	return id, true, nil
}

// SetBarcode stores a barcode mapping with the given TTL.
func (c *productCache) SetBarcode(ctx context.Context, barcode string, productID uuid.UUID, ttl time.Duration) error {
	if err := c.client.Set(ctx, barcodeKey(barcode), productID.String(), ttl).Err(); err != nil {
		return fmt.Errorf("failed to write barcode cache: %w", err)
	}
	return nil
}

// DeleteBarcode removes a barcode mapping.
func (c *productCache) DeleteBarcode(ctx context.Context, barcode string) error {
	if err := c.client.Del(ctx, barcodeKey(barcode)).Err(); err != nil {
		return fmt.Errorf("failed to delete barcode cache: %w", err)
	}
	return nil
}

func barcodeKey(barcode string) string {
	return barcodeKeyPrefix + barcode
}
