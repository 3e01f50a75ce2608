package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T) (*miniredis.Miniredis, *productCache) {
	t.Helper()
	server, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(server.Close)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	return server, &productCache{client: client}
}

func TestProductCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	_, cache := newTestCache(t)

	productID := uuid.New()
	if err := cache.SetBarcode(ctx, "869000123", productID, time.Hour); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	id, ok, err := cache.GetBarcode(ctx, "869000123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || id != productID {
		t.Errorf("expected cached id %s, got %s (ok=%v)", productID, id, ok)
	}

	if err := cache.DeleteBarcode(ctx, "869000123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok, err := cache.GetBarcode(ctx, "869000123"); err != nil || ok {
		t.Errorf("expected a miss after delete, got ok=%v err=%v", ok, err)
	}
}

func TestProductCache_MissAndExpiry(t *testing.T) {
	ctx := context.Background()
	server, cache := newTestCache(t)

	if _, ok, err := cache.GetBarcode(ctx, "unknown"); err != nil || ok {
		t.Errorf("expected a clean miss, got ok=%v err=%v", ok, err)
	}

	if err := cache.SetBarcode(ctx, "555", uuid.New(), time.Minute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	server.FastForward(2 * time.Minute)
	if _, ok, err := cache.GetBarcode(ctx, "555"); err != nil || ok {
		t.Errorf("expected a miss after expiry, got ok=%v err=%v", ok, err)
	}
}

func TestProductCache_CorruptValueReadsAsMiss(t *testing.T) {
	ctx := context.Background()
	server, cache := newTestCache(t)

	server.Set(barcodeKey("777"), "not-a-uuid")
	if _, ok, err := cache.GetBarcode(ctx, "777"); err != nil || ok {
		t.Errorf("expected the corrupt value to read as a miss, got ok=%v err=%v", ok, err)
	}
	if server.Exists(barcodeKey("777")) {
		t.Error("expected the corrupt key to be evicted")
	}
}
