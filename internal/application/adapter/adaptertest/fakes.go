// Package adaptertest provides in-memory repository fakes for use case
// tests. The fakes chunk multi-record writes the way the persistence
// layer does so batching behavior is observable.
package adaptertest

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/honey-ledger/backend/internal/application/adapter"
	"github.com/honey-ledger/backend/internal/domain/entity"
)

// BatchLimit mirrors the persistence layer's per-chunk operation cap.
const BatchLimit = 450

// EntryRepo is an in-memory adapter.EntryRepository.
type EntryRepo struct {
	Entries map[uuid.UUID]*entity.Entry

	// FailAfterBatches, when > 0, makes batched writes fail after that
	// many committed chunks.
	FailAfterBatches int

	PatchCalls int
}

// NewEntryRepo creates an empty EntryRepo.
func NewEntryRepo() *EntryRepo {
	return &EntryRepo{Entries: make(map[uuid.UUID]*entity.Entry)}
}

func (r *EntryRepo) Create(_ context.Context, entry *entity.Entry) error {
	copied := *entry
	r.Entries[entry.ID] = &copied
	return nil
}

func (r *EntryRepo) Update(_ context.Context, entry *entity.Entry) error {
	if _, ok := r.Entries[entry.ID]; !ok {
		return errors.New("not found")
	}
	copied := *entry
	r.Entries[entry.ID] = &copied
	return nil
}

func (r *EntryRepo) Patch(_ context.Context, id uuid.UUID, patch adapter.EntryPatch) error {
	entry, ok := r.Entries[id]
	if !ok {
		return errors.New("not found")
	}
	ApplyPatch(entry, patch)
	r.PatchCalls++
	return nil
}

func (r *EntryRepo) PatchBatch(ctx context.Context, updates []adapter.EntryUpdate) (adapter.BatchResult, error) {
	var result adapter.BatchResult
	for start := 0; start < len(updates); start += BatchLimit {
		if r.FailAfterBatches > 0 && result.Batches >= r.FailAfterBatches {
			return result, errors.New("batch write failed")
		}
		end := start + BatchLimit
		if end > len(updates) {
			end = len(updates)
		}
		for _, u := range updates[start:end] {
			if err := r.Patch(ctx, u.ID, u.Patch); err != nil {
				return result, err
			}
			result.Operations++
		}
		result.Batches++
	}
	return result, nil
}

func (r *EntryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Entry, error) {
	entry, ok := r.Entries[id]
	if !ok {
		return nil, errors.New("not found")
	}
	copied := *entry
	return &copied, nil
}

func (r *EntryRepo) FindByOwner(_ context.Context, ownerType entity.OwnerType, ownerID uuid.UUID) ([]*entity.Entry, error) {
	var out []*entity.Entry
	for _, e := range r.Entries {
		if e.OwnerType == ownerType && e.OwnerID == ownerID {
			copied := *e
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return entity.SortChronological(out[i], out[j]) })
	return out, nil
}

func (r *EntryRepo) FindShipmentLines(_ context.Context, shipmentID uuid.UUID) ([]*entity.Entry, error) {
	var out []*entity.Entry
	for _, e := range r.Entries {
		if e.EntryType == entity.EntryTypeShipmentLine && e.ShipmentID != nil && *e.ShipmentID == shipmentID {
			copied := *e
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *EntryRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.Entries[id]; !ok {
		return errors.New("not found")
	}
	delete(r.Entries, id)
	return nil
}

func (r *EntryRepo) DeleteBatch(_ context.Context, ids []uuid.UUID) (adapter.BatchResult, error) {
	var result adapter.BatchResult
	for start := 0; start < len(ids); start += BatchLimit {
		if r.FailAfterBatches > 0 && result.Batches >= r.FailAfterBatches {
			return result, errors.New("batch delete failed")
		}
		end := start + BatchLimit
		if end > len(ids) {
			end = len(ids)
		}
		for _, id := range ids[start:end] {
			delete(r.Entries, id)
			result.Operations++
		}
		result.Batches++
	}
	return result, nil
}

// ApplyPatch applies a partial-merge update the way the persistence
// layer does.
func ApplyPatch(entry *entity.Entry, patch adapter.EntryPatch) {
	if patch.Description != nil {
		entry.Description = *patch.Description
	}
	if patch.Detail != nil {
		entry.Detail = *patch.Detail
	}
	if patch.Unit != nil {
		entry.Unit = *patch.Unit
	}
	if patch.Title != nil {
		entry.Title = *patch.Title
	}
	if patch.PersonName != nil {
		entry.PersonName = *patch.PersonName
	}
	if patch.Type != nil {
		entry.Type = *patch.Type
	}
	if patch.PaymentStatus != nil {
		entry.PaymentStatus = *patch.PaymentStatus
	}
	if patch.Note != nil {
		entry.Note = *patch.Note
	}
	if patch.Order != nil {
		order := *patch.Order
		entry.Order = &order
	}
	if patch.Hidden != nil {
		entry.Hidden = *patch.Hidden
	}
	if patch.ClearSold {
		entry.SoldShipmentID = nil
		entry.SoldShipmentTitle = nil
		entry.SoldShipmentDate = nil
		entry.SoldPaymentStatus = nil
		entry.SoldFactoryID = nil
	}
	if patch.SetSold != nil {
		ref := *patch.SetSold
		entry.SoldShipmentID = &ref.ShipmentID
		entry.SoldShipmentTitle = &ref.ShipmentTitle
		entry.SoldShipmentDate = &ref.ShipmentDate
		entry.SoldPaymentStatus = &ref.PaymentStatus
		entry.SoldFactoryID = &ref.FactoryID
	}
}

// BeekeeperRepo is an in-memory adapter.BeekeeperRepository.
type BeekeeperRepo struct {
	Keepers map[uuid.UUID]*entity.Beekeeper
}

// NewBeekeeperRepo creates an empty BeekeeperRepo.
func NewBeekeeperRepo() *BeekeeperRepo {
	return &BeekeeperRepo{Keepers: make(map[uuid.UUID]*entity.Beekeeper)}
}

func (r *BeekeeperRepo) Create(_ context.Context, b *entity.Beekeeper) error {
	copied := *b
	r.Keepers[b.ID] = &copied
	return nil
}

func (r *BeekeeperRepo) Update(_ context.Context, b *entity.Beekeeper) error {
	if _, ok := r.Keepers[b.ID]; !ok {
		return errors.New("not found")
	}
	copied := *b
	r.Keepers[b.ID] = &copied
	return nil
}

func (r *BeekeeperRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Beekeeper, error) {
	b, ok := r.Keepers[id]
	if !ok {
		return nil, errors.New("not found")
	}
	copied := *b
	return &copied, nil
}

func (r *BeekeeperRepo) FindAll(_ context.Context) ([]*entity.Beekeeper, error) {
	out := make([]*entity.Beekeeper, 0, len(r.Keepers))
	for _, b := range r.Keepers {
		copied := *b
		out = append(out, &copied)
	}
	return out, nil
}

func (r *BeekeeperRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.Keepers[id]; !ok {
		return errors.New("not found")
	}
	delete(r.Keepers, id)
	return nil
}

// FactoryRepo is an in-memory adapter.FactoryRepository.
type FactoryRepo struct {
	Factories map[uuid.UUID]*entity.Factory
}

// NewFactoryRepo creates an empty FactoryRepo.
func NewFactoryRepo() *FactoryRepo {
	return &FactoryRepo{Factories: make(map[uuid.UUID]*entity.Factory)}
}

func (r *FactoryRepo) Create(_ context.Context, f *entity.Factory) error {
	copied := *f
	r.Factories[f.ID] = &copied
	return nil
}

func (r *FactoryRepo) Update(_ context.Context, f *entity.Factory) error {
	if _, ok := r.Factories[f.ID]; !ok {
		return errors.New("not found")
	}
	copied := *f
	r.Factories[f.ID] = &copied
	return nil
}

func (r *FactoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Factory, error) {
	f, ok := r.Factories[id]
	if !ok {
		return nil, errors.New("not found")
	}
	copied := *f
	return &copied, nil
}

func (r *FactoryRepo) FindAll(_ context.Context) ([]*entity.Factory, error) {
	out := make([]*entity.Factory, 0, len(r.Factories))
	for _, f := range r.Factories {
		copied := *f
		out = append(out, &copied)
	}
	return out, nil
}

func (r *FactoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.Factories[id]; !ok {
		return errors.New("not found")
	}
	delete(r.Factories, id)
	return nil
}

// SupplierRepo is an in-memory adapter.SupplierRepository.
type SupplierRepo struct {
	Suppliers map[uuid.UUID]*entity.Supplier
}

// NewSupplierRepo creates an empty SupplierRepo.
func NewSupplierRepo() *SupplierRepo {
	return &SupplierRepo{Suppliers: make(map[uuid.UUID]*entity.Supplier)}
}

func (r *SupplierRepo) Create(_ context.Context, s *entity.Supplier) error {
	copied := *s
	r.Suppliers[s.ID] = &copied
	return nil
}

func (r *SupplierRepo) Update(_ context.Context, s *entity.Supplier) error {
	if _, ok := r.Suppliers[s.ID]; !ok {
		return errors.New("not found")
	}
	copied := *s
	r.Suppliers[s.ID] = &copied
	return nil
}

func (r *SupplierRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Supplier, error) {
	s, ok := r.Suppliers[id]
	if !ok {
		return nil, errors.New("not found")
	}
	copied := *s
	return &copied, nil
}

func (r *SupplierRepo) FindAll(_ context.Context) ([]*entity.Supplier, error) {
	out := make([]*entity.Supplier, 0, len(r.Suppliers))
	for _, s := range r.Suppliers {
		copied := *s
		out = append(out, &copied)
	}
	return out, nil
}

func (r *SupplierRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.Suppliers[id]; !ok {
		return errors.New("not found")
	}
	delete(r.Suppliers, id)
	return nil
}

// ProductRepo is an in-memory adapter.ProductRepository.
type ProductRepo struct {
	Products map[uuid.UUID]*entity.Product
}

// NewProductRepo creates an empty ProductRepo.
func NewProductRepo() *ProductRepo {
	return &ProductRepo{Products: make(map[uuid.UUID]*entity.Product)}
}

func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	copied := *p
	r.Products[p.ID] = &copied
	return nil
}

func (r *ProductRepo) Update(_ context.Context, p *entity.Product) error {
	if _, ok := r.Products[p.ID]; !ok {
		return errors.New("not found")
	}
	copied := *p
	r.Products[p.ID] = &copied
	return nil
}

func (r *ProductRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	p, ok := r.Products[id]
	if !ok {
		return nil, errors.New("not found")
	}
	copied := *p
	return &copied, nil
}

func (r *ProductRepo) FindByBarcode(_ context.Context, barcode string) (*entity.Product, error) {
	for _, p := range r.Products {
		if p.Barcode != "" && p.Barcode == barcode {
			copied := *p
			return &copied, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *ProductRepo) FindAll(_ context.Context) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.Products))
	for _, p := range r.Products {
		copied := *p
		out = append(out, &copied)
	}
	return out, nil
}

func (r *ProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.Products[id]; !ok {
		return errors.New("not found")
	}
	delete(r.Products, id)
	return nil
}

// ProductCache is an in-memory adapter.ProductCache.
type ProductCache struct {
	Barcodes map[string]uuid.UUID
	Sets     int
	Hits     int
	Misses   int
}

// NewProductCache creates an empty ProductCache.
func NewProductCache() *ProductCache {
	return &ProductCache{Barcodes: make(map[string]uuid.UUID)}
}

func (c *ProductCache) GetBarcode(_ context.Context, barcode string) (uuid.UUID, bool, error) {
	id, ok := c.Barcodes[barcode]
	if !ok {
		c.Misses++
		return uuid.Nil, false, nil
	}
	c.Hits++
	return id, true, nil
}

func (c *ProductCache) SetBarcode(_ context.Context, barcode string, productID uuid.UUID, _ time.Duration) error {
	c.Barcodes[barcode] = productID
	c.Sets++
	return nil
}

func (c *ProductCache) DeleteBarcode(_ context.Context, barcode string) error {
	delete(c.Barcodes, barcode)
	return nil
}
