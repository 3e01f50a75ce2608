package entity

import (
	"time"

	"github.com/google/uuid"
)

// Beekeeper is a supplier of honey and wax. Number is the artisanal
// registry number the books sort and search by.
type Beekeeper struct {
	ID        uuid.UUID
	Number    int
	Name      string
	Note      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBeekeeper creates a Beekeeper with a fresh id and timestamps.
func NewBeekeeper(number int, name, note string) *Beekeeper {
	now := time.Now().UTC()
	return &Beekeeper{
		ID:        uuid.New(),
		Number:    number,
		Name:      name,
		Note:      note,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Factory is a purchaser of honey shipments.
type Factory struct {
	ID        uuid.UUID
	Name      string
	Note      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewFactory creates a Factory with a fresh id and timestamps.
func NewFactory(name, note string) *Factory {
	now := time.Now().UTC()
	return &Factory{
		ID:        uuid.New(),
		Name:      name,
		Note:      note,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Supplier sells materials to the business.
type Supplier struct {
	ID        uuid.UUID
	Name      string
	Note      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewSupplier creates a Supplier with a fresh id and timestamps.
func NewSupplier(name, note string) *Supplier {
	now := time.Now().UTC()
	return &Supplier{
		ID:        uuid.New(),
		Name:      name,
		Note:      note,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
