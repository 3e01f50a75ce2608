package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/honey-ledger/backend/internal/domain/entity"
)

// BeekeeperModel represents the beekeepers table in the database.
type BeekeeperModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number    int       `gorm:"type:integer;not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Note      string    `gorm:"type:text"`
	Active    bool      `gorm:"default:true"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the BeekeeperModel.
func (BeekeeperModel) TableName() string {
	return "beekeepers"
}

// ToEntity converts a BeekeeperModel to a domain Beekeeper entity.
func (m *BeekeeperModel) ToEntity() *entity.Beekeeper {
	return &entity.Beekeeper{
		ID:        m.ID,
		Number:    m.Number,
		Name:      m.Name,
		Note:      m.Note,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// BeekeeperFromEntity converts a domain Beekeeper entity to a BeekeeperModel.
func BeekeeperFromEntity(b *entity.Beekeeper) *BeekeeperModel {
	return &BeekeeperModel{
		ID:        b.ID,
		Number:    b.Number,
		Name:      b.Name,
		Note:      b.Note,
		Active:    b.Active,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// FactoryModel represents the factories table in the database.
type FactoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Note      string    `gorm:"type:text"`
	Active    bool      `gorm:"default:true"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the FactoryModel.
func (FactoryModel) TableName() string {
	return "factories"
}

// ToEntity converts a FactoryModel to a domain Factory entity.
func (m *FactoryModel) ToEntity() *entity.Factory {
	return &entity.Factory{
		ID:        m.ID,
		Name:      m.Name,
		Note:      m.Note,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FactoryFromEntity converts a domain Factory entity to a FactoryModel.
func FactoryFromEntity(f *entity.Factory) *FactoryModel {
	return &FactoryModel{
		ID:        f.ID,
		Name:      f.Name,
		Note:      f.Note,
		Active:    f.Active,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

// SupplierModel represents the suppliers table in the database.
type SupplierModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Note      string    `gorm:"type:text"`
	Active    bool      `gorm:"default:true"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the SupplierModel.
func (SupplierModel) TableName() string {
	return "suppliers"
}

// ToEntity converts a SupplierModel to a domain Supplier entity.
func (m *SupplierModel) ToEntity() *entity.Supplier {
	return &entity.Supplier{
		ID:        m.ID,
		Name:      m.Name,
		Note:      m.Note,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// SupplierFromEntity converts a domain Supplier entity to a SupplierModel.
func SupplierFromEntity(s *entity.Supplier) *SupplierModel {
	return &SupplierModel{
		ID:        s.ID,
		Name:      s.Name,
		Note:      s.Note,
		Active:    s.Active,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
