package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/honey-ledger/backend/internal/domain/entity"
)

// ProductModel represents the products table in the database.
type ProductModel struct {
	ID        uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Name      string           `gorm:"type:varchar(255);not null"`
	Price     *decimal.Decimal `gorm:"type:decimal(15,2)"`
	Unit      string           `gorm:"type:varchar(30)"`
	Barcode   string           `gorm:"type:varchar(64);index"`
	Active    bool             `gorm:"default:true"`
	CreatedAt time.Time        `gorm:"not null"`
	UpdatedAt time.Time        `gorm:"not null"`
}

// TableName returns the table name for the ProductModel.
func (ProductModel) TableName() string {
	return "products"
}

// ToEntity converts a ProductModel to a domain Product entity.
func (m *ProductModel) ToEntity() *entity.Product {
	return &entity.Product{
		ID:        m.ID,
		Name:      m.Name,
		Price:     m.Price,
		Unit:      m.Unit,
		Barcode:   m.Barcode,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ProductFromEntity converts a domain Product entity to a ProductModel.
func ProductFromEntity(p *entity.Product) *ProductModel {
	return &ProductModel{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Unit:      p.Unit,
		Barcode:   p.Barcode,
		Active:    p.Active,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
