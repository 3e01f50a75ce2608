package dto

import (
	"time"

	"github.com/honey-ledger/backend/internal/application/usecase/product"
)

// SaveProductRequest represents the request body for a product save.
type SaveProductRequest struct {
	Name    string   `json:"name" binding:"required,min=1,max=255"`
	Price   *float64 `json:"price,omitempty"`
	Unit    string   `json:"unit,omitempty" binding:"omitempty,max=30"`
	Barcode string   `json:"barcode,omitempty" binding:"omitempty,max=64"`
	Active  bool     `json:"active"`
}

// ProductResponse represents a product in API responses.
type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       *string   `json:"price,omitempty"`
	Unit        string    `json:"unit,omitempty"`
	DisplayUnit string    `json:"display_unit,omitempty"`
	Barcode     string    `json:"barcode,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductListResponse represents the product catalog.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
}

// ProductLookupResponse represents a barcode lookup result.
type ProductLookupResponse struct {
	Product  ProductResponse `json:"product"`
	CacheHit bool            `json:"cache_hit"`
}

// SuggestedUnitPriceResponse represents a catalog price suggestion.
type SuggestedUnitPriceResponse struct {
	Price *string `json:"price,omitempty"`
	Unit  string  `json:"unit,omitempty"`
}

// ImportDefaultsResponse reports a seed catalog import.
type ImportDefaultsResponse struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// NormalizeUnitsResponse reports a unit normalization pass.
type NormalizeUnitsResponse struct {
	Examined int `json:"examined"`
	Updated  int `json:"updated"`
}

// ToProductResponse converts a use case product output to its DTO.
func ToProductResponse(p *product.ProductOutput) ProductResponse {
	return ProductResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Price:       decimalString(p.Price),
		Unit:        p.Unit,
		DisplayUnit: p.DisplayUnit,
		Barcode:     p.Barcode,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
