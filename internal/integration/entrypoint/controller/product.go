package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/honey-ledger/backend/internal/application/usecase/product"
	"github.com/honey-ledger/backend/internal/integration/entrypoint/dto"
)

// ProductController handles product catalog endpoints.
type ProductController struct {
	listUseCase           *product.ListProductsUseCase
	saveUseCase           *product.SaveProductUseCase
	deleteUseCase         *product.DeleteProductUseCase
	lookupUseCase         *product.LookupByBarcodeUseCase
	suggestedPriceUseCase *product.SuggestedUnitPriceUseCase
	importDefaultsUseCase *product.ImportDefaultsUseCase
	normalizeUnitsUseCase *product.NormalizeUnitsUseCase
}

// NewProductController creates a new product controller instance.
func NewProductController(
	listUseCase *product.ListProductsUseCase,
	saveUseCase *product.SaveProductUseCase,
	deleteUseCase *product.DeleteProductUseCase,
	lookupUseCase *product.LookupByBarcodeUseCase,
	suggestedPriceUseCase *product.SuggestedUnitPriceUseCase,
	importDefaultsUseCase *product.ImportDefaultsUseCase,
	normalizeUnitsUseCase *product.NormalizeUnitsUseCase,
) *ProductController {
	return &ProductController{
		listUseCase:           listUseCase,
		saveUseCase:           saveUseCase,
		deleteUseCase:         deleteUseCase,
		lookupUseCase:         lookupUseCase,
		suggestedPriceUseCase: suggestedPriceUseCase,
		importDefaultsUseCase: importDefaultsUseCase,
		normalizeUnitsUseCase: normalizeUnitsUseCase,
	}
}

// List handles GET /products requests.
func (c *ProductController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err, "Ürünler yüklenemedi.")
		return
	}
	products := make([]dto.ProductResponse, len(output.Products))
	for i, p := range output.Products {
		products[i] = dto.ToProductResponse(p)
	}
	ctx.JSON(http.StatusOK, dto.ProductListResponse{Products: products})
}

// Create handles POST /products requests.
func (c *ProductController) Create(ctx *gin.Context) {
	c.save(ctx, nil)
}

// Update handles PUT /products/:id requests.
func (c *ProductController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	c.save(ctx, &id)
}

func (c *ProductController) save(ctx *gin.Context, productID *uuid.UUID) {
	var req dto.SaveProductRequest
	if !bindBody(ctx, &req) {
		return
	}
	var price *decimal.Decimal
	if req.Price != nil {
		value := decimal.NewFromFloat(*req.Price)
		price = &value
	}
	output, err := c.saveUseCase.Execute(ctx.Request.Context(), product.SaveProductInput{
		ProductID: productID,
		Name:      req.Name,
		Price:     price,
		Unit:      req.Unit,
		Barcode:   req.Barcode,
		Active:    req.Active,
	})
	if err != nil {
		respondError(ctx, err, "Ürün kaydedilemedi.")
		return
	}
	ctx.JSON(saveStatus(productID), dto.ToProductResponse(output.Product))
}

// Delete handles DELETE /products/:id requests.
func (c *ProductController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.deleteUseCase.Execute(ctx.Request.Context(), product.DeleteProductInput{ProductID: id}); err != nil {
		respondError(ctx, err, "Ürün silinemedi.")
		return
	}
	ctx.Status(http.StatusNoContent)
}

// Lookup handles GET /products/lookup requests. The barcode arrives as
// a query parameter straight from the scanner.
func (c *ProductController) Lookup(ctx *gin.Context) {
	barcode := ctx.Query("barcode")
	output, err := c.lookupUseCase.Execute(ctx.Request.Context(), product.LookupByBarcodeInput{Barcode: barcode})
	if err != nil {
		respondError(ctx, err, "Barkod sorgulanamadı.")
		return
	}
	ctx.JSON(http.StatusOK, dto.ProductLookupResponse{
		Product:  dto.ToProductResponse(output.Product),
		CacheHit: output.CacheHit,
	})
}

// SuggestedUnitPrice handles GET /products/suggested-price requests.
func (c *ProductController) SuggestedUnitPrice(ctx *gin.Context) {
	name := ctx.Query("name")
	output, err := c.suggestedPriceUseCase.Execute(ctx.Request.Context(), product.SuggestedUnitPriceInput{Name: name})
	if err != nil {
		respondError(ctx, err, "Fiyat önerisi yüklenemedi.")
		return
	}
	var price *string
	if output.Price != nil {
		value := output.Price.String()
		price = &value
	}
	ctx.JSON(http.StatusOK, dto.SuggestedUnitPriceResponse{Price: price, Unit: output.Unit})
}

// ImportDefaults handles POST /products/import-defaults requests.
func (c *ProductController) ImportDefaults(ctx *gin.Context) {
	output, err := c.importDefaultsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err, "Varsayılan ürünler yüklenemedi.")
		return
	}
	ctx.JSON(http.StatusOK, dto.ImportDefaultsResponse{
		Imported: output.Imported,
		Skipped:  output.Skipped,
	})
}

// NormalizeUnits handles POST /products/normalize-units requests.
func (c *ProductController) NormalizeUnits(ctx *gin.Context) {
	output, err := c.normalizeUnitsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err, "Birimler düzeltilemedi.")
		return
	}
	ctx.JSON(http.StatusOK, dto.NormalizeUnitsResponse{
		Examined: output.Examined,
		Updated:  output.Updated,
	})
}
