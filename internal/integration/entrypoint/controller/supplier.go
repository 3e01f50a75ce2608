package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/honey-ledger/backend/internal/application/usecase/supplier"
	"github.com/honey-ledger/backend/internal/integration/entrypoint/dto"
)

// SupplierController handles supplier directory and ledger endpoints.
type SupplierController struct {
	listUseCase         *supplier.ListSuppliersUseCase
	createUseCase       *supplier.CreateSupplierUseCase
	updateUseCase       *supplier.UpdateSupplierUseCase
	deleteUseCase       *supplier.DeleteSupplierUseCase
	getBookUseCase      *supplier.GetBookUseCase
	savePurchaseUseCase *supplier.SavePurchaseUseCase
	savePaymentUseCase  *supplier.SavePaymentUseCase
	saveGivenUseCase    *supplier.SaveGivenUseCase
	deleteEntryUseCase  *supplier.DeleteEntryUseCase
}

// NewSupplierController creates a new supplier controller instance.
func NewSupplierController(
	listUseCase *supplier.ListSuppliersUseCase,
	createUseCase *supplier.CreateSupplierUseCase,
	updateUseCase *supplier.UpdateSupplierUseCase,
	deleteUseCase *supplier.DeleteSupplierUseCase,
	getBookUseCase *supplier.GetBookUseCase,
	savePurchaseUseCase *supplier.SavePurchaseUseCase,
	savePaymentUseCase *supplier.SavePaymentUseCase,
	saveGivenUseCase *supplier.SaveGivenUseCase,
	deleteEntryUseCase *supplier.DeleteEntryUseCase,
) *SupplierController {
	return &SupplierController{
		listUseCase:         listUseCase,
		createUseCase:       createUseCase,
		updateUseCase:       updateUseCase,
		deleteUseCase:       deleteUseCase,
		getBookUseCase:      getBookUseCase,
		savePurchaseUseCase: savePurchaseUseCase,
		savePaymentUseCase:  savePaymentUseCase,
		saveGivenUseCase:    saveGivenUseCase,
		deleteEntryUseCase:  deleteEntryUseCase,
	}
}

// List handles GET /suppliers requests.
func (c *SupplierController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err, "Tedarikçiler yüklenemedi.")
		return
	}
	suppliers := make([]dto.SupplierResponse, len(output.Suppliers))
	for i, s := range output.Suppliers {
		suppliers[i] = dto.ToSupplierResponse(s)
	}
	ctx.JSON(http.StatusOK, dto.SupplierListResponse{Suppliers: suppliers})
}

// Create handles POST /suppliers requests.
func (c *SupplierController) Create(ctx *gin.Context) {
	var req dto.CreateSupplierRequest
	if !bindBody(ctx, &req) {
		return
	}
	output, err := c.createUseCase.Execute(ctx.Request.Context(), supplier.CreateSupplierInput{
		Name: req.Name,
		Note: req.Note,
	})
	if err != nil {
		respondError(ctx, err, "Tedarikçi kaydedilemedi.")
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToSupplierResponse(output.Supplier))
}

// Update handles PUT /suppliers/:id requests.
func (c *SupplierController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateSupplierRequest
	if !bindBody(ctx, &req) {
		return
	}
	output, err := c.updateUseCase.Execute(ctx.Request.Context(), supplier.UpdateSupplierInput{
		SupplierID: id,
		Name:       req.Name,
		Note:       req.Note,
		Active:     req.Active,
	})
	if err != nil {
		respondError(ctx, err, "Tedarikçi kaydedilemedi.")
		return
	}
	ctx.JSON(http.StatusOK, dto.ToSupplierResponse(output.Supplier))
}

// Delete handles DELETE /suppliers/:id requests.
func (c *SupplierController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), supplier.DeleteSupplierInput{SupplierID: id})
	if err != nil {
		respondError(ctx, err, "Tedarikçi silinemedi.")
		return
	}
	ctx.JSON(http.StatusOK, dto.CascadeDeleteResponse{
		EntriesDeleted: output.EntriesDeleted,
		Batches:        output.Batches,
	})
}

// GetBook handles GET /suppliers/:id/book requests.
func (c *SupplierController) GetBook(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	output, err := c.getBookUseCase.Execute(ctx.Request.Context(), supplier.GetBookInput{SupplierID: id})
	if err != nil {
		respondError(ctx, err, "Defter yüklenemedi.")
		return
	}
	ctx.JSON(http.StatusOK, dto.ToSupplierBookResponse(output))
}

// SavePurchase handles POST /suppliers/:id/purchases requests.
func (c *SupplierController) SavePurchase(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.SavePurchaseRequest
	if !bindBody(ctx, &req) {
		return
	}
	entryID, err := parseOptionalID(req.EntryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid entry_id format"})
		return
	}
	output, err := c.savePurchaseUseCase.Execute(ctx.Request.Context(), supplier.SavePurchaseInput{
		SupplierID:  id,
		EntryID:     entryID,
		Date:        req.Date,
		Description: req.Description,
		Quantity:    decimal.NewFromFloat(req.Quantity),
		Unit:        req.Unit,
		UnitPrice:   decimal.NewFromFloat(req.UnitPrice),
		Note:        req.Note,
	})
	if err != nil {
		respondError(ctx, err, "Alım kaydedilemedi.")
		return
	}
	ctx.JSON(saveStatus(entryID), dto.ToPurchaseResponse(output.Purchase))
}

// SavePayment handles POST /suppliers/:id/payments requests.
func (c *SupplierController) SavePayment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.SaveSupplierPaymentRequest
	if !bindBody(ctx, &req) {
		return
	}
	paymentID, err := parseOptionalID(req.PaymentID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid payment_id format"})
		return
	}
	output, err := c.savePaymentUseCase.Execute(ctx.Request.Context(), supplier.SavePaymentInput{
		SupplierID: id,
		PaymentID:  paymentID,
		Date:       req.Date,
		Amount:     decimal.NewFromFloat(req.Amount),
		Note:       req.Note,
	})
	if err != nil {
		respondError(ctx, err, "Ödeme kaydedilemedi.")
		return
	}
	ctx.JSON(saveStatus(paymentID), dto.ToSupplierPaymentResponse(output.Payment))
}

// SaveGiven handles POST /suppliers/:id/given requests.
func (c *SupplierController) SaveGiven(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.SaveGivenRequest
	if !bindBody(ctx, &req) {
		return
	}
	entryID, err := parseOptionalID(req.EntryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid entry_id format"})
		return
	}
	var unitPrice *decimal.Decimal
	if req.UnitPrice != nil {
		price := decimal.NewFromFloat(*req.UnitPrice)
		unitPrice = &price
	}
	output, err := c.saveGivenUseCase.Execute(ctx.Request.Context(), supplier.SaveGivenInput{
		SupplierID: id,
		EntryID:    entryID,
		Date:       req.Date,
		Quantity:   decimal.NewFromFloat(req.Quantity),
		UnitPrice:  unitPrice,
		Note:       req.Note,
	})
	if err != nil {
		respondError(ctx, err, "Verilen kaydedilemedi.")
		return
	}
	ctx.JSON(saveStatus(entryID), dto.ToGivenResponse(output.Given))
}

// DeleteEntry handles DELETE /suppliers/entries/:id requests.
func (c *SupplierController) DeleteEntry(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.deleteEntryUseCase.Execute(ctx.Request.Context(), supplier.DeleteEntryInput{EntryID: id}); err != nil {
		respondError(ctx, err, "Kayıt silinemedi.")
		return
	}
	ctx.Status(http.StatusNoContent)
}
