package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/honey-ledger/backend/internal/application/usecase/factory"
	"github.com/honey-ledger/backend/internal/integration/entrypoint/dto"
)

// FactoryController handles factory directory and shipment ledger
// endpoints.
type FactoryController struct {
	listUseCase           *factory.ListFactoriesUseCase
	createUseCase         *factory.CreateFactoryUseCase
	updateUseCase         *factory.UpdateFactoryUseCase
	deleteUseCase         *factory.DeleteFactoryUseCase
	getBookUseCase        *factory.GetBookUseCase
	saveShipmentUseCase   *factory.SaveShipmentUseCase
	deleteShipmentUseCase *factory.DeleteShipmentUseCase
	saveLineUseCase       *factory.SaveLineUseCase
	deleteLineUseCase     *factory.DeleteLineUseCase
	savePaymentUseCase    *factory.SavePaymentUseCase
	deletePaymentUseCase  *factory.DeletePaymentUseCase
	suggestUseCase        *factory.SuggestInventoryUseCase
	resolveOwnerUseCase   *factory.ResolveShipmentOwnerUseCase
}

// NewFactoryController creates a new factory controller instance.
func NewFactoryController(
	listUseCase *factory.ListFactoriesUseCase,
	createUseCase *factory.CreateFactoryUseCase,
	updateUseCase *factory.UpdateFactoryUseCase,
	deleteUseCase *factory.DeleteFactoryUseCase,
	getBookUseCase *factory.GetBookUseCase,
	saveShipmentUseCase *factory.SaveShipmentUseCase,
	deleteShipmentUseCase *factory.DeleteShipmentUseCase,
	saveLineUseCase *factory.SaveLineUseCase,
	deleteLineUseCase *factory.DeleteLineUseCase,
	savePaymentUseCase *factory.SavePaymentUseCase,
	deletePaymentUseCase *factory.DeletePaymentUseCase,
	suggestUseCase *factory.SuggestInventoryUseCase,
	resolveOwnerUseCase *factory.ResolveShipmentOwnerUseCase,
) *FactoryController {
	return &FactoryController{
		listUseCase:           listUseCase,
		createUseCase:         createUseCase,
		updateUseCase:         updateUseCase,
		deleteUseCase:         deleteUseCase,
		getBookUseCase:        getBookUseCase,
		saveShipmentUseCase:   saveShipmentUseCase,
		deleteShipmentUseCase: deleteShipmentUseCase,
		saveLineUseCase:       saveLineUseCase,
		deleteLineUseCase:     deleteLineUseCase,
		savePaymentUseCase:    savePaymentUseCase,
		deletePaymentUseCase:  deletePaymentUseCase,
		suggestUseCase:        suggestUseCase,
		resolveOwnerUseCase:   resolveOwnerUseCase,
	}
}

// List handles GET /factories requests.
func (c *FactoryController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err, "Fabrikalar yüklenemedi.")
		return
	}
	factories := make([]dto.FactoryResponse, len(output.Factories))
	for i, f := range output.Factories {
		factories[i] = dto.ToFactoryResponse(f)
	}
	ctx.JSON(http.StatusOK, dto.FactoryListResponse{Factories: factories})
}

// Create handles POST /factories requests.
func (c *FactoryController) Create(ctx *gin.Context) {
	var req dto.CreateFactoryRequest
	if !bindBody(ctx, &req) {
		return
	}
	output, err := c.createUseCase.Execute(ctx.Request.Context(), factory.CreateFactoryInput{
		Name: req.Name,
		Note: req.Note,
	})
	if err != nil {
		respondError(ctx, err, "Fabrika kaydedilemedi.")
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToFactoryResponse(output.Factory))
}

// Update handles PUT /factories/:id requests.
func (c *FactoryController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateFactoryRequest
	if !bindBody(ctx, &req) {
		return
	}
	output, err := c.updateUseCase.Execute(ctx.Request.Context(), factory.UpdateFactoryInput{
		FactoryID: id,
		Name:      req.Name,
		Note:      req.Note,
		Active:    req.Active,
	})
	if err != nil {
		respondError(ctx, err, "Fabrika kaydedilemedi.")
		return
	}
	ctx.JSON(http.StatusOK, dto.ToFactoryResponse(output.Factory))
}

// Delete handles DELETE /factories/:id requests. Inventory references
// held by the factory's lines are released before the book goes.
func (c *FactoryController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), factory.DeleteFactoryInput{FactoryID: id})
	if err != nil {
		respondError(ctx, err, "Fabrika silinemedi.")
		return
	}
	ctx.JSON(http.StatusOK, dto.FactoryCascadeResponse{
		EntriesDeleted: output.EntriesDeleted,
		SourcesCleared: output.SourcesCleared,
		Batches:        output.Batches,
	})
}

// GetBook handles GET /factories/:id/book requests.
func (c *FactoryController) GetBook(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	output, err := c.getBookUseCase.Execute(ctx.Request.Context(), factory.GetBookInput{FactoryID: id})
	if err != nil {
		respondError(ctx, err, "Defter yüklenemedi.")
		return
	}
	ctx.JSON(http.StatusOK, dto.ToFactoryBookResponse(output))
}

// SaveShipment handles POST /factories/:id/shipments requests.
func (c *FactoryController) SaveShipment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.SaveShipmentRequest
	if !bindBody(ctx, &req) {
		return
	}
	shipmentID, err := parseOptionalID(req.ShipmentID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid shipment_id format"})
		return
	}
	output, err := c.saveShipmentUseCase.Execute(ctx.Request.Context(), factory.SaveShipmentInput{
		FactoryID:     id,
		ShipmentID:    shipmentID,
		Date:          req.Date,
		Title:         req.Title,
		PaymentStatus: req.PaymentStatus,
	})
	if err != nil {
		respondError(ctx, err, "Sevkiyat kaydedilemedi.")
		return
	}
	ctx.JSON(saveStatus(shipmentID), dto.ToShipmentResponse(output.Shipment))
}

// DeleteShipment handles DELETE /shipments/:id requests.
func (c *FactoryController) DeleteShipment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	output, err := c.deleteShipmentUseCase.Execute(ctx.Request.Context(), factory.DeleteShipmentInput{ShipmentID: id})
	if err != nil {
		respondError(ctx, err, "Sevkiyat silinemedi.")
		return
	}
	ctx.JSON(http.StatusOK, dto.ShipmentCascadeResponse{
		LinesDeleted:   output.LinesDeleted,
		SourcesCleared: output.SourcesCleared,
		Batches:        output.Batches,
	})
}

// SaveLine handles POST /shipments/:id/lines requests.
func (c *FactoryController) SaveLine(ctx *gin.Context) {
	shipmentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.SaveLineRequest
	if !bindBody(ctx, &req) {
		return
	}
	lineID, err := parseOptionalID(req.LineID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid line_id format"})
		return
	}
	sourceEntryID, err := parseOptionalID(req.SourceEntryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid source_entry_id format"})
		return
	}
	var unitPrice decimal.Decimal
	if req.UnitPrice != nil {
		unitPrice = decimal.NewFromFloat(*req.UnitPrice)
	}
	output, err := c.saveLineUseCase.Execute(ctx.Request.Context(), factory.SaveLineInput{
		ShipmentID:    shipmentID,
		LineID:        lineID,
		Date:          req.Date,
		LineNo:        req.LineNo,
		PersonName:    req.PersonName,
		Type:          req.Type,
		Quantity:      decimal.NewFromFloat(req.Quantity),
		Unit:          req.Unit,
		UnitPrice:     unitPrice,
		PaymentStatus: req.PaymentStatus,
		SourceEntryID: sourceEntryID,
	})
	if err != nil {
		respondError(ctx, err, "Satır kaydedilemedi.")
		return
	}
	ctx.JSON(saveStatus(lineID), dto.SaveLineResponse{
		Line:    dto.ToShipmentLineResponse(output.Line),
		Warning: output.Warning,
	})
}

// DeleteLine handles DELETE /lines/:id requests. The linked inventory
// entry, if any, is released back to unsold.
func (c *FactoryController) DeleteLine(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.deleteLineUseCase.Execute(ctx.Request.Context(), factory.DeleteLineInput{LineID: id}); err != nil {
		respondError(ctx, err, "Satır silinemedi.")
		return
	}
	ctx.Status(http.StatusNoContent)
}

// SavePayment handles POST /factories/:id/payments requests.
func (c *FactoryController) SavePayment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.SaveFactoryPaymentRequest
	if !bindBody(ctx, &req) {
		return
	}
	paymentID, err := parseOptionalID(req.PaymentID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid payment_id format"})
		return
	}
	output, err := c.savePaymentUseCase.Execute(ctx.Request.Context(), factory.SavePaymentInput{
		FactoryID: id,
		PaymentID: paymentID,
		Date:      req.Date,
		Amount:    decimal.NewFromFloat(req.Amount),
		Note:      req.Note,
	})
	if err != nil {
		respondError(ctx, err, "Ödeme kaydedilemedi.")
		return
	}
	ctx.JSON(saveStatus(paymentID), dto.ToFactoryPaymentResponse(output.Payment))
}

// DeletePayment handles DELETE /payments/:id requests.
func (c *FactoryController) DeletePayment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.deletePaymentUseCase.Execute(ctx.Request.Context(), factory.DeletePaymentInput{PaymentID: id}); err != nil {
		respondError(ctx, err, "Ödeme silinemedi.")
		return
	}
	ctx.Status(http.StatusNoContent)
}

// Suggestions handles GET /factories/suggestions requests. The person
// name typed into a shipment line resolves to the matching beekeeper's
// unsold honey inventory.
func (c *FactoryController) Suggestions(ctx *gin.Context) {
	personName := ctx.Query("personName")
	output, err := c.suggestUseCase.Execute(ctx.Request.Context(), factory.SuggestInventoryInput{PersonName: personName})
	if err != nil {
		respondError(ctx, err, "Öneriler yüklenemedi.")
		return
	}
	ctx.JSON(http.StatusOK, dto.InventorySuggestionListResponse{
		Suggestions: dto.ToInventorySuggestionResponses(output.Suggestions),
	})
}

// ResolveShipmentOwner handles GET /shipments/:id/owner requests.
func (c *FactoryController) ResolveShipmentOwner(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	output, err := c.resolveOwnerUseCase.Execute(ctx.Request.Context(), factory.ResolveShipmentOwnerInput{ShipmentID: id})
	if err != nil {
		respondError(ctx, err, "Sevkiyat sahibi bulunamadı.")
		return
	}
	ctx.JSON(http.StatusOK, dto.ShipmentOwnerResponse{FactoryID: output.FactoryID.String()})
}
