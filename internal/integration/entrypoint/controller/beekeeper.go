package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/honey-ledger/backend/internal/application/usecase/beekeeper"
	"github.com/honey-ledger/backend/internal/domain/entity"
	"github.com/honey-ledger/backend/internal/integration/entrypoint/dto"
)

// BeekeeperController handles beekeeper directory and ledger endpoints.
type BeekeeperController struct {
	listUseCase         *beekeeper.ListBeekeepersUseCase
	createUseCase       *beekeeper.CreateBeekeeperUseCase
	updateUseCase       *beekeeper.UpdateBeekeeperUseCase
	deleteUseCase       *beekeeper.DeleteBeekeeperUseCase
	getBookUseCase      *beekeeper.GetBookUseCase
	saveReceivedUseCase *beekeeper.SaveReceivedEntryUseCase
	saveGivenUseCase    *beekeeper.SaveGivenEntryUseCase
	deleteEntryUseCase  *beekeeper.DeleteEntryUseCase
	toggleHiddenUseCase *beekeeper.ToggleHiddenUseCase
	reorderUseCase      *beekeeper.ReorderEntriesUseCase
}

// NewBeekeeperController creates a new beekeeper controller instance.
func NewBeekeeperController(
	listUseCase *beekeeper.ListBeekeepersUseCase,
	createUseCase *beekeeper.CreateBeekeeperUseCase,
	updateUseCase *beekeeper.UpdateBeekeeperUseCase,
	deleteUseCase *beekeeper.DeleteBeekeeperUseCase,
	getBookUseCase *beekeeper.GetBookUseCase,
	saveReceivedUseCase *beekeeper.SaveReceivedEntryUseCase,
	saveGivenUseCase *beekeeper.SaveGivenEntryUseCase,
	deleteEntryUseCase *beekeeper.DeleteEntryUseCase,
	toggleHiddenUseCase *beekeeper.ToggleHiddenUseCase,
	reorderUseCase *beekeeper.ReorderEntriesUseCase,
) *BeekeeperController {
	return &BeekeeperController{
		listUseCase:         listUseCase,
		createUseCase:       createUseCase,
		updateUseCase:       updateUseCase,
		deleteUseCase:       deleteUseCase,
		getBookUseCase:      getBookUseCase,
		saveReceivedUseCase: saveReceivedUseCase,
		saveGivenUseCase:    saveGivenUseCase,
		deleteEntryUseCase:  deleteEntryUseCase,
		toggleHiddenUseCase: toggleHiddenUseCase,
		reorderUseCase:      reorderUseCase,
	}
}

// List handles GET /beekeepers requests.
func (c *BeekeeperController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err, "Arıcılar yüklenemedi.")
		return
	}
	beekeepers := make([]dto.BeekeeperResponse, len(output.Beekeepers))
	for i, b := range output.Beekeepers {
		beekeepers[i] = dto.ToBeekeeperResponse(b)
	}
	ctx.JSON(http.StatusOK, dto.BeekeeperListResponse{Beekeepers: beekeepers})
}

// Create handles POST /beekeepers requests.
func (c *BeekeeperController) Create(ctx *gin.Context) {
	var req dto.CreateBeekeeperRequest
	if !bindBody(ctx, &req) {
		return
	}
	output, err := c.createUseCase.Execute(ctx.Request.Context(), beekeeper.CreateBeekeeperInput{
		Number: req.Number,
		Name:   req.Name,
		Note:   req.Note,
	})
	if err != nil {
		respondError(ctx, err, "Arıcı kaydedilemedi.")
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToBeekeeperResponse(output.Beekeeper))
}

// Update handles PUT /beekeepers/:id requests.
func (c *BeekeeperController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateBeekeeperRequest
	if !bindBody(ctx, &req) {
		return
	}
	output, err := c.updateUseCase.Execute(ctx.Request.Context(), beekeeper.UpdateBeekeeperInput{
		BeekeeperID: id,
		Number:      req.Number,
		Name:        req.Name,
		Note:        req.Note,
		Active:      req.Active,
	})
	if err != nil {
		respondError(ctx, err, "Arıcı kaydedilemedi.")
		return
	}
	ctx.JSON(http.StatusOK, dto.ToBeekeeperResponse(output.Beekeeper))
}

// Delete handles DELETE /beekeepers/:id requests. The whole book goes
// with the owner.
func (c *BeekeeperController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), beekeeper.DeleteBeekeeperInput{BeekeeperID: id})
	if err != nil {
		respondError(ctx, err, "Arıcı silinemedi.")
		return
	}
	ctx.JSON(http.StatusOK, dto.CascadeDeleteResponse{
		EntriesDeleted: output.EntriesDeleted,
		Batches:        output.Batches,
	})
}

// GetBook handles GET /beekeepers/:id/book requests.
func (c *BeekeeperController) GetBook(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	output, err := c.getBookUseCase.Execute(ctx.Request.Context(), beekeeper.GetBookInput{
		BeekeeperID:   id,
		IncludeHidden: ctx.Query("includeHidden") == "true",
	})
	if err != nil {
		respondError(ctx, err, "Defter yüklenemedi.")
		return
	}
	ctx.JSON(http.StatusOK, dto.ToBeekeeperBookResponse(output))
}

// SaveReceived handles POST /beekeepers/:id/entries/received requests.
func (c *BeekeeperController) SaveReceived(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.SaveReceivedEntryRequest
	if !bindBody(ctx, &req) {
		return
	}
	entryID, err := parseOptionalID(req.EntryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid entry_id format"})
		return
	}
	output, err := c.saveReceivedUseCase.Execute(ctx.Request.Context(), beekeeper.SaveReceivedEntryInput{
		BeekeeperID: id,
		EntryID:     entryID,
		Date:        req.Date,
		ItemType:    req.ItemType,
		Detail:      req.Detail,
		Quantity:    decimal.NewFromFloat(req.Quantity),
		UnitPrice:   decimal.NewFromFloat(req.UnitPrice),
		Note:        req.Note,
	})
	if err != nil {
		respondError(ctx, err, "Kayıt eklenemedi.")
		return
	}
	ctx.JSON(saveStatus(entryID), dto.ToBookEntryResponse(output.Entry))
}

// SaveGiven handles POST /beekeepers/:id/entries/given requests.
func (c *BeekeeperController) SaveGiven(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.SaveGivenEntryRequest
	if !bindBody(ctx, &req) {
		return
	}
	entryID, err := parseOptionalID(req.EntryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid entry_id format"})
		return
	}
	output, err := c.saveGivenUseCase.Execute(ctx.Request.Context(), beekeeper.SaveGivenEntryInput{
		BeekeeperID: id,
		EntryID:     entryID,
		Date:        req.Date,
		ItemType:    req.ItemType,
		Description: req.Description,
		Quantity:    decimal.NewFromFloat(req.Quantity),
		Unit:        req.Unit,
		UnitPrice:   decimal.NewFromFloat(req.UnitPrice),
		Note:        req.Note,
	})
	if err != nil {
		respondError(ctx, err, "Kayıt eklenemedi.")
		return
	}
	ctx.JSON(saveStatus(entryID), dto.ToBookEntryResponse(output.Entry))
}

// DeleteEntry handles DELETE /entries/:id requests.
func (c *BeekeeperController) DeleteEntry(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.deleteEntryUseCase.Execute(ctx.Request.Context(), beekeeper.DeleteEntryInput{EntryID: id}); err != nil {
		respondError(ctx, err, "Kayıt silinemedi.")
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ToggleHidden handles PATCH /entries/:id/hidden requests.
func (c *BeekeeperController) ToggleHidden(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.ToggleHiddenRequest
	if !bindBody(ctx, &req) {
		return
	}
	if err := c.toggleHiddenUseCase.Execute(ctx.Request.Context(), beekeeper.ToggleHiddenInput{
		EntryID: id,
		Hidden:  req.Hidden,
	}); err != nil {
		respondError(ctx, err, "Kayıt güncellenemedi.")
		return
	}
	ctx.Status(http.StatusNoContent)
}

// Reorder handles POST /beekeepers/:id/entries/reorder requests.
func (c *BeekeeperController) Reorder(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.ReorderEntriesRequest
	if !bindBody(ctx, &req) {
		return
	}
	orderedIDs := make([]uuid.UUID, 0, len(req.OrderedIDs))
	for _, raw := range req.OrderedIDs {
		entryID, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid entry id in ordered_ids"})
			return
		}
		orderedIDs = append(orderedIDs, entryID)
	}
	output, err := c.reorderUseCase.Execute(ctx.Request.Context(), beekeeper.ReorderEntriesInput{
		BeekeeperID: id,
		Side:        entity.Side(req.Side),
		OrderedIDs:  orderedIDs,
	})
	if err != nil {
		respondError(ctx, err, "Sıralama kaydedilemedi.")
		return
	}
	ctx.JSON(http.StatusOK, dto.ReorderEntriesResponse{
		Updated: output.Updated,
		Batches: output.Batches,
	})
}

// saveStatus distinguishes create from update on upsert endpoints.
func saveStatus(existingID *uuid.UUID) int {
	if existingID == nil {
		return http.StatusCreated
	}
	return http.StatusOK
}
