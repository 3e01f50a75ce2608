package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/honey-ledger/backend/internal/application/usecase/reconciliation"
	"github.com/honey-ledger/backend/internal/domain/entity"
	"github.com/honey-ledger/backend/internal/integration/entrypoint/dto"
)

// ReconciliationController handles maintenance pass endpoints.
type ReconciliationController struct {
	normalizeUseCase *reconciliation.NormalizeEntriesUseCase
	backfillUseCase  *reconciliation.BackfillSoldReferencesUseCase
}

// NewReconciliationController creates a new reconciliation controller instance.
func NewReconciliationController(
	normalizeUseCase *reconciliation.NormalizeEntriesUseCase,
	backfillUseCase *reconciliation.BackfillSoldReferencesUseCase,
) *ReconciliationController {
	return &ReconciliationController{
		normalizeUseCase: normalizeUseCase,
		backfillUseCase:  backfillUseCase,
	}
}

// Normalize handles POST /reconciliation/normalize requests.
func (c *ReconciliationController) Normalize(ctx *gin.Context) {
	var req dto.NormalizeEntriesRequest
	if !bindBody(ctx, &req) {
		return
	}
	ownerID, ok := parseBodyID(ctx, req.OwnerID, "owner_id")
	if !ok {
		return
	}
	output, err := c.normalizeUseCase.Execute(ctx.Request.Context(), reconciliation.NormalizeEntriesInput{
		OwnerType: entity.OwnerType(req.OwnerType),
		OwnerID:   ownerID,
	})
	if err != nil {
		respondError(ctx, err, "Kayıtlar düzeltilemedi.")
		return
	}
	ctx.JSON(http.StatusOK, dto.NormalizeEntriesResponse{
		Examined: output.Examined,
		Updated:  output.Updated,
		Batches:  output.Batches,
	})
}

// BackfillSold handles POST /reconciliation/backfill-sold requests.
func (c *ReconciliationController) BackfillSold(ctx *gin.Context) {
	var req dto.BackfillSoldRequest
	if !bindBody(ctx, &req) {
		return
	}
	factoryID, ok := parseBodyID(ctx, req.FactoryID, "factory_id")
	if !ok {
		return
	}
	output, err := c.backfillUseCase.Execute(ctx.Request.Context(), reconciliation.BackfillSoldReferencesInput{
		FactoryID: factoryID,
	})
	if err != nil {
		respondError(ctx, err, "Satış bağlantıları kurulamadı.")
		return
	}
	ctx.JSON(http.StatusOK, dto.BackfillSoldResponse{
		Examined: output.Examined,
		Updated:  output.Updated,
		Skipped:  output.Skipped,
		Batches:  output.Batches,
	})
}
