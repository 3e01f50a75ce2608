// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/honey-ledger/backend/internal/domain/error"
	"github.com/honey-ledger/backend/internal/integration/entrypoint/dto"
)

// respondError maps a use case error to an HTTP response. Validation
// failures come back 400, missing records 404, and everything else is
// a 500 carrying the localized store message.
func respondError(ctx *gin.Context, err error, fallback string) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domainerror.ErrEntryNotFound),
		errors.Is(err, domainerror.ErrOwnerNotFound),
		errors.Is(err, domainerror.ErrProductNotFound),
		errors.Is(err, domainerror.ErrShipmentNotFound),
		errors.Is(err, domainerror.ErrLineNotFound),
		errors.Is(err, domainerror.ErrSourceEntryNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domainerror.ErrInvalidEntryDate),
		errors.Is(err, domainerror.ErrInvalidQuantity),
		errors.Is(err, domainerror.ErrInvalidAmount),
		errors.Is(err, domainerror.ErrMissingUnitPrice),
		errors.Is(err, domainerror.ErrMissingDescription),
		errors.Is(err, domainerror.ErrSourceEntryNoPrice),
		errors.Is(err, domainerror.ErrEntryNotInSide),
		errors.Is(err, domainerror.ErrMissingOwnerName),
		errors.Is(err, domainerror.ErrUnknownOwnerType),
		errors.Is(err, domainerror.ErrMissingProductName),
		errors.Is(err, domainerror.ErrBarcodeTaken):
		status = http.StatusBadRequest
	}

	response := dto.ErrorResponse{Error: errorMessage(err, status, fallback), Code: errorCode(err)}
	ctx.JSON(status, response)
}

func errorMessage(err error, status int, fallback string) string {
	if status == http.StatusInternalServerError {
		return domainerror.LocalizeStoreError(err, fallback)
	}

	var entryErr *domainerror.EntryError
	if errors.As(err, &entryErr) {
		return entryErr.Message
	}
	var ownerErr *domainerror.OwnerError
	if errors.As(err, &ownerErr) {
		return ownerErr.Message
	}
	var productErr *domainerror.ProductError
	if errors.As(err, &productErr) {
		return productErr.Message
	}
	return err.Error()
}

func errorCode(err error) string {
	var entryErr *domainerror.EntryError
	if errors.As(err, &entryErr) {
		return string(entryErr.Code)
	}
	var ownerErr *domainerror.OwnerError
	if errors.As(err, &ownerErr) {
		return string(ownerErr.Code)
	}
	var productErr *domainerror.ProductError
	if errors.As(err, &productErr) {
		return string(productErr.Code)
	}
	return ""
}

// bindBody parses the JSON request body, answering 400 itself on
// malformed input. The bool reports success.
func bindBody(ctx *gin.Context, req interface{}) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return false
	}
	return true
}
