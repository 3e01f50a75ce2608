package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/honey-ledger/backend/internal/integration/entrypoint/dto"
)

// parseIDParam reads a path parameter as a UUID, answering 400 itself
// on malformed input. The bool reports success.
func parseIDParam(ctx *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + name + " format",
		})
		return uuid.Nil, false
	}
	return id, true
}

// parseBodyID parses a required id from a request body field,
// answering 400 itself on malformed input. The bool reports success.
func parseBodyID(ctx *gin.Context, value, field string) (uuid.UUID, bool) {
	id, err := uuid.Parse(value)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + field + " format",
		})
		return uuid.Nil, false
	}
	return id, true
}

// parseOptionalID parses an optional id from a request body field.
func parseOptionalID(value *string) (*uuid.UUID, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
