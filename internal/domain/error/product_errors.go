package error

import "errors"

// Product catalog domain errors.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")

	// ErrMissingProductName is returned when a product is saved without a name.
	ErrMissingProductName = errors.New("missing product name")

	// ErrBarcodeTaken is returned when a barcode is already assigned to a
	// different product. Barcodes are globally unique when present.
	ErrBarcodeTaken = errors.New("barcode already assigned")
)

// ProductErrorCode defines error codes for product errors.
type ProductErrorCode string

const (
	ErrCodeProductNotFound    ProductErrorCode = "PRD-010001"
	ErrCodeMissingProductName ProductErrorCode = "PRD-010002"
	ErrCodeBarcodeTaken       ProductErrorCode = "PRD-010003"
)

// ProductError represents a product error with code and message.
type ProductError struct {
	Code    ProductErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProductError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProductError) Unwrap() error {
	return e.Err
}

// NewProductError creates a new ProductError with the given code and message.
func NewProductError(code ProductErrorCode, message string, err error) *ProductError {
	return &ProductError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
