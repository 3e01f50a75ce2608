// Package error defines domain-specific errors for the ledger application.
package error

import "errors"

// Entry domain errors.
var (
	// ErrEntryNotFound is returned when an entry is not found in the store.
	ErrEntryNotFound = errors.New("entry not found")

	// ErrInvalidEntryDate is returned when the entry date is not a valid ISO date.
	ErrInvalidEntryDate = errors.New("invalid entry date")

	// ErrInvalidQuantity is returned when a quantity is missing or not positive.
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrInvalidAmount is returned when a payment amount is missing or not numeric.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrMissingUnitPrice is returned when a unit price is required but absent.
	ErrMissingUnitPrice = errors.New("missing unit price")

	// ErrMissingDescription is returned when a required description is empty.
	ErrMissingDescription = errors.New("missing description")

	// ErrShipmentNotFound is returned when a shipment header does not exist.
	ErrShipmentNotFound = errors.New("shipment not found")

	// ErrLineNotFound is returned when a shipment line does not exist.
	ErrLineNotFound = errors.New("shipment line not found")

	// ErrSourceEntryNotFound is returned when a line references inventory
	// that no longer exists.
	ErrSourceEntryNotFound = errors.New("source entry not found")

	// ErrSourceEntryNoPrice is returned when a selected inventory entry has
	// no determinable unit price and one was not supplied manually.
	ErrSourceEntryNoPrice = errors.New("source entry has no unit price")

	// ErrEntryNotInSide is returned when a reorder names an entry outside
	// the side being reordered.
	ErrEntryNotInSide = errors.New("entry not in reordered side")
)

// EntryErrorCode defines error codes for entry errors.
// Format: LGR-XXYYYY where XX is category and YYYY is specific error.
type EntryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidEntryDate   EntryErrorCode = "LGR-010001"
	ErrCodeInvalidQuantity    EntryErrorCode = "LGR-010002"
	ErrCodeInvalidAmount      EntryErrorCode = "LGR-010003"
	ErrCodeMissingUnitPrice   EntryErrorCode = "LGR-010004"
	ErrCodeMissingDescription EntryErrorCode = "LGR-010005"
	ErrCodeEntryNotFound      EntryErrorCode = "LGR-010006"
	ErrCodeEntryNotInSide     EntryErrorCode = "LGR-010007"

	// Cross-reference errors (02XXXX)
	ErrCodeShipmentNotFound    EntryErrorCode = "LGR-020001"
	ErrCodeLineNotFound        EntryErrorCode = "LGR-020002"
	ErrCodeSourceEntryNotFound EntryErrorCode = "LGR-020003"
	ErrCodeSourceEntryNoPrice  EntryErrorCode = "LGR-020004"
)

// EntryError represents an entry error with code and message.
type EntryError struct {
	Code    EntryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EntryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EntryError) Unwrap() error {
	return e.Err
}

// NewEntryError creates a new EntryError with the given code and message.
func NewEntryError(code EntryErrorCode, message string, err error) *EntryError {
	return &EntryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
