package error

import "errors"

// Owner (beekeeper/factory/supplier) domain errors.
var (
	// ErrOwnerNotFound is returned when an owner record is not found.
	ErrOwnerNotFound = errors.New("owner not found")

	// ErrMissingOwnerName is returned when an owner is saved without a name.
	ErrMissingOwnerName = errors.New("missing owner name")

	// ErrCascadeIncomplete is returned when a cascade delete committed some
	// batches and then failed; entries may remain until the delete is retried.
	ErrCascadeIncomplete = errors.New("cascade delete incomplete")

	// ErrUnknownOwnerType is returned when a partition is addressed with an
	// owner type outside beekeeper, factory or supplier.
	ErrUnknownOwnerType = errors.New("unknown owner type")
)

// OwnerErrorCode defines error codes for owner errors.
type OwnerErrorCode string

const (
	ErrCodeOwnerNotFound     OwnerErrorCode = "OWN-010001"
	ErrCodeMissingOwnerName  OwnerErrorCode = "OWN-010002"
	ErrCodeCascadeIncomplete OwnerErrorCode = "OWN-020001"
	ErrCodeUnknownOwnerType  OwnerErrorCode = "OWN-010003"
)

// OwnerError represents an owner error with code and message.
type OwnerError struct {
	Code    OwnerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *OwnerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *OwnerError) Unwrap() error {
	return e.Err
}

// NewOwnerError creates a new OwnerError with the given code and message.
func NewOwnerError(code OwnerErrorCode, message string, err error) *OwnerError {
	return &OwnerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
