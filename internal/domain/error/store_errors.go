package error

import (
	"context"
	"errors"
	"strings"
)

// StoreErrorKind classifies store operation failures so the
// presentation layer can show a meaningful localized message instead
// of a raw driver error.
type StoreErrorKind string

const (
	StoreErrorPermissionDenied StoreErrorKind = "permission-denied"
	StoreErrorUnauthenticated  StoreErrorKind = "unauthenticated"
	StoreErrorUnavailable      StoreErrorKind = "unavailable"
	StoreErrorNotFound         StoreErrorKind = "not-found"
	StoreErrorUnknown          StoreErrorKind = "unknown"
)

// ClassifyStoreError maps an error from the persistence layer to a
// StoreErrorKind. Classification is substring matching over driver
// error text; anything unrecognized is unknown.
func ClassifyStoreError(err error) StoreErrorKind {
	if err == nil {
		return StoreErrorUnknown
	}

	if errors.Is(err, ErrEntryNotFound) ||
		errors.Is(err, ErrOwnerNotFound) ||
		errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrShipmentNotFound) ||
		errors.Is(err, ErrLineNotFound) {
		return StoreErrorNotFound
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return StoreErrorUnavailable
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "permission denied"):
		return StoreErrorPermissionDenied
	case strings.Contains(msg, "authentication") || strings.Contains(msg, "password authentication"):
		return StoreErrorUnauthenticated
	case strings.Contains(msg, "connection refused"),
		strings.Contains(msg, "connection reset"),
		strings.Contains(msg, "broken pipe"),
		strings.Contains(msg, "timeout"),
		strings.Contains(msg, "unavailable"):
		return StoreErrorUnavailable
	}
	return StoreErrorUnknown
}

// LocalizeStoreError renders the Turkish user-facing message for a
// store failure. The fallback is the operation-specific message shown
// for unknown failures.
func LocalizeStoreError(err error, fallback string) string {
	switch ClassifyStoreError(err) {
	case StoreErrorPermissionDenied:
		return "İzin reddedildi. Erişim kurallarını kontrol edin."
	case StoreErrorUnauthenticated:
		return "Oturum doğrulanamadı. Lütfen yeniden giriş yapın."
	case StoreErrorUnavailable:
		return "Bağlantı hatası. İnternet bağlantısını kontrol edin."
	case StoreErrorNotFound:
		return "Kayıt bulunamadı."
	default:
		return fallback
	}
}
