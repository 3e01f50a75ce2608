package error

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestClassifyStoreError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected StoreErrorKind
	}{
		{name: "nil", err: nil, expected: StoreErrorUnknown},
		{name: "entry not found sentinel", err: ErrEntryNotFound, expected: StoreErrorNotFound},
		{name: "wrapped owner not found", err: fmt.Errorf("delete: %w", ErrOwnerNotFound), expected: StoreErrorNotFound},
		{name: "deadline exceeded", err: context.DeadlineExceeded, expected: StoreErrorUnavailable},
		{name: "canceled", err: context.Canceled, expected: StoreErrorUnavailable},
		{name: "permission denied", err: errors.New("pq: permission denied for table entries"), expected: StoreErrorPermissionDenied},
		{name: "auth failure", err: errors.New("password authentication failed for user"), expected: StoreErrorUnauthenticated},
		{name: "connection refused", err: errors.New("dial tcp 127.0.0.1:5432: connection refused"), expected: StoreErrorUnavailable},
		{name: "timeout", err: errors.New("i/o timeout"), expected: StoreErrorUnavailable},
		{name: "anything else", err: errors.New("syntax error at or near"), expected: StoreErrorUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyStoreError(tt.err); got != tt.expected {
				t.Errorf("ClassifyStoreError(%v) = %s, want %s", tt.err, got, tt.expected)
			}
		})
	}
}

func TestLocalizeStoreError(t *testing.T) {
	fallback := "Kayıt kaydedilemedi."

	if got := LocalizeStoreError(errors.New("permission denied"), fallback); got != "İzin reddedildi. Erişim kurallarını kontrol edin." {
		t.Errorf("unexpected permission message: %q", got)
	}
	if got := LocalizeStoreError(errors.New("some driver oddity"), fallback); got != fallback {
		t.Errorf("unknown errors must use the fallback, got %q", got)
	}
}
