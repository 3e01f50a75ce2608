package error

// APIErrorCode represents API boundary error codes.
type APIErrorCode string

const (
	// ErrCodeRateLimited indicates too many requests from one client.
	ErrCodeRateLimited APIErrorCode = "API-020001"
)
