package adapter

import "errors"

var (
	// ErrBadRequest is returned for HTTP 400 responses: a malformed batch
	// body or an invalid objectID.
	ErrBadRequest = errors.New("index rejected request")
	// ErrUnauthorized is returned for HTTP 401/403 responses: bad
	// application id or an API key without write rights.
	ErrUnauthorized = errors.New("index client unauthorized")
	// ErrIndexNotFound is returned for HTTP 404 responses.
	ErrIndexNotFound = errors.New("index not found")
	// ErrQuotaExceeded is returned for HTTP 429 responses: the application
	// exceeded its operations quota.
	ErrQuotaExceeded = errors.New("index quota exceeded")
	// ErrIndexUnavailable is returned for 5xx responses.
	ErrIndexUnavailable = errors.New("index unavailable")
)
