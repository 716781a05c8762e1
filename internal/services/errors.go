package services

import "errors"

// Feed error taxonomy. Handlers map these onto HTTP statuses with errors.Is.
var (
	// ErrUnauthorized means the request has no authenticated viewer.
	ErrUnauthorized = errors.New("viewer must be authenticated")

	// ErrInvalidFilter means the caller supplied a malformed page, category,
	// sort mode or time frame.
	ErrInvalidFilter = errors.New("invalid feed filter")

	// ErrStoreUnavailable means a collaborator store failed. The engine does
	// not retry; that belongs to the caller.
	ErrStoreUnavailable = errors.New("store unavailable")
)
