package apperrors

import "errors"

// Sentinel error kinds. Lower layers wrap these with %w and handlers map
// them to HTTP statuses with errors.Is, so no raw database or SDK error
// detail ever reaches a client.
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already exists")
	ErrUnauthorized = errors.New("authentication required")
	ErrForbidden    = errors.New("admin only")
	ErrUpstream     = errors.New("upstream service failure")
)
