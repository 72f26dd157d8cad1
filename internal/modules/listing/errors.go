package listing

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("listing not found")
	ErrForbidden  = errors.New("forbidden")
)

// FieldErrors carries the per-field validation map up to the handler.
// It unwraps to ErrValidation so errors.Is checks keep working.
type FieldErrors struct {
	Fields map[string]string
}

func (e *FieldErrors) Error() string { return "validation error" }
func (e *FieldErrors) Unwrap() error { return ErrValidation }
