package autoslug

import "errors"

var (
	ErrMissingSlugField    = errors.New("autoslug: slug field name is required")
	ErrMissingPopulateFrom = errors.New("autoslug: missing populate_from configuration")
	ErrEmptyFieldName      = errors.New("autoslug: field name must not be empty")
	ErrInvalidRecord       = errors.New("autoslug: record must be a non-nil struct pointer")
	ErrUnknownField        = errors.New("autoslug: record has no such field")
	ErrNilStorage          = errors.New("autoslug: storage is required for uniqueness probing")
	ErrExistsCheckFailed   = errors.New("autoslug: slug existence check failed")
	ErrMaxAttempts         = errors.New("autoslug: exceeded maximum unique slug attempts")
)
