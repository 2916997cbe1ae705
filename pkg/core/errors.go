package core

import "errors"

// Common errors.
var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrUnknownFilter     = errors.New("unknown filter")
	ErrSchemaConflict    = errors.New("schema conflict")
	ErrMalformedDate     = errors.New("malformed date")
	ErrMalformedDuration = errors.New("malformed duration")
	ErrMalformedInteger  = errors.New("malformed integer")
)
