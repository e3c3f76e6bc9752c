package binder

import "errors"

// Common binding errors. All of them are fatal: no record is constructed.
var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrInvalidJSON          = errors.New("failed to parse JSON payload")
	ErrInvalidQuery         = errors.New("failed to parse query string")
	ErrInvalidForm          = errors.New("failed to parse form data")
	ErrUnknownField         = errors.New("field is not declared by the schema")
	ErrConstruct            = errors.New("failed to construct record")
)
