package validator

import "errors"

var (
	// ErrValidationFailed is matched by every field-level failure, whatever its cause.
	ErrValidationFailed = errors.New("validation failed")

	// ErrConstraintViolation is returned when a value does not satisfy a constraint.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrCoercion is returned when a value cannot be converted to the type a
	// constraint compares against (e.g. a non-numeric string checked by Range).
	ErrCoercion = errors.New("value cannot be coerced")

	// ErrUnknownKind is returned when a descriptor names an unsupported constraint kind.
	ErrUnknownKind = errors.New("unknown constraint kind")

	// ErrInvalidDescriptor is returned when descriptor parameters do not match its kind.
	ErrInvalidDescriptor = errors.New("invalid constraint descriptor")

	// ErrInvalidPattern is returned when a Pattern descriptor does not compile.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrInvalidSchema is returned by schema builders and schema file loaders.
	ErrInvalidSchema = errors.New("invalid schema")

	// ErrSchemaNotFound is returned when no schema is registered for a record type.
	ErrSchemaNotFound = errors.New("schema not found")
)
