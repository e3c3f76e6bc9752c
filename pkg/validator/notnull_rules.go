package validator

// ValidateNotNull fails with message when value is the null placeholder.
func ValidateNotNull(value any, message string) error {
	if CheckNotNull(value) {
		return nil
	}
	return violation(KindNotNull, message)
}

// CheckNotNull reports whether value is present.
func CheckNotNull(value any) bool {
	return !isNull(value)
}

func violation(kind Kind, message string) *FieldError {
	return &FieldError{Kind: kind, Message: message, Err: ErrConstraintViolation}
}

func coercionFailure(kind Kind, message string, cause error) *FieldError {
	return &FieldError{Kind: kind, Message: message, Err: cause}
}
