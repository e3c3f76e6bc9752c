package validator

// ValidateLength fails with message unless the length of value lies between
// lower and upper. Strings are measured in runes, slices, arrays and maps by
// element count, other scalars by the length of their string form.
func ValidateLength(value any, lower, upper Bound, message string) error {
	n, err := lengthOf(value)
	if err != nil {
		return coercionFailure(KindLength, message, err)
	}
	if !within(n, lower, upper) {
		return violation(KindLength, message)
	}
	return nil
}

// CheckLength is the boolean form of ValidateLength.
func CheckLength(value any, lower, upper Bound) bool {
	n, err := lengthOf(value)
	return err == nil && within(n, lower, upper)
}
