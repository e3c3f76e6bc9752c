package validator

import (
	"fmt"
	"regexp"
)

// CompilePattern compiles expr anchored at the start of the input only:
// a match of any prefix satisfies it.
func CompilePattern(expr string) (*regexp.Regexp, error) {
	re, err := regexp.Compile("^(?:" + expr + ")")
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, expr, err)
	}
	return re, nil
}

// ValidatePattern fails with message unless re matches the start of the
// string form of value. re is expected to come from CompilePattern.
func ValidatePattern(value any, re *regexp.Regexp, message string) error {
	s, err := toString(value)
	if err != nil {
		return coercionFailure(KindPattern, message, err)
	}
	if !matchPrefix(re, s) {
		return violation(KindPattern, message)
	}
	return nil
}

// CheckPattern is the boolean form of ValidatePattern.
func CheckPattern(value any, re *regexp.Regexp) bool {
	s, err := toString(value)
	return err == nil && matchPrefix(re, s)
}

// matchPrefix also accepts expressions compiled without the anchor.
func matchPrefix(re *regexp.Regexp, s string) bool {
	if re == nil {
		return false
	}
	loc := re.FindStringIndex(s)
	return loc != nil && loc[0] == 0
}
