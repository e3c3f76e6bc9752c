package validator

import (
	"fmt"
	"strings"
)

// Kind selects the constraint evaluator a descriptor dispatches to.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindNotNull
	KindRange
	KindLength
	KindPattern
)

func (k Kind) String() string {
	switch k {
	case KindNotNull:
		return "notnull"
	case KindRange:
		return "range"
	case KindLength:
		return "length"
	case KindPattern:
		return "pattern"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

func (k Kind) valid() bool {
	return k >= KindNotNull && k <= KindPattern
}

func (k Kind) translationKey() string {
	if !k.valid() {
		return "validation.invalid"
	}
	return "validation." + k.String()
}

// ParseKind resolves a kind name as written in schema files.
// Matching is case-insensitive; "regular" is accepted as an alias for pattern.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "notnull", "not_null", "not-null":
		return KindNotNull, nil
	case "range":
		return KindRange, nil
	case "length", "len":
		return KindLength, nil
	case "pattern", "regular", "regex":
		return KindPattern, nil
	}
	return KindUnknown, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}
