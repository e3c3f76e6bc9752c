package validator

import (
	"errors"
	"fmt"
	"regexp"
)

// Descriptor binds a constraint kind, its parameters and a failure message.
// Descriptors are immutable; build them with NotNull, Range, Length or Pattern.
// The zero Descriptor has KindUnknown and is rejected by SchemaBuilder.Build.
type Descriptor struct {
	kind    Kind
	message string
	lower   Bound
	upper   Bound
	expr    string
	re      *regexp.Regexp
	err     error
}

// NotNull requires the field to be present.
func NotNull(message string) Descriptor {
	return Descriptor{kind: KindNotNull, message: message}
}

// Range requires the field, coerced to an integer, to lie between lower and upper.
func Range(message string, lower, upper Bound) Descriptor {
	return Descriptor{kind: KindRange, message: message, lower: lower, upper: upper}
}

// Length requires the length of the field to lie between lower and upper.
func Length(message string, lower, upper Bound) Descriptor {
	return Descriptor{kind: KindLength, message: message, lower: lower, upper: upper}
}

// Pattern requires expr to match the start of the field's string form.
// A compile error is reported when the schema is built.
func Pattern(message, expr string) Descriptor {
	re, err := CompilePattern(expr)
	return Descriptor{kind: KindPattern, message: message, expr: expr, re: re, err: err}
}

func (d Descriptor) Kind() Kind      { return d.kind }
func (d Descriptor) Message() string { return d.message }
func (d Descriptor) Expr() string    { return d.expr }

func (d Descriptor) Bounds() (lower, upper Bound) { return d.lower, d.upper }

// Err reports whether the descriptor is usable.
func (d Descriptor) Err() error {
	switch d.kind {
	case KindNotNull:
		return nil
	case KindRange, KindLength:
		if d.lower.Value > d.upper.Value {
			return fmt.Errorf("%w: %s lower bound %d exceeds upper bound %d",
				ErrInvalidDescriptor, d.kind, d.lower.Value, d.upper.Value)
		}
		return nil
	case KindPattern:
		if d.err != nil {
			return d.err
		}
		if d.re == nil {
			return fmt.Errorf("%w: pattern descriptor without expression", ErrInvalidDescriptor)
		}
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnknownKind, d.kind)
}

// Check reports whether value satisfies the descriptor.
func (d Descriptor) Check(value any) bool {
	switch d.kind {
	case KindNotNull:
		return CheckNotNull(value)
	case KindRange:
		return CheckRange(value, d.lower, d.upper)
	case KindLength:
		return CheckLength(value, d.lower, d.upper)
	case KindPattern:
		return CheckPattern(value, d.re)
	}
	return true
}

// Validate checks value and returns a *FieldError naming field on failure.
// Unknown kinds pass; SchemaBuilder.Build keeps them out of schemas.
func (d Descriptor) Validate(field string, value any) error {
	var err error
	switch d.kind {
	case KindNotNull:
		err = ValidateNotNull(value, d.message)
	case KindRange:
		err = ValidateRange(value, d.lower, d.upper, d.message)
	case KindLength:
		err = ValidateLength(value, d.lower, d.upper, d.message)
	case KindPattern:
		err = ValidatePattern(value, d.re, d.message)
	default:
		return nil
	}
	if err == nil {
		return nil
	}

	var fe *FieldError
	if errors.As(err, &fe) {
		fe.Field = field
		return fe
	}
	return err
}

// rule adapts the descriptor to a Rule bound to value.
func (d Descriptor) rule(field string, value any) Rule {
	values := map[string]any{"field": field}
	switch d.kind {
	case KindRange, KindLength:
		values["interval"] = Interval(d.lower, d.upper)
	case KindPattern:
		values["pattern"] = d.expr
	}
	return Rule{
		Check: func() bool { return d.Check(value) },
		Error: ValidationError{
			Field:             field,
			Message:           d.message,
			TranslationKey:    d.kind.translationKey(),
			TranslationValues: values,
		},
	}
}
