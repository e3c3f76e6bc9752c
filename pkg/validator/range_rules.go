package validator

import "fmt"

// Bound is one end of a Range or Length interval.
type Bound struct {
	Value     int64
	Inclusive bool
}

// Incl returns an inclusive bound.
func Incl(v int64) Bound { return Bound{Value: v, Inclusive: true} }

// Excl returns an exclusive bound.
func Excl(v int64) Bound { return Bound{Value: v} }

// Interval formats lower and upper in interval notation, e.g. "[10, 60)".
func Interval(lower, upper Bound) string {
	open, closing := "(", ")"
	if lower.Inclusive {
		open = "["
	}
	if upper.Inclusive {
		closing = "]"
	}
	return fmt.Sprintf("%s%d, %d%s", open, lower.Value, upper.Value, closing)
}

func within(n int64, lower, upper Bound) bool {
	if lower.Inclusive {
		if n < lower.Value {
			return false
		}
	} else if n <= lower.Value {
		return false
	}

	if upper.Inclusive {
		return n <= upper.Value
	}
	return n < upper.Value
}

// ValidateRange coerces value to an integer and fails with message unless it
// lies between lower and upper.
func ValidateRange(value any, lower, upper Bound, message string) error {
	n, err := toInt64(value)
	if err != nil {
		return coercionFailure(KindRange, message, err)
	}
	if !within(n, lower, upper) {
		return violation(KindRange, message)
	}
	return nil
}

// CheckRange is the boolean form of ValidateRange. Values that cannot be
// coerced to an integer do not pass.
func CheckRange(value any, lower, upper Bound) bool {
	n, err := toInt64(value)
	return err == nil && within(n, lower, upper)
}
