package validator

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"
)

// indirect follows pointers and interfaces. It reports false for nil values.
func indirect(value any) (reflect.Value, bool) {
	if value == nil {
		return reflect.Value{}, false
	}
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}
	return rv, true
}

// isNull reports whether value is the null placeholder. Typed nil pointers,
// maps, slices, funcs and channels count as null too.
func isNull(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// toInt64 coerces value to an integer. Floats are truncated toward zero,
// strings must hold a base-10 integer.
func toInt64(value any) (int64, error) {
	if n, ok := value.(json.Number); ok {
		if i, err := n.Int64(); err == nil {
			return i, nil
		}
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a number", ErrCoercion, n.String())
		}
		return floatToInt64(f)
	}

	rv, ok := indirect(value)
	if !ok {
		return 0, fmt.Errorf("%w: null value is not a number", ErrCoercion)
	}

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, fmt.Errorf("%w: %d overflows int64", ErrCoercion, u)
		}
		return int64(u), nil
	case reflect.Float32, reflect.Float64:
		return floatToInt64(rv.Float())
	case reflect.String:
		s := strings.TrimSpace(rv.String())
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not an integer", ErrCoercion, rv.String())
		}
		return i, nil
	}

	return 0, fmt.Errorf("%w: %s is not numeric", ErrCoercion, rv.Type())
}

func floatToInt64(f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %v is not finite", ErrCoercion, f)
	}
	t := math.Trunc(f)
	if t < math.MinInt64 || t >= math.MaxInt64 {
		return 0, fmt.Errorf("%w: %v overflows int64", ErrCoercion, f)
	}
	return int64(t), nil
}

// toString returns the string form of a scalar value.
func toString(value any) (string, error) {
	rv, ok := indirect(value)
	if !ok {
		return "", fmt.Errorf("%w: null value has no string form", ErrCoercion)
	}

	if rv.CanInterface() {
		switch v := rv.Interface().(type) {
		case string:
			return v, nil
		case []byte:
			return string(v), nil
		case fmt.Stringer:
			return v.String(), nil
		}
	}

	switch rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), nil
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), nil
	}

	return "", fmt.Errorf("%w: %s has no string form", ErrCoercion, rv.Type())
}

// lengthOf counts elements of slices, arrays and maps, and runes of
// everything else after converting it to its string form.
func lengthOf(value any) (int64, error) {
	rv, ok := indirect(value)
	if !ok {
		return 0, fmt.Errorf("%w: null value has no length", ErrCoercion)
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return int64(rv.Len()), nil
	}

	s, err := toString(value)
	if err != nil {
		return 0, err
	}
	return int64(utf8.RuneCountInString(s)), nil
}
