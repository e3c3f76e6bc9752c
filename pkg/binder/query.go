package binder

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/dmitrymomot/validated/pkg/validator"
)

// QueryFor binds a URL query string (with or without the leading "?") to the
// record registered under id. Repeated keys keep their first value; values
// stay strings and are coerced by the constraints that need numbers.
func QueryFor(id string, raw string, opts ...Option) (validator.Result, validator.Record, error) {
	values, err := url.ParseQuery(strings.TrimPrefix(raw, "?"))
	if err != nil {
		return validator.Result{}, nil, fmt.Errorf("%w: %v", ErrInvalidQuery, err)
	}
	return ValuesFor(id, values, opts...)
}

// Query is QueryFor for the record type T.
//
// Example:
//
//	res, p, err := binder.Query[Person]("name=Zhang&age=15&age=99")
//	// p.Age == "15"; phone is nil and reported by res
func Query[T validator.Record](raw string, opts ...Option) (validator.Result, T, error) {
	return as[T](QueryFor(validator.TypeID[T](), raw, opts...))
}
