package binder

import (
	"fmt"
	"net/url"
	"slices"

	"github.com/dmitrymomot/validated/pkg/validator"
)

// MapFor completes values with nil for every declared field it lacks, builds
// the record registered under id and validates it. The record is returned
// even when validation fails. values is not modified.
func MapFor(id string, values map[string]any, opts ...Option) (validator.Result, validator.Record, error) {
	return bind(newConfig(opts), id, validator.Fields(values).Clone())
}

// Map is MapFor for the record type T.
func Map[T validator.Record](values map[string]any, opts ...Option) (validator.Result, T, error) {
	return as[T](MapFor(validator.TypeID[T](), values, opts...))
}

// ValuesFor binds url.Values, keeping the first value of every key.
func ValuesFor(id string, values url.Values, opts ...Option) (validator.Result, validator.Record, error) {
	return bind(newConfig(opts), id, firstValues(values))
}

// Values is ValuesFor for the record type T.
func Values[T validator.Record](values url.Values, opts ...Option) (validator.Result, T, error) {
	return as[T](ValuesFor(validator.TypeID[T](), values, opts...))
}

func bind(cfg *config, id string, values validator.Fields) (validator.Result, validator.Record, error) {
	reg, err := cfg.registry.Lookup(id)
	if err != nil {
		return validator.Result{}, nil, err
	}
	schema := reg.Schema

	if cfg.strict {
		var unknown []string
		for key := range values {
			if !schema.Has(key) {
				unknown = append(unknown, key)
			}
		}
		if len(unknown) > 0 {
			slices.Sort(unknown)
			return validator.Result{}, nil, fmt.Errorf("%w: %s: %v", ErrUnknownField, id, unknown)
		}
	}

	for _, field := range schema.Fields() {
		if _, ok := values[field]; !ok {
			values[field] = nil
		}
	}

	rec, err := reg.New(values)
	if err != nil {
		return validator.Result{}, nil, fmt.Errorf("%w: %s: %w", ErrConstruct, id, err)
	}
	if rec == nil {
		return validator.Result{}, nil, fmt.Errorf("%w: %s: constructor returned nil", ErrConstruct, id)
	}

	return schema.ValidateAll(rec), rec, nil
}

func as[T validator.Record](res validator.Result, rec validator.Record, err error) (validator.Result, T, error) {
	var zero T
	if err != nil {
		return res, zero, err
	}
	typed, ok := rec.(T)
	if !ok {
		return validator.Result{}, zero, fmt.Errorf("%w: constructor returned %T, want %T", ErrConstruct, rec, zero)
	}
	return res, typed, nil
}

func firstValues(values url.Values) validator.Fields {
	fields := make(validator.Fields, len(values))
	for key, vs := range values {
		if len(vs) > 0 {
			fields[key] = vs[0]
		}
	}
	return fields
}
