package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrymomot/validated/pkg/validator"
)

// JSONFor binds a JSON object to the record registered under id.
//
// The payload must be a single object whose top-level keys are field names.
// Numbers are kept as json.Number so Range sees the literal value, JSON null
// is the null placeholder, and declared keys missing from the object are set
// to nil. Malformed payloads fail with ErrInvalidJSON before any record is built.
func JSONFor(id string, data []byte, opts ...Option) (validator.Result, validator.Record, error) {
	cfg := newConfig(opts)
	values, err := decodeJSON(data, cfg.maxBodySize)
	if err != nil {
		return validator.Result{}, nil, err
	}
	return bind(cfg, id, values)
}

// JSON is JSONFor for the record type T.
//
// Example:
//
//	res, p, err := binder.JSON[Person]([]byte(`{"name": "Zhang"}`))
//	if err != nil {
//		// malformed payload or unregistered type
//	}
//	if !res.OK {
//		// res.FailedFields == []string{"age", "phone"}; p is still populated
//	}
func JSON[T validator.Record](data []byte, opts ...Option) (validator.Result, T, error) {
	return as[T](JSONFor(validator.TypeID[T](), data, opts...))
}

func decodeJSON(data []byte, limit int64) (validator.Fields, error) {
	if limit > 0 && int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: payload too large (max %d bytes)", ErrInvalidJSON, limit)
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var values map[string]any
	if err := decoder.Decode(&values); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty body", ErrInvalidJSON)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if values == nil {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrInvalidJSON)
	}

	// Ensure entire payload was consumed
	var extra json.RawMessage
	if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after JSON object", ErrInvalidJSON)
	}

	return values, nil
}
