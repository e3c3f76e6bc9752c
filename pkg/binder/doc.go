// Package binder builds records from untyped external input and validates them.
//
// Input arrives as a JSON object, a URL query string, url.Values, a plain map
// or an *http.Request. Binding always follows the same steps:
//
//  1. Parse the input into a field map. Query strings keep the first value
//     of repeated keys.
//  2. Set every field the schema declares but the input lacks to nil, so
//     constructors always receive every declared field.
//  3. Build the record with the constructor registered for the type.
//  4. Run validator.Schema.ValidateAll on it.
//
// The record is returned together with the validation result even when it is
// invalid, so callers can inspect what was received.
//
// # Basic Usage
//
//	validator.MustRegister(validator.DefaultRegistry(), personSchema, newPerson)
//
//	res, p, err := binder.JSON[Person](body)
//	if err != nil {
//	    // malformed JSON, unregistered type or failed constructor
//	}
//	if !res.OK {
//	    // res.FailedFields and res.Messages describe every failing field
//	}
//
// Schemas registered without a Go type (validator.Registry.RegisterSchema)
// are bound with the untyped variants JSONFor, QueryFor, ValuesFor, MapFor
// and RequestFor, which return *validator.Document records.
//
// # Error Handling
//
// Parsing problems are never aggregated into the result; they are returned as
// errors wrapping one of:
//
//   - ErrInvalidJSON: payload is not a single JSON object or is too large
//   - ErrInvalidQuery: query string cannot be parsed
//   - ErrInvalidForm: form body cannot be parsed
//   - ErrMissingContentType / ErrUnsupportedMediaType: request body is not JSON
//   - ErrUnknownField: strict mode and an undeclared key was supplied
//   - ErrConstruct: the registered constructor failed
//   - validator.ErrSchemaNotFound: nothing is registered for the type
package binder
