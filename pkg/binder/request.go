package binder

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dmitrymomot/validated/pkg/validator"
)

// RequestFor binds an HTTP request to the record registered under id.
// GET, HEAD and DELETE requests are bound from the URL query. Other methods
// are bound from the body according to its Content-Type: application/json,
// application/x-www-form-urlencoded or multipart/form-data.
func RequestFor(id string, r *http.Request, opts ...Option) (validator.Result, validator.Record, error) {
	switch r.Method {
	case http.MethodGet, http.MethodHead, http.MethodDelete:
		return QueryFor(id, r.URL.RawQuery, opts...)
	}

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return validator.Result{}, nil, fmt.Errorf("%w: expected application/json", ErrMissingContentType)
	}

	mediaType := mediaTypeOf(contentType)
	switch {
	case mediaType == "application/json", strings.HasSuffix(mediaType, "+json"):
		return bodyJSON(id, r, opts)
	case mediaType == "application/x-www-form-urlencoded", mediaType == "multipart/form-data":
		return FormFor(id, r, opts...)
	}
	return validator.Result{}, nil, fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, mediaType)
}

// Request is RequestFor for the record type T.
func Request[T validator.Record](r *http.Request, opts ...Option) (validator.Result, T, error) {
	return as[T](RequestFor(validator.TypeID[T](), r, opts...))
}

func bodyJSON(id string, r *http.Request, opts []Option) (validator.Result, validator.Record, error) {
	cfg := newConfig(opts)
	var body io.Reader = r.Body
	if cfg.maxBodySize > 0 {
		// One extra byte lets decodeJSON report oversized bodies
		body = io.LimitReader(r.Body, cfg.maxBodySize+1)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return validator.Result{}, nil, fmt.Errorf("%w: failed to read request body: %v", ErrInvalidJSON, err)
	}
	return JSONFor(id, data, opts...)
}
