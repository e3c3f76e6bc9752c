package binder

import (
	"fmt"
	"mime"
	"net/http"
	"strings"

	"github.com/dmitrymomot/validated/pkg/validator"
)

// DefaultMaxMemory is the default maximum memory used for parsing multipart forms (10MB).
const DefaultMaxMemory = 10 << 20 // 10 MB

// FormFor binds an application/x-www-form-urlencoded or multipart/form-data
// request body to the record registered under id. Only the body is read; query
// parameters are ignored. Uploaded files are not part of the record.
func FormFor(id string, r *http.Request, opts ...Option) (validator.Result, validator.Record, error) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return validator.Result{}, nil, fmt.Errorf("%w: expected application/x-www-form-urlencoded or multipart/form-data", ErrMissingContentType)
	}
	mediaType := mediaTypeOf(contentType)

	cfg := newConfig(opts)
	if cfg.maxBodySize > 0 {
		r.Body = http.MaxBytesReader(nil, r.Body, cfg.maxBodySize)
	}

	switch {
	case mediaType == "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return validator.Result{}, nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
		return bind(cfg, id, firstValues(r.PostForm))

	case mediaType == "multipart/form-data":
		_, params, err := mime.ParseMediaType(contentType)
		if err != nil {
			return validator.Result{}, nil, fmt.Errorf("%w: malformed content type with boundary", ErrInvalidForm)
		}
		if !validBoundary(params["boundary"]) {
			return validator.Result{}, nil, fmt.Errorf("%w: invalid boundary parameter", ErrInvalidForm)
		}
		if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
			return validator.Result{}, nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
		if r.MultipartForm == nil {
			return bind(cfg, id, validator.Fields{})
		}
		return bind(cfg, id, firstValues(r.MultipartForm.Value))

	default:
		return validator.Result{}, nil, fmt.Errorf("%w: got %s, expected application/x-www-form-urlencoded or multipart/form-data", ErrUnsupportedMediaType, mediaType)
	}
}

// Form is FormFor for the record type T.
func Form[T validator.Record](r *http.Request, opts ...Option) (validator.Result, T, error) {
	return as[T](FormFor(validator.TypeID[T](), r, opts...))
}

// mediaTypeOf strips parameters from a Content-Type header value.
func mediaTypeOf(contentType string) string {
	mediaType := contentType
	if idx := strings.Index(contentType, ";"); idx != -1 {
		mediaType = contentType[:idx]
	}
	return strings.ToLower(strings.TrimSpace(mediaType))
}

// validBoundary reports whether b is a boundary allowed by RFC 2046.
func validBoundary(b string) bool {
	if len(b) == 0 || len(b) > 70 || strings.HasSuffix(b, " ") {
		return false
	}
	for _, c := range b {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case strings.ContainsRune("'()+_,-./:=? ", c):
		default:
			return false
		}
	}
	return true
}
