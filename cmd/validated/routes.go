package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/validated/pkg/binder"
	"github.com/dmitrymomot/validated/pkg/httpserver"
	"github.com/dmitrymomot/validated/pkg/logger"
	"github.com/dmitrymomot/validated/pkg/metrics"
	"github.com/dmitrymomot/validated/pkg/requestid"
	"github.com/dmitrymomot/validated/pkg/validator"
)

// validateResponse is the body of /validate responses.
type validateResponse struct {
	validator.Result
	Record validator.Record `json:"record"`
}

type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type schemaInfo struct {
	Type   string      `json:"type"`
	Fields []fieldInfo `json:"fields"`
}

type fieldInfo struct {
	Name  string   `json:"name"`
	Rules []string `json:"rules"`
}

type handlers struct {
	registry *validator.Registry
	log      *slog.Logger
	metrics  *metrics.Metrics
	bindOpts []binder.Option
}

func newRouter(reg *validator.Registry, log *slog.Logger, m *metrics.Metrics, bindOpts ...binder.Option) http.Handler {
	h := &handlers{registry: reg, log: log, metrics: m, bindOpts: bindOpts}

	r := chi.NewRouter()
	r.Use(requestid.Middleware, middleware.Recoverer)

	r.Get("/health", httpserver.HealthCheckHandler(log, h.ready))
	r.Get("/schemas", h.schemas)
	r.Method(http.MethodGet, "/metrics", m.Handler())
	r.Get("/validate/{type}", h.validate)
	r.Post("/validate/{type}", h.validate)
	return r
}

func (h *handlers) ready(context.Context) error {
	if len(h.registry.IDs()) == 0 {
		return errors.New("no schemas registered")
	}
	return nil
}

func (h *handlers) schemas(w http.ResponseWriter, r *http.Request) {
	ids := h.registry.IDs()
	out := make([]schemaInfo, 0, len(ids))
	for _, id := range ids {
		s, ok := h.registry.Schema(id)
		if !ok {
			continue
		}
		info := schemaInfo{Type: id, Fields: make([]fieldInfo, 0, len(s.Fields()))}
		for _, name := range s.Fields() {
			rules := []string{}
			for _, d := range s.Descriptors(name) {
				rules = append(rules, d.Kind().String())
			}
			info.Fields = append(info.Fields, fieldInfo{Name: name, Rules: rules})
		}
		out = append(out, info)
	}
	writeJSON(w, http.StatusOK, map[string]any{"schemas": out})
}

func (h *handlers) validate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id := chi.URLParam(r, "type")

	res, rec, err := binder.RequestFor(id, r, h.bindOpts...)
	if err != nil {
		status, code := errorStatus(err)
		level := slog.LevelWarn
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		h.metrics.ObserveError(id, !errors.Is(err, validator.ErrSchemaNotFound))
		h.log.Log(r.Context(), level, "binding failed",
			logger.RecordType(id), logger.Status(status), logger.Error(err))
		writeJSON(w, status, errorResponse{Error: errorDetail{Code: code, Message: err.Error()}})
		return
	}

	elapsed := time.Since(start)
	h.metrics.ObserveResult(id, res.FailedFields, elapsed)

	status := http.StatusOK
	if !res.OK {
		status = http.StatusUnprocessableEntity
	}
	h.log.InfoContext(r.Context(), "record validated",
		logger.RecordType(id),
		slog.Bool("ok", res.OK),
		logger.FailedFields(res.FailedFields),
		logger.Duration(elapsed),
	)
	writeJSON(w, status, validateResponse{Result: res, Record: rec})
}

// errorStatus maps fatal binding errors to an HTTP status and error code.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, validator.ErrSchemaNotFound):
		return http.StatusNotFound, "unknown_type"
	case errors.Is(err, binder.ErrMissingContentType), errors.Is(err, binder.ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType, "unsupported_media_type"
	case errors.Is(err, binder.ErrInvalidJSON), errors.Is(err, binder.ErrInvalidQuery), errors.Is(err, binder.ErrInvalidForm):
		return http.StatusBadRequest, "malformed_input"
	case errors.Is(err, binder.ErrUnknownField):
		return http.StatusBadRequest, "unknown_field"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
