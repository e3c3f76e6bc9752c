package requestid

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrymomot/validated/pkg/validator"
)

const (
	Header      = "X-Request-ID"
	maxIDLength = 128
)

// incoming rejects client supplied identifiers that are too long or contain
// characters unsafe for logs and headers.
var incoming = validator.NewSchema("request_id").
	Field("id",
		validator.Length("request id is too long", validator.Incl(1), validator.Incl(maxIDLength)),
		validator.Pattern("request id has invalid characters", `[a-zA-Z0-9_-]+$`),
	).
	MustBuild()

// Middleware propagates the X-Request-ID header, replacing missing or
// invalid values with a new UUID, and stores the id in the request context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(Header)
		if !IsValid(requestID) {
			requestID = uuid.NewString()
		}
		w.Header().Set(Header, requestID)
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), requestID)))
	})
}

// IsValid reports whether id may be reused as a request identifier.
func IsValid(id string) bool {
	return id != "" && incoming.Validate(validator.Fields{"id": id}) == nil
}
