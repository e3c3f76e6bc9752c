package requestid

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/validated/pkg/logger"
)

// LoggerExtractor adds the request id of the logging context to every record.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if requestID := FromContext(ctx); requestID != "" {
			return logger.RequestID(requestID), true
		}
		return slog.Attr{}, false
	}
}
