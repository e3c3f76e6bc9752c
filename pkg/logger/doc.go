// Package logger builds *slog.Logger instances from functional options.
//
// New picks a text or JSON handler, attaches static attributes and wraps the
// handler in a ContextHandler that adds request-scoped attributes pulled
// from the context of every log call.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "validated"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "record validated",
//	    logger.RecordType(id),
//	    logger.FailedFields(res.FailedFields),
//	)
//
// Attribute helpers such as Error, RequestID and FailedFields return an
// empty slog.Attr for empty input, which slog drops, so callers can pass
// them without nil checks.
package logger
