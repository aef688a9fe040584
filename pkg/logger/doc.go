// Package logger builds the *slog.Logger used across the module.
//
// New assembles a text or JSON slog handler from functional options and wraps
// it with a decorator that injects request-scoped attributes (for example the
// request id) pulled from context.Context on every record.
//
//	log := logger.New(
//	    logger.WithDevelopment("catalog"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "route registered", logger.Route("POST /items"))
//
// FromConfig maps the LOG_LEVEL and LOG_FORMAT environment settings onto the
// same options. Attribute helpers in attr.go keep key names consistent; the
// error helpers return an empty Attr for nil errors so callers can log
// unconditionally.
package logger
