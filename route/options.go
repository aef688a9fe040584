package route

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/schemaroute/pkg/binder"
	"github.com/dmitrymomot/schemaroute/pkg/i18n"
	"github.com/dmitrymomot/schemaroute/pkg/logger"
)

// Option configures a Route.
type Option func(*config)

type config struct {
	name           string
	logger         *slog.Logger
	translator     *i18n.Translator
	errorHandler   ErrorHandler
	contextBinder  binder.Func
	queryBinder    binder.Func
	customQuery    bool
	headerBinder   binder.Func
	bodyBinder     binder.Func
	rewriteHandler http.Handler
}

func newConfig(opts []Option) *config {
	cfg := &config{
		logger:        logger.Discard(),
		contextBinder: binder.Path(chi.URLParam),
		queryBinder:   binder.Query(),
		headerBinder:  binder.Header(),
		bodyBinder:    binder.Body(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.errorHandler == nil {
		cfg.errorHandler = NewErrorHandler(cfg.logger, cfg.translator)
	}
	return cfg
}

// WithName sets the route name used in log records.
func WithName(name string) Option {
	return func(c *config) { c.name = name }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTranslator enables translated error messages in the default error handler.
func WithTranslator(t *i18n.Translator) Option {
	return func(c *config) { c.translator = t }
}

// WithErrorHandler replaces the default JSON error handler.
func WithErrorHandler(h ErrorHandler) Option {
	return func(c *config) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// WithContextBinder sets how the context value is bound. The default binds
// `path:` tags with chi.URLParam.
func WithContextBinder(b binder.Func) Option {
	return func(c *config) {
		if b != nil {
			c.contextBinder = b
		}
	}
}

// WithQueryBinder sets how the query is bound. Request.GetQuery then always
// returns the value this binder produced; array keys are not applied.
func WithQueryBinder(b binder.Func) Option {
	return func(c *config) {
		if b != nil {
			c.queryBinder = b
			c.customQuery = true
		}
	}
}

func WithHeaderBinder(b binder.Func) Option {
	return func(c *config) {
		if b != nil {
			c.headerBinder = b
		}
	}
}

// WithBodyBinder sets the body decoder, e.g. binder.JSON() to refuse forms.
func WithBodyBinder(b binder.Func) Option {
	return func(c *config) {
		if b != nil {
			c.bodyBinder = b
		}
	}
}

// WithRewriteHandler sets the handler Rewrite dispatches to. By default the
// chi router that matched the request is used.
func WithRewriteHandler(h http.Handler) Option {
	return func(c *config) { c.rewriteHandler = h }
}
