package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/schemaroute/pkg/clientip"
	"github.com/dmitrymomot/schemaroute/pkg/config"
	"github.com/dmitrymomot/schemaroute/pkg/httpserver"
	"github.com/dmitrymomot/schemaroute/pkg/i18n"
	"github.com/dmitrymomot/schemaroute/pkg/logger"
	"github.com/dmitrymomot/schemaroute/pkg/ratelimiter"
	"github.com/dmitrymomot/schemaroute/pkg/requestid"
	"github.com/dmitrymomot/schemaroute/route"
)

type appConfig struct {
	Log  logger.Config
	HTTP httpserver.Config

	DefaultLanguage string `env:"DEFAULT_LANGUAGE" envDefault:"en"`
	LocalesFile     string `env:"LOCALES_FILE"`
	AdminToken      string `env:"ADMIN_TOKEN"`

	CreateLimit ratelimiter.Config
}

func main() {
	cfg, err := config.Load[appConfig]()
	if err != nil {
		slog.Error("failed to load config", logger.Error(err))
		os.Exit(1)
	}

	log, err := logger.FromConfig(cfg.Log, logger.WithContextExtractors(
		requestid.LoggerExtractor(),
		clientip.LoggerExtractor(),
	))
	if err != nil {
		slog.Error("failed to build logger", logger.Error(err))
		os.Exit(1)
	}

	tr := i18n.Default(i18n.WithDefaultLanguage(cfg.DefaultLanguage), i18n.WithLogger(log))
	if cfg.LocalesFile != "" {
		if err := tr.LoadFile(cfg.LocalesFile); err != nil {
			log.Error("failed to load locales", logger.Error(err), slog.String("file", cfg.LocalesFile))
			os.Exit(1)
		}
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware, clientip.Middleware, i18n.Middleware(tr))

	limiter, err := ratelimiter.New(cfg.CreateLimit)
	if err != nil {
		log.Error("invalid rate limit config", logger.Error(err))
		os.Exit(1)
	}
	defer limiter.Close()

	store := newItemStore()
	errorHandler := route.NewErrorHandler(log, tr)
	createLimit := ratelimiter.Middleware(limiter, ratelimiter.ByIP(clientip.FromRequest), limitExceeded(errorHandler))
	routeOpts := []route.Option{route.WithLogger(log), route.WithTranslator(tr), route.WithErrorHandler(errorHandler)}
	mountItems(r, store, cfg.AdminToken, createLimit, routeOpts...)
	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Get("/readyz", httpserver.HealthCheckHandler(log, store.ping))

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	if err := srv.Run(context.Background(), r); err != nil {
		log.Error("server stopped with error", logger.Error(err))
	}
}

// limitExceeded renders rate limit denials through the route error envelope.
func limitExceeded(h route.ErrorHandler) func(http.ResponseWriter, *http.Request, error) {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		if errors.Is(err, ratelimiter.ErrLimitExceeded) {
			err = fmt.Errorf("%w: %w", route.ErrTooManyRequests, err)
		}
		h(w, r, err)
	}
}
