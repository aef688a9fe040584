// Package httpserver runs an http.Handler with timeouts and graceful shutdown.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
//
// Run blocks until ctx is cancelled, SIGINT/SIGTERM is received or the
// listener fails. Errors wrap ErrStart or ErrShutdown.
package httpserver
