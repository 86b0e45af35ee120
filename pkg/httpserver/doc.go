// Package httpserver runs an http.Handler with graceful shutdown.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Run blocks until ctx is cancelled, SIGINT/SIGTERM arrives or the listener
// fails, then drains in-flight requests for at most the shutdown timeout.
// Serve does the same on a caller-provided listener.
//
// HealthHandler serves liveness and readiness probes.
package httpserver
