// Package httpserver runs an http.Handler with configured timeouts and a
// graceful shutdown tied to a context.
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server failed", logger.Error(err))
//	}
//
// HealthCheckHandler provides liveness and readiness endpoints. Start and
// serve errors wrap ErrStart, shutdown errors wrap ErrShutdown.
package httpserver
