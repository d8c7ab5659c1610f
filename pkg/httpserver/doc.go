// Usage:
//
//	srv := httpserver.New(cfg, httpserver.WithLogger(log))
//	r.Get("/health/live", httpserver.LivenessHandler())
//	r.Get("/health/ready", httpserver.ReadinessHandler(log, mailer.Check))
//	if err := srv.Run(ctx, r); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Run wraps listener failures with ErrStart and Shutdown wraps drain
// failures with ErrShutdown; use errors.Is to tell them apart.
package httpserver
