// Package logger builds *slog.Logger instances for the site.
//
// New applies functional options on top of production defaults (JSON, info
// level, stdout). WithEnvironment switches to text output at debug level in
// development. Context extractors registered with WithContextExtractors add
// request-scoped attributes such as the request id at log time:
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Production, "rewilding"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "registration sent", logger.Component("registration"))
//
// The helpers in attr.go keep attribute keys consistent across packages.
package logger
