// Package logger builds *slog.Logger instances for the preview server and its
// libraries.
//
// New applies functional options on top of production defaults (JSON, info
// level, stdout). WithEnvironment switches to a human-readable text handler
// at debug level for local development. Every logger is wrapped in a
// LogHandlerDecorator that pulls request-scoped values such as the request id
// out of the context at log time:
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, cfg.AppName),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "render finished",
//		logger.TemplateID(id),
//		logger.Locale(locale),
//		logger.Duration(time.Since(start)),
//	)
//
// Library packages take a *slog.Logger option and fall back to Discard, so
// nothing is printed unless the binary wires a logger in.
package logger
