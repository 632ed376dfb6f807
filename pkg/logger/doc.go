// Package logger builds *slog.Logger values from functional options.
//
// New returns a JSON logger at info level writing to stderr. Options change
// the format, level and destination, attach static attributes, or register
// ContextExtractor callbacks that add attributes taken from the context given
// to the *Context logging methods:
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "essentials"),
//	    logger.WithLevelName(cfg.LogLevel),
//	    logger.WithContextValue("command", commandKey{}),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "parsed date",
//	    logger.Input(text),
//	    logger.Locale(tag.String()),
//	)
//
// WithDevelopment, WithStaging and WithProduction are presets that set the
// level and format and tag every record with the service and environment
// names. WithEnvironment selects one of them from a configuration value.
//
// Error and Errors return an empty attribute for nil errors, so
//
//	log.Info("done", logger.Error(err))
//
// needs no nil check.
package logger
