// Package logger builds *slog.Logger instances from functional options.
//
// New selects a text or JSON handler, applies the minimum level and static
// attributes, and wraps the handler so that values stored in a
// context.Context can be added to every record logged with the *Context
// methods:
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "plvalidate"),
//	    logger.WithLevel(level),
//	    logger.WithContextValue("kind", kindKey{}),
//	)
//	log.DebugContext(ctx, "value checked", logger.Valid(true))
//
// Attribute helpers in attr.go keep key names consistent across commands.
package logger
