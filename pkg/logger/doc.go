// Package logger builds *slog.Logger instances with functional options and
// provides attribute constructors that keep key names consistent across the
// module.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment("production"),
//	    logger.WithAttr(logger.Component("fieldcheck")),
//	)
//	log.Debug("field dropped", logger.Field("user.email"))
//
// Options:
//
//   - WithEnvironment – per-environment level and format defaults.
//   - WithFormat / WithTextFormatter / WithJSONFormatter – output format.
//   - WithLevel / WithLevelName – minimum level.
//   - WithOutput – destination writer (stderr by default).
//   - WithAttr – static attributes on every record.
//
// Discard returns a logger that drops everything; library code uses it as its
// default so nothing is printed unless the caller opts in.
//
// # Attributes
//
// Field, Code, RuleType, Component, Count and Error return slog.Attr values.
// Error, Code and RuleType return an empty Attr for nil input, so they can be
// passed unconditionally.
package logger
