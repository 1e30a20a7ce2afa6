// Package logger builds slog loggers with functional options, injects values
// from context.Context into every record, and renders taxonomy errors as
// structured attributes.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithService("orders"),
//	    logger.WithContextValue("request_id", requestIDKey{}),
//	)
//
//	if _, err := rule.Apply(input, validator.Write); err != nil {
//	    log.WarnContext(ctx, "rejected input", logger.Error(err), logger.Scope(validator.Write))
//	}
//
// FromConfig builds the same logger from a Config loaded with pkg/config
// (LOG_LEVEL, LOG_FORMAT, SERVICE_NAME, APP_ENV).
//
// # Error attributes
//
// Error emits an "error" group for apperr members: kind, branch, message and
// the variant payload (instruction, id, headers). The payload is produced by an
// apperr.Visitor, so a new taxonomy variant does not compile until this
// package knows how to log it. Generic and unclassified errors are flagged with
// placeholder=true so log pipelines can keep them out of user-facing reports.
//
// The packages in this module never log on their own; callers decide what and
// when to log.
package logger
