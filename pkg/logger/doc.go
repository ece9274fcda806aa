// Package logger builds *slog.Logger instances for applications that hold
// forms in their state, and provides attribute helpers for form values.
//
// New takes functional options:
//
//   - WithEnvironment – development (text, debug) or production (json, info) defaults
//   - WithFormat / WithTextFormatter / WithJSONFormatter – output format
//   - WithLevel, WithOutput, WithAttr – level, destination, static attributes
//   - WithContextValue / WithContextExtractors – attributes read from context
//
// Context extractors run on every record, so values such as a submission
// attempt id stored in the context show up on every line logged with
// InfoContext and friends.
//
// # Attributes
//
// Form, Field and Status render validation state consistently:
//
//	log.InfoContext(ctx, "form updated",
//	    logger.Form(f),
//	    logger.Field("email", state.Email),
//	    logger.Status(state.Status),
//	)
//
// Error returns an empty attribute for a nil error, so it can be passed
// unconditionally.
package logger
