package logger

import (
	"log/slog"

	"github.com/dmitrymomot/formz/pkg/field"
	"github.com/dmitrymomot/formz/pkg/form"
	"github.com/dmitrymomot/formz/pkg/submission"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error records err under the key "error". Nil errors produce an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Form records the rolled up state of f under the key "form".
func Form(f form.Form) slog.Attr {
	return Group("form",
		slog.Bool("valid", f.IsValid()),
		slog.Bool("pure", f.IsPure()),
		slog.Int("fields", f.Len()),
		slog.Int("invalid", f.InvalidCount()),
	)
}

// Field records the state of a single input under its name.
func Field(name string, in field.Input) slog.Attr {
	if in == nil {
		return slog.Attr{}
	}
	return Group(name,
		slog.Bool("valid", in.IsValid()),
		slog.Bool("pure", in.IsPure()),
	)
}

// Status records a submission status under the key "status".
func Status(s submission.Status) slog.Attr {
	return slog.String("status", s.String())
}

// AttemptID records a submission attempt identifier under the key "attempt_id".
func AttemptID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("attempt_id", id)
}
