package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error records err under the key "error".
// A nil err yields an empty Attr, which slog handlers drop.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups the non-nil errors under the key "errors", keyed by position.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Component records the part of the program emitting the record.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Command records the CLI command being executed.
func Command(name string) slog.Attr {
	return slog.String("command", name)
}

// Input records user supplied text under the key "input".
func Input(s string) slog.Attr {
	return slog.String("input", s)
}

// Locale records a BCP 47 language tag under the key "locale".
func Locale(tag string) slog.Attr {
	return slog.String("locale", tag)
}

// Duration records d under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
