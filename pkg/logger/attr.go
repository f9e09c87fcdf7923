package logger

import (
	"fmt"
	"log/slog"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Field records a field path under the key "field".
func Field(path string) slog.Attr {
	return slog.String("field", path)
}

// RuleType records the declared rule type under the key "rule_type".
func RuleType(t fmt.Stringer) slog.Attr {
	if t == nil {
		return slog.Attr{}
	}
	return slog.String("rule_type", t.String())
}

// Code records a validation error code under the key "code".
func Code(code fmt.Stringer) slog.Attr {
	if code == nil {
		return slog.Attr{}
	}
	return slog.String("code", code.String())
}

// Count records a count under the given key.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}
