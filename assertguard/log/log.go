package log

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Logger receives assertion diagnostics. Each failed check arrives as one
// Log call at LevelError carrying the diagnostic line as msg and the
// assertion.* fields describing the call site.
type Logger interface {
	Log(ctx context.Context, level Level, msg string, fields ...Field)
	With(fields ...Field) Logger
	WithGroup(name string) Logger
	Enabled(level Level) bool
	Sync(ctx context.Context) error
}

// Level is a verbosity ceiling. Lower values are more severe, so a sink at
// LevelWarn writes errors and warnings only.
type Level uint8

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

var levelNames = [...]string{
	LevelError: "error",
	LevelWarn:  "warn",
	LevelInfo:  "info",
	LevelDebug: "debug",
}

// ErrInvalidLevel is returned by ParseLevel for an unknown level name.
var ErrInvalidLevel = errors.New("invalid log level")

func (level Level) String() string {
	if int(level) < len(levelNames) {
		return levelNames[level]
	}

	return "unknown"
}

// ParseLevel resolves a case-insensitive level name. "warning" is accepted
// as an alias of "warn".
func ParseLevel(name string) (Level, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "warning" {
		normalized = "warn"
	}

	for i, levelName := range levelNames {
		if levelName == normalized {
			return Level(i), nil
		}
	}

	return LevelError, fmt.Errorf("%w: %q", ErrInvalidLevel, name)
}

// Field is a key/value attribute attached to a diagnostic.
type Field struct {
	Key   string
	Value any
}

// String creates a string field.
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int creates an integer field.
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// qualify returns fields with their keys prefixed by group.
func qualify(group string, fields []Field) []Field {
	if group == "" || len(fields) == 0 {
		return fields
	}

	out := make([]Field, len(fields))
	for i, f := range fields {
		out[i] = Field{Key: group + "." + f.Key, Value: f.Value}
	}

	return out
}
