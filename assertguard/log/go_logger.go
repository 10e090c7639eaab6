package log

import (
	"context"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"strings"
)

// GoLogger is the Go built-in (log) implementation of Logger.
//
// Every event is written with a single Output call, which the standard
// library serialises, so concurrent events never interleave mid-line.
// Messages and string field values are sanitized against log injection.
type GoLogger struct {
	out    *stdlog.Logger
	fields []Field // keys already qualified by the groups open when added
	group  string
	Level  Level
	// Plain drops fields so each event is the message alone.
	Plain bool
}

// Compile-time assertion: *GoLogger implements Logger.
var _ Logger = (*GoLogger)(nil)

// NewGoLogger creates a GoLogger writing to w with the given stdlib log flags.
func NewGoLogger(w io.Writer, flags int, level Level) *GoLogger {
	if w == nil {
		w = os.Stderr
	}

	return &GoLogger{
		out:   stdlog.New(w, "", flags),
		Level: level,
	}
}

// NewStderr creates the default diagnostic sink: standard error, standard
// timestamp prefix, error level, plain lines.
func NewStderr() *GoLogger {
	l := NewGoLogger(os.Stderr, stdlog.LstdFlags, LevelError)
	l.Plain = true

	return l
}

func (l *GoLogger) output() *stdlog.Logger {
	if l == nil || l.out == nil {
		return stdlog.Default()
	}

	return l.out
}

// Log implements Logger.
func (l *GoLogger) Log(_ context.Context, level Level, msg string, fields ...Field) {
	if !l.Enabled(level) {
		return
	}

	_ = l.output().Output(2, l.render(msg, fields))
}

// With returns a child logger carrying fields under the current group.
//
//nolint:ireturn
func (l *GoLogger) With(fields ...Field) Logger {
	if l == nil {
		return &GoLogger{}
	}

	child := l.clone()
	child.fields = append(child.fields, qualify(l.group, fields)...)

	return child
}

// WithGroup returns a child logger whose later fields are keyed under name.
// Fields added before the call keep their keys.
//
//nolint:ireturn
func (l *GoLogger) WithGroup(name string) Logger {
	if l == nil {
		return &GoLogger{}
	}

	child := l.clone()
	if child.group == "" {
		child.group = name
	} else {
		child.group += "." + name
	}

	return child
}

// Enabled reports whether events at level are written.
func (l *GoLogger) Enabled(level Level) bool {
	if l == nil {
		return false
	}

	return l.Level >= level
}

// Sync is a no-op; the stdlib logger writes through.
func (l *GoLogger) Sync(_ context.Context) error { return nil }

func (l *GoLogger) clone() *GoLogger {
	return &GoLogger{
		out:    l.out,
		fields: append([]Field(nil), l.fields...),
		group:  l.group,
		Level:  l.Level,
		Plain:  l.Plain,
	}
}

func (l *GoLogger) render(msg string, fields []Field) string {
	msg = SanitizeString(msg)
	if l.Plain {
		return msg
	}

	all := append(append([]Field(nil), l.fields...), qualify(l.group, fields)...)
	if len(all) == 0 {
		return msg
	}

	parts := make([]string, len(all))
	for i, f := range all {
		value := fmt.Sprint(f.Value)
		if s, ok := f.Value.(string); ok {
			value = SanitizeString(s)
		}

		parts[i] = f.Key + "=" + value
	}

	return msg + " [" + strings.Join(parts, ", ") + "]"
}
