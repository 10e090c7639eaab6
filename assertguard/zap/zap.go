package zap

import (
	"context"
	"fmt"

	logpkg "github.com/LerianStudio/lib-assertguard/assertguard/log"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Sink writes assertion diagnostics to zap. The diagnostic line becomes the
// entry message and the assertion.* fields become typed zap fields, so a
// failed check can be searched by context, file, line or action.
type Sink struct {
	logger *zap.Logger
	level  zap.AtomicLevel
}

// Compile-time assertion: *Sink implements logpkg.Logger.
var _ logpkg.Logger = (*Sink)(nil)

// Wrap adapts an existing zap logger.
func Wrap(logger *zap.Logger) *Sink {
	return &Sink{logger: logger}
}

func (s *Sink) zap() *zap.Logger {
	if s == nil || s.logger == nil {
		return zap.NewNop()
	}

	return s.logger
}

// Log implements log.Logger. Fields are only converted when the entry is
// enabled. A valid span context in ctx adds trace_id and span_id.
func (s *Sink) Log(ctx context.Context, level logpkg.Level, msg string, fields ...logpkg.Field) {
	ce := s.zap().Check(toZapLevel(level), msg)
	if ce == nil {
		return
	}

	ce.Write(append(toZapFields(fields), traceFields(ctx)...)...)
}

// With returns a child sink carrying fields.
//
//nolint:ireturn
func (s *Sink) With(fields ...logpkg.Field) logpkg.Logger {
	return &Sink{logger: s.zap().With(toZapFields(fields)...), level: s.Level()}
}

// WithGroup returns a child sink nesting later fields under name.
//
//nolint:ireturn
func (s *Sink) WithGroup(name string) logpkg.Logger {
	return &Sink{logger: s.zap().With(zap.Namespace(name)), level: s.Level()}
}

// Enabled reports whether entries at level reach the core.
func (s *Sink) Enabled(level logpkg.Level) bool {
	return s.zap().Core().Enabled(toZapLevel(level))
}

// Sync flushes the core unless ctx is already done.
func (s *Sink) Sync(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.zap().Sync()
}

// Zap returns the underlying logger.
func (s *Sink) Zap() *zap.Logger {
	return s.zap()
}

// Level returns the runtime-adjustable level. It is the zero AtomicLevel for
// sinks built with Wrap.
func (s *Sink) Level() zap.AtomicLevel {
	if s == nil {
		return zap.AtomicLevel{}
	}

	return s.level
}

var zapLevels = [...]zapcore.Level{
	logpkg.LevelError: zapcore.ErrorLevel,
	logpkg.LevelWarn:  zapcore.WarnLevel,
	logpkg.LevelInfo:  zapcore.InfoLevel,
	logpkg.LevelDebug: zapcore.DebugLevel,
}

func toZapLevel(level logpkg.Level) zapcore.Level {
	if int(level) < len(zapLevels) {
		return zapLevels[level]
	}

	return zapcore.InfoLevel
}

func toZapFields(fields []logpkg.Field) []zap.Field {
	out := make([]zap.Field, 0, len(fields))

	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			out = append(out, zap.String(f.Key, v))
		case int:
			out = append(out, zap.Int(f.Key, v))
		case error:
			out = append(out, zap.NamedError(f.Key, v))
		case fmt.Stringer:
			out = append(out, zap.Stringer(f.Key, v))
		default:
			out = append(out, zap.Any(f.Key, v))
		}
	}

	return out
}

func traceFields(ctx context.Context) []zap.Field {
	if ctx == nil {
		return nil
	}

	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return nil
	}

	return []zap.Field{
		zap.String("trace_id", sc.TraceID().String()),
		zap.String("span_id", sc.SpanID().String()),
	}
}
