package assert

import (
	"context"
	"sync"

	constant "github.com/LerianStudio/lib-assertguard/assertguard/constants"
	"github.com/LerianStudio/lib-assertguard/assertguard/internal/nilcheck"
	"github.com/LerianStudio/lib-assertguard/assertguard/log"
	"github.com/LerianStudio/lib-assertguard/assertguard/mode"
	"github.com/LerianStudio/lib-assertguard/assertguard/runtime"
)

// FailureLogger writes one diagnostic line per failed guarded check.
type FailureLogger struct {
	sink       log.Logger
	suppressed bool
	mu         sync.Mutex
}

// NewFailureLogger creates a FailureLogger for cfg. A nil sink, including a
// typed nil, means standard error. With logging suppressed the sink is
// replaced by log.Discard.
func NewFailureLogger(cfg mode.Config, sink log.Logger) *FailureLogger {
	switch {
	case cfg.LoggingSuppressed:
		sink = log.Discard
	case nilcheck.IsNil(sink):
		sink = log.NewStderr()
	}

	return &FailureLogger{
		sink:       sink,
		suppressed: cfg.LoggingSuppressed,
	}
}

// Suppressed reports whether Emit is a no-op.
func (f *FailureLogger) Suppressed() bool {
	return f == nil || f.suppressed
}

// Emit writes the diagnostic line for a failed check. Nothing is formatted
// when logging is suppressed. Sink panics are swallowed.
func (f *FailureLogger) Emit(contextName, file string, line int, template string, args []any) {
	if f.Suppressed() {
		return
	}

	f.write(Violation{
		ContextName: contextName,
		File:        file,
		Line:        line,
		Template:    template,
		Args:        args,
	})
}

// emit logs v with its recovery action attached.
func (f *FailureLogger) emit(v Violation) {
	f.write(v, log.String(constant.AttrAssertionAction, v.Action.String()))
}

func (f *FailureLogger) write(v Violation, extra ...log.Field) {
	if f.Suppressed() {
		return
	}

	runtime.SafeInvoke(func() {
		msg := log.SanitizeString(v.String())
		fields := append([]log.Field{
			log.String(constant.AttrAssertionContext, v.ContextName),
			log.String(constant.AttrAssertionFile, v.File),
			log.Int(constant.AttrAssertionLine, v.Line),
		}, extra...)

		f.mu.Lock()
		defer f.mu.Unlock()

		f.sink.Log(context.Background(), log.LevelError, msg, fields...)
	})
}
