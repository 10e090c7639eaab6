//go:build unit

package assert

import (
	"context"
	"sync"
	"testing"

	"github.com/LerianStudio/lib-assertguard/assertguard/log"
	"github.com/LerianStudio/lib-assertguard/assertguard/mode"
)

var (
	strictConfig  = mode.Config{AssertionsStrict: true}
	guardedConfig = mode.Config{}
	quietConfig   = mode.Config{LoggingSuppressed: true}
)

// testLogger captures every message written to the sink.
type testLogger struct {
	mu       sync.Mutex
	messages []string
	levels   []log.Level
	fields   [][]log.Field
}

func (l *testLogger) Log(_ context.Context, level log.Level, msg string, fields ...log.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.messages = append(l.messages, msg)
	l.levels = append(l.levels, level)
	l.fields = append(l.fields, fields)
}

func (l *testLogger) fieldsAt(i int) map[string]any {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make(map[string]any, len(l.fields[i]))
	for _, f := range l.fields[i] {
		out[f.Key] = f.Value
	}

	return out
}

//nolint:ireturn
func (l *testLogger) With(_ ...log.Field) log.Logger { return l }

//nolint:ireturn
func (l *testLogger) WithGroup(_ string) log.Logger { return l }

func (l *testLogger) Enabled(_ log.Level) bool { return true }

func (l *testLogger) Sync(_ context.Context) error { return nil }

func (l *testLogger) lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]string(nil), l.messages...)
}

// panickingLogger is a sink that always fails.
type panickingLogger struct{ testLogger }

func (l *panickingLogger) Log(_ context.Context, _ log.Level, _ string, _ ...log.Field) {
	panic("sink unavailable")
}

// fatalSignal is the panic value raised by fatalRecorder so tests can tell a
// fatal-path invocation from any other panic.
type fatalSignal struct{ message string }

// fatalRecorder substitutes the fatal-assert primitive in tests.
type fatalRecorder struct {
	mu       sync.Mutex
	calls    int
	messages []string
}

func (r *fatalRecorder) fatal(message string) {
	r.mu.Lock()
	r.calls++
	r.messages = append(r.messages, message)
	r.mu.Unlock()

	panic(fatalSignal{message: message})
}

func (r *fatalRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.calls
}

// expectFatal runs fn and returns the message of the fatal signal it raised.
func expectFatal(t *testing.T, fn func()) (message string) {
	t.Helper()

	defer func() {
		r := recover()
		sig, ok := r.(fatalSignal)
		if !ok {
			t.Fatalf("expected fatal signal, got %v", r)
		}

		message = sig.message
	}()

	fn()

	return ""
}

// violationRecorder is an Observer collecting violations.
type violationRecorder struct {
	mu         sync.Mutex
	violations []Violation
}

func (r *violationRecorder) ViolationObserved(v Violation) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.violations = append(r.violations, v)
}

func (r *violationRecorder) all() []Violation {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Violation(nil), r.violations...)
}

func newTestChecker(cfg mode.Config) (*Checker, *testLogger, *fatalRecorder) {
	logger := &testLogger{}
	recorder := &fatalRecorder{}

	return New(cfg, WithSink(logger), WithFatal(recorder.fatal)), logger, recorder
}
