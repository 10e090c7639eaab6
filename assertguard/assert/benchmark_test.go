//go:build unit

package assert

import (
	"testing"

	"github.com/LerianStudio/lib-assertguard/assertguard/log"
)

// The success path must stay cheap: no formatting, no stack walk.

func BenchmarkCheckOrReturn_True(b *testing.B) {
	checker := New(guardedConfig, WithSink(log.Discard))

	for i := 0; i < b.N; i++ {
		_ = checker.CheckOrReturn(true, "benchmark %d", i)
	}
}

func BenchmarkCheck_True(b *testing.B) {
	checker := New(guardedConfig, WithSink(log.Discard))
	req := Request{Condition: true, Template: "benchmark", Action: ReturnValue}

	for i := 0; i < b.N; i++ {
		_ = checker.Check(req)
	}
}

func BenchmarkCheckOrContinue_FalseSuppressed(b *testing.B) {
	checker := New(quietConfig, WithSink(log.Discard))

	for i := 0; i < b.N; i++ {
		_ = checker.CheckOrContinue(false, "benchmark %d", i)
	}
}

func BenchmarkCheckOrContinue_FalseLogged(b *testing.B) {
	checker := New(guardedConfig, WithSink(log.Discard))

	for i := 0; i < b.N; i++ {
		_ = checker.CheckOrContinue(false, "benchmark %d", i)
	}
}
