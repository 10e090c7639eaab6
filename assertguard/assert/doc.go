// Package assert provides checks whose failure semantics are chosen at build time.
//
// In a strict build (the default) a failed check is fatal: the fatal-assert
// primitive runs and the check never returns. In a guarded build
// (-tags assert_guarded) the same check logs one diagnostic line and asks the
// call site to recover locally:
//
//	*** Assertion failure in <function>, <file>:<line>. Reason: <message>
//
// Add -tags assert_quiet to a guarded build to drop the line while keeping
// the recovery.
//
// # Recovery at the call site
//
// A Go function cannot return from, break or continue its caller, so every
// check returns true when the caller must act, and the caller performs the
// action named by the function it called:
//
//	func (b *Book) Post(e *Entry) bool {
//		if assert.CheckParameterOrReturnFalse(e != nil, "e != nil") {
//			return false
//		}
//
//		for _, line := range e.Lines {
//			if assert.CheckOrContinue(line.Amount != 0, "zero amount on %s", line.Account) {
//				continue
//			}
//			b.apply(line)
//		}
//
//		return true
//	}
//
// The action bound to a call site is fixed by the function name; only the
// condition is dynamic. The guardcheck analyzer (assertguard/lint/guardcheck)
// reports call sites that do not act on a true result with the matching
// statement.
//
// # Formatting cost
//
// The message is formatted only after a failure, and not at all when logging
// is suppressed. The calling routine, file and line are resolved from the
// stack on the failure path only.
//
// # Configuration
//
// Default returns a process-wide Checker built from mode.Current(). Call
// Init early in main to route diagnostics to a different sink, replace the
// fatal primitive or attach observers:
//
//	sink, _ := zap.NewSink(zap.Config{Environment: zap.EnvironmentProduction, OTelLibraryName: "ledger"})
//	_ = assert.Init(assert.WithSink(sink), assert.WithObserver(promObserver))
//
// The message is always a format string: write a literal percent sign as
// %%, with or without arguments. Besides the line, every sink receives the
// assertion.context, assertion.file, assertion.line and assertion.action
// fields.
//
// Components that prefer explicit wiring build their own Checker with New.
package assert
