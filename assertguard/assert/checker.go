package assert

import (
	constant "github.com/LerianStudio/lib-assertguard/assertguard/constants"
	"github.com/LerianStudio/lib-assertguard/assertguard/log"
	"github.com/LerianStudio/lib-assertguard/assertguard/mode"
	"github.com/LerianStudio/lib-assertguard/assertguard/runtime"
)

// Checker evaluates conditions under a fixed mode.Config.
type Checker struct {
	cfg       mode.Config
	logger    *FailureLogger
	fatal     runtime.FatalFunc
	observers []Observer
}

// Option configures a Checker.
type Option func(*options)

type options struct {
	sink      log.Logger
	fatal     runtime.FatalFunc
	observers []Observer
}

// WithSink routes guarded-mode diagnostics to sink instead of standard error.
func WithSink(sink log.Logger) Option {
	return func(o *options) { o.sink = sink }
}

// WithFatal replaces the strict-mode fatal primitive.
func WithFatal(fatal runtime.FatalFunc) Option {
	return func(o *options) { o.fatal = fatal }
}

// WithObserver adds observers notified of every failed check.
func WithObserver(observers ...Observer) Option {
	return func(o *options) { o.observers = append(o.observers, observers...) }
}

// New creates a Checker bound to cfg.
func New(cfg mode.Config, opts ...Option) *Checker {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	if o.fatal == nil {
		o.fatal = runtime.PanicFatal
	}

	return &Checker{
		cfg:       cfg,
		logger:    NewFailureLogger(cfg, o.sink),
		fatal:     o.fatal,
		observers: o.observers,
	}
}

// Config returns the configuration the Checker was built with.
func (c *Checker) Config() mode.Config {
	return c.cfg
}

// Check evaluates req.
//
// A true condition returns Satisfied with no side effects in either mode.
// A false condition in a strict build, or one bound to StrictAbort, calls the
// fatal primitive and never returns. Otherwise the failure is logged (unless
// suppressed) and RecoveryRequested(req.Action) is returned.
func (c *Checker) Check(req Request) Outcome {
	if req.Condition {
		return Satisfied
	}

	v := req.violation()

	if c.cfg.AssertionsStrict || req.Action == StrictAbort {
		v.Action = StrictAbort
		c.abort(v)
	}

	c.logger.emit(v)
	notify(c.observers, v)

	return RecoveryRequested(req.Action)
}

// CheckParameter is Check with the canned invalid-parameter message.
func (c *Checker) CheckParameter(condition bool, conditionSource, contextName, file string, line int, action ActionKind) Outcome {
	return c.Check(Request{
		Condition:   condition,
		ContextName: contextName,
		File:        file,
		Line:        line,
		Template:    constant.InvalidParameterFormat,
		Args:        []any{conditionSource},
		Action:      action,
	})
}

func (c *Checker) abort(v Violation) {
	notify(c.observers, v)

	msg := v.String()
	c.fatal(msg)

	// The hook returned; the strict branch must not.
	panic(msg)
}

// failAt checks a failed condition on behalf of a public check function,
// resolving the user's call site. It must be called directly by that function.
func (c *Checker) failAt(action ActionKind, template string, args []any) bool {
	contextName, file, line := callerInfo()

	return c.Check(Request{
		ContextName: contextName,
		File:        file,
		Line:        line,
		Template:    template,
		Args:        args,
		Action:      action,
	}).RecoveryRequested()
}

// CheckOrReturn reports whether the caller must return (no value).
func (c *Checker) CheckOrReturn(condition bool, format string, args ...any) bool {
	if condition {
		return false
	}

	return c.failAt(ReturnValue, format, args)
}

// CheckOrReturnDefault reports whether the caller must return its zero/nil value.
func (c *Checker) CheckOrReturnDefault(condition bool, format string, args ...any) bool {
	if condition {
		return false
	}

	return c.failAt(ReturnValue, format, args)
}

// CheckOrReturnFalse reports whether the caller must return false.
func (c *Checker) CheckOrReturnFalse(condition bool, format string, args ...any) bool {
	if condition {
		return false
	}

	return c.failAt(ReturnValue, format, args)
}

// CheckOrBreak reports whether the caller must break out of its loop.
func (c *Checker) CheckOrBreak(condition bool, format string, args ...any) bool {
	if condition {
		return false
	}

	return c.failAt(Break, format, args)
}

// CheckOrContinue reports whether the caller must continue its loop.
func (c *Checker) CheckOrContinue(condition bool, format string, args ...any) bool {
	if condition {
		return false
	}

	return c.failAt(Continue, format, args)
}

// CheckParameterOrReturn is CheckOrReturn for argument validation;
// conditionSource is the condition as written at the call site.
func (c *Checker) CheckParameterOrReturn(condition bool, conditionSource string) bool {
	if condition {
		return false
	}

	return c.failAt(ReturnValue, constant.InvalidParameterFormat, []any{conditionSource})
}

// CheckParameterOrReturnDefault is CheckOrReturnDefault for argument validation.
func (c *Checker) CheckParameterOrReturnDefault(condition bool, conditionSource string) bool {
	if condition {
		return false
	}

	return c.failAt(ReturnValue, constant.InvalidParameterFormat, []any{conditionSource})
}

// CheckParameterOrReturnFalse is CheckOrReturnFalse for argument validation.
func (c *Checker) CheckParameterOrReturnFalse(condition bool, conditionSource string) bool {
	if condition {
		return false
	}

	return c.failAt(ReturnValue, constant.InvalidParameterFormat, []any{conditionSource})
}

// CheckParameterOrBreak is CheckOrBreak for argument validation.
func (c *Checker) CheckParameterOrBreak(condition bool, conditionSource string) bool {
	if condition {
		return false
	}

	return c.failAt(Break, constant.InvalidParameterFormat, []any{conditionSource})
}

// CheckParameterOrContinue is CheckOrContinue for argument validation.
func (c *Checker) CheckParameterOrContinue(condition bool, conditionSource string) bool {
	if condition {
		return false
	}

	return c.failAt(Continue, constant.InvalidParameterFormat, []any{conditionSource})
}
