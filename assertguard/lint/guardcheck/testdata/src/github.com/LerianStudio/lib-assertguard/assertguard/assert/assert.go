// Package assert mirrors the exported check signatures for analyzer tests.
package assert

type Checker struct{}

type ActionKind uint8

const (
	StrictAbort ActionKind = iota
	ReturnValue
	Break
	Continue
)

type Outcome struct{ recovery bool }

func (o Outcome) RecoveryRequested() bool { return o.recovery }

type Request struct {
	Condition bool
	Template  string
	Action    ActionKind
}

func (c *Checker) Check(req Request) Outcome { return Outcome{recovery: !req.Condition} }

func (c *Checker) CheckParameter(condition bool, conditionSource, contextName, file string, line int, action ActionKind) Outcome {
	return Outcome{recovery: !condition}
}

func Default() *Checker { return &Checker{} }

func (c *Checker) CheckOrBreak(condition bool, format string, args ...any) bool { return !condition }

func CheckOrReturn(condition bool, format string, args ...any) bool        { return !condition }
func CheckOrReturnDefault(condition bool, format string, args ...any) bool { return !condition }
func CheckOrReturnFalse(condition bool, format string, args ...any) bool   { return !condition }
func CheckOrBreak(condition bool, format string, args ...any) bool         { return !condition }
func CheckOrContinue(condition bool, format string, args ...any) bool      { return !condition }

func CheckOrReturnValue[T any](condition bool, value T, format string, args ...any) (T, bool) {
	return value, !condition
}

func CheckParameterOrReturn(condition bool, conditionSource string) bool   { return !condition }
func CheckParameterOrContinue(condition bool, conditionSource string) bool { return !condition }
