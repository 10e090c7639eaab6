package assert

import (
	"errors"
	"sync"

	constant "github.com/LerianStudio/lib-assertguard/assertguard/constants"
	"github.com/LerianStudio/lib-assertguard/assertguard/mode"
)

// ErrAlreadyInitialized is returned by Init once the default Checker exists.
var ErrAlreadyInitialized = errors.New("assert: default checker already initialized")

var (
	defaultOnce    sync.Once
	defaultChecker *Checker
)

// Init builds the default Checker from the compiled-in mode with opts.
// It must run before the first package-level check; afterwards the default
// Checker is frozen and Init returns ErrAlreadyInitialized.
func Init(opts ...Option) error {
	initialized := false

	defaultOnce.Do(func() {
		defaultChecker = New(mode.Current(), opts...)
		initialized = true
	})

	if !initialized {
		return ErrAlreadyInitialized
	}

	return nil
}

// Default returns the process-wide Checker, building it on first use.
func Default() *Checker {
	defaultOnce.Do(func() {
		defaultChecker = New(mode.Current())
	})

	return defaultChecker
}

// CheckOrReturn reports whether the caller must return.
//
//	if assert.CheckOrReturn(conn != nil, "no connection for %s", id) {
//		return
//	}
func CheckOrReturn(condition bool, format string, args ...any) bool {
	if condition {
		return false
	}

	return Default().failAt(ReturnValue, format, args)
}

// CheckOrReturnDefault reports whether the caller must return its zero value.
//
//	if assert.CheckOrReturnDefault(len(buf) > 0, "empty buffer") {
//		return nil
//	}
func CheckOrReturnDefault(condition bool, format string, args ...any) bool {
	if condition {
		return false
	}

	return Default().failAt(ReturnValue, format, args)
}

// CheckOrReturnFalse reports whether the caller must return false.
func CheckOrReturnFalse(condition bool, format string, args ...any) bool {
	if condition {
		return false
	}

	return Default().failAt(ReturnValue, format, args)
}

// CheckOrReturnValue reports whether the caller must return value.
//
//	if v, failed := assert.CheckOrReturnValue(n >= 0, -1, "negative size %d", n); failed {
//		return v
//	}
func CheckOrReturnValue[T any](condition bool, value T, format string, args ...any) (T, bool) {
	if condition {
		var zero T
		return zero, false
	}

	return value, Default().failAt(ReturnValue, format, args)
}

// CheckOrBreak reports whether the caller must break out of its loop.
func CheckOrBreak(condition bool, format string, args ...any) bool {
	if condition {
		return false
	}

	return Default().failAt(Break, format, args)
}

// CheckOrContinue reports whether the caller must continue its loop.
func CheckOrContinue(condition bool, format string, args ...any) bool {
	if condition {
		return false
	}

	return Default().failAt(Continue, format, args)
}

// CheckParameterOrReturn validates an argument; conditionSource is the
// condition as written, e.g. "amount > 0".
func CheckParameterOrReturn(condition bool, conditionSource string) bool {
	if condition {
		return false
	}

	return Default().failAt(ReturnValue, constant.InvalidParameterFormat, []any{conditionSource})
}

// CheckParameterOrReturnDefault validates an argument, returning the zero value on failure.
func CheckParameterOrReturnDefault(condition bool, conditionSource string) bool {
	if condition {
		return false
	}

	return Default().failAt(ReturnValue, constant.InvalidParameterFormat, []any{conditionSource})
}

// CheckParameterOrReturnFalse validates an argument, returning false on failure.
func CheckParameterOrReturnFalse(condition bool, conditionSource string) bool {
	if condition {
		return false
	}

	return Default().failAt(ReturnValue, constant.InvalidParameterFormat, []any{conditionSource})
}

// CheckParameterOrReturnValue validates an argument, returning value on failure.
func CheckParameterOrReturnValue[T any](condition bool, value T, conditionSource string) (T, bool) {
	if condition {
		var zero T
		return zero, false
	}

	return value, Default().failAt(ReturnValue, constant.InvalidParameterFormat, []any{conditionSource})
}

// CheckParameterOrBreak validates a loop item, breaking on failure.
func CheckParameterOrBreak(condition bool, conditionSource string) bool {
	if condition {
		return false
	}

	return Default().failAt(Break, constant.InvalidParameterFormat, []any{conditionSource})
}

// CheckParameterOrContinue validates a loop item, skipping it on failure.
func CheckParameterOrContinue(condition bool, conditionSource string) bool {
	if condition {
		return false
	}

	return Default().failAt(Continue, constant.InvalidParameterFormat, []any{conditionSource})
}
