package assert

// ActionKind is the recovery action bound to a call site.
type ActionKind uint8

const (
	// StrictAbort terminates through the fatal-assert primitive.
	StrictAbort ActionKind = iota
	// ReturnValue returns from the enclosing function, with or without a value.
	ReturnValue
	// Break exits the nearest enclosing loop.
	Break
	// Continue advances the nearest enclosing loop.
	Continue
)

// String returns the action name used in diagnostics and metric labels.
func (k ActionKind) String() string {
	switch k {
	case StrictAbort:
		return "strict_abort"
	case ReturnValue:
		return "return"
	case Break:
		return "break"
	case Continue:
		return "continue"
	default:
		return "unknown"
	}
}

// Outcome is the result of a check that returned to its caller.
// The zero value is Satisfied.
type Outcome struct {
	action   ActionKind
	recovery bool
}

// Satisfied is the outcome of a check whose condition held.
var Satisfied = Outcome{}

// RecoveryRequested builds the outcome asking the call site to perform action.
func RecoveryRequested(action ActionKind) Outcome {
	return Outcome{action: action, recovery: true}
}

// Satisfied reports whether the condition held.
func (o Outcome) Satisfied() bool { return !o.recovery }

// RecoveryRequested reports whether the call site must perform Action now.
func (o Outcome) RecoveryRequested() bool { return o.recovery }

// Action returns the requested recovery action. It is meaningful only when
// RecoveryRequested is true.
func (o Outcome) Action() ActionKind { return o.action }

func (o Outcome) String() string {
	if !o.recovery {
		return "satisfied"
	}

	return "recovery_requested(" + o.action.String() + ")"
}
