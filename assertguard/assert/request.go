package assert

import (
	"fmt"

	constant "github.com/LerianStudio/lib-assertguard/assertguard/constants"
)

// Request is a single check as seen by Checker.Check.
type Request struct {
	Condition   bool
	ContextName string
	File        string
	Line        int
	Template    string
	Args        []any
	Action      ActionKind
}

// Violation describes a failed check. The reason is formatted on demand.
type Violation struct {
	ContextName string
	File        string
	Line        int
	Template    string
	Args        []any
	Action      ActionKind
}

func (r Request) violation() Violation {
	return Violation{
		ContextName: r.ContextName,
		File:        r.File,
		Line:        r.Line,
		Template:    r.Template,
		Args:        r.Args,
		Action:      r.Action,
	}
}

// Reason formats the message template with its arguments. The template is
// always a format string, so a literal percent sign is written %%.
func (v Violation) Reason() string {
	return fmt.Sprintf(v.Template, v.Args...)
}

// String returns the diagnostic line for the violation.
func (v Violation) String() string {
	return DiagnosticLine(v.ContextName, v.File, v.Line, v.Reason())
}

// DiagnosticLine renders the fixed failed-check line:
//
//	*** Assertion failure in <contextName>, <file>:<line>. Reason: <reason>
func DiagnosticLine(contextName, file string, line int, reason string) string {
	return fmt.Sprintf(constant.DiagnosticLineFormat, contextName, file, line, reason)
}
