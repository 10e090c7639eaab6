package runtime

import (
	"io"
	"os"
	"strings"
)

// FatalFunc is the host fatal-assert primitive. Implementations must not
// return; callers treat a return as a broken hook and panic themselves.
type FatalFunc func(message string)

// PanicFatal is the default strict-mode primitive. It panics with the
// diagnostic message so the failure surfaces with a goroutine trace.
func PanicFatal(message string) {
	panic(message)
}

// ExitFatal writes the diagnostic message to standard error and terminates
// the process with status 1.
func ExitFatal(message string) {
	NewExitFatal(os.Stderr, os.Exit)(message)
}

// NewExitFatal builds an exit-style primitive writing to w and terminating
// through exit.
func NewExitFatal(w io.Writer, exit func(code int)) FatalFunc {
	return func(message string) {
		if !strings.HasSuffix(message, "\n") {
			message += "\n"
		}

		_, _ = io.WriteString(w, message)

		exit(1)
	}
}
