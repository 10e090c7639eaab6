package mode

import "strconv"

// Mode is the failure semantics selected for the build.
type Mode uint8

const (
	// Strict makes failed checks fatal.
	Strict Mode = iota
	// Guarded makes failed checks log and hand control back to the call site.
	Guarded
)

// String returns the lowercase mode name.
func (m Mode) String() string {
	switch m {
	case Strict:
		return "strict"
	case Guarded:
		return "guarded"
	default:
		return "unknown"
	}
}

// Config is the resolved assertion configuration.
type Config struct {
	AssertionsStrict  bool
	LoggingSuppressed bool
}

// Current returns the configuration compiled into this binary.
func Current() Config {
	return Config{
		AssertionsStrict:  assertionsStrict,
		LoggingSuppressed: loggingSuppressed,
	}
}

// IsStrict reports whether failed checks are fatal in this build.
func IsStrict() bool { return assertionsStrict }

// IsLoggingSuppressed reports whether guarded-mode failures are logged.
func IsLoggingSuppressed() bool { return loggingSuppressed }

// Mode maps the configuration onto its state.
func (c Config) Mode() Mode {
	if c.AssertionsStrict {
		return Strict
	}

	return Guarded
}

func (c Config) String() string {
	return "mode=" + c.Mode().String() + " logging_suppressed=" + strconv.FormatBool(c.LoggingSuppressed)
}
