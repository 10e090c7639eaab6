package constant

import (
	"strings"
	"unicode/utf8"
)

// DiagnosticLineFormat is the fixed layout of a failed-check line:
// context name, file, line, reason.
const DiagnosticLineFormat = "*** Assertion failure in %s, %s:%d. Reason: %s"

// InvalidParameterFormat is the message template used by parameter checks.
const InvalidParameterFormat = "Invalid parameter not satisfying: %s"

// UnknownContext is used when the caller's function cannot be resolved.
const UnknownContext = "???"

// MaxMetricLabelLength is the maximum length for metric labels to prevent cardinality explosion.
const MaxMetricLabelLength = 64

// Telemetry metric names.
const (
	// MetricAssertionFailedTotal is the counter metric for failed checks.
	MetricAssertionFailedTotal = "assertion_failed_total"
)

// Telemetry attribute keys.
const (
	// AttrPrefixAssertion is the prefix for assertion attributes.
	AttrPrefixAssertion = "assertion."
	// AttrAssertionContext names the routine that ran the failed check.
	AttrAssertionContext = AttrPrefixAssertion + "context"
	// AttrAssertionFile is the base name of the file holding the check.
	AttrAssertionFile = AttrPrefixAssertion + "file"
	// AttrAssertionLine is the source line of the check.
	AttrAssertionLine = AttrPrefixAssertion + "line"
	// AttrAssertionAction names the recovery action bound to the check.
	AttrAssertionAction = AttrPrefixAssertion + "action"
)

// SanitizeMetricLabel returns value as valid UTF-8 of at most
// MaxMetricLabelLength bytes. Truncation never splits a rune.
func SanitizeMetricLabel(value string) string {
	value = strings.ToValidUTF8(value, string(utf8.RuneError))

	if len(value) <= MaxMetricLabelLength {
		return value
	}

	n := MaxMetricLabelLength
	for n > 0 && !utf8.RuneStart(value[n]) {
		n--
	}

	return value[:n]
}
