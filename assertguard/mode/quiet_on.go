//go:build assert_quiet

package mode

const loggingSuppressed = true
