// Package runtime provides the process-level primitives behind failed checks:
// the fatal path used in strict builds and panic isolation for diagnostic sinks.
package runtime
