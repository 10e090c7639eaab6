// Package log defines the diagnostic sink interface used by assertguard.
//
// A failed guarded check reaches the sink as one LevelError event whose
// message is the fixed diagnostic line and whose fields carry the
// assertion.context, assertion.file, assertion.line and assertion.action
// attributes. GoLogger writes to an io.Writer. The default stderr sink is
// Plain, so the line keeps its exact shape. Structured adapters such as the
// zap package keep the fields.
package log
