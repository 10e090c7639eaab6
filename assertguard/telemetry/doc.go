// Package telemetry counts failed checks.
//
// Both observers implement assert.Observer and can be attached with
// assert.WithObserver. They keep counting when diagnostic logging is
// suppressed, so a quiet guarded build still shows how often it recovered.
package telemetry
