// Package mode resolves the assertion build mode.
//
// The mode is fixed when the program is compiled and never changes while it
// runs. Two build tags select it:
//
//	go build                        // strict: failed checks are fatal
//	go build -tags assert_guarded   // guarded: failed checks log and recover
//	go build -tags assert_quiet     // guarded failures are not logged
//
// Both values are untyped constants, so there is nothing to toggle at runtime.
// The repository Makefile runs the unit tests once per combination
// (make test).
package mode
