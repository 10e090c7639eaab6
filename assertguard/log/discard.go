package log

import "context"

// Discard drops every event. A FailureLogger built for a build with
// suppressed logging holds Discard instead of its configured sink.
var Discard Logger = discard{}

type discard struct{}

func (discard) Log(context.Context, Level, string, ...Field) {}

//nolint:ireturn
func (d discard) With(...Field) Logger { return d }

//nolint:ireturn
func (d discard) WithGroup(string) Logger { return d }

func (discard) Enabled(Level) bool { return false }

func (discard) Sync(context.Context) error { return nil }
