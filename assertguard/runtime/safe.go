package runtime

// SafeInvoke runs fn and swallows any panic it raises. It reports whether a
// panic was recovered.
//
// Diagnostic sinks are external collaborators; a misbehaving one must not
// crash the program it is diagnosing.
func SafeInvoke(fn func()) (recovered bool) {
	if fn == nil {
		return false
	}

	defer func() {
		if r := recover(); r != nil {
			recovered = true
		}
	}()

	fn()

	return false
}
