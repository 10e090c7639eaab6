package assert

import (
	"github.com/LerianStudio/lib-assertguard/assertguard/internal/nilcheck"
	"github.com/LerianStudio/lib-assertguard/assertguard/runtime"
)

// Observer is notified of every failed check, in both modes and regardless
// of log suppression. Implementations must be safe for concurrent use.
type Observer interface {
	ViolationObserved(v Violation)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(v Violation)

// ViolationObserved calls fn(v).
func (fn ObserverFunc) ViolationObserved(v Violation) { fn(v) }

func notify(observers []Observer, v Violation) {
	for _, o := range observers {
		if nilcheck.IsNil(o) {
			continue
		}

		runtime.SafeInvoke(func() { o.ViolationObserved(v) })
	}
}
