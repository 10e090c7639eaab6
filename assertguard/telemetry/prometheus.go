package telemetry

import (
	"errors"
	"fmt"

	"github.com/LerianStudio/lib-assertguard/assertguard/assert"
	constant "github.com/LerianStudio/lib-assertguard/assertguard/constants"
	"github.com/prometheus/client_golang/prometheus"
)

// ErrNilRegisterer indicates that a nil Prometheus registerer was provided.
var ErrNilRegisterer = errors.New("prometheus registerer cannot be nil")

// PrometheusObserver records assertion_failed_total as a Prometheus counter.
type PrometheusObserver struct {
	counter *prometheus.CounterVec
}

// Compile-time assertion: *PrometheusObserver implements assert.Observer.
var _ assert.Observer = (*PrometheusObserver)(nil)

// NewPrometheusObserver registers the counter on reg. An already registered
// counter with the same descriptor is reused.
func NewPrometheusObserver(reg prometheus.Registerer) (*PrometheusObserver, error) {
	if reg == nil {
		return nil, ErrNilRegisterer
	}

	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: constant.MetricAssertionFailedTotal,
		Help: "Total number of failed assertions.",
	}, []string{"context", "action"})

	if err := reg.Register(counter); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, fmt.Errorf("failed to register assertion counter: %w", err)
		}

		existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return nil, fmt.Errorf("failed to register assertion counter: %w", err)
		}

		counter = existing
	}

	return &PrometheusObserver{counter: counter}, nil
}

// ViolationObserved increments the counter for v.
func (o *PrometheusObserver) ViolationObserved(v assert.Violation) {
	if o == nil || o.counter == nil {
		return
	}

	o.counter.WithLabelValues(constant.SanitizeMetricLabel(v.ContextName), v.Action.String()).Inc()
}
