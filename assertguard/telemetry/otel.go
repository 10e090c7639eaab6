package telemetry

import (
	"context"
	"errors"
	"fmt"

	"github.com/LerianStudio/lib-assertguard/assertguard/assert"
	constant "github.com/LerianStudio/lib-assertguard/assertguard/constants"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// ErrNilMeter indicates that a nil OTEL meter was provided.
var ErrNilMeter = errors.New("metric meter cannot be nil")

// OTelObserver records assertion_failed_total on an OpenTelemetry meter.
type OTelObserver struct {
	counter metric.Int64Counter
}

// Compile-time assertion: *OTelObserver implements assert.Observer.
var _ assert.Observer = (*OTelObserver)(nil)

// NewOTelObserver creates the counter on meter.
func NewOTelObserver(meter metric.Meter) (*OTelObserver, error) {
	if meter == nil {
		return nil, ErrNilMeter
	}

	counter, err := meter.Int64Counter(
		constant.MetricAssertionFailedTotal,
		metric.WithDescription("Total number of failed assertions"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create assertion counter: %w", err)
	}

	return &OTelObserver{counter: counter}, nil
}

// ViolationObserved increments the counter for v.
func (o *OTelObserver) ViolationObserved(v assert.Violation) {
	if o == nil || o.counter == nil {
		return
	}

	o.counter.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String(constant.AttrAssertionContext, constant.SanitizeMetricLabel(v.ContextName)),
		attribute.String(constant.AttrAssertionAction, v.Action.String()),
	))
}
