//go:build unit

package telemetry

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/LerianStudio/lib-assertguard/assertguard/assert"
	constant "github.com/LerianStudio/lib-assertguard/assertguard/constants"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestNewPrometheusObserverRejectsNilRegisterer(t *testing.T) {
	t.Parallel()

	_, err := NewPrometheusObserver(nil)
	require.ErrorIs(t, err, ErrNilRegisterer)
}

func TestPrometheusObserverCountsViolations(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()

	observer, err := NewPrometheusObserver(reg)
	require.NoError(t, err)

	observer.ViolationObserved(assert.Violation{ContextName: "Post", Action: assert.ReturnValue})
	observer.ViolationObserved(assert.Violation{ContextName: "Post", Action: assert.ReturnValue})
	observer.ViolationObserved(assert.Violation{ContextName: "drain", Action: assert.Break})

	require.InDelta(t, 2, testutil.ToFloat64(observer.counter.WithLabelValues("Post", "return")), 0)
	require.InDelta(t, 1, testutil.ToFloat64(observer.counter.WithLabelValues("drain", "break")), 0)
	require.Equal(t, 2, testutil.CollectAndCount(observer.counter))
}

func TestPrometheusObserverCountsLongUnicodeContext(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()

	observer, err := NewPrometheusObserver(reg)
	require.NoError(t, err)

	name := "(*Книга)x." + strings.Repeat("Ж", 40)

	require.NotPanics(t, func() {
		observer.ViolationObserved(assert.Violation{ContextName: name, Action: assert.Continue})
	})

	label := constant.SanitizeMetricLabel(name)
	require.True(t, utf8.ValidString(label))
	require.Equal(t, 1, testutil.CollectAndCount(observer.counter))
	require.InDelta(t, 1, testutil.ToFloat64(observer.counter.WithLabelValues(label, "continue")), 0)
}

func TestNewPrometheusObserverReusesRegisteredCounter(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()

	first, err := NewPrometheusObserver(reg)
	require.NoError(t, err)

	second, err := NewPrometheusObserver(reg)
	require.NoError(t, err)
	require.Same(t, first.counter, second.counter)
}

func TestPrometheusObserverNilReceiver(t *testing.T) {
	t.Parallel()

	var observer *PrometheusObserver

	require.NotPanics(t, func() { observer.ViolationObserved(assert.Violation{}) })
}
