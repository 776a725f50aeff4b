package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCheckoutMetrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := NewCheckoutMetrics(reg)

	m.IncPlaced()
	m.IncPlaced()
	m.IncFailure("insufficient_stock")
	m.IncFailure("")

	if got := testutil.ToFloat64(m.placed); got != 2 {
		t.Fatalf("placed counter = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.failures.WithLabelValues("insufficient_stock")); got != 1 {
		t.Fatalf("failure counter = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.failures.WithLabelValues("unknown")); got != 1 {
		t.Fatalf("blank reason should map to unknown, got %v", got)
	}
}

func TestCheckoutMetricsNilSafe(t *testing.T) {
	t.Parallel()

	var m *CheckoutMetrics
	m.IncPlaced()
	m.IncFailure("x")

	empty := NewCheckoutMetrics(nil)
	empty.IncPlaced()
	empty.IncFailure("x")
}
