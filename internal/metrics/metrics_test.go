package metrics_test

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/barchat/internal/metrics"
)

func TestNew_RegistersNamespacedCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.MessagesSent.Inc()
	m.Drinks.WithLabelValues("accepted").Inc()
	m.OnRetry("messages", 1)
	m.OnRetry("messages", 2)

	assert.Equal(t, float64(1), promtest.ToFloat64(m.MessagesSent))
	assert.Equal(t, float64(2), promtest.ToFloat64(m.SubscriptionRetry.WithLabelValues("messages")))

	err := promtest.GatherAndCompare(reg, strings.NewReader(`
# HELP barchat_drinks_total Drink gifts by lifecycle status.
# TYPE barchat_drinks_total counter
barchat_drinks_total{status="accepted"} 1
`), "barchat_drinks_total")
	require.NoError(t, err)
}

func TestNew_TwoInstancesDoNotCollide(t *testing.T) {
	assert.NotPanics(t, func() {
		metrics.New(prometheus.NewRegistry())
		metrics.New(prometheus.NewRegistry())
		metrics.Discard()
	})
}
