package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupPrometheus(t *testing.T) {
	poolConns := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "test_pool_conns",
		Help: "stand-in for the db pool collector",
	})
	poolConns.Set(3)

	reg := SetupPrometheus(poolConns)
	families, err := reg.Gather()
	require.NoError(t, err)

	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["test_pool_conns"])
	assert.True(t, names["go_build_info"])
	assert.True(t, names["go_goroutines"])

	// a manager registers on top of the same registry without collisions
	assert.NotPanics(t, func() {
		NewManager("backend", "main", reg)
	})
}
