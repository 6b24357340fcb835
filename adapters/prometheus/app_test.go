package prometheus

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewAppMetrics(reg)

	require.NotNil(t, m)

	timer := m.HandleDuration("event_sourced_aggregate")
	assert.NotNil(t, timer)
	timer.ObserveDuration()

	m.CommandsHandled("event_sourced_aggregate", true)
	m.CommandsHandled("event_sourced_aggregate", false)
	m.EventsProduced("event_sourced_aggregate", 3)
	m.CascadeDepth("event_sourced_orchestrating_aggregate", 2)

	// Verify metrics were registered
	mfs, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, mfs)

	names := make(map[string]bool)
	for _, mf := range mfs {
		names[mf.GetName()] = true
	}

	assert.True(t, names["decider_handle_duration_seconds"])
	assert.True(t, names["decider_commands_handled_total"])
	assert.True(t, names["decider_events_produced_total"])
	assert.True(t, names["decider_cascade_depth"])
}

func TestBoolToStr(t *testing.T) {
	assert.Equal(t, "true", boolToStr(true))
	assert.Equal(t, "false", boolToStr(false))
}
