package app

import "github.com/codewandler/decider-go/core/metrics"

// AppMetrics instruments the Handle path of every shell. Implementations
// must be safe for concurrent use.
type AppMetrics interface {
	// HandleDuration times one Handle call of the named component.
	HandleDuration(component string) metrics.Timer
	// CommandsHandled counts Handle calls by outcome.
	CommandsHandled(component string, success bool)
	// EventsProduced counts the events/actions one Handle call produced.
	EventsProduced(component string, n int)
	// CascadeDepth observes the deepest recursion of one orchestrated cascade.
	CascadeDepth(component string, depth int)
}

type nopAppMetrics struct{}

func (nopAppMetrics) HandleDuration(string) metrics.Timer { return metrics.NopTimer() }
func (nopAppMetrics) CommandsHandled(string, bool)        {}
func (nopAppMetrics) EventsProduced(string, int)          {}
func (nopAppMetrics) CascadeDepth(string, int)            {}

// NopAppMetrics returns an AppMetrics that records nothing.
func NopAppMetrics() AppMetrics { return nopAppMetrics{} }
