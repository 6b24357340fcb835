package app

import (
	"context"
	"log/slog"

	"github.com/codewandler/decider-go/core/decide"
)

// component names used in logs and metrics
const (
	componentEventSourced              = "event_sourced_aggregate"
	componentStateStored               = "state_stored_aggregate"
	componentEventSourcedOrchestrating = "event_sourced_orchestrating_aggregate"
	componentStateStoredOrchestrating  = "state_stored_orchestrating_aggregate"
	componentMaterializedView          = "materialized_view"
	componentSagaManager               = "saga_manager"
)

// === EventSourced ===

// EventSourced wires one Decider to an EventRepository. Handle computes new
// events from the stream the command addresses and appends them.
type EventSourced[C, S, E, V any] struct {
	decider decide.Decider[C, S, E]
	repo    EventRepository[C, E, V]
	log     *slog.Logger
	metrics AppMetrics
}

func NewEventSourced[C, S, E, V any](
	decider decide.Decider[C, S, E],
	repo EventRepository[C, E, V],
	opts ...ShellOption,
) *EventSourced[C, S, E, V] {
	options := newShellOptions(opts)
	return &EventSourced[C, S, E, V]{
		decider: decider,
		repo:    repo,
		log:     options.log.With(slog.String("aggregate", componentEventSourced)),
		metrics: options.metrics,
	}
}

// Handle fetches the current events, computes the new ones and saves them.
// A decide failure aborts before any save; port errors surface unmodified.
func (a *EventSourced[C, S, E, V]) Handle(ctx context.Context, command C) ([]VersionedEvent[E, V], error) {
	defer a.metrics.HandleDuration(componentEventSourced).ObserveDuration()
	success := false
	defer func() { a.metrics.CommandsHandled(componentEventSourced, success) }()

	fetched, err := a.repo.FetchEvents(ctx, command)
	if err != nil {
		return nil, err
	}
	current, latest := unzipEvents(fetched)

	events, err := a.decider.ComputeNewEvents(current, command)
	if err != nil {
		return nil, err
	}

	saved, err := a.repo.Save(ctx, events, latest)
	if err != nil {
		return nil, err
	}

	success = true
	a.metrics.EventsProduced(componentEventSourced, len(saved))
	a.log.Debug("handled", slog.Int("num_events", len(saved)))
	return saved, nil
}

// unzipEvents splits fetched events into the bare stream and the version of
// the newest event, nil when the stream is empty.
func unzipEvents[E, V any](fetched []VersionedEvent[E, V]) ([]E, *V) {
	var latest *V
	events := make([]E, 0, len(fetched))
	for _, ve := range fetched {
		v := ve.Version
		latest = &v
		events = append(events, ve.Event)
	}
	return events, latest
}

// === StateStored ===

// StateStored wires one Decider to a StateRepository. Handle computes the
// new state from the state the command addresses and overwrites it.
type StateStored[C, S, E, V any] struct {
	decider decide.Decider[C, S, E]
	repo    StateRepository[C, S, V]
	log     *slog.Logger
	metrics AppMetrics
}

func NewStateStored[C, S, E, V any](
	decider decide.Decider[C, S, E],
	repo StateRepository[C, S, V],
	opts ...ShellOption,
) *StateStored[C, S, E, V] {
	options := newShellOptions(opts)
	return &StateStored[C, S, E, V]{
		decider: decider,
		repo:    repo,
		log:     options.log.With(slog.String("aggregate", componentStateStored)),
		metrics: options.metrics,
	}
}

func (a *StateStored[C, S, E, V]) Handle(ctx context.Context, command C) (VersionedState[S, V], error) {
	defer a.metrics.HandleDuration(componentStateStored).ObserveDuration()
	success := false
	defer func() { a.metrics.CommandsHandled(componentStateStored, success) }()

	fetched, err := a.repo.FetchState(ctx, command)
	if err != nil {
		return VersionedState[S, V]{}, err
	}

	var (
		current *S
		version *V
	)
	if fetched != nil {
		current = &fetched.State
		version = &fetched.Version
	}

	state, err := a.decider.ComputeNewState(current, command)
	if err != nil {
		return VersionedState[S, V]{}, err
	}

	saved, err := a.repo.Save(ctx, state, version)
	if err != nil {
		return VersionedState[S, V]{}, err
	}

	success = true
	a.log.Debug("handled")
	return saved, nil
}
