package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/codewandler/decider-go/core/decide"
)

// ErrCascadeDepthExceeded is returned when an orchestrated cascade recurses
// deeper than the bound set with WithMaxCascadeDepth.
var ErrCascadeDepthExceeded = errors.New("app: cascade depth exceeded")

// identifierOf returns the identifier of v, or "" if v does not carry one.
// Two commands/events belong to the same logical entity iff their
// identifiers are equal.
func identifierOf(v any) string {
	if id, ok := v.(decide.Identifier); ok {
		return id.Identifier()
	}
	return ""
}

// === StateStoredOrchestrating ===

// StateStoredOrchestrating wires one (usually combined) Decider and one Saga
// to a StateRepository. A single inbound command can cascade: every produced
// event is offered to the saga, and each follow-up command is handled
// recursively against the state accumulated so far. One save persists the
// final state of the whole cascade.
type StateStoredOrchestrating[C, S, E, V any] struct {
	decider  decide.Decider[C, S, E]
	saga     decide.Saga[E, C]
	repo     StateRepository[C, S, V]
	log      *slog.Logger
	metrics  AppMetrics
	maxDepth int
}

func NewStateStoredOrchestrating[C, S, E, V any](
	decider decide.Decider[C, S, E],
	saga decide.Saga[E, C],
	repo StateRepository[C, S, V],
	opts ...ShellOption,
) *StateStoredOrchestrating[C, S, E, V] {
	options := newShellOptions(opts)
	return &StateStoredOrchestrating[C, S, E, V]{
		decider:  decider,
		saga:     saga,
		repo:     repo,
		log:      options.log.With(slog.String("aggregate", componentStateStoredOrchestrating)),
		metrics:  options.metrics,
		maxDepth: options.maxCascadeDepth,
	}
}

func (a *StateStoredOrchestrating[C, S, E, V]) Handle(ctx context.Context, command C) (VersionedState[S, V], error) {
	defer a.metrics.HandleDuration(componentStateStoredOrchestrating).ObserveDuration()
	success := false
	defer func() { a.metrics.CommandsHandled(componentStateStoredOrchestrating, success) }()

	fetched, err := a.repo.FetchState(ctx, command)
	if err != nil {
		return VersionedState[S, V]{}, err
	}

	state := a.decider.InitialState()
	var version *V
	if fetched != nil {
		state = fetched.State
		version = &fetched.Version
	}

	deepest := 0
	state, err = a.computeNewState(state, command, 0, &deepest)
	if err != nil {
		return VersionedState[S, V]{}, err
	}

	saved, err := a.repo.Save(ctx, state, version)
	if err != nil {
		return VersionedState[S, V]{}, err
	}

	success = true
	a.metrics.CascadeDepth(componentStateStoredOrchestrating, deepest)
	a.log.Debug("handled", slog.Int("cascade_depth", deepest))
	return saved, nil
}

// computeNewState decides on the command, folds the events into state and
// recurses into the saga's follow-up commands, feeding the accumulated state
// forward. The recursion terminates when a step's react yields no commands.
func (a *StateStoredOrchestrating[C, S, E, V]) computeNewState(state S, command C, depth int, deepest *int) (S, error) {
	if depth > *deepest {
		*deepest = depth
	}
	if a.maxDepth > 0 && depth > a.maxDepth {
		var zero S
		return zero, ErrCascadeDepthExceeded
	}

	events, err := a.decider.Decide(command, state)
	if err != nil {
		var zero S
		return zero, err
	}
	for _, e := range events {
		state = a.decider.Evolve(state, e)
	}

	for _, e := range events {
		for _, c := range a.saga.React(e) {
			state, err = a.computeNewState(state, c, depth+1, deepest)
			if err != nil {
				var zero S
				return zero, err
			}
		}
	}
	return state, nil
}

// === EventSourcedOrchestrating ===

// EventSourcedOrchestrating is the event-stream counterpart of
// [StateStoredOrchestrating]. A follow-up command's input stream is its own
// previously persisted events plus the events already produced in this
// cascade that share its identifier. All cascaded events are flattened, in
// causal order, into one save call.
type EventSourcedOrchestrating[C, S, E, V any] struct {
	decider  decide.Decider[C, S, E]
	saga     decide.Saga[E, C]
	repo     EventRepository[C, E, V]
	log      *slog.Logger
	metrics  AppMetrics
	maxDepth int
}

func NewEventSourcedOrchestrating[C, S, E, V any](
	decider decide.Decider[C, S, E],
	saga decide.Saga[E, C],
	repo EventRepository[C, E, V],
	opts ...ShellOption,
) *EventSourcedOrchestrating[C, S, E, V] {
	options := newShellOptions(opts)
	return &EventSourcedOrchestrating[C, S, E, V]{
		decider:  decider,
		saga:     saga,
		repo:     repo,
		log:      options.log.With(slog.String("aggregate", componentEventSourcedOrchestrating)),
		metrics:  options.metrics,
		maxDepth: options.maxCascadeDepth,
	}
}

func (a *EventSourcedOrchestrating[C, S, E, V]) Handle(ctx context.Context, command C) ([]VersionedEvent[E, V], error) {
	defer a.metrics.HandleDuration(componentEventSourcedOrchestrating).ObserveDuration()
	success := false
	defer func() { a.metrics.CommandsHandled(componentEventSourcedOrchestrating, success) }()

	fetched, err := a.repo.FetchEvents(ctx, command)
	if err != nil {
		return nil, err
	}
	current, latest := unzipEvents(fetched)

	var (
		produced []E
		deepest  int
	)
	if err := a.cascade(ctx, current, command, &produced, 0, &deepest); err != nil {
		return nil, err
	}

	saved, err := a.repo.Save(ctx, produced, latest)
	if err != nil {
		return nil, err
	}

	success = true
	a.metrics.EventsProduced(componentEventSourcedOrchestrating, len(saved))
	a.metrics.CascadeDepth(componentEventSourcedOrchestrating, deepest)
	a.log.Debug("handled",
		slog.Int("num_events", len(saved)),
		slog.Int("cascade_depth", deepest),
	)
	return saved, nil
}

// cascade computes the events for command against stream and follows the
// saga's follow-up commands depth first. Every event lands in *produced in
// causal order; nothing is persisted here.
func (a *EventSourcedOrchestrating[C, S, E, V]) cascade(
	ctx context.Context,
	stream []E,
	command C,
	produced *[]E,
	depth int,
	deepest *int,
) error {
	if depth > *deepest {
		*deepest = depth
	}
	if a.maxDepth > 0 && depth > a.maxDepth {
		return ErrCascadeDepthExceeded
	}

	events, err := a.decider.ComputeNewEvents(stream, command)
	if err != nil {
		return err
	}
	*produced = append(*produced, events...)

	for _, e := range events {
		for _, c := range a.saga.React(e) {
			fetched, err := a.repo.FetchEvents(ctx, c)
			if err != nil {
				return err
			}

			// the follow-up stream: persisted events of the addressed
			// entity, then the not yet persisted ones of this cascade
			id := identifierOf(c)
			next := make([]E, 0, len(fetched))
			for _, ve := range fetched {
				next = append(next, ve.Event)
			}
			for _, pe := range *produced {
				if identifierOf(pe) == id {
					next = append(next, pe)
				}
			}

			if err := a.cascade(ctx, next, c, produced, depth+1, deepest); err != nil {
				return err
			}
		}
	}
	return nil
}
