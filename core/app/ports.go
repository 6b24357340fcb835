package app

import "context"

type (
	// VersionedEvent pairs a persisted event with its repository-assigned
	// version token.
	VersionedEvent[E, V any] struct {
		Event   E
		Version V
	}

	// VersionedState pairs persisted state with its version token.
	VersionedState[S, V any] struct {
		State   S
		Version V
	}
)

// EventRepository is the persistence port of the event-sourced aggregates.
// V is an opaque, repository-defined ordering token; the core never
// interprets it. Errors are surfaced to the caller unmodified.
type EventRepository[C, E, V any] interface {
	// FetchEvents loads the event stream the command addresses, oldest first.
	FetchEvents(ctx context.Context, command C) ([]VersionedEvent[E, V], error)

	// Save persists events. latestVersion is the version observed on the
	// last fetched event, nil when the stream was empty; a conflicting
	// concurrent writer must be rejected by the repository.
	Save(ctx context.Context, events []E, latestVersion *V) ([]VersionedEvent[E, V], error)
}

// StateRepository is the persistence port of the state-stored aggregates.
type StateRepository[C, S, V any] interface {
	// FetchState loads the state the command addresses, nil when none exists.
	FetchState(ctx context.Context, command C) (*VersionedState[S, V], error)

	// Save persists state. version is the version observed on fetch, nil
	// when no state existed.
	Save(ctx context.Context, state S, version *V) (VersionedState[S, V], error)
}

// ViewStateRepository is the persistence port of MaterializedView.
type ViewStateRepository[E, S any] interface {
	// FetchState loads the projection state the event addresses, nil when
	// none exists.
	FetchState(ctx context.Context, event E) (*S, error)

	// Save persists the projection state.
	Save(ctx context.Context, state S) (S, error)
}

// ActionPublisher is the outbound port of SagaManager. Publish returns the
// actions the transport reports as successfully published.
type ActionPublisher[A any] interface {
	Publish(ctx context.Context, actions []A) ([]A, error)
}
