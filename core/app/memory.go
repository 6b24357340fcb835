package app

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// ErrConcurrencyConflict is returned by the in-memory repositories when the
// version handed to Save does not match the current stream/state version.
var ErrConcurrencyConflict = errors.New("app: concurrency conflict")

// === InMemoryEventRepository ===

// StoredEvent is one event record of InMemoryEventRepository.
type StoredEvent[E any] struct {
	ID      string
	Event   E
	Version int
}

// InMemoryEventRepository is a simple, correct (optimistic) event repository
// for tests/dev. Streams are partitioned by the identifier of commands and
// events; versions are per-stream ints starting at 0.
type InMemoryEventRepository[C, E any] struct {
	mu      sync.Mutex
	log     *slog.Logger
	streams map[string][]StoredEvent[E]
}

func NewInMemoryEventRepository[C, E any]() *InMemoryEventRepository[C, E] {
	return &InMemoryEventRepository[C, E]{
		log:     slog.Default().With(slog.String("repo", "memory")),
		streams: map[string][]StoredEvent[E]{},
	}
}

func (r *InMemoryEventRepository[C, E]) FetchEvents(_ context.Context, command C) ([]VersionedEvent[E, int], error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stream := r.streams[identifierOf(command)]
	out := make([]VersionedEvent[E, int], 0, len(stream))
	for _, se := range stream {
		out = append(out, VersionedEvent[E, int]{Event: se.Event, Version: se.Version})
	}
	return out, nil
}

// Save appends each event to the stream its identifier addresses. The
// conflict check runs against the stream of the first event: latestVersion
// must match that stream's newest version (nil for an empty stream).
func (r *InMemoryEventRepository[C, E]) Save(_ context.Context, events []E, latestVersion *int) ([]VersionedEvent[E, int], error) {
	if len(events) == 0 {
		return nil, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	expect := -1
	if latestVersion != nil {
		expect = *latestVersion
	}
	if cur := len(r.streams[identifierOf(events[0])]) - 1; cur != expect {
		return nil, ErrConcurrencyConflict
	}

	out := make([]VersionedEvent[E, int], 0, len(events))
	for _, e := range events {
		sk := identifierOf(e)
		version := len(r.streams[sk])
		r.streams[sk] = append(r.streams[sk], StoredEvent[E]{
			ID:      gonanoid.Must(),
			Event:   e,
			Version: version,
		})
		out = append(out, VersionedEvent[E, int]{Event: e, Version: version})
	}

	r.log.Debug("append", slog.Int("num_events", len(out)))
	return out, nil
}

// Stream returns a copy of the stored records for one identifier, for test
// assertions.
func (r *InMemoryEventRepository[C, E]) Stream(identifier string) []StoredEvent[E] {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]StoredEvent[E], len(r.streams[identifier]))
	copy(out, r.streams[identifier])
	return out
}

// === InMemoryStateRepository ===

// InMemoryStateRepository is an optimistic state repository for tests/dev.
// Fetch keys by the command's identifier, Save by the state's; domain types
// must keep the two aligned. Versions are ints starting at 0.
type InMemoryStateRepository[C, S any] struct {
	mu     sync.Mutex
	states map[string]VersionedState[S, int]
}

func NewInMemoryStateRepository[C, S any]() *InMemoryStateRepository[C, S] {
	return &InMemoryStateRepository[C, S]{states: map[string]VersionedState[S, int]{}}
}

func (r *InMemoryStateRepository[C, S]) FetchState(_ context.Context, command C) (*VersionedState[S, int], error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	vs, ok := r.states[identifierOf(command)]
	if !ok {
		return nil, nil
	}
	return &vs, nil
}

func (r *InMemoryStateRepository[C, S]) Save(_ context.Context, state S, version *int) (VersionedState[S, int], error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sk := identifierOf(state)
	cur, exists := r.states[sk]

	next := 0
	switch {
	case version == nil:
		if exists {
			return VersionedState[S, int]{}, ErrConcurrencyConflict
		}
	default:
		if !exists || cur.Version != *version {
			return VersionedState[S, int]{}, ErrConcurrencyConflict
		}
		next = *version + 1
	}

	vs := VersionedState[S, int]{State: state, Version: next}
	r.states[sk] = vs
	return vs, nil
}

// === InMemoryViewStateRepository ===

// InMemoryViewStateRepository stores projection state for tests/dev. Fetch
// keys by the event's identifier, Save by the state's.
type InMemoryViewStateRepository[E, S any] struct {
	mu     sync.Mutex
	states map[string]S
}

func NewInMemoryViewStateRepository[E, S any]() *InMemoryViewStateRepository[E, S] {
	return &InMemoryViewStateRepository[E, S]{states: map[string]S{}}
}

func (r *InMemoryViewStateRepository[E, S]) FetchState(_ context.Context, event E) (*S, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.states[identifierOf(event)]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *InMemoryViewStateRepository[E, S]) Save(_ context.Context, state S) (S, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.states[identifierOf(state)] = state
	return state, nil
}

// === InMemoryActionPublisher ===

// InMemoryActionPublisher records published actions for test assertions.
type InMemoryActionPublisher[A any] struct {
	mu        sync.Mutex
	published []A
}

func NewInMemoryActionPublisher[A any]() *InMemoryActionPublisher[A] {
	return &InMemoryActionPublisher[A]{}
}

func (p *InMemoryActionPublisher[A]) Publish(_ context.Context, actions []A) ([]A, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.published = append(p.published, actions...)
	out := make([]A, len(actions))
	copy(out, actions)
	return out, nil
}

// Published returns everything published so far.
func (p *InMemoryActionPublisher[A]) Published() []A {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]A, len(p.published))
	copy(out, p.published)
	return out
}

var (
	_ EventRepository[any, any, int] = (*InMemoryEventRepository[any, any])(nil)
	_ StateRepository[any, any, int] = (*InMemoryStateRepository[any, any])(nil)
	_ ViewStateRepository[any, any]  = (*InMemoryViewStateRepository[any, any])(nil)
	_ ActionPublisher[any]           = (*InMemoryActionPublisher[any])(nil)
)
