package app_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codewandler/decider-go/core/app"
	"github.com/codewandler/decider-go/core/decide/testdomain"
	"github.com/codewandler/decider-go/core/metrics"
)

// recordingMetrics captures metric hook calls for assertions.
type recordingMetrics struct {
	mu             sync.Mutex
	handled        map[string][]bool
	eventsProduced map[string][]int
	cascadeDepths  map[string][]int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{
		handled:        map[string][]bool{},
		eventsProduced: map[string][]int{},
		cascadeDepths:  map[string][]int{},
	}
}

func (r *recordingMetrics) HandleDuration(string) metrics.Timer { return metrics.NopTimer() }

func (r *recordingMetrics) CommandsHandled(component string, success bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handled[component] = append(r.handled[component], success)
}

func (r *recordingMetrics) EventsProduced(component string, n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.eventsProduced[component] = append(r.eventsProduced[component], n)
}

func (r *recordingMetrics) CascadeDepth(component string, depth int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cascadeDepths[component] = append(r.cascadeDepths[component], depth)
}

func TestEventSourced_Handle(t *testing.T) {
	ctx := context.Background()
	repo := app.NewInMemoryEventRepository[testdomain.OrderCommand, testdomain.OrderEvent]()
	agg := app.NewEventSourced[testdomain.OrderCommand, testdomain.OrderState](
		testdomain.NewOrderDecider(), repo)

	// create, update, cancel on the same order yield versions 0, 1, 2
	saved, err := agg.Handle(ctx, testdomain.CreateOrderCommand{
		OrderID:      1,
		CustomerName: "John Doe",
		Items:        []string{"Item 1", "Item 2"},
	})
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, 0, saved[0].Version)

	saved, err = agg.Handle(ctx, testdomain.UpdateOrderCommand{
		OrderID:  1,
		NewItems: []string{"Item 3", "Item 4"},
	})
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, 1, saved[0].Version)

	saved, err = agg.Handle(ctx, testdomain.CancelOrderCommand{OrderID: 1})
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, 2, saved[0].Version)

	stream := repo.Stream("1")
	require.Len(t, stream, 3)
	state := testdomain.OrderState{}
	d := testdomain.NewOrderDecider()
	for _, se := range stream {
		assert.NotEmpty(t, se.ID)
		state = d.Evolve(state, se.Event)
	}
	assert.True(t, state.IsCancelled)
	assert.Equal(t, []string{"Item 3", "Item 4"}, state.Items)
}

func TestEventSourced_Handle_DomainErrorAbortsBeforeSave(t *testing.T) {
	ctx := context.Background()
	errRejected := errors.New("rejected")

	d := testdomain.NewOrderDecider()
	d.Decide = func(testdomain.OrderCommand, testdomain.OrderState) ([]testdomain.OrderEvent, error) {
		return nil, errRejected
	}

	repo := app.NewInMemoryEventRepository[testdomain.OrderCommand, testdomain.OrderEvent]()
	m := newRecordingMetrics()
	agg := app.NewEventSourced[testdomain.OrderCommand, testdomain.OrderState](
		d, repo, app.WithMetrics(m))

	_, err := agg.Handle(ctx, testdomain.CreateOrderCommand{OrderID: 1})
	require.ErrorIs(t, err, errRejected)
	assert.Empty(t, repo.Stream("1"))
	assert.Equal(t, []bool{false}, m.handled["event_sourced_aggregate"])
}

func TestEventSourced_Handle_Metrics(t *testing.T) {
	ctx := context.Background()
	repo := app.NewInMemoryEventRepository[testdomain.OrderCommand, testdomain.OrderEvent]()
	m := newRecordingMetrics()
	agg := app.NewEventSourced[testdomain.OrderCommand, testdomain.OrderState](
		testdomain.NewOrderDecider(), repo, app.WithMetrics(m))

	_, err := agg.Handle(ctx, testdomain.CreateOrderCommand{OrderID: 1, CustomerName: "John Doe"})
	require.NoError(t, err)

	assert.Equal(t, []bool{true}, m.handled["event_sourced_aggregate"])
	assert.Equal(t, []int{1}, m.eventsProduced["event_sourced_aggregate"])
}

func TestStateStored_Handle(t *testing.T) {
	ctx := context.Background()
	repo := app.NewInMemoryStateRepository[testdomain.OrderCommand, testdomain.OrderState]()
	agg := app.NewStateStored[testdomain.OrderCommand, testdomain.OrderState, testdomain.OrderEvent](
		testdomain.NewOrderDecider(), repo)

	saved, err := agg.Handle(ctx, testdomain.CreateOrderCommand{
		OrderID:      1,
		CustomerName: "John Doe",
		Items:        []string{"Item 1", "Item 2"},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, saved.Version)
	assert.Equal(t, "John Doe", saved.State.CustomerName)

	saved, err = agg.Handle(ctx, testdomain.UpdateOrderCommand{
		OrderID:  1,
		NewItems: []string{"Item 3", "Item 4"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, saved.Version)
	assert.Equal(t, []string{"Item 3", "Item 4"}, saved.State.Items)

	saved, err = agg.Handle(ctx, testdomain.CancelOrderCommand{OrderID: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, saved.Version)
	assert.True(t, saved.State.IsCancelled)
	assert.Equal(t, []string{"Item 3", "Item 4"}, saved.State.Items)
}

func TestInMemoryEventRepository_ConcurrencyConflict(t *testing.T) {
	ctx := context.Background()
	repo := app.NewInMemoryEventRepository[testdomain.OrderCommand, testdomain.OrderEvent]()

	_, err := repo.Save(ctx, []testdomain.OrderEvent{
		testdomain.OrderCreated{OrderID: 1, CustomerName: "John Doe"},
	}, nil)
	require.NoError(t, err)

	// a second writer with a stale version must be rejected
	_, err = repo.Save(ctx, []testdomain.OrderEvent{
		testdomain.OrderCancelled{OrderID: 1},
	}, nil)
	require.ErrorIs(t, err, app.ErrConcurrencyConflict)

	stale := 5
	_, err = repo.Save(ctx, []testdomain.OrderEvent{
		testdomain.OrderCancelled{OrderID: 1},
	}, &stale)
	require.ErrorIs(t, err, app.ErrConcurrencyConflict)
}

func TestInMemoryStateRepository_ConcurrencyConflict(t *testing.T) {
	ctx := context.Background()
	repo := app.NewInMemoryStateRepository[testdomain.OrderCommand, testdomain.OrderState]()

	state := testdomain.OrderState{OrderID: 1, CustomerName: "John Doe"}
	saved, err := repo.Save(ctx, state, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, saved.Version)

	_, err = repo.Save(ctx, state, nil)
	require.ErrorIs(t, err, app.ErrConcurrencyConflict)

	stale := 3
	_, err = repo.Save(ctx, state, &stale)
	require.ErrorIs(t, err, app.ErrConcurrencyConflict)

	current := saved.Version
	saved, err = repo.Save(ctx, state, &current)
	require.NoError(t, err)
	assert.Equal(t, 1, saved.Version)
}
