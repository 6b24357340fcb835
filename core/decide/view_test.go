package decide_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codewandler/decider-go/core/decide"
	"github.com/codewandler/decider-go/core/decide/testdomain"
)

func TestView_ComputeNewState(t *testing.T) {
	v := testdomain.NewOrderView()

	t.Run("nil state starts from initial", func(t *testing.T) {
		state := v.ComputeNewState(nil, []testdomain.OrderEvent{
			testdomain.OrderCreated{OrderID: 1, CustomerName: "John Doe", Items: []string{"Item 1"}},
			testdomain.OrderUpdated{OrderID: 1, UpdatedItems: []string{"Item 2"}},
		})
		assert.Equal(t, testdomain.OrderViewState{
			OrderID:      1,
			CustomerName: "John Doe",
			Items:        []string{"Item 2"},
		}, state)
	})

	t.Run("continues from current state", func(t *testing.T) {
		current := testdomain.OrderViewState{OrderID: 1, CustomerName: "John Doe"}
		state := v.ComputeNewState(&current, []testdomain.OrderEvent{
			testdomain.OrderCancelled{OrderID: 1},
		})
		assert.True(t, state.IsCancelled)
		assert.Equal(t, "John Doe", state.CustomerName)
	})

	t.Run("no events returns current state", func(t *testing.T) {
		current := testdomain.OrderViewState{OrderID: 3}
		assert.Equal(t, current, v.ComputeNewState(&current, nil))
	})
}

func TestMapViewEvent(t *testing.T) {
	v := testdomain.NewShipmentView()

	mapped := decide.MapViewEvent(v, func(name string) testdomain.ShipmentEvent {
		return testdomain.ShipmentCreated{ShipmentID: 1, CustomerName: name}
	})

	state := mapped.ComputeNewState(nil, []string{"John Doe"})
	assert.Equal(t, "John Doe", state.CustomerName)
	assert.Equal(t, 1, state.ShipmentID)
}

func TestMapViewState(t *testing.T) {
	v := testdomain.NewOrderView()

	mapped := decide.MapViewState(v,
		func(items string) testdomain.OrderViewState {
			var s testdomain.OrderViewState
			if items != "" {
				s.Items = strings.Split(items, ",")
			}
			return s
		},
		func(s testdomain.OrderViewState) string { return strings.Join(s.Items, ",") },
	)

	items := mapped.ComputeNewState(nil, []testdomain.OrderEvent{
		testdomain.OrderCreated{OrderID: 1, Items: []string{"Item 1", "Item 2"}},
	})
	assert.Equal(t, "Item 1,Item 2", items)
}

func TestMerge_Broadcast(t *testing.T) {
	orderCount := decide.View[int, testdomain.OrderEvent]{
		Evolve:       func(n int, _ testdomain.OrderEvent) int { return n + 1 },
		InitialState: func() int { return 0 },
	}

	merged := decide.Merge(testdomain.NewOrderView(), orderCount)

	events := []testdomain.OrderEvent{
		testdomain.OrderCreated{OrderID: 1, CustomerName: "John Doe"},
		testdomain.OrderCancelled{OrderID: 1},
	}
	state := merged.ComputeNewState(nil, events)

	// every merged view sees every event
	assert.True(t, state.First.IsCancelled)
	assert.Equal(t, 2, state.Second)
}

func TestMerge3(t *testing.T) {
	count := func() decide.View[int, string] {
		return decide.View[int, string]{
			Evolve:       func(n int, _ string) int { return n + 1 },
			InitialState: func() int { return 0 },
		}
	}
	concat := decide.View[string, string]{
		Evolve:       func(s, e string) string { return s + e },
		InitialState: func() string { return "" },
	}

	merged := decide.Merge3(count(), concat, count())

	state := merged.ComputeNewState(nil, []string{"a", "b", "c"})
	assert.Equal(t, 3, state.First)
	assert.Equal(t, "abc", state.Second)
	assert.Equal(t, 3, state.Third)
}

func TestMergeAll(t *testing.T) {
	scale := func(factor int) decide.View[int, int] {
		return decide.View[int, int]{
			Evolve:       func(n, e int) int { return n + factor*e },
			InitialState: func() int { return 0 },
		}
	}

	merged := decide.MergeAll(scale(1), scale(10), scale(100))

	require.Equal(t, []int{0, 0, 0}, merged.InitialState())
	state := merged.ComputeNewState(nil, []int{1, 2})
	assert.Equal(t, []int{3, 30, 300}, state)
}
