package decide_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codewandler/decider-go/core/decide"
	"github.com/codewandler/decider-go/core/decide/testdomain"
)

func TestCombine(t *testing.T) {
	combined := decide.Combine(testdomain.NewOrderDecider(), testdomain.NewShipmentDecider())

	type (
		cmd = decide.Sum[testdomain.OrderCommand, testdomain.ShipmentCommand]
		evt = decide.Sum[testdomain.OrderEvent, testdomain.ShipmentEvent]
	)

	t.Run("first command only touches first slot", func(t *testing.T) {
		events, err := combined.ComputeNewEvents(nil,
			decide.First[testdomain.OrderCommand, testdomain.ShipmentCommand](testdomain.CreateOrderCommand{
				OrderID:      1,
				CustomerName: "John Doe",
				Items:        []string{"Item 1", "Item 2"},
			}))
		require.NoError(t, err)
		require.Len(t, events, 1)

		orderEvent, ok := events[0].First()
		require.True(t, ok)
		assert.Equal(t, testdomain.OrderCreated{
			OrderID:      1,
			CustomerName: "John Doe",
			Items:        []string{"Item 1", "Item 2"},
		}, orderEvent)

		_, ok = events[0].Second()
		assert.False(t, ok)
	})

	t.Run("second command leaves first state untouched", func(t *testing.T) {
		state := combined.InitialState()
		state.First = testdomain.OrderState{OrderID: 1, CustomerName: "John Doe"}

		next, err := combined.ComputeNewState(&state,
			decide.Second[testdomain.OrderCommand, testdomain.ShipmentCommand](testdomain.CreateShipmentCommand{
				ShipmentID:   1,
				OrderID:      1,
				CustomerName: "John Doe",
				Items:        []string{"Item 1"},
			}))
		require.NoError(t, err)
		assert.Equal(t, state.First, next.First)
		assert.Equal(t, 1, next.Second.ShipmentID)
	})

	t.Run("zero sum command fails", func(t *testing.T) {
		_, err := combined.ComputeNewEvents(nil, cmd{})
		require.ErrorIs(t, err, decide.ErrNoVariant)
	})

	t.Run("evolve dispatches per event variant", func(t *testing.T) {
		state := combined.InitialState()
		state = combined.Evolve(state, decide.First[testdomain.OrderEvent, testdomain.ShipmentEvent](
			testdomain.OrderCreated{OrderID: 1, CustomerName: "John Doe"}))
		state = combined.Evolve(state, decide.Second[testdomain.OrderEvent, testdomain.ShipmentEvent](
			testdomain.ShipmentCreated{ShipmentID: 1, OrderID: 1}))

		assert.Equal(t, 1, state.First.OrderID)
		assert.Equal(t, 1, state.Second.ShipmentID)

		// zero event leaves state unchanged
		assert.Equal(t, state, combined.Evolve(state, evt{}))
	})
}

// newCountingDecider returns a decider that accepts any command and records
// how many events its slot has seen, tagged with the given label.
func newCountingDecider(label string) decide.Decider[string, []string, string] {
	return decide.Decider[string, []string, string]{
		Decide: func(c string, s []string) ([]string, error) {
			return []string{label + ":" + c}, nil
		},
		Evolve: func(s []string, e string) []string {
			return append(s, e)
		},
		InitialState: func() []string { return nil },
	}
}

func TestCombine3(t *testing.T) {
	combined := decide.Combine3(
		newCountingDecider("a"),
		newCountingDecider("b"),
		newCountingDecider("c"),
	)

	type cmd = decide.Sum3[string, string, string]

	state := combined.InitialState()
	for _, c := range []cmd{
		decide.Sum3First[string, string, string]("one"),
		decide.Sum3Third[string, string, string]("two"),
		decide.Sum3First[string, string, string]("three"),
	} {
		next, err := combined.ComputeNewState(&state, c)
		require.NoError(t, err)
		state = next
	}

	assert.Equal(t, []string{"a:one", "a:three"}, state.First)
	assert.Empty(t, state.Second)
	assert.Equal(t, []string{"c:two"}, state.Third)
}

func TestCombine3_EventVariantRoundTrip(t *testing.T) {
	combined := decide.Combine3(
		newCountingDecider("a"),
		newCountingDecider("b"),
		newCountingDecider("c"),
	)

	events, err := combined.ComputeNewEvents(nil, decide.Sum3Second[string, string, string]("x"))
	require.NoError(t, err)
	require.Len(t, events, 1)

	v, ok := events[0].Second()
	require.True(t, ok)
	assert.Equal(t, "b:x", v)

	_, ok = events[0].First()
	assert.False(t, ok)
	_, ok = events[0].Third()
	assert.False(t, ok)
}

func TestCombine6(t *testing.T) {
	combined := decide.Combine6(
		newCountingDecider("a"),
		newCountingDecider("b"),
		newCountingDecider("c"),
		newCountingDecider("d"),
		newCountingDecider("e"),
		newCountingDecider("f"),
	)

	state := combined.InitialState()
	next, err := combined.ComputeNewState(&state,
		decide.Sum6Sixth[string, string, string, string, string, string]("tail"))
	require.NoError(t, err)

	assert.Equal(t, []string{"f:tail"}, next.Sixth)
	assert.Empty(t, next.First)
	assert.Empty(t, next.Third)
	assert.Empty(t, next.Fifth)
}
