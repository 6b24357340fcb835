package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codewandler/decider-go/core/app"
	"github.com/codewandler/decider-go/core/decide/testdomain"
)

func TestMaterializedView_Handle(t *testing.T) {
	ctx := context.Background()
	repo := app.NewInMemoryViewStateRepository[testdomain.OrderEvent, testdomain.OrderViewState]()
	view := app.NewMaterializedView(testdomain.NewOrderView(), repo)

	state, err := view.Handle(ctx, testdomain.OrderCreated{
		OrderID:      1,
		CustomerName: "John Doe",
		Items:        []string{"Item 1", "Item 2"},
	})
	require.NoError(t, err)
	assert.Equal(t, testdomain.OrderViewState{
		OrderID:      1,
		CustomerName: "John Doe",
		Items:        []string{"Item 1", "Item 2"},
	}, state)

	// the next event continues from the stored projection
	state, err = view.Handle(ctx, testdomain.OrderUpdated{
		OrderID:      1,
		UpdatedItems: []string{"Item 3"},
	})
	require.NoError(t, err)
	assert.Equal(t, "John Doe", state.CustomerName)
	assert.Equal(t, []string{"Item 3"}, state.Items)

	state, err = view.Handle(ctx, testdomain.OrderCancelled{OrderID: 1})
	require.NoError(t, err)
	assert.True(t, state.IsCancelled)
	assert.Equal(t, []string{"Item 3"}, state.Items)
}

func TestMaterializedView_Handle_SeparateEntities(t *testing.T) {
	ctx := context.Background()
	repo := app.NewInMemoryViewStateRepository[testdomain.OrderEvent, testdomain.OrderViewState]()
	view := app.NewMaterializedView(testdomain.NewOrderView(), repo)

	_, err := view.Handle(ctx, testdomain.OrderCreated{OrderID: 1, CustomerName: "John Doe"})
	require.NoError(t, err)
	_, err = view.Handle(ctx, testdomain.OrderCancelled{OrderID: 2})
	require.NoError(t, err)

	// order 1 is untouched by order 2's event
	state, err := view.Handle(ctx, testdomain.OrderUpdated{OrderID: 1, UpdatedItems: []string{"Item 9"}})
	require.NoError(t, err)
	assert.False(t, state.IsCancelled)
	assert.Equal(t, []string{"Item 9"}, state.Items)
}
