package decide_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codewandler/decider-go/core/decide"
	"github.com/codewandler/decider-go/core/decide/testdomain"
)

func TestSum_Accessors(t *testing.T) {
	s := decide.First[int, string](7)

	v, ok := s.First()
	require.True(t, ok)
	assert.Equal(t, 7, v)

	_, ok = s.Second()
	assert.False(t, ok)

	var zero decide.Sum[int, string]
	_, ok = zero.First()
	assert.False(t, ok)
	_, ok = zero.Second()
	assert.False(t, ok)
}

func TestSum_IdentifierDelegation(t *testing.T) {
	orderCmd := decide.First[testdomain.OrderCommand, testdomain.ShipmentCommand](
		testdomain.CreateOrderCommand{OrderID: 1})
	assert.Equal(t, "1", orderCmd.Identifier())

	shipmentCmd := decide.Second[testdomain.OrderCommand, testdomain.ShipmentCommand](
		testdomain.CreateShipmentCommand{ShipmentID: 2, OrderID: 1})
	assert.Equal(t, "2", shipmentCmd.Identifier())

	// zero sum and non-identified payloads carry no identifier
	var zero decide.Sum[testdomain.OrderCommand, testdomain.ShipmentCommand]
	assert.Equal(t, "", zero.Identifier())
	assert.Equal(t, "", decide.First[int, int](5).Identifier())
}

func TestSum3_Accessors(t *testing.T) {
	s := decide.Sum3Second[int, string, bool]("x")

	v, ok := s.Second()
	require.True(t, ok)
	assert.Equal(t, "x", v)

	_, ok = s.First()
	assert.False(t, ok)
	_, ok = s.Third()
	assert.False(t, ok)
}

func TestSum6_IdentifierDelegation(t *testing.T) {
	s := decide.Sum6Fourth[int, int, int, testdomain.OrderEvent, int, int](
		testdomain.OrderCreated{OrderID: 11})
	assert.Equal(t, "11", s.Identifier())

	v, ok := s.Fourth()
	require.True(t, ok)
	assert.Equal(t, testdomain.OrderCreated{OrderID: 11}, v)
}
