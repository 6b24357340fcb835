package testdomain

import (
	"strconv"

	"github.com/codewandler/decider-go/core/decide"
)

// === Commands ===

type (
	// ShipmentCommand is the sealed command union of the shipment aggregate.
	ShipmentCommand interface {
		decide.Identifier
		isShipmentCommand()
	}

	CreateShipmentCommand struct {
		ShipmentID   int
		OrderID      int
		CustomerName string
		Items        []string
	}
)

func (c CreateShipmentCommand) Identifier() string { return strconv.Itoa(c.ShipmentID) }

func (CreateShipmentCommand) isShipmentCommand() {}

// === Events ===

type (
	// ShipmentEvent is the sealed event union of the shipment aggregate.
	ShipmentEvent interface {
		decide.Identifier
		isShipmentEvent()
	}

	ShipmentCreated struct {
		ShipmentID   int
		OrderID      int
		CustomerName string
		Items        []string
	}
)

func (e ShipmentCreated) Identifier() string { return strconv.Itoa(e.ShipmentID) }

func (ShipmentCreated) isShipmentEvent() {}

// === State ===

type ShipmentState struct {
	ShipmentID   int
	OrderID      int
	CustomerName string
	Items        []string
}

func (s ShipmentState) Identifier() string { return strconv.Itoa(s.ShipmentID) }

// NewShipmentDecider builds the shipment decision logic.
func NewShipmentDecider() decide.Decider[ShipmentCommand, ShipmentState, ShipmentEvent] {
	return decide.Decider[ShipmentCommand, ShipmentState, ShipmentEvent]{
		Decide: func(c ShipmentCommand, s ShipmentState) ([]ShipmentEvent, error) {
			switch cmd := c.(type) {
			case CreateShipmentCommand:
				return []ShipmentEvent{ShipmentCreated{
					ShipmentID:   cmd.ShipmentID,
					OrderID:      cmd.OrderID,
					CustomerName: cmd.CustomerName,
					Items:        cmd.Items,
				}}, nil
			}
			return nil, nil
		},
		Evolve: func(s ShipmentState, e ShipmentEvent) ShipmentState {
			switch evt := e.(type) {
			case ShipmentCreated:
				s.ShipmentID = evt.ShipmentID
				s.OrderID = evt.OrderID
				s.CustomerName = evt.CustomerName
				s.Items = evt.Items
			}
			return s
		},
		InitialState: func() ShipmentState {
			return ShipmentState{}
		},
	}
}

// === View ===

type ShipmentViewState struct {
	ShipmentID   int
	OrderID      int
	CustomerName string
	Items        []string
}

func (s ShipmentViewState) Identifier() string { return strconv.Itoa(s.ShipmentID) }

// NewShipmentView projects shipment events into a denormalized read model.
func NewShipmentView() decide.View[ShipmentViewState, ShipmentEvent] {
	return decide.View[ShipmentViewState, ShipmentEvent]{
		Evolve: func(s ShipmentViewState, e ShipmentEvent) ShipmentViewState {
			switch evt := e.(type) {
			case ShipmentCreated:
				s.ShipmentID = evt.ShipmentID
				s.OrderID = evt.OrderID
				s.CustomerName = evt.CustomerName
				s.Items = evt.Items
			}
			return s
		},
		InitialState: func() ShipmentViewState {
			return ShipmentViewState{}
		},
	}
}

// NewShipmentSaga reacts to order events: a freshly created order triggers a
// shipment for the same items. The shipment reuses the order id as its own.
func NewShipmentSaga() decide.Saga[OrderEvent, ShipmentCommand] {
	return decide.Saga[OrderEvent, ShipmentCommand]{
		React: func(ar OrderEvent) []ShipmentCommand {
			switch evt := ar.(type) {
			case OrderCreated:
				return []ShipmentCommand{CreateShipmentCommand{
					ShipmentID:   evt.OrderID,
					OrderID:      evt.OrderID,
					CustomerName: evt.CustomerName,
					Items:        evt.Items,
				}}
			}
			return nil
		},
	}
}
