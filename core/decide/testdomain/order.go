// Package testdomain carries a small order/shipment domain used by the
// decide and app tests. An order can be created, updated and cancelled;
// creating an order triggers a shipment, and a created shipment updates the
// order with the shipped items.
package testdomain

import (
	"strconv"

	"github.com/codewandler/decider-go/core/decide"
)

// === Commands ===

type (
	// OrderCommand is the sealed command union of the order aggregate.
	OrderCommand interface {
		decide.Identifier
		isOrderCommand()
	}

	CreateOrderCommand struct {
		OrderID      int
		CustomerName string
		Items        []string
	}

	UpdateOrderCommand struct {
		OrderID  int
		NewItems []string
	}

	CancelOrderCommand struct {
		OrderID int
	}
)

func (c CreateOrderCommand) Identifier() string { return strconv.Itoa(c.OrderID) }
func (c UpdateOrderCommand) Identifier() string { return strconv.Itoa(c.OrderID) }
func (c CancelOrderCommand) Identifier() string { return strconv.Itoa(c.OrderID) }

func (CreateOrderCommand) isOrderCommand() {}
func (UpdateOrderCommand) isOrderCommand() {}
func (CancelOrderCommand) isOrderCommand() {}

// === Events ===

type (
	// OrderEvent is the sealed event union of the order aggregate.
	OrderEvent interface {
		decide.Identifier
		isOrderEvent()
	}

	OrderCreated struct {
		OrderID      int
		CustomerName string
		Items        []string
	}

	OrderUpdated struct {
		OrderID      int
		UpdatedItems []string
	}

	OrderCancelled struct {
		OrderID int
	}
)

func (e OrderCreated) Identifier() string   { return strconv.Itoa(e.OrderID) }
func (e OrderUpdated) Identifier() string   { return strconv.Itoa(e.OrderID) }
func (e OrderCancelled) Identifier() string { return strconv.Itoa(e.OrderID) }

func (OrderCreated) isOrderEvent()   {}
func (OrderUpdated) isOrderEvent()   {}
func (OrderCancelled) isOrderEvent() {}

// === State ===

type OrderState struct {
	OrderID      int
	CustomerName string
	Items        []string
	IsCancelled  bool
}

func (s OrderState) Identifier() string { return strconv.Itoa(s.OrderID) }

// NewOrderDecider builds the order decision logic. Update and cancel commands
// only apply to the order they address; against any other state they produce
// no events.
func NewOrderDecider() decide.Decider[OrderCommand, OrderState, OrderEvent] {
	return decide.Decider[OrderCommand, OrderState, OrderEvent]{
		Decide: func(c OrderCommand, s OrderState) ([]OrderEvent, error) {
			switch cmd := c.(type) {
			case CreateOrderCommand:
				return []OrderEvent{OrderCreated{
					OrderID:      cmd.OrderID,
					CustomerName: cmd.CustomerName,
					Items:        cmd.Items,
				}}, nil
			case UpdateOrderCommand:
				if s.OrderID != cmd.OrderID {
					return nil, nil
				}
				return []OrderEvent{OrderUpdated{
					OrderID:      cmd.OrderID,
					UpdatedItems: cmd.NewItems,
				}}, nil
			case CancelOrderCommand:
				if s.OrderID != cmd.OrderID {
					return nil, nil
				}
				return []OrderEvent{OrderCancelled{OrderID: cmd.OrderID}}, nil
			}
			return nil, nil
		},
		Evolve: func(s OrderState, e OrderEvent) OrderState {
			switch evt := e.(type) {
			case OrderCreated:
				s.OrderID = evt.OrderID
				s.CustomerName = evt.CustomerName
				s.Items = evt.Items
			case OrderUpdated:
				s.Items = evt.UpdatedItems
			case OrderCancelled:
				s.IsCancelled = true
			}
			return s
		},
		InitialState: func() OrderState {
			return OrderState{}
		},
	}
}

// === View ===

type OrderViewState struct {
	OrderID      int
	CustomerName string
	Items        []string
	IsCancelled  bool
}

func (s OrderViewState) Identifier() string { return strconv.Itoa(s.OrderID) }

// NewOrderView projects order events into a denormalized order read model.
func NewOrderView() decide.View[OrderViewState, OrderEvent] {
	return decide.View[OrderViewState, OrderEvent]{
		Evolve: func(s OrderViewState, e OrderEvent) OrderViewState {
			switch evt := e.(type) {
			case OrderCreated:
				s.OrderID = evt.OrderID
				s.CustomerName = evt.CustomerName
				s.Items = evt.Items
			case OrderUpdated:
				s.Items = evt.UpdatedItems
			case OrderCancelled:
				s.IsCancelled = true
			}
			return s
		},
		InitialState: func() OrderViewState {
			return OrderViewState{}
		},
	}
}

// NewOrderSaga reacts to shipment events: a created shipment updates the
// order with the items that actually shipped.
func NewOrderSaga() decide.Saga[ShipmentEvent, OrderCommand] {
	return decide.Saga[ShipmentEvent, OrderCommand]{
		React: func(ar ShipmentEvent) []OrderCommand {
			switch evt := ar.(type) {
			case ShipmentCreated:
				return []OrderCommand{UpdateOrderCommand{
					OrderID:  evt.OrderID,
					NewItems: evt.Items,
				}}
			}
			return nil
		},
	}
}
