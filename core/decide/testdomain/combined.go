package testdomain

import "github.com/codewandler/decider-go/core/decide"

// Combined order/shipment types, the glue an application would expose when
// it runs both aggregates behind one orchestrated entry point.
type (
	Command = decide.Sum[OrderCommand, ShipmentCommand]
	Event   = decide.Sum[OrderEvent, ShipmentEvent]
	State   = decide.Pair[OrderState, ShipmentState]
)

func OrderCmd(c OrderCommand) Command { return decide.First[OrderCommand, ShipmentCommand](c) }

func ShipmentCmd(c ShipmentCommand) Command {
	return decide.Second[OrderCommand, ShipmentCommand](c)
}

func OrderEvt(e OrderEvent) Event { return decide.First[OrderEvent, ShipmentEvent](e) }

func ShipmentEvt(e ShipmentEvent) Event { return decide.Second[OrderEvent, ShipmentEvent](e) }

// NewOrderShipmentDecider combines both deciders over the shared Sum types.
func NewOrderShipmentDecider() decide.Decider[Command, State, Event] {
	return decide.Combine(NewOrderDecider(), NewShipmentDecider())
}

// NewOrderShipmentSaga reacts to the combined event space: order events may
// trigger shipment commands and vice versa. This closes the cascade loop of
// the orchestrating aggregates.
func NewOrderShipmentSaga() decide.Saga[Event, Command] {
	orderSaga := NewOrderSaga()
	shipmentSaga := NewShipmentSaga()
	return decide.Saga[Event, Command]{
		React: func(e Event) []Command {
			var out []Command
			if oe, ok := e.First(); ok {
				for _, c := range shipmentSaga.React(oe) {
					out = append(out, ShipmentCmd(c))
				}
			}
			if se, ok := e.Second(); ok {
				for _, c := range orderSaga.React(se) {
					out = append(out, OrderCmd(c))
				}
			}
			return out
		},
	}
}
