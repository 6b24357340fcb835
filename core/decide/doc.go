// Package decide provides the pure domain building blocks for event-sourced
// and CQRS systems: the Decider, the View and the Saga, together with an
// algebra for composing many small instances into one large one.
//
// # Core Components
//
// Decider: the decision-making unit. Given a command and the current state it
// produces new events, and it evolves state from events:
//
//	orders := decide.Decider[OrderCommand, OrderState, OrderEvent]{
//	    Decide:       func(c OrderCommand, s OrderState) ([]OrderEvent, error) { ... },
//	    Evolve:       func(s OrderState, e OrderEvent) OrderState { ... },
//	    InitialState: func() OrderState { return OrderState{} },
//	}
//
// View: the projection unit. It folds events into denormalized query state
// and is usually the read side of a CQRS system.
//
// Saga: the reaction unit. It maps an action result (usually an event) to
// zero or more follow-up actions (usually commands).
//
// All three are plain structs holding function values. They are pure: no I/O,
// no goroutines, no shared mutable state. Effects live in the core/app
// package, which binds these components to repository and publisher ports.
//
// # Composition
//
// Deciders over disjoint command/event spaces are combined with [Combine]
// (and [Combine3] through [Combine6]): commands and events become [Sum]
// variants, states become tuples, and dispatch is partitioned so that each
// component only ever sees its own variant. Views over a shared event type
// are merged with [Merge]: every merged view observes every event (broadcast).
// Sagas over a shared action-result type are merged with [MergeSagas]: their
// action lists are concatenated.
//
// Combination never alters the observable behavior of a component; it only
// reshapes types. The functor maps (MapDeciderState, MapViewEvent, ...) are
// available for custom reshaping at composition boundaries.
package decide
