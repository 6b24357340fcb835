package decide

// View is the event handling component of the query side. It translates
// events into denormalized state. Evolve must be pure and total.
type View[S, E any] struct {
	// Evolve computes the next projection state from the current state and
	// one event.
	Evolve func(state S, event E) S
	// InitialState produces the projection state before any event has been
	// applied.
	InitialState func() S
}

// ComputeNewState folds the events into the current state (or the initial
// state when current is nil).
func (v View[S, E]) ComputeNewState(current *S, events []E) S {
	state := v.InitialState()
	if current != nil {
		state = *current
	}
	for _, e := range events {
		state = v.Evolve(state, e)
	}
	return state
}

// MapViewState maps a View over its state type; see [MapDeciderState].
func MapViewState[S, E, S2 any](v View[S, E], from func(S2) S, to func(S) S2) View[S2, E] {
	return View[S2, E]{
		Evolve: func(s2 S2, e E) S2 {
			return to(v.Evolve(from(s2), e))
		},
		InitialState: func() S2 {
			return to(v.InitialState())
		},
	}
}

// MapViewEvent maps a View over its event type. The new view accepts events
// of type E2 and translates them with f before evolving.
func MapViewEvent[S, E2, E any](v View[S, E], f func(E2) E) View[S, E2] {
	return View[S, E2]{
		Evolve: func(s S, e2 E2) S {
			return v.Evolve(s, f(e2))
		},
		InitialState: v.InitialState,
	}
}
