package decide

// Decider is the main decision-making component. It is parametric over the
// command type C, the state type S and the event type E.
//
// Decide and Evolve must be deterministic and side-effect free. Evolve must
// never fail: folding the same event list in the same order always yields
// the same state.
type Decider[C, S, E any] struct {
	// Decide produces the events caused by command in the given state.
	// A returned error is a domain error; no events are produced.
	Decide func(command C, state S) ([]E, error)
	// Evolve computes the next state from the current state and one event.
	Evolve func(state S, event E) S
	// InitialState produces the state before any event has been applied.
	InitialState func() S
}

// ComputeNewEvents folds the current events into a state and decides on the
// command against it. This is the event-sourced computation:
//
//	decide(command, fold(evolve, initialState, events))
func (d Decider[C, S, E]) ComputeNewEvents(events []E, command C) ([]E, error) {
	state := d.InitialState()
	for _, e := range events {
		state = d.Evolve(state, e)
	}
	return d.Decide(command, state)
}

// ComputeNewState decides on the command against the current state (or the
// initial state when current is nil) and folds the produced events back into
// it. This is the state-stored computation.
func (d Decider[C, S, E]) ComputeNewState(current *S, command C) (S, error) {
	state := d.InitialState()
	if current != nil {
		state = *current
	}
	events, err := d.Decide(command, state)
	if err != nil {
		var zero S
		return zero, err
	}
	for _, e := range events {
		state = d.Evolve(state, e)
	}
	return state, nil
}

// MapDeciderState maps a Decider over its state type. from translates the new
// state representation into the old one, to translates the other way. The map
// is structure preserving: the produced events for equivalent inputs do not
// change, only their state representation does.
func MapDeciderState[C, S, E, S2 any](
	d Decider[C, S, E],
	from func(S2) S,
	to func(S) S2,
) Decider[C, S2, E] {
	return Decider[C, S2, E]{
		Decide: func(c C, s2 S2) ([]E, error) {
			return d.Decide(c, from(s2))
		},
		Evolve: func(s2 S2, e E) S2 {
			return to(d.Evolve(from(s2), e))
		},
		InitialState: func() S2 {
			return to(d.InitialState())
		},
	}
}

// MapDeciderEvent maps a Decider over its event type.
func MapDeciderEvent[C, S, E, E2 any](
	d Decider[C, S, E],
	from func(E2) E,
	to func(E) E2,
) Decider[C, S, E2] {
	return Decider[C, S, E2]{
		Decide: func(c C, s S) ([]E2, error) {
			events, err := d.Decide(c, s)
			if err != nil {
				return nil, err
			}
			out := make([]E2, 0, len(events))
			for _, e := range events {
				out = append(out, to(e))
			}
			return out, nil
		},
		Evolve: func(s S, e2 E2) S {
			return d.Evolve(s, from(e2))
		},
		InitialState: d.InitialState,
	}
}

// MapDeciderCommand maps a Decider over its command type. The new decider
// accepts commands of type C2 and translates them with f before deciding.
func MapDeciderCommand[C2, C, S, E any](d Decider[C, S, E], f func(C2) C) Decider[C2, S, E] {
	return Decider[C2, S, E]{
		Decide: func(c2 C2, s S) ([]E, error) {
			return d.Decide(f(c2), s)
		},
		Evolve:       d.Evolve,
		InitialState: d.InitialState,
	}
}

// MapDeciderError translates domain errors at a composition boundary. It is a
// pure type/value transform: which events are produced does not change.
func MapDeciderError[C, S, E any](d Decider[C, S, E], f func(error) error) Decider[C, S, E] {
	return Decider[C, S, E]{
		Decide: func(c C, s S) ([]E, error) {
			events, err := d.Decide(c, s)
			if err != nil {
				return nil, f(err)
			}
			return events, nil
		},
		Evolve:       d.Evolve,
		InitialState: d.InitialState,
	}
}
