package decide

// Merge merges two views over the same event type into one. Dispatch is
// broadcast, the deliberate opposite of [Combine]: every merged view observes
// every event, because projections are one-to-many over the event type while
// a decider's commands are one-to-one.
func Merge[S1, S2, E any](v1 View[S1, E], v2 View[S2, E]) View[Pair[S1, S2], E] {
	return View[Pair[S1, S2], E]{
		Evolve: func(s Pair[S1, S2], e E) Pair[S1, S2] {
			return Pair[S1, S2]{
				First:  v1.Evolve(s.First, e),
				Second: v2.Evolve(s.Second, e),
			}
		},
		InitialState: func() Pair[S1, S2] {
			return Pair[S1, S2]{First: v1.InitialState(), Second: v2.InitialState()}
		},
	}
}

// Merge3 merges three views. Pairwise [Merge] plus a structural state remap.
func Merge3[S1, S2, S3, E any](
	v1 View[S1, E],
	v2 View[S2, E],
	v3 View[S3, E],
) View[Tuple3[S1, S2, S3], E] {
	return MapViewState(Merge(Merge(v1, v2), v3),
		func(s Tuple3[S1, S2, S3]) Pair[Pair[S1, S2], S3] {
			return Pair[Pair[S1, S2], S3]{
				First:  Pair[S1, S2]{First: s.First, Second: s.Second},
				Second: s.Third,
			}
		},
		func(s Pair[Pair[S1, S2], S3]) Tuple3[S1, S2, S3] {
			return Tuple3[S1, S2, S3]{First: s.First.First, Second: s.First.Second, Third: s.Second}
		},
	)
}

// Merge4 merges four views; see [Merge3].
func Merge4[S1, S2, S3, S4, E any](
	v1 View[S1, E],
	v2 View[S2, E],
	v3 View[S3, E],
	v4 View[S4, E],
) View[Tuple4[S1, S2, S3, S4], E] {
	return MapViewState(Merge(Merge3(v1, v2, v3), v4),
		func(s Tuple4[S1, S2, S3, S4]) Pair[Tuple3[S1, S2, S3], S4] {
			return Pair[Tuple3[S1, S2, S3], S4]{
				First:  Tuple3[S1, S2, S3]{First: s.First, Second: s.Second, Third: s.Third},
				Second: s.Fourth,
			}
		},
		func(s Pair[Tuple3[S1, S2, S3], S4]) Tuple4[S1, S2, S3, S4] {
			return Tuple4[S1, S2, S3, S4]{
				First:  s.First.First,
				Second: s.First.Second,
				Third:  s.First.Third,
				Fourth: s.Second,
			}
		},
	)
}

// Merge5 merges five views; see [Merge3].
func Merge5[S1, S2, S3, S4, S5, E any](
	v1 View[S1, E],
	v2 View[S2, E],
	v3 View[S3, E],
	v4 View[S4, E],
	v5 View[S5, E],
) View[Tuple5[S1, S2, S3, S4, S5], E] {
	return MapViewState(Merge(Merge4(v1, v2, v3, v4), v5),
		func(s Tuple5[S1, S2, S3, S4, S5]) Pair[Tuple4[S1, S2, S3, S4], S5] {
			return Pair[Tuple4[S1, S2, S3, S4], S5]{
				First: Tuple4[S1, S2, S3, S4]{
					First:  s.First,
					Second: s.Second,
					Third:  s.Third,
					Fourth: s.Fourth,
				},
				Second: s.Fifth,
			}
		},
		func(s Pair[Tuple4[S1, S2, S3, S4], S5]) Tuple5[S1, S2, S3, S4, S5] {
			return Tuple5[S1, S2, S3, S4, S5]{
				First:  s.First.First,
				Second: s.First.Second,
				Third:  s.First.Third,
				Fourth: s.First.Fourth,
				Fifth:  s.Second,
			}
		},
	)
}

// Merge6 merges six views; see [Merge3].
func Merge6[S1, S2, S3, S4, S5, S6, E any](
	v1 View[S1, E],
	v2 View[S2, E],
	v3 View[S3, E],
	v4 View[S4, E],
	v5 View[S5, E],
	v6 View[S6, E],
) View[Tuple6[S1, S2, S3, S4, S5, S6], E] {
	return MapViewState(Merge(Merge5(v1, v2, v3, v4, v5), v6),
		func(s Tuple6[S1, S2, S3, S4, S5, S6]) Pair[Tuple5[S1, S2, S3, S4, S5], S6] {
			return Pair[Tuple5[S1, S2, S3, S4, S5], S6]{
				First: Tuple5[S1, S2, S3, S4, S5]{
					First:  s.First,
					Second: s.Second,
					Third:  s.Third,
					Fourth: s.Fourth,
					Fifth:  s.Fifth,
				},
				Second: s.Sixth,
			}
		},
		func(s Pair[Tuple5[S1, S2, S3, S4, S5], S6]) Tuple6[S1, S2, S3, S4, S5, S6] {
			return Tuple6[S1, S2, S3, S4, S5, S6]{
				First:  s.First.First,
				Second: s.First.Second,
				Third:  s.First.Third,
				Fourth: s.First.Fourth,
				Fifth:  s.First.Fifth,
				Sixth:  s.Second,
			}
		},
	)
}

// MergeAll merges any number of views sharing one state type into a view
// over a slice of states, one slot per input view, broadcast like [Merge].
// It is the homogeneous N-ary form; the heterogeneous forms are Merge3..6.
func MergeAll[S, E any](views ...View[S, E]) View[[]S, E] {
	return View[[]S, E]{
		Evolve: func(states []S, e E) []S {
			out := make([]S, len(views))
			for i, v := range views {
				out[i] = v.Evolve(states[i], e)
			}
			return out
		},
		InitialState: func() []S {
			out := make([]S, len(views))
			for i, v := range views {
				out[i] = v.InitialState()
			}
			return out
		},
	}
}
