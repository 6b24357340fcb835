package decide

// Saga is the reaction component: the central point of control deciding what
// to execute next based on an action result. It is common to use an event as
// the action result AR and a command as the action A, but not mandatory.
//
// React must be pure and total; one action result maps to zero or more
// actions.
type Saga[AR, A any] struct {
	React func(actionResult AR) []A
}

// ComputeNewActions computes the follow-up actions for one action result.
func (s Saga[AR, A]) ComputeNewActions(actionResult AR) []A {
	return s.React(actionResult)
}

// MapSagaAction maps a Saga over its action type.
func MapSagaAction[AR, A, A2 any](s Saga[AR, A], f func(A) A2) Saga[AR, A2] {
	return Saga[AR, A2]{
		React: func(ar AR) []A2 {
			actions := s.React(ar)
			out := make([]A2, 0, len(actions))
			for _, a := range actions {
				out = append(out, f(a))
			}
			return out
		},
	}
}

// MapSagaActionResult maps a Saga over its action-result type. The new saga
// accepts action results of type AR2 and translates them with f before
// reacting.
func MapSagaActionResult[AR2, AR, A any](s Saga[AR, A], f func(AR2) AR) Saga[AR2, A] {
	return Saga[AR2, A]{
		React: func(ar2 AR2) []A {
			return s.React(f(ar2))
		},
	}
}

// MergeSagas merges two sagas sharing an action-result type. Both sagas
// observe every action result and their action lists are concatenated, s1
// first: one event may legitimately trigger independent follow-up actions
// from multiple sagas.
func MergeSagas[AR, A1, A2 any](s1 Saga[AR, A1], s2 Saga[AR, A2]) Saga[AR, Sum[A1, A2]] {
	return Saga[AR, Sum[A1, A2]]{
		React: func(ar AR) []Sum[A1, A2] {
			first := s1.React(ar)
			second := s2.React(ar)
			out := make([]Sum[A1, A2], 0, len(first)+len(second))
			for _, a := range first {
				out = append(out, First[A1, A2](a))
			}
			for _, a := range second {
				out = append(out, Second[A1, A2](a))
			}
			return out
		},
	}
}

// MergeSagas3 merges three sagas. Pairwise [MergeSagas] plus a structural
// action remap; concatenation order is s1, s2, s3.
func MergeSagas3[AR, A1, A2, A3 any](
	s1 Saga[AR, A1],
	s2 Saga[AR, A2],
	s3 Saga[AR, A3],
) Saga[AR, Sum3[A1, A2, A3]] {
	return MapSagaAction(MergeSagas(MergeSagas(s1, s2), s3),
		func(a Sum[Sum[A1, A2], A3]) Sum3[A1, A2, A3] {
			if inner, ok := a.First(); ok {
				if v, ok := inner.First(); ok {
					return Sum3First[A1, A2, A3](v)
				}
				if v, ok := inner.Second(); ok {
					return Sum3Second[A1, A2, A3](v)
				}
				return Sum3[A1, A2, A3]{}
			}
			if v, ok := a.Second(); ok {
				return Sum3Third[A1, A2, A3](v)
			}
			return Sum3[A1, A2, A3]{}
		},
	)
}

// MergeSagas4 merges four sagas; see [MergeSagas3].
func MergeSagas4[AR, A1, A2, A3, A4 any](
	s1 Saga[AR, A1],
	s2 Saga[AR, A2],
	s3 Saga[AR, A3],
	s4 Saga[AR, A4],
) Saga[AR, Sum4[A1, A2, A3, A4]] {
	return MapSagaAction(MergeSagas(MergeSagas3(s1, s2, s3), s4),
		func(a Sum[Sum3[A1, A2, A3], A4]) Sum4[A1, A2, A3, A4] {
			if inner, ok := a.First(); ok {
				if v, ok := inner.First(); ok {
					return Sum4First[A1, A2, A3, A4](v)
				}
				if v, ok := inner.Second(); ok {
					return Sum4Second[A1, A2, A3, A4](v)
				}
				if v, ok := inner.Third(); ok {
					return Sum4Third[A1, A2, A3, A4](v)
				}
				return Sum4[A1, A2, A3, A4]{}
			}
			if v, ok := a.Second(); ok {
				return Sum4Fourth[A1, A2, A3, A4](v)
			}
			return Sum4[A1, A2, A3, A4]{}
		},
	)
}

// MergeSagas5 merges five sagas; see [MergeSagas3].
func MergeSagas5[AR, A1, A2, A3, A4, A5 any](
	s1 Saga[AR, A1],
	s2 Saga[AR, A2],
	s3 Saga[AR, A3],
	s4 Saga[AR, A4],
	s5 Saga[AR, A5],
) Saga[AR, Sum5[A1, A2, A3, A4, A5]] {
	return MapSagaAction(MergeSagas(MergeSagas4(s1, s2, s3, s4), s5),
		func(a Sum[Sum4[A1, A2, A3, A4], A5]) Sum5[A1, A2, A3, A4, A5] {
			if inner, ok := a.First(); ok {
				if v, ok := inner.First(); ok {
					return Sum5First[A1, A2, A3, A4, A5](v)
				}
				if v, ok := inner.Second(); ok {
					return Sum5Second[A1, A2, A3, A4, A5](v)
				}
				if v, ok := inner.Third(); ok {
					return Sum5Third[A1, A2, A3, A4, A5](v)
				}
				if v, ok := inner.Fourth(); ok {
					return Sum5Fourth[A1, A2, A3, A4, A5](v)
				}
				return Sum5[A1, A2, A3, A4, A5]{}
			}
			if v, ok := a.Second(); ok {
				return Sum5Fifth[A1, A2, A3, A4, A5](v)
			}
			return Sum5[A1, A2, A3, A4, A5]{}
		},
	)
}

// MergeSagas6 merges six sagas; see [MergeSagas3].
func MergeSagas6[AR, A1, A2, A3, A4, A5, A6 any](
	s1 Saga[AR, A1],
	s2 Saga[AR, A2],
	s3 Saga[AR, A3],
	s4 Saga[AR, A4],
	s5 Saga[AR, A5],
	s6 Saga[AR, A6],
) Saga[AR, Sum6[A1, A2, A3, A4, A5, A6]] {
	return MapSagaAction(MergeSagas(MergeSagas5(s1, s2, s3, s4, s5), s6),
		func(a Sum[Sum5[A1, A2, A3, A4, A5], A6]) Sum6[A1, A2, A3, A4, A5, A6] {
			if inner, ok := a.First(); ok {
				if v, ok := inner.First(); ok {
					return Sum6First[A1, A2, A3, A4, A5, A6](v)
				}
				if v, ok := inner.Second(); ok {
					return Sum6Second[A1, A2, A3, A4, A5, A6](v)
				}
				if v, ok := inner.Third(); ok {
					return Sum6Third[A1, A2, A3, A4, A5, A6](v)
				}
				if v, ok := inner.Fourth(); ok {
					return Sum6Fourth[A1, A2, A3, A4, A5, A6](v)
				}
				if v, ok := inner.Fifth(); ok {
					return Sum6Fifth[A1, A2, A3, A4, A5, A6](v)
				}
				return Sum6[A1, A2, A3, A4, A5, A6]{}
			}
			if v, ok := a.Second(); ok {
				return Sum6Sixth[A1, A2, A3, A4, A5, A6](v)
			}
			return Sum6[A1, A2, A3, A4, A5, A6]{}
		},
	)
}

// MergeAllSagas merges any number of sagas sharing both type parameters into
// one, concatenating their actions in argument order. It is the homogeneous
// N-ary form; the heterogeneous forms are MergeSagas3..6.
func MergeAllSagas[AR, A any](sagas ...Saga[AR, A]) Saga[AR, A] {
	return Saga[AR, A]{
		React: func(ar AR) []A {
			var out []A
			for _, s := range sagas {
				out = append(out, s.React(ar)...)
			}
			return out
		},
	}
}
