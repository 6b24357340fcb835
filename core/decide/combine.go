package decide

// Combine merges two deciders over disjoint command/event spaces into one.
// Dispatch is partitioned: a First command only runs d1 against the first
// state slot and produces First events; the second slot is passed through
// unchanged. Symmetric for Second. A zero-valued Sum command fails with
// [ErrNoVariant].
func Combine[C1, S1, E1, C2, S2, E2 any](
	d1 Decider[C1, S1, E1],
	d2 Decider[C2, S2, E2],
) Decider[Sum[C1, C2], Pair[S1, S2], Sum[E1, E2]] {
	return Decider[Sum[C1, C2], Pair[S1, S2], Sum[E1, E2]]{
		Decide: func(c Sum[C1, C2], s Pair[S1, S2]) ([]Sum[E1, E2], error) {
			if c1, ok := c.First(); ok {
				events, err := d1.Decide(c1, s.First)
				if err != nil {
					return nil, err
				}
				out := make([]Sum[E1, E2], 0, len(events))
				for _, e := range events {
					out = append(out, First[E1, E2](e))
				}
				return out, nil
			}
			if c2, ok := c.Second(); ok {
				events, err := d2.Decide(c2, s.Second)
				if err != nil {
					return nil, err
				}
				out := make([]Sum[E1, E2], 0, len(events))
				for _, e := range events {
					out = append(out, Second[E1, E2](e))
				}
				return out, nil
			}
			return nil, ErrNoVariant
		},
		Evolve: func(s Pair[S1, S2], e Sum[E1, E2]) Pair[S1, S2] {
			if e1, ok := e.First(); ok {
				s.First = d1.Evolve(s.First, e1)
				return s
			}
			if e2, ok := e.Second(); ok {
				s.Second = d2.Evolve(s.Second, e2)
			}
			return s
		},
		InitialState: func() Pair[S1, S2] {
			return Pair[S1, S2]{First: d1.InitialState(), Second: d2.InitialState()}
		},
	}
}

// Combine3 merges three deciders. It is pairwise [Combine] plus a bijective
// structural remapping between the nested and the flat shape; it introduces
// no new decision semantics.
func Combine3[C1, S1, E1, C2, S2, E2, C3, S3, E3 any](
	d1 Decider[C1, S1, E1],
	d2 Decider[C2, S2, E2],
	d3 Decider[C3, S3, E3],
) Decider[Sum3[C1, C2, C3], Tuple3[S1, S2, S3], Sum3[E1, E2, E3]] {
	nested := Combine(Combine(d1, d2), d3)

	byCommand := MapDeciderCommand(nested, func(c Sum3[C1, C2, C3]) Sum[Sum[C1, C2], C3] {
		if v, ok := c.First(); ok {
			return First[Sum[C1, C2], C3](First[C1, C2](v))
		}
		if v, ok := c.Second(); ok {
			return First[Sum[C1, C2], C3](Second[C1, C2](v))
		}
		if v, ok := c.Third(); ok {
			return Second[Sum[C1, C2], C3](v)
		}
		return Sum[Sum[C1, C2], C3]{}
	})

	byEvent := MapDeciderEvent(byCommand,
		func(e Sum3[E1, E2, E3]) Sum[Sum[E1, E2], E3] {
			if v, ok := e.First(); ok {
				return First[Sum[E1, E2], E3](First[E1, E2](v))
			}
			if v, ok := e.Second(); ok {
				return First[Sum[E1, E2], E3](Second[E1, E2](v))
			}
			if v, ok := e.Third(); ok {
				return Second[Sum[E1, E2], E3](v)
			}
			return Sum[Sum[E1, E2], E3]{}
		},
		func(e Sum[Sum[E1, E2], E3]) Sum3[E1, E2, E3] {
			if inner, ok := e.First(); ok {
				if v, ok := inner.First(); ok {
					return Sum3First[E1, E2, E3](v)
				}
				if v, ok := inner.Second(); ok {
					return Sum3Second[E1, E2, E3](v)
				}
				return Sum3[E1, E2, E3]{}
			}
			if v, ok := e.Second(); ok {
				return Sum3Third[E1, E2, E3](v)
			}
			return Sum3[E1, E2, E3]{}
		},
	)

	return MapDeciderState(byEvent,
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

// Combine4 merges four deciders; see [Combine3].
func Combine4[C1, S1, E1, C2, S2, E2, C3, S3, E3, C4, S4, E4 any](
	d1 Decider[C1, S1, E1],
	d2 Decider[C2, S2, E2],
	d3 Decider[C3, S3, E3],
	d4 Decider[C4, S4, E4],
) Decider[Sum4[C1, C2, C3, C4], Tuple4[S1, S2, S3, S4], Sum4[E1, E2, E3, E4]] {
	nested := Combine(Combine3(d1, d2, d3), d4)

	byCommand := MapDeciderCommand(nested, func(c Sum4[C1, C2, C3, C4]) Sum[Sum3[C1, C2, C3], C4] {
		if v, ok := c.First(); ok {
			return First[Sum3[C1, C2, C3], C4](Sum3First[C1, C2, C3](v))
		}
		if v, ok := c.Second(); ok {
			return First[Sum3[C1, C2, C3], C4](Sum3Second[C1, C2, C3](v))
		}
		if v, ok := c.Third(); ok {
			return First[Sum3[C1, C2, C3], C4](Sum3Third[C1, C2, C3](v))
		}
		if v, ok := c.Fourth(); ok {
			return Second[Sum3[C1, C2, C3], C4](v)
		}
		return Sum[Sum3[C1, C2, C3], C4]{}
	})

	byEvent := MapDeciderEvent(byCommand,
		func(e Sum4[E1, E2, E3, E4]) Sum[Sum3[E1, E2, E3], E4] {
			if v, ok := e.First(); ok {
				return First[Sum3[E1, E2, E3], E4](Sum3First[E1, E2, E3](v))
			}
			if v, ok := e.Second(); ok {
				return First[Sum3[E1, E2, E3], E4](Sum3Second[E1, E2, E3](v))
			}
			if v, ok := e.Third(); ok {
				return First[Sum3[E1, E2, E3], E4](Sum3Third[E1, E2, E3](v))
			}
			if v, ok := e.Fourth(); ok {
				return Second[Sum3[E1, E2, E3], E4](v)
			}
			return Sum[Sum3[E1, E2, E3], E4]{}
		},
		func(e Sum[Sum3[E1, E2, E3], E4]) Sum4[E1, E2, E3, E4] {
			if inner, ok := e.First(); ok {
				if v, ok := inner.First(); ok {
					return Sum4First[E1, E2, E3, E4](v)
				}
				if v, ok := inner.Second(); ok {
					return Sum4Second[E1, E2, E3, E4](v)
				}
				if v, ok := inner.Third(); ok {
					return Sum4Third[E1, E2, E3, E4](v)
				}
				return Sum4[E1, E2, E3, E4]{}
			}
			if v, ok := e.Second(); ok {
				return Sum4Fourth[E1, E2, E3, E4](v)
			}
			return Sum4[E1, E2, E3, E4]{}
		},
	)

	return MapDeciderState(byEvent,
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

// Combine5 merges five deciders; see [Combine3].
func Combine5[C1, S1, E1, C2, S2, E2, C3, S3, E3, C4, S4, E4, C5, S5, E5 any](
	d1 Decider[C1, S1, E1],
	d2 Decider[C2, S2, E2],
	d3 Decider[C3, S3, E3],
	d4 Decider[C4, S4, E4],
	d5 Decider[C5, S5, E5],
) Decider[Sum5[C1, C2, C3, C4, C5], Tuple5[S1, S2, S3, S4, S5], Sum5[E1, E2, E3, E4, E5]] {
	nested := Combine(Combine4(d1, d2, d3, d4), d5)

	byCommand := MapDeciderCommand(nested, func(c Sum5[C1, C2, C3, C4, C5]) Sum[Sum4[C1, C2, C3, C4], C5] {
		if v, ok := c.First(); ok {
			return First[Sum4[C1, C2, C3, C4], C5](Sum4First[C1, C2, C3, C4](v))
		}
		if v, ok := c.Second(); ok {
			return First[Sum4[C1, C2, C3, C4], C5](Sum4Second[C1, C2, C3, C4](v))
		}
		if v, ok := c.Third(); ok {
			return First[Sum4[C1, C2, C3, C4], C5](Sum4Third[C1, C2, C3, C4](v))
		}
		if v, ok := c.Fourth(); ok {
			return First[Sum4[C1, C2, C3, C4], C5](Sum4Fourth[C1, C2, C3, C4](v))
		}
		if v, ok := c.Fifth(); ok {
			return Second[Sum4[C1, C2, C3, C4], C5](v)
		}
		return Sum[Sum4[C1, C2, C3, C4], C5]{}
	})

	byEvent := MapDeciderEvent(byCommand,
		func(e Sum5[E1, E2, E3, E4, E5]) Sum[Sum4[E1, E2, E3, E4], E5] {
			if v, ok := e.First(); ok {
				return First[Sum4[E1, E2, E3, E4], E5](Sum4First[E1, E2, E3, E4](v))
			}
			if v, ok := e.Second(); ok {
				return First[Sum4[E1, E2, E3, E4], E5](Sum4Second[E1, E2, E3, E4](v))
			}
			if v, ok := e.Third(); ok {
				return First[Sum4[E1, E2, E3, E4], E5](Sum4Third[E1, E2, E3, E4](v))
			}
			if v, ok := e.Fourth(); ok {
				return First[Sum4[E1, E2, E3, E4], E5](Sum4Fourth[E1, E2, E3, E4](v))
			}
			if v, ok := e.Fifth(); ok {
				return Second[Sum4[E1, E2, E3, E4], E5](v)
			}
			return Sum[Sum4[E1, E2, E3, E4], E5]{}
		},
		func(e Sum[Sum4[E1, E2, E3, E4], E5]) Sum5[E1, E2, E3, E4, E5] {
			if inner, ok := e.First(); ok {
				if v, ok := inner.First(); ok {
					return Sum5First[E1, E2, E3, E4, E5](v)
				}
				if v, ok := inner.Second(); ok {
					return Sum5Second[E1, E2, E3, E4, E5](v)
				}
				if v, ok := inner.Third(); ok {
					return Sum5Third[E1, E2, E3, E4, E5](v)
				}
				if v, ok := inner.Fourth(); ok {
					return Sum5Fourth[E1, E2, E3, E4, E5](v)
				}
				return Sum5[E1, E2, E3, E4, E5]{}
			}
			if v, ok := e.Second(); ok {
				return Sum5Fifth[E1, E2, E3, E4, E5](v)
			}
			return Sum5[E1, E2, E3, E4, E5]{}
		},
	)

	return MapDeciderState(byEvent,
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

// Combine6 merges six deciders; see [Combine3].
func Combine6[C1, S1, E1, C2, S2, E2, C3, S3, E3, C4, S4, E4, C5, S5, E5, C6, S6, E6 any](
	d1 Decider[C1, S1, E1],
	d2 Decider[C2, S2, E2],
	d3 Decider[C3, S3, E3],
	d4 Decider[C4, S4, E4],
	d5 Decider[C5, S5, E5],
	d6 Decider[C6, S6, E6],
) Decider[Sum6[C1, C2, C3, C4, C5, C6], Tuple6[S1, S2, S3, S4, S5, S6], Sum6[E1, E2, E3, E4, E5, E6]] {
	nested := Combine(Combine5(d1, d2, d3, d4, d5), d6)

	byCommand := MapDeciderCommand(nested, func(c Sum6[C1, C2, C3, C4, C5, C6]) Sum[Sum5[C1, C2, C3, C4, C5], C6] {
		if v, ok := c.First(); ok {
			return First[Sum5[C1, C2, C3, C4, C5], C6](Sum5First[C1, C2, C3, C4, C5](v))
		}
		if v, ok := c.Second(); ok {
			return First[Sum5[C1, C2, C3, C4, C5], C6](Sum5Second[C1, C2, C3, C4, C5](v))
		}
		if v, ok := c.Third(); ok {
			return First[Sum5[C1, C2, C3, C4, C5], C6](Sum5Third[C1, C2, C3, C4, C5](v))
		}
		if v, ok := c.Fourth(); ok {
			return First[Sum5[C1, C2, C3, C4, C5], C6](Sum5Fourth[C1, C2, C3, C4, C5](v))
		}
		if v, ok := c.Fifth(); ok {
			return First[Sum5[C1, C2, C3, C4, C5], C6](Sum5Fifth[C1, C2, C3, C4, C5](v))
		}
		if v, ok := c.Sixth(); ok {
			return Second[Sum5[C1, C2, C3, C4, C5], C6](v)
		}
		return Sum[Sum5[C1, C2, C3, C4, C5], C6]{}
	})

	byEvent := MapDeciderEvent(byCommand,
		func(e Sum6[E1, E2, E3, E4, E5, E6]) Sum[Sum5[E1, E2, E3, E4, E5], E6] {
			if v, ok := e.First(); ok {
				return First[Sum5[E1, E2, E3, E4, E5], E6](Sum5First[E1, E2, E3, E4, E5](v))
			}
			if v, ok := e.Second(); ok {
				return First[Sum5[E1, E2, E3, E4, E5], E6](Sum5Second[E1, E2, E3, E4, E5](v))
			}
			if v, ok := e.Third(); ok {
				return First[Sum5[E1, E2, E3, E4, E5], E6](Sum5Third[E1, E2, E3, E4, E5](v))
			}
			if v, ok := e.Fourth(); ok {
				return First[Sum5[E1, E2, E3, E4, E5], E6](Sum5Fourth[E1, E2, E3, E4, E5](v))
			}
			if v, ok := e.Fifth(); ok {
				return First[Sum5[E1, E2, E3, E4, E5], E6](Sum5Fifth[E1, E2, E3, E4, E5](v))
			}
			if v, ok := e.Sixth(); ok {
				return Second[Sum5[E1, E2, E3, E4, E5], E6](v)
			}
			return Sum[Sum5[E1, E2, E3, E4, E5], E6]{}
		},
		func(e Sum[Sum5[E1, E2, E3, E4, E5], E6]) Sum6[E1, E2, E3, E4, E5, E6] {
			if inner, ok := e.First(); ok {
				if v, ok := inner.First(); ok {
					return Sum6First[E1, E2, E3, E4, E5, E6](v)
				}
				if v, ok := inner.Second(); ok {
					return Sum6Second[E1, E2, E3, E4, E5, E6](v)
				}
				if v, ok := inner.Third(); ok {
					return Sum6Third[E1, E2, E3, E4, E5, E6](v)
				}
				if v, ok := inner.Fourth(); ok {
					return Sum6Fourth[E1, E2, E3, E4, E5, E6](v)
				}
				if v, ok := inner.Fifth(); ok {
					return Sum6Fifth[E1, E2, E3, E4, E5, E6](v)
				}
				return Sum6[E1, E2, E3, E4, E5, E6]{}
			}
			if v, ok := e.Second(); ok {
				return Sum6Sixth[E1, E2, E3, E4, E5, E6](v)
			}
			return Sum6[E1, E2, E3, E4, E5, E6]{}
		},
	)

	return MapDeciderState(byEvent,
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
