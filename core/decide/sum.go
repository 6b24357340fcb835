package decide

import "errors"

// ErrNoVariant is returned when a zero-valued Sum is dispatched. A Sum must
// be built through one of its constructors.
var ErrNoVariant = errors.New("decide: sum holds no variant")

// Identifier exposes the string key that partitions a shared stream into
// per-logical-entity sub-streams (for example an order id). Commands and
// events handled by the orchestrating aggregates must implement it.
type Identifier interface {
	Identifier() string
}

type sumTag uint8

const (
	tagFirst sumTag = iota + 1
	tagSecond
	tagThird
	tagFourth
	tagFifth
	tagSixth
)

// identifierOf returns the identifier of v, or "" if v does not carry one.
func identifierOf(v any) string {
	if id, ok := v.(Identifier); ok {
		return id.Identifier()
	}
	return ""
}

// === Sum ===

// Sum is a tagged union over exactly one of two payload types. It carries no
// identity beyond the chosen variant, which makes it the natural type for
// merging disjoint command/event spaces without erasing which component a
// value belongs to.
type Sum[A, B any] struct {
	tag    sumTag
	first  A
	second B
}

func First[A, B any](a A) Sum[A, B]  { return Sum[A, B]{tag: tagFirst, first: a} }
func Second[A, B any](b B) Sum[A, B] { return Sum[A, B]{tag: tagSecond, second: b} }

// First returns the first variant and whether it is the one present.
func (s Sum[A, B]) First() (A, bool) { return s.first, s.tag == tagFirst }

// Second returns the second variant and whether it is the one present.
func (s Sum[A, B]) Second() (B, bool) { return s.second, s.tag == tagSecond }

// Identifier delegates to whichever variant is present.
func (s Sum[A, B]) Identifier() string {
	switch s.tag {
	case tagFirst:
		return identifierOf(s.first)
	case tagSecond:
		return identifierOf(s.second)
	}
	return ""
}

// === Sum3 ===

// Sum3 is a tagged union over exactly one of three payload types.
type Sum3[A, B, C any] struct {
	tag    sumTag
	first  A
	second B
	third  C
}

func Sum3First[A, B, C any](a A) Sum3[A, B, C]  { return Sum3[A, B, C]{tag: tagFirst, first: a} }
func Sum3Second[A, B, C any](b B) Sum3[A, B, C] { return Sum3[A, B, C]{tag: tagSecond, second: b} }
func Sum3Third[A, B, C any](c C) Sum3[A, B, C]  { return Sum3[A, B, C]{tag: tagThird, third: c} }

func (s Sum3[A, B, C]) First() (A, bool)  { return s.first, s.tag == tagFirst }
func (s Sum3[A, B, C]) Second() (B, bool) { return s.second, s.tag == tagSecond }
func (s Sum3[A, B, C]) Third() (C, bool)  { return s.third, s.tag == tagThird }

func (s Sum3[A, B, C]) Identifier() string {
	switch s.tag {
	case tagFirst:
		return identifierOf(s.first)
	case tagSecond:
		return identifierOf(s.second)
	case tagThird:
		return identifierOf(s.third)
	}
	return ""
}

// === Sum4 ===

// Sum4 is a tagged union over exactly one of four payload types.
type Sum4[A, B, C, D any] struct {
	tag    sumTag
	first  A
	second B
	third  C
	fourth D
}

func Sum4First[A, B, C, D any](a A) Sum4[A, B, C, D] {
	return Sum4[A, B, C, D]{tag: tagFirst, first: a}
}
func Sum4Second[A, B, C, D any](b B) Sum4[A, B, C, D] {
	return Sum4[A, B, C, D]{tag: tagSecond, second: b}
}
func Sum4Third[A, B, C, D any](c C) Sum4[A, B, C, D] {
	return Sum4[A, B, C, D]{tag: tagThird, third: c}
}
func Sum4Fourth[A, B, C, D any](d D) Sum4[A, B, C, D] {
	return Sum4[A, B, C, D]{tag: tagFourth, fourth: d}
}

func (s Sum4[A, B, C, D]) First() (A, bool)  { return s.first, s.tag == tagFirst }
func (s Sum4[A, B, C, D]) Second() (B, bool) { return s.second, s.tag == tagSecond }
func (s Sum4[A, B, C, D]) Third() (C, bool)  { return s.third, s.tag == tagThird }
func (s Sum4[A, B, C, D]) Fourth() (D, bool) { return s.fourth, s.tag == tagFourth }

func (s Sum4[A, B, C, D]) Identifier() string {
	switch s.tag {
	case tagFirst:
		return identifierOf(s.first)
	case tagSecond:
		return identifierOf(s.second)
	case tagThird:
		return identifierOf(s.third)
	case tagFourth:
		return identifierOf(s.fourth)
	}
	return ""
}

// === Sum5 ===

// Sum5 is a tagged union over exactly one of five payload types.
type Sum5[A, B, C, D, E any] struct {
	tag    sumTag
	first  A
	second B
	third  C
	fourth D
	fifth  E
}

func Sum5First[A, B, C, D, E any](a A) Sum5[A, B, C, D, E] {
	return Sum5[A, B, C, D, E]{tag: tagFirst, first: a}
}
func Sum5Second[A, B, C, D, E any](b B) Sum5[A, B, C, D, E] {
	return Sum5[A, B, C, D, E]{tag: tagSecond, second: b}
}
func Sum5Third[A, B, C, D, E any](c C) Sum5[A, B, C, D, E] {
	return Sum5[A, B, C, D, E]{tag: tagThird, third: c}
}
func Sum5Fourth[A, B, C, D, E any](d D) Sum5[A, B, C, D, E] {
	return Sum5[A, B, C, D, E]{tag: tagFourth, fourth: d}
}
func Sum5Fifth[A, B, C, D, E any](e E) Sum5[A, B, C, D, E] {
	return Sum5[A, B, C, D, E]{tag: tagFifth, fifth: e}
}

func (s Sum5[A, B, C, D, E]) First() (A, bool)  { return s.first, s.tag == tagFirst }
func (s Sum5[A, B, C, D, E]) Second() (B, bool) { return s.second, s.tag == tagSecond }
func (s Sum5[A, B, C, D, E]) Third() (C, bool)  { return s.third, s.tag == tagThird }
func (s Sum5[A, B, C, D, E]) Fourth() (D, bool) { return s.fourth, s.tag == tagFourth }
func (s Sum5[A, B, C, D, E]) Fifth() (E, bool)  { return s.fifth, s.tag == tagFifth }

func (s Sum5[A, B, C, D, E]) Identifier() string {
	switch s.tag {
	case tagFirst:
		return identifierOf(s.first)
	case tagSecond:
		return identifierOf(s.second)
	case tagThird:
		return identifierOf(s.third)
	case tagFourth:
		return identifierOf(s.fourth)
	case tagFifth:
		return identifierOf(s.fifth)
	}
	return ""
}

// === Sum6 ===

// Sum6 is a tagged union over exactly one of six payload types.
type Sum6[A, B, C, D, E, F any] struct {
	tag    sumTag
	first  A
	second B
	third  C
	fourth D
	fifth  E
	sixth  F
}

func Sum6First[A, B, C, D, E, F any](a A) Sum6[A, B, C, D, E, F] {
	return Sum6[A, B, C, D, E, F]{tag: tagFirst, first: a}
}
func Sum6Second[A, B, C, D, E, F any](b B) Sum6[A, B, C, D, E, F] {
	return Sum6[A, B, C, D, E, F]{tag: tagSecond, second: b}
}
func Sum6Third[A, B, C, D, E, F any](c C) Sum6[A, B, C, D, E, F] {
	return Sum6[A, B, C, D, E, F]{tag: tagThird, third: c}
}
func Sum6Fourth[A, B, C, D, E, F any](d D) Sum6[A, B, C, D, E, F] {
	return Sum6[A, B, C, D, E, F]{tag: tagFourth, fourth: d}
}
func Sum6Fifth[A, B, C, D, E, F any](e E) Sum6[A, B, C, D, E, F] {
	return Sum6[A, B, C, D, E, F]{tag: tagFifth, fifth: e}
}
func Sum6Sixth[A, B, C, D, E, F any](f F) Sum6[A, B, C, D, E, F] {
	return Sum6[A, B, C, D, E, F]{tag: tagSixth, sixth: f}
}

func (s Sum6[A, B, C, D, E, F]) First() (A, bool)  { return s.first, s.tag == tagFirst }
func (s Sum6[A, B, C, D, E, F]) Second() (B, bool) { return s.second, s.tag == tagSecond }
func (s Sum6[A, B, C, D, E, F]) Third() (C, bool)  { return s.third, s.tag == tagThird }
func (s Sum6[A, B, C, D, E, F]) Fourth() (D, bool) { return s.fourth, s.tag == tagFourth }
func (s Sum6[A, B, C, D, E, F]) Fifth() (E, bool)  { return s.fifth, s.tag == tagFifth }
func (s Sum6[A, B, C, D, E, F]) Sixth() (F, bool)  { return s.sixth, s.tag == tagSixth }

func (s Sum6[A, B, C, D, E, F]) Identifier() string {
	switch s.tag {
	case tagFirst:
		return identifierOf(s.first)
	case tagSecond:
		return identifierOf(s.second)
	case tagThird:
		return identifierOf(s.third)
	case tagFourth:
		return identifierOf(s.fourth)
	case tagFifth:
		return identifierOf(s.fifth)
	case tagSixth:
		return identifierOf(s.sixth)
	}
	return ""
}

// === Tuples ===

// Pair is the combined state of two composed components. A slot not
// addressed by the current command/event is passed through unchanged.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Tuple3 is the combined state of three composed components.
type Tuple3[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Tuple4 is the combined state of four composed components.
type Tuple4[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

// Tuple5 is the combined state of five composed components.
type Tuple5[A, B, C, D, E any] struct {
	First  A
	Second B
	Third  C
	Fourth D
	Fifth  E
}

// Tuple6 is the combined state of six composed components.
type Tuple6[A, B, C, D, E, F any] struct {
	First  A
	Second B
	Third  C
	Fourth D
	Fifth  E
	Sixth  F
}
