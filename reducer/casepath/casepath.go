// Package casepath provides bidirectional projections between a sum type
// and one of its variants. Extract may miss when the sum currently holds
// a different variant; Embed always succeeds. Pairs must satisfy the
// round-trip law Extract(Embed(x)) == (x, true), checked by CheckRoundTrip.
package casepath

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
)

// CasePath pairs the two directions of one case of a sum type.
type CasePath[Sum, Case any] struct {
	Extract func(Sum) (Case, bool)
	Embed   func(Case) Sum
}

// New builds a CasePath from an extract/embed pair.
func New[Sum, Case any](extract func(Sum) (Case, bool), embed func(Case) Sum) CasePath[Sum, Case] {
	return CasePath[Sum, Case]{Extract: extract, Embed: embed}
}

// Variant derives the CasePath for an interface-based sum whose Case is a
// concrete type implementing the Sum interface. Extraction is a type
// assertion; embedding is the implicit interface conversion. Panics at
// embed time if Case does not implement Sum, which is a wiring mistake,
// not a runtime condition.
func Variant[Sum, Case any]() CasePath[Sum, Case] {
	return CasePath[Sum, Case]{
		Extract: func(s Sum) (Case, bool) {
			c, ok := any(s).(Case)
			return c, ok
		},
		Embed: func(c Case) Sum {
			return any(c).(Sum)
		},
	}
}

// Append composes two case paths, projecting through an intermediate sum.
// Extraction misses if either leg misses.
func Append[Root, Mid, Leaf any](outer CasePath[Root, Mid], inner CasePath[Mid, Leaf]) CasePath[Root, Leaf] {
	return CasePath[Root, Leaf]{
		Extract: func(r Root) (Leaf, bool) {
			m, ok := outer.Extract(r)
			if !ok {
				var zero Leaf
				return zero, false
			}
			return inner.Extract(m)
		},
		Embed: func(l Leaf) Root {
			return outer.Embed(inner.Embed(l))
		},
	}
}

// CheckRoundTrip verifies Extract(Embed(x)) == (x, true) for every sample
// and returns the first violation found. Supplying a law-breaking pair to
// Pullback silently drops or duplicates state, so projections belong
// under this check in their package's tests.
func CheckRoundTrip[Sum, Case any](path CasePath[Sum, Case], samples ...Case) error {
	for _, want := range samples {
		got, ok := path.Extract(path.Embed(want))
		if !ok {
			return fmt.Errorf("casepath: embed of %#v not extractable from its own sum", want)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			return fmt.Errorf("casepath: round trip mismatch (-embedded +extracted):\n%s", diff)
		}
	}
	return nil
}
