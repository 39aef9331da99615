package vect

import "cmp"

// Equal reports whether a and b have the same length and pairwise-equal
// elements in order.
func Equal[T comparable](a, b *Vector[T]) bool {
	if a.size != b.size {
		return false
	}
	as, bs := a.items.Slice(), b.items.Slice()
	for i := 0; i < a.size; i++ {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}

// EqualFunc is Equal with a custom element equality, allowing mixed
// element types.
func EqualFunc[T1, T2 any](a *Vector[T1], b *Vector[T2], eq func(T1, T2) bool) bool {
	if a.size != b.size {
		return false
	}
	as, bs := a.items.Slice(), b.items.Slice()
	for i := 0; i < a.size; i++ {
		if !eq(as[i], bs[i]) {
			return false
		}
	}
	return true
}

// Compare orders a and b lexicographically over their elements:
// the first unequal element decides; otherwise the shorter vector
// compares less. The result follows cmp.Compare conventions.
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is Compare with a custom element comparison, allowing
// mixed element types.
func CompareFunc[T1, T2 any](a *Vector[T1], b *Vector[T2], compare func(T1, T2) int) int {
	as, bs := a.items.Slice(), b.items.Slice()
	n := min(a.size, b.size)
	for i := 0; i < n; i++ {
		if c := compare(as[i], bs[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.size, b.size)
}

// Less reports whether a orders strictly before b.
func Less[T cmp.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) < 0
}
