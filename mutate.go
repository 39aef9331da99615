package vect

import (
	"fmt"

	"github.com/hupe1980/vect/internal/buffer"
)

// realloc replaces the backing buffer with one of exactly newCap slots,
// carrying over the logical elements.
//
// The new buffer is fully built before the old one is let go, so a
// failed allocation (runtime abort) leaves the vector untouched.
func (v *Vector[T]) realloc(newCap int) {
	tmp := buffer.New[T](newCap)
	copy(tmp.Slice(), v.items.Slice()[:v.size])
	v.items.Swap(&tmp)
}

// grown returns the capacity to allocate when the current storage is
// full: double the capacity, minimum one slot.
func (v *Vector[T]) grown() int {
	return max(1, 2*v.items.Cap())
}

// Clear sets the size to zero. Capacity and storage are unchanged; the
// former elements become leftover storage and are not zeroed.
func (v *Vector[T]) Clear() {
	v.size = 0
}

// Reserve grows the capacity to exactly n. It is a no-op when n does
// not exceed the current capacity; it never reallocates in that case.
func (v *Vector[T]) Reserve(n int) {
	if n <= v.items.Cap() {
		return
	}
	v.realloc(n)
}

// Resize sets the logical size to n.
//
// Growing past the current capacity reallocates to max(n, 2*Cap()).
// Slots exposed by growth, whether in place or after reallocation, are
// zero-valued. Shrinking only reduces the size; the abandoned elements
// stay in storage as leftovers.
func (v *Vector[T]) Resize(n int) {
	if n < 0 {
		panic(fmt.Sprintf("vect: Resize size %d out of range", n))
	}
	switch {
	case n == v.size:
		return
	case n <= v.items.Cap():
		if n > v.size {
			s := v.items.Slice()
			var zero T
			for i := v.size; i < n; i++ {
				s[i] = zero
			}
		}
		v.size = n
	default:
		v.realloc(max(n, 2*v.items.Cap()))
		// realloc copied [0,size); the fresh buffer is already
		// zero-valued in [size,n).
		v.size = n
	}
}

// Push appends x, growing the storage when full. Amortized O(1).
func (v *Vector[T]) Push(x T) {
	if v.size == v.items.Cap() {
		v.realloc(v.grown())
	}
	v.items.Set(v.size, x)
	v.size++
}

// Pop removes and returns the last element. The vacated slot keeps its
// value as leftover storage.
//
// Pop panics when the vector is empty; emptiness is the caller's
// precondition, not a recoverable condition.
func (v *Vector[T]) Pop() T {
	if v.size == 0 {
		panic("vect: Pop on empty vector")
	}
	v.size--
	return v.items.Get(v.size)
}

// Insert places x at index i, shifting the elements at and after i one
// slot right. i must be in [0, Len()]; i == Len() appends. Uses the
// same growth rule as Push. O(Len()).
func (v *Vector[T]) Insert(i int, x T) {
	if i < 0 || i > v.size {
		panic(fmt.Sprintf("vect: Insert index %d out of range [0,%d]", i, v.size))
	}
	if v.size == v.items.Cap() {
		tmp := buffer.New[T](v.grown())
		s, d := v.items.Slice(), tmp.Slice()
		copy(d, s[:i])
		copy(d[i+1:], s[i:v.size])
		d[i] = x
		v.items.Swap(&tmp)
	} else {
		s := v.items.Slice()
		copy(s[i+1:v.size+1], s[i:v.size])
		s[i] = x
	}
	v.size++
}

// Erase removes and returns the element at index i, shifting the
// elements after i one slot left. i must be in [0, Len()). The last
// slot keeps its shifted value as leftover storage. O(Len()).
func (v *Vector[T]) Erase(i int) T {
	if i < 0 || i >= v.size {
		panic(fmt.Sprintf("vect: Erase index %d out of range [0,%d)", i, v.size))
	}
	s := v.items.Slice()
	removed := s[i]
	copy(s[i:v.size-1], s[i+1:v.size])
	v.size--
	return removed
}

// Swap exchanges contents, size, and capacity with other in O(1).
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.items.Swap(&other.items)
	v.size, other.size = other.size, v.size
}

// Clone returns a deep copy. The copy's capacity equals the source's
// size; spare capacity is not carried over.
func (v *Vector[T]) Clone() *Vector[T] {
	c := NewSize[T](v.size)
	copy(c.items.Slice(), v.items.Slice()[:v.size])
	return c
}

// CopyFrom replaces v's contents with a deep copy of src. The copy is
// fully built before replacing v, so a failed allocation leaves v in
// its prior state. Copying from an empty source degenerates to Clear,
// keeping v's capacity.
func (v *Vector[T]) CopyFrom(src *Vector[T]) {
	if v == src {
		return
	}
	if src.IsEmpty() {
		v.Clear()
		return
	}
	tmp := src.Clone()
	v.Swap(tmp)
}

// MoveFrom transfers src's storage into v, discarding v's previous
// contents. src is left empty (size 0, capacity 0). Unlike CopyFrom,
// an empty source is not special: v becomes exactly the source.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.items = src.items.Move()
	v.size = src.size
	src.size = 0
}
