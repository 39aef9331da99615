// Package vect provides a generic dynamic-array container with manual
// control over its backing storage.
//
// Vector is the classic resizable contiguous sequence: it keeps a
// logical size separate from the allocated capacity, grows by amortized
// doubling, and exclusively owns its backing buffer. Capacity never
// shrinks except through whole-container replacement (CopyFrom,
// MoveFrom, Swap).
//
// # Invalidation
//
// Any operation that reallocates (Push, Insert, Reserve, Resize past
// capacity) invalidates every slice previously obtained from Slice()
// and every pointer into the container. This is a hard contract and is
// not detected at runtime.
//
// # Concurrency
//
// A Vector is not safe for concurrent use. Callers sharing one across
// goroutines must provide their own synchronization.
package vect

import (
	"fmt"
	"iter"

	"github.com/hupe1980/vect/internal/buffer"
)

// Capacity is an inert capacity request, consumed by NewCapacity to
// pre-reserve storage without pre-sizing logical contents.
type Capacity int

// Reserve builds a capacity request for NewCapacity.
func Reserve(n int) Capacity {
	return Capacity(n)
}

// Vector is a resizable contiguous sequence of elements of type T.
//
// The zero value is an empty vector ready for use. Elements between the
// logical size and the allocated capacity are leftover storage and are
// never exposed through the public interface.
type Vector[T any] struct {
	items buffer.Buffer[T]
	size  int
}

// New creates an empty vector (size 0, capacity 0, no allocation).
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewSize creates a vector of n zero-valued elements. Capacity equals n.
func NewSize[T any](n int) *Vector[T] {
	if n < 0 {
		panic(fmt.Sprintf("vect: NewSize size %d out of range", n))
	}
	return &Vector[T]{
		items: buffer.New[T](n),
		size:  n,
	}
}

// NewFill creates a vector of n copies of value. Capacity equals n.
func NewFill[T any](n int, value T) *Vector[T] {
	v := NewSize[T](n)
	s := v.items.Slice()
	for i := range s {
		s[i] = value
	}
	return v
}

// Of creates a vector holding the given values, in order. The values
// are copied into a fresh allocation sized exactly to the list.
func Of[T any](values ...T) *Vector[T] {
	v := NewSize[T](len(values))
	copy(v.items.Slice(), values)
	return v
}

// NewCapacity creates an empty vector with storage for c elements
// already allocated.
func NewCapacity[T any](c Capacity) *Vector[T] {
	v := New[T]()
	v.Reserve(int(c))
	return v
}

// Move transfers ownership of src's storage into a new vector, leaving
// src empty (size 0, capacity 0).
func Move[T any](src *Vector[T]) *Vector[T] {
	v := New[T]()
	v.items = src.items.Move()
	v.size = src.size
	src.size = 0
	return v
}

// Len returns the number of logically present elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of allocated element slots.
func (v *Vector[T]) Cap() int {
	return v.items.Cap()
}

// IsEmpty reports whether the vector holds no elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.size == 0
}

// Get returns the element at index i without validating i against the
// logical size. The caller guarantees i < Len(); an index between Len()
// and Cap() reads leftover storage, and an index past Cap() aborts.
func (v *Vector[T]) Get(i int) T {
	return v.items.Get(i)
}

// Set stores x at index i. Same contract as Get.
func (v *Vector[T]) Set(i int, x T) {
	v.items.Set(i, x)
}

// At returns the element at index i, or ErrOutOfRange when i is not in
// [0, Len()).
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, fmt.Errorf("index %d with size %d: %w", i, v.size, ErrOutOfRange)
	}
	return v.items.Get(i), nil
}

// SetAt stores x at index i, or returns ErrOutOfRange when i is not in
// [0, Len()).
func (v *Vector[T]) SetAt(i int, x T) error {
	if i < 0 || i >= v.size {
		return fmt.Errorf("index %d with size %d: %w", i, v.size, ErrOutOfRange)
	}
	v.items.Set(i, x)
	return nil
}

// Slice returns the contiguous view of the logical elements. The view
// aliases the vector's storage: writes through it are visible in the
// vector, and any reallocating operation invalidates it. Appending to
// the returned slice never touches the vector's spare capacity.
func (v *Vector[T]) Slice() []T {
	return v.items.Slice()[:v.size:v.size]
}

// All returns an iterator over index/element pairs in order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		s := v.items.Slice()
		for i := 0; i < v.size; i++ {
			if !yield(i, s[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		s := v.items.Slice()
		for i := 0; i < v.size; i++ {
			if !yield(s[i]) {
				return
			}
		}
	}
}
