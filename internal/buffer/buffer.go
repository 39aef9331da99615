// Package buffer implements the owned allocation underneath vect.Vector.
//
// A Buffer is a fixed-length, heap-allocated run of elements with
// exclusive ownership: it is created once, handed over via Move/Release/
// Swap, and never duplicated. The owner above it tracks how many of the
// allocated slots are logically in use; the buffer itself only knows its
// allocated length.
//
// Go cannot forbid struct copies the way a deleted copy constructor
// would, so Buffer is move-only by contract: the container never copies
// one, and neither should any other caller.
package buffer

// Buffer owns zero or more contiguously allocated elements.
//
// The zero value is a valid empty buffer (nil handle, zero capacity).
type Buffer[T any] struct {
	data []T
}

// New allocates a buffer of n zero-valued elements.
// n == 0 yields a nil handle.
func New[T any](n int) Buffer[T] {
	if n == 0 {
		return Buffer[T]{}
	}
	return Buffer[T]{data: make([]T, n)}
}

// FromSlice adopts an existing allocation. The caller must not retain
// or mutate raw afterwards; the buffer is now its sole owner.
func FromSlice[T any](raw []T) Buffer[T] {
	return Buffer[T]{data: raw}
}

// Release relinquishes ownership of the allocation and nils the handle.
// The caller becomes responsible for the returned slice.
func (b *Buffer[T]) Release() []T {
	data := b.data
	b.data = nil
	return data
}

// Move transfers ownership to the returned buffer, leaving b empty.
func (b *Buffer[T]) Move() Buffer[T] {
	return Buffer[T]{data: b.Release()}
}

// Swap exchanges the two handles in O(1). No elements move.
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.data, other.data = other.data, b.data
}

// Get returns the element at index i.
// The caller guarantees i < Cap(); the runtime aborts otherwise.
func (b *Buffer[T]) Get(i int) T {
	return b.data[i]
}

// Set stores x at index i. Same contract as Get.
func (b *Buffer[T]) Set(i int, x T) {
	b.data[i] = x
}

// Slice returns the full-capacity view of the allocation, for bulk
// copies and shifts. It aliases the owned storage.
func (b *Buffer[T]) Slice() []T {
	return b.data
}

// Cap returns the number of allocated slots.
func (b *Buffer[T]) Cap() int {
	return len(b.data)
}

// Valid reports whether the buffer holds an allocation.
func (b *Buffer[T]) Valid() bool {
	return b.data != nil
}
