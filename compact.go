package vect

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// EraseSet removes every element whose index is in set, in one pass
// over the vector. Indices at or past Len() are ignored. Surviving
// elements keep their relative order; capacity is unchanged. Returns
// the number of elements removed. O(Len()).
func (v *Vector[T]) EraseSet(set *roaring.Bitmap) int {
	if set == nil || set.IsEmpty() || v.size == 0 {
		return 0
	}
	s := v.items.Slice()
	kept := 0
	for i := 0; i < v.size; i++ {
		if i <= math.MaxUint32 && set.Contains(uint32(i)) {
			continue
		}
		if kept != i {
			s[kept] = s[i]
		}
		kept++
	}
	removed := v.size - kept
	v.size = kept
	return removed
}

// DeleteFunc removes every element for which del returns true, in one
// pass. Surviving elements keep their relative order; capacity is
// unchanged. Returns the number of elements removed. O(Len()).
func (v *Vector[T]) DeleteFunc(del func(T) bool) int {
	s := v.items.Slice()
	kept := 0
	for i := 0; i < v.size; i++ {
		if del(s[i]) {
			continue
		}
		if kept != i {
			s[kept] = s[i]
		}
		kept++
	}
	removed := v.size - kept
	v.size = kept
	return removed
}
