package vect_test

import (
	"fmt"

	"github.com/hupe1980/vect"
)

func ExampleVector() {
	v := vect.Of(1, 2, 3)
	v.Insert(1, 9)
	v.Push(4)

	fmt.Println(v.Slice())
	fmt.Println(v.Len(), v.Cap())
	// Output:
	// [1 9 2 3 4]
	// 5 6
}

func ExampleNewCapacity() {
	v := vect.NewCapacity[string](vect.Reserve(8))
	fmt.Println(v.Len(), v.Cap())

	v.Push("a") // no reallocation
	fmt.Println(v.Len(), v.Cap())
	// Output:
	// 0 8
	// 1 8
}

func ExampleVector_Resize() {
	v := vect.NewSize[int](3)
	v.Resize(5)
	fmt.Println(v.Slice(), v.Len())
	// Output:
	// [0 0 0 0 0] 5
}

func ExampleCompare() {
	fmt.Println(vect.Less(vect.Of(1, 2), vect.Of(1, 3)))
	fmt.Println(vect.Less(vect.Of(1, 2), vect.Of(1, 2, 3)))
	// Output:
	// true
	// true
}
