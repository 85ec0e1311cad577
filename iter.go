// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt

import (
	"iter"
	"sync/atomic"
)

// Iter yields at most one element and cannot be restarted.
// Once the element has been taken, or the iterator discarded, every further
// call reports exhaustion.
type Iter[T any] struct {
	used  atomic.Uintptr
	value T
}

func newIter[T any](value T, some bool) *Iter[T] {
	it := &Iter[T]{value: value}
	if !some {
		it.used.Store(1)
	}
	return it
}

// Next returns the element and true on the first call for a populated
// container, and (zero, false) otherwise.
func (it *Iter[T]) Next() (T, bool) {
	if it.used.Add(1) != 1 {
		var zero T
		return zero, false
	}
	v := it.value
	var zero T
	it.value = zero
	return v, true
}

// Len reports the number of elements not yet consumed: 0 or 1.
func (it *Iter[T]) Len() int {
	if it.used.Load() != 0 {
		return 0
	}
	return 1
}

// Discard exhausts the iterator without yielding.
func (it *Iter[T]) Discard() {
	if it.used.Add(1) == 1 {
		var zero T
		it.value = zero
	}
}

// Seq adapts the remaining elements to a range-over-func sequence.
// Ranging consumes the iterator; a second range yields nothing.
func (it *Iter[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		if v, ok := it.Next(); ok {
			yield(v)
		}
	}
}

// Collect drains the iterator into a slice of length 0 or 1.
func (it *Iter[T]) Collect() []T {
	if v, ok := it.Next(); ok {
		return []T{v}
	}
	return nil
}
