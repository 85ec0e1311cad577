// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vec

import (
	"slices"
	"unsafe"

	"code.hybscloud.com/adt"
)

// In-place mutators. Length-changing operations take *S and zero the
// vacated tail so dropped elements can be collected.

// Dedup removes consecutive equal elements in place.
func Dedup[S ~[]E, E comparable](s *S) {
	DedupBy(s, func(prev, curr E) bool { return prev == curr })
}

// DedupBy removes consecutive elements for which same(prev, curr) is true,
// where prev is the most recently kept element.
func DedupBy[S ~[]E, E any](s *S, same func(prev, curr E) bool) {
	v := *s
	if len(v) < 2 {
		return
	}
	w := 1
	for r := 1; r < len(v); r++ {
		if !same(v[w-1], v[r]) {
			v[w] = v[r]
			w++
		}
	}
	clear(v[w:])
	*s = v[:w]
}

// DedupByKey removes consecutive elements that map to the same key.
func DedupByKey[S ~[]E, E any, K comparable](s *S, key func(E) K) {
	DedupBy(s, func(prev, curr E) bool { return key(prev) == key(curr) })
}

// Retain keeps only the elements for which keep returns true, preserving order.
func Retain[S ~[]E, E any](s *S, keep func(E) bool) {
	v := *s
	w := 0
	for _, e := range v {
		if keep(e) {
			v[w] = e
			w++
		}
	}
	clear(v[w:])
	*s = v[:w]
}

// Clear removes every element, keeping the capacity.
func Clear[S ~[]E, E any](s *S) {
	clear(*s)
	*s = (*s)[:0]
}

// Append moves every element of src onto the end of dst, leaving src empty.
// The vacated elements of src are zeroed unless they now back dst. When dst
// and src point to the same slice its contents are appended to itself.
func Append[S ~[]E, E any](dst, src *S) {
	moved := *src
	*dst = append(*dst, moved...)
	if dst == src {
		return
	}
	if !overlaps([]E(*dst), []E(moved)) {
		clear(moved)
	}
	*src = moved[:0]
}

// overlaps reports whether a and b share any element memory.
func overlaps[E any](a, b []E) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	size := unsafe.Sizeof(a[0])
	if size == 0 {
		return false
	}
	pa := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	pb := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	return pa < pb+uintptr(len(b))*size && pb < pa+uintptr(len(a))*size
}

// Swap exchanges the elements at i and j. Fails if either index is out of range.
func Swap[S ~[]E, E any](s S, i, j int) error {
	if i < 0 || i >= len(s) || j < 0 || j >= len(s) {
		return adt.ArgumentError("swap indices (%d, %d) outside [0, %d)", i, j, len(s))
	}
	s[i], s[j] = s[j], s[i]
	return nil
}

// RotateLeft rotates s in place so that s[mid] becomes the first element.
// Fails if mid is outside [0, len(s)].
func RotateLeft[S ~[]E, E any](s S, mid int) error {
	if mid < 0 || mid > len(s) {
		return adt.ArgumentError("rotation %d outside [0, %d]", mid, len(s))
	}
	rotate(s, mid)
	return nil
}

// RotateRight rotates s in place so that the last k elements move to the
// front. Fails if k is outside [0, len(s)].
func RotateRight[S ~[]E, E any](s S, k int) error {
	if k < 0 || k > len(s) {
		return adt.ArgumentError("rotation %d outside [0, %d]", k, len(s))
	}
	rotate(s, len(s)-k)
	return nil
}

// rotate left by mid using three reversals.
func rotate[S ~[]E, E any](s S, mid int) {
	slices.Reverse(s[:mid])
	slices.Reverse(s[mid:])
	slices.Reverse(s)
}

// Fill assigns v to every element.
func Fill[S ~[]E, E any](s S, v E) {
	for i := range s {
		s[i] = v
	}
}
