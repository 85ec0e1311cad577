// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vec

import "code.hybscloud.com/adt"

// First returns the first element, or None if s is empty.
func First[S ~[]E, E any](s S) adt.Option[E] {
	if len(s) == 0 {
		return adt.None[E]()
	}
	return adt.Some(s[0])
}

// Last returns the last element, or None if s is empty.
func Last[S ~[]E, E any](s S) adt.Option[E] {
	if len(s) == 0 {
		return adt.None[E]()
	}
	return adt.Some(s[len(s)-1])
}

// Get returns s[i], or None if i is out of range.
func Get[S ~[]E, E any](s S, i int) adt.Option[E] {
	if i < 0 || i >= len(s) {
		return adt.None[E]()
	}
	return adt.Some(s[i])
}

// Find returns the first element satisfying pred.
func Find[S ~[]E, E any](s S, pred func(E) bool) adt.Option[E] {
	for _, e := range s {
		if pred(e) {
			return adt.Some(e)
		}
	}
	return adt.None[E]()
}

// Position returns the index of the first element satisfying pred.
func Position[S ~[]E, E any](s S, pred func(E) bool) adt.Option[int] {
	for i, e := range s {
		if pred(e) {
			return adt.Some(i)
		}
	}
	return adt.None[int]()
}

// RPosition returns the index of the last element satisfying pred.
func RPosition[S ~[]E, E any](s S, pred func(E) bool) adt.Option[int] {
	for i := len(s) - 1; i >= 0; i-- {
		if pred(s[i]) {
			return adt.Some(i)
		}
	}
	return adt.None[int]()
}

// Contains reports whether v is an element of s.
func Contains[S ~[]E, E comparable](s S, v E) bool {
	return Position(s, func(e E) bool { return e == v }).IsSome()
}

// StartsWith reports whether prefix is a prefix of s.
func StartsWith[S ~[]E, E comparable](s, prefix S) bool {
	if len(prefix) > len(s) {
		return false
	}
	for i, e := range prefix {
		if s[i] != e {
			return false
		}
	}
	return true
}

// EndsWith reports whether suffix is a suffix of s.
func EndsWith[S ~[]E, E comparable](s, suffix S) bool {
	if len(suffix) > len(s) {
		return false
	}
	return StartsWith(s[len(s)-len(suffix):], suffix)
}

// Zip pairs elements of a and b by index, stopping at the shorter slice.
func Zip[A, B any](a []A, b []B) []adt.Pair[A, B] {
	n := min(len(a), len(b))
	out := make([]adt.Pair[A, B], n)
	for i := range n {
		out[i] = adt.MakePair(a[i], b[i])
	}
	return out
}

// Unzip splits a slice of pairs into two slices.
func Unzip[A, B any](ps []adt.Pair[A, B]) ([]A, []B) {
	as := make([]A, len(ps))
	bs := make([]B, len(ps))
	for i, p := range ps {
		as[i], bs[i] = p.Fst, p.Snd
	}
	return as, bs
}
