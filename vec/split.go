// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vec

import "code.hybscloud.com/adt"

// Windows returns every contiguous sub-slice of length n, in order.
// The result is empty when n exceeds len(s). Fails if n <= 0.
func Windows[S ~[]E, E any](s S, n int) ([]S, error) {
	if n <= 0 {
		return nil, adt.ArgumentError("window size %d must be positive", n)
	}
	if n > len(s) {
		return []S{}, nil
	}
	out := make([]S, 0, len(s)-n+1)
	for i := 0; i+n <= len(s); i++ {
		out = append(out, s[i:i+n:i+n])
	}
	return out, nil
}

// Chunks partitions s into pieces of length n starting from the front.
// The last piece may be shorter. Fails if n <= 0.
func Chunks[S ~[]E, E any](s S, n int) ([]S, error) {
	if n <= 0 {
		return nil, adt.ArgumentError("chunk size %d must be positive", n)
	}
	out := make([]S, 0, (len(s)+n-1)/n)
	for i := 0; i < len(s); i += n {
		end := min(i+n, len(s))
		out = append(out, s[i:end:end])
	}
	return out, nil
}

// RChunks partitions s into pieces of length n starting from the back.
// Pieces are returned back to front; the last piece may be shorter.
// Fails if n <= 0.
func RChunks[S ~[]E, E any](s S, n int) ([]S, error) {
	if n <= 0 {
		return nil, adt.ArgumentError("chunk size %d must be positive", n)
	}
	out := make([]S, 0, (len(s)+n-1)/n)
	for end := len(s); end > 0; end -= n {
		start := max(end-n, 0)
		out = append(out, s[start:end:end])
	}
	return out, nil
}

// ChunksExact partitions s into pieces of exactly n elements and returns
// the leftover tail separately. Fails if n <= 0.
func ChunksExact[S ~[]E, E any](s S, n int) ([]S, S, error) {
	if n <= 0 {
		return nil, nil, adt.ArgumentError("chunk size %d must be positive", n)
	}
	full := len(s) - len(s)%n
	out := make([]S, 0, full/n)
	for i := 0; i < full; i += n {
		out = append(out, s[i:i+n:i+n])
	}
	return out, s[full:len(s):len(s)], nil
}

// SplitAt divides s into s[:n] and s[n:]. Fails if n < 0 or n > len(s).
func SplitAt[S ~[]E, E any](s S, n int) (S, S, error) {
	if n < 0 || n > len(s) {
		return nil, nil, adt.ArgumentError("split index %d outside [0, %d]", n, len(s))
	}
	return s[:n:n], s[n:], nil
}

// SplitFirst returns the first element and the rest, or None if s is empty.
func SplitFirst[S ~[]E, E any](s S) adt.Option[adt.Pair[E, S]] {
	if len(s) == 0 {
		return adt.None[adt.Pair[E, S]]()
	}
	return adt.Some(adt.MakePair(s[0], s[1:]))
}

// SplitLast returns the last element and the rest, or None if s is empty.
func SplitLast[S ~[]E, E any](s S) adt.Option[adt.Pair[E, S]] {
	if len(s) == 0 {
		return adt.None[adt.Pair[E, S]]()
	}
	n := len(s) - 1
	return adt.Some(adt.MakePair(s[n], s[:n:n]))
}

// Split returns the sub-slices separated by elements matching sep.
// Separators are dropped; adjacent separators yield empty pieces, and an
// empty s yields a single empty piece.
func Split[S ~[]E, E any](s S, sep func(E) bool) []S {
	var out []S
	start := 0
	for i, e := range s {
		if sep(e) {
			out = append(out, s[start:i:i])
			start = i + 1
		}
	}
	return append(out, s[start:len(s):len(s)])
}

// GroupBy splits s into runs of consecutive elements. same(prev, curr)
// decides whether curr continues the run that prev belongs to.
func GroupBy[S ~[]E, E any](s S, same func(prev, curr E) bool) []S {
	if len(s) == 0 {
		return nil
	}
	var out []S
	start := 0
	for i := 1; i < len(s); i++ {
		if !same(s[i-1], s[i]) {
			out = append(out, s[start:i:i])
			start = i
		}
	}
	return append(out, s[start:len(s):len(s)])
}
