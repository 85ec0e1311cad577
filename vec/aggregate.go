// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vec

import (
	"cmp"
	"math/big"

	"golang.org/x/exp/constraints"

	"code.hybscloud.com/adt"
)

// Number is the element kind accepted by Sum and Product.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum adds the elements in the element's own numeric kind.
// An empty slice yields 0. Integer overflow wraps.
func Sum[S ~[]E, E Number](s S) E {
	var acc E
	for _, e := range s {
		acc += e
	}
	return acc
}

// Product multiplies the elements in the element's own numeric kind.
// An empty slice yields 1. Integer overflow wraps.
func Product[S ~[]E, E Number](s S) E {
	acc := E(1)
	for _, e := range s {
		acc *= e
	}
	return acc
}

// SumBig adds integer elements with arbitrary precision.
// An empty slice yields 0.
func SumBig[S ~[]E, E constraints.Integer](s S) *big.Int {
	acc := new(big.Int)
	var x big.Int
	for _, e := range s {
		acc.Add(acc, setInt(&x, e))
	}
	return acc
}

// ProductBig multiplies integer elements with arbitrary precision.
// An empty slice yields 1.
func ProductBig[S ~[]E, E constraints.Integer](s S) *big.Int {
	acc := big.NewInt(1)
	var x big.Int
	for _, e := range s {
		acc.Mul(acc, setInt(&x, e))
	}
	return acc
}

// SumBigInts adds big-integer elements. Nil elements count as 0.
// An empty slice yields 0. The inputs are not modified.
func SumBigInts(s []*big.Int) *big.Int {
	acc := new(big.Int)
	for _, e := range s {
		if e != nil {
			acc.Add(acc, e)
		}
	}
	return acc
}

// ProductBigInts multiplies big-integer elements. Nil elements count as 0.
// An empty slice yields 1. The inputs are not modified.
func ProductBigInts(s []*big.Int) *big.Int {
	acc := big.NewInt(1)
	for _, e := range s {
		if e == nil {
			return acc.SetInt64(0)
		}
		acc.Mul(acc, e)
	}
	return acc
}

// setInt stores e in x without losing the high bit of large unsigned values.
func setInt[E constraints.Integer](x *big.Int, e E) *big.Int {
	if e < 0 {
		return x.SetInt64(int64(e))
	}
	return x.SetUint64(uint64(e))
}

// Max returns the greatest element, or None if s is empty.
// For equal maxima the last one wins. NaN orders below every other value,
// as in cmp.Compare.
func Max[S ~[]E, E constraints.Ordered](s S) adt.Option[E] {
	return MaxBy(s, cmp.Compare[E])
}

// Min returns the least element, or None if s is empty.
// For equal minima the first one wins. NaN orders below every other value.
func Min[S ~[]E, E constraints.Ordered](s S) adt.Option[E] {
	return MinBy(s, cmp.Compare[E])
}

// MaxBy returns the greatest element under compare, or None if s is empty.
// compare returns a negative number when a < b, zero when equal, positive otherwise.
func MaxBy[S ~[]E, E any](s S, compare func(a, b E) int) adt.Option[E] {
	if len(s) == 0 {
		return adt.None[E]()
	}
	best := s[0]
	for _, e := range s[1:] {
		if compare(e, best) >= 0 {
			best = e
		}
	}
	return adt.Some(best)
}

// MinBy returns the least element under compare, or None if s is empty.
func MinBy[S ~[]E, E any](s S, compare func(a, b E) int) adt.Option[E] {
	if len(s) == 0 {
		return adt.None[E]()
	}
	best := s[0]
	for _, e := range s[1:] {
		if compare(e, best) < 0 {
			best = e
		}
	}
	return adt.Some(best)
}

// MaxByKey returns the element with the greatest key, or None if s is empty.
func MaxByKey[S ~[]E, E any, K constraints.Ordered](s S, key func(E) K) adt.Option[E] {
	return MaxBy(s, func(a, b E) int { return cmp.Compare(key(a), key(b)) })
}

// MinByKey returns the element with the least key, or None if s is empty.
func MinByKey[S ~[]E, E any, K constraints.Ordered](s S, key func(E) K) adt.Option[E] {
	return MinBy(s, func(a, b E) int { return cmp.Compare(key(a), key(b)) })
}
