// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt

import "fmt"

// Option represents either Some value or None.
// The zero value is None. A None always stores the zero value of T, so two
// None values of the same type compare equal.
type Option[T any] struct {
	some  bool
	value T
}

// Some creates a populated Option.
func Some[T any](v T) Option[T] {
	return Option[T]{some: true, value: v}
}

// SomeUnit creates a populated Option with no meaningful payload.
func SomeUnit() Option[Unit] {
	return Option[Unit]{some: true}
}

// None creates an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromOk creates an Option from a comma-ok pair, as returned by map
// lookups and type assertions.
func FromOk[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// FromPtr creates an Option from a pointer, treating nil as None.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// IsSome returns true if the Option holds a value.
func (o Option[T]) IsSome() bool {
	return o.some
}

// IsNone returns true if the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.some
}

// IsSomeAnd returns true if the Option holds a value satisfying pred.
func (o Option[T]) IsSomeAnd(pred func(T) bool) bool {
	requireFunc(pred != nil, "Option.IsSomeAnd")
	return o.some && pred(o.value)
}

// IsNoneOr returns true if the Option is empty or its value satisfies pred.
func (o Option[T]) IsNoneOr(pred func(T) bool) bool {
	requireFunc(pred != nil, "Option.IsNoneOr")
	return !o.some || pred(o.value)
}

// Get returns the value and true, or zero and false.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// Unwrap returns the contained value.
// Panics with an error wrapping ErrEmptyAccess if the Option is None.
func (o Option[T]) Unwrap() T {
	if !o.some {
		emptyAccess("called Option.Unwrap on a None value")
	}
	return o.value
}

// Expect returns the contained value.
// Panics with an error reading msg, wrapping ErrEmptyAccess, if the Option is None.
func (o Option[T]) Expect(msg string) T {
	if !o.some {
		expectFailed(msg)
	}
	return o.value
}

// UnwrapOr returns the contained value or fallback.
func (o Option[T]) UnwrapOr(fallback T) T {
	if o.some {
		return o.value
	}
	return fallback
}

// UnwrapOrElse returns the contained value or computes one from fn.
func (o Option[T]) UnwrapOrElse(fn func() T) T {
	requireFunc(fn != nil, "Option.UnwrapOrElse")
	if o.some {
		return o.value
	}
	return fn()
}

// UnwrapOrDefault returns the contained value or the zero value of T.
func (o Option[T]) UnwrapOrDefault() T {
	return o.value
}

// And returns other if the receiver is Some, otherwise None.
func (o Option[T]) And(other Option[T]) Option[T] {
	if o.some {
		return other
	}
	return None[T]()
}

// Or returns the receiver if it is Some, otherwise other.
func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.some {
		return o
	}
	return other
}

// OrElse returns the receiver if it is Some, otherwise the result of fn.
func (o Option[T]) OrElse(fn func() Option[T]) Option[T] {
	requireFunc(fn != nil, "Option.OrElse")
	if o.some {
		return o
	}
	return fn()
}

// Xor returns whichever of the receiver and other is Some when exactly one
// of them is, otherwise None.
func (o Option[T]) Xor(other Option[T]) Option[T] {
	switch {
	case o.some && !other.some:
		return o
	case !o.some && other.some:
		return other
	default:
		return None[T]()
	}
}

// Filter keeps the value only if pred returns true.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	requireFunc(pred != nil, "Option.Filter")
	if o.some && pred(o.value) {
		return o
	}
	return None[T]()
}

// Inspect calls fn with the value if present and returns the receiver.
func (o Option[T]) Inspect(fn func(T)) Option[T] {
	requireFunc(fn != nil, "Option.Inspect")
	if o.some {
		fn(o.value)
	}
	return o
}

// Take moves the value out, leaving None in its place.
// The returned Option holds the prior state.
func (o *Option[T]) Take() Option[T] {
	prev := *o
	*o = None[T]()
	return prev
}

// Replace stores v and returns the prior state.
func (o *Option[T]) Replace(v T) Option[T] {
	prev := *o
	*o = Some(v)
	return prev
}

// Insert stores v, discarding any prior value, and returns a pointer to the
// stored value. The pointer is valid until the Option is next mutated.
func (o *Option[T]) Insert(v T) *T {
	*o = Some(v)
	return &o.value
}

// GetOrInsert stores v if the Option is None and returns a pointer to the
// contained value.
func (o *Option[T]) GetOrInsert(v T) *T {
	if !o.some {
		*o = Some(v)
	}
	return &o.value
}

// GetOrInsertWith stores fn() if the Option is None and returns a pointer to
// the contained value. fn is not called when a value is present.
func (o *Option[T]) GetOrInsertWith(fn func() T) *T {
	requireFunc(fn != nil, "Option.GetOrInsertWith")
	if !o.some {
		*o = Some(fn())
	}
	return &o.value
}

// Iter returns a single-use iterator over the value, if any.
func (o Option[T]) Iter() *Iter[T] {
	return newIter(o.value, o.some)
}

// Cloned returns an Option holding a deep copy of the value.
// Fails with an error wrapping ErrNotCloneable if the value cannot be copied.
func (o Option[T]) Cloned() (Option[T], error) {
	if !o.some {
		return None[T](), nil
	}
	v, err := cloneValue(o.value)
	if err != nil {
		return None[T](), err
	}
	return Some(v), nil
}

// String renders "Some(<value>)" or "None".
func (o Option[T]) String() string {
	if o.some {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// GoString renders the value with %#v.
func (o Option[T]) GoString() string {
	if o.some {
		return fmt.Sprintf("Some(%#v)", o.value)
	}
	return "None"
}

// MatchOption pattern matches on the Option, calling onSome or onNone.
func MatchOption[T, U any](o Option[T], onSome func(T) U, onNone func() U) U {
	if o.some {
		return onSome(o.value)
	}
	return onNone()
}

// MapOption applies fn to the contained value.
func MapOption[T, U any](o Option[T], fn func(T) U) Option[U] {
	requireFunc(fn != nil, "MapOption")
	if o.some {
		return Some(fn(o.value))
	}
	return None[U]()
}

// MapOptionOr applies fn to the contained value, or returns fallback.
func MapOptionOr[T, U any](o Option[T], fallback U, fn func(T) U) U {
	requireFunc(fn != nil, "MapOptionOr")
	if o.some {
		return fn(o.value)
	}
	return fallback
}

// MapOptionOrElse applies fn to the contained value, or computes a fallback.
func MapOptionOrElse[T, U any](o Option[T], fallback func() U, fn func(T) U) U {
	requireFunc(fn != nil && fallback != nil, "MapOptionOrElse")
	if o.some {
		return fn(o.value)
	}
	return fallback()
}

// AndThenOption chains a lookup that may itself produce nothing.
func AndThenOption[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	requireFunc(fn != nil, "AndThenOption")
	if o.some {
		return fn(o.value)
	}
	return None[U]()
}

// AndOption returns other if o is Some, otherwise None. Unlike Option.And
// the element types may differ.
func AndOption[T, U any](o Option[T], other Option[U]) Option[U] {
	if o.some {
		return other
	}
	return None[U]()
}

// ZipOption pairs two values when both are present.
func ZipOption[A, B any](a Option[A], b Option[B]) Option[Pair[A, B]] {
	if a.some && b.some {
		return Some(Pair[A, B]{Fst: a.value, Snd: b.value})
	}
	return None[Pair[A, B]]()
}

// ZipWithOption combines two values with fn when both are present.
func ZipWithOption[A, B, C any](a Option[A], b Option[B], fn func(A, B) C) Option[C] {
	requireFunc(fn != nil, "ZipWithOption")
	if a.some && b.some {
		return Some(fn(a.value, b.value))
	}
	return None[C]()
}

// UnzipOption splits an Option of a pair into a pair of Options.
func UnzipOption[A, B any](o Option[Pair[A, B]]) (Option[A], Option[B]) {
	if o.some {
		return Some(o.value.Fst), Some(o.value.Snd)
	}
	return None[A](), None[B]()
}

// FlattenOption removes one level of nesting.
func FlattenOption[T any](o Option[Option[T]]) Option[T] {
	if o.some {
		return o.value
	}
	return None[T]()
}

// Contains reports whether o holds a value equal to v.
func Contains[T comparable](o Option[T], v T) bool {
	return o.some && o.value == v
}
