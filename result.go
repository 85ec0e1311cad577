// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt

import "fmt"

// Result represents either success (Ok) or failure (Err).
// The channel is fixed at construction; a Result is never mutated.
// The zero value is Ok holding the zero value of T.
type Result[T, E any] struct {
	isErr bool
	value T
	err   E
}

// Ok creates a success Result.
func Ok[E, T any](v T) Result[T, E] {
	return Result[T, E]{value: v}
}

// Err creates a failure Result.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{isErr: true, err: e}
}

// OkUnit creates a success Result with no meaningful payload.
func OkUnit[E any]() Result[Unit, E] {
	return Result[Unit, E]{}
}

// ErrUnit creates a failure Result with no meaningful payload.
func ErrUnit[T any]() Result[T, Unit] {
	return Result[T, Unit]{isErr: true}
}

// FromPair creates a Result from a Go (value, error) return.
// A nil err yields Ok(v); otherwise Err(err) and v is dropped.
func FromPair[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[error](v)
}

// Unpack converts a Result back into a Go (value, error) return.
func Unpack[T any](r Result[T, error]) (T, error) {
	if r.isErr {
		var zero T
		return zero, r.err
	}
	return r.value, nil
}

// IsOk returns true if this is an Ok value.
func (r Result[T, E]) IsOk() bool {
	return !r.isErr
}

// IsErr returns true if this is an Err value.
func (r Result[T, E]) IsErr() bool {
	return r.isErr
}

// IsOkAnd returns true if this is Ok and the value satisfies pred.
func (r Result[T, E]) IsOkAnd(pred func(T) bool) bool {
	requireFunc(pred != nil, "Result.IsOkAnd")
	return !r.isErr && pred(r.value)
}

// IsErrAnd returns true if this is Err and the error satisfies pred.
func (r Result[T, E]) IsErrAnd(pred func(E) bool) bool {
	requireFunc(pred != nil, "Result.IsErrAnd")
	return r.isErr && pred(r.err)
}

// Get returns the Ok value and true, or zero and false.
func (r Result[T, E]) Get() (T, bool) {
	if r.isErr {
		var zero T
		return zero, false
	}
	return r.value, true
}

// GetErr returns the Err value and true, or zero and false.
func (r Result[T, E]) GetErr() (E, bool) {
	if !r.isErr {
		var zero E
		return zero, false
	}
	return r.err, true
}

// Unwrap returns the Ok value.
// If this is Err, it panics with the contained error value itself, so a
// recover further up the stack observes the original payload. An Err holding
// a nil interface is the exception: the runtime replaces a nil panic value
// with a *runtime.PanicNilError, which is what recover then returns.
func (r Result[T, E]) Unwrap() T {
	if r.isErr {
		panic(r.err)
	}
	return r.value
}

// UnwrapErr returns the Err value.
// If this is Ok, it panics with the contained success value itself, subject
// to the same nil-interface caveat as Unwrap.
func (r Result[T, E]) UnwrapErr() E {
	if !r.isErr {
		panic(r.value)
	}
	return r.err
}

// Expect returns the Ok value, or panics with an error reading
// "msg: <err>" that wraps ErrEmptyAccess.
func (r Result[T, E]) Expect(msg string) T {
	if r.isErr {
		expectFailed(fmt.Sprintf("%s: %v", msg, r.err))
	}
	return r.value
}

// ExpectErr returns the Err value, or panics with an error reading
// "msg: <value>" that wraps ErrEmptyAccess.
func (r Result[T, E]) ExpectErr(msg string) E {
	if !r.isErr {
		expectFailed(fmt.Sprintf("%s: %v", msg, r.value))
	}
	return r.err
}

// UnwrapOr returns the Ok value or fallback.
func (r Result[T, E]) UnwrapOr(fallback T) T {
	if r.isErr {
		return fallback
	}
	return r.value
}

// UnwrapOrElse returns the Ok value or computes one from the error.
func (r Result[T, E]) UnwrapOrElse(fn func(E) T) T {
	requireFunc(fn != nil, "Result.UnwrapOrElse")
	if r.isErr {
		return fn(r.err)
	}
	return r.value
}

// UnwrapOrDefault returns the Ok value or the zero value of T.
func (r Result[T, E]) UnwrapOrDefault() T {
	return r.value
}

// And returns res if the receiver is Ok, otherwise the receiver's Err.
func (r Result[T, E]) And(res Result[T, E]) Result[T, E] {
	if r.isErr {
		return r
	}
	return res
}

// Or returns the receiver if it is Ok, otherwise res.
func (r Result[T, E]) Or(res Result[T, E]) Result[T, E] {
	if r.isErr {
		return res
	}
	return r
}

// OrElse returns the receiver if it is Ok, otherwise fn applied to the error.
func (r Result[T, E]) OrElse(fn func(E) Result[T, E]) Result[T, E] {
	requireFunc(fn != nil, "Result.OrElse")
	if r.isErr {
		return fn(r.err)
	}
	return r
}

// Inspect calls fn with the Ok value if present and returns the receiver.
func (r Result[T, E]) Inspect(fn func(T)) Result[T, E] {
	requireFunc(fn != nil, "Result.Inspect")
	if !r.isErr {
		fn(r.value)
	}
	return r
}

// InspectErr calls fn with the Err value if present and returns the receiver.
func (r Result[T, E]) InspectErr(fn func(E)) Result[T, E] {
	requireFunc(fn != nil, "Result.InspectErr")
	if r.isErr {
		fn(r.err)
	}
	return r
}

// Ok converts to an Option of the success value, discarding any error.
func (r Result[T, E]) Ok() Option[T] {
	if r.isErr {
		return None[T]()
	}
	return Some(r.value)
}

// Err converts to an Option of the error value, discarding any success.
func (r Result[T, E]) Err() Option[E] {
	if r.isErr {
		return Some(r.err)
	}
	return None[E]()
}

// Iter returns a single-use iterator over the Ok value, if any.
func (r Result[T, E]) Iter() *Iter[T] {
	return newIter(r.value, !r.isErr)
}

// Cloned returns a Result holding a deep copy of the active channel.
// Fails with an error wrapping ErrNotCloneable if that payload cannot be copied.
func (r Result[T, E]) Cloned() (Result[T, E], error) {
	if r.isErr {
		e, err := cloneValue(r.err)
		if err != nil {
			return Result[T, E]{}, err
		}
		return Err[T](e), nil
	}
	v, err := cloneValue(r.value)
	if err != nil {
		return Result[T, E]{}, err
	}
	return Ok[E](v), nil
}

// String renders "Ok(<value>)" or "Err(<error>)".
func (r Result[T, E]) String() string {
	if r.isErr {
		return fmt.Sprintf("Err(%v)", r.err)
	}
	return fmt.Sprintf("Ok(%v)", r.value)
}

// GoString renders the active payload with %#v.
func (r Result[T, E]) GoString() string {
	if r.isErr {
		return fmt.Sprintf("Err(%#v)", r.err)
	}
	return fmt.Sprintf("Ok(%#v)", r.value)
}

// MatchResult pattern matches on the Result, calling onOk or onErr.
func MatchResult[T, E, U any](r Result[T, E], onOk func(T) U, onErr func(E) U) U {
	if r.isErr {
		return onErr(r.err)
	}
	return onOk(r.value)
}

// MapResult applies fn to the Ok value, leaving an Err untouched.
func MapResult[T, E, U any](r Result[T, E], fn func(T) U) Result[U, E] {
	requireFunc(fn != nil, "MapResult")
	if r.isErr {
		return Err[U](r.err)
	}
	return Ok[E](fn(r.value))
}

// MapErr applies fn to the Err value, leaving an Ok untouched.
func MapErr[T, E, F any](r Result[T, E], fn func(E) F) Result[T, F] {
	requireFunc(fn != nil, "MapErr")
	if r.isErr {
		return Err[T](fn(r.err))
	}
	return Ok[F](r.value)
}

// MapResultOr applies fn to the Ok value, or returns fallback.
func MapResultOr[T, E, U any](r Result[T, E], fallback U, fn func(T) U) U {
	requireFunc(fn != nil, "MapResultOr")
	if r.isErr {
		return fallback
	}
	return fn(r.value)
}

// MapResultOrElse applies fn to the Ok value, or fallback to the Err value.
func MapResultOrElse[T, E, U any](r Result[T, E], fallback func(E) U, fn func(T) U) U {
	requireFunc(fn != nil && fallback != nil, "MapResultOrElse")
	if r.isErr {
		return fallback(r.err)
	}
	return fn(r.value)
}

// AndResult returns res if r is Ok, otherwise r's Err. Unlike Result.And
// the success types may differ.
func AndResult[T, U, E any](r Result[T, E], res Result[U, E]) Result[U, E] {
	if r.isErr {
		return Err[U](r.err)
	}
	return res
}

// AndThenResult chains a fallible operation sharing the error type.
func AndThenResult[T, U, E any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	requireFunc(fn != nil, "AndThenResult")
	if r.isErr {
		return Err[U](r.err)
	}
	return fn(r.value)
}

// OrElseResult recovers from an Err with fn, which may change the error type.
func OrElseResult[T, E, F any](r Result[T, E], fn func(E) Result[T, F]) Result[T, F] {
	requireFunc(fn != nil, "OrElseResult")
	if r.isErr {
		return fn(r.err)
	}
	return Ok[F](r.value)
}

// FlattenResult removes one level of nesting.
func FlattenResult[T, E any](r Result[Result[T, E], E]) Result[T, E] {
	if r.isErr {
		return Err[T](r.err)
	}
	return r.value
}

// IntoOk extracts the value of a Result whose error channel is Never.
// Panics with an error wrapping ErrEmptyAccess if an Err was constructed anyway.
func IntoOk[T any](r Result[T, Never]) T {
	if r.isErr {
		emptyAccess("called IntoOk on an Err value")
	}
	return r.value
}

// IntoErr extracts the error of a Result whose success channel is Never.
// Panics with an error wrapping ErrEmptyAccess if the Result is Ok.
func IntoErr[E any](r Result[Never, E]) E {
	if !r.isErr {
		emptyAccess("called IntoErr on an Ok value")
	}
	return r.err
}
