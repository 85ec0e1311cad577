// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt

// Recovery and resource-safety helpers. Unwrap on an Err panics with the
// error payload itself; these helpers turn such panics back into values.

// Try runs fn and captures a panic as Err holding the panic value.
// Err(e).Unwrap() inside fn therefore surfaces as Err(e) unchanged.
func Try[T any](fn func() T) (r Result[T, any]) {
	requireFunc(fn != nil, "Try")
	defer func() {
		if p := recover(); p != nil {
			r = Err[T, any](p)
		}
	}()
	return Ok[any](fn())
}

// TryAs is Try restricted to panics whose value has type E.
// Any other panic is re-raised unchanged.
func TryAs[E, T any](fn func() T) (r Result[T, E]) {
	requireFunc(fn != nil, "TryAs")
	defer func() {
		if p := recover(); p != nil {
			e, ok := p.(E)
			if !ok {
				panic(p)
			}
			r = Err[T](e)
		}
	}()
	return Ok[E](fn())
}

// Bracket provides exception-safe resource acquisition and release:
// acquire → use → release, where release runs whenever acquire succeeded,
// even if use returns Err or panics.
func Bracket[R, T, E any](
	acquire func() Result[R, E],
	release func(R),
	use func(R) Result[T, E],
) Result[T, E] {
	requireFunc(acquire != nil && release != nil && use != nil, "Bracket")
	res := acquire()
	if res.isErr {
		return Err[T](res.err)
	}
	defer release(res.value)
	return use(res.value)
}
