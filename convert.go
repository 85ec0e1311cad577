// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt

// Conversions between Option and Result. Result.Ok and Result.Err cover the
// Result → Option direction.

// OkOr converts Some(v) to Ok(v) and None to Err(e).
func OkOr[T, E any](o Option[T], e E) Result[T, E] {
	if o.some {
		return Ok[E](o.value)
	}
	return Err[T](e)
}

// OkOrElse converts Some(v) to Ok(v) and None to Err(fn()).
// fn is only called for None.
func OkOrElse[T, E any](o Option[T], fn func() E) Result[T, E] {
	requireFunc(fn != nil, "OkOrElse")
	if o.some {
		return Ok[E](o.value)
	}
	return Err[T](fn())
}

// TransposeOption swaps an Option of a Result into a Result of an Option:
//
//	Some(Ok(v))  → Ok(Some(v))
//	Some(Err(e)) → Err(e)
//	None         → Ok(None)
func TransposeOption[T, E any](o Option[Result[T, E]]) Result[Option[T], E] {
	if !o.some {
		return Ok[E](None[T]())
	}
	if o.value.isErr {
		return Err[Option[T]](o.value.err)
	}
	return Ok[E](Some(o.value.value))
}

// TransposeResult swaps a Result of an Option into an Option of a Result:
//
//	Ok(None)    → None
//	Ok(Some(v)) → Some(Ok(v))
//	Err(e)      → Some(Err(e))
func TransposeResult[T, E any](r Result[Option[T], E]) Option[Result[T, E]] {
	if r.isErr {
		return Some(Err[T](r.err))
	}
	if !r.value.some {
		return None[Result[T, E]]()
	}
	return Some(Ok[E](r.value.value))
}
