// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package adt provides the algebraic containers Option and Result.
//
// [Option] represents a value or nothing; [Result] represents a success
// value or a failure value. Both are small immutable structs passed by
// value. Construction goes through named constructors, transformation
// through methods and free functions, and extraction through Unwrap-style
// methods or the non-panicking Get accessors.
//
// # Methods and Free Functions
//
// Go methods cannot introduce type parameters, so every operation whose
// output type differs from the receiver is a free function named after the
// container it consumes:
//
//   - Methods: [Option.Unwrap], [Option.Filter], [Option.Xor], [Result.Ok], ...
//   - Free functions: [MapOption], [AndThenOption], [ZipOption], [MapResult],
//     [MapErr], [AndThenResult], [TransposeOption], [TransposeResult], ...
//
// # Option
//
//   - [Some], [SomeUnit], [None], [FromOk], [FromPtr]: Constructors
//   - [Option.IsSome], [Option.IsNone], [Option.Get]: Queries
//   - [Option.Unwrap], [Option.Expect]: Extraction (panics on None)
//   - [Option.UnwrapOr], [Option.UnwrapOrElse], [Option.UnwrapOrDefault]: Extraction with fallback
//   - [Option.And], [Option.Or], [Option.OrElse], [Option.Xor], [Option.Filter]: Combinators
//   - [Option.Take], [Option.Replace], [Option.Insert], [Option.GetOrInsert]: In-place mutation
//   - [ZipOption], [ZipWithOption], [UnzipOption], [FlattenOption]: Structural
//   - [OkOr], [OkOrElse], [TransposeOption]: Conversion to Result
//
// Take and Replace are the only state transitions: both return the prior
// state as a fresh Option.
//
// # Result
//
//   - [Ok], [Err], [OkUnit], [ErrUnit], [FromPair]: Constructors
//   - [Result.IsOk], [Result.IsErr], [Result.Get], [Result.GetErr]: Queries
//   - [Result.Unwrap], [Result.UnwrapErr]: Extraction
//   - [Result.And], [Result.Or], [Result.OrElse], [AndThenResult]: Short-circuit combinators
//   - [Result.Ok], [Result.Err], [TransposeResult]: Conversion to Option
//   - [IntoOk], [IntoErr]: Extraction when the other channel is [Never]
//   - [Unpack]: Conversion back to a Go (value, error) pair
//
// A Result never changes channel after construction.
//
// # Failure
//
// Extraction from the wrong channel panics:
//
//   - Option.Unwrap and Option.Expect panic with an error wrapping [ErrEmptyAccess].
//   - Result.Unwrap panics with the Err payload itself, and Result.UnwrapErr
//     with the Ok payload itself, so the original value reaches whoever
//     recovers it. [Try] and [TryAs] convert such panics back into a Result.
//
// Cloning through [Option.Cloned] and [Result.Cloned] returns an error
// wrapping [ErrNotCloneable] when the payload holds functions or channels.
//
// # Example
//
//	raw, ok := env["PORT"]
//	port := adt.AndThenOption(adt.FromOk(raw, ok), func(s string) adt.Option[int] {
//		n, err := strconv.Atoi(s)
//		return adt.FromOk(n, err == nil)
//	}).UnwrapOr(8080)
package adt
