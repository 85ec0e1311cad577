// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package vec provides slice utilities modeled on a systems language's
// slice API: windowing, chunking, splitting, deduplication, rotation,
// zipping and aggregation.
//
// Functions are generic over S ~[]E and never modify a slice's contents
// unless documented as in-place. Functions that change a slice's length
// take a *S. Sub-slices returned by Windows, Chunks, SplitAt and friends
// share memory with the input and are capped, so appending to one never
// overwrites its neighbors.
//
// Lookups that may find nothing return an [adt.Option]. Out-of-range sizes
// and indices return an error wrapping [adt.ErrArgument], and the input is
// left untouched.
package vec
