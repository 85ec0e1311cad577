// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt

import (
	"errors"
	"fmt"
)

// Sentinel errors. Callers branch on them with errors.Is; panics raised by
// extraction methods carry errors that wrap one of these.
var (
	// ErrEmptyAccess reports an extraction from the absent or wrong channel:
	// Unwrap or Expect on None, Expect on Err, ExpectErr on Ok, and IntoOk or
	// IntoErr on a channel assumed to be uninhabited.
	ErrEmptyAccess = errors.New("adt: empty access")

	// ErrInvariant reports structural misuse that the type system cannot rule
	// out, such as passing a nil function to a combinator that must call it.
	ErrInvariant = errors.New("adt: invariant violation")

	// ErrArgument reports an out-of-range size or index passed to a sequence
	// utility. No mutation is performed before it is returned.
	ErrArgument = errors.New("adt: argument out of range")

	// ErrNotCloneable reports a payload that cannot be deep-copied.
	ErrNotCloneable = errors.New("adt: value is not cloneable")
)

// accessError carries a caller-supplied Expect message.
type accessError struct {
	msg string
}

func (e *accessError) Error() string { return e.msg }

func (e *accessError) Unwrap() error { return ErrEmptyAccess }

// emptyAccess panics with an ErrEmptyAccess-wrapping error built from format.
func emptyAccess(format string, args ...any) {
	panic(fmt.Errorf("%w: "+format, append([]any{ErrEmptyAccess}, args...)...))
}

// expectFailed panics with msg as the error text.
func expectFailed(msg string) {
	panic(&accessError{msg: msg})
}

// requireFunc panics with ErrInvariant unless present. Combinators check
// their function arguments up front so a nil function fails in every state,
// not only in the state that would have called it.
func requireFunc(present bool, op string) {
	if !present {
		panic(fmt.Errorf("%w: %s called with a nil function", ErrInvariant, op))
	}
}

// ArgumentError returns an error wrapping ErrArgument.
func ArgumentError(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrArgument}, args...)...)
}
