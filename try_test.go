// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/adt"
)

func TestTryRecoversUnwrapPayload(t *testing.T) {
	r := adt.Try(func() int { return adt.Err[int]("boom").Unwrap() })
	require.True(t, r.IsErr())
	assert.Equal(t, "boom", r.UnwrapErr())
}

func TestTrySuccess(t *testing.T) {
	r := adt.Try(func() int { return adt.Ok[string](42).Unwrap() })
	assert.Equal(t, 42, r.Unwrap())
}

func TestTryRecoversEmptyAccess(t *testing.T) {
	r := adt.Try(func() int { return adt.None[int]().Unwrap() })
	err, ok := r.UnwrapErr().(error)
	require.True(t, ok)
	assert.ErrorIs(t, err, adt.ErrEmptyAccess)
}

func TestTryAsMatchingType(t *testing.T) {
	sentinel := errors.New("sentinel")
	r := adt.TryAs[error](func() string { return adt.Err[string](sentinel).Unwrap() })
	assert.ErrorIs(t, r.UnwrapErr(), sentinel)
}

func TestTryAsRepanicsOtherTypes(t *testing.T) {
	assert.PanicsWithValue(t, 7, func() {
		adt.TryAs[string](func() int { return adt.Err[int](7).Unwrap() })
	})
}

func TestBracketSuccess(t *testing.T) {
	var acquired, released bool

	result := adt.Bracket(
		func() adt.Result[int, string] {
			acquired = true
			return adt.Ok[string](42)
		},
		func(int) { released = true },
		func(r int) adt.Result[int, string] { return adt.Ok[string](r * 2) },
	)

	assert.Equal(t, 84, result.Unwrap())
	assert.True(t, acquired, "resource not acquired")
	assert.True(t, released, "resource not released")
}

func TestBracketUseError(t *testing.T) {
	var released bool

	result := adt.Bracket(
		func() adt.Result[int, string] { return adt.Ok[string](1) },
		func(int) { released = true },
		func(int) adt.Result[int, string] { return adt.Err[int]("use failed") },
	)

	assert.Equal(t, "use failed", result.UnwrapErr())
	assert.True(t, released, "release must run when use fails")
}

func TestBracketUsePanics(t *testing.T) {
	var released bool

	assert.PanicsWithValue(t, "boom", func() {
		adt.Bracket(
			func() adt.Result[int, string] { return adt.Ok[string](1) },
			func(int) { released = true },
			func(int) adt.Result[int, string] { panic("boom") },
		)
	})
	assert.True(t, released, "release must run when use panics")
}

func TestBracketAcquireError(t *testing.T) {
	var used, released bool

	result := adt.Bracket(
		func() adt.Result[int, string] { return adt.Err[int]("acquire failed") },
		func(int) { released = true },
		func(int) adt.Result[int, string] { used = true; return adt.Ok[string](0) },
	)

	assert.Equal(t, "acquire failed", result.UnwrapErr())
	assert.False(t, used)
	assert.False(t, released)
}
