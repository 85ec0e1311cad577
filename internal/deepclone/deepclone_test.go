// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package deepclone_test

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/adt/internal/deepclone"
)

type selfCloner struct {
	n      int
	cloned *bool
}

func (s selfCloner) Clone() selfCloner {
	*s.cloned = true
	return selfCloner{n: s.n + 1, cloned: s.cloned}
}

type checkedCloner struct{ fail bool }

func (c checkedCloner) Cloned() (checkedCloner, error) {
	if c.fail {
		return checkedCloner{}, deepclone.ErrNotCloneable
	}
	return c, nil
}

func TestCloneScalars(t *testing.T) {
	v, err := deepclone.Clone(42)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	s, err := deepclone.Clone("x")
	require.NoError(t, err)
	assert.Equal(t, "x", s)
}

func TestCloneNilInterface(t *testing.T) {
	var e error
	v, err := deepclone.Clone(e)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestCloneDeep(t *testing.T) {
	in := map[string][]int{"a": {1, 2}}
	out, err := deepclone.Clone(in)
	require.NoError(t, err)
	out["a"][0] = 9
	assert.Equal(t, 1, in["a"][0])
}

func TestCloneHooks(t *testing.T) {
	var called bool
	out, err := deepclone.Clone(selfCloner{n: 1, cloned: &called})
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, 2, out.n)

	_, err = deepclone.Clone(checkedCloner{fail: true})
	assert.ErrorIs(t, err, deepclone.ErrNotCloneable)
}

func TestCheck(t *testing.T) {
	x := 1
	tests := []struct {
		name string
		v    any
		ok   bool
	}{
		{"nil", nil, true},
		{"int", 1, true},
		{"nil func", (func())(nil), true},
		{"func", func() {}, false},
		{"chan", make(chan int), false},
		{"unsafe pointer", unsafe.Pointer(&x), false},
		{"func in slice", []func(){func() {}}, false},
		{"func in map value", map[string]any{"k": func() {}}, false},
		{"func behind pointer", &struct{ F func() }{F: func() {}}, false},
		{"func in unexported field", struct{ f func() }{f: func() {}}, false},
		{"plain struct", struct{ A []int }{A: []int{1}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := deepclone.Check(tt.v)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, deepclone.ErrNotCloneable)
			}
		})
	}
}

func TestCheckNamesPath(t *testing.T) {
	type inner struct{ Hook func() }
	type outer struct{ In []inner }
	err := deepclone.Check(outer{In: []inner{{}, {Hook: func() {}}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "$.In[1].Hook")
}

func TestCheckSharedBackingArray(t *testing.T) {
	type views struct{ A, B []any }
	s := []any{1, func() {}}

	// The short view is walked first; the longer one must still be checked.
	err := deepclone.Check(views{A: s[:1], B: s})
	require.ErrorIs(t, err, deepclone.ErrNotCloneable)
	assert.Contains(t, err.Error(), "$.B[1]")

	err = deepclone.Check(views{A: s, B: s[:1]})
	require.ErrorIs(t, err, deepclone.ErrNotCloneable)
	assert.Contains(t, err.Error(), "$.A[1]")

	assert.NoError(t, deepclone.Check(views{A: s[:1], B: s[:1]}))
}

func TestCheckFirstFieldAddress(t *testing.T) {
	type inner struct{ N int }
	type outer struct {
		In   inner
		Hook func()
	}
	o := &outer{Hook: func() {}}

	// &o.In and o share an address but are different values.
	err := deepclone.Check(struct {
		P *inner
		Q *outer
	}{P: &o.In, Q: o})
	require.ErrorIs(t, err, deepclone.ErrNotCloneable)
	assert.Contains(t, err.Error(), "Hook")
}
