// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/adt"
	"code.hybscloud.com/adt/vec"
)

func TestWindows(t *testing.T) {
	got, err := vec.Windows([]int{1, 2, 3, 4, 5}, 3)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2, 3}, {2, 3, 4}, {3, 4, 5}}, got)

	got, err = vec.Windows([]int{1, 2}, 3)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = vec.Windows([]int{1, 2, 3}, 0)
	assert.ErrorIs(t, err, adt.ErrArgument)
	_, err = vec.Windows([]int{1, 2, 3}, -1)
	assert.ErrorIs(t, err, adt.ErrArgument)
}

func TestWindowsAreCapped(t *testing.T) {
	s := []int{1, 2, 3}
	w, err := vec.Windows(s, 2)
	require.NoError(t, err)
	_ = append(w[0], 99)
	assert.Equal(t, []int{1, 2, 3}, s, "appending to a window must not clobber the source")
}

func TestChunks(t *testing.T) {
	tests := []struct {
		name  string
		in    []int
		n     int
		front [][]int
		back  [][]int
	}{
		{"even", []int{1, 2, 3, 4}, 2, [][]int{{1, 2}, {3, 4}}, [][]int{{3, 4}, {1, 2}}},
		{"uneven", []int{1, 2, 3, 4, 5}, 2, [][]int{{1, 2}, {3, 4}, {5}}, [][]int{{4, 5}, {2, 3}, {1}}},
		{"oversized", []int{1, 2}, 5, [][]int{{1, 2}}, [][]int{{1, 2}}},
		{"empty", []int{}, 3, [][]int{}, [][]int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			front, err := vec.Chunks(tt.in, tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.front, front)

			back, err := vec.RChunks(tt.in, tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.back, back)
		})
	}

	_, err := vec.Chunks([]int{1}, 0)
	assert.ErrorIs(t, err, adt.ErrArgument)
	_, err = vec.RChunks([]int{1}, 0)
	assert.ErrorIs(t, err, adt.ErrArgument)
}

func TestChunksExact(t *testing.T) {
	chunks, rest, err := vec.ChunksExact([]int{1, 2, 3, 4, 5}, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2}, {3, 4}}, chunks)
	assert.Equal(t, []int{5}, rest)

	_, _, err = vec.ChunksExact([]int{1}, 0)
	assert.ErrorIs(t, err, adt.ErrArgument)
}

func TestSplitAt(t *testing.T) {
	s := []int{1, 2, 3, 4, 5}

	left, right, err := vec.SplitAt(s, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, left)
	assert.Equal(t, []int{3, 4, 5}, right)

	left, right, err = vec.SplitAt(s, 5)
	require.NoError(t, err)
	assert.Equal(t, s, left)
	assert.Empty(t, right)

	_, _, err = vec.SplitAt(s, 6)
	assert.ErrorIs(t, err, adt.ErrArgument)
	_, _, err = vec.SplitAt(s, -1)
	assert.ErrorIs(t, err, adt.ErrArgument)
}

func TestSplitFirstLast(t *testing.T) {
	first := vec.SplitFirst([]string{"a", "b", "c"})
	require.True(t, first.IsSome())
	head, tail := first.Unwrap().Unpack()
	assert.Equal(t, "a", head)
	assert.Equal(t, []string{"b", "c"}, tail)

	last := vec.SplitLast([]string{"a", "b", "c"})
	end, init := last.Unwrap().Unpack()
	assert.Equal(t, "c", end)
	assert.Equal(t, []string{"a", "b"}, init)

	assert.True(t, vec.SplitFirst([]int{}).IsNone())
	assert.True(t, vec.SplitLast([]int(nil)).IsNone())
}

func TestSplit(t *testing.T) {
	isZero := func(x int) bool { return x == 0 }
	assert.Equal(t, [][]int{{1, 2}, {3}, {}, {4}}, vec.Split([]int{1, 2, 0, 3, 0, 0, 4}, isZero))
	assert.Equal(t, [][]int{{}, {}}, vec.Split([]int{0}, isZero))
	assert.Equal(t, [][]int{{}}, vec.Split([]int{}, isZero))
}

func TestGroupBy(t *testing.T) {
	same := func(prev, curr int) bool { return prev == curr }
	assert.Equal(t, [][]int{{1, 1}, {2}, {3, 3, 3}, {1}}, vec.GroupBy([]int{1, 1, 2, 3, 3, 3, 1}, same))

	ascending := func(prev, curr int) bool { return prev < curr }
	assert.Equal(t, [][]int{{1, 2, 3}, {2, 5}, {1}}, vec.GroupBy([]int{1, 2, 3, 2, 5, 1}, ascending))

	assert.Nil(t, vec.GroupBy([]int{}, same))
}
