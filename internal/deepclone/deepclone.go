// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package deepclone is the deep-copy capability behind Option.Cloned and
// Result.Cloned.
//
// A value is copied in one of three ways, checked in order:
//
//   - it has a method Cloned() (V, error), as the adt containers do;
//   - it has a method Clone() V;
//   - otherwise it is walked once to reject non-cloneable members and then
//     copied with github.com/huandu/go-clone.
//
// Functions, channels and unsafe pointers are not cloneable. Nil values of
// those kinds are, since a nil carries no state to share.
package deepclone

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/huandu/go-clone"
)

// ErrNotCloneable reports a value that contains a non-cloneable member.
var ErrNotCloneable = errors.New("deepclone: not cloneable")

// Clone returns a deep copy of v.
func Clone[V any](v V) (V, error) {
	switch c := any(v).(type) {
	case interface{ Cloned() (V, error) }:
		return c.Cloned()
	case interface{ Clone() V }:
		return c.Clone(), nil
	}
	if err := Check(v); err != nil {
		var zero V
		return zero, err
	}
	out := clone.Slowly(v)
	if out == nil {
		var zero V
		return zero, nil
	}
	return out.(V), nil
}

// Check reports whether v can be deep-copied without sharing state.
// The returned error wraps ErrNotCloneable and names the offending path.
func Check(v any) error {
	if v == nil {
		return nil
	}
	w := walker{
		seen:   make(map[ref]struct{}),
		slices: make(map[ref]int),
	}
	return w.walk(reflect.ValueOf(v), "$")
}

// ref identifies a visited address. The type is part of the key since a
// struct and its first field share an address.
type ref struct {
	p uintptr
	t reflect.Type
}

type walker struct {
	seen map[ref]struct{}
	// slices holds the longest length walked per backing array start.
	slices map[ref]int
}

func (w *walker) walk(v reflect.Value, path string) error {
	switch v.Kind() {
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		if v.IsNil() {
			return nil
		}
		return fmt.Errorf("%w: %s at %s", ErrNotCloneable, v.Kind(), path)
	case reflect.Pointer:
		if v.IsNil() {
			return nil
		}
		if w.visit(ref{v.Pointer(), v.Type()}) {
			return nil
		}
		return w.walk(v.Elem(), "(*"+path+")")
	case reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return w.walk(v.Elem(), path)
	case reflect.Struct:
		t := v.Type()
		for i := range v.NumField() {
			if err := w.walk(v.Field(i), path+"."+t.Field(i).Name); err != nil {
				return err
			}
		}
	case reflect.Slice:
		if v.IsNil() {
			return nil
		}
		if v.Len() > 0 && w.visitSlice(ref{v.Pointer(), v.Type().Elem()}, v.Len()) {
			return nil
		}
		fallthrough
	case reflect.Array:
		for i := range v.Len() {
			if err := w.walk(v.Index(i), fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
	case reflect.Map:
		if v.IsNil() {
			return nil
		}
		if w.visit(ref{v.Pointer(), v.Type()}) {
			return nil
		}
		it := v.MapRange()
		for it.Next() {
			key := fmt.Sprintf("%s[%v]", path, it.Key())
			if err := w.walk(it.Key(), key); err != nil {
				return err
			}
			if err := w.walk(it.Value(), key); err != nil {
				return err
			}
		}
	}
	return nil
}

// visit records r and reports whether it had been seen before.
func (w *walker) visit(r ref) bool {
	if _, ok := w.seen[r]; ok {
		return true
	}
	w.seen[r] = struct{}{}
	return false
}

// visitSlice reports whether a view of at least n elements starting at r
// has already been walked, and records n otherwise.
func (w *walker) visitSlice(r ref, n int) bool {
	if w.slices[r] >= n {
		return true
	}
	w.slices[r] = n
	return false
}
