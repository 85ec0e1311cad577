// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt

import "fmt"

// Pair holds two values.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// MakePair creates a Pair with full type inference.
func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{Fst: a, Snd: b}
}

// Unpack returns both components.
func (p Pair[A, B]) Unpack() (A, B) {
	return p.Fst, p.Snd
}

// Swap returns the pair with its components exchanged.
func (p Pair[A, B]) Swap() Pair[B, A] {
	return Pair[B, A]{Fst: p.Snd, Snd: p.Fst}
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.Fst, p.Snd)
}

// Unit is the payload of containers that carry no value.
type Unit = struct{}

// Never marks a channel that is uninhabited by convention. Go cannot forbid
// constructing it, so IntoOk and IntoErr check the assumption at run time.
type Never struct {
	_ [0]func()
}
