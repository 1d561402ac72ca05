package glwe

import (
	"fmt"

	"github.com/sp301415/glwe-core/math/num"
)

// Plaintext is a single torus-word scalar message, the unit GGSW
// encrypts (§4.6).
type Plaintext[T num.NumericTorus] struct {
	Value T
}

// PlaintextList is a flat sequence of torus words, interpreted either as
// one monolithic encoded polynomial (GLWE encryption, §4.5) or sliced
// into equal-size sublists (§4.7).
type PlaintextList[T num.NumericTorus] struct {
	Value []T
}

// NewPlaintextList allocates a zeroed PlaintextList of the given length.
func NewPlaintextList[T num.NumericTorus](length int) PlaintextList[T] {
	return PlaintextList[T]{Value: make([]T, length)}
}

// Len returns the total number of torus words carried.
func (l PlaintextList[T]) Len() int { return len(l.Value) }

// SublistIter returns the equal-size chunks of length k, reading left to
// right. Panics if Len() is not divisible by k.
func (l PlaintextList[T]) SublistIter(k int) []PlaintextList[T] {
	if k <= 0 || len(l.Value)%k != 0 {
		panic(fmt.Sprintf("glwe: plaintext list length %d not divisible by sublist size %d", len(l.Value), k))
	}
	count := len(l.Value) / k
	out := make([]PlaintextList[T], count)
	for i := 0; i < count; i++ {
		out[i] = PlaintextList[T]{Value: l.Value[i*k : (i+1)*k]}
	}
	return out
}

// SublistIterMut is the mutable-view form of [PlaintextList.SublistIter]:
// the returned sublists alias l's storage.
func (l PlaintextList[T]) SublistIterMut(k int) []PlaintextList[T] {
	return l.SublistIter(k)
}
