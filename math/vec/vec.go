// Package vec provides the flat-slice "tensor" operations that back every
// higher-level container in this module (polynomials, secret keys,
// ciphertexts). It deliberately does not wrap []T in a struct: per the
// container-genericity design note, an owning, borrowed-shared or
// borrowed-exclusive view all collapse to a plain Go slice, and the
// contract is the same regardless of which one a caller holds.
package vec

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/sp301415/glwe-core/math/num"
)

// AssertLenEq panics with a DimensionMismatch-style message if the given
// lengths are not all equal.
func AssertLenEq(lens ...int) {
	if len(lens) == 0 {
		return
	}
	n := lens[0]
	for _, l := range lens[1:] {
		if l != n {
			panic(fmt.Sprintf("vec: dimension mismatch: lengths %v", lens))
		}
	}
}

// Fill sets every element of v to x.
func Fill[T any](v []T, x T) {
	for i := range v {
		v[i] = x
	}
}

// CopyAssign copies src into dst. Panics if lengths differ.
func CopyAssign[T any](dst, src []T) {
	AssertLenEq(len(dst), len(src))
	copy(dst, src)
}

// AddAssign computes dst[i] += src[i] with wrapping semantics.
func AddAssign[T num.NumericTorus](dst, src []T) {
	AssertLenEq(len(dst), len(src))
	for i := range dst {
		dst[i] += src[i]
	}
}

// SubAssign computes dst[i] -= src[i] with wrapping semantics.
func SubAssign[T num.NumericTorus](dst, src []T) {
	AssertLenEq(len(dst), len(src))
	for i := range dst {
		dst[i] -= src[i]
	}
}

// NegAssign computes dst[i] = -dst[i] with wrapping semantics.
func NegAssign[T num.NumericTorus](dst []T) {
	for i := range dst {
		dst[i] = -dst[i]
	}
}

// ReverseAssign writes the reversal of src into dst. Panics if lengths
// differ.
func ReverseAssign[T any](src, dst []T) {
	AssertLenEq(len(dst), len(src))
	copy(dst, src)
	slices.Reverse(dst)
}

// RotateRight rotates v right by r positions in place (r may exceed
// len(v) or be negative; it is reduced mod len(v) first, so a negative
// r rotates left).
func RotateRight[T any](v []T, r int) {
	n := len(v)
	if n == 0 {
		return
	}
	r %= n
	if r < 0 {
		r += n
	}
	slices.Reverse(v)
	slices.Reverse(v[:r])
	slices.Reverse(v[r:])
}

// RotateLeft rotates v left by r positions in place.
func RotateLeft[T any](v []T, r int) {
	n := len(v)
	if n == 0 {
		return
	}
	r %= n
	if r < 0 {
		r += n
	}
	RotateRight(v, n-r)
}
