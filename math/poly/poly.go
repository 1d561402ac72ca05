// Package poly implements negacyclic polynomial arithmetic over
// Z_{2^q}[X]/(X^N+1): the core algebra this module's ciphertexts and
// secret keys are built from (§4.3).
package poly

import (
	"fmt"

	"github.com/sp301415/glwe-core/math/num"
	"github.com/sp301415/glwe-core/math/vec"
)

// Poly is a polynomial of N coefficients in the torus word domain,
// representing P(X) = sum_i Coeffs[i] X^i inside Z_{2^q}[X]/(X^N+1).
//
// Monomial iteration visits Coeffs in order of increasing degree, i.e.
// Coeffs[i] is always the coefficient of X^i: no separate iterator type
// is needed, the slice index is the degree.
type Poly[T num.NumericTorus] struct {
	Coeffs []T
}

// NewPoly allocates a zeroed polynomial of the given size.
func NewPoly[T num.NumericTorus](degree int) Poly[T] {
	return Poly[T]{Coeffs: make([]T, degree)}
}

// Degree returns N, the fixed size of this polynomial.
func (p Poly[T]) Degree() int { return len(p.Coeffs) }

// Clear zeroes every coefficient.
func (p Poly[T]) Clear() { vec.Fill(p.Coeffs, T(0)) }

// CopyFrom overwrites p's coefficients with src's. Panics on size mismatch.
func (p Poly[T]) CopyFrom(src Poly[T]) {
	assertSizeEq(p.Degree(), src.Degree())
	vec.CopyAssign(p.Coeffs, src.Coeffs)
}

// Copy returns a newly allocated duplicate of p.
func (p Poly[T]) Copy() Poly[T] {
	out := NewPoly[T](p.Degree())
	out.CopyFrom(p)
	return out
}

// BinaryPoly is a polynomial over {false, true} of the same shape as
// Poly, used for secret key coefficients (§3).
type BinaryPoly struct {
	Coeffs []bool
}

// NewBinaryPoly allocates a zeroed (all-false) binary polynomial.
func NewBinaryPoly(degree int) BinaryPoly {
	return BinaryPoly{Coeffs: make([]bool, degree)}
}

// Degree returns N, the fixed size of this binary polynomial.
func (p BinaryPoly) Degree() int { return len(p.Coeffs) }

// PolyList is a concatenation of equal-size polynomials, stored as one
// flat buffer of length Count*Size, per the "flat storage with strided
// slicing" design note (§9): a PolyList is never a slice of
// heap-allocated Poly values, only a buffer plus a stride.
type PolyList[T num.NumericTorus] struct {
	Coeffs []T
	size   int
}

// NewPolyList allocates a zeroed PolyList of count polynomials of the
// given size.
func NewPolyList[T num.NumericTorus](count, size int) PolyList[T] {
	return PolyList[T]{Coeffs: make([]T, count*size), size: size}
}

// PolyListFromCoeffs wraps an existing flat buffer as a PolyList without
// copying. Panics if the buffer length is not divisible by size.
func PolyListFromCoeffs[T num.NumericTorus](coeffs []T, size int) PolyList[T] {
	if size <= 0 || len(coeffs)%size != 0 {
		panic(fmt.Sprintf("poly: buffer length %d not divisible by polynomial size %d", len(coeffs), size))
	}
	return PolyList[T]{Coeffs: coeffs, size: size}
}

// Size returns N, the fixed size of every polynomial in the list.
func (l PolyList[T]) Size() int { return l.size }

// Count returns the number of polynomials in the list.
func (l PolyList[T]) Count() int {
	if l.size == 0 {
		return 0
	}
	return len(l.Coeffs) / l.size
}

// At returns a borrowed view of the i-th polynomial in the list.
func (l PolyList[T]) At(i int) Poly[T] {
	return Poly[T]{Coeffs: l.Coeffs[i*l.size : (i+1)*l.size]}
}

// BinaryPolyList is the binary-coefficient analogue of PolyList, used for
// a GLWE secret key's polynomials (§3, §4.4).
type BinaryPolyList struct {
	Coeffs []bool
	size   int
}

// NewBinaryPolyList allocates a zeroed BinaryPolyList.
func NewBinaryPolyList(count, size int) BinaryPolyList {
	return BinaryPolyList{Coeffs: make([]bool, count*size), size: size}
}

// BinaryPolyListFromCoeffs wraps an existing flat buffer as a
// BinaryPolyList without copying. Panics if the buffer length is not
// divisible by size.
func BinaryPolyListFromCoeffs(coeffs []bool, size int) BinaryPolyList {
	if size <= 0 || len(coeffs)%size != 0 {
		panic(fmt.Sprintf("poly: buffer length %d not divisible by polynomial size %d", len(coeffs), size))
	}
	return BinaryPolyList{Coeffs: coeffs, size: size}
}

// Size returns N, the fixed size of every binary polynomial in the list.
func (l BinaryPolyList) Size() int { return l.size }

// Count returns the number of binary polynomials in the list.
func (l BinaryPolyList) Count() int {
	if l.size == 0 {
		return 0
	}
	return len(l.Coeffs) / l.size
}

// At returns a borrowed view of the i-th binary polynomial in the list.
func (l BinaryPolyList) At(i int) BinaryPoly {
	return BinaryPoly{Coeffs: l.Coeffs[i*l.size : (i+1)*l.size]}
}

func assertSizeEq(sizes ...int) {
	if len(sizes) == 0 {
		return
	}
	n := sizes[0]
	for _, s := range sizes[1:] {
		if s != n {
			panic(fmt.Sprintf("poly: dimension mismatch: polynomial sizes %v", sizes))
		}
	}
}
