package glwe

import (
	"fmt"

	"github.com/sp301415/glwe-core/math/num"
	"github.com/sp301415/glwe-core/math/poly"
)

// Ciphertext is a GLWE ciphertext: k mask polynomials A_1..A_k followed
// by the body polynomial B, each of size N, stored contiguously in that
// order (§3, §6 memory layout).
type Ciphertext[T num.NumericTorus] struct {
	// Value holds the k+1 polynomials: Value.At(i) for i < k is a mask,
	// Value.At(k) is the body.
	Value poly.PolyList[T]
}

// NewCiphertext allocates a zeroed Ciphertext for the given parameters.
func NewCiphertext[T num.NumericTorus](params Parameters[T]) Ciphertext[T] {
	return Ciphertext[T]{Value: poly.NewPolyList[T](params.GLWESize(), params.PolyDegree())}
}

// Mask returns the i-th mask polynomial A_i, 0 <= i < k.
func (c Ciphertext[T]) Mask(i int) poly.Poly[T] { return c.Value.At(i) }

// Body returns the body polynomial B.
func (c Ciphertext[T]) Body() poly.Poly[T] { return c.Value.At(c.Value.Count() - 1) }

// GLWERank returns k, the number of mask polynomials carried.
func (c Ciphertext[T]) GLWERank() int { return c.Value.Count() - 1 }

// Copy returns a newly allocated duplicate of c.
func (c Ciphertext[T]) Copy() Ciphertext[T] {
	out := Ciphertext[T]{Value: poly.NewPolyList[T](c.Value.Count(), c.Value.Size())}
	copy(out.Value.Coeffs, c.Value.Coeffs)
	return out
}

// CiphertextList is m GLWE ciphertexts sharing (N, k), stored as one
// contiguous buffer of m·(k+1)·N torus words (§3, §6).
type CiphertextList[T num.NumericTorus] struct {
	Value      poly.PolyList[T]
	glweSize   int
	polyDegree int
}

// NewCiphertextList allocates a zeroed CiphertextList of count ciphertexts.
func NewCiphertextList[T num.NumericTorus](params Parameters[T], count int) CiphertextList[T] {
	return CiphertextList[T]{
		Value:      poly.NewPolyList[T](count*params.GLWESize(), params.PolyDegree()),
		glweSize:   params.GLWESize(),
		polyDegree: params.PolyDegree(),
	}
}

// Count returns m, the number of ciphertexts in the list.
func (l CiphertextList[T]) Count() int {
	if l.glweSize == 0 {
		return 0
	}
	return l.Value.Count() / l.glweSize
}

// At returns a borrowed view of the i-th ciphertext in the list.
func (l CiphertextList[T]) At(i int) Ciphertext[T] {
	start := i * l.glweSize * l.polyDegree
	end := start + l.glweSize*l.polyDegree
	return Ciphertext[T]{Value: poly.PolyListFromCoeffs(l.Value.Coeffs[start:end], l.polyDegree)}
}

func assertDimension(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("glwe: dimension mismatch: "+format, args...))
	}
}
