package glwe

import (
	"github.com/sp301415/glwe-core/math/num"
	"github.com/sp301415/glwe-core/math/poly"
	"github.com/sp301415/glwe-core/math/vec"
)

// SecretKey is the GLWE secret key: k binary polynomials of size N,
// stored as one flat buffer of k·N bits that doubles as the flattened
// LWE secret key (§3, §4.4).
type SecretKey[T num.NumericTorus] struct {
	// GLWEKey views the flat storage as k polynomials of size N.
	GLWEKey poly.BinaryPolyList
}

// NewSecretKey allocates a zeroed SecretKey for the given parameters.
func NewSecretKey[T num.NumericTorus](params Parameters[T]) SecretKey[T] {
	return SecretKey[T]{
		GLWEKey: poly.NewBinaryPolyList(params.GLWERank(), params.PolyDegree()),
	}
}

// AsPolynomialList returns the GLWE view of this key: k polynomials of
// size N, sharing storage (§4.4 as_polynomial_list).
func (k SecretKey[T]) AsPolynomialList() poly.BinaryPolyList {
	return k.GLWEKey
}

// LWEKey reinterprets the same storage as a flat LWE secret of dimension
// k·N (§4.4 into_lwe_secret_key). The returned slice aliases the GLWE
// key's storage; there is no copy.
func (k SecretKey[T]) LWEKey() []bool {
	return k.GLWEKey.Coeffs
}

// ReverseGLWEKey returns a new SecretKey whose per-polynomial
// coefficients are reversed, i.e. polynomial i's coefficient j becomes
// coefficient N-1-j. This is the key transform a public-key-style
// encryption of the secret key under itself requires before convolving
// it against a mask (mirrors the teacher's GenPublicKey reversal via
// vec.ReverseAssign before re-entering Fourier domain); kept here as a
// standalone helper since this core has no public-key encryption.
func ReverseGLWEKey[T num.NumericTorus](params Parameters[T], sk SecretKey[T]) SecretKey[T] {
	rev := NewSecretKey(params)
	for i := 0; i < params.GLWERank(); i++ {
		vec.ReverseAssign(sk.GLWEKey.At(i).Coeffs, rev.GLWEKey.At(i).Coeffs)
	}
	return rev
}
