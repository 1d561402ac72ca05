package glwe

import "github.com/sp301415/glwe-core/math/num"

// GGSWCiphertext is a gadget-decomposed GLWE ciphertext: ℓ level
// matrices, each a GLWE list of k+1 ciphertexts, laid out level 0 first
// (§3, §4.6, §6).
type GGSWCiphertext[T num.NumericTorus] struct {
	Value  CiphertextList[T]
	params GadgetParameters[T]
}

// NewGGSWCiphertext allocates a zeroed GGSWCiphertext for the given
// GLWE parameters, sized (ℓ, k+1, k+1, N).
func NewGGSWCiphertext[T num.NumericTorus](params Parameters[T]) GGSWCiphertext[T] {
	rowsPerLevel := params.GLWESize()
	return GGSWCiphertext[T]{
		Value:  NewCiphertextList[T](params, params.DecompParameters().Level()*rowsPerLevel),
		params: params.DecompParameters(),
	}
}

// Level returns ℓ, the number of decomposition levels.
func (g GGSWCiphertext[T]) Level() int { return g.params.Level() }

// Row returns the r-th row (0 <= r < k+1) of the given decomposition
// level (0 <= level < ℓ), viewed as a standalone GLWE ciphertext.
func (g GGSWCiphertext[T]) Row(level, r int) Ciphertext[T] {
	rowsPerLevel := g.Value.glweSize
	return g.Value.At(level*rowsPerLevel + r)
}

// DecompParameters returns the gadget decomposition this GGSW was built with.
func (g GGSWCiphertext[T]) DecompParameters() GadgetParameters[T] { return g.params }
