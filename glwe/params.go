// Package glwe implements the GLWE and GGSW secret-key primitives: key
// generation, GLWE encryption/decryption, and gadget-decomposed GGSW
// encryption (§3, §4.4-§4.7).
package glwe

import (
	"fmt"

	"github.com/sp301415/glwe-core/math/num"
)

// GadgetParametersLiteral configures the gadget decomposition used by
// GGSW encryption: base B (a power of two) and level count ℓ.
type GadgetParametersLiteral[T num.NumericTorus] struct {
	// Base is the decomposition base. Must be a power of two.
	Base T
	// Level is the decomposition level count ℓ.
	Level int
}

// WithBase sets Base and returns the updated literal.
func (p GadgetParametersLiteral[T]) WithBase(base T) GadgetParametersLiteral[T] {
	p.Base = base
	return p
}

// WithLevel sets Level and returns the updated literal.
func (p GadgetParametersLiteral[T]) WithLevel(level int) GadgetParametersLiteral[T] {
	p.Level = level
	return p
}

// Compile validates the literal and returns a read-only GadgetParameters.
// Panics if Base is not a power of two at least 2, Level is non-positive,
// or Base^Level would not fit within T's bit width.
func (p GadgetParametersLiteral[T]) Compile() GadgetParameters[T] {
	switch {
	case p.Base < 2:
		panic("glwe: gadget base smaller than two")
	case !num.IsPowerOfTwo(p.Base):
		panic("glwe: gadget base not a power of two")
	case p.Level <= 0:
		panic("glwe: gadget level count not positive")
	case num.Bits[T]() < num.Log2(p.Base)*p.Level:
		panic("glwe: gadget base^level exceeds torus word width")
	}

	return GadgetParameters[T]{
		base:    p.Base,
		logBase: num.Log2(p.Base),
		level:   p.Level,
		sizeT:   num.Bits[T](),
	}
}

// GadgetParameters is the compiled, read-only form of
// [GadgetParametersLiteral].
type GadgetParameters[T num.NumericTorus] struct {
	base    T
	logBase int
	level   int
	sizeT   int
}

// Base returns the decomposition base B.
func (p GadgetParameters[T]) Base() T { return p.base }

// LogBase returns log2(B).
func (p GadgetParameters[T]) LogBase() int { return p.logBase }

// Level returns the decomposition level count ℓ.
func (p GadgetParameters[T]) Level() int { return p.level }

// Delta returns μ's diagonal scale at the given level: 2^(q - log2(B)·(level+1))
// in wrapping torus-word arithmetic (§4.6 step 2). level is zero-indexed.
func (p GadgetParameters[T]) Delta(level int) T {
	shift := p.sizeT - p.logBase*(level+1)
	if shift < 0 || shift >= p.sizeT {
		panic(fmt.Sprintf("glwe: gadget level %d produces an out-of-range shift %d", level, shift))
	}
	return T(1) << uint(shift)
}

// Literal returns the [GadgetParametersLiteral] this was compiled from.
func (p GadgetParameters[T]) Literal() GadgetParametersLiteral[T] {
	return GadgetParametersLiteral[T]{Base: p.base, Level: p.level}
}

// ParametersLiteral configures a GLWE/GGSW instance: the polynomial
// ring degree N, the GLWE rank k, the noise width, and the gadget
// decomposition used for GGSW encryption.
//
// # Warning
//
// Unless you are a cryptographic expert, do not set these by hand.
// This module ships no predefined parameter sets, and Compile only
// checks that each field lies in its domain, not that the combination
// is secure.
type ParametersLiteral[T num.NumericTorus] struct {
	// GLWERank is k, the number of mask polynomials. The GLWE secret key
	// has k polynomials of size N; a ciphertext has k+1.
	GLWERank int
	// PolyDegree is N, the negacyclic ring degree. Must be a power of two.
	PolyDegree int
	// GLWEStdDev is the standard deviation of Gaussian noise added during
	// GLWE and GGSW encryption, expressed in the torus domain [0,1).
	GLWEStdDev float64
	// DecompParameters is the gadget decomposition used by GGSW encryption.
	DecompParameters GadgetParametersLiteral[T]
}

// WithGLWERank sets GLWERank and returns the updated literal.
func (p ParametersLiteral[T]) WithGLWERank(rank int) ParametersLiteral[T] {
	p.GLWERank = rank
	return p
}

// WithPolyDegree sets PolyDegree and returns the updated literal.
func (p ParametersLiteral[T]) WithPolyDegree(degree int) ParametersLiteral[T] {
	p.PolyDegree = degree
	return p
}

// WithGLWEStdDev sets GLWEStdDev and returns the updated literal.
func (p ParametersLiteral[T]) WithGLWEStdDev(stdDev float64) ParametersLiteral[T] {
	p.GLWEStdDev = stdDev
	return p
}

// WithDecompParameters sets DecompParameters and returns the updated literal.
func (p ParametersLiteral[T]) WithDecompParameters(decomp GadgetParametersLiteral[T]) ParametersLiteral[T] {
	p.DecompParameters = decomp
	return p
}

// Compile validates the literal and returns read-only Parameters.
// Panics if any field is out of its valid domain.
func (p ParametersLiteral[T]) Compile() Parameters[T] {
	switch {
	case p.GLWERank <= 0:
		panic("glwe: GLWE rank not positive")
	case !num.IsPowerOfTwo(p.PolyDegree):
		panic("glwe: polynomial degree not a power of two")
	case p.GLWEStdDev < 0 || p.GLWEStdDev >= 1:
		panic("glwe: GLWE standard deviation out of domain [0, 1)")
	}

	return Parameters[T]{
		glweRank:      p.GLWERank,
		polyDegree:    p.PolyDegree,
		lweDimension:  p.GLWERank * p.PolyDegree,
		glweStdDev:    p.GLWEStdDev,
		decompParams:  p.DecompParameters.Compile(),
	}
}

// Parameters is the compiled, read-only form of [ParametersLiteral].
type Parameters[T num.NumericTorus] struct {
	glweRank     int
	polyDegree   int
	lweDimension int
	glweStdDev   float64
	decompParams GadgetParameters[T]
}

// GLWERank returns k, the number of mask polynomials.
func (p Parameters[T]) GLWERank() int { return p.glweRank }

// GLWESize returns k+1, the number of polynomials in a GLWE ciphertext.
func (p Parameters[T]) GLWESize() int { return p.glweRank + 1 }

// PolyDegree returns N, the negacyclic ring degree.
func (p Parameters[T]) PolyDegree() int { return p.polyDegree }

// LWEDimension returns k·N, the dimension of the flattened LWE secret.
func (p Parameters[T]) LWEDimension() int { return p.lweDimension }

// GLWEStdDev returns the Gaussian noise standard deviation in [0,1).
func (p Parameters[T]) GLWEStdDev() float64 { return p.glweStdDev }

// DecompParameters returns the gadget decomposition used for GGSW encryption.
func (p Parameters[T]) DecompParameters() GadgetParameters[T] { return p.decompParams }

// Literal returns the [ParametersLiteral] this was compiled from.
func (p Parameters[T]) Literal() ParametersLiteral[T] {
	return ParametersLiteral[T]{
		GLWERank:         p.glweRank,
		PolyDegree:       p.polyDegree,
		GLWEStdDev:       p.glweStdDev,
		DecompParameters: p.decompParams.Literal(),
	}
}
