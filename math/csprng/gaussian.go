package csprng

import (
	"math"
	"math/big"

	"github.com/ALTree/bigfloat"

	"github.com/sp301415/glwe-core/math/num"
)

// GaussianSampler draws zero-mean Gaussian samples on the torus via
// Box-Muller, consuming uniform torus draws from an embedded
// [UniformSampler] (§4.2).
//
// Box-Muller naturally produces a pair of independent standard normals
// per two uniform draws. Per the policy documented in §6 of
// SPEC_FULL.md, a GaussianSampler stores the unused
// half of the pair and returns it on the immediately following call,
// rather than discarding it.
type GaussianSampler[T num.NumericTorus] struct {
	uniform *UniformSampler[T]

	hasCached bool
	cachedZ   float64

	highPrecisionScale *big.Float // 2^Bits[T]() at extended precision, used for T = uint64
}

// NewGaussianSampler returns a GaussianSampler backed by a fresh Generator.
func NewGaussianSampler[T num.NumericTorus]() *GaussianSampler[T] {
	return NewGaussianSamplerWithGenerator[T](NewGenerator())
}

// NewGaussianSamplerWithGenerator returns a GaussianSampler backed by g.
func NewGaussianSamplerWithGenerator[T num.NumericTorus](g *Generator) *GaussianSampler[T] {
	scale := bigfloat.Pow(big.NewFloat(2), big.NewFloat(float64(num.Bits[T]())))
	scale.SetPrec(128)
	return &GaussianSampler[T]{
		uniform:            NewUniformSamplerWithGenerator[T](g),
		highPrecisionScale: scale,
	}
}

// torus01 rescales a uniform torus word to (0, 1], avoiding the log(0)
// singularity in Box-Muller (§4.2: "two uniform torus draws re-scaled to
// (0,1]").
func torus01[T num.NumericTorus](v T) float64 {
	max := math.Exp2(float64(num.Bits[T]()))
	return (float64(v) + 1) / max
}

// Sample draws one zero-mean Gaussian sample of the given dispersion,
// rounded into the torus-word domain.
func (s *GaussianSampler[T]) Sample(dispersion DispersionParameter) T {
	sigma := dispersion.StandardDeviation()
	if sigma < 0 || sigma >= 1 {
		panic("csprng: gaussian standard deviation must lie in [0, 1)")
	}
	if sigma == 0 {
		return 0
	}

	if s.hasCached {
		z := s.cachedZ
		s.hasCached = false
		return s.scaleToTorus(z * sigma)
	}

	u1 := torus01(s.uniform.Sample())
	u2 := torus01(s.uniform.Sample())

	r := math.Sqrt(-2 * math.Log(u1))
	theta := 2 * math.Pi * u2

	z1 := r * math.Cos(theta)
	z2 := r * math.Sin(theta)

	s.cachedZ = z2
	s.hasCached = true

	return s.scaleToTorus(z1 * sigma)
}

// scaleToTorus rounds x (a real number, typically in roughly [-1, 1]) into
// the torus-word domain by multiplying by 2^q and reducing mod 2^q.
//
// For T = uint64, float64's 53-bit mantissa cannot carry the full 64 bits
// of the scaled result, so the multiply-and-reduce step is carried out at
// 128-bit precision with [github.com/ALTree/bigfloat] instead.
func (s *GaussianSampler[T]) scaleToTorus(x float64) T {
	if num.Bits[T]() <= 32 {
		return T(int64(math.Round(x * math.Exp2(float64(num.Bits[T]())))))
	}

	f := new(big.Float).SetPrec(128).SetFloat64(x)
	f.Mul(f, s.highPrecisionScale)
	if f.Sign() >= 0 {
		f.Add(f, big.NewFloat(0.5))
	} else {
		f.Sub(f, big.NewFloat(0.5))
	}

	i, _ := f.Int(nil)
	mod := new(big.Int).Lsh(big.NewInt(1), uint(num.Bits[T]()))
	i.Mod(i, mod)
	return T(i.Uint64())
}

// FillSliceAssign fills v with independent zero-mean Gaussian samples of
// the given dispersion (fill_with_random_gaussian with mu = 0, §4.2 — mu
// is reserved and current policy requires mu = 0).
func (s *GaussianSampler[T]) FillSliceAssign(v []T, dispersion DispersionParameter) {
	for i := range v {
		v[i] = s.Sample(dispersion)
	}
}
