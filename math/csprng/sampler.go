package csprng

import (
	"encoding/binary"
	"fmt"

	"github.com/sp301415/glwe-core/math/num"
)

// UniformSampler draws torus words uniform over the whole word domain.
type UniformSampler[T num.NumericTorus] struct {
	generator *Generator
	buf       []byte
}

// NewUniformSampler returns a UniformSampler backed by a fresh Generator.
func NewUniformSampler[T num.NumericTorus]() *UniformSampler[T] {
	return NewUniformSamplerWithGenerator[T](NewGenerator())
}

// NewUniformSamplerWithGenerator returns a UniformSampler backed by g.
func NewUniformSamplerWithGenerator[T num.NumericTorus](g *Generator) *UniformSampler[T] {
	return &UniformSampler[T]{generator: g, buf: make([]byte, num.Bits[T]()/8)}
}

// Sample draws a single uniform torus word, assembling q/8 bytes from the
// stream in native byte order (§4.2).
func (s *UniformSampler[T]) Sample() T {
	if _, err := s.generator.Read(s.buf); err != nil {
		panic(fmt.Sprintf("csprng: uniform sample failed: %v", err))
	}
	switch any(T(0)).(type) {
	case uint32:
		return T(binary.NativeEndian.Uint32(s.buf))
	case uint64:
		return T(binary.NativeEndian.Uint64(s.buf))
	default:
		panic("csprng: unsupported torus word type")
	}
}

// SampleSliceAssign fills v with independent uniform torus words
// (fill_with_random_uniform, §4.2).
func (s *UniformSampler[T]) SampleSliceAssign(v []T) {
	for i := range v {
		v[i] = s.Sample()
	}
}

// BinarySampler draws uniform {0,1} bits, used for secret key coefficients.
type BinarySampler[T num.NumericTorus] struct {
	generator *Generator
	pos       int
	current   byte
}

// NewBinarySampler returns a BinarySampler backed by a fresh Generator.
func NewBinarySampler[T num.NumericTorus]() *BinarySampler[T] {
	return NewBinarySamplerWithGenerator[T](NewGenerator())
}

// NewBinarySamplerWithGenerator returns a BinarySampler backed by g.
func NewBinarySamplerWithGenerator[T num.NumericTorus](g *Generator) *BinarySampler[T] {
	return &BinarySampler[T]{generator: g, pos: 8}
}

// Sample draws a single uniform bit.
func (s *BinarySampler[T]) Sample() bool {
	if s.pos == 8 {
		s.current = s.generator.GenerateNext()
		s.pos = 0
	}
	bit := (s.current>>uint(s.pos))&1 == 1
	s.pos++
	return bit
}

// SampleT draws a single uniform bit cast to T (0 or 1).
func (s *BinarySampler[T]) SampleT() T {
	return num.FromBool[T](s.Sample())
}

// SampleBoolSliceAssign fills v with independent uniform bits, the
// physical representation of a binary polynomial (§3).
func (s *BinarySampler[T]) SampleBoolSliceAssign(v []bool) {
	for i := range v {
		v[i] = s.Sample()
	}
}

// SampleSliceAssign fills v with independent uniform bits cast to T.
func (s *BinarySampler[T]) SampleSliceAssign(v []T) {
	for i := range v {
		v[i] = s.SampleT()
	}
}
