package csprng_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sp301415/glwe-core/math/csprng"
)

func TestUniformSamplerSampleSliceAssignFillsDistinctWords(t *testing.T) {
	s := csprng.NewUniformSampler[uint64]()
	v := make([]uint64, 8)
	s.SampleSliceAssign(v)

	distinct := map[uint64]bool{}
	for _, w := range v {
		distinct[w] = true
	}
	assert.Greater(t, len(distinct), 1)
}

func TestBinarySamplerSampleTIsZeroOrOne(t *testing.T) {
	s := csprng.NewBinarySampler[uint32]()
	for i := 0; i < 32; i++ {
		v := s.SampleT()
		assert.True(t, v == 0 || v == 1)
	}
}

func TestBinarySamplerSampleSliceAssignAgreesWithSampleBoolSliceAssign(t *testing.T) {
	g := csprng.NewGeneratorWithSeed(
		[]byte("0123456789abcdef"),
		[]byte("abcdef9876543210"),
	)
	s := csprng.NewBinarySamplerWithGenerator[uint32](g)

	boolOut := make([]bool, 16)
	s.SampleBoolSliceAssign(boolOut)

	g2 := csprng.NewGeneratorWithSeed(
		[]byte("0123456789abcdef"),
		[]byte("abcdef9876543210"),
	)
	s2 := csprng.NewBinarySamplerWithGenerator[uint32](g2)
	intOut := make([]uint32, 16)
	s2.SampleSliceAssign(intOut)

	for i := range boolOut {
		want := uint32(0)
		if boolOut[i] {
			want = 1
		}
		assert.Equal(t, want, intOut[i], "index %d", i)
	}
}
