package csprng_test

import (
	"math"
	"testing"

	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/assert"

	"github.com/sp301415/glwe-core/math/csprng"
)

func TestGaussianSamplerZeroDispersionIsExactlyZero(t *testing.T) {
	s := csprng.NewGaussianSampler[uint32]()
	assert.Equal(t, uint32(0), s.Sample(csprng.StdDev(0)))
}

func TestGaussianSamplerPanicsOnNegativeDispersion(t *testing.T) {
	s := csprng.NewGaussianSampler[uint32]()
	assert.Panics(t, func() { s.Sample(csprng.StdDev(-0.1)) })
}

func TestGaussianSamplerAcceptsLogStandardDev(t *testing.T) {
	s := csprng.NewGaussianSampler[uint32]()

	const logSigma = -10.0
	samples := make([]float64, 2000)
	for i := range samples {
		v := s.Sample(csprng.LogStandardDev(logSigma))
		samples[i] = float64(int32(v))
	}

	stddev, err := stats.StandardDeviation(samples)
	assert.NoError(t, err)

	want := math.Exp2(logSigma) * math.Exp2(32)
	assert.InDelta(t, want, stddev, want*0.25)
}

func TestGaussianSamplerFillSliceAssign(t *testing.T) {
	s := csprng.NewGaussianSampler[uint32]()
	v := make([]uint32, 16)
	s.FillSliceAssign(v, csprng.StdDev(math.Exp2(-10)))

	allZero := true
	for _, c := range v {
		if c != 0 {
			allZero = false
			break
		}
	}
	assert.False(t, allZero)
}
