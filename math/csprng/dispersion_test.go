package csprng_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sp301415/glwe-core/math/csprng"
)

func TestDispersionParameterImplementations(t *testing.T) {
	var d csprng.DispersionParameter

	d = csprng.StdDev(0.25)
	assert.Equal(t, 0.25, d.StandardDeviation())

	d = csprng.LogStandardDev(-4)
	assert.Equal(t, math.Exp2(-4), d.StandardDeviation())
}
