package csprng

import "math"

// DispersionParameter is the abstract carrier of a Gaussian noise width,
// exposed in the [0,1) torus domain (§4).
type DispersionParameter interface {
	// StandardDeviation returns the standard deviation of the dispersion,
	// expressed as a fraction of the torus, i.e. in [0, 1).
	StandardDeviation() float64
}

// LogStandardDev is a [DispersionParameter] expressed as log2 of the
// standard deviation, mirroring concrete-core's LogStandardDev.
type LogStandardDev float64

// StandardDeviation implements [DispersionParameter].
func (l LogStandardDev) StandardDeviation() float64 {
	return math.Exp2(float64(l))
}

// StdDev is a [DispersionParameter] expressed directly as a standard
// deviation in [0, 1).
type StdDev float64

// StandardDeviation implements [DispersionParameter].
func (s StdDev) StandardDeviation() float64 {
	return float64(s)
}
