package glwe_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sp301415/glwe-core/glwe"
)

func TestParametersLiteralRoundTrip(t *testing.T) {
	params := testParamsUint32()

	roundTripped := params.Literal().Compile()

	assert.Equal(t, params.GLWERank(), roundTripped.GLWERank())
	assert.Equal(t, params.PolyDegree(), roundTripped.PolyDegree())
	assert.Equal(t, params.GLWEStdDev(), roundTripped.GLWEStdDev())
	assert.Equal(t, params.DecompParameters().Base(), roundTripped.DecompParameters().Base())
	assert.Equal(t, params.DecompParameters().Level(), roundTripped.DecompParameters().Level())
}

func TestParametersLiteralCompilePanicsOnInvalidFields(t *testing.T) {
	base := glwe.GadgetParametersLiteral[uint32]{Base: 1 << 4, Level: 2}

	assert.Panics(t, func() {
		glwe.ParametersLiteral[uint32]{GLWERank: 0, PolyDegree: 8, GLWEStdDev: 0.1, DecompParameters: base}.Compile()
	})
	assert.Panics(t, func() {
		glwe.ParametersLiteral[uint32]{GLWERank: 1, PolyDegree: 3, GLWEStdDev: 0.1, DecompParameters: base}.Compile()
	})
	assert.Panics(t, func() {
		glwe.ParametersLiteral[uint32]{GLWERank: 1, PolyDegree: 8, GLWEStdDev: 1.5, DecompParameters: base}.Compile()
	})
}

func TestGadgetParametersLiteralCompilePanicsOnInvalidFields(t *testing.T) {
	assert.Panics(t, func() { glwe.GadgetParametersLiteral[uint32]{Base: 1, Level: 1}.Compile() })
	assert.Panics(t, func() { glwe.GadgetParametersLiteral[uint32]{Base: 6, Level: 1}.Compile() })
	assert.Panics(t, func() { glwe.GadgetParametersLiteral[uint32]{Base: 16, Level: 0}.Compile() })
	assert.Panics(t, func() { glwe.GadgetParametersLiteral[uint32]{Base: 1 << 16, Level: 4}.Compile() })
}

func TestGadgetParametersDeltaPanicsOnOutOfRangeLevel(t *testing.T) {
	decomp := glwe.GadgetParametersLiteral[uint32]{Base: 1 << 4, Level: 2}.Compile()
	assert.Panics(t, func() { decomp.Delta(100) })
}

func TestGadgetParametersWithBaseAndWithLevel(t *testing.T) {
	lit := glwe.GadgetParametersLiteral[uint32]{}.WithBase(1 << 4).WithLevel(3)
	compiled := lit.Compile()

	assert.Equal(t, uint32(1<<4), compiled.Base())
	assert.Equal(t, 3, compiled.Level())
	assert.Equal(t, 4, compiled.LogBase())
}

func TestParametersLiteralWithSetters(t *testing.T) {
	lit := glwe.ParametersLiteral[uint32]{}.
		WithGLWERank(2).
		WithPolyDegree(16).
		WithGLWEStdDev(math.Exp2(-10)).
		WithDecompParameters(glwe.GadgetParametersLiteral[uint32]{Base: 1 << 4, Level: 2})

	compiled := lit.Compile()
	assert.Equal(t, 2, compiled.GLWERank())
	assert.Equal(t, 16, compiled.PolyDegree())
	assert.Equal(t, 3, compiled.GLWESize())
	assert.Equal(t, 32, compiled.LWEDimension())
}
