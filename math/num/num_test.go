package num_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sp301415/glwe-core/math/num"
)

func TestBits(t *testing.T) {
	assert.Equal(t, 32, num.Bits[uint32]())
	assert.Equal(t, 64, num.Bits[uint64]())
}

func TestFromBool(t *testing.T) {
	assert.Equal(t, uint32(1), num.FromBool[uint32](true))
	assert.Equal(t, uint32(0), num.FromBool[uint32](false))
}

func TestIsPowerOfTwo(t *testing.T) {
	assert.True(t, num.IsPowerOfTwo(uint32(1)))
	assert.True(t, num.IsPowerOfTwo(uint32(1024)))
	assert.False(t, num.IsPowerOfTwo(uint32(0)))
	assert.False(t, num.IsPowerOfTwo(uint32(6)))
}

func TestLog2(t *testing.T) {
	assert.Equal(t, 0, num.Log2(uint32(1)))
	assert.Equal(t, 10, num.Log2(uint32(1024)))
	assert.Panics(t, func() { num.Log2(uint32(0)) })
}
