package vec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sp301415/glwe-core/math/vec"
)

func TestAssertLenEqPanicsOnMismatch(t *testing.T) {
	assert.NotPanics(t, func() { vec.AssertLenEq(3, 3, 3) })
	assert.Panics(t, func() { vec.AssertLenEq(3, 4) })
}

func TestAddSubNegAssign(t *testing.T) {
	a := []uint32{1, 2, 3}
	b := []uint32{10, 20, 30}

	sum := make([]uint32, 3)
	vec.CopyAssign(sum, a)
	vec.AddAssign(sum, b)
	assert.Equal(t, []uint32{11, 22, 33}, sum)

	vec.SubAssign(sum, b)
	assert.Equal(t, []uint32{1, 2, 3}, sum)

	neg := make([]uint32, 3)
	vec.CopyAssign(neg, a)
	vec.NegAssign(neg)
	vec.NegAssign(neg)
	assert.Equal(t, a, neg)
}

func TestReverseAssign(t *testing.T) {
	a := []int{1, 2, 3, 4}
	dst := make([]int, 4)
	vec.ReverseAssign(a, dst)
	assert.Equal(t, []int{4, 3, 2, 1}, dst)
}

func TestRotate(t *testing.T) {
	a := []int{1, 2, 3, 4, 5}
	vec.RotateRight(a, 2)
	assert.Equal(t, []int{4, 5, 1, 2, 3}, a)

	vec.RotateLeft(a, 2)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, a)
}

func TestFill(t *testing.T) {
	v := make([]uint32, 4)
	vec.Fill(v, uint32(7))
	assert.Equal(t, []uint32{7, 7, 7, 7}, v)
}
