package poly

import (
	"github.com/sp301415/glwe-core/math/num"
	"github.com/sp301415/glwe-core/math/vec"
)

// Evaluator carries out negacyclic ring operations over
// Z_{2^q}[X]/(X^N+1) for a fixed ring degree N. It holds no mutable
// state and is safe for concurrent use; N is only needed to validate
// the operands it is given.
//
// Multiplication is schoolbook O(N^2): this repo's Non-goals exclude an
// FFT/NTT-accelerated Evaluator, so a single Evaluator type covers the
// whole package (§4.3, Non-goals).
type Evaluator[T num.NumericTorus] struct {
	degree int
}

// NewEvaluator returns an Evaluator for ring degree N.
func NewEvaluator[T num.NumericTorus](degree int) *Evaluator[T] {
	if degree <= 0 {
		panic("poly: ring degree must be positive")
	}
	return &Evaluator[T]{degree: degree}
}

// Degree returns N, the ring degree this Evaluator was built for.
func (e *Evaluator[T]) Degree() int { return e.degree }

func (e *Evaluator[T]) assertDegree(polys ...int) {
	for _, d := range polys {
		if d != e.degree {
			panic("poly: polynomial degree does not match evaluator ring degree")
		}
	}
}

// FillWithWrappingMul writes lhs * rhs mod (X^N+1) into out, via
// schoolbook convolution with negacyclic wraparound: for degree >= N,
// the coefficient is subtracted from target_degree - N instead of added
// (concrete-core's polynomial.rs fill_with_wrapping_mul: "target_degree
// <= degree then add, else subtract at target_degree % (degree+1)").
func (e *Evaluator[T]) FillWithWrappingMul(out, lhs, rhs Poly[T]) {
	e.assertDegree(out.Degree(), lhs.Degree(), rhs.Degree())
	out.Clear()
	n := e.degree
	for i := 0; i < n; i++ {
		if lhs.Coeffs[i] == 0 {
			continue
		}
		for j := 0; j < n; j++ {
			target := i + j
			term := lhs.Coeffs[i] * rhs.Coeffs[j]
			if target < n {
				out.Coeffs[target] += term
			} else {
				out.Coeffs[target-n] -= term
			}
		}
	}
}

// FillWithWrappingBinaryMul writes p * b mod (X^N+1) into out, where b
// is a binary polynomial: coefficients of b that are false contribute
// nothing, avoiding a full multiply for the common secret-key case.
func (e *Evaluator[T]) FillWithWrappingBinaryMul(out, p Poly[T], b BinaryPoly) {
	e.assertDegree(out.Degree(), p.Degree(), b.Degree())
	out.Clear()
	e.UpdateWithWrappingAddBinaryMul(out, p, b)
}

// UpdateWithWrappingAddBinaryMul adds p * b mod (X^N+1) into out in place.
func (e *Evaluator[T]) UpdateWithWrappingAddBinaryMul(out, p Poly[T], b BinaryPoly) {
	e.assertDegree(out.Degree(), p.Degree(), b.Degree())
	n := e.degree
	for j := 0; j < n; j++ {
		if !b.Coeffs[j] {
			continue
		}
		for i := 0; i < n; i++ {
			if p.Coeffs[i] == 0 {
				continue
			}
			target := i + j
			if target < n {
				out.Coeffs[target] += p.Coeffs[i]
			} else {
				out.Coeffs[target-n] -= p.Coeffs[i]
			}
		}
	}
}

// UpdateWithWrappingSubBinaryMul subtracts p * b mod (X^N+1) from out in place.
func (e *Evaluator[T]) UpdateWithWrappingSubBinaryMul(out, p Poly[T], b BinaryPoly) {
	e.assertDegree(out.Degree(), p.Degree(), b.Degree())
	n := e.degree
	for j := 0; j < n; j++ {
		if !b.Coeffs[j] {
			continue
		}
		for i := 0; i < n; i++ {
			if p.Coeffs[i] == 0 {
				continue
			}
			target := i + j
			if target < n {
				out.Coeffs[target] -= p.Coeffs[i]
			} else {
				out.Coeffs[target-n] += p.Coeffs[i]
			}
		}
	}
}

// UpdateWithWrappingAddBinaryMultisum adds sum_k list[k] * binList[k] mod
// (X^N+1) into out in place: the mask-times-key sum that GLWE encryption
// adds into the body (§4.5).
func (e *Evaluator[T]) UpdateWithWrappingAddBinaryMultisum(out Poly[T], list PolyList[T], binList BinaryPolyList) {
	if list.Count() != binList.Count() {
		panic("poly: multisum operand count mismatch")
	}
	for k := 0; k < list.Count(); k++ {
		e.UpdateWithWrappingAddBinaryMul(out, list.At(k), binList.At(k))
	}
}

// UpdateWithWrappingSubBinaryMultisum subtracts sum_k list[k] * binList[k]
// mod (X^N+1) from out in place.
func (e *Evaluator[T]) UpdateWithWrappingSubBinaryMultisum(out Poly[T], list PolyList[T], binList BinaryPolyList) {
	if list.Count() != binList.Count() {
		panic("poly: multisum operand count mismatch")
	}
	for k := 0; k < list.Count(); k++ {
		e.UpdateWithWrappingSubBinaryMul(out, list.At(k), binList.At(k))
	}
}

// UpdateWithWrappingAdd adds other into out in place, coefficient-wise.
func (e *Evaluator[T]) UpdateWithWrappingAdd(out, other Poly[T]) {
	e.assertDegree(out.Degree(), other.Degree())
	vec.AddAssign(out.Coeffs, other.Coeffs)
}

// UpdateWithWrappingSub subtracts other from out in place, coefficient-wise.
func (e *Evaluator[T]) UpdateWithWrappingSub(out, other Poly[T]) {
	e.assertDegree(out.Degree(), other.Degree())
	vec.SubAssign(out.Coeffs, other.Coeffs)
}

// splitDegree decomposes degree as q*n + r with 0 <= r < n, and reports
// whether q is odd (the parity that flips every coefficient's sign in
// the negacyclic monomial multiplication rule, §4.3).
func splitDegree(degree, n int) (qOdd bool, r int) {
	r = ((degree % n) + n) % n
	q := (degree - r) / n
	return ((q%2)+2)%2 == 1, r
}

// UpdateWithWrappingMonicMonomialMul multiplies out by X^degree mod
// (X^N+1) in place: split degree = qN+r, negate every coefficient if q
// is odd, then rotate right by r and negate the r coefficients that
// wrapped around (concrete-core's
// update_with_wrapping_monic_monomial_mul, §4.3).
func (e *Evaluator[T]) UpdateWithWrappingMonicMonomialMul(out Poly[T], degree int) {
	e.assertDegree(out.Degree())
	qOdd, r := splitDegree(degree, e.degree)

	if qOdd {
		vec.NegAssign(out.Coeffs)
	}
	vec.RotateRight(out.Coeffs, r)
	vec.NegAssign(out.Coeffs[:r])
}

// UpdateWithWrappingMonicMonomialDiv divides out by X^degree mod
// (X^N+1) in place, i.e. multiplies by X^(-degree): same parity flip as
// multiplication by X^degree, then rotate left by r and negate the
// trailing r coefficients (concrete-core's
// update_with_wrapping_unit_monomial_div, §4.3).
func (e *Evaluator[T]) UpdateWithWrappingMonicMonomialDiv(out Poly[T], degree int) {
	e.assertDegree(out.Degree())
	qOdd, r := splitDegree(degree, e.degree)

	if qOdd {
		vec.NegAssign(out.Coeffs)
	}
	vec.RotateLeft(out.Coeffs, r)
	vec.NegAssign(out.Coeffs[len(out.Coeffs)-r:])
}
