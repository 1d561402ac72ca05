package glwe

import (
	"github.com/sp301415/glwe-core/math/csprng"
	"github.com/sp301415/glwe-core/math/num"
	"github.com/sp301415/glwe-core/math/poly"
)

// Encryptor encrypts and decrypts GLWE and GGSW ciphertexts under a
// single secret key.
//
// Encryptor is not safe for concurrent use. Use [*Encryptor.ShallowCopy]
// to get an independent copy that shares the same secret key but owns
// its own sampler state.
type Encryptor[T num.NumericTorus] struct {
	Parameters Parameters[T]

	UniformSampler  *csprng.UniformSampler[T]
	BinarySampler   *csprng.BinarySampler[T]
	GaussianSampler *csprng.GaussianSampler[T]

	PolyEvaluator *poly.Evaluator[T]

	SecretKey SecretKey[T]
}

// NewEncryptor returns an initialized Encryptor for the given
// parameters, sampling a fresh secret key.
func NewEncryptor[T num.NumericTorus](params Parameters[T]) *Encryptor[T] {
	e := &Encryptor[T]{
		Parameters: params,

		UniformSampler:  csprng.NewUniformSampler[T](),
		BinarySampler:   csprng.NewBinarySampler[T](),
		GaussianSampler: csprng.NewGaussianSampler[T](),

		PolyEvaluator: poly.NewEvaluator[T](params.PolyDegree()),
	}
	e.SecretKey = e.GenSecretKey()
	return e
}

// NewEncryptorWithKey returns an initialized Encryptor for the given
// parameters and a pre-existing secret key. It does not copy sk.
func NewEncryptorWithKey[T num.NumericTorus](params Parameters[T], sk SecretKey[T]) *Encryptor[T] {
	return &Encryptor[T]{
		Parameters: params,

		UniformSampler:  csprng.NewUniformSampler[T](),
		BinarySampler:   csprng.NewBinarySampler[T](),
		GaussianSampler: csprng.NewGaussianSampler[T](),

		PolyEvaluator: poly.NewEvaluator[T](params.PolyDegree()),

		SecretKey: sk,
	}
}

// ShallowCopy returns a copy of e that shares Parameters and SecretKey
// but owns independent sampler and evaluator state, safe to hand to a
// separate goroutine.
func (e *Encryptor[T]) ShallowCopy() *Encryptor[T] {
	return NewEncryptorWithKey(e.Parameters, e.SecretKey)
}

// GenSecretKey draws a fresh SecretKey: k·N uniform bits (§4.4 generate).
// It does not modify e.SecretKey.
func (e *Encryptor[T]) GenSecretKey() SecretKey[T] {
	sk := NewSecretKey(e.Parameters)
	e.BinarySampler.SampleBoolSliceAssign(sk.GLWEKey.Coeffs)
	return sk
}

// EncryptGLWE encrypts the plaintext polynomial m (length N) into ct
// under e.SecretKey with noise width sigma (§4.5 encrypt_glwe).
func (e *Encryptor[T]) EncryptGLWE(ct Ciphertext[T], m poly.Poly[T], sigma float64) {
	assertDimension(m.Degree() == e.Parameters.PolyDegree(),
		"plaintext degree %d does not match ring degree %d", m.Degree(), e.Parameters.PolyDegree())

	e.EncryptZeroGLWE(ct, sigma)
	e.PolyEvaluator.UpdateWithWrappingAdd(ct.Body(), m)
}

// EncryptZeroGLWE encrypts the zero plaintext into ct under e.SecretKey
// with noise width sigma (§4.5 encrypt_zero_glwe).
func (e *Encryptor[T]) EncryptZeroGLWE(ct Ciphertext[T], sigma float64) {
	k := e.Parameters.GLWERank()
	assertDimension(ct.GLWERank() == k, "ciphertext GLWE rank %d does not match key rank %d", ct.GLWERank(), k)

	body := ct.Body()
	e.GaussianSampler.FillSliceAssign(body.Coeffs, csprng.StdDev(sigma))

	for i := 0; i < k; i++ {
		e.UniformSampler.SampleSliceAssign(ct.Mask(i).Coeffs)
	}

	skList := e.SecretKey.AsPolynomialList()
	maskList := poly.PolyListFromCoeffs(ct.Value.Coeffs[:k*e.Parameters.PolyDegree()], e.Parameters.PolyDegree())
	e.PolyEvaluator.UpdateWithWrappingAddBinaryMultisum(body, maskList, skList)
}

// EncryptGLWEList encrypts the concatenated plaintext list m (length
// m.Len() = count*N) into list, one sublist per ciphertext
// (§4.5 encrypt_glwe_list).
func (e *Encryptor[T]) EncryptGLWEList(list CiphertextList[T], m PlaintextList[T], sigma float64) {
	n := e.Parameters.PolyDegree()
	assertDimension(m.Len()%n == 0, "plaintext list length %d not a multiple of ring degree %d", m.Len(), n)
	assertDimension(m.Len()/n == list.Count(), "plaintext sublist count %d does not match ciphertext list count %d", m.Len()/n, list.Count())

	sublists := m.SublistIter(n)
	for i, sub := range sublists {
		e.EncryptGLWE(list.At(i), poly.Poly[T]{Coeffs: sub.Value}, sigma)
	}
}

// DecryptGLWE decrypts ct into out, an approximation to the original
// plaintext polynomial plus noise (§4.5 decrypt_glwe).
func (e *Encryptor[T]) DecryptGLWE(out poly.Poly[T], ct Ciphertext[T]) {
	k := e.Parameters.GLWERank()
	assertDimension(ct.GLWERank() == k, "ciphertext GLWE rank %d does not match key rank %d", ct.GLWERank(), k)

	out.CopyFrom(ct.Body())

	skList := e.SecretKey.AsPolynomialList()
	maskList := poly.PolyListFromCoeffs(ct.Value.Coeffs[:k*e.Parameters.PolyDegree()], e.Parameters.PolyDegree())
	e.PolyEvaluator.UpdateWithWrappingSubBinaryMultisum(out, maskList, skList)
}

// DecryptGLWEList decrypts every ciphertext in list into the aligned
// sublist of out.
func (e *Encryptor[T]) DecryptGLWEList(out PlaintextList[T], list CiphertextList[T]) {
	n := e.Parameters.PolyDegree()
	assertDimension(out.Len()/n == list.Count(), "plaintext sublist count %d does not match ciphertext list count %d", out.Len()/n, list.Count())

	sublists := out.SublistIterMut(n)
	for i, sub := range sublists {
		e.DecryptGLWE(poly.Poly[T]{Coeffs: sub.Value}, list.At(i))
	}
}

// EncryptConstantGGSW encrypts the scalar plaintext mu into out under
// e.SecretKey with noise width sigma (§4.6).
func (e *Encryptor[T]) EncryptConstantGGSW(out GGSWCiphertext[T], mu Plaintext[T], sigma float64) {
	e.encryptGGSW(out, mu, sigma, e.EncryptZeroGLWE)
}

// TrivialEncryptConstantGGSW encrypts the scalar plaintext mu into out
// using trivial (zero-mask, pure-noise-body) GLWE encryptions in place
// of the real encryption of zero (§4.6 trivial_encrypt_constant_ggsw).
func (e *Encryptor[T]) TrivialEncryptConstantGGSW(out GGSWCiphertext[T], mu Plaintext[T], sigma float64) {
	e.encryptGGSW(out, mu, sigma, e.trivialEncryptZeroGLWE)
}

func (e *Encryptor[T]) encryptGGSW(out GGSWCiphertext[T], mu Plaintext[T], sigma float64, encryptZero func(Ciphertext[T], float64)) {
	decomp := out.DecompParameters()
	rowsPerLevel := e.Parameters.GLWESize()

	for level := 0; level < decomp.Level(); level++ {
		for r := 0; r < rowsPerLevel; r++ {
			encryptZero(out.Row(level, r), sigma)
		}

		delta := mu.Value * decomp.Delta(level)
		for r := 0; r < rowsPerLevel; r++ {
			row := out.Row(level, r)
			diag := row.Value.At(r)
			diag.Coeffs[0] += delta
		}
	}
}

// trivialEncryptZeroGLWE sets ct's masks to zero and fills the body with
// pure Gaussian noise, the trivial-encryption-of-zero variant used by
// [Encryptor.TrivialEncryptConstantGGSW].
func (e *Encryptor[T]) trivialEncryptZeroGLWE(ct Ciphertext[T], sigma float64) {
	k := e.Parameters.GLWERank()
	for i := 0; i < k; i++ {
		ct.Mask(i).Clear()
	}
	e.GaussianSampler.FillSliceAssign(ct.Body().Coeffs, csprng.StdDev(sigma))
}
