// Package csprng implements the cryptographically-strong byte stream this
// module draws uniform and Gaussian torus samples from, and the AES-128-CTR
// kernel backing it.
package csprng

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"
	"sync"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/sys/cpu"
	"go.uber.org/zap"
)

const (
	keySize    = 16
	stateSize  = 16
	bufferSize = 128 // 8 AES blocks, refilled together per §4.1.
)

var (
	advisoryOnce sync.Once
	logger       *zap.Logger
)

func diagnosticLogger() *zap.Logger {
	advisoryOnce.Do(func() {
		l, err := zap.NewProduction()
		if err != nil {
			l = zap.NewNop()
		}
		logger = l
	})
	return logger
}

// emitAccelerationAdvisory logs a one-line, non-fatal warning if the host
// advertises AES, RDSEED and SSE2 hardware acceleration, since this
// generator never uses them directly (§6). Demoted from the original's
// stderr println to a structured log event, per the Design Note in §9.
func emitAccelerationAdvisory() {
	if cpu.X86.HasAES && cpu.X86.HasRDSEED && cpu.X86.HasSSE2 {
		diagnosticLogger().Warn(
			"host supports AES/RDSEED/SSE2 acceleration; this generator uses the portable AES-128-CTR path",
		)
	}
}

// Generator is an AES-128-CTR pseudo-random byte stream.
//
// Generator is not safe for concurrent use. It owns its counter and round
// keys exclusively; two Generators seeded from OS entropy are statistically
// independent.
type Generator struct {
	stream cipher.Stream
	buffer [bufferSize]byte
	pos    int
}

// GoString implements [fmt.GoStringer]. It never reveals the key or
// counter state, printing only a fixed label.
func (g *Generator) GoString() string { return "Generator" }

// String implements [fmt.Stringer]. It never reveals the key or counter
// state, printing only a fixed label.
func (g *Generator) String() string { return "Generator" }

// NewGenerator returns a Generator seeded from the OS entropy pool.
//
// Panics (EntropyUnavailable) if the OS entropy source cannot be read.
func NewGenerator() *Generator {
	return NewGeneratorWithSeed(nil, nil)
}

// NewGeneratorWithSeed returns a Generator seeded with the given key and
// counter state. A nil key or state is drawn fresh from the OS entropy
// pool and expanded via HKDF-SHA256 (§2 of SPEC_FULL.md); a non-nil
// key/state is used directly, bit for bit, which is the path the
// determinism property (§8.5) is defined over.
//
// Panics (EntropyUnavailable) if entropy must be drawn and cannot be.
func NewGeneratorWithSeed(key, state []byte) *Generator {
	emitAccelerationAdvisory()

	if key == nil {
		key = expandSeed(generateInitializationVector())
	}
	if state == nil {
		state = expandSeed(generateInitializationVector())
	}
	if len(key) != keySize {
		panic(fmt.Sprintf("csprng: key must be %d bytes, got %d", keySize, len(key)))
	}
	if len(state) != stateSize {
		panic(fmt.Sprintf("csprng: state must be %d bytes, got %d", stateSize, len(state)))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		panic(fmt.Sprintf("csprng: failed to initialize AES-128: %v", err))
	}

	g := &Generator{
		stream: cipher.NewCTR(block, state),
		pos:    bufferSize,
	}
	return g
}

// generateInitializationVector reads exactly 16 bytes from the OS entropy
// pool. Any failure is fatal (§6, §7 EntropyUnavailable): there is no
// recovery path at this layer.
func generateInitializationVector() []byte {
	buf := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		panic(fmt.Sprintf("csprng: failed to read from entropy source: %v", err))
	}
	return buf
}

// expandSeed stretches 16 raw entropy bytes into a 16-byte key or counter
// via HKDF-SHA256, rather than using the raw draw directly.
func expandSeed(raw []byte) []byte {
	out := make([]byte, 16)
	r := hkdf.New(sha256.New, raw, nil, []byte("glwe-core csprng seed"))
	if _, err := io.ReadFull(r, out); err != nil {
		panic(fmt.Sprintf("csprng: HKDF seed expansion failed: %v", err))
	}
	return out
}

// refill recomputes the 128-byte keystream buffer, consuming 8 AES-128
// block encryptions at the current counter position and advancing it.
func (g *Generator) refill() {
	var zero [bufferSize]byte
	g.stream.XORKeyStream(g.buffer[:], zero[:])
	g.pos = 0
}

// GenerateNext returns the next byte of the stream.
func (g *Generator) GenerateNext() byte {
	if g.pos == bufferSize {
		g.refill()
	}
	b := g.buffer[g.pos]
	g.pos++
	return b
}

// Read fills p with bytes from the stream, consuming the refill buffer as
// needed. It always returns len(p), nil, implementing [io.Reader].
func (g *Generator) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = g.GenerateNext()
	}
	return len(p), nil
}
