package csprng

import (
	"crypto/aes"
	"fmt"
)

// fips197Key, fips197Plaintext and fips197Ciphertext are the AES-128 test
// vector from FIPS-197, used to check the underlying AES kernel this
// generator's CTR stream is built on (§8.7).
var (
	fips197Key = [16]byte{
		0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
		0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f,
	}
	fips197Plaintext = [16]byte{
		0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77,
		0x88, 0x99, 0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff,
	}
	fips197Ciphertext = [16]byte{
		0x69, 0xc4, 0xe0, 0xd8, 0x6a, 0x7b, 0x04, 0x30,
		0xd8, 0xcd, 0xb7, 0x80, 0x70, 0xb4, 0xc5, 0x5a,
	}
)

// EncryptBlocks runs the AES-128 block cipher independently over each of
// the 8 input blocks, mirroring the batched 8-block refill §4.1 performs
// internally on (C, C+1, ..., C+7).
func EncryptBlocks(key [16]byte, blocks [8][16]byte) [8][16]byte {
	block, err := aes.NewCipher(key[:])
	if err != nil {
		panic(fmt.Sprintf("csprng: failed to initialize AES-128: %v", err))
	}
	var out [8][16]byte
	for i := range blocks {
		block.Encrypt(out[i][:], blocks[i][:])
	}
	return out
}

// SelfTest reports whether the AES-128 kernel backing this package agrees
// with the FIPS-197 test vector (§8.7): encrypting 8 copies of the FIPS
// plaintext under the FIPS key must yield the FIPS ciphertext in every
// slot.
func SelfTest() bool {
	var blocks [8][16]byte
	for i := range blocks {
		blocks[i] = fips197Plaintext
	}
	out := EncryptBlocks(fips197Key, blocks)
	for i := range out {
		if out[i] != fips197Ciphertext {
			return false
		}
	}
	return true
}
