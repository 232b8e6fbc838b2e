package csprng

import (
	"crypto/aes"
	"crypto/cipher"
	"math"

	"golang.org/x/crypto/sha3"
)

const (
	// KeySize is the size of the AES-256 key derived from a seed.
	KeySize = 32
	// NonceSize is the size of the CTR initial counter block.
	NonceSize = 16
)

// StreamSampler samples values from uniform distribution.
// This uses AES-256 in counter mode as a underlying prng,
// keyed by SHA3-256(label || seed).
type StreamSampler struct {
	prng cipher.Stream

	buf [bufSize]byte
	ptr int
}

// NewStreamSampler creates a new StreamSampler for the given seed, label and index.
// The index separates streams sharing a key: each index gets its own initial counter block.
//
// Panics when AES initialization fails.
func NewStreamSampler(seed []byte, label string, index uint32) *StreamSampler {
	key := DeriveKey(seed, label)
	block, err := aes.NewCipher(key[:])
	if err != nil {
		panic(err)
	}

	iv := DeriveNonce(seed, label, index)
	prng := cipher.NewCTR(block, iv[:])

	return &StreamSampler{
		prng: prng,
		ptr:  bufSize,
	}
}

// DeriveKey returns SHA3-256(label || seed).
func DeriveKey(seed []byte, label string) [KeySize]byte {
	h := sha3.New256()
	h.Write([]byte(label))
	h.Write(seed)

	var key [KeySize]byte
	copy(key[:], h.Sum(nil))
	return key
}

// DeriveNonce returns the first NonceSize bytes of
// SHA3-256(label || seed || index), with index encoded in little endian.
func DeriveNonce(seed []byte, label string, index uint32) [NonceSize]byte {
	h := sha3.New256()
	h.Write([]byte(label))
	h.Write(seed)
	h.Write([]byte{byte(index), byte(index >> 8), byte(index >> 16), byte(index >> 24)})

	var nonce [NonceSize]byte
	copy(nonce[:], h.Sum(nil))
	return nonce
}

// Read implements the [io.Reader] interface.
// It writes the raw keystream to p.
func (s *StreamSampler) Read(p []byte) (n int, err error) {
	clear(p)
	s.prng.XORKeyStream(p, p)
	return len(p), nil
}

// Sample uniformly samples a random uint64.
func (s *StreamSampler) Sample() uint64 {
	if s.ptr == bufSize {
		s.Read(s.buf[:])
		s.ptr = 0
	}

	res := readUint64(s.buf[s.ptr:])
	s.ptr += 8

	return res
}

// SampleN uniformly samples a random integer in [0, N).
func (s *StreamSampler) SampleN(N uint64) uint64 {
	bound := math.MaxUint64 - (math.MaxUint64 % N)
	for {
		res := s.Sample()
		if res < bound {
			return res % N
		}
	}
}
