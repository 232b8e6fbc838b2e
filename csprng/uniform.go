package csprng

import (
	"math"

	"golang.org/x/crypto/blake2b"
)

// bufSize is the default buffer size of samplers.
const bufSize = 8192

// UniformSampler samples values from uniform distribution.
// This uses blake2b XOF as a underlying prng.
type UniformSampler struct {
	prng blake2b.XOF

	buf [bufSize]byte
	ptr int
}

// NewUniformSampler creates a new UniformSampler,
// absorbing label and then seed.
// Two samplers created with the same label and seed output the same stream.
//
// Panics when blake2b initialization fails.
func NewUniformSampler(seed []byte, label string) *UniformSampler {
	prng, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, nil)
	if err != nil {
		panic(err)
	}

	if _, err = prng.Write([]byte(label)); err != nil {
		panic(err)
	}
	if _, err = prng.Write(seed); err != nil {
		panic(err)
	}

	return &UniformSampler{
		prng: prng,

		buf: [bufSize]byte{},
		ptr: bufSize,
	}
}

// Read implements the [io.Reader] interface.
func (s *UniformSampler) Read(p []byte) (n int, err error) {
	return s.prng.Read(p)
}

// Sample uniformly samples a random uint64.
func (s *UniformSampler) Sample() uint64 {
	if s.ptr == bufSize {
		if _, err := s.prng.Read(s.buf[:]); err != nil {
			panic(err)
		}
		s.ptr = 0
	}

	res := readUint64(s.buf[s.ptr:])
	s.ptr += 8

	return res
}

// SampleN uniformly samples a random integer in [0, N).
func (s *UniformSampler) SampleN(N uint64) uint64 {
	bound := math.MaxUint64 - (math.MaxUint64 % N)
	for {
		res := s.Sample()
		if res < bound {
			return res % N
		}
	}
}

// readUint64 decodes the first 8 bytes of b in little endian.
func readUint64(b []byte) uint64 {
	var res uint64
	res |= uint64(b[0])
	res |= uint64(b[1]) << 8
	res |= uint64(b[2]) << 16
	res |= uint64(b[3]) << 24
	res |= uint64(b[4]) << 32
	res |= uint64(b[5]) << 40
	res |= uint64(b[6]) << 48
	res |= uint64(b[7]) << 56
	return res
}
