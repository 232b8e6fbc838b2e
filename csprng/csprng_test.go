package csprng_test

import (
	"testing"

	"github.com/sp301415/ringswitch-prf/csprng"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/sha3"
)

var seed = []byte("csprng test seed")

func sampleN(s csprng.Sampler, n int) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		out[i] = s.Sample()
	}
	return out
}

func TestUniformSampler(t *testing.T) {
	t.Run("Deterministic", func(t *testing.T) {
		s0 := csprng.NewUniformSampler(seed, "label")
		s1 := csprng.NewUniformSampler(seed, "label")
		assert.Equal(t, sampleN(s0, 2048), sampleN(s1, 2048))
	})

	t.Run("DomainSeparation", func(t *testing.T) {
		s0 := csprng.NewUniformSampler(seed, "label0")
		s1 := csprng.NewUniformSampler(seed, "label1")
		s2 := csprng.NewUniformSampler([]byte("another seed"), "label0")
		v0 := sampleN(s0, 16)
		assert.NotEqual(t, v0, sampleN(s1, 16))
		assert.NotEqual(t, v0, sampleN(s2, 16))
	})

	t.Run("SampleN", func(t *testing.T) {
		s := csprng.NewUniformSampler(seed, "label")
		for i := 0; i < 4096; i++ {
			assert.Less(t, s.SampleN(17), uint64(17))
		}
	})
}

func TestStreamSampler(t *testing.T) {
	t.Run("Deterministic", func(t *testing.T) {
		s0 := csprng.NewStreamSampler(seed, "label", 0)
		s1 := csprng.NewStreamSampler(seed, "label", 0)
		assert.Equal(t, sampleN(s0, 2048), sampleN(s1, 2048))
	})

	t.Run("NonZero", func(t *testing.T) {
		s := csprng.NewStreamSampler(seed, "label", 0)
		buf := make([]byte, 64)
		s.Read(buf)
		assert.NotEqual(t, make([]byte, 64), buf)
	})

	t.Run("DomainSeparation", func(t *testing.T) {
		v0 := sampleN(csprng.NewStreamSampler(seed, "label", 0), 16)
		assert.NotEqual(t, v0, sampleN(csprng.NewStreamSampler(seed, "label", 1), 16))
		assert.NotEqual(t, v0, sampleN(csprng.NewStreamSampler(seed, "other", 0), 16))
	})

	t.Run("DeriveKey", func(t *testing.T) {
		want := sha3.Sum256(append([]byte("label"), seed...))
		assert.Equal(t, want, csprng.DeriveKey(seed, "label"))
	})

	t.Run("DeriveNonce", func(t *testing.T) {
		full := sha3.Sum256(append(append([]byte("label"), seed...), 1, 0, 0, 0))
		nonce := csprng.DeriveNonce(seed, "label", 1)
		assert.Equal(t, full[:csprng.NonceSize], nonce[:])
	})

	t.Run("SampleN", func(t *testing.T) {
		s := csprng.NewStreamSampler(seed, "label", 0)
		for i := 0; i < 4096; i++ {
			assert.Less(t, s.SampleN(8380417), uint64(8380417))
		}
	})
}
