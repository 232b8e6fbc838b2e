// Package csprng implements deterministic, seeded pseudorandom samplers.
package csprng

// Sampler is a source of uniform random integers.
// Both UniformSampler and StreamSampler implement it.
type Sampler interface {
	// Read fills p with pseudorandom bytes.
	Read(p []byte) (n int, err error)
	// Sample returns a uniformly random uint64.
	Sample() uint64
	// SampleN returns a uniformly random integer in [0, N).
	SampleN(N uint64) uint64
}
