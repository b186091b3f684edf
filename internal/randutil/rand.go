// Package randutil builds the random sources decks draw from: seeded PCG
// generators for reproducible runs and scripted sequences for tests.
package randutil

import (
	crand "crypto/rand"
	"encoding/binary"
	rand "math/rand/v2"
	"time"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a PCG-backed *rand.Rand for seed. Equal seeds replay the same
// deals, which every deterministic test and the --seed flag rely on.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// NewEntropy returns a *rand.Rand seeded from the operating system. It falls
// back to the wall clock if the system source is unavailable.
func NewEntropy() *rand.Rand {
	return New(EntropySeed())
}

// EntropySeed returns a fresh non-deterministic seed
func EntropySeed() int64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(buf[:]))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
