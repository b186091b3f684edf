package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)
	for range 20 {
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}

func TestNewDiffersBySeed(t *testing.T) {
	a := New(1)
	b := New(2)
	same := true
	for range 20 {
		if a.IntN(1<<30) != b.IntN(1<<30) {
			same = false
		}
	}
	assert.False(t, same, "different seeds should produce different sequences")
}

func TestSequence(t *testing.T) {
	s := NewSequence(3, 7, -1)

	assert.Equal(t, 3, s.IntN(10))
	assert.Equal(t, 2, s.IntN(5), "values are reduced modulo n")
	assert.Equal(t, 3, s.IntN(4), "negative values wrap into range")
	assert.Equal(t, 0, s.IntN(4), "exhausted sequence returns 0")
	assert.Equal(t, 3, s.Used())

	assert.Panics(t, func() { s.IntN(0) })
}
