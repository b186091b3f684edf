// Package gameid generates sortable session identifiers: a UUIDv7 encoded as
// 26 lowercase Crockford base32 characters.
package gameid

import (
	"crypto/rand"
	"fmt"
	"strings"

	"github.com/coder/quartz"
)

// Crockford's base32, lowercase
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length of an encoded ID
const Length = 26

// RandSource supplies random bytes one at a time. deck.Picker implementations
// such as randutil.New satisfy it.
type RandSource interface {
	IntN(n int) int
}

// Generator produces IDs from a clock and an optional RandSource. A nil
// RandSource means crypto/rand.
type Generator struct {
	clock      quartz.Clock
	randSource RandSource
}

// NewGenerator creates a generator. A nil clock uses the wall clock.
func NewGenerator(clock quartz.Clock, randSource RandSource) *Generator {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Generator{clock: clock, randSource: randSource}
}

// Generate returns a fresh ID using the wall clock and crypto/rand
func Generate() string {
	return NewGenerator(nil, nil).Generate()
}

// Generate returns a fresh ID
func (g *Generator) Generate() string {
	return encodeBase32(g.uuidV7())
}

// uuidV7 lays out a 48-bit millisecond timestamp followed by random bits,
// with the version nibble set to 7 and the variant bits to 10.
func (g *Generator) uuidV7() [16]byte {
	var uuid [16]byte

	now := g.clock.Now().UnixMilli()
	for i := range 6 {
		uuid[i] = byte(now >> (40 - 8*i))
	}

	if g.randSource != nil {
		for i := 6; i < 16; i++ {
			uuid[i] = byte(g.randSource.IntN(256))
		}
	} else if _, err := rand.Read(uuid[6:]); err != nil {
		panic("gameid: reading random bytes: " + err.Error())
	}

	uuid[6] = (uuid[6] & 0x0f) | 0x70
	uuid[8] = (uuid[8] & 0x3f) | 0x80

	return uuid
}

// encodeBase32 writes 128 bits as 26 five-bit groups, the last group padded
// with two zero bits.
func encodeBase32(data [16]byte) string {
	out := make([]byte, Length)
	for i := range out {
		bitOffset := i * 5
		byteIndex := bitOffset / 8
		bitIndex := bitOffset % 8

		var value uint8
		if bitIndex <= 3 {
			value = (data[byteIndex] >> (3 - bitIndex)) & 0x1f
		} else {
			value = (data[byteIndex] << (bitIndex - 3)) & 0x1f
			if byteIndex+1 < len(data) {
				value |= data[byteIndex+1] >> (11 - bitIndex)
			}
		}
		out[i] = alphabet[value]
	}
	return string(out)
}

// Validate checks that id could have come from Generate
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("session ID must be exactly %d characters, got %d", Length, len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("session ID first character must be 0-7, got %c", id[0])
	}
	for i, c := range id {
		if !strings.ContainsRune(alphabet, c) {
			return fmt.Errorf("invalid character %c at position %d", c, i)
		}
	}
	return nil
}
