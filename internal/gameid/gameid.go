// Package gameid generates session identifiers: a UUIDv7 encoded as a
// 26-character Crockford base32 string, so IDs sort by creation time.
package gameid

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Base32 alphabet used by TypeID (Crockford's base32)
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length is the number of characters in an encoded ID
const Length = 26

// Generator creates IDs from a UUID source
type Generator struct {
	newUUID func() (uuid.UUID, error)
}

// NewGenerator creates a generator. A nil source uses uuid.NewV7.
func NewGenerator(source func() (uuid.UUID, error)) *Generator {
	if source == nil {
		source = uuid.NewV7
	}
	return &Generator{newUUID: source}
}

// Generate creates a new session ID
func Generate() string {
	return NewGenerator(nil).Generate()
}

// Generate creates a new ID from the generator's source. It panics if the
// source fails, which for uuid.NewV7 means the system random source is
// broken.
func (g *Generator) Generate() string {
	id, err := g.newUUID()
	if err != nil {
		panic("failed to generate session id: " + err.Error())
	}
	return Encode(id)
}

// Encode renders a UUID as 26 base32 characters. The 128 bits are treated as
// a 130-bit number with two leading zero bits, so the first character is
// always 0-7.
func Encode(id uuid.UUID) string {
	var hi, lo uint64
	for i := 0; i < 8; i++ {
		hi = hi<<8 | uint64(id[i])
		lo = lo<<8 | uint64(id[i+8])
	}

	var b strings.Builder
	b.Grow(Length)
	for i := 0; i < Length; i++ {
		shift := uint((Length - 1 - i) * 5)

		var v uint64
		switch {
		case shift >= 64:
			v = hi >> (shift - 64)
		case shift+5 <= 64:
			v = lo >> shift
		default:
			v = lo>>shift | hi<<(64-shift)
		}
		b.WriteByte(alphabet[v&0x1f])
	}
	return b.String()
}

// Short returns the last eight characters of an ID, which carry random bits
// and are enough to tell sessions apart on screen.
func Short(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[len(id)-8:]
}

// Validate checks if an ID is valid (26 characters, valid base32)
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("session ID must be exactly %d characters, got %d", Length, len(id))
	}

	// Check first character doesn't exceed 7 (to ensure it represents ≤ 128 bits)
	if id[0] > '7' {
		return fmt.Errorf("session ID first character must be 0-7, got %c", id[0])
	}

	for i, char := range id {
		if !strings.ContainsRune(alphabet, char) {
			return fmt.Errorf("invalid character %c at position %d", char, i)
		}
	}

	return nil
}
