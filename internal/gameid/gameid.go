// Package gameid generates identifiers for bingo sessions.
//
// Ids are UUIDv7 values rendered as 26 characters of Crockford base32, so they
// sort by creation time and stay short enough to read out loud.
package gameid

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Base32 alphabet used by TypeID (Crockford's base32)
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// RandSource interface for dependency injection of randomness
type RandSource interface {
	IntN(n int) int
}

// Generator handles session ID generation with configurable randomness
type Generator struct {
	randSource RandSource
}

// NewGenerator creates a new generator with optional RandSource
func NewGenerator(randSource RandSource) *Generator {
	return &Generator{randSource: randSource}
}

// Generate creates a new session ID from crypto/rand
func Generate() string {
	return NewGenerator(nil).Generate()
}

// Generate creates a new session ID using the generator's RandSource
func (g *Generator) Generate() string {
	var (
		id  uuid.UUID
		err error
	)
	if g.randSource != nil {
		id, err = uuid.NewV7FromReader(sourceReader{g.randSource})
	} else {
		id, err = uuid.NewV7()
	}
	if err != nil {
		panic("failed to generate session id: " + err.Error())
	}
	return encodeBase32(id)
}

// sourceReader adapts a RandSource to io.Reader for uuid.
type sourceReader struct {
	src RandSource
}

func (r sourceReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(r.src.IntN(256))
	}
	return len(p), nil
}

// encodeBase32 encodes a 128-bit UUID as a 26-character base32 string
func encodeBase32(data uuid.UUID) string {
	result := make([]byte, 26)

	// 130 bits of output: two leading zero bits then the 128 bits of data.
	for i := range 26 {
		bitOffset := i*5 - 2
		var value uint8
		for b := range 5 {
			bit := bitOffset + b
			if bit < 0 {
				continue
			}
			if data[bit/8]&(0x80>>(bit%8)) != 0 {
				value |= 1 << (4 - b)
			}
		}
		result[i] = alphabet[value]
	}

	return string(result)
}

// Validate checks if a session ID is valid (26 characters, valid base32)
func Validate(id string) error {
	if len(id) != 26 {
		return fmt.Errorf("session ID must be exactly 26 characters, got %d", len(id))
	}

	// The first character only carries three bits.
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
