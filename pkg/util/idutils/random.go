package idutils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// DefaultLength matches the id length used by the host for documents and flags.
const DefaultLength = 16

// IDGenerator produces opaque identifiers.
type IDGenerator interface {
	NewID() (string, error)
}

// RandomIDGenerator returns fixed-length alphanumeric ids.
type RandomIDGenerator struct {
	length int
}

func NewRandomIDGenerator(length int) *RandomIDGenerator {
	if length <= 0 {
		length = DefaultLength
	}
	return &RandomIDGenerator{length: length}
}

func (g *RandomIDGenerator) NewID() (string, error) {
	return RandomID(g.length)
}

// RandomID returns an n-character string over [a-zA-Z0-9].
func RandomID(n int) (string, error) {
	id := make([]byte, n)
	limit := big.NewInt(int64(len(charset)))
	for i := range id {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("read random id: %w", err)
		}
		id[i] = charset[idx.Int64()]
	}
	return string(id), nil
}
