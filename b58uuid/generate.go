package b58uuid

import (
	crand "crypto/rand"
	"io"

	"github.com/google/uuid"
)

// Generator produces freshly encoded identifiers from an entropy
// source. Source failures surface as KindRandomSource errors; the
// generator never falls back to weaker randomness and never panics.
type Generator struct {
	rand io.Reader
}

// NewGenerator returns a Generator reading entropy from rand.
// A nil rand selects crypto/rand.Reader.
func NewGenerator(rand io.Reader) *Generator {
	if rand == nil {
		rand = crand.Reader
	}
	return &Generator{rand: rand}
}

// Generate returns the Base58 form of 16 fresh random bytes. All 128
// bits of the source reach the encoding unaltered.
func (g *Generator) Generate() (string, error) {
	var b [16]byte
	if _, err := io.ReadFull(g.rand, b[:]); err != nil {
		return "", wrapError(KindRandomSource, "B58-RAND-001",
			"reading from the randomness source failed", err)
	}
	return Encode(b), nil
}

// GenerateUUID returns the Base58 form of a fresh RFC 4122 version-4
// UUID. Unlike Generate, six of the 128 bits are spent on the version
// and variant markers.
func (g *Generator) GenerateUUID() (string, error) {
	id, err := uuid.NewRandomFromReader(g.rand)
	if err != nil {
		return "", wrapError(KindRandomSource, "B58-RAND-001",
			"reading from the randomness source failed", err)
	}
	return Encode(id), nil
}

var defaultGenerator = NewGenerator(nil)

// Generate returns the Base58 form of 16 bytes drawn from crypto/rand.
func Generate() (string, error) {
	return defaultGenerator.Generate()
}

// GenerateUUID returns the Base58 form of a fresh version-4 UUID drawn
// from crypto/rand.
func GenerateUUID() (string, error) {
	return defaultGenerator.GenerateUUID()
}
