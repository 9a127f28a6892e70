// Package b58uuid implements a fixed-width Base58 text encoding for 128-bit UUIDs.
package b58uuid

// Alphabet is the 58-character Base58 alphabet, in digit order: the
// position of a character is its digit value. It omits 0, O, I and l,
// which are easily confused when read aloud or transcribed.
//
// The alphabet is part of the wire format. Reordering or substituting
// characters changes every encoded identifier.
const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// EncodedLen is the exact length of every encoded identifier. The
// width is fixed rather than minimal: 58^21 < 2^128, so 21 characters
// cannot hold every identifier, and 22 always can.
const EncodedLen = 22

// UUIDTextLen is the length of canonical hyphenated UUID text:
// five hexadecimal groups (8-4-4-4-12) joined by four hyphens.
const UUIDTextLen = 36

// reverseAlphabet maps a byte to its digit value, or -1 for bytes
// outside the alphabet. Indexed by the full byte range so that decode
// needs no bounds check; non-ASCII bytes all map to -1.
var reverseAlphabet [256]int8

func init() {
	if len(Alphabet) != 58 {
		panic("b58uuid: alphabet must have exactly 58 characters")
	}
	for i := range reverseAlphabet {
		reverseAlphabet[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		c := Alphabet[i]
		if c >= 0x80 {
			panic("b58uuid: alphabet must be ASCII")
		}
		if reverseAlphabet[c] != -1 {
			panic("b58uuid: alphabet contains a duplicate character")
		}
		reverseAlphabet[c] = int8(i)
	}
}

// IsAlphabet reports whether c is one of the 58 alphabet characters.
func IsAlphabet(c byte) bool {
	return reverseAlphabet[c] >= 0
}
