package b58uuid

import "fmt"

// Decode inverts Encode, mapping a 22-character Base58 string back to
// the 16-byte identifier it encodes.
//
// Checks run in a fixed order: length (KindInvalidLength), alphabet
// membership (KindInvalidBase58), then 128-bit range (KindOverflow).
// The range check is not theoretical: 58^22 > 2^128, so inputs such as
// 22 'z' characters pass the first two checks and still name no
// identifier.
func Decode(s string) ([16]byte, error) {
	var out [16]byte
	if len(s) != EncodedLen {
		return out, newLengthError(KindInvalidLength, "B58-LEN-001", EncodedLen, len(s))
	}
	var digits [EncodedLen]byte
	for i := 0; i < len(s); i++ {
		d := reverseAlphabet[s[i]]
		if d < 0 {
			return out, newError(KindInvalidBase58, "B58-ALPHA-001",
				fmt.Sprintf("invalid base58 character %q at position %d", s[i], i))
		}
		digits[i] = byte(d)
	}
	v, ok := digitsToMagnitude(digits[:])
	if !ok {
		return out, newError(KindOverflow, "B58-RANGE-001",
			"encoded value exceeds the 128-bit maximum")
	}
	return v.bytes(), nil
}
