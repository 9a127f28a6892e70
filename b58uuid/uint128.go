package b58uuid

import (
	"encoding/binary"
	"math/bits"
)

// uint128 is an unsigned 128-bit magnitude held as two machine words,
// most significant first. The codec needs exact arithmetic at the
// 128-bit boundary: 58^22 exceeds 2^128, so decoding must detect the
// first carry out of the high word instead of silently wrapping.
type uint128 struct {
	hi, lo uint64
}

// uint128FromBytes interprets b as a big-endian unsigned integer.
func uint128FromBytes(b [16]byte) uint128 {
	return uint128{
		hi: binary.BigEndian.Uint64(b[0:8]),
		lo: binary.BigEndian.Uint64(b[8:16]),
	}
}

// bytes returns the big-endian 16-byte form of v.
func (v uint128) bytes() [16]byte {
	var b [16]byte
	binary.BigEndian.PutUint64(b[0:8], v.hi)
	binary.BigEndian.PutUint64(b[8:16], v.lo)
	return b
}

// divmod58 returns v/58 and v%58. The remainder fed into the low-word
// division is always below 58, so bits.Div64 cannot trap.
func (v uint128) divmod58() (uint128, byte) {
	qhi := v.hi / 58
	qlo, rem := bits.Div64(v.hi%58, v.lo, 58)
	return uint128{hi: qhi, lo: qlo}, byte(rem)
}

// mul58add returns v*58 + d, reporting whether the result still fits
// in 128 bits. A false return means the true value is at least 2^128.
func (v uint128) mul58add(d byte) (uint128, bool) {
	hiHi, hiLo := bits.Mul64(v.hi, 58)
	if hiHi != 0 {
		return uint128{}, false
	}
	loHi, loLo := bits.Mul64(v.lo, 58)
	hi, carry := bits.Add64(hiLo, loHi, 0)
	if carry != 0 {
		return uint128{}, false
	}
	lo, carry := bits.Add64(loLo, uint64(d), 0)
	hi, carry = bits.Add64(hi, 0, carry)
	if carry != 0 {
		return uint128{}, false
	}
	return uint128{hi: hi, lo: lo}, true
}

// magnitudeToDigits expands v into exactly EncodedLen base-58 digit
// values, most significant first. Small magnitudes come out with
// leading zero digits; the width never varies. 22 digits always
// suffice because 58^22 > 2^128.
func magnitudeToDigits(v uint128) [EncodedLen]byte {
	var digits [EncodedLen]byte
	for i := EncodedLen - 1; i >= 0; i-- {
		v, digits[i] = v.divmod58()
	}
	return digits
}

// digitsToMagnitude folds base-58 digit values, most significant
// first, into a 128-bit magnitude. ok is false when the digits encode
// a value above 2^128 - 1.
func digitsToMagnitude(digits []byte) (uint128, bool) {
	var v uint128
	for _, d := range digits {
		var ok bool
		if v, ok = v.mul58add(d); !ok {
			return uint128{}, false
		}
	}
	return v, true
}
