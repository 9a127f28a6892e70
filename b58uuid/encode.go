package b58uuid

// Encode returns the fixed 22-character Base58 form of a 16-byte
// identifier. The bytes are read as a big-endian unsigned 128-bit
// magnitude and left-padded with '1', the alphabet's zero character.
// Every identifier has exactly one encoded form; Encode never fails.
func Encode(data [16]byte) string {
	digits := magnitudeToDigits(uint128FromBytes(data))
	var out [EncodedLen]byte
	for i, d := range digits {
		out[i] = Alphabet[d]
	}
	return string(out[:])
}
