package b58uuid

import (
	"github.com/google/uuid"
)

// EncodeUUID parses canonical hyphenated UUID text and returns its
// 22-character Base58 form. Only the canonical shape is accepted:
// exactly 36 characters with hyphens at offsets 8, 13, 18 and 23.
// Hexadecimal digits may be upper or lower case. Braced, URN-prefixed
// and unhyphenated spellings are rejected.
func EncodeUUID(text string) (string, error) {
	if len(text) != UUIDTextLen {
		return "", newLengthError(KindInvalidUUID, "B58-UUID-001", UUIDTextLen, len(text))
	}
	id, err := uuid.Parse(text)
	if err != nil {
		return "", wrapError(KindInvalidUUID, "B58-UUID-002",
			"malformed canonical UUID text", err)
	}
	return Encode(id), nil
}

// DecodeToUUID decodes a 22-character Base58 string and renders the
// identifier as canonical lowercase hyphenated UUID text.
func DecodeToUUID(s string) (string, error) {
	id, err := ToUUID(s)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// FromUUID returns the 22-character Base58 form of id.
func FromUUID(id uuid.UUID) string {
	return Encode(id)
}

// ToUUID decodes a 22-character Base58 string into a uuid.UUID.
func ToUUID(s string) (uuid.UUID, error) {
	b, err := Decode(s)
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.UUID(b), nil
}
