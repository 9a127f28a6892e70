package b58uuid

import (
	"errors"
	"fmt"
)

// Kind is a stable category for programmatic error handling.
//
// These categories are intended to remain stable across versions.
// Callers should branch on Kind/RuleID rather than matching error strings.
//
// NOTE: Error() strings are intentionally kept human-readable and may evolve.
// Use errors.As to extract *Error for structured handling.
type Kind string

const (
	KindInvalidUUID   Kind = "InvalidUUID"
	KindInvalidLength Kind = "InvalidLength"
	KindInvalidBase58 Kind = "InvalidBase58"
	KindOverflow      Kind = "Overflow"
	KindRandomSource  Kind = "RandomSource"
)

// Error is the library's structured error type.
//
// RuleID is a stable identifier (e.g., B58-LEN-001, B58-ALPHA-001, B58-RANGE-001)
// that names the violated rule of the encoded form.
//
// Expected and Got report the required and observed character counts; they are
// populated for KindInvalidLength and KindInvalidUUID length failures only.
//
// Message is intended for humans; do not match on it.
type Error struct {
	Kind     Kind
	RuleID   string
	Message  string
	Expected int
	Got      int
	Cause    error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func newError(kind Kind, ruleID, msg string) error {
	return &Error{Kind: kind, RuleID: ruleID, Message: msg}
}

func wrapError(kind Kind, ruleID, msg string, cause error) error {
	if cause == nil {
		return newError(kind, ruleID, msg)
	}
	return &Error{Kind: kind, RuleID: ruleID, Message: msg, Cause: cause}
}

func newLengthError(kind Kind, ruleID string, expected, got int) error {
	return &Error{
		Kind:     kind,
		RuleID:   ruleID,
		Message:  fmt.Sprintf("invalid length: expected %d characters, got %d", expected, got),
		Expected: expected,
		Got:      got,
	}
}

// IsKind reports whether err is (or wraps) a *Error with the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// RuleID returns the stable RuleID for a structured error, or "" if unknown.
func RuleID(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.RuleID
}
