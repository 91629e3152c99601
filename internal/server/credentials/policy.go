// Package credentials holds the password policy applied when a user rotates
// their credential. Everything here is pure: no I/O and no state.
package credentials

import (
	"unicode/utf8"

	"github.com/dmitrijs2005/storefront/internal/common"
)

const (
	MinLength = 6
	MaxLength = 10
)

// Verifier checks a plaintext candidate against a stored one-way hash.
type Verifier interface {
	Matches(hash, password string) bool
}

// IsStrong reports whether candidate is 6–10 characters long and contains
// at least one ASCII letter, one ASCII digit and one character that is
// neither. Line breaks are never accepted.
func IsStrong(candidate string) bool {
	if !utf8.ValidString(candidate) {
		return false
	}
	n := utf8.RuneCountInString(candidate)
	if n < MinLength || n > MaxLength {
		return false
	}

	var letter, digit, other bool
	for _, r := range candidate {
		switch {
		case r == '\n' || r == '\r' || r == '\u2028' || r == '\u2029':
			return false
		case ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z'):
			letter = true
		case '0' <= r && r <= '9':
			digit = true
		default:
			other = true
		}
	}
	return letter && digit && other
}

// IsNoOpChange reports whether candidate is the credential already stored
// as currentHash. The comparison runs through the same hash function used
// for storage, never against plaintext.
func IsNoOpChange(v Verifier, candidate, currentHash string) bool {
	return v.Matches(currentHash, candidate)
}

// CheckStrength returns a policy violation if candidate is not strong.
func CheckStrength(candidate string) error {
	if !IsStrong(candidate) {
		return common.PolicyViolationf("password must be %d-%d characters and include a letter, a digit and a special character", MinLength, MaxLength)
	}
	return nil
}

// CheckRotation returns a policy violation if candidate equals the current
// credential.
func CheckRotation(v Verifier, candidate, currentHash string) error {
	if IsNoOpChange(v, candidate, currentHash) {
		return common.PolicyViolationf("new password must differ from the current one")
	}
	return nil
}
