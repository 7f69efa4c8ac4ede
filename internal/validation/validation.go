// Package validation holds the field rules shared by registration and message
// composition: usernames, password complexity and South African cell numbers.
// All checks are pure and treat the empty string as invalid.
package validation

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	MaxUsernameLength = 5
	MinPasswordLength = 8

	// PasswordSpecials is the set of characters that satisfy the
	// special-character rule.
	PasswordSpecials = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`
)

var (
	phoneSeparators = regexp.MustCompile(`[\s\-()]`)
	phonePattern    = regexp.MustCompile(`^\+27[6-8]\d{7,9}$`)
)

// Username reports whether s contains an underscore and is at most five
// characters long.
func Username(s string) bool {
	return s != "" &&
		strings.Contains(s, "_") &&
		utf8.RuneCountInString(s) <= MaxUsernameLength
}

// PasswordComplexity reports whether s has at least eight characters, an
// uppercase letter, a digit and one of PasswordSpecials.
func PasswordComplexity(s string) bool {
	if utf8.RuneCountInString(s) < MinPasswordLength {
		return false
	}

	var upper, digit bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		}
	}
	return upper && digit && strings.ContainsAny(s, PasswordSpecials)
}

// NormalizePhone strips whitespace, hyphens and parentheses.
func NormalizePhone(s string) string {
	return phoneSeparators.ReplaceAllString(s, "")
}

// Phone reports whether s, once normalized, is +27 followed by 6, 7 or 8 and
// then 7 to 9 more digits.
func Phone(s string) bool {
	if s == "" {
		return false
	}
	return phonePattern.MatchString(NormalizePhone(s))
}
