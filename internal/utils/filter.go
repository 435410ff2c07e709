package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsIdentifierStart reports whether r may begin a Python identifier.
func IsIdentifierStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

// IsIdentifierPart reports whether r may continue a Python identifier.
func IsIdentifierPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// IsIdentifier checks that s is a single identifier: no dots, no spaces and
// nothing a regular expression would treat specially.
func IsIdentifier(s string) bool {
	if s == "" || !utf8.ValidString(s) {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !IsIdentifierStart(r) {
				return false
			}
			continue
		}
		if !IsIdentifierPart(r) {
			return false
		}
	}
	return true
}

// IsDottedName checks for identifiers joined by dots, e.g. os.path.join
func IsDottedName(s string) bool {
	if s == "" {
		return false
	}
	for _, part := range strings.Split(s, ".") {
		if !IsIdentifier(part) {
			return false
		}
	}
	return true
}

// IsValidInput checks if a parameter name should be processed at all.
// Rejects empty names, names longer than maxLen and non-identifiers.
func IsValidInput(s string, maxLen int) bool {
	if len(s) == 0 {
		return false
	}
	if maxLen > 0 && len(s) > maxLen {
		return false
	}
	return IsIdentifier(s)
}
