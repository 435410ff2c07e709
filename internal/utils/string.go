package utils

import "strings"

// HasSuffixIgnoreCase checks if string has suffix case-insensitively
func HasSuffixIgnoreCase(s, suffix string) bool {
	if len(suffix) > len(s) {
		return false
	}
	return strings.EqualFold(s[len(s)-len(suffix):], suffix)
}

// LineBounds returns the start and end offsets of the line holding offset.
// The end excludes the newline.
func LineBounds(text string, offset int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(text) {
		offset = len(text)
	}
	start := strings.LastIndexByte(text[:offset], '\n') + 1
	end := strings.IndexByte(text[offset:], '\n')
	if end < 0 {
		return start, len(text)
	}
	return start, offset + end
}
