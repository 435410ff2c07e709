package utils

import (
	"strings"
)

// SuggestionFilter drops repeated suggestions. Keys are trimmed and compared
// exactly, "list" and "List[" being different hints. Not safe for concurrent use.
type SuggestionFilter struct {
	seen map[string]struct{}
}

// NewSuggestionFilter creates a filter that already excludes the given words.
func NewSuggestionFilter(exclude ...string) *SuggestionFilter {
	f := &SuggestionFilter{seen: make(map[string]struct{}, len(exclude)+8)}
	for _, w := range exclude {
		f.seen[strings.TrimSpace(w)] = struct{}{}
	}
	return f
}

// ShouldInclude reports whether word is new and records it.
// Empty words are never included.
func (f *SuggestionFilter) ShouldInclude(word string) bool {
	key := strings.TrimSpace(word)
	if key == "" {
		return false
	}
	if _, ok := f.seen[key]; ok {
		return false
	}
	f.seen[key] = struct{}{}
	return true
}

// Seen reports whether word was already included or excluded.
func (f *SuggestionFilter) Seen(word string) bool {
	_, ok := f.seen[strings.TrimSpace(word)]
	return ok
}
