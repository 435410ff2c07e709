package suggest

import (
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// buildTrie indexes suggestions by their lower case hint. When two hints
// share a key the better ranked one is kept.
func buildTrie(suggestions []Suggestion) *patricia.Trie {
	trie := patricia.NewTrie()
	for i := range suggestions {
		key := patricia.Prefix(strings.ToLower(suggestions[i].Hint))
		if existing, ok := trie.Get(key).(Suggestion); ok && existing.Rank <= suggestions[i].Rank {
			continue
		}
		trie.Set(key, suggestions[i])
	}
	return trie
}

// SearchTrie returns the suggestions whose hint starts with prefix, ignoring
// case, in rank order.
func SearchTrie(trie *patricia.Trie, prefix string) []Suggestion {
	if trie == nil {
		return []Suggestion{}
	}

	var suggestions []Suggestion
	err := trie.VisitSubtree(patricia.Prefix(strings.ToLower(prefix)), func(p patricia.Prefix, item patricia.Item) error {
		s, ok := item.(Suggestion)
		if !ok {
			log.Errorf("Unknown item type: %T for hint %s", item, p)
			return nil
		}
		suggestions = append(suggestions, s)
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting trie subtree: %v", err)
	}

	sort.Slice(suggestions, func(i, j int) bool {
		return suggestions[i].Rank < suggestions[j].Rank
	})
	return suggestions
}
