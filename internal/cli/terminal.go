package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bastiangx/typehint/pkg/suggest"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75"))
	estimatedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75"))
	builtinStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	genericStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("180"))
)

func kindLabel(k suggest.Kind) string {
	switch k {
	case suggest.Estimated:
		return "estimated"
	case suggest.Generic:
		return "typing"
	default:
		return "builtin"
	}
}

func styleFor(k suggest.Kind) lipgloss.Style {
	switch k {
	case suggest.Estimated:
		return estimatedStyle
	case suggest.Generic:
		return genericStyle
	default:
		return builtinStyle
	}
}

// renderSuggestions formats one numbered line per suggestion.
func renderSuggestions(param string, suggestions []suggest.Suggestion) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d hints for '%s':\n", len(suggestions), param)
	for _, s := range suggestions {
		hint := styleFor(s.Kind).Render(s.Hint)
		fmt.Fprintf(&b, "%2d. %-30s (%s)\n", s.Rank, hint, kindLabel(s.Kind))
	}
	return b.String()
}
