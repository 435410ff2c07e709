package estimate

import (
	"strings"

	"github.com/bastiangx/typehint/internal/utils"
)

// accumulator collects hints for one Estimate call in insertion order.
type accumulator struct {
	hints  []string
	filter *utils.SuggestionFilter
}

func newAccumulator() *accumulator {
	return &accumulator{filter: utils.NewSuggestionFilter()}
}

// add appends hint unless it is empty or already present.
func (a *accumulator) add(hint string) {
	hint = strings.TrimSpace(hint)
	if a.filter.ShouldInclude(hint) {
		a.hints = append(a.hints, hint)
	}
}

// tryAdd adds hint when ok and reports ok, so strategies chain with ||.
func (a *accumulator) tryAdd(hint string, ok bool) bool {
	if ok {
		a.add(hint)
	}
	return ok
}

func (a *accumulator) provided(hint string) bool {
	return a.filter.Seen(hint)
}

func (a *accumulator) empty() bool {
	return len(a.hints) == 0
}
