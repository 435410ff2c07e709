package estimate

import (
	"github.com/bastiangx/typehint/pkg/generic"
	"github.com/bastiangx/typehint/pkg/typename"
)

// Estimation is the result of one Estimate call.
type Estimation struct {
	acc           *accumulator
	typing        generic.Import
	usedWorkspace bool
}

// Hints returns the estimated hints, most likely first. The slice is a copy.
func (es *Estimation) Hints() []string {
	out := make([]string, len(es.acc.hints))
	copy(out, es.acc.hints)
	return out
}

// Remaining returns the built-in types that were not hinted, in enumeration order.
func (es *Estimation) Remaining() []typename.Name {
	var out []typename.Name
	for _, t := range typename.All() {
		if !es.acc.provided(string(t)) {
			out = append(out, t)
		}
	}
	return out
}

// RemainingGenericHints returns the generic opening forms that were not hinted.
func (es *Estimation) RemainingGenericHints() []string {
	return es.typing.Remaining(es.acc.provided)
}

// TypingImported reports whether the document imports the typing module.
func (es *Estimation) TypingImported() bool {
	return es.typing.Present()
}

// UsedWorkspace reports whether the result depends on other documents, i.e.
// the workspace search was consulted because no local hint was found.
func (es *Estimation) UsedWorkspace() bool {
	return es.usedWorkspace
}
