package search

import (
	"fmt"
	"regexp"
	"strings"
)

// Source tells where an estimated type came from.
type Source int

const (
	ClassDefinition Source = iota
	FunctionDefinitionReturnHint
	DirectValue
	ValueOfOtherVariable
)

func (s Source) String() string {
	switch s {
	case ClassDefinition:
		return "class definition"
	case FunctionDefinitionReturnHint:
		return "function return hint"
	case DirectValue:
		return "value"
	case ValueOfOtherVariable:
		return "value of other variable"
	default:
		return fmt.Sprintf("Source(%d)", int(s))
	}
}

// Result is the outcome of a variable search. It is never modified after
// construction.
type Result struct {
	TypeName        string
	Source          Source
	ValueAssignment string
}

// Ambiguous reports whether the assigned value is a conditional expression
// whose branches have different types. Class definitions are exempt.
func (r *Result) Ambiguous() bool {
	if r == nil || r.Source == ClassDefinition {
		return false
	}
	return InvalidTernary(r.TypeName, r.ValueAssignment)
}

var (
	valueHead      = regexp.MustCompile(`^(` + anyName + `)(\()?`)
	probablyAClass = regexp.MustCompile(`^([A-Za-z0-9_]+\.)*[A-Z]`)
)

// VariableWithSameName finds an assignment to name in text and estimates the
// type of the assigned value. Returns nil when nothing usable is found.
func VariableWithSameName(name, text string) *Result {
	if !ValidName(name) {
		return nil
	}
	return resolveVariable(name, text, true)
}

// resolveVariable follows at most one "a = b" hop when follow is set.
func resolveVariable(name, text string, follow bool) *Result {
	value, ok := assignedValue(name, text)
	if !ok {
		return nil
	}

	if t, ok := DetectType(value); ok {
		return &Result{TypeName: string(t), Source: DirectValue, ValueAssignment: value}
	}

	m := valueHead.FindStringSubmatch(value)
	if m == nil {
		return nil
	}
	ident := m[1]

	if m[2] != "" {
		return resolveCall(ident, value, text)
	}

	if !follow || isImported(ident, text, true) {
		return nil
	}
	other, ok := assignedValue(ident, text)
	if !ok {
		return nil
	}
	t, ok := DetectType(other)
	if !ok || InvalidTernary(string(t), other) {
		return nil
	}
	return &Result{TypeName: string(t), Source: ValueOfOtherVariable, ValueAssignment: value}
}

func resolveCall(ident, value, text string) *Result {
	if classDefined(ident, text) {
		return &Result{TypeName: ident, Source: ClassDefinition, ValueAssignment: value}
	}
	if probablyAClass.MatchString(ident) && !functionDefined(ident, text) {
		return &Result{TypeName: ident, Source: DirectValue, ValueAssignment: value}
	}
	fn := ident
	if i := strings.LastIndexByte(fn, '.'); i >= 0 {
		fn = fn[i+1:]
	}
	if fn == "" {
		return nil
	}
	if hint, ok := returnHint(fn, text); ok {
		return &Result{TypeName: hint, Source: FunctionDefinitionReturnHint, ValueAssignment: value}
	}
	return nil
}

// assignedValue returns the right-hand side of the first "name = value" line.
func assignedValue(name, text string) (string, bool) {
	re := regexp.MustCompile(fmt.Sprintf(`(?m)^[ \t]*%s *= *([^=\s].*)$`, quote(name)))
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	value := trimValue(m[1])
	return value, value != ""
}
