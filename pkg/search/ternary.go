package search

import "regexp"

// lastElse captures the final "else <value>" of a conditional expression.
var lastElse = regexp.MustCompile(` if +[^ ]+ +else( +[^ ]+) *$`)

// InvalidTernary reports whether value is a conditional expression whose
// final else branch has a detectable type different from typeName. Nested
// conditionals are judged by the last branch only; an undetectable branch is
// not treated as a conflict.
func InvalidTernary(typeName, value string) bool {
	m := lastElse.FindStringSubmatch(value)
	if m == nil {
		return false
	}
	elseType, ok := DetectType(m[1])
	if !ok {
		return false
	}
	return typeName != string(elseType)
}
