package generic

import (
	"strings"

	"github.com/bastiangx/typehint/pkg/search"
	"github.com/bastiangx/typehint/pkg/typename"
)

// Hint returns the opening form for a collection type name.
func (i Import) Hint(name typename.Name) (string, bool) {
	if !i.present || !name.IsCollection() {
		return "", false
	}
	return i.Opening(name), true
}

// Hints returns the opening form of typeName followed, when the first element
// of value can be detected, by a parameterised form.
//
//	[1, 2]       -> List[, List[int]
//	[ { 1: 2 } ] -> List[, List[Dict[int
//	{ 1: 2 }     -> Dict[, Dict[int
//
// Dict value types are never detected, so brackets are left open once a dict
// is involved.
func (i Import) Hints(typeName, value string) []string {
	name, ok := typename.Parse(typeName)
	if !ok {
		return nil
	}
	opening, ok := i.Hint(name)
	if !ok {
		return nil
	}

	label := opening
	depth := 1
	dictFound := name == typename.Dict
	element := strip(value)
	elementType, ok := search.DetectType(element)
	for ok && elementType.IsCollection() {
		label += i.Opening(elementType)
		depth++
		if elementType == typename.Dict {
			dictFound = true
			element = strip(element)
			elementType, ok = search.DetectType(element)
			break
		}
		element = strip(element)
		elementType, ok = search.DetectType(element)
	}

	if ok {
		label += string(elementType)
		if !dictFound {
			label += strings.Repeat("]", depth)
		}
	}
	if label == opening {
		return []string{opening}
	}
	return []string{opening, label}
}

// Remaining returns the opening forms of all collections not yet provided,
// in the order Dict, List, Set, Tuple. Without a typing import both the bare
// and the typing-qualified spellings are offered, bare first.
func (i Import) Remaining(provided func(string) bool) []string {
	var forms []string
	switch {
	case !i.present:
		forms = append(bare(), qualified(defaultPrefix)...)
	case i.from:
		forms = bare()
	default:
		forms = qualified(i.Prefix())
	}
	out := forms[:0]
	for _, f := range forms {
		if provided == nil || !provided(f) {
			out = append(out, f)
		}
	}
	return out
}

func bare() []string {
	var out []string
	for _, n := range typename.Collections() {
		out = append(out, n.GenericName()+"[")
	}
	return out
}

func qualified(prefix string) []string {
	var out []string
	for _, n := range typename.Collections() {
		out = append(out, prefix+"."+n.GenericName()+"[")
	}
	return out
}

// strip drops the opening bracket of a collection value.
func strip(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	return value[1:]
}
