// Package search finds type evidence in unparsed Python source text.
//
// Everything here works on raw text with line-anchored regular expressions.
// Nothing is parsed, so every function degrades to a no-match rather than
// guessing when the text falls outside the recognised forms.
package search

import (
	"regexp"

	"github.com/bastiangx/typehint/pkg/typename"
)

// detector pairs a type with its constructor call and literal patterns.
type detector struct {
	name        typename.Name
	constructor *regexp.Regexp
	literal     *regexp.Regexp
}

// detectors is evaluated top to bottom and the first match wins.
//
// list precedes the scalars so "[True]" is a list, complex precedes float and
// int so the trailing j is seen first, tuple precedes set/dict, and str
// precedes int so quoted numerals stay strings.
var detectors = []detector{
	{typename.List, ctor("list"), regexp.MustCompile(`^\[`)},
	{typename.Bool, ctor("bool"), regexp.MustCompile(`^(True|False)`)},
	{typename.Complex, ctor("complex"), regexp.MustCompile(`^[-()0-9+*/ .]*[0-9][jJ]`)},
	{typename.Float, ctor("float"), regexp.MustCompile(`^[-(]*[0-9+*/ -]*\.[0-9]`)},
	{typename.Tuple, ctor("tuple"), regexp.MustCompile(`^\(([^'",)]+,| *"[^"]*" *,| *'[^']*' *,)`)},
	{typename.Set, ctor("set"), regexp.MustCompile(`^\{( *"[^"]*" *[},]+| *'[^']*' *[},]+|[^:]+\})`)},
	{typename.Dict, ctor("dict"), regexp.MustCompile(`^\{`)},
	{typename.Str, ctor("str"), regexp.MustCompile(`^(['"]{2}|(\( *)?"[^"]*"|(\( *)?'[^']*')`)},
	{typename.Bytes, ctor("bytes"), regexp.MustCompile(`^b(['"]{2}|"[^"]*"|'[^']*')`)},
	{typename.Int, ctor("int"), regexp.MustCompile(`^[-(]*[0-9]`)},
	// object has no literal form
	{typename.Object, ctor("object"), nil},
}

var startsLowercase = regexp.MustCompile(`^[a-z]`)

func ctor(name string) *regexp.Regexp {
	return regexp.MustCompile(`^` + name + `\(`)
}

// DetectType returns the built-in type of a value expression such as
// "[1, 2]", "-0x10" or "dict(a=1)".
func DetectType(fragment string) (typename.Name, bool) {
	value := trimValue(fragment)
	if value == "" {
		return "", false
	}
	if startsLowercase.MatchString(value) {
		for _, d := range detectors {
			if d.constructor.MatchString(value) {
				return d.name, true
			}
		}
	}
	for _, d := range detectors {
		if d.literal != nil && d.literal.MatchString(value) {
			return d.name, true
		}
	}
	return "", false
}
