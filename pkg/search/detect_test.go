package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bastiangx/typehint/pkg/typename"
)

func TestDetectTypeLiterals(t *testing.T) {
	testCases := []struct {
		input       string
		expected    typename.Name
		description string
	}{
		// ints
		{"11", typename.Int, "plain int"},
		{"-11", typename.Int, "negative int"},
		{"0b10", typename.Int, "binary literal"},
		{"0o10", typename.Int, "octal literal"},
		{"0x10", typename.Int, "hex literal"},
		{"        5", typename.Int, "leading spaces are ignored"},

		// floats
		{"12.3", typename.Float, "plain float"},
		{".3", typename.Float, "float without integer part"},
		{"-.3", typename.Float, "negative float without integer part"},
		{"1 + 2 - 1 * 2 /  2.0", typename.Float, "arithmetic ending in a float"},

		// complex
		{"0+1.1-2*3/4j", typename.Complex, "arithmetic ending in j"},
		{"2J", typename.Complex, "upper case J"},

		// strings
		{"'test'", typename.Str, "single quotes"},
		{`"test"'`, typename.Str, "double quotes"},
		{"('test')", typename.Str, "parenthesised string"},
		{"'''t\nest''')", typename.Str, "triple quotes"},
		{"'12'", typename.Str, "quoted numeral is a string"},

		// bools
		{"True", typename.Bool, "True"},
		{"False", typename.Bool, "False"},

		// lists
		{"[", typename.List, "opening bracket"},
		{"[True]", typename.List, "list of bools is a list"},

		// dicts
		{"{ 5: 'j'}", typename.Dict, "int key"},
		{"{ (1,2): (3) }", typename.Dict, "tuple key"},
		{"{'':11}", typename.Dict, "empty string key"},
		{"{}", typename.Dict, "empty braces"},

		// tuples
		{"('dont return str please', 'ok')", typename.Tuple, "tuple of strings"},
		{" ( '4' , '5' )", typename.Tuple, "spaced tuple of strings"},
		{"(1,2)", typename.Tuple, "tuple of ints"},

		// sets
		{"{'dont return dict or string please'}", typename.Set, "set of one string"},
		{"{1, 2}", typename.Set, "set of ints"},
		{"{1 , 2}", typename.Set, "spaced set of ints"},

		// bytes
		{"b'dont return string please'", typename.Bytes, "single quoted bytes"},
		{`b"dont return string please"`, typename.Bytes, "double quoted bytes"},
		{"b'''hi'''", typename.Bytes, "triple single quoted bytes"},
		{`b"""hi"""`, typename.Bytes, "triple double quoted bytes"},
	}

	for _, tc := range testCases {
		actual, ok := DetectType(tc.input)
		assert.True(t, ok, "%s: no type for %q", tc.description, tc.input)
		assert.Equal(t, tc.expected, actual, "%s: %q", tc.description, tc.input)
	}
}

func TestDetectTypeConstructorCalls(t *testing.T) {
	testCases := []struct {
		input    string
		expected typename.Name
	}{
		{"int('2')", typename.Int},
		{"bool('true')", typename.Bool},
		{"list(foo)", typename.List},
		{"dict(foo)", typename.Dict},
		{"tuple(foo)", typename.Tuple},
		{"str(1)", typename.Str},
		{"set([1])", typename.Set},
		{"bytes('hi', encoding='utf-8')", typename.Bytes},
		{"float(x)", typename.Float},
		{"complex(1, 2)", typename.Complex},
		{"object()", typename.Object},
	}
	for _, tc := range testCases {
		actual, ok := DetectType(tc.input)
		assert.True(t, ok, tc.input)
		assert.Equal(t, tc.expected, actual, tc.input)
	}
}

func TestDetectTypeNoMatch(t *testing.T) {
	for _, input := range []string{
		"",
		"   \t ",
		"int",
		"list",
		"x",
		"call()",
		"None",
		"print(x)",
	} {
		_, ok := DetectType(input)
		assert.False(t, ok, "expected no type for %q", input)
	}
}
