package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHintOfSimilarParam(t *testing.T) {
	const param = "test"
	testCases := []struct {
		description string
		src         string
		expected    string
		found       bool
	}{
		{"lone param", "def func(test: str):\ndef test(test:", "str", true},
		{"preceding parameters", "def func(self, p1: int,test: str):\ndef test(test:", "str", true},
		{"trailing parameters", "def func(self, test: str,new: int):\ndef test(test:", "str", true},
		{"line breaks in the signature", "def func(\n\ttest: str,new: int):\ndef test(test:", "str", true},
		{"default values are excluded", "def func(test: str='exclude',new: int):\ndef test(test:", "str", true},
		{"non-ascii hint", "def func(test: 蟒蛇):\ndef test(test:", "蟒蛇", true},
		{"non-ascii function name", "def 蟒蛇(test: str):\ndef test(test:", "str", true},
		{"indented method", "class A:\n    def m(self, test: Dict[str, int]):", "Dict[str", true},
		{"param name within other text", "def func(texttest: str,new: int):\ndef test(test:", "", false},
		{"':' followed by ':'", "def func(test::):\ndef test(test:", "", false},
		{"commented out definition", "# def func(test: str):\ndef test(test:", "", false},
		{"commented out parameter", "def func(\n\t# {test: 123}", "", false},
		{"skips commented match and finds the next", "def a(\n# test: int\n):\ndef b(test: float):", "float", true},
	}
	for _, tc := range testCases {
		actual, ok := HintOfSimilarParam(param, tc.src)
		assert.Equal(t, tc.found, ok, tc.description)
		assert.Equal(t, tc.expected, actual, tc.description)
	}
}

func TestHintOfSimilarParamNonASCIIName(t *testing.T) {
	hint, ok := HintOfSimilarParam("größe", "def f(self, größe: float):")
	assert.True(t, ok)
	assert.Equal(t, "float", hint)

	hint, ok = HintOfSimilarParam("é", "def f(é: int):")
	assert.True(t, ok)
	assert.Equal(t, "int", hint)

	_, ok = HintOfSimilarParam("é", "def f(café: int):")
	assert.False(t, ok)
}

func TestHintOfSimilarParamRejectsPatterns(t *testing.T) {
	_, ok := HintOfSimilarParam("te(st", "def func(te(st: str):")
	assert.False(t, ok)
}

func TestClassWithSameName(t *testing.T) {
	testCases := []struct {
		description string
		src         string
	}{
		{"class", "class Test:"},
		{"subclass", "class Test(Super):"},
		{"tabs", "\tclass  Test:"},
		{"spaces", "    class  Test:"},
	}
	for _, tc := range testCases {
		actual, ok := ClassWithSameName("test", tc.src)
		assert.True(t, ok, tc.description)
		assert.Equal(t, "Test", actual, tc.description)
	}

	_, ok := ClassWithSameName("test", "class Tester:")
	assert.False(t, ok)
	_, ok = ClassWithSameName("test", "# class Test:")
	assert.False(t, ok)
}

func TestParamBefore(t *testing.T) {
	testCases := []struct {
		line     string
		expected string
		found    bool
	}{
		{"def f(count:", "count", true},
		{"def f(self, count:", "count", true},
		{"    def method(self,  other :", "other", true},
		{"count:", "", false},
		{"def f(a.b:", "", false},
	}
	for _, tc := range testCases {
		actual, ok := ParamBefore(tc.line, len(tc.line))
		assert.Equal(t, tc.found, ok, tc.line)
		assert.Equal(t, tc.expected, actual, tc.line)
	}

	_, ok := ParamBefore("def f(x:", 99)
	assert.False(t, ok)
}
