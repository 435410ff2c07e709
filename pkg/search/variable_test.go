package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariableWithSameName(t *testing.T) {
	testCases := []struct {
		description string
		param       string
		src         string
		typeName    string
		source      Source
	}{
		{
			description: "class defined in the document",
			param:       "var",
			src:         "class test_class:\n\tpass\nvar = test_class()",
			typeName:    "test_class",
			source:      ClassDefinition,
		},
		{
			description: "other variable initialised below",
			param:       "var",
			src:         "var = x\n\ndef main():\n\tx = 5",
			typeName:    "int",
			source:      ValueOfOtherVariable,
		},
		{
			description: "other variable initialised above",
			param:       "var",
			src:         "x = 5\nvar = x",
			typeName:    "int",
			source:      ValueOfOtherVariable,
		},
		{
			description: "title case call is an object initialisation",
			param:       "var",
			src:         "var = TestClass(x)",
			typeName:    "TestClass",
			source:      DirectValue,
		},
		{
			description: "dotted title case call",
			param:       "var",
			src:         "var = test.test.TestClass(x)",
			typeName:    "test.test.TestClass",
			source:      DirectValue,
		},
		{
			description: "function with a return hint",
			param:       "var",
			src:         "def test() -> int:\n\treturn 1\n\nvar = test()",
			typeName:    "int",
			source:      FunctionDefinitionReturnHint,
		},
		{
			description: "method with a return hint called through an object",
			param:       "var",
			src:         "def test(self) -> int:\n\treturn 1\n\nvar = cls.test()",
			typeName:    "int",
			source:      FunctionDefinitionReturnHint,
		},
		{
			description: "title case function with a return hint",
			param:       "var",
			src:         "def Make() -> List[str]:\n\treturn []\n\nvar = Make()",
			typeName:    "List[str]",
			source:      FunctionDefinitionReturnHint,
		},
		{
			description: "direct literal value",
			param:       "var",
			src:         "    var = [1, 2]",
			typeName:    "list",
			source:      DirectValue,
		},
	}

	for _, tc := range testCases {
		actual := VariableWithSameName(tc.param, tc.src)
		require.NotNil(t, actual, tc.description)
		assert.Equal(t, tc.typeName, actual.TypeName, tc.description)
		assert.Equal(t, tc.source, actual.Source, tc.description)
	}
}

func TestVariableWithSameNameNoMatch(t *testing.T) {
	testCases := []struct {
		description string
		param       string
		src         string
	}{
		{"title case function defined in the document", "var", "def Func(x):\n\tpass\n\nvar = Func(x)"},
		{"function calls are not variables", "var", "obj = call()"},
		{"single line comments are ignored", "var", "# obj = 5\nvar = obj"},
		{"imported names are not followed", "var", "from mod import obj\nobj = 5\nvar = obj"},
		{"only one hop is followed", "var", "a = 5\nb = a\nvar = b"},
		{"ambiguous hop target", "var", "x = 1 if ok else 'no'\nvar = x"},
		{"comparisons are not assignments", "var", "var == 5"},
		{"regex characters in the name", "v.*", "vx = 5"},
		{"empty name", "", "= 5"},
	}
	for _, tc := range testCases {
		assert.Nil(t, VariableWithSameName(tc.param, tc.src), tc.description)
	}
}

func TestResultAmbiguous(t *testing.T) {
	r := &Result{TypeName: "int", Source: DirectValue, ValueAssignment: "1 if ok else 2.213"}
	assert.True(t, r.Ambiguous())

	r = &Result{TypeName: "Foo", Source: ClassDefinition, ValueAssignment: "Foo() if ok else 2.213"}
	assert.False(t, r.Ambiguous(), "class definitions are exempt")

	var nilResult *Result
	assert.False(t, nilResult.Ambiguous())
}

func TestSourceString(t *testing.T) {
	assert.Equal(t, "class definition", ClassDefinition.String())
	assert.Equal(t, "value of other variable", ValueOfOtherVariable.String())
	assert.Equal(t, "Source(9)", Source(9).String())
}
