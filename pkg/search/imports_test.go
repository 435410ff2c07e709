package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindImport(t *testing.T) {
	testCases := []struct {
		description string
		object      string
		src         string
		checkAs     bool
		expected    string
	}{
		{"import x", "module_x.Type", "import module_x", false, "module_x.Type"},
		{"import x.y", "package.x.y.Type", "import package.x.y", false, "package.x.y.Type"},
		{"import x.y.z.a", "package.x.y.z.a.Type", "import package.x.y.z.a", false, "package.x.y.z.a.Type"},
		{"from x import", "var", "import something\nfrom something import var", false, "var"},
		{"from x import y as z", "var", "from pkg import y as var", true, "var"},
		{"import y as z", "var", "import pkg as var", true, "var"},
		{"from module import Type", "module.Type", "from module import Type", false, "Type"},
		{"from dotted module import Type", "package.x.y_test.Type", "from package.x.y_test import Type", false, "Type"},
		{"from y import x", "x.Type", "from y import x", false, "x.Type"},
		{"extra spaces and tabs", "var", "def x():\n\t    from    pkg     import var", false, "var"},
		{"import lists", "Type", "from pkg import a, b ,Type", false, "Type"},
		{"relative import", "Type", "from .models import Type", false, "Type"},
		{"parent relative import", "Type", "from .. import Type", false, "Type"},
	}
	for _, tc := range testCases {
		actual, ok := FindImport(tc.object, tc.src, tc.checkAs)
		assert.True(t, ok, tc.description)
		assert.Equal(t, tc.expected, actual, tc.description)
	}
}

func TestFindImportNoMatch(t *testing.T) {
	testCases := []struct {
		description string
		object      string
		src         string
		checkAs     bool
	}{
		{"not imported", "Type", "import os", false},
		{"as imports need checkAs", "var", "from pkg import y as var", false},
		{"prefix of another name", "Type", "from pkg import Types", false},
		{"module imported under another name", "module.Type", "import module_x", false},
		{"invalid object", "Ty pe", "from pkg import Ty pe", false},
		{"empty object", "", "import os", true},
	}
	for _, tc := range testCases {
		_, ok := FindImport(tc.object, tc.src, tc.checkAs)
		assert.False(t, ok, tc.description)
	}
}
