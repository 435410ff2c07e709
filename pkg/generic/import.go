// Package generic builds typing module hints such as List[ and Dict[int for
// collection types.
package generic

import (
	"regexp"
	"strings"

	"github.com/bastiangx/typehint/pkg/typename"
)

const defaultPrefix = "typing"

var (
	fromTypingImport = regexp.MustCompile(`(?m)^[ \t]*from typing import +([A-Z][A-Za-z0-9 ,]+)`)
	moduleImport     = regexp.MustCompile(`(?m)^[ \t]*import +typing(?: +as +([A-Za-z_][A-Za-z0-9_]*))?(?:[ \t#]|$)`)
)

// Import describes how a document imports the typing module. The zero value
// means typing is not imported.
type Import struct {
	present bool
	from    bool
	prefix  string
	names   map[string]struct{}
}

// DetectImport looks for "from typing import ..." first, then for
// "import typing" with an optional alias.
func DetectImport(text string) Import {
	if m := fromTypingImport.FindStringSubmatch(text); m != nil {
		imp := Import{present: true, from: true, prefix: defaultPrefix, names: make(map[string]struct{})}
		for _, name := range strings.Split(m[1], ",") {
			if name = strings.TrimSpace(name); name != "" {
				imp.names[name] = struct{}{}
			}
		}
		return imp
	}
	if m := moduleImport.FindStringSubmatch(text); m != nil {
		imp := Import{present: true, prefix: defaultPrefix}
		if m[1] != "" {
			imp.prefix = m[1]
		}
		return imp
	}
	return Import{}
}

// Present reports whether typing is imported in any form.
func (i Import) Present() bool { return i.present }

// FromImport reports whether typing names are imported directly.
func (i Import) FromImport() bool { return i.from }

// Prefix is the module qualifier used for names that are not imported
// directly, "typing" unless aliased.
func (i Import) Prefix() string {
	if i.prefix == "" {
		return defaultPrefix
	}
	return i.prefix
}

// Opening returns the opening generic form of name as it must be spelled in
// the document, e.g. "List[" after "from typing import List" and
// "t.List[" after "import typing as t".
func (i Import) Opening(name typename.Name) string {
	generic := name.GenericName()
	if i.from {
		if _, ok := i.names[generic]; ok {
			return generic + "["
		}
	}
	return i.Prefix() + "." + generic + "["
}
