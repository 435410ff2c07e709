// Package typename holds the closed set of built-in Python types the estimator can hint.
package typename

import "strings"

// Name is a built-in type name as written in an annotation.
type Name string

const (
	Bool    Name = "bool"
	Complex Name = "complex"
	Dict    Name = "dict"
	Float   Name = "float"
	Int     Name = "int"
	List    Name = "list"
	Object  Name = "object"
	Set     Name = "set"
	Str     Name = "str"
	Tuple   Name = "tuple"
	Bytes   Name = "bytes"
)

// Category classifies a Name.
type Category int

const (
	Abstract Category = iota
	Basic
	Collection
)

func (c Category) String() string {
	switch c {
	case Basic:
		return "basic"
	case Collection:
		return "collection"
	default:
		return "abstract"
	}
}

// all is the enumeration order used for fallback completions.
var all = []Name{Bool, Complex, Dict, Float, Int, List, Object, Set, Str, Tuple, Bytes}

var categories = map[Name]Category{
	Bool:    Basic,
	Complex: Basic,
	Dict:    Collection,
	Float:   Basic,
	Int:     Basic,
	List:    Collection,
	Object:  Abstract,
	Set:     Collection,
	Str:     Basic,
	Tuple:   Collection,
	Bytes:   Basic,
}

// All returns every Name in enumeration order. The slice is a copy.
func All() []Name {
	out := make([]Name, len(all))
	copy(out, all)
	return out
}

// Parse returns the Name spelled exactly as s.
func Parse(s string) (Name, bool) {
	n := Name(s)
	_, ok := categories[n]
	return n, ok
}

// IsBuiltin reports whether s is one of the built-in names.
func IsBuiltin(s string) bool {
	_, ok := Parse(s)
	return ok
}

func (n Name) String() string { return string(n) }

// Category returns Abstract for unknown names.
func (n Name) Category() Category {
	return categories[n]
}

func (n Name) IsCollection() bool {
	return n.Category() == Collection
}

// GenericName is the capitalised spelling used by the typing module, e.g. List for list.
func (n Name) GenericName() string {
	s := string(n)
	if len(s) > 1 {
		return strings.ToUpper(s[:1]) + s[1:]
	}
	return s
}

// Collections returns the Collection names in alphabetical order, the order
// generic fallbacks are offered in.
func Collections() []Name {
	return []Name{Dict, List, Set, Tuple}
}
