package search

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bastiangx/typehint/internal/utils"
)

// importList matches the names preceding the one of interest in
// "from x import a, b, c".
const importList = `(?:` + anyName + ` *, *)*`

// fromModule also accepts relative modules such as "." and "..pkg".
const fromModule = `(?:\.*` + anyName + `|\.+)`

// FindImport resolves object against the imports of text and returns the
// spelling that is valid in that document.
//
//	module.Type + "import module"           -> module.Type
//	module.Type + "from module import Type" -> Type
//	x.Type      + "from y import x"         -> x.Type
//	Type        + "from y import Type"      -> Type
//
// With checkAsImports, "import y as Type" and "from x import y as Type" also count.
func FindImport(object, text string, checkAsImports bool) (string, bool) {
	if !utils.IsDottedName(object) {
		return "", false
	}
	if !strings.Contains(object, ".") {
		if isImported(object, text, checkAsImports) {
			return object, true
		}
		return "", false
	}

	parts := strings.Split(object, ".")
	typ := parts[len(parts)-1]
	module := strings.Join(parts[:len(parts)-1], ".")

	if len(parts) == 2 && module != typ {
		re := regexp.MustCompile(fmt.Sprintf(
			`(?m)^[ \t]*import +%s\b|^[ \t]*from +%s +import +%s(%s)\b`,
			quote(module), fromModule, importList, quote(module)))
		if m := re.FindStringSubmatch(text); m != nil {
			if m[1] != "" {
				return m[1] + "." + typ, true
			}
			return object, true
		}
	}
	re := regexp.MustCompile(fmt.Sprintf(
		`(?m)^[ \t]*import +%s\b|^[ \t]*from +%s +import +%s(%s)\b`,
		quote(module), quote(module), importList, quote(typ)))
	if m := re.FindStringSubmatch(text); m != nil {
		if m[1] != "" {
			return m[1], true
		}
		return object, true
	}
	return "", false
}

// isImported reports whether name is bound by an import statement in text.
func isImported(name, text string, checkAsImports bool) bool {
	n := quote(name)
	alternatives := []string{
		fmt.Sprintf(`from +%s +import +%s%s\b`, fromModule, importList, n),
		fmt.Sprintf(`import +%s%s\b`, importList, n),
	}
	if checkAsImports {
		alternatives = append(alternatives,
			fmt.Sprintf(`from +%s +import +%s%s +as +%s\b`, fromModule, importList, anyName, n),
			fmt.Sprintf(`import +%s +as +%s\b`, anyName, n),
		)
	}
	re := regexp.MustCompile(`(?m)^[ \t]*(?:` + strings.Join(alternatives, "|") + `)`)
	return re.MatchString(text)
}
