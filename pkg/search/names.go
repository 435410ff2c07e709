package search

import (
	"regexp"
	"strings"

	"github.com/bastiangx/typehint/internal/utils"
)

// anyName matches a class or function name, optionally dotted.
const anyName = `[A-Za-z_][A-Za-z0-9_.]*`

// ValidName reports whether name is safe to embed in a search pattern.
// Callers receive a no-match for anything else.
func ValidName(name string) bool {
	return utils.IsIdentifier(name)
}

// ParamBefore returns the parameter name being annotated on line, given the
// column right after the typed ':'. "def f(self, count:" gives "count".
func ParamBefore(line string, col int) (string, bool) {
	if col < 0 || col > len(line) {
		return "", false
	}
	prefix := line[:col]
	idx := strings.LastIndexAny(prefix, ",(")
	if idx < 0 {
		return "", false
	}
	param := strings.TrimSpace(prefix[idx+1:])
	param = strings.TrimSpace(strings.TrimSuffix(param, ":"))
	if !ValidName(param) {
		return "", false
	}
	return param, true
}

func trimValue(s string) string {
	return strings.TrimSpace(s)
}

func quote(name string) string {
	return regexp.QuoteMeta(name)
}

// isCommented reports whether a '#' precedes offset on its line.
func isCommented(text string, offset int) bool {
	start, _ := utils.LineBounds(text, offset)
	return strings.IndexByte(text[start:offset], '#') >= 0
}
