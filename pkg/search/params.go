package search

import (
	"fmt"
	"regexp"
	"strings"
)

// ClassWithSameName finds a class whose name equals name ignoring case and
// returns the name as declared.
func ClassWithSameName(name, text string) (string, bool) {
	if !ValidName(name) {
		return "", false
	}
	re := regexp.MustCompile(fmt.Sprintf(`(?mi)^[ \t]*class +(%s)[(:]`, quote(name)))
	if m := re.FindStringSubmatch(text); m != nil {
		return m[1], true
	}
	return "", false
}

// classDefined reports whether a class spelled exactly as name exists. Only
// the class keyword is matched case-insensitively.
func classDefined(name, text string) bool {
	re := regexp.MustCompile(fmt.Sprintf(`(?m)^[ \t]*(?i:class) +%s[(:]`, quote(name)))
	return re.MatchString(text)
}

func functionDefined(name, text string) bool {
	re := regexp.MustCompile(fmt.Sprintf(`(?m)^[ \t]*def +%s\(`, quote(name)))
	return re.MatchString(text)
}

// returnHint returns the annotated return type of function name.
func returnHint(name, text string) (string, bool) {
	re := regexp.MustCompile(fmt.Sprintf(
		`(?m)^[ \t]*def +%s\([^)]*\) *-> *([A-Za-z_][A-Za-z0-9_.\[\]]+)`, quote(name)))
	if m := re.FindStringSubmatch(text); m != nil {
		return m[1], true
	}
	return "", false
}

// HintOfSimilarParam searches function signatures for an already annotated
// parameter called param and returns its annotation. Signatures may span
// lines; default values are excluded and commented-out lines are skipped.
func HintOfSimilarParam(param, text string) (string, bool) {
	if !ValidName(param) {
		return "", false
	}
	re := regexp.MustCompile(fmt.Sprintf(
		`(?m)^[ \t]*def +[\pL_][\pL\pN_.]*\((?:[^)]*[^\pL\pN_)])?%s: *([^),:= \t\r\n]+)`, quote(param)))
	for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
		hintStart, hintEnd := loc[2], loc[3]
		if isCommented(text, hintStart) {
			continue
		}
		if hint := strings.TrimSpace(text[hintStart:hintEnd]); hint != "" {
			return hint, true
		}
	}
	return "", false
}
