// Package workspace gives the estimator read access to the other source files
// of a project and searches them for annotated parameters.
package workspace

import (
	"github.com/bastiangx/typehint/internal/utils"
	"github.com/bastiangx/typehint/pkg/search"
)

// Document is a read-only view of one source file.
type Document interface {
	Text() string
	// LineAt returns the line containing the byte offset, without its newline.
	LineAt(offset int) string
	URI() string
}

// TextDocument is a Document backed by an in-memory string.
type TextDocument struct {
	uri  string
	text string
}

func NewTextDocument(uri, text string) *TextDocument {
	return &TextDocument{uri: uri, text: text}
}

func (d *TextDocument) Text() string { return d.text }

func (d *TextDocument) URI() string { return d.uri }

func (d *TextDocument) LineAt(offset int) string {
	if offset < 0 || offset > len(d.text) {
		return ""
	}
	start, end := utils.LineBounds(d.text, offset)
	return d.text[start:end]
}

// ParamAt returns the parameter being annotated in doc when the cursor sits
// at offset, right after the typed ':'.
func ParamAt(doc Document, offset int) (string, bool) {
	text := doc.Text()
	if offset < 0 || offset > len(text) {
		return "", false
	}
	start, _ := utils.LineBounds(text, offset)
	return search.ParamBefore(doc.LineAt(offset), offset-start)
}
