package workspace

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"github.com/bastiangx/typehint/pkg/search"
	"github.com/bastiangx/typehint/pkg/typename"
)

// SourceGlob selects the files searched for annotated parameters.
const SourceGlob = "**/*.py"

// Searcher looks for a parameter annotation in documents other than the
// active one.
type Searcher interface {
	// FindHintOfSimilarParam returns the first usable annotation of param
	// found in at most limit other documents. A cancelled ctx ends the search
	// without a result.
	FindHintOfSimilarParam(ctx context.Context, param, activeText string, limit int) (string, bool)
}

// DocumentSearcher searches a Workspace on behalf of one active document.
type DocumentSearcher struct {
	ws        Workspace
	activeURI string
	include   string
}

func NewSearcher(ws Workspace, activeURI string) *DocumentSearcher {
	return &DocumentSearcher{ws: ws, activeURI: activeURI, include: SourceGlob}
}

// WithInclude sets the glob of searched files. Empty keeps SourceGlob.
func (s *DocumentSearcher) WithInclude(glob string) *DocumentSearcher {
	if glob != "" {
		s.include = glob
	}
	return s
}

func (s *DocumentSearcher) FindHintOfSimilarParam(ctx context.Context, param, activeText string, limit int) (string, bool) {
	if s == nil || s.ws == nil || limit <= 0 || !search.ValidName(param) {
		return "", false
	}
	if ctx.Err() != nil {
		return "", false
	}

	uris, err := s.ws.FindFiles(ctx, s.include, s.excludeGlob(), limit)
	if err != nil {
		if ctx.Err() == nil {
			log.Debugf("Workspace search for %s: %v", param, errors.Wrap(err, "finding files"))
		}
		return "", false
	}
	if len(uris) > limit {
		uris = uris[:limit]
	}

	for _, uri := range uris {
		if ctx.Err() != nil {
			return "", false
		}
		doc, err := s.ws.Open(ctx, uri)
		if err != nil {
			log.Debugf("Skipping %v", errors.Wrapf(err, "opening %s", uri))
			continue
		}
		hint, ok := search.HintOfSimilarParam(param, doc.Text())
		if !ok || ctx.Err() != nil {
			continue
		}
		if typename.IsBuiltin(hint) {
			return hint, true
		}
		if resolved, ok := search.FindImport(hint, activeText, false); ok {
			return resolved, true
		}
	}
	return "", false
}

// excludeGlob matches every file sharing the active document's base name.
func (s *DocumentSearcher) excludeGlob() string {
	if s.activeURI == "" {
		return ""
	}
	base := s.activeURI
	for i := len(base) - 1; i >= 0; i-- {
		if base[i] == '/' || base[i] == '\\' {
			base = base[i+1:]
			break
		}
	}
	if base == "" {
		return ""
	}
	return "**/" + base
}
