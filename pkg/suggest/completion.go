package suggest

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/bastiangx/typehint/internal/utils"
	"github.com/bastiangx/typehint/pkg/estimate"
	"github.com/bastiangx/typehint/pkg/workspace"
)

// Kind tells where a suggestion comes from.
type Kind int

const (
	// Estimated hints come from the estimator, most likely first.
	Estimated Kind = iota
	// Builtin hints are the remaining built-in types.
	Builtin
	// Generic hints are the remaining typing module opening forms.
	Generic
)

type Suggestion struct {
	Hint string
	Rank int
	Kind Kind
}

// Request describes one completion. Text is the active document; URI
// identifies it within the workspace.
type Request struct {
	Param  string
	URI    string
	Text   string
	Prefix string
	Limit  int
}

type Completer struct {
	ws       workspace.Workspace
	settings estimate.SettingsSource
	cache    *HotCache
	opts     []estimate.Option
}

// NewCompleter creates a Completer. ws may be nil to disable the workspace
// search regardless of settings.
func NewCompleter(ws workspace.Workspace, settings estimate.SettingsSource, opts ...estimate.Option) *Completer {
	return &Completer{
		ws:       ws,
		settings: settings,
		opts:     opts,
	}
}

// WithCache keeps the candidates of up to maxEntries recent requests.
func (c *Completer) WithCache(maxEntries int) *Completer {
	if maxEntries > 0 {
		c.cache = NewHotCache(maxEntries)
	}
	return c
}

func (c *Completer) Complete(ctx context.Context, req Request) []Suggestion {
	key := cacheKey(req)
	candidates, ok := c.cache.Get(key)
	if !ok {
		var cacheable bool
		candidates, cacheable = c.candidates(ctx, req)
		if cacheable && ctx.Err() == nil {
			c.cache.Put(key, candidates)
		}
	}

	suggestions := candidates
	if req.Prefix != "" {
		suggestions = SearchTrie(buildTrie(candidates), req.Prefix)
	}
	if req.Limit > 0 && len(suggestions) > req.Limit {
		suggestions = suggestions[:req.Limit]
	}
	out := make([]Suggestion, len(suggestions))
	copy(out, suggestions)
	return out
}

// candidates ranks the estimated hints first, then the remaining built-in
// types, then the remaining generic forms. Lists that depend on other
// documents are not cacheable: the cache key only covers the active one.
func (c *Completer) candidates(ctx context.Context, req Request) ([]Suggestion, bool) {
	var searcher workspace.Searcher
	if c.ws != nil {
		include := ""
		if c.settings != nil {
			include = c.settings.Snapshot().Include
		}
		searcher = workspace.NewSearcher(c.ws, req.URI).WithInclude(include)
	}
	es := estimate.New(searcher, c.settings, c.opts...).Estimate(ctx, req.Param, req.Text)

	filter := utils.NewSuggestionFilter()
	var out []Suggestion
	add := func(hint string, kind Kind) {
		if filter.ShouldInclude(hint) {
			out = append(out, Suggestion{Hint: hint, Rank: len(out) + 1, Kind: kind})
		}
	}
	for _, h := range es.Hints() {
		add(h, Estimated)
	}
	for _, t := range es.Remaining() {
		add(string(t), Builtin)
	}
	for _, h := range es.RemainingGenericHints() {
		add(h, Generic)
	}
	log.Debugf("Estimated %d hints for %s (%d candidates)", len(es.Hints()), req.Param, len(out))
	return out, !es.UsedWorkspace()
}

// Invalidate drops every cached candidate list.
func (c *Completer) Invalidate() {
	c.cache.Clear()
}

func (c *Completer) Stats() map[string]int {
	stats := c.cache.Stats()
	if c.cache == nil {
		stats["hotCache"] = 0
	} else {
		stats["hotCache"] = 1
	}
	return stats
}

func cacheKey(req Request) string {
	h := fnv.New64a()
	h.Write([]byte(req.URI))
	h.Write([]byte{0})
	h.Write([]byte(req.Param))
	h.Write([]byte{0})
	h.Write([]byte(req.Text))
	return strconv.FormatUint(h.Sum64(), 16)
}
