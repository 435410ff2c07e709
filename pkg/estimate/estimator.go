// Package estimate ranks type hints for a Python parameter by combining the
// text searches of package search with generic hints and an optional
// workspace search.
package estimate

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/bastiangx/typehint/internal/utils"
	"github.com/bastiangx/typehint/pkg/config"
	"github.com/bastiangx/typehint/pkg/generic"
	"github.com/bastiangx/typehint/pkg/search"
	"github.com/bastiangx/typehint/pkg/typename"
	"github.com/bastiangx/typehint/pkg/workspace"
)

// likelyTypes are the types a parameter name is checked to end with, in
// priority order.
var likelyTypes = []typename.Name{
	typename.List,
	typename.Dict,
	typename.Str,
	typename.Bool,
	typename.Int,
	typename.Tuple,
	typename.Float,
}

// typeGuesses maps common parameter names to a type.
var typeGuesses = map[string]typename.Name{
	"string":    typename.Str,
	"text":      typename.Str,
	"path":      typename.Str,
	"url":       typename.Str,
	"uri":       typename.Str,
	"fullpath":  typename.Str,
	"full_path": typename.Str,
	"number":    typename.Int,
	"num":       typename.Int,
}

// SettingsSource provides the workspace settings. It is read once at the
// start of every Estimate call.
type SettingsSource interface {
	Snapshot() config.WorkspaceConfig
}

// StaticSettings is a SettingsSource that never changes.
type StaticSettings config.WorkspaceConfig

func (s StaticSettings) Snapshot() config.WorkspaceConfig { return config.WorkspaceConfig(s) }

// Option configures an Estimator.
type Option func(*Estimator)

// WithLogger replaces the package level logger used for recovered panics.
func WithLogger(l *log.Logger) Option {
	return func(e *Estimator) { e.logger = l }
}

// Estimator is stateless between calls and safe for concurrent use.
type Estimator struct {
	searcher workspace.Searcher
	settings SettingsSource
	logger   *log.Logger
}

// New creates an Estimator. A nil searcher disables the workspace search and
// nil settings use the defaults.
func New(searcher workspace.Searcher, settings SettingsSource, opts ...Option) *Estimator {
	if settings == nil {
		settings = StaticSettings(config.DefaultConfig().Workspace)
	}
	e := &Estimator{searcher: searcher, settings: settings, logger: log.Default()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type workspaceHint struct {
	hint string
	ok   bool
}

// Estimate returns the hints for param in text, most likely first. It never
// fails; a parameter nothing is known about yields an empty estimation.
func (e *Estimator) Estimate(ctx context.Context, param, text string) *Estimation {
	settings := e.settings.Snapshot()
	acc := newAccumulator()
	es := &Estimation{acc: acc}

	if !search.ValidName(param) {
		es.typing = generic.DetectImport(text)
		return es
	}

	// Lowest priority but slowest: started first, cancelled once a local
	// hint is accepted.
	wsCtx, cancelSearch := context.WithCancel(ctx)
	defer cancelSearch()
	var wsResult chan workspaceHint
	if settings.SearchEnabled && settings.SearchLimit > 0 && e.searcher != nil {
		wsResult = make(chan workspaceHint, 1)
		go func() {
			var h workspaceHint
			e.guard("workspace search", func() {
				h.hint, h.ok = e.searcher.FindHintOfSimilarParam(wsCtx, param, text, settings.SearchLimit)
			})
			wsResult <- h
		}()
	}
	joinSearch := func(cancel bool) workspaceHint {
		if wsResult == nil {
			return workspaceHint{}
		}
		if cancel {
			cancelSearch()
		}
		h := <-wsResult
		wsResult = nil
		return h
	}
	defer joinSearch(true)

	var variable *search.Result
	var typing generic.Import
	g := new(errgroup.Group)
	g.Go(func() error {
		e.guard("variable search", func() { variable = search.VariableWithSameName(param, text) })
		return nil
	})
	g.Go(func() error {
		e.guard("typing import detection", func() { typing = generic.DetectImport(text) })
		return nil
	})
	_ = g.Wait()
	es.typing = typing

	if t, ok := paramEndsWith(param, "_"); ok {
		acc.add(string(t))
		e.addGenericHint(acc, typing, t)
		joinSearch(true)
		return es
	}

	found := e.try(acc, "hint of similar param", func() (string, bool) { return search.HintOfSimilarParam(param, text) }) ||
		e.try(acc, "class with same name", func() (string, bool) { return search.ClassWithSameName(param, text) })
	if found {
		joinSearch(true)
		return es
	}

	if variable != nil && !e.ambiguous(variable) {
		acc.add(variable.TypeName)
		if typing.Present() {
			e.guard("generic hints", func() {
				for _, h := range typing.Hints(variable.TypeName, variable.ValueAssignment) {
					acc.add(h)
				}
			})
		}
		acc.tryAdd(typeGuess(param))
	} else if t, ok := paramEndsWith(param, ""); ok {
		acc.add(string(t))
		e.addGenericHint(acc, typing, t)
	} else {
		acc.tryAdd(typeGuess(param))
	}

	if !acc.empty() {
		joinSearch(true)
		return es
	}

	es.usedWorkspace = wsResult != nil
	if h := joinSearch(false); h.ok {
		acc.add(h.hint)
	}
	return es
}

func (e *Estimator) addGenericHint(acc *accumulator, typing generic.Import, t typename.Name) {
	if h, ok := typing.Hint(t); ok {
		acc.add(h)
	}
}

func (e *Estimator) ambiguous(r *search.Result) (ambiguous bool) {
	ambiguous = true
	e.guard("ternary check", func() { ambiguous = r.Ambiguous() })
	return ambiguous
}

// try runs a strategy and adds its hint.
func (e *Estimator) try(acc *accumulator, name string, strategy func() (string, bool)) bool {
	var hint string
	var ok bool
	e.guard(name, func() { hint, ok = strategy() })
	return acc.tryAdd(hint, ok && strings.TrimSpace(hint) != "")
}

// guard runs fn and turns a panic into a logged no-match.
func (e *Estimator) guard(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Debug("Recovered from strategy panic", "strategy", name, "panic", fmt.Sprint(r))
		}
	}()
	fn()
}

// paramEndsWith returns the first likely type param ends with after sep,
// ignoring case.
func paramEndsWith(param, sep string) (typename.Name, bool) {
	for _, t := range likelyTypes {
		if utils.HasSuffixIgnoreCase(param, sep+string(t)) {
			return t, true
		}
	}
	return "", false
}

func typeGuess(param string) (string, bool) {
	t, ok := typeGuesses[param]
	return string(t), ok
}
