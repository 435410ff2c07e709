package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bastiangx/typehint/pkg/estimate"
	"github.com/bastiangx/typehint/pkg/suggest"
	"github.com/bastiangx/typehint/pkg/workspace"
)

type docs map[string]string

func (d docs) FindFiles(context.Context, string, string, int) ([]string, error) { return nil, nil }

func (d docs) Open(_ context.Context, uri string) (workspace.Document, error) {
	text, ok := d[uri]
	if !ok {
		return nil, errors.New("no such file")
	}
	return workspace.NewTextDocument(uri, text), nil
}

func runCLI(t *testing.T, input string, showRemaining bool) string {
	t.Helper()
	ws := docs{"main.py": "from typing import List\nitems = [1, 2]\ncount = 3"}
	completer := suggest.NewCompleter(nil, estimate.StaticSettings{})
	var out bytes.Buffer
	h := NewInputHandler(completer, ws, strings.NewReader(input), &out, 64, 5, showRemaining)
	require.NoError(t, h.Start(context.Background()))
	return out.String()
}

func TestCLIEstimatedOnly(t *testing.T) {
	out := runCLI(t, "items main.py\n\ncount main.py\n", false)
	assert.Contains(t, out, "Found 3 hints for 'items'")
	assert.Contains(t, out, "List[int]")
	assert.Contains(t, out, "Found 1 hints for 'count'")
	assert.NotContains(t, out, "builtin")
}

func TestCLIWithRemainingAndPrefix(t *testing.T) {
	out := runCLI(t, "count main.py b\n", true)
	assert.Contains(t, out, "bool")
	assert.Contains(t, out, "bytes")
	assert.NotRegexp(t, `\d\. +int\s`, out)
}

func TestCLIBadInput(t *testing.T) {
	out := runCLI(t, "onlyparam\nfo(o main.py\ncount missing.py\nunknown main.py\n", false)
	assert.NotContains(t, out, "Found")
	assert.Contains(t, out, "No hints for 'unknown'")
}

func TestEstimateErrors(t *testing.T) {
	ws := docs{"main.py": "count = 3"}
	completer := suggest.NewCompleter(nil, estimate.StaticSettings{})
	var out bytes.Buffer
	h := NewInputHandler(completer, ws, strings.NewReader(""), &out, 8, 0, false)

	require.NoError(t, h.Estimate(context.Background(), "count", "main.py", ""))
	assert.Contains(t, out.String(), "Found 1 hints for 'count'")

	assert.Error(t, h.Estimate(context.Background(), "count", "missing.py", ""))
	assert.Error(t, h.Estimate(context.Background(), "a_very_long_name", "main.py", ""))
}

func TestRenderSuggestions(t *testing.T) {
	out := renderSuggestions("x", []suggest.Suggestion{
		{Hint: "int", Rank: 1, Kind: suggest.Estimated},
		{Hint: "Dict[", Rank: 2, Kind: suggest.Generic},
	})
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "int")
	assert.Contains(t, lines[1], "(estimated)")
	assert.Contains(t, lines[2], "(typing)")
}
