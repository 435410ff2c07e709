// Package cli handles cmd line input for debugging the estimator in real-time
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"github.com/bastiangx/typehint/internal/utils"
	"github.com/bastiangx/typehint/pkg/suggest"
	"github.com/bastiangx/typehint/pkg/workspace"
)

// InputHandler reads "param path [prefix]" lines and prints the suggestions
// for param in the document at path.
type InputHandler struct {
	completer     suggest.ICompleter
	ws            workspace.Workspace
	in            io.Reader
	out           io.Writer
	maxParamLen   int
	suggestLimit  int
	showRemaining bool
	requestCount  int
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(completer suggest.ICompleter, ws workspace.Workspace, in io.Reader, out io.Writer, maxParamLen, limit int, showRemaining bool) *InputHandler {
	return &InputHandler{
		completer:     completer,
		ws:            ws,
		in:            in,
		out:           out,
		maxParamLen:   maxParamLen,
		suggestLimit:  limit,
		showRemaining: showRemaining,
	}
}

// Start begins the interface loop. It returns nil when the input ends.
func (h *InputHandler) Start(ctx context.Context) error {
	fmt.Fprintln(h.out, titleStyle.Render("TypeHint CLI [BETA]"))
	fmt.Fprintln(h.out, "type a parameter name and a file, e.g. 'count src/main.py', then press Enter (Ctrl+D to exit):")
	scanner := bufio.NewScanner(h.in)
	scanner.Buffer(make([]byte, 0, 4096), 1<<20)

	for {
		fmt.Fprint(h.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(h.out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		h.handleInput(ctx, line)
		if ctx.Err() != nil {
			return nil
		}
	}
}

// handleInput parses one prompt line and estimates it.
func (h *InputHandler) handleInput(ctx context.Context, line string) {
	h.requestCount++
	fields := strings.Fields(line)
	if len(fields) < 2 || len(fields) > 3 {
		log.Errorf("Expected 'param path [prefix]', got: %s", line)
		return
	}
	prefix := ""
	if len(fields) == 3 {
		prefix = fields[2]
	}
	if err := h.Estimate(ctx, fields[0], fields[1], prefix); err != nil {
		log.Error(err)
	}
}

// Estimate prints the suggestions for param in the document at path.
func (h *InputHandler) Estimate(ctx context.Context, param, path, prefix string) error {
	if !utils.IsValidInput(param, h.maxParamLen) {
		return errors.Errorf("not a parameter name: %q", param)
	}

	doc, err := h.ws.Open(ctx, path)
	if err != nil {
		return errors.Wrapf(err, "cannot open %s", path)
	}

	start := time.Now()
	log.Debug("Processing request", "n", h.requestCount, "param", param, "path", path)
	suggestions := h.completer.Complete(ctx, suggest.Request{
		Param:  param,
		URI:    doc.URI(),
		Text:   doc.Text(),
		Prefix: prefix,
		Limit:  h.suggestLimit,
	})
	log.Debugf("Took [ %v ] for param '%s'", time.Since(start), param)

	if !h.showRemaining {
		suggestions = estimatedOnly(suggestions)
	}
	if len(suggestions) == 0 {
		fmt.Fprintf(h.out, "No hints for '%s'\n", param)
		return nil
	}
	fmt.Fprint(h.out, renderSuggestions(param, suggestions))
	return nil
}

func estimatedOnly(suggestions []suggest.Suggestion) []suggest.Suggestion {
	var out []suggest.Suggestion
	for _, s := range suggestions {
		if s.Kind == suggest.Estimated {
			out = append(out, s)
		}
	}
	return out
}
