package workspace

import (
	"context"
	"path"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/viant/afs"
	"github.com/viant/afs/option"
	"github.com/viant/afs/url"
)

// Workspace enumerates and opens project files.
type Workspace interface {
	// FindFiles returns up to maxResults URIs matching include and not
	// matching exclude. Patterns are slash separated globs where "**"
	// matches any number of directories.
	FindFiles(ctx context.Context, include, exclude string, maxResults int) ([]string, error)
	Open(ctx context.Context, uri string) (Document, error)
}

// FileWorkspace serves a directory tree through afs, so any URL scheme afs
// understands (file://, mem://, s3://...) can be a root.
type FileWorkspace struct {
	root string
	fs   afs.Service
}

func NewFileWorkspace(rootURL string) *FileWorkspace {
	return &FileWorkspace{root: rootURL, fs: afs.New()}
}

// Root returns the URL the workspace was created with.
func (w *FileWorkspace) Root() string { return w.root }

func (w *FileWorkspace) FindFiles(ctx context.Context, include, exclude string, maxResults int) ([]string, error) {
	if maxResults <= 0 {
		return nil, nil
	}
	objects, err := w.fs.List(ctx, w.root, option.NewRecursive(true))
	if err != nil {
		return nil, errors.Wrapf(err, "listing %s", w.root)
	}
	var uris []string
	for _, object := range objects {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if object.IsDir() {
			continue
		}
		p := url.Path(object.URL())
		if !Match(include, p) || (exclude != "" && Match(exclude, p)) {
			continue
		}
		uris = append(uris, object.URL())
		if len(uris) == maxResults {
			break
		}
	}
	log.Debugf("Found %d files under %s", len(uris), w.root)
	return uris, nil
}

func (w *FileWorkspace) Open(ctx context.Context, uri string) (Document, error) {
	data, err := w.fs.DownloadWithURL(ctx, uri)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", uri)
	}
	return NewTextDocument(uri, string(data)), nil
}

// Match reports whether the slash separated name matches pattern. A "**"
// segment matches zero or more path segments; any other segment follows
// path.Match. Patterns without a leading "**" are matched against the end of
// name, so "*.py" and "**/*.py" behave alike.
func Match(pattern, name string) bool {
	if pattern == "" {
		return false
	}
	pat := splitPath(pattern)
	segs := splitPath(name)
	if pat[0] != "**" {
		pat = append([]string{"**"}, pat...)
	}
	return matchSegments(pat, segs)
}

func matchSegments(pat, segs []string) bool {
	for len(pat) > 0 {
		if pat[0] == "**" {
			rest := pat[1:]
			if len(rest) == 0 {
				return true
			}
			for i := 0; i <= len(segs); i++ {
				if matchSegments(rest, segs[i:]) {
					return true
				}
			}
			return false
		}
		if len(segs) == 0 {
			return false
		}
		if ok, err := path.Match(pat[0], segs[0]); err != nil || !ok {
			return false
		}
		pat, segs = pat[1:], segs[1:]
	}
	return len(segs) == 0
}

func splitPath(p string) []string {
	var out []string
	for _, s := range strings.Split(p, "/") {
		if s != "" {
			out = append(out, s)
		}
	}
	if out == nil {
		out = []string{""}
	}
	return out
}
