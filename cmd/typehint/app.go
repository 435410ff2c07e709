package main

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"github.com/bastiangx/typehint/internal/logger"
	"github.com/bastiangx/typehint/pkg/config"
	"github.com/bastiangx/typehint/pkg/estimate"
	"github.com/bastiangx/typehint/pkg/suggest"
	"github.com/bastiangx/typehint/pkg/workspace"
)

const hotCacheEntries = 256

// app bundles what every command needs.
type app struct {
	store     *config.Store
	ws        *workspace.FileWorkspace
	completer *suggest.Completer
	stop      func()
}

// newApp loads the config and serves the workspace rooted at root, or the
// current directory when root is empty.
func newApp(root string) (*app, error) {
	cfg, path, err := config.LoadConfigWithPriority(configPath)
	if err != nil {
		return nil, errors.Wrap(err, "loading config")
	}
	log.Debugf("Using config file: (%s)", path)

	rootDir, err := resolvePath(root)
	if err != nil {
		return nil, err
	}
	log.Debugf("Workspace root: %s", rootDir)

	store := config.NewStore(cfg, path)
	ws := workspace.NewFileWorkspace(rootDir)
	completer := suggest.NewCompleter(ws, store, estimate.WithLogger(logger.New("estimate"))).
		WithCache(hotCacheEntries)
	cancel := store.Subscribe(func(config.Config) { completer.Invalidate() })

	return &app{store: store, ws: ws, completer: completer, stop: cancel}, nil
}

// resolvePath makes p absolute against the working directory.
func resolvePath(p string) (string, error) {
	if p == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "resolving working dir")
		}
		return wd, nil
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", errors.Wrapf(err, "resolving %s", p)
	}
	return abs, nil
}
