package config

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
)

// Store holds the active Config and notifies subscribers when it changes.
// Readers take a snapshot per use instead of keeping one around.
type Store struct {
	mu       sync.RWMutex
	updateMu sync.Mutex
	config   Config
	path     string

	subMu  sync.Mutex
	nextID int
	subs   map[int]func(Config)
}

// NewStore wraps cfg. path is where Save and Reload go; empty keeps the
// store in memory only.
func NewStore(cfg *Config, path string) *Store {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	c := *cfg
	c.normalize()
	return &Store{config: c, path: path, subs: make(map[int]func(Config))}
}

// Path returns the file backing the store.
func (s *Store) Path() string { return s.path }

// Config returns a copy of the whole configuration.
func (s *Store) Config() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

// Snapshot returns the current workspace settings.
func (s *Store) Snapshot() WorkspaceConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config.Workspace
}

// Subscribe registers fn to run after every change. The returned func
// removes it.
func (s *Store) Subscribe(fn func(Config)) (cancel func()) {
	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.subMu.Unlock()
	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

// Update applies the non-nil workspace settings, saves when the store is file
// backed and notifies subscribers. Nothing changes when the save fails.
func (s *Store) Update(searchEnabled *bool, searchLimit *int) error {
	if searchLimit != nil && *searchLimit < 0 {
		return fmt.Errorf("search limit must not be negative, got %d", *searchLimit)
	}
	s.updateMu.Lock()
	defer s.updateMu.Unlock()

	cfg := s.Config()
	if searchEnabled != nil {
		cfg.Workspace.SearchEnabled = *searchEnabled
	}
	if searchLimit != nil {
		cfg.Workspace.SearchLimit = *searchLimit
	}
	if s.path != "" {
		if err := SaveConfig(&cfg, s.path); err != nil {
			return fmt.Errorf("saving config to %s: %w", s.path, err)
		}
	}

	s.mu.Lock()
	s.config = cfg
	s.mu.Unlock()
	s.notify(cfg)
	return nil
}

// Set replaces the whole configuration and notifies subscribers.
func (s *Store) Set(cfg Config) {
	cfg.normalize()
	s.mu.Lock()
	s.config = cfg
	s.mu.Unlock()
	s.notify(cfg)
}

// Reload re-reads the backing file.
func (s *Store) Reload() error {
	if s.path == "" {
		return fmt.Errorf("config store has no backing file")
	}
	cfg, err := LoadConfig(s.path)
	if err != nil {
		return fmt.Errorf("reloading config from %s: %w", s.path, err)
	}
	s.Set(*cfg)
	log.Debugf("Reloaded config from %s", s.path)
	return nil
}

func (s *Store) notify(cfg Config) {
	s.subMu.Lock()
	fns := make([]func(Config), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()
	for _, fn := range fns {
		fn(cfg)
	}
}
