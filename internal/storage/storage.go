// Package storage persists per-visitor preferences between sessions.
package storage

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Store remembers the theme each visitor last chose.
type Store interface {
	Close() error
	Theme(visitorID string) (string, bool, error)
	SetTheme(visitorID, theme string) error
}

// Options controls retention for concrete store implementations.
type Options struct {
	ThemeTTL        time.Duration
	CleanupInterval time.Duration
}

const (
	defaultThemeTTL        = 365 * 24 * time.Hour
	defaultCleanupInterval = 12 * time.Hour
)

// NewStore creates the configured storage backend.
func NewStore(typ, path string, opts Options) (Store, error) {
	typ = strings.TrimSpace(strings.ToLower(typ))
	opts = normalizeOptions(opts)

	switch typ {
	case "", "none", "disabled":
		return noopStore{}, nil
	case "memory":
		return NewMemoryStore(), nil
	case "bbolt":
		if strings.TrimSpace(path) == "" {
			return nil, fmt.Errorf("bbolt storage requires a path")
		}
		store, err := openBolt(path, opts)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unsupported storage type %q", typ)
	}
}

func normalizeOptions(opts Options) Options {
	if opts.ThemeTTL <= 0 {
		opts.ThemeTTL = defaultThemeTTL
	}
	if opts.CleanupInterval <= 0 {
		opts.CleanupInterval = defaultCleanupInterval
	}
	return opts
}

type noopStore struct{}

func (noopStore) Close() error                       { return nil }
func (noopStore) Theme(string) (string, bool, error) { return "", false, nil }
func (noopStore) SetTheme(string, string) error      { return nil }

// MemoryStore keeps themes for the lifetime of the process.
type MemoryStore struct {
	mu     sync.RWMutex
	themes map[string]string
}

// NewMemoryStore returns an empty in-process store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{themes: make(map[string]string)}
}

func (m *MemoryStore) Close() error { return nil }

func (m *MemoryStore) Theme(visitorID string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	theme, ok := m.themes[visitorID]
	return theme, ok, nil
}

func (m *MemoryStore) SetTheme(visitorID, theme string) error {
	m.mu.Lock()
	m.themes[visitorID] = theme
	m.mu.Unlock()
	return nil
}
