// Package session keeps one application state per visitor and serialises the
// actions applied to it.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/samvad-hq/akhbar-tech/internal/comments"
	"github.com/samvad-hq/akhbar-tech/internal/loader"
	"github.com/samvad-hq/akhbar-tech/internal/logger"
	"github.com/samvad-hq/akhbar-tech/internal/router"
	"github.com/samvad-hq/akhbar-tech/internal/storage"
	"github.com/samvad-hq/akhbar-tech/pkg/publishers"
)

// ErrClosed is returned once the manager has shut down.
var ErrClosed = errors.New("session manager closed")

// Loader performs the headline fetch for news-bearing pages.
type Loader interface {
	Load(ctx context.Context) (loader.Result, error)
}

// Options wires a Manager.
type Options struct {
	Loader        Loader
	Themes        storage.Store
	Sink          publishers.Sink
	Logger        logger.Logger
	TTL           time.Duration
	ToastDuration time.Duration
	Now           func() time.Time
	NewCommentID  comments.IDFunc
}

// Manager owns every live session.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	closed   bool

	loader Loader
	themes storage.Store
	sink   publishers.Sink
	log    logger.Logger
	ttl    time.Duration
	toast  time.Duration
	now    func() time.Time
	newID  comments.IDFunc

	loads sync.WaitGroup
}

// NewManager builds a Manager. Missing collaborators fall back to no-ops.
func NewManager(opts Options) *Manager {
	m := &Manager{
		sessions: make(map[string]*Session),
		loader:   opts.Loader,
		themes:   opts.Themes,
		sink:     opts.Sink,
		log:      logger.Ensure(opts.Logger),
		ttl:      opts.TTL,
		toast:    opts.ToastDuration,
		now:      opts.Now,
		newID:    opts.NewCommentID,
	}
	if m.themes == nil {
		m.themes = storage.NewMemoryStore()
	}
	if m.sink == nil {
		m.sink = publishers.NopSink{}
	}
	if m.ttl <= 0 {
		m.ttl = 2 * time.Hour
	}
	if m.toast <= 0 {
		m.toast = 2 * time.Second
	}
	if m.now == nil {
		m.now = time.Now
	}
	if m.newID == nil {
		m.newID = comments.NewID
	}
	return m
}

// Get returns the session for visitorID, creating it with the visitor's
// stored theme on first use.
func (m *Manager) Get(visitorID string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, ErrClosed
	}
	now := m.now()
	if s, ok := m.sessions[visitorID]; ok {
		s.touch(now)
		return s, nil
	}

	theme := router.ThemeLight
	stored, found, err := m.themes.Theme(visitorID)
	if err != nil {
		m.log.WarnObj("theme lookup failed", "theme_error", map[string]any{
			"visitor_id": visitorID,
			"error":      err.Error(),
		})
	} else if found {
		theme = router.ParseTheme(stored)
	}

	s := newSession(m, visitorID, theme, now)
	m.sessions[visitorID] = s
	return s, nil
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep tears down sessions idle for longer than the TTL.
func (m *Manager) Sweep() int {
	now := m.now()

	m.mu.Lock()
	var idle []*Session
	for id, s := range m.sessions {
		if now.Sub(s.lastSeen()) > m.ttl {
			idle = append(idle, s)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, s := range idle {
		s.close()
	}
	if len(idle) > 0 {
		m.log.DebugObj("idle sessions evicted", "session_sweep", map[string]any{
			"evicted": len(idle),
		})
	}
	return len(idle)
}

// Run sweeps idle sessions every interval until ctx is cancelled.
func (m *Manager) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			m.Sweep()
		}
	}
}

// Close tears down every session and waits for in-flight loads to return.
func (m *Manager) Close() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	all := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		all = append(all, s)
	}
	m.sessions = map[string]*Session{}
	m.mu.Unlock()

	for _, s := range all {
		s.close()
	}
	m.loads.Wait()
}

func (m *Manager) emit(evt publishers.Event) {
	m.sink.Emit(evt)
}
