package session

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/samvad-hq/akhbar-tech/internal/comments"
	"github.com/samvad-hq/akhbar-tech/internal/domain"
	"github.com/samvad-hq/akhbar-tech/internal/loader"
	"github.com/samvad-hq/akhbar-tech/internal/router"
	"github.com/samvad-hq/akhbar-tech/internal/storage"
	"github.com/samvad-hq/akhbar-tech/pkg/newsapi"
	"github.com/samvad-hq/akhbar-tech/pkg/publishers"
)

// The Pub/Sub client links opencensus, whose view worker starts in init.
var leakOptions = []goleak.Option{
	goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"),
}

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m, leakOptions...)
}

var now = time.Date(2024, 10, 15, 12, 0, 0, 0, time.UTC)

// gatedLoader blocks every Load until release is closed or ctx ends.
type gatedLoader struct {
	mu      sync.Mutex
	calls   int
	release chan struct{}
	result  loader.Result
	err     error
}

func newGatedLoader(articles ...domain.Article) *gatedLoader {
	return &gatedLoader{
		release: make(chan struct{}),
		result:  loader.Result{Articles: articles, Comments: comments.Seed(articles, now)},
	}
}

func (g *gatedLoader) Load(ctx context.Context) (loader.Result, error) {
	g.mu.Lock()
	g.calls++
	g.mu.Unlock()

	select {
	case <-g.release:
		return g.result, g.err
	case <-ctx.Done():
		return loader.Result{}, ctx.Err()
	}
}

type instantLoader struct {
	result loader.Result
	err    error
}

func (l instantLoader) Load(context.Context) (loader.Result, error) {
	return l.result, l.err
}

type recordingSink struct {
	mu     sync.Mutex
	events []publishers.Event
}

func (r *recordingSink) Emit(evt publishers.Event) {
	r.mu.Lock()
	r.events = append(r.events, evt)
	r.mu.Unlock()
}

func (r *recordingSink) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

func articles() []domain.Article {
	return []domain.Article{{ID: "a1", Title: "One", URL: "https://x/1"}, {ID: "a2", Title: "Two", URL: "https://x/2"}}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("condition not met in time")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func newManager(t *testing.T, l Loader, sink publishers.Sink) *Manager {
	t.Helper()
	m := NewManager(Options{
		Loader:       l,
		Sink:         sink,
		Now:          func() time.Time { return now },
		NewCommentID: func() string { return "new" },
	})
	t.Cleanup(m.Close)
	return m
}

func TestNavigateLoadsHeadlinesInBackground(t *testing.T) {
	l := newGatedLoader(articles()...)
	m := newManager(t, l, nil)
	s, err := m.Get("v1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	s.Navigate(router.PageHome)
	if !s.Snapshot().Loading {
		t.Fatalf("expected loading right after navigation")
	}

	close(l.release)
	waitFor(t, func() bool { return !s.Snapshot().Loading })

	st := s.Snapshot()
	if len(st.Articles) != 2 || st.Comments.Count("a1") != 2 {
		t.Fatalf("unexpected result: %d articles, %d comments", len(st.Articles), st.Comments.Count("a1"))
	}
	if st.Banner != "" {
		t.Fatalf("unexpected banner %q", st.Banner)
	}
}

func TestNavigateAwayCancelsPendingLoad(t *testing.T) {
	l := newGatedLoader(articles()...)
	m := newManager(t, l, nil)
	s, _ := m.Get("v1")

	s.Navigate(router.PageHome)
	s.Navigate(router.PageAbout)

	// The cancelled load returns without touching state.
	m.loads.Wait()
	st := s.Snapshot()
	if st.Page != router.PageAbout || st.Loading || len(st.Articles) != 0 {
		t.Fatalf("cancelled load changed state: %+v", st)
	}
}

func TestLoadFailureShowsLocalizedBanner(t *testing.T) {
	m := newManager(t, instantLoader{err: newsapi.ErrNoArticles}, nil)
	s, _ := m.Get("v1")

	s.Navigate(router.PageNews)
	waitFor(t, func() bool { return !s.Snapshot().Loading })
	if got := s.Snapshot().Banner; got != newsapi.MsgNoArticles {
		t.Fatalf("unexpected banner %q", got)
	}

	s.DismissBanner()
	if got := s.Snapshot().Banner; got != "" {
		t.Fatalf("banner not dismissed: %q", got)
	}
}

func TestSearchListenerIsReleasedOnEveryClosePath(t *testing.T) {
	m := newManager(t, nil, nil)
	s, _ := m.Get("v1")

	expectListeners := func(want int) {
		t.Helper()
		if got := s.Listeners(); got != want {
			t.Fatalf("expected %d listeners, got %d", want, got)
		}
	}

	s.ToggleSearch()
	if !s.Snapshot().SearchOpen {
		t.Fatalf("search did not open")
	}
	expectListeners(1)
	s.ToggleSearch()
	if s.Snapshot().SearchOpen {
		t.Fatalf("search did not close on toggle")
	}
	expectListeners(0)

	s.ToggleSearch()
	s.CloseSearch()
	expectListeners(0)

	// any other action counts as a click outside
	s.ToggleSearch()
	s.ToggleSidebar()
	if st := s.Snapshot(); st.SearchOpen || !st.SidebarOpen {
		t.Fatalf("click outside: search=%v sidebar=%v", st.SearchOpen, st.SidebarOpen)
	}
	expectListeners(0)

	s.ToggleSearch()
	s.DismissBanner()
	if s.Snapshot().SearchOpen {
		t.Fatalf("dismissing the banner must close the search box")
	}
	expectListeners(0)

	s.ToggleSearch()
	s.Navigate(router.PageContact)
	expectListeners(0)

	s.ToggleSearch()
	m.Close()
	expectListeners(0)
}

func TestRepeatedSearchTogglesNeverAccumulateListeners(t *testing.T) {
	m := newManager(t, nil, nil)
	s, _ := m.Get("v1")

	for i := 0; i < 50; i++ {
		s.ToggleSearch()
	}
	if n := s.Listeners(); n != 0 {
		t.Fatalf("expected no listeners after an even number of toggles, got %d", n)
	}
	s.ToggleSearch()
	if n := s.Listeners(); n != 1 {
		t.Fatalf("expected 1 listener, got %d", n)
	}
}

func TestThemeTogglePersistsAcrossSessions(t *testing.T) {
	store, err := storage.NewStore("bbolt", filepath.Join(t.TempDir(), "theme.db"), storage.Options{})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	defer store.Close()

	m := NewManager(Options{Themes: store})
	s, _ := m.Get("v1")
	if err := s.ToggleTheme(); err != nil {
		t.Fatalf("ToggleTheme: %v", err)
	}
	if s.Snapshot().Theme != router.ThemeDark {
		t.Fatalf("expected dark theme")
	}
	m.Close()

	m2 := NewManager(Options{Themes: store})
	defer m2.Close()
	s2, _ := m2.Get("v1")
	if s2.Snapshot().Theme != router.ThemeDark {
		t.Fatalf("theme not restored for returning visitor")
	}

	if err := s2.ToggleTheme(); err != nil {
		t.Fatalf("ToggleTheme: %v", err)
	}
	theme, found, err := store.Theme("v1")
	if err != nil || !found || theme != string(router.ThemeLight) {
		t.Fatalf("expected stored light theme, got %q found=%v err=%v", theme, found, err)
	}
}

func TestCommentsEmitActivityEvents(t *testing.T) {
	arts := articles()
	sink := &recordingSink{}
	m := newManager(t, instantLoader{result: loader.Result{Articles: arts, Comments: comments.Seed(arts, now)}}, sink)
	s, _ := m.Get("v1")

	s.Navigate(router.PageHome)
	waitFor(t, func() bool { return !s.Snapshot().Loading })

	if s.AddComment("a1", "   ") || s.AddComment("missing", "hi") {
		t.Fatalf("blank or orphan comment accepted")
	}
	if !s.AddComment("a1", "hi") || !s.LikeComment("a1", "new") {
		t.Fatalf("valid comment or like rejected")
	}
	if s.LikeComment("a1", "nope") {
		t.Fatalf("like on unknown comment accepted")
	}

	st := s.Snapshot()
	first := st.Comments.For("a1")[0]
	if first.ID != "new" || first.Likes != 1 {
		t.Fatalf("unexpected head comment %+v", first)
	}
	if st.Toast == nil || st.Toast.ArticleID != "a1" || !st.Toast.Until.Equal(now.Add(2*time.Second)) {
		t.Fatalf("unexpected toast %+v", st.Toast)
	}

	want := []string{
		publishers.EventPageViewed,
		publishers.EventHeadlinesFetch,
		publishers.EventCommentAdded,
		publishers.EventCommentLiked,
	}
	if got := sink.types(); !reflect.DeepEqual(got, want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
}

func TestSweepEvictsIdleSessions(t *testing.T) {
	clock := now
	m := NewManager(Options{TTL: time.Minute, Now: func() time.Time { return clock }})
	defer m.Close()

	_, _ = m.Get("old")
	clock = clock.Add(2 * time.Minute)
	_, _ = m.Get("fresh")

	if n := m.Sweep(); n != 1 {
		t.Fatalf("expected 1 eviction, got %d", n)
	}
	if m.Len() != 1 {
		t.Fatalf("expected 1 remaining session, got %d", m.Len())
	}
}

func TestGetAfterCloseFails(t *testing.T) {
	m := NewManager(Options{})
	m.Close()
	if _, err := m.Get("v1"); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
}

func TestCloseWaitsForInFlightLoads(t *testing.T) {
	defer goleak.VerifyNone(t, append(leakOptions, goleak.IgnoreCurrent())...)

	l := newGatedLoader(articles()...)
	m := NewManager(Options{Loader: l})
	s, _ := m.Get("v1")
	s.Navigate(router.PageNews)

	m.Close()
	s.Navigate(router.PageHome)
	if got := s.Snapshot().Page; got != router.PageNews {
		t.Fatalf("closed session accepted navigation to %q", got)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	m := NewManager(Options{})
	defer m.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- m.Run(ctx, time.Millisecond) }()
	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Run: %v", err)
	}
}
