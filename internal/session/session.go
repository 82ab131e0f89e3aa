package session

import (
	"context"
	"sync"
	"time"

	"github.com/samvad-hq/akhbar-tech/internal/router"
	"github.com/samvad-hq/akhbar-tech/internal/ui"
	"github.com/samvad-hq/akhbar-tech/pkg/newsapi"
	"github.com/samvad-hq/akhbar-tech/pkg/publishers"
)

// targetOutside is dispatched to document-level listeners by every action
// other than the search box's own controls.
const targetOutside = "outside"

// Session is one visitor's state. All methods are safe for concurrent use.
type Session struct {
	id string
	m  *Manager

	mu            sync.Mutex
	state         router.AppState
	scope         *router.Scope
	releaseSearch func()
	cancelLoad    context.CancelFunc
	seen          time.Time
	closed        bool
}

func newSession(m *Manager, id string, theme router.Theme, now time.Time) *Session {
	return &Session{
		id:    id,
		m:     m,
		state: router.Initial(theme),
		scope: router.NewScope(),
		seen:  now,
	}
}

// ID returns the visitor identifier.
func (s *Session) ID() string { return s.id }

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() router.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// View renders the current state as a full document.
func (s *Session) View(now time.Time) *ui.Node {
	return router.Render(s.Snapshot(), now)
}

// Listeners returns the number of document-level listeners held.
func (s *Session) Listeners() int {
	return s.scope.Active()
}

// Navigate switches page and starts the headline load for news-bearing pages.
// A load still running for the previous page is cancelled.
func (s *Session) Navigate(page router.Page) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	s.stopLoadLocked()
	s.closeSearchLocked()
	s.state = router.Navigate(s.state, page)

	evt := publishers.NewEvent(publishers.EventPageViewed, s.id)
	evt.Page = string(page)
	s.m.emit(evt)

	if !s.state.Loading {
		return
	}
	if s.m.loader == nil {
		s.state, _ = router.LoadFailed(s.state, s.state.Generation, newsapi.MsgUnknown)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancelLoad = cancel
	s.m.loads.Add(1)
	go s.load(ctx, s.state.Generation)
}

func (s *Session) load(ctx context.Context, gen uint64) {
	defer s.m.loads.Done()

	res, err := s.m.loader.Load(ctx)
	if ctx.Err() != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	evt := publishers.NewEvent(publishers.EventHeadlinesFetch, s.id)
	evt.Page = string(s.state.Page)
	var applied bool
	if err != nil {
		s.state, applied = router.LoadFailed(s.state, gen, newsapi.UserMessage(err))
		evt.Error = err.Error()
	} else {
		s.state, applied = router.LoadSucceeded(s.state, gen, res.Articles, res.Comments)
		evt.Articles = len(res.Articles)
	}
	if applied {
		s.cancelLoad = nil
		s.m.emit(evt)
	}
}

// ToggleTheme flips the theme and persists it for the visitor.
func (s *Session) ToggleTheme() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clickLocked(targetOutside)
	s.state = router.ToggleTheme(s.state)
	theme := string(s.state.Theme)

	evt := publishers.NewEvent(publishers.EventThemeChanged, s.id)
	evt.Theme = theme
	s.m.emit(evt)

	return s.m.themes.SetTheme(s.id, theme)
}

// ToggleSidebar opens or closes the sidebar.
func (s *Session) ToggleSidebar() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clickLocked(targetOutside)
	s.state = router.ToggleSidebar(s.state)
}

// ToggleSearch opens the search box, or closes it when already open.
func (s *Session) ToggleSearch() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.SearchOpen {
		s.closeSearchLocked()
		return
	}
	s.state = router.OpenSearch(s.state)
	s.releaseSearch = s.scope.Acquire("search-outside-click", func(string) {
		s.closeSearchLocked()
	})
}

// CloseSearch hides the search box.
func (s *Session) CloseSearch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closeSearchLocked()
}

// DismissBanner removes the error banner.
func (s *Session) DismissBanner() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clickLocked(targetOutside)
	s.state = router.DismissBanner(s.state)
}

// AddComment posts a guest comment on articleID. It reports false for blank
// text or an unknown article.
func (s *Session) AddComment(articleID, text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clickLocked(targetOutside)
	next, c, ok := router.AddComment(s.state, articleID, text, s.m.now(), s.m.newID, s.m.toast)
	if !ok {
		return false
	}
	s.state = next

	evt := publishers.NewEvent(publishers.EventCommentAdded, s.id)
	evt.ArticleID = articleID
	evt.CommentID = c.ID
	s.m.emit(evt)
	return true
}

// LikeComment adds one like to a comment.
func (s *Session) LikeComment(articleID, commentID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clickLocked(targetOutside)
	next, c, ok := router.LikeComment(s.state, articleID, commentID)
	if !ok {
		return false
	}
	s.state = next

	evt := publishers.NewEvent(publishers.EventCommentLiked, s.id)
	evt.ArticleID = articleID
	evt.CommentID = commentID
	evt.Likes = c.Likes
	s.m.emit(evt)
	return true
}

// clickLocked delivers a document click to the scope's listeners.
func (s *Session) clickLocked(target string) {
	s.scope.Dispatch(target)
}

func (s *Session) closeSearchLocked() {
	if s.releaseSearch != nil {
		s.releaseSearch()
		s.releaseSearch = nil
	}
	s.state = router.CloseSearch(s.state)
}

func (s *Session) stopLoadLocked() {
	if s.cancelLoad != nil {
		s.cancelLoad()
		s.cancelLoad = nil
	}
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.seen = now
	s.mu.Unlock()
}

func (s *Session) lastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seen
}

func (s *Session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.stopLoadLocked()
	s.closeSearchLocked()
	s.scope.Close()
}
