// Package router holds the per-visitor application state, the pure reducers
// that move it between pages and the render function that turns it into a UI tree.
package router

import (
	"strings"
	"time"

	"github.com/samvad-hq/akhbar-tech/internal/comments"
	"github.com/samvad-hq/akhbar-tech/internal/domain"
	"github.com/samvad-hq/akhbar-tech/internal/view"
)

// Page identifies one routable page.
type Page string

const (
	PageHome    Page = "home"
	PageNews    Page = "news"
	PageAbout   Page = "about"
	PageContact Page = "contact"
)

// NewsBearing reports whether the page shows fetched headlines.
func (p Page) NewsBearing() bool {
	return p == PageHome || p == PageNews
}

// Theme is the persisted colour scheme flag.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme treats anything other than "dark" as light.
func ParseTheme(s string) Theme {
	if strings.EqualFold(strings.TrimSpace(s), string(ThemeDark)) {
		return ThemeDark
	}
	return ThemeLight
}

// AppState is everything a render needs. Reducers return modified copies.
type AppState struct {
	Page        Page
	Theme       Theme
	SidebarOpen bool
	SearchOpen  bool
	Loading     bool
	Banner      string
	Articles    []domain.Article
	Comments    comments.Store
	Toast       *view.Toast
	// Generation changes on every navigation; load results carry the value
	// they were started with and are discarded when it no longer matches.
	Generation uint64
}

// Initial returns the state of a fresh visitor before the first navigation.
func Initial(theme Theme) AppState {
	return AppState{Theme: theme, Comments: comments.Store{}}
}

// Navigate switches page and discards everything the previous page rendered.
// Unknown pages are accepted and render only chrome.
func Navigate(s AppState, page Page) AppState {
	s.Page = page
	s.SidebarOpen = false
	s.SearchOpen = false
	s.Banner = ""
	s.Toast = nil
	s.Articles = nil
	s.Comments = comments.Store{}
	s.Generation++
	s.Loading = page.NewsBearing()
	return s
}

// LoadSucceeded installs a fetched article list. Stale generations are rejected.
func LoadSucceeded(s AppState, gen uint64, articles []domain.Article, store comments.Store) (AppState, bool) {
	if gen != s.Generation || !s.Loading {
		return s, false
	}
	s.Loading = false
	s.Banner = ""
	s.Articles = articles
	s.Comments = store
	return s, true
}

// LoadFailed shows message in the error banner. Stale generations are rejected.
func LoadFailed(s AppState, gen uint64, message string) (AppState, bool) {
	if gen != s.Generation || !s.Loading {
		return s, false
	}
	s.Loading = false
	s.Banner = message
	s.Articles = nil
	s.Comments = comments.Store{}
	return s, true
}

// ToggleTheme flips between dark and light.
func ToggleTheme(s AppState) AppState {
	if s.Theme == ThemeDark {
		s.Theme = ThemeLight
	} else {
		s.Theme = ThemeDark
	}
	return s
}

// ToggleSidebar opens or closes the sidebar and its overlay.
func ToggleSidebar(s AppState) AppState {
	s.SidebarOpen = !s.SidebarOpen
	return s
}

// OpenSearch shows the search popover.
func OpenSearch(s AppState) AppState {
	s.SearchOpen = true
	return s
}

// CloseSearch hides the search popover.
func CloseSearch(s AppState) AppState {
	s.SearchOpen = false
	return s
}

// DismissBanner removes the error banner.
func DismissBanner(s AppState) AppState {
	s.Banner = ""
	return s
}

// AddComment prepends a guest comment and arms the success toast.
// Blank text is ignored without feedback.
func AddComment(s AppState, articleID, text string, now time.Time, newID comments.IDFunc, toastFor time.Duration) (AppState, domain.Comment, bool) {
	store, c, ok := comments.Add(s.Comments, articleID, text, now, newID)
	if !ok {
		return s, domain.Comment{}, false
	}
	s.Comments = store
	s.Toast = &view.Toast{ArticleID: articleID, Message: view.CommentSaved, Until: now.Add(toastFor)}
	return s, c, true
}

// LikeComment adds one like to the comment.
func LikeComment(s AppState, articleID, commentID string) (AppState, domain.Comment, bool) {
	store, c, ok := comments.Like(s.Comments, articleID, commentID)
	if !ok {
		return s, domain.Comment{}, false
	}
	s.Comments = store
	return s, c, true
}
