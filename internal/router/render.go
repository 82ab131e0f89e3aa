package router

import (
	"time"

	"github.com/samvad-hq/akhbar-tech/internal/ui"
	"github.com/samvad-hq/akhbar-tech/internal/view"
)

// refreshWhileLoading is how often a loading page re-requests itself.
const refreshWhileLoading = "1"

// Render builds the whole document for s: chrome, the page subtree, the
// headline grid for news-bearing pages, and the footer.
func Render(s AppState, now time.Time) *ui.Node {
	rootClass := ""
	if s.Theme == ThemeDark {
		rootClass = "dark"
	}

	return ui.El("html", ui.Attrs{"lang": "fa", "dir": "rtl", "class": rootClass},
		head(s),
		ui.El("body", ui.Attrs{"id": "top"},
			ui.El("div", ui.Attrs{"id": "app"},
				view.Navbar(view.NavbarProps{Dark: s.Theme == ThemeDark, SearchOpen: s.SearchOpen}),
				view.Sidebar(s.SidebarOpen),
				PageBody(s, now),
				view.Footer(),
			),
			view.ScrollToTop(),
		),
	)
}

// PageBody renders only the page-specific subtree of s.
func PageBody(s AppState, now time.Time) *ui.Node {
	var body *ui.Node
	switch s.Page {
	case PageHome:
		body = view.Hero()
	case PageNews:
		body = view.NewsPage()
	case PageAbout:
		return view.AboutPage()
	case PageContact:
		return view.ContactPage()
	default:
		return nil
	}

	return ui.Fragment(body, headlines(s, now))
}

func headlines(s AppState, now time.Time) *ui.Node {
	switch {
	case s.Loading:
		return view.Spinner()
	case s.Banner != "":
		return view.ErrorBanner(s.Banner)
	case len(s.Articles) > 0:
		return view.Grid(s.Articles, s.Comments, s.Toast, now)
	default:
		return nil
	}
}

func head(s AppState) *ui.Node {
	return ui.El("head", nil,
		ui.El("meta", ui.Attrs{"charset": "utf-8"}),
		ui.El("meta", ui.Attrs{"name": "viewport", "content": "width=device-width, initial-scale=1"}),
		ui.When(s.Loading, ui.El("meta", ui.Attrs{"http-equiv": "refresh", "content": refreshWhileLoading})),
		ui.El("title", nil, ui.Text(view.SiteTitle)),
		ui.El("script", ui.Attrs{"src": "https://cdn.tailwindcss.com"}),
		ui.El("link", ui.Attrs{"rel": "stylesheet", "href": "https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.5.1/css/all.min.css"}),
		ui.El("link", ui.Attrs{"rel": "stylesheet", "href": view.PathStylesheet}),
	)
}
