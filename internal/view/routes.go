package view

import "net/url"

// Form and link targets rendered into the UI. The HTTP layer mounts the same paths.
const (
	PathHome          = "/"
	PathTheme         = "/theme"
	PathSidebar       = "/sidebar"
	PathSearchOpen    = "/search/open"
	PathSearchClose   = "/search/close"
	PathBannerDismiss = "/banner/dismiss"
	PathStylesheet    = "/static/style.css"
)

// PagePath is the navigation link for page.
func PagePath(page string) string {
	return "/page/" + url.PathEscape(page)
}

// CommentPath is the form action that adds a comment to the article.
func CommentPath(articleID string) string {
	return "/articles/" + url.PathEscape(articleID) + "/comments"
}

// LikePath is the form action that likes one comment.
func LikePath(articleID, commentID string) string {
	return CommentPath(articleID) + "/" + url.PathEscape(commentID) + "/like"
}
