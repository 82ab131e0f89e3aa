package view

import (
	"strconv"
	"time"

	"github.com/samvad-hq/akhbar-tech/internal/domain"
	"github.com/samvad-hq/akhbar-tech/internal/ui"
)

// Toast is a transient confirmation shown above one article's comment form.
type Toast struct {
	ArticleID string
	Message   string
	Until     time.Time
}

// Visible reports whether the toast belongs to articleID and has not expired.
func (t *Toast) Visible(articleID string, now time.Time) bool {
	return t != nil && t.ArticleID == articleID && now.Before(t.Until)
}

// CommentSource looks up an article's comments.
type CommentSource interface {
	For(articleID string) []domain.Comment
}

// Grid renders one card per article.
func Grid(articles []domain.Article, comments CommentSource, toast *Toast, now time.Time) *ui.Node {
	cards := make([]*ui.Node, 0, len(articles))
	for _, a := range articles {
		cards = append(cards, ArticleCard(a, comments.For(a.ID), toast, now))
	}
	return ui.El("div", ui.Attrs{"class": "article-grid grid grid-cols-1 sm:grid-cols-2 lg:grid-cols-3 gap-6 p-6"}, cards...)
}

// ArticleCard renders one article with its comment section.
func ArticleCard(a domain.Article, comments []domain.Comment, toast *Toast, now time.Time) *ui.Node {
	image := a.ImageURL
	if image == "" {
		image = PlaceholderImage
	}
	author := a.Author
	if author == "" {
		author = UnknownAuthor
	}

	return ui.El("article", ui.Attrs{"class": "article-card bg-white dark:bg-gray-800 rounded-lg shadow-lg overflow-hidden", "id": "article-" + a.ID},
		ui.El("img", ui.Attrs{"class": "w-full h-48 object-cover", "src": image, "alt": a.Title}),
		ui.El("div", ui.Attrs{"class": "p-6"},
			ui.El("h3", ui.Attrs{"class": "text-xl font-bold mb-2"}, ui.Text(a.Title)),
			ui.El("div", ui.Attrs{"class": "article-meta text-sm text-gray-600 dark:text-gray-400 mb-4"},
				ui.Text(author+" • "+FormatDate(a.PublishedAt))),
			ui.El("p", ui.Attrs{"class": "text-gray-700 dark:text-gray-300 mb-4"}, ui.Text(a.Description)),
			ui.El("div", ui.Attrs{"class": "flex items-center justify-between"},
				ui.El("a", ui.Attrs{
					"class":  "btn btn-primary inline-block hover-lift",
					"href":   a.URL,
					"target": "_blank",
					"rel":    "noopener noreferrer",
				}, Icon("fa-external-link-alt", "ml-2"), ui.Text(ReadMore)),
				ui.El("span", ui.Attrs{"class": "comment-count text-sm text-gray-500"},
					Icon("fa-comments", "ml-1"),
					ui.Text(strconv.Itoa(len(comments))+" "+CommentsSuffix)),
			),
		),
		CommentSection(a.ID, comments, toast, now),
	)
}

// CommentSection renders the add form, the optional toast and the comment list.
func CommentSection(articleID string, comments []domain.Comment, toast *Toast, now time.Time) *ui.Node {
	form := ui.El("form", ui.Attrs{"class": "comment-form", "method": "post", "action": CommentPath(articleID)},
		ui.El("textarea", ui.Attrs{"name": "content", "placeholder": CommentHint, "required": "", "rows": "2"}),
		ui.El("button", ui.Attrs{"type": "submit"}, Icon("fa-paper-plane"), ui.Text(" "+SubmitComment)),
	)

	var list *ui.Node
	if len(comments) == 0 {
		list = ui.El("p", ui.Attrs{"class": "no-comments text-gray-500 text-center py-4"}, ui.Text(NoComments))
	} else {
		cards := make([]*ui.Node, 0, len(comments))
		for _, c := range comments {
			cards = append(cards, CommentCard(articleID, c))
		}
		list = ui.Fragment(cards...)
	}

	var msg *ui.Node
	if toast.Visible(articleID, now) {
		msg = ui.El("div", ui.Attrs{"class": "comment-success", "role": "status"}, ui.Text(toast.Message))
	}

	return ui.El("div", ui.Attrs{"class": "comment-section"},
		msg,
		form,
		ui.El("div", ui.Attrs{"class": "comment-list"}, list),
	)
}

// CommentCard renders one comment with its like and reply controls.
func CommentCard(articleID string, c domain.Comment) *ui.Node {
	likeClass := "comment-like"
	if c.Likes > 0 {
		likeClass += " liked"
	}

	return ui.El("div", ui.Attrs{"class": "comment-card", "id": "comment-" + c.ID},
		ui.El("div", ui.Attrs{"class": "comment-avatar"}, ui.Text(avatar(c.Author))),
		ui.El("div", ui.Attrs{"class": "comment-content"},
			ui.El("div", ui.Attrs{"class": "comment-header"},
				ui.El("span", ui.Attrs{"class": "comment-author"}, ui.Text(c.Author)),
				ui.El("span", ui.Attrs{"class": "comment-date"}, ui.Text(FormatDate(c.CreatedAt))),
			),
			ui.El("div", ui.Attrs{"class": "comment-text"}, ui.Text(c.Content)),
			ui.El("div", ui.Attrs{"class": "comment-actions"},
				postButton(LikePath(articleID, c.ID), likeClass, "",
					Icon("fa-heart"), ui.El("span", ui.Attrs{"class": "like-count"}, ui.Text(strconv.Itoa(c.Likes)))),
				// reply has no behaviour
				ui.El("button", ui.Attrs{"type": "button", "class": "comment-reply"}, Icon("fa-reply"), ui.Text(" "+ReplyLabel)),
			),
		),
	)
}

func avatar(author string) string {
	for _, r := range author {
		return string(r)
	}
	return "؟"
}
