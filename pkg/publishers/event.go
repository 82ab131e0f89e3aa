package publishers

import "time"

// Event types emitted by visitor sessions.
const (
	EventPageViewed     = "page.viewed"
	EventThemeChanged   = "theme.changed"
	EventCommentAdded   = "comment.added"
	EventCommentLiked   = "comment.liked"
	EventHeadlinesFetch = "headlines.fetched"
)

// Event is one visitor action published downstream.
type Event struct {
	Type       string    `json:"type"`
	VisitorID  string    `json:"visitor_id"`
	Page       string    `json:"page,omitempty"`
	ArticleID  string    `json:"article_id,omitempty"`
	CommentID  string    `json:"comment_id,omitempty"`
	Theme      string    `json:"theme,omitempty"`
	Likes      int       `json:"likes,omitempty"`
	Articles   int       `json:"articles,omitempty"`
	Error      string    `json:"error,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewEvent stamps an event of type typ for visitorID with the current UTC time.
func NewEvent(typ, visitorID string) Event {
	return Event{Type: typ, VisitorID: visitorID, OccurredAt: time.Now().UTC()}
}
