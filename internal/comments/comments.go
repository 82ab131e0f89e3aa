// Package comments holds the per-article comment lists of a session and the
// reducers that change them. Reducers never mutate their input store.
package comments

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samvad-hq/akhbar-tech/internal/domain"
)

// GuestAuthor is the author label of every visitor-submitted comment.
const GuestAuthor = "کاربر مهمان"

// Store maps an article ID to its comments, newest first.
type Store map[string][]domain.Comment

// IDFunc generates comment identifiers.
type IDFunc func() string

// NewID returns a time-ordered identifier derived from the current time.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Seed returns a store with the demonstration comments attached to every article.
func Seed(articles []domain.Article, now time.Time) Store {
	s := make(Store, len(articles))
	for _, a := range articles {
		s[a.ID] = DemoComments(now)
	}
	return s
}

// DemoComments returns the two canned comments shown under every fetched article.
func DemoComments(now time.Time) []domain.Comment {
	return []domain.Comment{
		{
			ID:        "1",
			Author:    "علی محمدی",
			Content:   "مقاله بسیار مفیدی بود. ممنون از اشتراک‌گذاری.",
			CreatedAt: now,
			Likes:     5,
		},
		{
			ID:        "2",
			Author:    "سارا احمدی",
			Content:   "اطلاعات خوبی در مورد تکنولوژی‌های جدید ارائه شده.",
			CreatedAt: now,
			Likes:     3,
		},
	}
}

// For returns the comments of articleID. The slice must not be modified.
func (s Store) For(articleID string) []domain.Comment {
	return s[articleID]
}

// Count returns the number of comments on articleID.
func (s Store) Count(articleID string) int {
	return len(s[articleID])
}

// Add prepends a guest comment to articleID. Blank text or an unknown article
// leaves the store untouched and reports false.
func Add(s Store, articleID, text string, now time.Time, newID IDFunc) (Store, domain.Comment, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return s, domain.Comment{}, false
	}
	list, ok := s[articleID]
	if !ok {
		return s, domain.Comment{}, false
	}
	if newID == nil {
		newID = NewID
	}

	c := domain.Comment{
		ID:        newID(),
		Author:    GuestAuthor,
		Content:   text,
		CreatedAt: now,
	}

	next := make([]domain.Comment, 0, len(list)+1)
	next = append(next, c)
	next = append(next, list...)

	out := s.clone()
	out[articleID] = next
	return out, c, true
}

// Like adds exactly one like to the comment. Repeated likes are not capped.
func Like(s Store, articleID, commentID string) (Store, domain.Comment, bool) {
	list := s[articleID]
	for i := range list {
		if list[i].ID != commentID {
			continue
		}
		next := make([]domain.Comment, len(list))
		copy(next, list)
		next[i].Likes++

		out := s.clone()
		out[articleID] = next
		return out, next[i], true
	}
	return s, domain.Comment{}, false
}

func (s Store) clone() Store {
	out := make(Store, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
