package app

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/samvad-hq/akhbar-tech/internal/domain"
	"github.com/samvad-hq/akhbar-tech/internal/router"
	"github.com/samvad-hq/akhbar-tech/internal/session"
	"github.com/samvad-hq/akhbar-tech/internal/ui"
	"github.com/samvad-hq/akhbar-tech/internal/view"
)

const (
	sessionCookie    = "akhbar_sid"
	sessionCookieAge = 365 * 24 * time.Hour
	maxCommentBytes  = 8 << 10
)

type ctxKey struct{}

func sessionFrom(ctx context.Context) *session.Session {
	s, _ := ctx.Value(ctxKey{}).(*session.Session)
	return s
}

// withSession resolves the visitor cookie, issuing a new one when missing or malformed.
func (s *Server) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		visitorID := ""
		if c, err := r.Cookie(sessionCookie); err == nil {
			if id, err := uuid.Parse(c.Value); err == nil {
				visitorID = id.String()
			}
		}
		if visitorID == "" {
			visitorID = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookie,
				Value:    visitorID,
				Path:     "/",
				MaxAge:   int(sessionCookieAge / time.Second),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		sess, err := s.sessions.Get(visitorID)
		if err != nil {
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, sess)))
	})
}

// handleIndex renders the current page. A first visit lands on home.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())
	if sess.Snapshot().Page == "" {
		sess.Navigate(router.PageHome)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := ui.RenderDocument(w, sess.View(s.now())); err != nil {
		s.log.ErrorObj("render failed", "render_error", map[string]any{
			"visitor_id": sess.ID(),
			"error":      err.Error(),
		})
	}
}

func (s *Server) handleNavigate(w http.ResponseWriter, r *http.Request) {
	page := router.Page(strings.ToLower(chi.URLParam(r, "page")))
	sessionFrom(r.Context()).Navigate(page)
	redirectHome(w, r, "")
}

func (s *Server) handleTheme(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())
	if err := sess.ToggleTheme(); err != nil {
		s.log.WarnObj("theme persist failed", "theme_error", map[string]any{
			"visitor_id": sess.ID(),
			"error":      err.Error(),
		})
	}
	redirectHome(w, r, "")
}

// action adapts a session mutation into a post/redirect/get handler.
func (s *Server) action(fn func(*session.Session)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fn(sessionFrom(r.Context()))
		redirectHome(w, r, "")
	}
}

func (s *Server) handleAddComment(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxCommentBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	articleID := chi.URLParam(r, "articleID")
	sessionFrom(r.Context()).AddComment(articleID, r.PostForm.Get("content"))
	redirectHome(w, r, "article-"+articleID)
}

func (s *Server) handleLikeComment(w http.ResponseWriter, r *http.Request) {
	articleID := chi.URLParam(r, "articleID")
	sessionFrom(r.Context()).LikeComment(articleID, chi.URLParam(r, "commentID"))
	redirectHome(w, r, "article-"+articleID)
}

type articleJSON struct {
	domain.Article
	Comments []domain.Comment `json:"comments"`
}

type articlesResponse struct {
	Page     string        `json:"page"`
	Loading  bool          `json:"loading"`
	Error    string        `json:"error,omitempty"`
	Articles []articleJSON `json:"articles"`
}

// handleArticles returns the visitor's current headlines and comments.
func (s *Server) handleArticles(w http.ResponseWriter, r *http.Request) {
	st := sessionFrom(r.Context()).Snapshot()

	resp := articlesResponse{
		Page:     string(st.Page),
		Loading:  st.Loading,
		Error:    st.Banner,
		Articles: make([]articleJSON, 0, len(st.Articles)),
	}
	for _, a := range st.Articles {
		cs := st.Comments.For(a.ID)
		if cs == nil {
			cs = []domain.Comment{}
		}
		resp.Articles = append(resp.Articles, articleJSON{Article: a, Comments: cs})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.log.ErrorObj("encode articles failed", "error", err.Error())
	}
}

func (s *Server) handleStylesheet(w http.ResponseWriter, _ *http.Request) {
	css, err := staticFS.ReadFile("static/style.css")
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write(css)
}

func redirectHome(w http.ResponseWriter, r *http.Request, anchor string) {
	target := view.PathHome
	if anchor != "" {
		target += "#" + anchor
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
