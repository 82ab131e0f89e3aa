package app

import (
	"context"
	"embed"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/samvad-hq/akhbar-tech/internal/logger"
	"github.com/samvad-hq/akhbar-tech/internal/session"
	"github.com/samvad-hq/akhbar-tech/internal/view"
)

//go:embed static/style.css
var staticFS embed.FS

// Server is the HTTP surface over the session manager.
type Server struct {
	sessions   *session.Manager
	log        logger.Logger
	now        func() time.Time
	router     chi.Router
	httpServer *http.Server
}

// NewServer builds the router for sessions.
func NewServer(addr string, sessions *session.Manager, log logger.Logger) *Server {
	s := &Server{
		sessions: sessions,
		log:      logger.Ensure(log),
		now:      time.Now,
	}
	s.router = s.buildRouter()
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.log))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get(view.PathStylesheet, s.handleStylesheet)

	r.Group(func(r chi.Router) {
		r.Use(s.withSession)

		r.Get(view.PathHome, s.handleIndex)
		r.Get("/page/{page}", s.handleNavigate)
		r.Post(view.PathTheme, s.handleTheme)
		r.Post(view.PathSidebar, s.action(func(ss *session.Session) { ss.ToggleSidebar() }))
		r.Post(view.PathSearchOpen, s.action(func(ss *session.Session) { ss.ToggleSearch() }))
		r.Post(view.PathSearchClose, s.action(func(ss *session.Session) { ss.CloseSearch() }))
		r.Post(view.PathBannerDismiss, s.action(func(ss *session.Session) { ss.DismissBanner() }))

		r.Route("/articles/{articleID}/comments", func(r chi.Router) {
			r.Post("/", s.handleAddComment)
			r.Post("/{commentID}/like", s.handleLikeComment)
		})

		r.Route("/api", func(r chi.Router) {
			r.Use(cors.Handler(cors.Options{
				AllowedOrigins: []string{"*"},
				AllowedMethods: []string{http.MethodGet, http.MethodOptions},
				AllowedHeaders: []string{"Accept"},
				MaxAge:         300,
			}))
			r.Get("/articles", s.handleArticles)
		})
	})

	return r
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves until Shutdown is called.
func (s *Server) ListenAndServe() error {
	s.log.InfoObj("http server listening", "http_addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// requestLogger logs one line per request through the structured logger.
func requestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.DebugObj("http request", "http_request", map[string]any{
				"request_id":  middleware.GetReqID(r.Context()),
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      ww.Status(),
				"bytes":       ww.BytesWritten(),
				"duration_ms": time.Since(start).Milliseconds(),
			})
		})
	}
}
