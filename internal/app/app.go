// Package app assembles the runtime: config-driven wiring of the headline
// loader, theme store, activity publishers, session manager and HTTP server.
package app

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/samvad-hq/akhbar-tech/internal/config"
	"github.com/samvad-hq/akhbar-tech/internal/loader"
	"github.com/samvad-hq/akhbar-tech/internal/logger"
	"github.com/samvad-hq/akhbar-tech/internal/session"
	"github.com/samvad-hq/akhbar-tech/internal/storage"
	"github.com/samvad-hq/akhbar-tech/pkg/newsapi"
	"github.com/samvad-hq/akhbar-tech/pkg/publishers"
)

const shutdownTimeout = 10 * time.Second

// App is the running web front end.
type App struct {
	cfg        *config.Config
	log        logger.Logger
	store      storage.Store
	fanout     *publishers.Fanout
	dispatcher *publishers.Dispatcher
	sessions   *session.Manager
	server     *Server
}

// New builds the runtime from cfg.
func New(ctx context.Context, cfg *config.Config, log logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	log = logger.Ensure(log)
	if ctx == nil {
		ctx = context.Background()
	}

	sourceReg, err := newsapi.LoadRegistry(cfg.SourcesFile)
	if err != nil {
		return nil, fmt.Errorf("load sources registry: %w", err)
	}
	src, ok := sourceReg.ByID(cfg.SourceID)
	if !ok {
		return nil, fmt.Errorf("source %q not found in %s", cfg.SourceID, cfg.SourcesFile)
	}
	if cfg.NewsAPIKey == "" {
		log.WarnObj("NEWS_API_KEY is empty; headline requests will be rejected upstream", "source_id", src.ID)
	}
	log.InfoObj("headline source selected", "source_meta", map[string]any{
		"id":        src.ID,
		"type":      src.Type,
		"endpoint":  src.Endpoint,
		"page_size": src.PageSize,
	})

	fetchers := newsapi.DefaultFetcherRegistry(newsapi.DefaultHTTPClient(cfg.FetchTimeout), cfg.NewsAPIKey)
	headlines := loader.NewService(fetchers, src, cfg.FetchTimeout, log)

	fanout, err := buildPublishers(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	dispatcher := publishers.NewDispatcher(fanout, 0, log)

	store, err := storage.NewStore(cfg.StorageType, cfg.BBoltPath, storage.Options{
		ThemeTTL:        cfg.ThemeTTL,
		CleanupInterval: cfg.StorageCleanupInterval,
	})
	if err != nil {
		_ = fanout.Close()
		return nil, fmt.Errorf("init storage: %w", err)
	}
	log.InfoObj("storage initialized", "storage_config", map[string]any{
		"type":                     cfg.StorageType,
		"path":                     cfg.BBoltPath,
		"theme_ttl_seconds":        int(cfg.ThemeTTL.Seconds()),
		"cleanup_interval_seconds": int(cfg.StorageCleanupInterval.Seconds()),
	})

	sessions := session.NewManager(session.Options{
		Loader:        headlines,
		Themes:        store,
		Sink:          dispatcher,
		Logger:        log,
		TTL:           cfg.SessionTTL,
		ToastDuration: cfg.ToastDuration,
	})

	return &App{
		cfg:        cfg,
		log:        log,
		store:      store,
		fanout:     fanout,
		dispatcher: dispatcher,
		sessions:   sessions,
		server:     NewServer(cfg.HTTPAddr, sessions, log),
	}, nil
}

func buildPublishers(ctx context.Context, cfg *config.Config, log logger.Logger) (*publishers.Fanout, error) {
	reg, err := publishers.LoadRegistry(cfg.PublishersFile)
	if err != nil {
		return nil, fmt.Errorf("load publishers registry: %w", err)
	}

	enabled := reg.Enabled()
	clients, err := publishers.BuildAll(ctx, publishers.DefaultRegistry(), enabled, log)
	if err != nil {
		return nil, fmt.Errorf("build publishers: %w", err)
	}

	summaries := make([]map[string]string, 0, len(enabled))
	for _, p := range enabled {
		summaries = append(summaries, map[string]string{"id": p.ID, "type": p.Type})
	}
	log.InfoObj("publishers registry loaded", "publishers_meta", map[string]any{
		"count":      len(summaries),
		"publishers": summaries,
	})
	return publishers.NewFanout(clients), nil
}

// Run serves HTTP, sweeps idle sessions and delivers activity events until
// ctx is cancelled, then shuts everything down.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.server == nil {
		return fmt.Errorf("app is not initialized")
	}
	defer a.close()

	a.log.InfoObj("serving", "app_state", map[string]any{
		"http_addr":        a.cfg.HTTPAddr,
		"publishers_count": a.fanout.Size(),
		"session_ttl":      a.cfg.SessionTTL.String(),
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(a.server.ListenAndServe)
	g.Go(func() error { return a.sessions.Run(gctx, a.cfg.SessionCleanup) })
	g.Go(func() error { return a.dispatcher.Run(gctx) })
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return a.server.Shutdown(shutdownCtx)
	})

	err := g.Wait()
	a.log.InfoObj("akhbar stopped", "reason", fmt.Sprint(ctx.Err()))
	return err
}

func (a *App) close() {
	a.sessions.Close()
	if err := a.fanout.Close(); err != nil {
		a.log.ErrorObj("publisher close failed", "error", err.Error())
	}
	if err := a.store.Close(); err != nil {
		a.log.ErrorObj("storage close failed", "error", err.Error())
	}
}
