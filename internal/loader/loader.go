// Package loader performs the single headline fetch behind a news-bearing page
// and prepares the comment store that goes with it.
package loader

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/samvad-hq/akhbar-tech/internal/comments"
	"github.com/samvad-hq/akhbar-tech/internal/domain"
	"github.com/samvad-hq/akhbar-tech/internal/logger"
	"github.com/samvad-hq/akhbar-tech/pkg/newsapi"
)

// Result is a successful load.
type Result struct {
	Articles []domain.Article
	Comments comments.Store
}

// Service loads headlines from one configured source.
type Service struct {
	registry newsapi.FetcherRegistry
	source   newsapi.Source
	timeout  time.Duration
	log      logger.Logger
	now      func() time.Time
}

// NewService wires a loader with the fetcher registry and the source to read.
func NewService(reg newsapi.FetcherRegistry, src newsapi.Source, timeout time.Duration, log logger.Logger) *Service {
	return &Service{
		registry: reg,
		source:   src,
		timeout:  timeout,
		log:      logger.Ensure(log),
		now:      time.Now,
	}
}

// Load issues one fetch. Every article gets the demonstration comments.
// Errors map to banner text through newsapi.UserMessage.
func (s *Service) Load(ctx context.Context) (Result, error) {
	if s == nil || s.registry == nil {
		return Result{}, errors.New("loader service is not initialized")
	}

	fetcher, err := s.registry.FetcherFor(s.source)
	if err != nil {
		return Result{}, fmt.Errorf("resolve fetcher for source %s: %w", s.source.ID, err)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	started := s.now()
	articles, err := fetcher.Fetch(ctx, s.source)
	if err != nil {
		if ctx.Err() == nil {
			s.log.WarnObj("headline load failed", "load_error", map[string]any{
				"source_id": s.source.ID,
				"error":     err.Error(),
			})
		}
		return Result{}, err
	}

	s.log.InfoObj("headline load completed", "load_result", map[string]any{
		"source_id":   s.source.ID,
		"articles":    len(articles),
		"duration_ms": s.now().Sub(started).Milliseconds(),
	})
	return Result{Articles: articles, Comments: comments.Seed(articles, s.now())}, nil
}
