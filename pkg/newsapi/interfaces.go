package newsapi

import (
	"context"

	"github.com/samvad-hq/akhbar-tech/internal/domain"
	"github.com/samvad-hq/akhbar-tech/pkg/httpclient"
)

// Fetcher retrieves the articles of one source.
type Fetcher interface {
	Type() string
	Fetch(ctx context.Context, src Source) ([]domain.Article, error)
}

// FetcherRegistry resolves the fetcher implementation for a given source.
type FetcherRegistry interface {
	FetcherFor(src Source) (Fetcher, error)
}

// HTTPClient aliases the shared httpclient.Client interface for clarity within newsapi.
type HTTPClient = httpclient.Client
