package newsapi

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/samvad-hq/akhbar-tech/pkg/httpclient"
)

type fetcherRegistry struct {
	mu     sync.RWMutex
	byType map[string]Fetcher
}

// NewFetcherRegistry builds a registry keyed by each fetcher's source type.
func NewFetcherRegistry(fetchers ...Fetcher) FetcherRegistry {
	reg := &fetcherRegistry{byType: make(map[string]Fetcher)}
	for _, f := range fetchers {
		reg.register(f)
	}
	return reg
}

func (r *fetcherRegistry) register(f Fetcher) {
	if f == nil {
		return
	}
	key := strings.ToLower(strings.TrimSpace(f.Type()))
	if key == "" {
		return
	}

	r.mu.Lock()
	r.byType[key] = f
	r.mu.Unlock()
}

// FetcherFor selects the fetcher for the source type.
func (r *fetcherRegistry) FetcherFor(src Source) (Fetcher, error) {
	if r == nil {
		return nil, fmt.Errorf("fetcher registry is nil")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	key := strings.ToLower(strings.TrimSpace(src.Type))
	if f, ok := r.byType[key]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("no fetcher registered for source %q (type %q)", src.ID, src.Type)
}

// DefaultHTTPClient returns the resty-backed client used by fetchers.
func DefaultHTTPClient(timeout time.Duration) HTTPClient {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return httpclient.NewRestyClient(timeout)
}

// DefaultFetcherRegistry wires up the known fetchers.
func DefaultFetcherRegistry(client HTTPClient, apiKey string) FetcherRegistry {
	if client == nil {
		client = DefaultHTTPClient(0)
	}
	return NewFetcherRegistry(NewTopHeadlinesFetcher(client, apiKey))
}
