package loader

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/samvad-hq/akhbar-tech/internal/domain"
	"github.com/samvad-hq/akhbar-tech/pkg/newsapi"
)

type fakeFetcher struct {
	articles []domain.Article
	err      error
	calls    int
	deadline bool
}

func (f *fakeFetcher) Type() string { return newsapi.SourceTypeTopHeadlines }

func (f *fakeFetcher) Fetch(ctx context.Context, _ newsapi.Source) ([]domain.Article, error) {
	f.calls++
	_, f.deadline = ctx.Deadline()
	if f.err != nil {
		return nil, f.err
	}
	return f.articles, nil
}

type fakeRegistry struct {
	fetcher newsapi.Fetcher
}

func (f fakeRegistry) FetcherFor(newsapi.Source) (newsapi.Fetcher, error) {
	if f.fetcher == nil {
		return nil, errors.New("missing fetcher")
	}
	return f.fetcher, nil
}

func TestLoadSeedsDemoCommentsPerArticle(t *testing.T) {
	fetcher := &fakeFetcher{articles: []domain.Article{{ID: "a1"}, {ID: "a2"}}}
	svc := NewService(fakeRegistry{fetcher: fetcher}, newsapi.DefaultSource(), time.Second, nil)

	res, err := svc.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if fetcher.calls != 1 {
		t.Fatalf("expected exactly one fetch, got %d", fetcher.calls)
	}
	if !fetcher.deadline {
		t.Fatalf("expected fetch context to carry the timeout")
	}
	if len(res.Articles) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(res.Articles))
	}
	for _, id := range []string{"a1", "a2"} {
		if got := res.Comments.Count(id); got != 2 {
			t.Fatalf("article %s: expected 2 demo comments, got %d", id, got)
		}
	}
}

func TestLoadPropagatesFetchErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		msg  string
	}{
		{name: "fetch failed", err: newsapi.ErrFetchFailed, msg: newsapi.MsgFetchFailed},
		{name: "empty", err: newsapi.ErrNoArticles, msg: newsapi.MsgNoArticles},
		{name: "other", err: errors.New("boom"), msg: newsapi.MsgUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewService(fakeRegistry{fetcher: &fakeFetcher{err: tc.err}}, newsapi.DefaultSource(), 0, nil)
			_, err := svc.Load(context.Background())
			if err == nil {
				t.Fatalf("expected error")
			}
			if got := newsapi.UserMessage(err); got != tc.msg {
				t.Fatalf("expected %q, got %q", tc.msg, got)
			}
		})
	}
}

func TestLoadFailsWithoutFetcher(t *testing.T) {
	svc := NewService(fakeRegistry{}, newsapi.DefaultSource(), 0, nil)
	if _, err := svc.Load(context.Background()); err == nil {
		t.Fatalf("expected error when no fetcher is registered")
	}

	var nilSvc *Service
	if _, err := nilSvc.Load(context.Background()); err == nil {
		t.Fatalf("expected error from nil service")
	}
}
