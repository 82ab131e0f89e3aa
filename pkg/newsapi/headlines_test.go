package newsapi

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/samvad-hq/akhbar-tech/pkg/httpclient"
)

const sampleHeadlines = `{
  "status": "ok",
  "totalResults": 3,
  "articles": [
    {
      "source": {"id": "the-verge", "name": "The Verge"},
      "author": "Jane Doe",
      "title": "Chips &amp; <b>Cheese</b>",
      "description": "<p>New silicon</p>",
      "url": "https://example.com/a",
      "urlToImage": "https://example.com/a.png",
      "publishedAt": "2024-10-15T08:30:00Z"
    },
    {
      "source": {"id": null, "name": "Wire"},
      "author": null,
      "title": "Second",
      "description": "plain",
      "url": "https://example.com/b",
      "urlToImage": null,
      "publishedAt": "not a date"
    },
    {
      "source": {"id": null, "name": "Wire"},
      "title": "Second again",
      "url": "https://example.com/b",
      "publishedAt": "2024-10-15T09:00:00Z"
    }
  ]
}`

type mockHTTPClient struct {
	t       *testing.T
	status  int
	body    string
	err     error
	lastReq httpclient.Request
}

type mockResponse struct {
	body       []byte
	statusCode int
}

func (r mockResponse) Body() []byte    { return r.body }
func (r mockResponse) StatusCode() int { return r.statusCode }

func (m *mockHTTPClient) Get(_ context.Context, req httpclient.Request) (httpclient.Response, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	status := m.status
	if status == 0 {
		status = 200
	}
	return mockResponse{body: []byte(m.body), statusCode: status}, nil
}

func TestTopHeadlinesFetchSuccess(t *testing.T) {
	client := &mockHTTPClient{t: t, body: sampleHeadlines}
	fetcher := NewTopHeadlinesFetcher(client, "secret")

	articles, err := fetcher.Fetch(context.Background(), DefaultSource())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(articles) != 3 {
		t.Fatalf("expected 3 articles, got %d", len(articles))
	}

	first := articles[0]
	if first.Title != "Chips & Cheese" || first.Description != "New silicon" {
		t.Fatalf("markup not stripped: %#v", first)
	}
	if first.ID != hashURL("https://example.com/a") {
		t.Fatalf("unexpected id %q", first.ID)
	}
	if !first.PublishedAt.Equal(time.Date(2024, 10, 15, 8, 30, 0, 0, time.UTC)) {
		t.Fatalf("unexpected published time %v", first.PublishedAt)
	}
	if first.SourceName != "The Verge" || first.Author != "Jane Doe" {
		t.Fatalf("unexpected source/author %#v", first)
	}

	if articles[1].ImageURL != "" || !articles[1].PublishedAt.IsZero() {
		t.Fatalf("expected empty image and zero time, got %#v", articles[1])
	}
	if articles[1].ID == articles[2].ID {
		t.Fatalf("articles sharing a URL must get distinct ids")
	}

	req := client.lastReq
	if req.URL != DefaultEndpoint {
		t.Fatalf("unexpected url %q", req.URL)
	}
	if req.Headers["X-Api-Key"] != "secret" {
		t.Fatalf("api key must travel as a header, got %#v", req.Headers)
	}
	if _, ok := req.Query["apiKey"]; ok {
		t.Fatalf("api key must not be part of the query")
	}
	if req.Query["country"] != "us" || req.Query["category"] != "technology" || req.Query["pageSize"] != "20" {
		t.Fatalf("unexpected query %#v", req.Query)
	}
}

func TestTopHeadlinesFetchErrors(t *testing.T) {
	cases := []struct {
		name    string
		client  *mockHTTPClient
		wantErr error
		wantMsg string
	}{
		{
			name:    "non success status",
			client:  &mockHTTPClient{status: 401, body: `{"status":"error","code":"apiKeyMissing"}`},
			wantErr: ErrFetchFailed,
			wantMsg: MsgFetchFailed,
		},
		{
			name:    "transport error",
			client:  &mockHTTPClient{err: errors.New("dial tcp: refused")},
			wantErr: ErrFetchFailed,
			wantMsg: MsgFetchFailed,
		},
		{
			name:    "api error envelope",
			client:  &mockHTTPClient{body: `{"status":"error","code":"rateLimited","message":"slow down"}`},
			wantErr: ErrFetchFailed,
			wantMsg: MsgFetchFailed,
		},
		{
			name:    "empty result",
			client:  &mockHTTPClient{body: `{"status":"ok","totalResults":0,"articles":[]}`},
			wantErr: ErrNoArticles,
			wantMsg: MsgNoArticles,
		},
		{
			name:    "garbage body",
			client:  &mockHTTPClient{body: `<html>`},
			wantErr: ErrFetchFailed,
			wantMsg: MsgFetchFailed,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := NewTopHeadlinesFetcher(tc.client, "")
			articles, err := fetcher.Fetch(context.Background(), DefaultSource())
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if len(articles) != 0 {
				t.Fatalf("expected no articles on error")
			}
			if got := UserMessage(err); got != tc.wantMsg {
				t.Fatalf("UserMessage = %q, want %q", got, tc.wantMsg)
			}
		})
	}
}

func TestUserMessageFallback(t *testing.T) {
	if got := UserMessage(errors.New("other")); got != MsgUnknown {
		t.Fatalf("unexpected fallback %q", got)
	}
	if got := UserMessage(nil); got != "" {
		t.Fatalf("expected empty message for nil, got %q", got)
	}
}

func TestFetcherRegistryResolvesByType(t *testing.T) {
	reg := DefaultFetcherRegistry(&mockHTTPClient{}, "")
	if _, err := reg.FetcherFor(Source{ID: "x", Type: "NEWSAPI_TOP_HEADLINES"}); err != nil {
		t.Fatalf("FetcherFor: %v", err)
	}
	if _, err := reg.FetcherFor(Source{ID: "x", Type: "rss"}); err == nil {
		t.Fatalf("expected error for unknown type")
	}
}

func TestPlainTextLeavesCleanInputAlone(t *testing.T) {
	if got := plainText("  hello world "); got != "hello world" {
		t.Fatalf("plainText = %q", got)
	}
}
