package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/samvad-hq/akhbar-tech/internal/domain"
	"github.com/samvad-hq/akhbar-tech/pkg/httpclient"
)

const SourceTypeTopHeadlines = "newsapi_top_headlines"

// headlinesResponse mirrors the NewsAPI v2 envelope.
type headlinesResponse struct {
	Status       string       `json:"status"`
	TotalResults int          `json:"totalResults"`
	Articles     []apiArticle `json:"articles"`
	Code         string       `json:"code"`
	Message      string       `json:"message"`
}

type apiArticle struct {
	Source struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"source"`
	Author      string `json:"author"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage"`
	PublishedAt string `json:"publishedAt"`
}

// topHeadlinesFetcher implements Fetcher for NewsAPI top-headlines style endpoints.
type topHeadlinesFetcher struct {
	client HTTPClient
	apiKey string
}

// NewTopHeadlinesFetcher builds a fetcher that authenticates with apiKey via header.
func NewTopHeadlinesFetcher(client HTTPClient, apiKey string) Fetcher {
	if client == nil {
		client = DefaultHTTPClient(0)
	}
	return &topHeadlinesFetcher{client: client, apiKey: strings.TrimSpace(apiKey)}
}

func (f *topHeadlinesFetcher) Type() string { return SourceTypeTopHeadlines }

// Fetch issues exactly one GET and maps the response into articles.
func (f *topHeadlinesFetcher) Fetch(ctx context.Context, src Source) ([]domain.Article, error) {
	if strings.TrimSpace(src.Endpoint) == "" {
		return nil, fmt.Errorf("%w: source %q endpoint is empty", ErrFetchFailed, src.ID)
	}

	resp, err := f.client.Get(ctx, f.request(src))
	if err != nil {
		return nil, fmt.Errorf("%w: %s request: %w", ErrFetchFailed, src.ID, err)
	}

	body := resp.Body()
	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: %s returned status %d body: %s", ErrFetchFailed, src.ID, resp.StatusCode(), responseSnippet(body))
	}

	var payload headlinesResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: decode %s response: %w", ErrFetchFailed, src.ID, err)
	}
	if strings.EqualFold(payload.Status, "error") {
		return nil, fmt.Errorf("%w: %s api error %s: %s", ErrFetchFailed, src.ID, payload.Code, payload.Message)
	}
	if len(payload.Articles) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoArticles, src.ID)
	}

	return buildArticles(payload.Articles), nil
}

func (f *topHeadlinesFetcher) request(src Source) httpclient.Request {
	query := make(map[string]string, len(src.Params)+1)
	for k, v := range src.Params {
		query[k] = v
	}
	if src.PageSize > 0 {
		query["pageSize"] = strconv.Itoa(src.PageSize)
	}

	headers := make(map[string]string, len(src.Headers)+2)
	headers["Accept"] = "application/json"
	for k, v := range src.Headers {
		headers[k] = v
	}
	if f.apiKey != "" {
		headers["X-Api-Key"] = f.apiKey
	}

	return httpclient.Request{URL: src.Endpoint, Query: query, Headers: headers}
}

func buildArticles(in []apiArticle) []domain.Article {
	out := make([]domain.Article, 0, len(in))
	seen := make(map[string]int, len(in))
	for _, a := range in {
		link := strings.TrimSpace(a.URL)
		id := hashURL(link)
		if n := seen[id]; n > 0 {
			seen[id] = n + 1
			id = fmt.Sprintf("%s-%d", id, n)
		} else {
			seen[id] = 1
		}

		out = append(out, domain.Article{
			ID:          id,
			Title:       plainText(a.Title),
			Description: plainText(a.Description),
			URL:         link,
			ImageURL:    strings.TrimSpace(a.URLToImage),
			Author:      strings.TrimSpace(a.Author),
			SourceName:  strings.TrimSpace(a.Source.Name),
			PublishedAt: parsePublished(a.PublishedAt),
		})
	}
	return out
}

func parsePublished(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}
