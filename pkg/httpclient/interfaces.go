package httpclient

import "context"

// Request describes a single outbound GET.
type Request struct {
	URL     string
	Query   map[string]string
	Headers map[string]string
}

// Response is a minimal HTTP response contract.
type Response interface {
	Body() []byte
	StatusCode() int
}

// Client abstracts HTTP calls so callers can inject mocks or different transports.
type Client interface {
	Get(ctx context.Context, req Request) (Response, error)
}
