package httpclient

import (
	"context"
	"net/http"
)

// Response is a minimal HTTP response contract.
type Response interface {
	StatusCode() int
	Header() http.Header
	Body() []byte
}

// Client abstracts HTTP calls so callers can inject mocks or different transports.
// Implementations return a non-nil body slice for every completed exchange; an
// empty slice means the server sent no content.
type Client interface {
	Do(ctx context.Context, method, url string, headers map[string]string, body []byte) (Response, error)
}
