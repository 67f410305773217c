package fetcher

import "context"

// Fetcher defines the interface for reading remote documents.
type Fetcher interface {
	// Get issues a single GET request and returns the status and body. A non-2xx
	// status is not an error; callers classify it themselves.
	Get(ctx context.Context, url string) (*Response, error)
}

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Body       []byte
}
