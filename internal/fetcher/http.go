package fetcher

import (
	"context"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// HTTPOptions configures the HTTP fetcher.
type HTTPOptions struct {
	UserAgent      string
	Timeout        time.Duration
	ConnectTimeout time.Duration
	// RequestsPerSecond is the default per-host rate. Zero or less disables limiting.
	RequestsPerSecond float64
	// RateLimiters overrides the limiter for specific hosts (host[:port]).
	RateLimiters map[string]*rate.Limiter
	MaxBodyBytes int64
}

// HTTPFetcher implements Fetcher using net/http with per-host rate limiting.
// Every call is a single attempt.
type HTTPFetcher struct {
	client *http.Client
	opts   HTTPOptions

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewHTTPFetcher creates a new HTTPFetcher with the given options.
func NewHTTPFetcher(opts HTTPOptions) *HTTPFetcher {
	if opts.Timeout == 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.ConnectTimeout == 0 {
		opts.ConnectTimeout = 10 * time.Second
	}
	if opts.UserAgent == "" {
		opts.UserAgent = "campus-coffee/1.0"
	}
	if opts.MaxBodyBytes == 0 {
		opts.MaxBodyBytes = 4 << 20
	}
	limiters := make(map[string]*rate.Limiter)
	for k, v := range opts.RateLimiters {
		limiters[k] = v
	}
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   opts.ConnectTimeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout: opts.ConnectTimeout,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}
	return &HTTPFetcher{
		client: &http.Client{
			Timeout:   opts.Timeout,
			Transport: transport,
		},
		opts:     opts,
		limiters: limiters,
	}
}

func (f *HTTPFetcher) limiterFor(host string) *rate.Limiter {
	f.mu.Lock()
	defer f.mu.Unlock()
	if lim, ok := f.limiters[host]; ok {
		return lim
	}
	limit := rate.Inf
	if f.opts.RequestsPerSecond > 0 {
		limit = rate.Limit(f.opts.RequestsPerSecond)
	}
	lim := rate.NewLimiter(limit, 1)
	f.limiters[host] = lim
	return lim
}

// Get fetches the URL once and returns its status and body.
func (f *HTTPFetcher) Get(ctx context.Context, rawURL string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, eris.Wrap(err, "create request")
	}
	req.Header.Set("User-Agent", f.opts.UserAgent)

	if err := f.limiterFor(req.URL.Host).Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "rate limiter wait")
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "get")
	}
	defer resp.Body.Close() //nolint:errcheck

	// One extra byte tells a body of exactly MaxBodyBytes from a longer one.
	body, err := io.ReadAll(io.LimitReader(resp.Body, f.opts.MaxBodyBytes+1))
	if err != nil {
		return nil, eris.Wrap(err, "read body")
	}
	if int64(len(body)) > f.opts.MaxBodyBytes {
		body = body[:f.opts.MaxBodyBytes]
		zap.L().Warn("http response body truncated",
			zap.String("url", rawURL),
			zap.Int64("max_bytes", f.opts.MaxBodyBytes),
		)
	}

	zap.L().Debug("http get complete",
		zap.String("url", rawURL),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(body)),
	)

	return &Response{StatusCode: resp.StatusCode, Body: body}, nil
}
