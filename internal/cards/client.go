package cards

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Fetcher retrieves the card collection from a URL. Implementations return a
// *Error for every failure.
type Fetcher interface {
	FetchCards(ctx context.Context, rawURL string) ([]Card, error)
}

// Ensure both implementations satisfy Fetcher at compile time.
var (
	_ Fetcher = (*Client)(nil)
	_ Fetcher = (*MockFetcher)(nil)
)

// DefaultTimeout matches the platform default request timeout of the mobile
// client this endpoint was built for.
const DefaultTimeout = 60 * time.Second

// Client fetches cards over HTTP.
type Client struct {
	http    *http.Client
	timeout time.Duration
	logger  *zap.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client. The client is copied,
// never modified.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets the request timeout. Non-positive values keep the default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger attaches a logger for request diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient builds a Client with the default timeout. A caller-supplied
// http.Client keeps its own timeout unless WithTimeout is given.
func NewClient(opts ...Option) *Client {
	c := &Client{
		http:   &http.Client{Timeout: DefaultTimeout},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	hc := *c.http
	if c.timeout > 0 {
		hc.Timeout = c.timeout
	}
	c.http = &hc
	return c
}

// FetchCards issues a single GET against rawURL and decodes the envelope.
// Non-2xx bodies are never read.
func (c *Client) FetchCards(ctx context.Context, rawURL string) ([]Card, error) {
	target, err := parseCardsURL(rawURL)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	log := c.logger.With(zap.String("url", target.String()))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, BadURL(err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		fetchErr := TransportError(err)
		log.Debug("cards request failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return nil, fetchErr
	}
	if resp == nil {
		return nil, &Error{Kind: KindUnknown}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Debug("cards request rejected", zap.Int("status", resp.StatusCode), zap.Duration("elapsed", time.Since(start)))
		return nil, BadResponse(resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, TransportError(err)
	}
	var coll Collection
	if err := json.Unmarshal(body, &coll); err != nil {
		log.Debug("cards decode failed", zap.Error(err))
		return nil, ParseError(err)
	}

	log.Debug("cards fetched",
		zap.Int("status", resp.StatusCode),
		zap.Int("count", len(coll.CardItems)),
		zap.Duration("elapsed", time.Since(start)))
	return coll.CardItems, nil
}

func parseCardsURL(rawURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return nil, BadURL(nil)
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, BadURL(err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, BadURL(nil)
	}
	return u, nil
}

// Result is the single outcome of an asynchronous fetch.
type Result struct {
	Cards []Card
	Err   *Error
}

// FetchAsync runs f.FetchCards on its own goroutine and delivers exactly one
// Result on the returned channel.
func FetchAsync(ctx context.Context, f Fetcher, rawURL string) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		items, err := f.FetchCards(ctx, rawURL)
		out <- Result{Cards: items, Err: AsError(err)}
	}()
	return out
}

// MockFetcher returns canned results without touching the network.
type MockFetcher struct {
	Cards []Card
	Err   error

	calls atomic.Int64
}

// FetchCards returns the configured cards or error.
func (m *MockFetcher) FetchCards(ctx context.Context, rawURL string) ([]Card, error) {
	m.calls.Add(1)
	if m.Err != nil {
		return nil, AsError(m.Err)
	}
	out := make([]Card, len(m.Cards))
	copy(out, m.Cards)
	return out, nil
}

// Calls reports how many times FetchCards ran.
func (m *MockFetcher) Calls() int {
	return int(m.calls.Load())
}
