// Package filterlist fetches content-filter list texts and loads them into a
// filtering engine ahead of use. The engine itself is an external
// collaborator with a trivial contract; this package owns only fetching,
// error propagation, and asynchronous initialization.
package filterlist

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	_ "github.com/BrandonKowalski/certifiable" // Add CA certificates to the default trust store
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/braciole/pkg/braciole/internal"
)

// List is one fetched filter list: the source it came from and its raw text.
type List struct {
	URL  string
	Text string
}

// Engine is the contract of the third-party filtering engine: it ingests raw
// list texts once, then classifies requests. Implementations live outside
// this module.
type Engine interface {
	Load(lists []List) error
	ShouldBlock(requestURL string) bool
}

// Fetcher downloads filter list texts over HTTPS.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a Fetcher with a 30 second per-request timeout.
func NewFetcher() *Fetcher {
	return NewFetcherWithClient(&http.Client{Timeout: 30 * time.Second})
}

// NewFetcherWithClient creates a Fetcher using the given HTTP client.
func NewFetcherWithClient(client *http.Client) *Fetcher {
	return &Fetcher{client: client}
}

// Fetch downloads every source in order. Any failure aborts the whole fetch
// with an error naming the unreachable resource. Fetch never retries; retry
// policy belongs to the application layer.
func (f *Fetcher) Fetch(ctx context.Context, sources []string) ([]List, error) {
	lists := make([]List, 0, len(sources))

	for _, src := range sources {
		text, err := f.fetchOne(ctx, src)
		if err != nil {
			return nil, err
		}
		lists = append(lists, List{URL: src, Text: text})
	}

	return lists, nil
}

func (f *Fetcher) fetchOne(ctx context.Context, src string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return "", fmt.Errorf("filterlist: build request for %s: %w", src, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("filterlist: fetch %s: %w", src, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("filterlist: fetch %s: unexpected status %s", src, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("filterlist: read %s: %w", src, err)
	}

	return string(body), nil
}

// Handle tracks an asynchronous engine initialization.
// Queries must not be issued against the engine until Ready reports true.
type Handle struct {
	ready atomic.Bool
	done  chan struct{}
	err   error
}

// Ready reports whether the engine finished loading successfully.
func (h *Handle) Ready() bool {
	return h.ready.Load()
}

// Err returns the initialization error once initialization has finished,
// and nil while it is still in flight.
func (h *Handle) Err() error {
	select {
	case <-h.done:
		return h.err
	default:
		return nil
	}
}

// Wait blocks until initialization finishes or ctx is cancelled, returning
// the initialization error.
func (h *Handle) Wait(ctx context.Context) error {
	select {
	case <-h.done:
		return h.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// InitAsync fetches the sources and loads them into the engine in the
// background. Fetch and load failures are retained on the returned Handle
// and logged; they are never swallowed and never retried here.
func InitAsync(ctx context.Context, fetcher *Fetcher, engine Engine, sources []string) *Handle {
	h := &Handle{done: make(chan struct{})}

	go func() {
		defer close(h.done)

		lists, err := fetcher.Fetch(ctx, sources)
		if err != nil {
			internal.GetInternalLogger().Error("Filter list fetch failed", "error", err)
			h.err = err
			return
		}

		if err := engine.Load(lists); err != nil {
			internal.GetInternalLogger().Error("Filter engine load failed", "error", err)
			h.err = fmt.Errorf("filterlist: engine load: %w", err)
			return
		}

		internal.GetInternalLogger().Debug("Filter engine ready", "lists", len(lists))
		h.ready.Store(true)
	}()

	return h
}
