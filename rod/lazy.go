package rod

import (
	"context"
	"sync"

	"github.com/fwojciec/scholarly"
)

var _ scholarly.Fetcher = (*LazyFetcher)(nil)

// LazyFetcher launches the browser on first Fetch. It suits fallback use,
// where most runs never need a browser.
type LazyFetcher struct {
	opts []Option

	mu      sync.Mutex
	fetcher *Fetcher
	err     error
	closed  bool
}

// NewLazyFetcher returns a LazyFetcher that creates its Fetcher with opts.
func NewLazyFetcher(opts ...Option) *LazyFetcher {
	return &LazyFetcher{opts: opts}
}

// Fetch launches the browser if needed and fetches the URL.
// A failed launch is remembered and returned on every call.
func (l *LazyFetcher) Fetch(ctx context.Context, url string) (string, error) {
	f, err := l.get()
	if err != nil {
		return "", err
	}
	return f.Fetch(ctx, url)
}

func (l *LazyFetcher) get() (*Fetcher, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil, scholarly.Errorf(scholarly.EINVALID, "fetcher is closed")
	}
	if l.fetcher == nil && l.err == nil {
		l.fetcher, l.err = NewFetcher(l.opts...)
	}
	return l.fetcher, l.err
}

// Close releases the browser if it was launched.
func (l *LazyFetcher) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.closed = true
	if l.fetcher == nil {
		return nil
	}
	return l.fetcher.Close()
}
