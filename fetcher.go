package scholarly

import "context"

// Fetcher retrieves the HTML of a profile page.
type Fetcher interface {
	// Fetch requests the URL and returns the page HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases fetcher resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
