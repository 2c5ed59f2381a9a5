package shopcrawl

import "context"

// Fetcher retrieves HTML from URLs. The fetch layer owns transport,
// retries, and cancellation; the decision engine never blocks on its own.
type Fetcher interface {
	// Fetch retrieves the page body for the URL.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases fetcher resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// SeedSource discovers start URLs for a crawl, e.g. from a sitemap.
type SeedSource interface {
	Discover(ctx context.Context, siteURL string) ([]string, error)
}
