package mock

import (
	"context"

	"github.com/shopcrawl/shopcrawl"
)

var _ shopcrawl.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of shopcrawl.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

var _ shopcrawl.SeedSource = (*SeedSource)(nil)

// SeedSource is a mock implementation of shopcrawl.SeedSource.
type SeedSource struct {
	DiscoverFn func(ctx context.Context, siteURL string) ([]string, error)
}

func (s *SeedSource) Discover(ctx context.Context, siteURL string) ([]string, error) {
	return s.DiscoverFn(ctx, siteURL)
}
