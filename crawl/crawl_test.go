package crawl_test

import (
	"context"
	"sort"
	"testing"

	"github.com/shopcrawl/shopcrawl"
	"github.com/shopcrawl/shopcrawl/crawl"
	"github.com/shopcrawl/shopcrawl/engine"
	"github.com/shopcrawl/shopcrawl/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }

// shopFixture wires a Crawler against an in-memory two-level shop:
// the start page links two products and one subcategory; the subcategory
// page is empty.
func shopFixture(t *testing.T, strategy shopcrawl.CrawlStrategy) (*crawl.Crawler, *[]*shopcrawl.ProductResult) {
	t.Helper()

	eng, err := engine.New(strategy, nil, nil)
	require.NoError(t, err)

	fetcher := &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			return "<html>" + url + "</html>", nil
		},
	}

	navigation := &mock.NavigationExtractor{
		ExtractNavigationFn: func(_ string, pageURL string) (*shopcrawl.NavigationResult, error) {
			if pageURL != "https://shop.example.com" {
				return &shopcrawl.NavigationResult{URL: pageURL}, nil
			}
			return &shopcrawl.NavigationResult{
				URL: pageURL,
				Items: []shopcrawl.LinkCandidate{
					{URL: "https://shop.example.com/p/1", Name: "Boots", Probability: floatPtr(0.8)},
					{URL: "https://shop.example.com/p/2", Name: "Socks", Probability: floatPtr(0.05)},
				},
				SubCategories: []shopcrawl.LinkCandidate{
					{URL: "https://shop.example.com/shoes", Name: "Shoes", Probability: floatPtr(0.5)},
				},
			}, nil
		},
	}

	products := &mock.ProductExtractor{
		ExtractProductFn: func(_ string, pageURL string) (*shopcrawl.ProductResult, error) {
			probability := 0.8
			if pageURL == "https://shop.example.com/p/2" {
				probability = 0.05
			}
			return &shopcrawl.ProductResult{URL: pageURL, Probability: &probability}, nil
		},
	}

	var items []*shopcrawl.ProductResult
	crawler := &crawl.Crawler{
		Fetcher:    fetcher,
		Navigation: navigation,
		Products:   products,
		Planner:    eng,
		ItemFunc: func(product *shopcrawl.ProductResult) {
			items = append(items, product)
		},
	}
	return crawler, &items
}

func TestCrawler_crawls_until_the_frontier_empties(t *testing.T) {
	t.Parallel()

	crawler, items := shopFixture(t, shopcrawl.StrategyNavigation)

	result, err := crawler.Run(context.Background(), []string{"https://shop.example.com"})
	require.NoError(t, err)

	// start page + 2 products + 1 subcategory
	assert.Equal(t, 4, result.Fetched)
	assert.Equal(t, 1, result.Accepted)
	assert.Equal(t, 1, result.Dropped, "the 0.05-probability product is dropped post-fetch")
	assert.Equal(t, 0, result.Failed)
	assert.NotEmpty(t, result.CrawlID)

	require.Len(t, *items, 1)
	assert.Equal(t, "https://shop.example.com/p/1", (*items)[0].URL)
}

func TestCrawler_pagination_only_skips_subcategory_fetches(t *testing.T) {
	t.Parallel()

	crawler, _ := shopFixture(t, shopcrawl.StrategyPaginationOnly)

	result, err := crawler.Run(context.Background(), []string{"https://shop.example.com"})
	require.NoError(t, err)

	// start page + 2 products; the subcategory is never followed
	assert.Equal(t, 3, result.Fetched)
}

func TestCrawler_request_budget_caps_fetches(t *testing.T) {
	t.Parallel()

	crawler, _ := shopFixture(t, shopcrawl.StrategyNavigation)
	crawler.MaxRequests = 2
	crawler.Concurrency = 1

	result, err := crawler.Run(context.Background(), []string{"https://shop.example.com"})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Fetched)
}

func TestCrawler_returns_config_error_without_fetching(t *testing.T) {
	t.Parallel()

	fetched := 0
	crawler, _ := shopFixture(t, shopcrawl.StrategyNavigation)
	crawler.Fetcher = &mock.Fetcher{
		FetchFn: func(context.Context, string) (string, error) {
			fetched++
			return "", nil
		},
	}

	_, err := crawler.Run(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, shopcrawl.EINVALID, shopcrawl.ErrorCode(err))
	assert.Zero(t, fetched)
}

func TestCrawler_skips_offsite_non_product_links(t *testing.T) {
	t.Parallel()

	eng, err := engine.New(shopcrawl.StrategyNavigation, nil, nil)
	require.NoError(t, err)

	var fetchedURLs []string
	crawler := &crawl.Crawler{
		Concurrency: 1,
		Fetcher: &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				fetchedURLs = append(fetchedURLs, url)
				return "<html></html>", nil
			},
		},
		Navigation: &mock.NavigationExtractor{
			ExtractNavigationFn: func(_ string, pageURL string) (*shopcrawl.NavigationResult, error) {
				if pageURL != "https://shop.example.com" {
					return &shopcrawl.NavigationResult{URL: pageURL}, nil
				}
				return &shopcrawl.NavigationResult{
					URL: pageURL,
					Items: []shopcrawl.LinkCandidate{
						// Offsite product: allowed through.
						{URL: "https://cdn.products.net/p/1", Probability: floatPtr(0.9)},
					},
					SubCategories: []shopcrawl.LinkCandidate{
						// Offsite subcategory: skipped.
						{URL: "https://other.net/shoes", Probability: floatPtr(0.9)},
						{URL: "https://shop.example.com/shoes", Probability: floatPtr(0.5)},
					},
				}, nil
			},
		},
		Products: &mock.ProductExtractor{
			ExtractProductFn: func(_ string, pageURL string) (*shopcrawl.ProductResult, error) {
				return &shopcrawl.ProductResult{URL: pageURL, Probability: floatPtr(0.9)}, nil
			},
		},
		Planner: eng,
	}

	result, err := crawler.Run(context.Background(), []string{"https://shop.example.com"})
	require.NoError(t, err)

	sort.Strings(fetchedURLs)
	assert.Equal(t, []string{
		"https://cdn.products.net/p/1",
		"https://shop.example.com",
		"https://shop.example.com/shoes",
	}, fetchedURLs)
	assert.Equal(t, 1, result.Skipped)
}

func TestCrawler_fetch_failures_do_not_abort_the_crawl(t *testing.T) {
	t.Parallel()

	crawler, _ := shopFixture(t, shopcrawl.StrategyNavigation)
	crawler.Fetcher = &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			if url == "https://shop.example.com/p/1" {
				return "", assert.AnError
			}
			return "<html>" + url + "</html>", nil
		},
	}

	result, err := crawler.Run(context.Background(), []string{"https://shop.example.com"})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Fetched)
	assert.Equal(t, 1, result.Failed)
}
