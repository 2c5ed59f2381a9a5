package main

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shopcrawl/shopcrawl"
	"github.com/shopcrawl/shopcrawl/crawl"
	"github.com/shopcrawl/shopcrawl/engine"
	"github.com/shopcrawl/shopcrawl/goquery"
	shophttp "github.com/shopcrawl/shopcrawl/http"
	"github.com/shopcrawl/shopcrawl/prometheus"
	"github.com/shopcrawl/shopcrawl/rod"
	shopslog "github.com/shopcrawl/shopcrawl/slog"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	logger := deps.Logger

	stats := prometheus.NewStats()
	if c.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", stats.Handler())
		go func() {
			if err := http.ListenAndServe(c.MetricsAddr, mux); err != nil {
				logger.Warn("metrics server stopped", "addr", c.MetricsAddr, "err", err)
			}
		}()
	}

	eng, err := engine.New(shopcrawl.CrawlStrategy(c.Strategy), logger, stats)
	if err != nil {
		return err
	}

	fetcher, err := c.newFetcher()
	if err != nil {
		return err
	}
	defer fetcher.Close()

	urls := c.URLs
	if c.SeedSitemap {
		if len(urls) == 0 {
			return shopcrawl.Errorf(shopcrawl.EINVALID, "--seed-sitemap needs a site URL to start from")
		}
		seeds := shophttp.NewSitemapSeedSource(nil)
		discovered, err := seeds.Discover(deps.Ctx, urls[0])
		if err != nil {
			return fmt.Errorf("sitemap seed discovery: %w", err)
		}
		logger.Info("sitemap seeds discovered", "count", len(discovered))
		urls = append(urls, discovered...)
	}

	out := json.NewEncoder(deps.Stdout)
	crawler := &crawl.Crawler{
		Fetcher:     fetcher,
		Navigation:  goquery.NewNavigationExtractor(),
		Products:    goquery.NewProductExtractor(),
		Planner:     shopslog.NewLoggingPlanner(eng, logger),
		Limiter:     crawl.NewDomainLimiter(c.RPS, 1),
		Stats:       stats,
		Logger:      logger,
		MaxRequests: c.MaxRequests,
		Concurrency: c.Concurrency,
		ItemFunc: func(product *shopcrawl.ProductResult) {
			if err := out.Encode(product); err != nil {
				logger.Warn("writing item failed", "url", product.URL, "err", err)
			}
		},
	}

	result, err := crawler.Run(deps.Ctx, urls)
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stderr, "crawl %s finished: %d fetched, %d accepted, %d dropped, %d failed, %d skipped\n",
		result.CrawlID, result.Fetched, result.Accepted, result.Dropped, result.Failed, result.Skipped)
	return nil
}

// newFetcher selects the fetch implementation from the extraction source:
// browserHtml renders pages in headless Chrome, httpResponseBody uses
// plain HTTP.
func (c *CrawlCmd) newFetcher() (shopcrawl.Fetcher, error) {
	if c.ExtractFrom == "browserHtml" {
		fetcher, err := rod.NewFetcher(rod.WithRenderDelay(c.RenderDelay))
		if err != nil {
			return nil, fmt.Errorf("failed to start browser (Chrome or Chromium must be installed): %w", err)
		}
		return fetcher, nil
	}
	return shophttp.NewFetcher(), nil
}
