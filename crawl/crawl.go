// Package crawl provides crawl orchestration around the decision engine.
// It owns the frontier, the request budget, rate limiting, and the
// bounded-concurrency fetch loop; all crawl decisions are delegated to a
// shopcrawl.Planner.
package crawl

import (
	"context"
	"log/slog"
	"net/url"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/shopcrawl/shopcrawl"
	"golang.org/x/sync/errgroup"
)

// Frontier sizing defaults.
const (
	// frontierExpectedURLs is the expected number of URLs for Bloom filter sizing.
	frontierExpectedURLs = 100000
	// frontierFalsePositiveRate is the acceptable false positive rate for deduplication.
	frontierFalsePositiveRate = 0.01
)

// DefaultConcurrency bounds the fetch workers when Concurrency is unset.
const DefaultConcurrency = 8

// ItemFunc receives each accepted product. Called from fetch workers but
// never concurrently.
type ItemFunc func(product *shopcrawl.ProductResult)

// Crawler runs one crawl: it seeds the frontier from the planner's start
// requests, fetches by priority, extracts, and feeds extraction results
// back into the planner until the frontier empties, the request budget is
// exhausted, or the context is canceled.
type Crawler struct {
	Fetcher    shopcrawl.Fetcher
	Navigation shopcrawl.NavigationExtractor
	Products   shopcrawl.ProductExtractor
	Planner    shopcrawl.Planner
	Frontier   shopcrawl.Frontier
	Limiter    shopcrawl.DomainLimiter
	Stats      shopcrawl.Stats
	Logger     *slog.Logger

	// MaxRequests caps the number of fetches for the whole crawl.
	// Zero means unlimited. Failed fetches count against the budget.
	MaxRequests int

	// Concurrency bounds the number of parallel fetches.
	Concurrency int

	// ItemFunc receives accepted products. Optional.
	ItemFunc ItemFunc
}

// Result holds the outcome of a crawl.
type Result struct {
	CrawlID  string
	Fetched  int
	Failed   int
	Accepted int
	Dropped  int
	Skipped  int // requests dropped by the offsite or URL checks
}

// Run executes the crawl. Configuration errors (no start URL, bad
// strategy) are fatal and returned before any fetch is issued; per-page
// failures are counted and logged but never abort the crawl.
func (c *Crawler) Run(ctx context.Context, startURLs []string) (*Result, error) {
	crawlID := uuid.NewString()
	logger := c.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("crawlID", crawlID)

	stats := c.Stats
	if stats == nil {
		stats = shopcrawl.NopStats{}
	}

	frontier := c.Frontier
	if frontier == nil {
		frontier = NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	}

	seeds, err := c.Planner.StartRequests(startURLs)
	if err != nil {
		return nil, err
	}
	if len(seeds) == 0 {
		return nil, shopcrawl.Errorf(shopcrawl.EINVALID, "no start requests to crawl")
	}

	// All strategies pin non-product requests to the start URL's
	// registrable domain; only product requests may go offsite.
	allowedDomain, err := shopcrawl.Domain(seeds[0].URL)
	if err != nil {
		return nil, err
	}

	run := &runState{
		crawler:       c,
		crawlID:       crawlID,
		logger:        logger,
		stats:         stats,
		frontier:      frontier,
		allowedDomain: allowedDomain,
	}

	for _, req := range seeds {
		run.enqueue(req)
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	wake := make(chan struct{}, 1)
	var inflight atomic.Int64
	var issued int64

loop:
	for {
		req, ok := frontier.Pop()
		if !ok {
			if inflight.Load() > 0 {
				select {
				case <-wake:
					continue
				case <-gctx.Done():
					break loop
				}
			}
			// No workers in flight, so nothing can repopulate the queue,
			// but a worker may have pushed between our pop and its exit.
			// Settle with one more pop.
			if req, ok = frontier.Pop(); !ok {
				break
			}
		}

		if gctx.Err() != nil {
			break
		}

		if c.MaxRequests > 0 {
			issued++
			if issued > int64(c.MaxRequests) {
				logger.Info("request budget exhausted",
					"maxRequests", c.MaxRequests,
					"queued", frontier.Len(),
				)
				break
			}
		}

		inflight.Add(1)
		g.Go(func() error {
			defer func() {
				inflight.Add(-1)
				select {
				case wake <- struct{}{}:
				default:
				}
			}()
			run.process(gctx, req)
			return nil
		})
	}

	_ = g.Wait()

	return run.result(), nil
}

// runState holds the shared mutable state of one crawl. Counters are
// increment-only atomics; the item callback is serialized.
type runState struct {
	crawler       *Crawler
	crawlID       string
	logger        *slog.Logger
	stats         shopcrawl.Stats
	frontier      shopcrawl.Frontier
	allowedDomain string

	fetched  atomic.Int64
	failed   atomic.Int64
	accepted atomic.Int64
	dropped  atomic.Int64
	skipped  atomic.Int64

	itemMu sync.Mutex
}

// enqueue pushes a planned request after the offsite and URL checks.
func (r *runState) enqueue(req shopcrawl.FetchRequest) {
	u, err := url.Parse(req.URL)
	if err != nil || u.Hostname() == "" {
		r.logger.Debug("skipping malformed candidate link", "url", req.URL)
		r.skipped.Add(1)
		return
	}

	if !req.AllowOffsite && !shopcrawl.SameDomain(req.URL, r.allowedDomain) {
		r.logger.Debug("skipping offsite link",
			"url", req.URL,
			"allowedDomain", r.allowedDomain,
		)
		r.skipped.Add(1)
		return
	}

	if r.frontier.Push(req) {
		r.stats.Inc("request/" + string(req.PageType))
	}
}

// process fetches one request and feeds the response back into the planner.
func (r *runState) process(ctx context.Context, req shopcrawl.FetchRequest) {
	c := r.crawler

	if c.Limiter != nil {
		u, err := url.Parse(req.URL)
		if err != nil {
			r.failed.Add(1)
			return
		}
		if err := c.Limiter.Wait(ctx, u.Hostname()); err != nil {
			return // context canceled
		}
	}

	html, err := c.Fetcher.Fetch(ctx, req.URL)
	if err != nil {
		r.failed.Add(1)
		r.logger.Warn("fetch failed",
			"url", req.URL,
			"pageType", string(req.PageType),
			"err", err,
		)
		return
	}
	r.fetched.Add(1)

	switch req.PageType {
	case shopcrawl.PageTypeProduct:
		r.handleProduct(html, req)
	default:
		r.handleNavigation(html, req)
	}
}

func (r *runState) handleProduct(html string, req shopcrawl.FetchRequest) {
	c := r.crawler

	product, err := c.Products.ExtractProduct(html, req.URL)
	if err != nil {
		r.failed.Add(1)
		r.logger.Warn("product extraction failed", "url", req.URL, "err", err)
		return
	}

	if !c.Planner.AcceptProduct(product) {
		r.dropped.Add(1)
		return
	}
	r.accepted.Add(1)

	if c.ItemFunc != nil {
		r.itemMu.Lock()
		c.ItemFunc(product)
		r.itemMu.Unlock()
	}
}

func (r *runState) handleNavigation(html string, req shopcrawl.FetchRequest) {
	c := r.crawler

	nav, err := c.Navigation.ExtractNavigation(html, req.URL)
	if err != nil {
		r.failed.Add(1)
		r.logger.Warn("navigation extraction failed", "url", req.URL, "err", err)
		return
	}

	for _, out := range c.Planner.PlanNavigation(nav, req.PageParams) {
		r.enqueue(out)
	}
}

func (r *runState) result() *Result {
	return &Result{
		CrawlID:  r.crawlID,
		Fetched:  int(r.fetched.Load()),
		Failed:   int(r.failed.Load()),
		Accepted: int(r.accepted.Load()),
		Dropped:  int(r.dropped.Load()),
		Skipped:  int(r.skipped.Load()),
	}
}
