// Package engine implements the crawl-strategy decision engine. Each
// navigation or product extraction result is classified, gated by the
// configured strategy, prioritized, filtered, and turned into outbound
// fetch requests. The engine is synchronous and stateless between
// invocations; it never blocks and never fails the crawl for a single
// low-quality item.
package engine

import (
	"log/slog"

	"github.com/shopcrawl/shopcrawl"
)

// Compile-time interface verification.
var _ shopcrawl.Planner = (*Engine)(nil)

// Engine plans follow-up fetches for one crawl. The strategy is fixed at
// construction and immutable for the crawl's lifetime.
type Engine struct {
	strategy shopcrawl.CrawlStrategy
	logger   *slog.Logger
	stats    shopcrawl.Stats
}

// New creates an Engine for the given strategy.
// Returns EINVALID if the strategy is not a supported value.
func New(strategy shopcrawl.CrawlStrategy, logger *slog.Logger, stats shopcrawl.Stats) (*Engine, error) {
	if err := strategy.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	if stats == nil {
		stats = shopcrawl.NopStats{}
	}
	return &Engine{strategy: strategy, logger: logger, stats: stats}, nil
}

// Strategy returns the engine's crawl strategy.
func (e *Engine) Strategy() shopcrawl.CrawlStrategy {
	return e.strategy
}

// StartRequests seeds a crawl from the configured start URLs. Under the
// full strategy the requests carry a domain restriction derived from the
// first start URL; the other strategies carry empty PageParams.
// Returns EINVALID if no start URL is given.
func (e *Engine) StartRequests(urls []string) ([]shopcrawl.FetchRequest, error) {
	if len(urls) == 0 {
		return nil, shopcrawl.Errorf(shopcrawl.EINVALID, "no start URL given")
	}

	var params shopcrawl.PageParams
	if e.strategy == shopcrawl.StrategyFull {
		domain, err := shopcrawl.Domain(urls[0])
		if err != nil {
			return nil, err
		}
		params = shopcrawl.PageParams{FullDomain: domain}
	}

	reqs := make([]shopcrawl.FetchRequest, 0, len(urls))
	for _, u := range urls {
		reqs = append(reqs, shopcrawl.FetchRequest{
			URL:        u,
			PageType:   shopcrawl.PageTypeNavigation,
			PageParams: params,
		})
	}
	return reqs, nil
}

// PlanNavigation turns one navigation extraction result into outbound
// requests: classify links into roles, gate roles by strategy, assign
// priorities, emit. PageParams are threaded through unchanged to
// subcategory requests only.
func (e *Engine) PlanNavigation(nav *shopcrawl.NavigationResult, params shopcrawl.PageParams) []shopcrawl.FetchRequest {
	if nav == nil {
		return nil
	}

	cls := classify(nav)
	reqs := make([]shopcrawl.FetchRequest, 0, len(cls.products)+len(cls.subCategories)+1)

	if e.strategy.Allows(shopcrawl.RoleProduct) {
		for _, c := range cls.products {
			reqs = append(reqs, e.emit(c, shopcrawl.PageTypeProduct, productPriority(c), shopcrawl.PageParams{}))
		}
	}

	if cls.nextPage != nil && e.strategy.Allows(shopcrawl.RoleNextPage) {
		if len(cls.products) == 0 {
			// Pagination on a page that yielded zero products is almost
			// certainly a dead end and risks paginating forever.
			e.logger.Info("ignoring nextPage link, no product links found",
				"url", nav.URL,
				"nextPage", cls.nextPage.URL,
			)
		} else {
			reqs = append(reqs, e.emit(*cls.nextPage, shopcrawl.PageTypeNextPage, NextPagePriority, shopcrawl.PageParams{}))
		}
	}

	if e.strategy.Allows(shopcrawl.RoleSubCategory) {
		for _, sc := range cls.subCategories {
			reqs = append(reqs, e.emit(sc.link, sc.pageType, navigationPriority(sc.link), params))
		}
	}

	return reqs
}
