// Package slog provides logging decorators for shopcrawl interfaces.
package slog

import (
	"fmt"
	"log/slog"

	"github.com/cespare/xxhash/v2"
	"github.com/shopcrawl/shopcrawl"
)

// Ensure LoggingPlanner implements shopcrawl.Planner.
var _ shopcrawl.Planner = (*LoggingPlanner)(nil)

// LoggingPlanner wraps a Planner with a crawl report for each planned
// response: what was extracted and what the crawler will fetch next,
// bucketed by page type. The reports make it possible to debug why a
// given link was or wasn't followed. Request URLs carry fingerprints so
// report lines can be matched against fetch-layer logs.
type LoggingPlanner struct {
	next   shopcrawl.Planner
	logger *slog.Logger
}

// NewLoggingPlanner creates a new LoggingPlanner.
func NewLoggingPlanner(next shopcrawl.Planner, logger *slog.Logger) *LoggingPlanner {
	return &LoggingPlanner{next: next, logger: logger}
}

// StartRequests delegates to the wrapped planner and logs the seeds.
func (p *LoggingPlanner) StartRequests(urls []string) ([]shopcrawl.FetchRequest, error) {
	reqs, err := p.next.StartRequests(urls)
	if err != nil {
		return nil, err
	}
	p.logger.Info("crawl seeded",
		"startURLs", len(urls),
		"requests", len(reqs),
	)
	return reqs, nil
}

// PlanNavigation delegates to the wrapped planner and logs a per-response
// crawl report.
func (p *LoggingPlanner) PlanNavigation(nav *shopcrawl.NavigationResult, params shopcrawl.PageParams) []shopcrawl.FetchRequest {
	reqs := p.next.PlanNavigation(nav, params)

	buckets := make(map[shopcrawl.PageType][]any)
	for _, req := range reqs {
		pageType := req.PageType
		if !validPageType(pageType) {
			pageType = shopcrawl.PageTypeUnknown
		}
		buckets[pageType] = append(buckets[pageType], requestEntry(req))
	}

	attrs := []any{
		"url", navURL(nav),
		"requests", len(reqs),
	}
	for _, pageType := range append(shopcrawl.PageTypes(), shopcrawl.PageTypeUnknown) {
		entries, ok := buckets[pageType]
		if !ok {
			continue
		}
		attrs = append(attrs, "toCrawl."+string(pageType), entries)
	}

	p.logger.Info("crawl report", attrs...)
	return reqs
}

// AcceptProduct delegates to the wrapped planner.
func (p *LoggingPlanner) AcceptProduct(product *shopcrawl.ProductResult) bool {
	return p.next.AcceptProduct(product)
}

// requestEntry summarizes one planned request for the crawl report.
func requestEntry(req shopcrawl.FetchRequest) map[string]any {
	entry := map[string]any{
		"url":         req.URL,
		"priority":    req.Priority,
		"fingerprint": Fingerprint(req.URL),
	}
	if req.Name != "" {
		entry["name"] = req.Name
	}
	if req.Probability != nil {
		entry["probability"] = *req.Probability
	}
	return entry
}

func navURL(nav *shopcrawl.NavigationResult) string {
	if nav == nil {
		return ""
	}
	return nav.URL
}

func validPageType(pt shopcrawl.PageType) bool {
	for _, valid := range shopcrawl.PageTypes() {
		if pt == valid {
			return true
		}
	}
	return false
}

// Fingerprint returns a short stable identifier for a request URL, used
// to match crawl report lines with fetch-layer logs.
func Fingerprint(url string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(url))
}
