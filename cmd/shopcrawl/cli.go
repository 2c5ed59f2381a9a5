package main

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// Dependencies holds services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Crawl CrawlCmd `cmd:"" help:"Crawl a shop and print accepted products as JSON lines"`
	Seeds SeedsCmd `cmd:"" help:"Discover category start URLs from a site's sitemap"`

	Verbose bool `short:"v" help:"Enable debug logging"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	URLs []string `arg:"" optional:"" help:"Start URLs (homepage or category pages)"`

	Strategy    string        `default:"navigation" enum:"full,navigation,pagination_only" help:"Crawl strategy: full, navigation, or pagination_only"`
	MaxRequests int           `help:"Max fetches for the whole crawl (0 = unlimited)"`
	Concurrency int           `short:"c" default:"8" help:"Concurrent fetch limit"`
	RPS         float64       `name:"rps" default:"1" help:"Per-domain requests per second"`
	ExtractFrom string        `default:"httpResponseBody" enum:"httpResponseBody,browserHtml" help:"Extraction source: httpResponseBody or browserHtml (renders pages in a browser)"`
	RenderDelay time.Duration `help:"Extra wait after page load when rendering in a browser"`
	SeedSitemap bool          `help:"Seed additional start URLs from the site's sitemap"`
	MetricsAddr string        `help:"Serve Prometheus metrics on this address (e.g. :9090)"`
}

// SeedsCmd is the "seeds" subcommand.
type SeedsCmd struct {
	Site string `arg:"" help:"Site URL, e.g. https://shop.example.com"`
}
