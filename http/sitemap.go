package http

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/shopcrawl/shopcrawl"
	"github.com/shopcrawl/shopcrawl/heuristics"
)

// Ensure SitemapSeedSource implements shopcrawl.SeedSource.
var _ shopcrawl.SeedSource = (*SitemapSeedSource)(nil)

// maxSitemaps caps sitemap index recursion to keep seed discovery bounded.
const maxSitemaps = 50

// maxSeeds caps the number of start URLs returned from a sitemap.
const maxSeeds = 1000

// SitemapSeedSource discovers category start URLs from a site's sitemaps.
// It checks robots.txt for sitemap directives, falls back to
// /sitemap.xml, resolves sitemap indexes recursively, and keeps only URLs
// that pass the category heuristics.
type SitemapSeedSource struct {
	client *http.Client
}

// NewSitemapSeedSource creates a SitemapSeedSource with the given HTTP
// client. If client is nil, http.DefaultClient is used.
func NewSitemapSeedSource(client *http.Client) *SitemapSeedSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapSeedSource{client: client}
}

// Discover returns candidate start URLs for the site.
// Returns an empty slice (not nil) if no sitemaps are found.
func (s *SitemapSeedSource) Discover(ctx context.Context, siteURL string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base, err := url.Parse(siteURL)
	if err != nil {
		return nil, shopcrawl.Errorf(shopcrawl.EINVALID, "invalid site URL: %v", err)
	}
	root := *base
	root.Path = ""
	root.RawQuery = ""
	root.Fragment = ""

	sitemapURLs, err := s.findSitemapURLs(ctx, &root)
	if err != nil {
		return nil, err
	}
	if len(sitemapURLs) == 0 {
		return []string{}, nil
	}

	seenSitemaps := make(map[string]bool)
	seenURLs := make(map[string]bool)
	seeds := []string{}

	for len(sitemapURLs) > 0 && len(seenSitemaps) < maxSitemaps && len(seeds) < maxSeeds {
		sitemapURL := sitemapURLs[0]
		sitemapURLs = sitemapURLs[1:]
		if seenSitemaps[sitemapURL] {
			continue
		}
		seenSitemaps[sitemapURL] = true

		children, urls, err := s.readSitemap(ctx, sitemapURL)
		if err != nil {
			return nil, err
		}
		sitemapURLs = append(sitemapURLs, children...)

		for _, u := range urls {
			if len(seeds) >= maxSeeds {
				break
			}
			if seenURLs[u] || !heuristics.MightBeCategory(u) {
				continue
			}
			seenURLs[u] = true
			seeds = append(seeds, u)
		}
	}

	return seeds, nil
}

// findSitemapURLs returns sitemap locations from robots.txt, falling back
// to the conventional /sitemap.xml location.
func (s *SitemapSeedSource) findSitemapURLs(ctx context.Context, root *url.URL) ([]string, error) {
	robotsURL := root.String() + "/robots.txt"

	body, err := s.get(ctx, robotsURL)
	if err == nil {
		var sitemaps []string
		scanner := bufio.NewScanner(strings.NewReader(body))
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if rest, ok := strings.CutPrefix(strings.ToLower(line), "sitemap:"); ok {
				// Preserve the original casing of the URL.
				loc := strings.TrimSpace(line[len(line)-len(rest):])
				if loc != "" {
					sitemaps = append(sitemaps, loc)
				}
			}
		}
		if len(sitemaps) > 0 {
			return sitemaps, nil
		}
	}

	fallback := root.String() + "/sitemap.xml"
	if _, err := s.get(ctx, fallback); err != nil {
		return []string{}, nil
	}
	return []string{fallback}, nil
}

// readSitemap parses one sitemap document and returns child sitemap URLs
// (for index files) and page URLs (for urlset files).
func (s *SitemapSeedSource) readSitemap(ctx context.Context, sitemapURL string) (children []string, urls []string, err error) {
	body, err := s.get(ctx, sitemapURL)
	if err != nil {
		return nil, nil, err
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromString(body); err != nil {
		return nil, nil, shopcrawl.Errorf(shopcrawl.EINTERNAL, "parsing sitemap %s: %v", sitemapURL, err)
	}

	switch root := doc.Root(); {
	case root == nil:
		return nil, nil, nil
	case root.Tag == "sitemapindex":
		for _, sm := range root.SelectElements("sitemap") {
			if loc := sm.SelectElement("loc"); loc != nil {
				children = append(children, strings.TrimSpace(loc.Text()))
			}
		}
	case root.Tag == "urlset":
		for _, u := range root.SelectElements("url") {
			if loc := u.SelectElement("loc"); loc != nil {
				urls = append(urls, strings.TrimSpace(loc.Text()))
			}
		}
	}

	return children, urls, nil
}

func (s *SitemapSeedSource) get(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
