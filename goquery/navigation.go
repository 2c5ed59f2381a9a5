// Package goquery provides CSS-selector-based extraction of navigation
// and product records from e-commerce pages. It stands in for an
// ML-extraction service at the same interface boundary: extracted links
// carry probability scores estimating classification confidence.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopcrawl/shopcrawl"
	"github.com/shopcrawl/shopcrawl/heuristics"
)

// Compile-time interface verification.
var _ shopcrawl.NavigationExtractor = (*NavigationExtractor)(nil)

// linkSelector pairs a CSS selector with the confidence assigned to links
// it discovers.
type linkSelector struct {
	selector    string
	probability float64
}

// productSelectors identify product detail links on listing pages,
// ordered most to least specific.
var productSelectors = []linkSelector{
	{`[itemtype$="schema.org/Product"] a[href]`, 0.95},
	{`a.product-item-link[href]`, 0.9},
	{`.product-card a[href], a.product-card[href]`, 0.85},
	{`ul.products li.product a[href]`, 0.85},
	{`.product-grid a[href], .product-list a[href]`, 0.7},
}

// nextPageSelectors identify the pagination "next" link.
var nextPageSelectors = []string{
	`a[rel="next"]`,
	`.pagination .next a[href], .pagination a.next[href]`,
	`li.pagination-next a[href]`,
}

// subCategorySelectors identify structural category navigation.
var subCategorySelectors = []linkSelector{
	{`nav.categories a[href], .category-menu a[href]`, 0.9},
	{`.sidebar .categories a[href], aside .categories a[href]`, 0.85},
	{`nav a[href], [role="navigation"] a[href]`, 0.6},
}

// NavigationExtractor extracts a NavigationResult from listing-page HTML.
// Links with no structural signal are recovered by URL heuristics and
// tagged with the heuristics marker so the decision engine can route them
// separately.
type NavigationExtractor struct {
	// HeuristicProbability is assigned to fallback-discovered subcategory
	// links. Defaults to DefaultHeuristicProbability when zero.
	HeuristicProbability float64
}

// DefaultHeuristicProbability is the confidence assigned to subcategory
// links found only by URL heuristics.
const DefaultHeuristicProbability = 0.3

// NewNavigationExtractor creates a NavigationExtractor with defaults.
func NewNavigationExtractor() *NavigationExtractor {
	return &NavigationExtractor{HeuristicProbability: DefaultHeuristicProbability}
}

// ExtractNavigation parses the page and returns its navigation record.
// The pageURL is used to resolve relative links. Links off the page's
// host and non-HTTP links are dropped. Document order is preserved.
func (e *NavigationExtractor) ExtractNavigation(html string, pageURL string) (*shopcrawl.NavigationResult, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, shopcrawl.Errorf(shopcrawl.EINVALID, "invalid page URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, shopcrawl.Errorf(shopcrawl.EINVALID, "failed to parse HTML: %v", err)
	}

	nav := &shopcrawl.NavigationResult{URL: pageURL}
	seen := make(map[string]bool)

	collect := func(sel *goquery.Selection, probability float64) (shopcrawl.LinkCandidate, bool) {
		href, exists := sel.Attr("href")
		if !exists || href == "" || isNonHTTPLink(href) {
			return shopcrawl.LinkCandidate{}, false
		}
		resolved := resolveURL(base, href)
		if resolved == "" || !isSameHost(base, resolved) || seen[resolved] {
			return shopcrawl.LinkCandidate{}, false
		}
		seen[resolved] = true
		p := probability
		return shopcrawl.LinkCandidate{
			URL:         resolved,
			Name:        strings.TrimSpace(sel.Text()),
			Probability: &p,
		}, true
	}

	for _, ls := range productSelectors {
		doc.Find(ls.selector).Each(func(_ int, sel *goquery.Selection) {
			if c, ok := collect(sel, ls.probability); ok {
				nav.Items = append(nav.Items, c)
			}
		})
	}

	for _, selector := range nextPageSelectors {
		if nav.NextPage != nil {
			break
		}
		doc.Find(selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			if c, ok := collect(sel, 1.0); ok {
				nav.NextPage = &c
				return false
			}
			return true
		})
	}

	for _, ls := range subCategorySelectors {
		doc.Find(ls.selector).Each(func(_ int, sel *goquery.Selection) {
			c, ok := collect(sel, ls.probability)
			if !ok || !heuristics.MightBeCategory(c.URL) {
				return
			}
			nav.SubCategories = append(nav.SubCategories, c)
		})
	}

	// Fallback: recover plausible category links with no structural
	// signal. They carry the heuristics marker so the engine can tag and
	// gate them separately from structural subcategories.
	heuristicP := e.HeuristicProbability
	if heuristicP == 0 {
		heuristicP = DefaultHeuristicProbability
	}
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		c, ok := collect(sel, heuristicP)
		if !ok {
			return
		}
		if !heuristics.MightBeCategory(c.URL) || heuristics.IsHomepage(c.URL) {
			return
		}
		c.Name = strings.TrimSpace(shopcrawl.HeuristicsMarker + " " + c.Name)
		nav.SubCategories = append(nav.SubCategories, c)
	})

	return nav, nil
}
