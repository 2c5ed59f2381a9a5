package shopcrawl

// CrawlStrategy determines how the start URL and follow-up URLs are crawled.
// It is fixed at crawl start and immutable for the crawl's lifetime.
type CrawlStrategy string

// Supported crawl strategies.
const (
	// StrategyFull follows most links within the domain of the start URL
	// in an attempt to discover and extract as many products as possible.
	StrategyFull CrawlStrategy = "full"

	// StrategyNavigation follows pagination, subcategories, and product
	// detail pages. This is the default.
	StrategyNavigation CrawlStrategy = "navigation"

	// StrategyPaginationOnly follows pagination and product detail pages.
	// Subcategory links are ignored. Use this when subcategory links are
	// misidentified by extraction.
	StrategyPaginationOnly CrawlStrategy = "pagination_only"
)

// Validate returns an error if the strategy is not one of the supported values.
func (s CrawlStrategy) Validate() error {
	switch s {
	case StrategyFull, StrategyNavigation, StrategyPaginationOnly:
		return nil
	}
	return Errorf(EINVALID, "unknown crawl strategy %q", string(s))
}

// Allows reports whether links of the given role may enter the frontier
// under this strategy. The rule set is fixed and exhaustive: every strategy
// follows products and pagination; pagination_only drops subcategories.
func (s CrawlStrategy) Allows(role Role) bool {
	if role == RoleSubCategory {
		return s != StrategyPaginationOnly
	}
	return true
}

// PageParams carries crawl-wide context forward with a request.
// Once set at crawl start it is passed through unchanged to every
// subcategory request that the full strategy still needs; it is not
// attached to pagination or product requests.
type PageParams struct {
	// FullDomain restricts the full strategy to a single registrable
	// domain. Empty under the navigation and pagination_only strategies.
	FullDomain string `json:"fullDomain,omitempty"`
}

// IsZero reports whether the params carry no context.
func (p PageParams) IsZero() bool {
	return p == PageParams{}
}
