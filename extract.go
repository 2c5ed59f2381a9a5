package shopcrawl

// NavigationExtractor turns a navigation page body into a structured
// record of product links, pagination, and subcategory links with
// per-link probability scores. Implementations stand in for the external
// ML extraction layer at its interface boundary.
type NavigationExtractor interface {
	// ExtractNavigation parses the page and returns its navigation record.
	// The pageURL is used to resolve relative links.
	ExtractNavigation(html string, pageURL string) (*NavigationResult, error)
}

// ProductExtractor turns a product page body into a structured product
// record carrying an extraction-confidence probability.
type ProductExtractor interface {
	ExtractProduct(html string, pageURL string) (*ProductResult, error)
}
