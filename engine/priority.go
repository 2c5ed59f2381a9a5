package engine

import "github.com/shopcrawl/shopcrawl"

// NextPagePriority is the fixed priority of pagination requests. It also
// serves as the bias added to product priorities so that products always
// outrank navigation, and pagination always outranks same-probability
// subcategories: exhausting a listing's pages is usually higher value than
// exploring a sibling category.
const NextPagePriority = 100

// navigationPriority scores a subcategory candidate on the 0-100 scale.
// Integer truncation keeps tie-breaks reproducible. Unknown probability
// scores 0.
func navigationPriority(c shopcrawl.LinkCandidate) int {
	if c.Probability == nil {
		return 0
	}
	return int(100 * *c.Probability)
}

// productPriority scores a product candidate. Products are the crawl's
// actual payoff, so the nextPage bias is always added; unknown probability
// is treated as 0 before the bias.
func productPriority(c shopcrawl.LinkCandidate) int {
	var p float64
	if c.Probability != nil {
		p = *c.Probability
	}
	return int(100*p) + NextPagePriority
}
