package engine

import "github.com/shopcrawl/shopcrawl"

// AcceptanceThreshold is the minimum extraction probability for a fetched
// product to be kept.
// TODO: make this a crawl parameter once per-site tuning is needed.
const AcceptanceThreshold = 0.1

// AcceptProduct reports whether a fetched product passes the acceptance
// filter. Unknown probability gets the benefit of the doubt. A rejected
// product is counted and logged, never surfaced as an error: a single
// low-confidence item must not fail the crawl.
func (e *Engine) AcceptProduct(product *shopcrawl.ProductResult) bool {
	if product == nil {
		return false
	}
	if product.Probability == nil || *product.Probability >= AcceptanceThreshold {
		e.stats.Inc(shopcrawl.StatAcceptedProduct)
		return true
	}

	e.stats.Inc(shopcrawl.StatDroppedLowProbability)
	e.logger.Info("ignoring item, probability below threshold",
		"url", product.URL,
		"probability", *product.Probability,
		"threshold", AcceptanceThreshold,
	)
	return false
}
