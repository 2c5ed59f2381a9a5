package shopcrawl

// Stat names recorded during a crawl.
const (
	// StatDroppedLowProbability counts products discarded by the
	// acceptance filter.
	StatDroppedLowProbability = "drop_item/product/low_probability"

	// StatAcceptedProduct counts products that passed the filter.
	StatAcceptedProduct = "item/product/accepted"
)

// Stats records named, increment-only counters. Implementations must
// support concurrent increments with no read-modify-write races.
type Stats interface {
	// Inc increments the named counter by one.
	Inc(name string)
}

// NopStats discards all increments.
type NopStats struct{}

// Inc implements Stats.
func (NopStats) Inc(string) {}
