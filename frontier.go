package shopcrawl

import "context"

// Frontier manages the set of not-yet-fetched requests awaiting dispatch.
// Priorities are a scheduling hint, not a strict ordering contract: the
// engine guarantees deterministic priority values for given inputs, not
// fetch order.
type Frontier interface {
	// Push adds a request to the frontier.
	// Returns false if the URL has already been seen.
	Push(req FetchRequest) bool

	// Pop returns the next request by priority.
	// Returns false if the frontier is empty.
	Pop() (FetchRequest, bool)

	// Len returns the number of requests in the queue.
	Len() int

	// Seen returns true if the URL has been processed or queued.
	Seen(url string) bool
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
