package crawl

import (
	"container/heap"
	"strings"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/shopcrawl/shopcrawl"
)

// Compile-time interface verification.
var _ shopcrawl.Frontier = (*Frontier)(nil)

// Frontier is an in-memory request frontier with a priority queue and
// Bloom filter deduplication. It is safe for concurrent use by multiple
// goroutines. Pop order is a best effort: requests with equal priority
// come out in heap order, not insertion order.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.BloomFilter
	queue *requestHeap
}

// NewFrontier creates a Frontier sized for n expected URLs with the given
// false positive rate for deduplication.
func NewFrontier(n uint, fpRate float64) *Frontier {
	h := &requestHeap{}
	heap.Init(h)
	return &Frontier{
		seen:  bloom.NewWithEstimates(n, fpRate),
		queue: h,
	}
}

// Push adds a request to the frontier.
// Returns false if the URL has already been seen. URL fragments are
// stripped before deduplication, so URLs differing only by fragment are
// considered duplicates.
func (f *Frontier) Push(req shopcrawl.FetchRequest) bool {
	url := stripFragment(req.URL)

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.seen.TestString(url) {
		return false
	}
	f.seen.AddString(url)

	req.URL = url
	heap.Push(f.queue, req)
	return true
}

// Pop returns the next request by priority.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (shopcrawl.FetchRequest, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.queue.Len() == 0 {
		return shopcrawl.FetchRequest{}, false
	}
	req, _ := heap.Pop(f.queue).(shopcrawl.FetchRequest)
	return req, true
}

// Len returns the number of requests in the queue.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queue.Len()
}

// Seen returns true if the URL has been processed or queued.
// URL fragments are stripped before checking.
func (f *Frontier) Seen(rawURL string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen.TestString(stripFragment(rawURL))
}

func stripFragment(url string) string {
	if idx := strings.Index(url, "#"); idx != -1 {
		return url[:idx]
	}
	return url
}

// requestHeap implements heap.Interface for a FetchRequest priority queue.
// Higher priority requests are popped first.
type requestHeap []shopcrawl.FetchRequest

func (h requestHeap) Len() int { return len(h) }

// Less returns true if i has higher priority than j (max-heap).
func (h requestHeap) Less(i, j int) bool {
	return h[i].Priority > h[j].Priority
}

func (h requestHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *requestHeap) Push(x any) {
	req, _ := x.(shopcrawl.FetchRequest)
	*h = append(*h, req)
}

func (h *requestHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}
