package crawl_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/shopcrawl/shopcrawl"
	"github.com/shopcrawl/shopcrawl/crawl"
	"github.com/stretchr/testify/assert"
)

func TestFrontier_Push_rejects_duplicate_URLs(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(1000, 0.01)

	req := shopcrawl.FetchRequest{
		URL:      "https://shop.example.com/category",
		PageType: shopcrawl.PageTypeNavigation,
	}

	assert.True(t, f.Push(req), "first push should succeed")
	assert.False(t, f.Push(req), "duplicate URL should be rejected")
}

func TestFrontier_Push_dedups_by_URL_without_fragment(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(1000, 0.01)

	ok := f.Push(shopcrawl.FetchRequest{URL: "https://shop.example.com/p/1#reviews", PageType: shopcrawl.PageTypeProduct})
	assert.True(t, ok)

	ok = f.Push(shopcrawl.FetchRequest{URL: "https://shop.example.com/p/1#gallery", PageType: shopcrawl.PageTypeProduct})
	assert.False(t, ok, "URLs differing only by fragment are duplicates")

	req, ok := f.Pop()
	assert.True(t, ok)
	assert.Equal(t, "https://shop.example.com/p/1", req.URL, "stored URL has no fragment")
}

func TestFrontier_Pop_returns_highest_priority_first(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(1000, 0.01)

	f.Push(shopcrawl.FetchRequest{URL: "https://shop.example.com/shoes", Priority: 0, PageType: shopcrawl.PageTypeSubCategories})
	f.Push(shopcrawl.FetchRequest{URL: "https://shop.example.com/p/1", Priority: 180, PageType: shopcrawl.PageTypeProduct})
	f.Push(shopcrawl.FetchRequest{URL: "https://shop.example.com/category?page=2", Priority: 100, PageType: shopcrawl.PageTypeNextPage})
	f.Push(shopcrawl.FetchRequest{URL: "https://shop.example.com/p/2", Priority: 105, PageType: shopcrawl.PageTypeProduct})

	wantOrder := []int{180, 105, 100, 0}
	for _, want := range wantOrder {
		req, ok := f.Pop()
		assert.True(t, ok)
		assert.Equal(t, want, req.Priority)
	}

	_, ok := f.Pop()
	assert.False(t, ok, "pop on empty frontier should return false")
}

func TestFrontier_Len_tracks_queue_size(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(1000, 0.01)

	assert.Equal(t, 0, f.Len(), "new frontier should be empty")

	f.Push(shopcrawl.FetchRequest{URL: "https://shop.example.com/a"})
	assert.Equal(t, 1, f.Len())

	f.Push(shopcrawl.FetchRequest{URL: "https://shop.example.com/b"})
	assert.Equal(t, 2, f.Len())

	f.Pop()
	f.Pop()
	assert.Equal(t, 0, f.Len())
}

func TestFrontier_Seen_tracks_all_pushed_URLs(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(1000, 0.01)

	assert.False(t, f.Seen("https://shop.example.com/p/1"), "unseen URL should return false")

	f.Push(shopcrawl.FetchRequest{URL: "https://shop.example.com/p/1"})
	assert.True(t, f.Seen("https://shop.example.com/p/1"))

	f.Pop()
	assert.True(t, f.Seen("https://shop.example.com/p/1"), "popped URL should still be seen")
}

func TestFrontier_concurrent_access(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(10000, 0.01)

	const numGoroutines = 10
	const numOpsPerGoroutine = 100

	var wg sync.WaitGroup
	wg.Add(numGoroutines * 2) // pushers + poppers

	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < numOpsPerGoroutine; j++ {
				f.Push(shopcrawl.FetchRequest{
					URL:      fmt.Sprintf("https://shop.example.com/%d/%d", id, j),
					Priority: j,
				})
			}
		}(i)
	}

	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < numOpsPerGoroutine; j++ {
				f.Pop()
				f.Len()
			}
		}()
	}

	wg.Wait()

	for i := 0; i < numGoroutines; i++ {
		for j := 0; j < numOpsPerGoroutine; j++ {
			url := fmt.Sprintf("https://shop.example.com/%d/%d", i, j)
			assert.True(t, f.Seen(url), "pushed URL %s should be seen", url)
		}
	}
}
