package mock

import (
	"context"

	"github.com/shopcrawl/shopcrawl"
)

var _ shopcrawl.Frontier = (*Frontier)(nil)

// Frontier is a mock implementation of shopcrawl.Frontier.
type Frontier struct {
	PushFn func(req shopcrawl.FetchRequest) bool
	PopFn  func() (shopcrawl.FetchRequest, bool)
	LenFn  func() int
	SeenFn func(url string) bool
}

func (f *Frontier) Push(req shopcrawl.FetchRequest) bool {
	return f.PushFn(req)
}

func (f *Frontier) Pop() (shopcrawl.FetchRequest, bool) {
	return f.PopFn()
}

func (f *Frontier) Len() int {
	return f.LenFn()
}

func (f *Frontier) Seen(url string) bool {
	return f.SeenFn(url)
}

var _ shopcrawl.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of shopcrawl.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
