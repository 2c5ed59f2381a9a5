package mock

import "github.com/shopcrawl/shopcrawl"

var _ shopcrawl.Planner = (*Planner)(nil)

// Planner is a mock implementation of shopcrawl.Planner.
type Planner struct {
	StartRequestsFn  func(urls []string) ([]shopcrawl.FetchRequest, error)
	PlanNavigationFn func(nav *shopcrawl.NavigationResult, params shopcrawl.PageParams) []shopcrawl.FetchRequest
	AcceptProductFn  func(product *shopcrawl.ProductResult) bool
}

func (p *Planner) StartRequests(urls []string) ([]shopcrawl.FetchRequest, error) {
	return p.StartRequestsFn(urls)
}

func (p *Planner) PlanNavigation(nav *shopcrawl.NavigationResult, params shopcrawl.PageParams) []shopcrawl.FetchRequest {
	return p.PlanNavigationFn(nav, params)
}

func (p *Planner) AcceptProduct(product *shopcrawl.ProductResult) bool {
	return p.AcceptProductFn(product)
}
