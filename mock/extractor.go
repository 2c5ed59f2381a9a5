package mock

import "github.com/shopcrawl/shopcrawl"

var _ shopcrawl.NavigationExtractor = (*NavigationExtractor)(nil)

// NavigationExtractor is a mock implementation of shopcrawl.NavigationExtractor.
type NavigationExtractor struct {
	ExtractNavigationFn func(html string, pageURL string) (*shopcrawl.NavigationResult, error)
}

func (e *NavigationExtractor) ExtractNavigation(html string, pageURL string) (*shopcrawl.NavigationResult, error) {
	return e.ExtractNavigationFn(html, pageURL)
}

var _ shopcrawl.ProductExtractor = (*ProductExtractor)(nil)

// ProductExtractor is a mock implementation of shopcrawl.ProductExtractor.
type ProductExtractor struct {
	ExtractProductFn func(html string, pageURL string) (*shopcrawl.ProductResult, error)
}

func (e *ProductExtractor) ExtractProduct(html string, pageURL string) (*shopcrawl.ProductResult, error) {
	return e.ExtractProductFn(html, pageURL)
}
