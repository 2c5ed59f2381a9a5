package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopcrawl/shopcrawl"
)

// Compile-time interface verification.
var _ shopcrawl.ProductExtractor = (*ProductExtractor)(nil)

// ProductExtractor extracts a ProductResult from product-page HTML.
// The probability score reflects how many independent product signals the
// page shows (structured data, price, add-to-cart), so a category page
// misrouted here scores low and gets filtered downstream.
type ProductExtractor struct{}

// NewProductExtractor creates a ProductExtractor.
func NewProductExtractor() *ProductExtractor {
	return &ProductExtractor{}
}

// Signal weights for the probability score. A page with structured
// product data, a price, and a cart control scores 1.0.
const (
	weightStructuredData = 0.4
	weightPrice          = 0.3
	weightCart           = 0.2
	weightTitle          = 0.1
)

// ExtractProduct parses the page and returns its product record.
func (e *ProductExtractor) ExtractProduct(html string, pageURL string) (*shopcrawl.ProductResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, shopcrawl.Errorf(shopcrawl.EINVALID, "failed to parse HTML: %v", err)
	}

	product := &shopcrawl.ProductResult{
		URL:    pageURL,
		Fields: map[string]string{},
	}

	var probability float64

	if hasStructuredProduct(doc) {
		probability += weightStructuredData
	}

	if price := firstText(doc, `[itemprop="price"], .price, .product-price`); price != "" {
		product.Fields["price"] = price
		probability += weightPrice
	}

	if doc.Find(`button[name="add-to-cart"], .add-to-cart, form[action*="cart"]`).Length() > 0 {
		probability += weightCart
	}

	name := firstText(doc, `[itemprop="name"], h1`)
	if name == "" {
		name = metaContent(doc, `meta[property="og:title"]`)
	}
	if name != "" {
		product.Name = name
		probability += weightTitle
	}

	if sku := firstText(doc, `[itemprop="sku"], .sku`); sku != "" {
		product.Fields["sku"] = sku
	}

	product.Probability = &probability
	return product, nil
}

// hasStructuredProduct checks for schema.org or Open Graph product markup.
func hasStructuredProduct(doc *goquery.Document) bool {
	if doc.Find(`[itemtype$="schema.org/Product"]`).Length() > 0 {
		return true
	}
	return metaContent(doc, `meta[property="og:type"]`) == "product"
}

// firstText returns the trimmed text of the first match, if any.
func firstText(doc *goquery.Document, selector string) string {
	return strings.TrimSpace(doc.Find(selector).First().Text())
}

// metaContent returns the content attribute of the first matching meta tag.
func metaContent(doc *goquery.Document, selector string) string {
	content, _ := doc.Find(selector).First().Attr("content")
	return strings.TrimSpace(content)
}
