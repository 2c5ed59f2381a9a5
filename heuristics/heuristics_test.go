package heuristics_test

import (
	"testing"

	"github.com/shopcrawl/shopcrawl/heuristics"
	"github.com/stretchr/testify/assert"
)

func TestMightBeCategory_accepts_plausible_category_paths(t *testing.T) {
	t.Parallel()

	for _, url := range []string{
		"https://shop.example.com/shoes",
		"https://shop.example.com/shoes/boots/",
		"https://shop.example.com/category?page=2",
		"https://shop.example.com/",
	} {
		assert.True(t, heuristics.MightBeCategory(url), url)
	}
}

func TestMightBeCategory_rejects_no_content_paths(t *testing.T) {
	t.Parallel()

	for _, url := range []string{
		"https://shop.example.com/cart",
		"https://shop.example.com/cart/",
		"https://shop.example.com/my-account",
		"https://shop.example.com/privacy-policy",
		"https://shop.example.com/blog",
		"https://shop.example.com/news.html",
		"https://shop.example.com/about-us.php",
		"https://shop.example.com/SEARCH",
	} {
		assert.False(t, heuristics.MightBeCategory(url), url)
	}
}

func TestMightBeCategory_rejects_pattern_matches_with_suffixes(t *testing.T) {
	t.Parallel()

	for _, url := range []string{
		"https://shop.example.com/sign-in",
		"https://shop.example.com/signin",
		"https://shop.example.com/log_in",
		"https://shop.example.com/logout.html",
		"https://shop.example.com/contact-us",
		"https://shop.example.com/contact.php",
		"https://shop.example.com/forgot-password",
		"https://shop.example.com/terms-of-service",
	} {
		assert.False(t, heuristics.MightBeCategory(url), url)
	}
}

func TestIsHomepage(t *testing.T) {
	t.Parallel()

	for _, url := range []string{
		"https://shop.example.com",
		"https://shop.example.com/",
		"https://shop.example.com/index.html",
		"https://shop.example.com/home",
	} {
		assert.True(t, heuristics.IsHomepage(url), url)
	}

	for _, url := range []string{
		"https://shop.example.com/shoes",
		"https://shop.example.com/?q=boots",
		"https://shop.example.com/index.html?ref=nav",
	} {
		assert.False(t, heuristics.IsHomepage(url), url)
	}
}

func TestIsHomepage_strips_locale_subpaths(t *testing.T) {
	t.Parallel()

	for _, url := range []string{
		"https://shop.example.com/en/",
		"https://shop.example.com/fr",
		"https://shop.example.com/us/en",
		"https://shop.example.com/en-us/",
	} {
		assert.True(t, heuristics.IsHomepage(url), url)
	}

	// A non-locale two-letter segment is not stripped.
	assert.False(t, heuristics.IsHomepage("https://shop.example.com/xx/yy"))
}
