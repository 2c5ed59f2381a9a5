// Package heuristics provides URL-shape heuristics used to judge whether
// a discovered link is worth following: category-likeness and homepage
// detection. The rules are path and pattern blocklists; they look only at
// the URL string, never at page content.
package heuristics

import (
	"net/url"
	"regexp"
	"strings"
)

// noContentPaths are path endings that practically never lead to product
// listings (accounts, carts, editorial sections, legal pages).
var noContentPaths = []string{
	"/authenticate",
	"/my-account",
	"/account",
	"/my-wishlist",
	"/search",
	"/archive",
	"/privacy-policy",
	"/cookie-policy",
	"/terms-conditions",
	"/tos",
	"/admin",
	"/rss.xml",
	"/subscribe",
	"/newsletter",
	"/settings",
	"/cart",
	"/articles",
	"/artykuly", // Polish for articles
	"/news",
	"/blog",
	"/about",
	"/about-us",
	"/affiliate",
	"/press",
	"/careers",
}

// suffixes are page-file extensions tolerated after a blocked path.
var suffixes = []string{".html", ".php", ".cgi", ".asp"}

// noContentPatterns match URL shapes that vary too much for a plain path
// list. Each pattern tolerates an optional page-file suffix.
var noContentPatterns = compileWithSuffixes(
	`/sign[_-]?in`,
	`/log[_-]?(in|out)`,
	`/contact[_-]?(us)?`,
	`/(lost|forgot)[_-]password`,
	`/terms[_-]of[_-](service|use|conditions)`,
)

func compileWithSuffixes(rules ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(rules))
	for _, rule := range rules {
		res = append(res, regexp.MustCompile(rule+`(\.(html|php|cgi|asp))?`))
	}
	return res
}

// MightBeCategory returns true if the URL might be a category page based
// on its path. It errs on the side of true: only URLs matching a
// no-content rule are rejected.
func MightBeCategory(rawURL string) bool {
	lowered := strings.TrimRight(strings.ToLower(rawURL), "/")
	u, err := url.Parse(lowered)
	if err != nil {
		return false
	}

	for _, path := range noContentPaths {
		if strings.HasSuffix(u.Path, path) {
			return false
		}
		for _, suffix := range suffixes {
			if strings.HasSuffix(u.Path, path+suffix) {
				return false
			}
		}
	}
	for _, re := range noContentPatterns {
		if re.MatchString(lowered) {
			return false
		}
	}

	return true
}

// indexPaths are URL paths that identify a site's homepage.
var indexPaths = map[string]bool{
	"":            true,
	"/index":      true,
	"/index.html": true,
	"/index.htm":  true,
	"/index.php":  true,
	"/home":       true,
}

var (
	// localePairPattern finds subpaths like "/us/en" or "/en-us".
	localePairPattern = regexp.MustCompile(`/(\w{2})[^a-z](\w{2})\b`)
	// localePattern finds single-language subpaths like "/en" or "/fr".
	localePattern = regexp.MustCompile(`/(\w{2})\b`)
)

// IsHomepage returns true if the URL could be a homepage. Locale subpaths
// like "/us/en" or "/fr" are stripped before the index-path check, so
// "https://example.com/en/" still counts.
func IsHomepage(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	path := strings.ToLower(strings.TrimRight(u.Path, "/"))

	if m := localePairPattern.FindStringSubmatch(path); m != nil && isLocalePair(m[1], m[2]) {
		path = path[6:]
	}
	if m := localePattern.FindStringSubmatch(path); m != nil && (langCodes[m[1]] || countryCodes[m[1]]) {
		path = path[3:]
	}

	return indexPaths[path] && u.RawQuery == ""
}

// isLocalePair reports whether the two tokens form a language/country
// pair in either order.
func isLocalePair(x, y string) bool {
	if langCodes[x] && countryCodes[y] {
		return true
	}
	if langCodes[y] && countryCodes[x] {
		return true
	}
	return false
}
