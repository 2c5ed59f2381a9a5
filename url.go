package shopcrawl

import (
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// Domain returns the registrable domain of a URL ("shop.example.co.uk"
// yields "example.co.uk"). Used to pin the full strategy and the offsite
// check to the start URL's domain. Hosts the public suffix list cannot
// split (IP addresses, localhost) fall back to the host with any leading
// "www." label stripped.
func Domain(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", Errorf(EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	host := u.Hostname()
	if host == "" {
		return "", Errorf(EINVALID, "URL %q has no host", rawURL)
	}

	if domain, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return domain, nil
	}
	return strings.TrimPrefix(host, "www."), nil
}

// SameDomain reports whether the URL belongs to the given registrable
// domain. Unparseable URLs are never considered on-domain.
func SameDomain(rawURL string, domain string) bool {
	if domain == "" {
		return true
	}
	d, err := Domain(rawURL)
	if err != nil {
		return false
	}
	return d == domain
}
