package shopcrawl

import "strings"

// Role classifies a discovered link by its function on a navigation page.
type Role int

// Link roles recognized by the decision engine.
const (
	RoleProduct Role = iota
	RoleNextPage
	RoleSubCategory
)

// String returns the role's identifier.
func (r Role) String() string {
	switch r {
	case RoleProduct:
		return "product"
	case RoleNextPage:
		return "nextPage"
	case RoleSubCategory:
		return "subCategory"
	}
	return "unknown"
}

// PageType tags an outbound request with the parser role that should
// handle the response. Used for routing and observability.
type PageType string

// Page types attached to emitted requests.
const (
	PageTypeProduct              PageType = "product"
	PageTypeNextPage             PageType = "nextPage"
	PageTypeSubCategories        PageType = "subCategories"
	PageTypeNavigation           PageType = "productNavigation"
	PageTypeNavigationHeuristics PageType = "productNavigation-heuristics"
	PageTypeUnknown              PageType = "unknown"
)

// PageTypes lists all valid page types in reporting order.
func PageTypes() []PageType {
	return []PageType{
		PageTypeProduct,
		PageTypeNextPage,
		PageTypeSubCategories,
		PageTypeNavigation,
		PageTypeNavigationHeuristics,
	}
}

// HeuristicsMarker flags subcategory links produced by a fallback heuristic
// rather than a structural page signal. The classifier strips it from the
// link name and re-tags the request.
const HeuristicsMarker = "[heuristics]"

// LinkCandidate is a discovered URL with an optional human-readable name
// and an optional extraction-confidence probability in [0,1]. A nil
// probability means unknown, not zero. Candidates are transient: owned by
// the extraction result that produced them, copied into an outbound
// request, then dropped.
type LinkCandidate struct {
	URL         string   `json:"url"`
	Name        string   `json:"name,omitempty"`
	Probability *float64 `json:"probability,omitempty"`
}

// IsHeuristic reports whether the candidate's name carries the
// heuristics marker.
func (c LinkCandidate) IsHeuristic() bool {
	return strings.Contains(c.Name, HeuristicsMarker)
}

// StripMarker returns the candidate's name with the heuristics marker
// removed and surrounding whitespace trimmed.
func (c LinkCandidate) StripMarker() string {
	return strings.TrimSpace(strings.ReplaceAll(c.Name, HeuristicsMarker, ""))
}

// NavigationResult is the extraction output for one fetched navigation
// page. Created once per navigation response, consumed immediately by the
// decision engine, then discarded.
type NavigationResult struct {
	URL           string          `json:"url"`
	Items         []LinkCandidate `json:"items,omitempty"`
	NextPage      *LinkCandidate  `json:"nextPage,omitempty"`
	SubCategories []LinkCandidate `json:"subCategories,omitempty"`
}

// ProductResult is the extraction output for one fetched product page.
type ProductResult struct {
	URL         string            `json:"url"`
	Name        string            `json:"name,omitempty"`
	Probability *float64          `json:"probability,omitempty"`
	Fields      map[string]string `json:"fields,omitempty"`
}

// FetchRequest is the unit the decision engine emits: a target URL with a
// fetch priority, a page-type tag routing the response to the right
// parser, and the PageParams to thread through. Consumed by the fetch
// layer. Every emitted request carries a page type and a priority.
type FetchRequest struct {
	URL         string     `json:"url"`
	Priority    int        `json:"priority"`
	PageType    PageType   `json:"pageType"`
	Name        string     `json:"name,omitempty"`
	Probability *float64   `json:"probability,omitempty"`
	PageParams  PageParams `json:"pageParams,omitzero"`

	// AllowOffsite permits the fetch layer to follow the request off the
	// start domain. Set only for product pages, which legitimately live on
	// other subdomains or CDNs on some sites.
	AllowOffsite bool `json:"allowOffsite,omitempty"`
}

// Planner decides follow-up fetches for extracted pages. Implementations
// are synchronous and stateless between invocations; each response is
// planned independently.
type Planner interface {
	// StartRequests seeds a crawl from the configured start URLs.
	// Returns EINVALID if no start URL is given.
	StartRequests(urls []string) ([]FetchRequest, error)

	// PlanNavigation turns one navigation extraction result into zero or
	// more outbound requests: classify links, gate by strategy, assign
	// priorities, emit.
	PlanNavigation(nav *NavigationResult, params PageParams) []FetchRequest

	// AcceptProduct reports whether a fetched product passes the
	// low-probability acceptance filter. Rejection is never an error.
	AcceptProduct(product *ProductResult) bool
}
