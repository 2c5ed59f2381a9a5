package engine

import "github.com/shopcrawl/shopcrawl"

// emit builds the outbound request for one classified, prioritized
// candidate and logs the decision. Product requests are allowed off the
// start domain: product detail pages legitimately live on other
// subdomains or CDNs on some sites, so the offsite restriction is relaxed
// for this role only.
func (e *Engine) emit(c shopcrawl.LinkCandidate, pageType shopcrawl.PageType, priority int, params shopcrawl.PageParams) shopcrawl.FetchRequest {
	req := shopcrawl.FetchRequest{
		URL:          c.URL,
		Priority:     priority,
		PageType:     pageType,
		Name:         c.Name,
		Probability:  c.Probability,
		PageParams:   params,
		AllowOffsite: pageType == shopcrawl.PageTypeProduct,
	}

	e.logger.Debug("emitting fetch request",
		"pageType", string(pageType),
		"name", c.Name,
		"probability", c.Probability,
		"priority", priority,
		"url", c.URL,
	)

	return req
}
