package engine

import "github.com/shopcrawl/shopcrawl"

// classified holds one navigation result partitioned by link role.
type classified struct {
	products      []shopcrawl.LinkCandidate
	nextPage      *shopcrawl.LinkCandidate
	subCategories []subCategoryLink
}

// subCategoryLink is a subcategory candidate tagged with its originating
// signal: structural (subCategories) or heuristic fallback.
type subCategoryLink struct {
	link     shopcrawl.LinkCandidate
	pageType shopcrawl.PageType
}

// classify partitions the links of a navigation result into roles.
// Subcategory links whose name carries the heuristics marker are re-tagged
// as productNavigation-heuristics and have the marker stripped from their
// name; all others keep the subCategories tag. Order is preserved.
func classify(nav *shopcrawl.NavigationResult) classified {
	cls := classified{
		products: nav.Items,
		nextPage: nav.NextPage,
	}

	for _, c := range nav.SubCategories {
		sc := subCategoryLink{link: c, pageType: shopcrawl.PageTypeSubCategories}
		if c.IsHeuristic() {
			sc.link.Name = c.StripMarker()
			sc.pageType = shopcrawl.PageTypeNavigationHeuristics
		}
		cls.subCategories = append(cls.subCategories, sc)
	}

	return cls
}
