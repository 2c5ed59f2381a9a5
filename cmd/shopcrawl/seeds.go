package main

import (
	"fmt"

	shophttp "github.com/shopcrawl/shopcrawl/http"
)

// Run executes the seeds command.
func (c *SeedsCmd) Run(deps *Dependencies) error {
	seeds := shophttp.NewSitemapSeedSource(nil)
	urls, err := seeds.Discover(deps.Ctx, c.Site)
	if err != nil {
		return err
	}

	if len(urls) == 0 {
		fmt.Fprintln(deps.Stderr, "no sitemap found")
		return nil
	}
	for _, u := range urls {
		fmt.Fprintln(deps.Stdout, u)
	}
	return nil
}
