// Package shopcrawl drives automated crawling of e-commerce websites.
// Given one or more start URLs it discovers category and navigation pages,
// paginates through listings, locates product detail pages, and decides,
// for every discovered link, whether and with what priority to fetch it.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, rod/, prometheus/).
package shopcrawl
