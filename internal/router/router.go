// Package router maps location hashes to the site's pages.
//
// The whole navigation surface is a handful of hash fragments ("#",
// "#reception", ...). Decoding is total: a fragment that matches no
// pattern is the not-found page, never an error.
package router

import "strings"

// Route identifies one of the site's pages.
type Route int

const (
	Home Route = iota
	Reception
	Music
	Contact
	NotFound
)

// LocationChangedMsg reports that the current location hash changed. It is
// emitted by the navbar, the location prompt, and page-cycling keys, and
// handled by the application model, which decodes the hash into a Route.
type LocationChangedMsg struct {
	Hash string
}

// patterns is the fixed route table, matched in order, first match wins.
// Matching is exact and case-sensitive; there is no prefix matching.
var patterns = []struct {
	fragment string
	route    Route
}{
	{"", Home},
	{"reception", Reception},
	{"music", Music},
	{"contact", Contact},
}

// Decode maps a location hash to a Route. A single leading '#' is ignored,
// so "#music" and "music" decode alike. Decode never fails: anything
// outside the route table decodes to NotFound.
func Decode(locationHash string) Route {
	fragment := strings.TrimPrefix(locationHash, "#")
	for _, p := range patterns {
		if fragment == p.fragment {
			return p.route
		}
	}
	return NotFound
}

// Fragment returns the canonical location hash for a route. NotFound has no
// real fragment; it returns a display-only sentinel.
func Fragment(r Route) string {
	for _, p := range patterns {
		if r == p.route {
			return "#" + p.fragment
		}
	}
	return "#404"
}

// Title returns the page title shown in the navbar and window chrome.
func Title(r Route) string {
	switch r {
	case Home:
		return "Home"
	case Reception:
		return "Reception"
	case Music:
		return "Music"
	case Contact:
		return "Contact"
	default:
		return "Not Found"
	}
}

// Pages returns the navigable routes in navbar order. NotFound is excluded;
// it is only ever reached by decoding an unknown hash.
func Pages() []Route {
	return []Route{Home, Reception, Music, Contact}
}

// Next returns the page after r in navbar order, wrapping at the end.
// From the not-found page it goes home.
func Next(r Route) Route {
	pages := Pages()
	for i, p := range pages {
		if p == r {
			return pages[(i+1)%len(pages)]
		}
	}
	return Home
}

// Prev returns the page before r in navbar order, wrapping at the start.
// From the not-found page it goes home.
func Prev(r Route) Route {
	pages := Pages()
	for i, p := range pages {
		if p == r {
			return pages[(i-1+len(pages))%len(pages)]
		}
	}
	return Home
}

func (r Route) String() string {
	return Title(r)
}
