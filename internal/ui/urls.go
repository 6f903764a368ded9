// internal/ui/urls.go
//
// URL schemes for the two widget flavours.
//
// fragmentURLs serves the flat search page: the canonical path rides in
// the URL fragment and client-side script applies it, so no extra pages
// are materialised.  scopedURLs serves category pages, where every
// combination is a real generated path under the category base; the
// “#content” anchor scrolls past the page header to the results.

package ui

import (
	"strings"

	"github.com/chobbledotcom/chobble-facets/internal/facet"
)

type urlScheme interface {
	// page returns the URL for a filter path; empty path means the
	// unfiltered base page.
	page(path string) string
	// sort returns the URL selecting a sort mode while keeping path.
	sort(path, mode string) string
}

type fragmentURLs struct {
	base string
}

func (u fragmentURLs) page(path string) string {
	if path == "" {
		return u.base
	}
	return u.base + "#" + path
}

func (u fragmentURLs) sort(path, mode string) string {
	if mode == facet.SortDefault {
		return u.page(path)
	}
	if path == "" {
		return u.base + "#sort/" + mode
	}
	return u.base + "#" + path + "/sort/" + mode
}

type scopedURLs struct {
	base string
}

func (u scopedURLs) root() string {
	return strings.TrimRight(u.base, "/")
}

func (u scopedURLs) page(path string) string {
	if path == "" {
		return u.root() + "/#content"
	}
	return u.root() + "/" + path + "/#content"
}

func (u scopedURLs) sort(path, mode string) string {
	if mode == facet.SortDefault {
		return u.page(path)
	}
	if path == "" {
		return u.root() + "/?sort=" + mode + "#content"
	}
	return u.root() + "/" + path + "/?sort=" + mode + "#content"
}
