// internal/redirect/redirect.go
//
// Legacy search-path redirects for category-scoped catalogs.
//
// Context
// -------
// Filter pages used to live under one flat /search/ URL scheme before the
// catalog grew category-scoped paths.  To keep old links alive, every
// reachable combination of a category also gets a redirect from its legacy
// flat address to the category-scoped canonical page.  Proper prefix
// subsets of multi-pair paths are covered automatically: the powerset
// closure of the combination generator makes each prefix a reachable
// combination in its own right, so it arrives here with its own target.
// Because only generated combinations are walked, no redirect can ever
// point at a page with zero matching items.
//
// The build pipeline materialises these as HTTP redirect rules or stub
// pages; the preview server (internal/preview) serves them directly.

package redirect

import (
	"sort"
	"strings"

	"github.com/chobbledotcom/chobble-facets/internal/facet"
	"github.com/chobbledotcom/chobble-facets/internal/item"
)

// SearchBase is the legacy flat scheme all redirects map away from.
const SearchBase = "/search/"

// Redirect maps one legacy flat search path to its category-scoped
// canonical equivalent.
type Redirect struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Generate computes the redirect set for one category.  Output is
// deduplicated by source and sorted for deterministic builds.
func Generate(categorySlug string, items []item.Item) []Redirect {
	return FromCombinations(facet.GenerateScoped(categorySlug, items))
}

// FromCombinations derives redirects from already-generated scoped
// combinations, so callers that hold the combination set avoid a second
// generation pass.  Unscoped combinations are skipped.
func FromCombinations(combos []facet.Combination) []Redirect {
	return FromCombinationsUnder(SearchBase, combos)
}

// FromCombinationsUnder is FromCombinations with a configurable legacy
// base path.  Empty base falls back to SearchBase.
func FromCombinationsUnder(base string, combos []facet.Combination) []Redirect {
	if base == "" {
		base = SearchBase
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}

	seen := make(map[string]struct{}, len(combos))
	out := make([]Redirect, 0, len(combos))
	for _, c := range combos {
		if c.CategoryURL == "" || c.Count < 1 {
			continue
		}
		from := base + c.Path + "/"
		if _, dup := seen[from]; dup {
			continue
		}
		seen[from] = struct{}{}
		out = append(out, Redirect{From: from, To: c.CategoryURL})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].From < out[j].From })
	return out
}
