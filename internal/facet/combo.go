// internal/facet/combo.go
//
// Reachable-combination generator.
//
// Context
// -------
// A static site cannot answer ad hoc filter queries, so every filter page
// that will ever exist must be enumerated at build time.  The generator
// takes each item's canonical attribute pairs, enumerates every non-empty
// subset as a candidate filter state, and deduplicates candidates across
// the whole collection by canonical path.  Because candidates only ever
// come from pairs present on a real item, every emitted combination has at
// least one matching item by construction — no dead links.
//
// Match sets are then computed globally: two items may independently
// suggest the same combination, and the count must reflect every item in
// the collection that satisfies it, not just the originators.  The whole
// pass is a fold into one result map keyed by path; no shared mutable
// state survives between calls.
//
// Complexity
// ----------
// Cost is exponential in the number of distinct attribute keys on a single
// item (2^n − 1 subsets), not in the catalog as a whole.  MaxPairsPerItem
// bounds n: items carrying more distinct keys are truncated to the first
// MaxPairsPerItem keys in sorted order, with a warning, so one over-tagged
// item cannot stall a build.

package facet

import (
	"sort"

	"go.uber.org/zap"

	"github.com/chobbledotcom/chobble-facets/internal/item"
	"github.com/chobbledotcom/chobble-facets/internal/slug"
)

// MaxPairsPerItem caps how many distinct attribute keys of one item take
// part in subset enumeration (2^12 − 1 = 4095 candidate subsets).
const MaxPairsPerItem = 12

// Combination is one reachable filter state plus everything a static page
// needs: its canonical path, the matching items, and display-ready labels.
type Combination struct {
	Path         string      `json:"path"`
	Filters      FilterState `json:"filters"`
	Items        []item.Item `json:"items"`
	Count        int         `json:"count"`
	Description  []Pair      `json:"filterDescription"`
	CategorySlug string      `json:"categorySlug,omitempty"`
	CategoryURL  string      `json:"categoryUrl,omitempty"`
}

// Generate computes every reachable combination for the collection.  An
// empty collection, or one whose items carry no filter attributes, yields
// nil.  Output is sorted by path.
func Generate(items []item.Item) []Combination {
	return generate("", items, MaxPairsPerItem)
}

// GenerateScoped is the category-scoped variant: items are narrowed to
// members of categorySlug first, and each combination carries the category
// slug plus its category-prefixed URL.
func GenerateScoped(categorySlug string, items []item.Item) []Combination {
	return generate(categorySlug, item.InCategory(items, categorySlug), MaxPairsPerItem)
}

// GenerateWithLimit exposes the per-item pair cap for catalogs that need a
// different bound.  maxPairs < 1 falls back to MaxPairsPerItem.
func GenerateWithLimit(categorySlug string, items []item.Item, maxPairs int) []Combination {
	if maxPairs < 1 {
		maxPairs = MaxPairsPerItem
	}
	if categorySlug != "" {
		items = item.InCategory(items, categorySlug)
	}
	return generate(categorySlug, items, maxPairs)
}

func generate(categorySlug string, items []item.Item, maxPairs int) []Combination {
	display := BuildDisplayLookup(items)

	// Pass 1: collect unique candidate states keyed by canonical path.
	candidates := make(map[string]FilterState)
	for _, it := range items {
		pairs := itemPairs(it)
		if len(pairs) == 0 {
			continue
		}
		if len(pairs) > maxPairs {
			zap.L().Warn("item exceeds attribute cap, truncating",
				zap.String("item", it.Title),
				zap.Int("attributes", len(pairs)),
				zap.Int("cap", maxPairs))
			pairs = pairs[:maxPairs]
		}
		for _, subset := range subsets(pairs) {
			state := make(FilterState, len(subset))
			for _, p := range subset {
				state[p.Key] = p.Value
			}
			path := ToPath(state)
			if _, seen := candidates[path]; !seen {
				candidates[path] = state
			}
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	// Pass 2: compute the global match set for each unique path.
	paths := make([]string, 0, len(candidates))
	for p := range candidates {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	combos := make([]Combination, 0, len(paths))
	for _, path := range paths {
		state := candidates[path]
		matched := ItemsByFilters(items, state)
		c := Combination{
			Path:        path,
			Filters:     state,
			Items:       matched,
			Count:       len(matched),
			Description: describe(state, display),
		}
		if categorySlug != "" {
			c.CategorySlug = categorySlug
			c.CategoryURL = slug.BuildPath(categorySlug, path) + "/"
		}
		combos = append(combos, c)
	}
	return combos
}

// subsets enumerates every non-empty subset of the fixed pair array.  The
// mask walk is bounded by the MaxPairsPerItem cap applied by the caller.
func subsets(pairs []Pair) [][]Pair {
	n := len(pairs)
	out := make([][]Pair, 0, (1<<n)-1)
	for mask := 1; mask < 1<<n; mask++ {
		subset := make([]Pair, 0, n)
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				subset = append(subset, pairs[i])
			}
		}
		out = append(out, subset)
	}
	return out
}

// describe resolves the state into display-label pairs in path key order.
func describe(state FilterState, display DisplayLookup) []Pair {
	keys := state.SortedKeys()
	out := make([]Pair, 0, len(keys))
	for _, k := range keys {
		out = append(out, Pair{
			Key:   display.KeyLabel(k),
			Value: display.ValueLabel(state[k]),
		})
	}
	return out
}
