// internal/facet/match.go
//
// Matching engine: does an item satisfy a filter state?
//
// Matching is conjunctive — every key/value in the state must be present
// among the item's normalised attributes, never “any of”.  An empty state
// matches everything (vacuous truth).  Used during combination-count
// accumulation and for ad hoc per-page filtering.

package facet

import (
	"github.com/chobbledotcom/chobble-facets/internal/item"
)

// Matches reports whether the item satisfies every key/value in state.
func Matches(it item.Item, state FilterState) bool {
	if len(state) == 0 {
		return true
	}
	pairs := itemPairs(it)
	have := make(map[string]string, len(pairs))
	for _, p := range pairs {
		have[p.Key] = p.Value
	}
	for k, v := range state {
		if have[k] != v {
			return false
		}
	}
	return true
}

// ItemsByFilters returns every item matching the state, preserving input
// order.  An unreachable state yields an empty slice, never an error.
func ItemsByFilters(items []item.Item, state FilterState) []item.Item {
	out := make([]item.Item, 0, len(items))
	for _, it := range items {
		if Matches(it, state) {
			out = append(out, it)
		}
	}
	return out
}
