// internal/facet/facet.go
//
// Facet engine core types.
//
// Context
// -------
// Everything a static build needs to publish faceted-filter pages is
// computed here ahead of time: canonical attribute slugs, the set of
// reachable attribute-value combinations, the bidirectional mapping
// between filter state and URL path, and per-item match decisions.  The
// whole package is synchronous, pure, and deterministic — the same item
// collection always yields the same paths, because those paths become
// permanent URLs.
//
// Notes
// -----
// • Map iteration never feeds output directly; sorted key order is imposed
//   at the path codec boundary.
// • Oxford commas, two spaces after periods.

package facet

import (
	"sort"
)

// FilterState maps canonical attribute keys to canonical values.  Keys are
// unique; insertion order is irrelevant because every consumer processes
// keys in sorted order.
type FilterState map[string]string

// Pair is one canonical key/value entry.  Slices of Pair carry filter
// state wherever a deterministic order matters.
type Pair struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// SortedKeys returns the state's keys in lexicographic order.
func (s FilterState) SortedKeys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns an independent copy of the state.
func (s FilterState) Clone() FilterState {
	out := make(FilterState, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// With returns a copy of the state with key set to value.
func (s FilterState) With(key, value string) FilterState {
	out := s.Clone()
	out[key] = value
	return out
}

// Without returns a copy of the state with key removed.
func (s FilterState) Without(key string) FilterState {
	out := s.Clone()
	delete(out, key)
	return out
}
