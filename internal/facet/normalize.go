// internal/facet/normalize.go
//
// Attribute normalisation.
//
// Context
// -------
// Raw attribute names and values are authored free text (“Pet Friendly”,
// “Yes”).  NormalizeAttribute canonicalises both sides through slug.Make,
// giving the key/value slugs that appear in URLs and drive matching.
// Attributes whose name or value collapses to the empty slug are malformed
// and dropped by every consumer — they never produce a catalog entry or a
// combination.
//
// itemPairs turns one item's attribute list into its canonical pair array:
// deduplicated by key with later occurrences overwriting earlier ones
// (per-item only), sorted by key.  That fixed array is the base for the
// per-item subset enumeration in combo.go.

package facet

import (
	"sort"

	"github.com/chobbledotcom/chobble-facets/internal/item"
	"github.com/chobbledotcom/chobble-facets/internal/slug"
)

// NormalizeAttribute canonicalises one raw name/value pair.  Pure and
// total: any string input succeeds, empty in yields empty out.
func NormalizeAttribute(rawName, rawValue string) (key, value string) {
	return slug.Make(rawName), slug.Make(rawValue)
}

// itemPairs returns the item's canonical attribute pairs, deduplicated by
// key (later wins) and sorted by key.  Malformed attributes are skipped.
func itemPairs(it item.Item) []Pair {
	dedup := make(map[string]string, len(it.Attributes))
	for _, a := range it.Attributes {
		k, v := NormalizeAttribute(a.Name, a.Value)
		if k == "" || v == "" {
			continue
		}
		dedup[k] = v
	}

	pairs := make([]Pair, 0, len(dedup))
	for k, v := range dedup {
		pairs = append(pairs, Pair{Key: k, Value: v})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Key < pairs[j].Key })
	return pairs
}
