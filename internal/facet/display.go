// internal/facet/display.go
//
// Display lookup: canonical slug → original authored label.
//
// Context
// -------
// Canonical slugs are lossy (“Pet Friendly” → “pet-friendly”), so the UI
// layer needs a way back to human-readable text.  BuildDisplayLookup walks
// the item list in input order and records the first raw spelling seen for
// each canonical key and value.  First occurrence wins: if two attributes
// normalise to the same slug with different casing, the earlier item's
// spelling is kept.  Input order is the single deterministic traversal;
// never rebuild this from an unordered map.

package facet

import (
	"strings"

	"github.com/chobbledotcom/chobble-facets/internal/item"
)

// DisplayLookup maps canonical keys and values back to their original
// display text.
type DisplayLookup struct {
	Keys   map[string]string `json:"keys"`
	Values map[string]string `json:"values"`
}

// KeyLabel returns the display label for a canonical key, falling back to
// the slug itself when the key was never observed.
func (d DisplayLookup) KeyLabel(key string) string {
	if label, ok := d.Keys[key]; ok {
		return label
	}
	return key
}

// ValueLabel returns the display label for a canonical value, falling back
// to the slug itself.
func (d DisplayLookup) ValueLabel(value string) string {
	if label, ok := d.Values[value]; ok {
		return label
	}
	return value
}

// BuildDisplayLookup scans items in input order and records the first raw
// spelling for every canonical key and value.  Items without attributes
// contribute nothing.
func BuildDisplayLookup(items []item.Item) DisplayLookup {
	d := DisplayLookup{
		Keys:   make(map[string]string),
		Values: make(map[string]string),
	}
	for _, it := range items {
		for _, a := range it.Attributes {
			k, v := NormalizeAttribute(a.Name, a.Value)
			if k == "" || v == "" {
				continue
			}
			if _, ok := d.Keys[k]; !ok {
				d.Keys[k] = strings.TrimSpace(a.Name)
			}
			if _, ok := d.Values[v]; !ok {
				d.Values[v] = strings.TrimSpace(a.Value)
			}
		}
	}
	return d
}
