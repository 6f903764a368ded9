// internal/facet/catalog.go
//
// Filter-attribute catalog: every filterable dimension observed across an
// item set, with values sorted and deduplicated, plus the display lookup
// needed to label them.  One catalog is built per scope (the whole site,
// or one category).

package facet

import (
	"sort"

	"github.com/chobbledotcom/chobble-facets/internal/item"
)

// Catalog is the full set of filterable dimensions for one item scope.
type Catalog struct {
	Attributes map[string][]string `json:"attributes"`
	Display    DisplayLookup       `json:"displayLookup"`
}

// Keys returns the catalog's canonical attribute keys in sorted order.
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.Attributes))
	for k := range c.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// BuildCatalog scans the items and returns every canonical key with its
// sorted, deduplicated value list.  Items without attributes contribute
// nothing; an empty collection yields an empty (non-nil) catalog.
func BuildCatalog(items []item.Item) *Catalog {
	values := make(map[string]map[string]struct{})
	for _, it := range items {
		for _, a := range it.Attributes {
			k, v := NormalizeAttribute(a.Name, a.Value)
			if k == "" || v == "" {
				continue
			}
			if values[k] == nil {
				values[k] = make(map[string]struct{})
			}
			values[k][v] = struct{}{}
		}
	}

	attrs := make(map[string][]string, len(values))
	for k, set := range values {
		vs := make([]string, 0, len(set))
		for v := range set {
			vs = append(vs, v)
		}
		sort.Strings(vs)
		attrs[k] = vs
	}

	return &Catalog{
		Attributes: attrs,
		Display:    BuildDisplayLookup(items),
	}
}

// BuildCategoryCatalog narrows the items to members of categorySlug before
// building, so the catalog only offers dimensions reachable inside that
// category.
func BuildCategoryCatalog(categorySlug string, items []item.Item) *Catalog {
	return BuildCatalog(item.InCategory(items, categorySlug))
}
