// internal/item/model.go
//
// Catalog item model.
//
// Context
// -------
// An Item is one record of the published catalog (a product, a property,
// …).  The facet engine only reads an item's attributes and category
// membership; it never mutates one.  Attribute names and values are free
// text exactly as authored; canonicalisation happens downstream in the
// facet package.
//
// Items arrive from two sources that both produce this struct:
//
//   • loader.go      – content-directory files (YAML, Markdown front matter)
//   • repository.go  – optional MySQL catalog tables
//
// Notes
// -----
// • Categories are authored as display names; CategorySlugs and HasCategory
//   compare canonical forms so “Bouncy Castles” and “bouncy-castles” agree.

package item

import (
	"github.com/chobbledotcom/chobble-facets/internal/slug"
)

// RawAttribute is a single name/value pair as authored on an item.
type RawAttribute struct {
	Name  string `koanf:"name"  json:"name"  db:"name"`
	Value string `koanf:"value" json:"value" db:"value"`
}

// Item is one catalog record.  The zero value is a valid (attribute-less)
// item that contributes nothing to the facet catalog.
type Item struct {
	Title      string         `koanf:"title"      json:"title"`
	Slug       string         `koanf:"slug"       json:"slug"`
	Price      string         `koanf:"price"      json:"price,omitempty"`
	Categories []string       `koanf:"categories" json:"categories,omitempty"`
	Attributes []RawAttribute `koanf:"filters"    json:"filters,omitempty"`
}

// PageSlug returns the item's explicit slug, falling back to a slug derived
// from the title.
func (i Item) PageSlug() string {
	if i.Slug != "" {
		return slug.Make(i.Slug)
	}
	return slug.Make(i.Title)
}

// HasCategory reports whether the item belongs to the category identified
// by canonical slug.
func (i Item) HasCategory(categorySlug string) bool {
	for _, c := range i.Categories {
		if slug.Make(c) == categorySlug {
			return true
		}
	}
	return false
}

// CategorySlugs returns the canonical slugs of every category the item
// belongs to, in authored order, empties dropped.
func (i Item) CategorySlugs() []string {
	out := make([]string, 0, len(i.Categories))
	for _, c := range i.Categories {
		if s := slug.Make(c); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// InCategory filters items down to members of the given canonical category
// slug.  An empty slug returns the input unchanged.
func InCategory(items []Item, categorySlug string) []Item {
	if categorySlug == "" {
		return items
	}
	var out []Item
	for _, it := range items {
		if it.HasCategory(categorySlug) {
			out = append(out, it)
		}
	}
	return out
}
