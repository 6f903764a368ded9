// internal/facet/normalize_test.go
//
// Unit-tests for attribute normalisation and per-item pair extraction.

package facet

import (
	"testing"

	"github.com/chobbledotcom/chobble-facets/internal/item"
)

func TestNormalizeAttribute(t *testing.T) {
	cases := []struct {
		name, value, wantK, wantV string
	}{
		{"Pet Friendly", "Yes", "pet-friendly", "yes"},
		{"  Size ", " Small ", "size", "small"},
		{"Type", "Cottage (Stone)", "type", "cottage-stone"},
		{"", "Yes", "", "yes"},
		{"Size", "", "size", ""},
	}
	for _, c := range cases {
		k, v := NormalizeAttribute(c.name, c.value)
		if k != c.wantK || v != c.wantV {
			t.Errorf("NormalizeAttribute(%q, %q) = (%q, %q), want (%q, %q)",
				c.name, c.value, k, v, c.wantK, c.wantV)
		}
	}
}

func TestNormalizeAttributeIdempotent(t *testing.T) {
	k1, v1 := NormalizeAttribute("Pet Friendly", "Yes!")
	k2, v2 := NormalizeAttribute(k1, v1)
	if k1 != k2 || v1 != v2 {
		t.Fatalf("normalisation not idempotent: (%q,%q) -> (%q,%q)", k1, v1, k2, v2)
	}
}

func TestItemPairsDedupLaterWins(t *testing.T) {
	it := item.Item{Attributes: []item.RawAttribute{
		{Name: "Size", Value: "Small"},
		{Name: "Type", Value: "Cottage"},
		{Name: "size", Value: "Large"}, // same canonical key, later wins
	}}
	pairs := itemPairs(it)
	if len(pairs) != 2 {
		t.Fatalf("got %d pairs, want 2: %v", len(pairs), pairs)
	}
	// sorted by key
	if pairs[0].Key != "size" || pairs[0].Value != "large" {
		t.Errorf("pairs[0] = %v, want size/large", pairs[0])
	}
	if pairs[1].Key != "type" || pairs[1].Value != "cottage" {
		t.Errorf("pairs[1] = %v, want type/cottage", pairs[1])
	}
}

func TestItemPairsDropsMalformed(t *testing.T) {
	it := item.Item{Attributes: []item.RawAttribute{
		{Name: "", Value: "Yes"},
		{Name: "Size", Value: "  "},
		{Name: "???", Value: "Yes"}, // name slugs to empty
	}}
	if pairs := itemPairs(it); len(pairs) != 0 {
		t.Fatalf("malformed attributes survived: %v", pairs)
	}
}
