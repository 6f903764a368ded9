// internal/facet/display_test.go
//
// Unit-tests for the display lookup.  First-seen-wins over the item list
// in input order is the invariant under test.

package facet

import (
	"testing"

	"github.com/chobbledotcom/chobble-facets/internal/item"
)

func TestBuildDisplayLookupFirstSeenWins(t *testing.T) {
	items := []item.Item{
		{Attributes: []item.RawAttribute{{Name: "Pet Friendly", Value: "Yes"}}},
		{Attributes: []item.RawAttribute{{Name: "PET FRIENDLY", Value: "YES"}}},
	}
	d := BuildDisplayLookup(items)

	if got := d.KeyLabel("pet-friendly"); got != "Pet Friendly" {
		t.Errorf("KeyLabel = %q, want first spelling %q", got, "Pet Friendly")
	}
	if got := d.ValueLabel("yes"); got != "Yes" {
		t.Errorf("ValueLabel = %q, want first spelling %q", got, "Yes")
	}
}

func TestBuildDisplayLookupTrimsRawText(t *testing.T) {
	items := []item.Item{
		{Attributes: []item.RawAttribute{{Name: "  Size ", Value: " Small "}}},
	}
	d := BuildDisplayLookup(items)
	if got := d.KeyLabel("size"); got != "Size" {
		t.Errorf("KeyLabel = %q, want %q", got, "Size")
	}
	if got := d.ValueLabel("small"); got != "Small" {
		t.Errorf("ValueLabel = %q, want %q", got, "Small")
	}
}

func TestDisplayLookupFallsBackToSlug(t *testing.T) {
	d := BuildDisplayLookup(nil)
	if got := d.KeyLabel("never-seen"); got != "never-seen" {
		t.Errorf("KeyLabel fallback = %q", got)
	}
	if got := d.ValueLabel("never-seen"); got != "never-seen" {
		t.Errorf("ValueLabel fallback = %q", got)
	}
}

func TestBuildDisplayLookupSkipsAttributelessItems(t *testing.T) {
	items := []item.Item{{Title: "Bare"}, {Title: "Also bare"}}
	d := BuildDisplayLookup(items)
	if len(d.Keys) != 0 || len(d.Values) != 0 {
		t.Fatalf("expected empty lookup, got %v / %v", d.Keys, d.Values)
	}
}
