// internal/slug/slug_test.go
//
// Unit-tests for slug.Make and slug.BuildPath.
//
// Run: go test ./internal/slug -v

package slug

import "testing"

func TestMake(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Pet Friendly", "pet-friendly"},
		{"  Size  ", "size"},
		{"Cottage", "cottage"},
		{"Bouncy Castle (12ft)", "bouncy-castle-12ft"},
		{"pet-friendly", "pet-friendly"},
		{"A & B", "a-b"},
		{"---", ""},
		{"", ""},
		{"2 Bedrooms!", "2-bedrooms"},
	}
	for _, c := range cases {
		if got := Make(c.in); got != c.want {
			t.Errorf("Make(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestMakeIdempotent(t *testing.T) {
	inputs := []string{"Pet Friendly", "  TYPE ", "café au lait", "a--b", ""}
	for _, in := range inputs {
		once := Make(in)
		if twice := Make(once); twice != once {
			t.Errorf("Make not idempotent for %q: %q != %q", in, twice, once)
		}
	}
}

func TestBuildPath(t *testing.T) {
	cases := []struct {
		parent, child, want string
	}{
		{"", "", "/"},
		{"", "cottages", "/cottages"},
		{"cottages", "", "/cottages"},
		{"cottages", "type/cottage", "/cottages/type/cottage"},
		{"/cottages/", "/type/cottage/", "/cottages/type/cottage"},
	}
	for _, c := range cases {
		if got := BuildPath(c.parent, c.child); got != c.want {
			t.Errorf("BuildPath(%q, %q) = %q, want %q", c.parent, c.child, got, c.want)
		}
	}
}
