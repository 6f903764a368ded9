// internal/slug/slug.go
//
// Canonical slug and path helpers.
//
// • Make(text) ─ converts arbitrary text into a URL-safe slug restricted
//   to ASCII a-z, 0-9 and “-”.  Canonical attribute keys and values are
//   produced with this function, so it must stay stable: the slugs become
//   permanent URLs.
// • BuildPath(parent, child) ─ joins two path fragments with a single “/”
//   and guarantees exactly one leading slash.
//
// Rules (Make)
// ------------
// 1. Trim surrounding whitespace.
// 2. Lower-case everything.
// 3. Convert any run of non-[a-z0-9] characters to one “-”.  That strips
//    spaces, punctuation, emoji, and non-ASCII.
// 4. Collapse consecutive “-” to a single “-”.
// 5. Trim leading / trailing “-”.
//
// Make is idempotent: Make(Make(x)) == Make(x).  The empty string maps to
// the empty string; callers must guard against using empty slugs as real
// filter keys.
//
// Notes
// -----
// • No Unicode transliteration; catalogs are English-only for now.

package slug

import (
	"strings"
)

// Make converts text → lower-kebab ASCII.  Empty in, empty out.
func Make(text string) string {
	text = strings.TrimSpace(text)

	var b strings.Builder
	b.Grow(len(text))

	lastWasDash := false
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastWasDash = false
		default:
			// any non-ASCII or punctuation becomes a single dash
			if !lastWasDash {
				b.WriteRune('-')
				lastWasDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}

// BuildPath joins parent + child ensuring exactly one leading slash and no
// duplicate separators.
func BuildPath(parent, child string) string {
	parent = strings.Trim(parent, "/")
	child = strings.Trim(child, "/")

	switch {
	case parent == "" && child == "":
		return "/"
	case parent == "":
		return "/" + child
	case child == "":
		return "/" + parent
	default:
		return "/" + parent + "/" + child
	}
}
