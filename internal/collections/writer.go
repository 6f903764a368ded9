// internal/collections/writer.go
//
// JSON materialisation of a build pass.
//
// The templating layer (out of scope here) consumes these files; their
// names are part of the contract with it.  encoding/json sorts map keys,
// so file contents are byte-stable across builds of the same snapshot.

package collections

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// File names under <output>/collections/.
const (
	FilterPagesFile        = "filter-pages.json"
	FilterAttributesFile   = "filter-attributes.json"
	CategoryPagesFile      = "category-filter-pages.json"
	CategoryAttributesFile = "category-filter-attributes.json"
	FilterRedirectsFile    = "filter-redirects.json"
)

// WriteJSON writes every collection under <outputDir>/collections/.
func (o *Output) WriteJSON(outputDir string) error {
	dir := filepath.Join(outputDir, "collections")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create collections dir: %w", err)
	}

	files := map[string]any{
		FilterPagesFile:        o.FilterPages,
		FilterAttributesFile:   o.FilterAttributes,
		CategoryPagesFile:      o.CategoryPages,
		CategoryAttributesFile: o.CategoryAttributes,
		FilterRedirectsFile:    o.Redirects,
	}
	for name, data := range files {
		if err := writeFile(filepath.Join(dir, name), data); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, data any) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, append(raw, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
