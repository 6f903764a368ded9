// internal/item/loader.go
//
// Content-directory item source.
//
// Context
// -------
// The usual way items reach a build is as flat files in the content
// directory: one YAML document per item, or a Markdown page whose YAML
// front matter carries the item fields.  Attribute pairs are authored as a
// list, not a map, so their order survives parsing — the display lookup's
// first-seen-wins rule depends on it:
//
//	title: Rose Cottage
//	price: "£450"
//	categories: [Cottages]
//	filters:
//	  - name: Pet Friendly
//	    value: "Yes"
//	  - name: Type
//	    value: Cottage
//
// Files are read in sorted path order so every build sees the same input
// order.  A file that fails to parse is logged and skipped — bad data
// never aborts a build — but a missing or unreadable directory is a
// caller/configuration bug and returns an error.

package item

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	koanf "github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

var frontMatterDelim = []byte("---")

// LoadDir reads every .yaml, .yml, and .md file under dir (recursively)
// and returns the parsed items in sorted path order.
func LoadDir(dir string) ([]Item, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml", ".md":
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk content dir %s: %w", dir, err)
	}
	sort.Strings(paths)

	items := make([]Item, 0, len(paths))
	for _, path := range paths {
		it, err := loadFile(path)
		if err != nil {
			zap.S().Warnw("skipping unparseable item file", "file", path, "err", err)
			continue
		}
		if it.Title == "" {
			zap.S().Warnw("skipping item without title", "file", path)
			continue
		}
		items = append(items, it)
	}
	return items, nil
}

func loadFile(path string) (Item, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Item{}, err
	}

	if strings.EqualFold(filepath.Ext(path), ".md") {
		fm, ok := frontMatter(raw)
		if !ok {
			return Item{}, fmt.Errorf("no front matter in %s", path)
		}
		raw = fm
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(raw), yaml.Parser()); err != nil {
		return Item{}, err
	}
	var it Item
	if err := k.Unmarshal("", &it); err != nil {
		return Item{}, err
	}
	return it, nil
}

// frontMatter extracts the YAML block between the leading "---" fence and
// the next one.  Returns false when the file carries no front matter.
func frontMatter(raw []byte) ([]byte, bool) {
	trimmed := bytes.TrimPrefix(raw, []byte{0xEF, 0xBB, 0xBF}) // UTF-8 BOM
	trimmed = bytes.TrimLeft(trimmed, "\r\n")
	if !bytes.HasPrefix(trimmed, frontMatterDelim) {
		return nil, false
	}
	rest := trimmed[len(frontMatterDelim):]
	end := bytes.Index(rest, append([]byte("\n"), frontMatterDelim...))
	if end < 0 {
		return nil, false
	}
	return rest[:end], true
}
