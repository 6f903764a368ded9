// internal/config/model.go
//
// Typed configuration model for the facet build engine.
//
// Context
// -------
// These structs define the shape of the configuration tree that
// `internal/config/loader.go` builds from three overlay layers:
//
//   • optional `.env`                          – dotenv values,
//   • `conf/facets.yaml`                       – primary static file,
//   • `FACETS_`-prefixed environment overrides – highest precedence.
//
// Any value whose string begins with the prefix `vault:` is resolved
// through the Vault client by the caller *before* use, so secrets stay
// out of flat files and git history.
//
// Validation happens immediately after unmarshal; the binary fails fast
// if required fields are missing.
//
// Notes
// -----
//   • Struct tags use `koanf:"…"`, not `yaml:"…"`—Koanf ignores `yaml` tags
//     unless configured otherwise.
//   • The `Paths` block is filled at runtime; YAML must not try to set it.
//   • Oxford commas, two spaces after periods.  No em-dash.

package config

//
// Site section
//

// Site holds URL conventions for generated pages.
type Site struct {
	// SearchBase is the flat search page that carries filter state in its
	// URL fragment.
	SearchBase string `koanf:"search_base" validate:"required,startswith=/"`
}

//
// Build section
//

// Build holds the batch-pass tunables.
type Build struct {
	ContentDir string `koanf:"content_dir" validate:"required"`
	OutputDir  string `koanf:"output_dir"  validate:"required"`

	// MaxPairsPerItem bounds the per-item subset enumeration; see
	// internal/facet/combo.go.  Zero means the engine default.
	MaxPairsPerItem int `koanf:"max_pairs_per_item" validate:"gte=0,lte=20"`

	// Categories lists the category slugs to build scoped catalogs for.
	// Empty means derive the list from item category membership.
	Categories []string `koanf:"categories"`
}

//
// Database section (optional item source)
//

// Database configures the optional MySQL item source.  The *template*
// (`DSN`) is kept in YAML so operators can tweak host, port, or flags
// without touching Vault.  The *secret* portion (`Password`) may be a
// `vault:mount/path#key` reference resolved at startup.
type Database struct {
	DSN      string `koanf:"dsn"`
	Password string `koanf:"password"`
}

// Enabled reports whether an item database was configured at all.
func (d Database) Enabled() bool { return d.DSN != "" }

//
// Preview section
//

// Preview holds the dev preview-server tunables.
type Preview struct {
	ListenAddr string `koanf:"listen_addr" validate:"required,hostname_port"`
}

//
// Paths section (runtime only)
//

// Paths is resolved at runtime—never set in YAML or env.  The loader
// discovers `Root` (repo root or FACETS_ROOT override) so later code can
// build absolute file paths.
type Paths struct {
	Root string // FACETS_ROOT or discovered parent
}

//
// Root aggregate
//

// Config is the immutable aggregate returned by Load() and cached in an
// atomic.Pointer for lock-free reads throughout the process lifetime.
type Config struct {
	Site     Site     `koanf:"site"`
	Build    Build    `koanf:"build"`
	Database Database `koanf:"database"`
	Preview  Preview  `koanf:"preview"`
	Paths    Paths    `koanf:"-"` // not loaded from config files
}
