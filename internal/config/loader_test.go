// internal/config/loader_test.go
//
// Unit-tests for the three-layer config loader.
//
// Run: go test ./internal/config -v

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/chobbledotcom/chobble-facets/internal/facet"
)

func writeConf(t *testing.T, body string) string {
	t.Helper()
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "conf"), 0o755); err != nil {
		t.Fatalf("mkdir conf: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "conf", "facets.yaml"), []byte(body), 0o644); err != nil {
		t.Fatalf("write facets.yaml: %v", err)
	}
	return root
}

func TestLoadAppliesDefaults(t *testing.T) {
	root := writeConf(t, `
build:
  content_dir: content/items
  output_dir: _site
`)
	t.Setenv("FACETS_ROOT", root)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Site.SearchBase != "/search/" {
		t.Errorf("search base default = %q", cfg.Site.SearchBase)
	}
	if cfg.Build.MaxPairsPerItem != facet.MaxPairsPerItem {
		t.Errorf("max pairs default = %d", cfg.Build.MaxPairsPerItem)
	}
	if cfg.Preview.ListenAddr != "localhost:8080" {
		t.Errorf("preview addr default = %q", cfg.Preview.ListenAddr)
	}
	if cfg.Paths.Root != root {
		t.Errorf("root = %q, want %q", cfg.Paths.Root, root)
	}
	if cfg.Database.Enabled() {
		t.Error("database must be disabled when no DSN is set")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	root := writeConf(t, `
build:
  content_dir: content/items
  output_dir: _site
`)
	t.Setenv("FACETS_ROOT", root)
	t.Setenv("FACETS_BUILD__OUTPUT_DIR", "public")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Build.OutputDir != "public" {
		t.Errorf("env override lost: output_dir = %q", cfg.Build.OutputDir)
	}
}

func TestLoadRejectsIncompleteConfig(t *testing.T) {
	root := writeConf(t, `
build:
  output_dir: _site
`)
	t.Setenv("FACETS_ROOT", root)

	if _, err := Load(); err == nil {
		t.Fatal("missing content_dir must fail validation")
	}
}

func TestLoadRejectsBadListenAddr(t *testing.T) {
	root := writeConf(t, `
build:
  content_dir: content/items
  output_dir: _site
preview:
  listen_addr: "not a hostport"
`)
	t.Setenv("FACETS_ROOT", root)

	if _, err := Load(); err == nil {
		t.Fatal("malformed listen_addr must fail validation")
	}
}
