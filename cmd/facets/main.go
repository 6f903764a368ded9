// cmd/facets/main.go
//
// Facet build pass – batch entry point.
//
// Build life-cycle
// ----------------
//
//  1. Load env vars (jail-wide file → .env fallback).
//
//  2. Start daily rotating logger (tees to console when running in a TTY).
//
//  3. Load and validate conf/facets.yaml (+ FACETS_ env overlay).
//
//  4. Resolve any vault: secret references (item-database password).
//
//  5. Load the item snapshot: content directory first, then the optional
//     MySQL source appended after it.
//
//  6. Run one collections build pass and write the JSON collections under
//     the output directory for the templating layer.
//
// Large comment blocks are framed by blank “//” lines; inline comments use
// a single “//”.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/chobbledotcom/chobble-facets/internal/collections"
	"github.com/chobbledotcom/chobble-facets/internal/config"
	"github.com/chobbledotcom/chobble-facets/internal/database"
	"github.com/chobbledotcom/chobble-facets/internal/item"
	"github.com/chobbledotcom/chobble-facets/internal/logger"
	"github.com/chobbledotcom/chobble-facets/internal/metrics"
	"github.com/chobbledotcom/chobble-facets/internal/vault"
)

const serverEnvPath = "/usr/local/etc/chobble-facets/global.env"

// loadEnv prefers the jail-wide env file; on dev it falls back to .env.
func loadEnv() {
	if _, err := os.Stat(serverEnvPath); err == nil {
		_ = godotenv.Load(serverEnvPath)
		return
	}
	_ = godotenv.Load()
}

// runningInTTY returns true when stdout is a character device.
func runningInTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func init() { loadEnv() }

func main() {
	rootDir, _ := os.Getwd()
	logOut, err := logger.New(rootDir, runningInTTY())
	if err != nil {
		log.Fatalf("start logger: %v", err)
	}

	if err := run(logOut); err != nil {
		metrics.BuildErrorsTotal.Inc()
		logOut.Fatalw("build failed", "err", err)
	}
}

func run(logOut *zap.SugaredLogger) error {
	ctx := context.Background()

	//
	// ── 1.  Config ──────────────────────────────────────────────────────
	//
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	//
	// ── 2.  Item snapshot: content dir, then optional database ────────
	//
	items, err := item.LoadDir(cfg.Build.ContentDir)
	if err != nil {
		return fmt.Errorf("load content items: %w", err)
	}
	logOut.Infow("content items loaded", "count", len(items))

	if cfg.Database.Enabled() {
		dbItems, err := loadDatabaseItems(ctx, cfg)
		if err != nil {
			return err
		}
		logOut.Infow("database items loaded", "count", len(dbItems))
		items = append(items, dbItems...)
	}

	//
	// ── 3.  Build pass ──────────────────────────────────────────────────
	//
	builder := collections.Builder{
		MaxPairsPerItem: cfg.Build.MaxPairsPerItem,
		Categories:      cfg.Build.Categories,
		SearchBase:      cfg.Site.SearchBase,
	}
	out, err := builder.Build(ctx, items)
	if err != nil {
		return fmt.Errorf("build collections: %w", err)
	}

	//
	// ── 4.  Materialise ────────────────────────────────────────────────
	//
	if err := out.WriteJSON(cfg.Build.OutputDir); err != nil {
		return fmt.Errorf("write collections: %w", err)
	}

	logOut.Infow("build complete",
		"output", cfg.Build.OutputDir,
		"filter_pages", len(out.FilterPages),
		"categories", len(out.CategoryPages),
		"redirects", len(out.Redirects),
	)
	return nil
}

// loadDatabaseItems connects to the optional MySQL item source, resolving
// a vault: password reference when configured.  The DSN is a template with
// one %s slot for the password; when no password is set it is used as-is.
func loadDatabaseItems(ctx context.Context, cfg *config.Config) ([]item.Item, error) {
	dsn := cfg.Database.DSN

	if password := cfg.Database.Password; password != "" {
		if vault.IsRef(password) {
			cli, err := vault.New(ctx, log.Printf)
			if err != nil {
				return nil, fmt.Errorf("vault client: %w", err)
			}
			password, err = cli.Resolve(ctx, password, 5*time.Minute)
			if err != nil {
				return nil, fmt.Errorf("resolve db password: %w", err)
			}
		}
		dsn = fmt.Sprintf(dsn, password)
	}

	db, err := database.Open(dsn)
	if err != nil {
		return nil, fmt.Errorf("connect item db: %w", err)
	}
	defer db.Close()

	return item.AllItems(ctx, db)
}
