// cmd/preview/main.go
//
// Local preview of the generated site.
//
// Boot sequence
// -------------
//
//  1. Load env vars (jail-wide file → .env fallback).
//
//  2. Start daily rotating logger (tees to console when running in a TTY).
//
//  3. Load and validate conf/facets.yaml (+ FACETS_ env overlay).
//
//  4. Serve the output directory: redirect replay first, then security
//     headers, /metrics, and a plain file server.
//
// The preview never filters at request time; it only serves what the
// build pass materialised.
package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/chobbledotcom/chobble-facets/internal/config"
	"github.com/chobbledotcom/chobble-facets/internal/logger"
	"github.com/chobbledotcom/chobble-facets/internal/preview"
	"github.com/chobbledotcom/chobble-facets/internal/server"
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

	cfg, err := config.Load()
	if err != nil {
		logOut.Fatalw("load config", "err", err)
	}

	srv := preview.New(cfg)
	logOut.Infow("preview online",
		"addr", cfg.Preview.ListenAddr,
		"root", cfg.Build.OutputDir,
	)

	if err := server.Run(context.Background(), srv); err != nil {
		logOut.Fatalw("preview server stopped", "err", err)
	}
	logOut.Infow("preview shut down cleanly")
}
