// internal/config/validator.go
//
// Thin wrapper around go-playground/validator.
//
// Context
// -------
// `internal/config/loader.go` calls `validateStruct` immediately after it
// unmarshals and defaults the merged Koanf tree into a `Config` instance.
// Any tag mismatch or validation error aborts startup, ensuring a build
// never runs with partial, malformed, or missing configuration — half a
// config would mean half a site with permanent URLs missing.
//
// The built-in rules in use are `required`, `startswith`, `hostname_port`,
// and the numeric range on `Build.MaxPairsPerItem`.  Custom rules — e.g.,
// category-slug pattern checks — can be registered here as the
// configuration surface grows.
//
// Notes
// -----
//   • Oxford commas, two spaces after periods.

package config

import "github.com/go-playground/validator/v10"

//
// validator instance (package-level singleton)
//

var v = validator.New()

//
// public API
//

// validateStruct returns the first validation error, or nil on success.
func validateStruct(c *Config) error {
	return v.Struct(c)
}
