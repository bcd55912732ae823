// Package cli implements the docqa command tree: analyze, transcript,
// compare, rules, config, cache, models, serve, and version. Commands set a
// package-level exit code instead of calling os.Exit so [Run] can return it.
package cli
