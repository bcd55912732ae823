// Package config loads and merges docqa configuration from multiple sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (DOCQA_PROVIDER, DOCQA_MODEL, DOCQA_FORMAT, etc.)
//  3. Config file (./docqa.yaml or $XDG_CONFIG_HOME/docqa/config.yaml)
//  4. Built-in defaults
//
// Layering is handled by koanf providers. Use [Load] to obtain a merged
// [Config], [Save] to persist it, and [SetField] to update a single key.
package config
