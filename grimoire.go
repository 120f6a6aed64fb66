// Package grimoire compiles the Grimoire CSS spell/scroll DSL embedded in
// markup into optimized, deduplicated stylesheets.
//
// # Compiling a project
//
// Load a config and run the full pipeline:
//
//	cfg, err := grimoire.LoadConfig("grimoire/config/grimoire.config.json")
//	results, err := grimoire.Build(cfg)
//
// # CLI Tool
//
// grimoire also provides a CLI tool. Install with:
//
//	go install github.com/grimoire-css/grimoire/cmd/grimoire@latest
//
// See spec.md for the full command reference.
package grimoire

import (
	"github.com/grimoire-css/grimoire/internal/grimoire/build"
	"github.com/grimoire-css/grimoire/internal/grimoire/config"
)

// Config is the immutable, fully-merged configuration snapshot Build
// consumes (spec.md §3).
type Config = config.Config

// ProjectResult is one project's compiled output (spec.md §4.9).
type ProjectResult = build.ProjectResult

// LoadConfig reads and validates the primary JSON config at path, merging
// in any grimoire.*.scrolls.json / grimoire.*.variables.json fragments
// discovered alongside it (spec.md §4.1, §6).
func LoadConfig(path string) (*Config, error) {
	return config.Load(path)
}

// Build compiles every project, shared unit, and critical unit named in
// cfg, in order, and updates the file tracker when cfg.Lock is set
// (spec.md §4.9, §4.10).
func Build(cfg *Config) ([]ProjectResult, error) {
	return build.New(cfg).Build()
}

// Public API is exported via cmd/grimoire's command implementations and the
// internal/grimoire/* packages they wire together:
// - LoadConfig(path string) (*Config, error)
// - Build(cfg *Config) ([]ProjectResult, error)
