// Package config loads the static project configuration a DSL-driven build
// reads before constructing a game.Game: ROM target parameters, an OAM
// budget override, and output paths. It is TOML-based, following the
// promotion of github.com/BurntSushi/toml from an indirect to a direct,
// load-bearing dependency (see the design notes on the ambient stack).
package config

import (
	"fmt"
	"log"
	"os"

	"github.com/BurntSushi/toml"
)

var logger = log.New(os.Stderr, "gbcc/config: ", log.LstdFlags)

// BuildConfig describes one project's static build parameters.
type BuildConfig struct {
	Name        string `toml:"name"`
	GBCSupport  bool   `toml:"gbc_support"`
	OAMBudget   int    `toml:"oam_budget"`
	StartScene  string `toml:"start_scene"`
	OutputPath  string `toml:"output_path"`
	ManifestDir string `toml:"manifest_dir"`
}

// defaultOAMBudget is the hardware OAM slot count the validator checks
// against unless a project overrides it.
const defaultOAMBudget = 40

// Load reads and parses a project TOML config file. Missing optional fields
// fall back to hardware defaults; a missing or malformed file is returned
// as an error, never logged and swallowed.
func Load(path string) (*BuildConfig, error) {
	cfg := &BuildConfig{OAMBudget: defaultOAMBudget}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to load %q: %w", path, err)
	}
	if cfg.Name == "" {
		return nil, fmt.Errorf("config: %q is missing required field \"name\"", path)
	}
	if cfg.OAMBudget <= 0 {
		logger.Printf("config %q: oam_budget %d is non-positive, falling back to %d", path, cfg.OAMBudget, defaultOAMBudget)
		cfg.OAMBudget = defaultOAMBudget
	}
	return cfg, nil
}
