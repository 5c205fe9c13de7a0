// Package config loads the optional kinship.toml site configuration.
//
// Every field has a working default, so running without a config file
// is fully supported; a missing file is not an error. Command-line
// flags override file values where both exist.
package config

import (
	"io/fs"
	"os"
	"path/filepath"

	stderrors "errors"

	"github.com/BurntSushi/toml"

	"github.com/northhaven/kinship/pkg/errors"
	"github.com/northhaven/kinship/pkg/pedigree"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = "kinship.toml"

// Config holds the site configuration.
type Config struct {
	// Title is the site title shown in page headers and the home page.
	Title string `toml:"title"`

	// Listen is the web server bind address.
	Listen string `toml:"listen"`

	// DataDir holds people.json and events.json.
	DataDir string `toml:"data_dir"`

	// MaxGenerations bounds pedigree traversal depth.
	MaxGenerations int `toml:"max_generations"`

	// Intro is markdown shown on the home page.
	Intro string `toml:"intro"`

	// Acknowledgments is markdown shown on the sources page.
	Acknowledgments string `toml:"acknowledgments"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Title:          "Beverage Family of North Haven, Maine",
		Listen:         ":8080",
		DataDir:        "data",
		MaxGenerations: pedigree.DefaultMaxGenerations,
		Intro: "Welcome to the Beverage family genealogy site! This project traces " +
			"the lineage of the Beverage (Beveridge) family from modern-day members " +
			"back to the 18th century founders on North Haven Island, Maine.",
		Acknowledgments: "### Major Sources\n" +
			"- Cemetery memorials and gravestone inscriptions (via Find A Grave)\n" +
			"- Hancock and Knox County land deed abstracts\n" +
			"- Obituaries from Maine newspapers and funeral homes\n" +
			"- Family research notes compiled by descendants\n",
	}
}

// Load reads the config file at path, applying defaults for absent
// fields. A missing file yields the defaults with no error; a file that
// exists but does not decode yields an INVALID_CONFIG error, since a
// present-but-broken config is an operator mistake worth stopping for.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode %s", path)
	}
	if cfg.MaxGenerations < 0 {
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "max_generations must not be negative: %d", cfg.MaxGenerations)
	}
	return cfg, nil
}

// PeoplePath returns the path of the people source file.
func (c Config) PeoplePath() string {
	return filepath.Join(c.DataDir, "people.json")
}

// EventsPath returns the path of the events source file.
func (c Config) EventsPath() string {
	return filepath.Join(c.DataDir, "events.json")
}
