// Package config loads the run configuration and the API credentials.
// Settings come from an optional YAML file over built-in defaults;
// credentials come from the environment (optionally via a .env file),
// read once at process start and read-only after.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/invertedv/soybean/census"
	"github.com/invertedv/soybean/geo"
	"github.com/invertedv/soybean/nass"
)

// Config is the run configuration.
type Config struct {
	ElectionFile string `yaml:"election_file"`
	Year         string `yaml:"year"`
	OutputDir    string `yaml:"output_dir"`
	CensusURL    string `yaml:"census_url"`
	NassURL      string `yaml:"nass_url"`
	BoundaryURL  string `yaml:"boundary_url"`
	LogLevel     string `yaml:"log_level"`
}

// Keys holds the per-source API credentials. An absent key disables that
// source for the run; it never aborts the process.
type Keys struct {
	Census string `envconfig:"CENSUS_API"`
	Ag     string `envconfig:"AG_API"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		ElectionFile: "2024_US_County_Level_Presidential_Results.csv",
		Year:         nass.DefaultYear,
		OutputDir:    ".",
		CensusURL:    census.DefaultURL,
		NassURL:      nass.DefaultURL,
		BoundaryURL:  geo.DefaultBoundaryURL,
		LogLevel:     "info",
	}
}

// Load returns the defaults overlaid with the YAML file at path. An empty
// path means defaults only; a named file that can't be read or parsed is
// an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, e := os.ReadFile(path)
	if e != nil {
		return nil, e
	}

	if e := yaml.Unmarshal(raw, cfg); e != nil {
		return nil, fmt.Errorf("%s: %w", path, e)
	}

	return cfg, nil
}

// LoadKeys reads the API credentials from the environment, after loading
// a .env file if one is present.
func LoadKeys() (*Keys, error) {
	// a missing .env file is fine; the variables may be set directly
	_ = godotenv.Load()

	keys := &Keys{}
	if e := envconfig.Process("", keys); e != nil {
		return nil, e
	}

	return keys, nil
}
