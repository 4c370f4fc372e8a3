package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, e := Load("")
	require.Nil(t, e)

	assert.Equal(t, "2024_US_County_Level_Presidential_Results.csv", cfg.ElectionFile)
	assert.Equal(t, "2022", cfg.Year)
	assert.Equal(t, ".", cfg.OutputDir)
	assert.NotEmpty(t, cfg.CensusURL)
	assert.NotEmpty(t, cfg.NassURL)
	assert.NotEmpty(t, cfg.BoundaryURL)
}

func TestLoadFile(t *testing.T) {
	body := "election_file: results.csv\nyear: \"2017\"\noutput_dir: out\n"
	path := filepath.Join(t.TempDir(), "soybean.yaml")
	require.Nil(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, e := Load(path)
	require.Nil(t, e)

	assert.Equal(t, "results.csv", cfg.ElectionFile)
	assert.Equal(t, "2017", cfg.Year)
	assert.Equal(t, "out", cfg.OutputDir)
	// unset keys keep their defaults
	assert.Equal(t, Default().CensusURL, cfg.CensusURL)
}

func TestLoadMissingNamedFile(t *testing.T) {
	_, e := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.NotNil(t, e)
}

func TestLoadKeys(t *testing.T) {
	t.Setenv("CENSUS_API", "abc")
	t.Setenv("AG_API", "")

	keys, e := LoadKeys()
	require.Nil(t, e)

	assert.Equal(t, "abc", keys.Census)
	assert.Empty(t, keys.Ag)
}
