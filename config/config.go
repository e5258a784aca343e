// Package config holds run configuration: defaults, size-list parsing, and
// optional YAML or JSON config files.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Dawit-Getachew/In-place-benchmark/scenario"
)

// Defaults shared with the benchmark's sibling implementations so runs are
// comparable out of the box.
const (
	DefaultReps    = 3
	DefaultSeed    = 42
	DefaultOutfile = "results.csv"
)

// DefaultSizes returns the default array-size sweep.
func DefaultSizes() []int {
	return []int{10_000, 100_000, 1_000_000}
}

// Config is the fully resolved run configuration handed to the harness.
type Config struct {
	Sizes     []int
	Scenarios []string
	Impls     []string
	Reps      int
	Seed      int64
	Outfile   string
	SQLite    string
}

// Default returns the configuration used when no flags or file are given:
// the full scenario catalogue against the slice implementation.
func Default() Config {
	return Config{
		Sizes:     DefaultSizes(),
		Scenarios: scenario.Names(),
		Impls:     []string{"slice"},
		Reps:      DefaultReps,
		Seed:      DefaultSeed,
		Outfile:   DefaultOutfile,
	}
}

// ParseSizes parses a comma-separated size list with k/K, m/M, and g/G
// decimal suffix multipliers, so "2.5m" is 2500000. Malformed tokens are
// dropped rather than failing the run; an empty result means the caller
// should fall back to the default list.
func ParseSizes(s string) []int {
	var out []int
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}

		mult := 1.0
		switch {
		case strings.HasSuffix(tok, "k"), strings.HasSuffix(tok, "K"):
			tok, mult = tok[:len(tok)-1], 1e3
		case strings.HasSuffix(tok, "m"), strings.HasSuffix(tok, "M"):
			tok, mult = tok[:len(tok)-1], 1e6
		case strings.HasSuffix(tok, "g"), strings.HasSuffix(tok, "G"):
			tok, mult = tok[:len(tok)-1], 1e9
		}

		f, err := strconv.ParseFloat(tok, 64)
		if err != nil || f < 0 {
			continue
		}
		out = append(out, int(f*mult))
	}
	return out
}

// fileConfig mirrors the flag surface of the run command.
type fileConfig struct {
	Ns        string   `yaml:"ns" json:"ns"`
	Reps      int      `yaml:"reps" json:"reps"`
	Seed      *int64   `yaml:"seed" json:"seed"`
	Impls     []string `yaml:"impls" json:"impls"`
	Scenarios []string `yaml:"scenarios" json:"scenarios"`
	Outfile   string   `yaml:"outfile" json:"outfile"`
	SQLite    string   `yaml:"sqlite" json:"sqlite"`
}

// LoadFile reads a YAML or JSON config file, chosen by extension, and
// applies it over base. Fields absent from the file keep base's values.
func LoadFile(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return base, fmt.Errorf("parse YAML: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &fc); err != nil {
			return base, fmt.Errorf("parse JSON: %w", err)
		}
	default:
		return base, fmt.Errorf("unsupported config format %q", ext)
	}

	cfg := base
	if fc.Ns != "" {
		if sizes := ParseSizes(fc.Ns); len(sizes) > 0 {
			cfg.Sizes = sizes
		}
	}
	if fc.Reps > 0 {
		cfg.Reps = fc.Reps
	}
	if fc.Seed != nil {
		cfg.Seed = *fc.Seed
	}
	if len(fc.Impls) > 0 {
		cfg.Impls = fc.Impls
	}
	if len(fc.Scenarios) > 0 {
		cfg.Scenarios = fc.Scenarios
	}
	if fc.Outfile != "" {
		cfg.Outfile = fc.Outfile
	}
	if fc.SQLite != "" {
		cfg.SQLite = fc.SQLite
	}

	return cfg, nil
}
