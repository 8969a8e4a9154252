// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package config loads conformance run settings from TOML.
package config

import (
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/ezrec/isaconform/cpu"
	"github.com/ezrec/isaconform/driver"
	"github.com/ezrec/isaconform/suite"
)

// Config holds the settings of a conformance run.
type Config struct {
	StepLimit        uint64   `toml:"step_limit"`        // Clock steps before a case times out; 0 is unbounded.
	InstructionWidth uint64   `toml:"instruction_width"` // Program counter units per instruction.
	Policy           string   `toml:"policy"`            // "run-every" or "stop-on-failure".
	Color            bool     `toml:"color"`             // Colored console output.
	Log              bool     `toml:"log"`               // Structured log output on stderr.
	Verbose          bool     `toml:"verbose"`           // Verbose tracing.
	Catalogs         []string `toml:"catalogs"`          // Extra catalog files.
	Builtin          bool     `toml:"builtin"`           // Include the built-in catalog.
	Tests            []string `toml:"tests"`             // Run only these tests, in this order.
	MemorySize       uint     `toml:"memory_size"`       // Reference device memory, in bytes.
}

// Default returns the default settings.
func Default() *Config {
	return &Config{
		StepLimit:        driver.DEFAULT_STEP_LIMIT,
		InstructionWidth: driver.DEFAULT_INSTRUCTION_WIDTH,
		Policy:           "run-every",
		Color:            true,
		Builtin:          true,
		MemorySize:       cpu.MEMORY_SIZE,
	}
}

// RunPolicy returns the suite policy named by the settings.
func (cfg *Config) RunPolicy() (suite.Policy, error) {
	return suite.ParsePolicy(cfg.Policy)
}

// Decode reads TOML over the current settings. Keys not present keep their
// value; unknown keys and unknown policies are errors.
func (cfg *Config) Decode(input io.Reader) (err error) {
	md, err := toml.NewDecoder(input).Decode(cfg)
	if err != nil {
		return
	}

	undecoded := md.Undecoded()
	if len(undecoded) != 0 {
		err = &ErrKeys{Keys: undecoded}
		return
	}

	_, err = cfg.RunPolicy()
	return
}

// Load reads the default settings, overlaid with a TOML file.
func Load(path string) (cfg *Config, err error) {
	cfg = Default()

	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	err = cfg.Decode(inf)
	if err != nil {
		err = &ErrFile{Path: path, Err: err}
	}
	return
}
