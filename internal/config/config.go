// Package config reads operator defaults from the environment and an
// optional .env file. Command-line flags override everything here.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/roach88/enigma/internal/keysheet"
	"github.com/roach88/enigma/internal/operator"
)

// Environment variable names.
const (
	EnvRotorOrder     = "ENIGMA_ROTOR_ORDER"
	EnvRingSettings   = "ENIGMA_RING_SETTINGS"
	EnvRotorPositions = "ENIGMA_ROTOR_POSITIONS"
	EnvPlugboardPairs = "ENIGMA_PLUGBOARD_PAIRS"
	EnvGroupSize      = "ENIGMA_GROUP_SIZE"
	EnvJournal        = "ENIGMA_JOURNAL"
)

// Defaults used when neither the environment nor a flag sets a value.
const (
	DefaultRotorOrder     = "I,II,III"
	DefaultRingSettings   = "01,01,01"
	DefaultRotorPositions = "EAB"
)

// Config holds the operator defaults read from .env and the environment.
type Config struct {
	// Key is unvalidated; callers parse it after applying flag overrides.
	Key       keysheet.Raw
	GroupSize int
	Journal   string
}

// Load reads .env from the working directory, if present, and then the
// environment. Variables already set in the environment win over .env.
func Load() (*Config, error) {
	return LoadFiles()
}

// LoadFiles is Load with explicit .env paths. Missing files are ignored.
func LoadFiles(files ...string) (*Config, error) {
	var existing []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(files) == 0 || len(existing) > 0 {
		_ = godotenv.Load(existing...)
	}

	groupSize := operator.DefaultGroupSize
	if raw := strings.TrimSpace(os.Getenv(EnvGroupSize)); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%s: want a non-negative integer, got %q", EnvGroupSize, raw)
		}
		groupSize = n
	}

	return &Config{
		Key: keysheet.Raw{
			RotorOrder:     firstNonEmpty(strings.TrimSpace(os.Getenv(EnvRotorOrder)), DefaultRotorOrder),
			RingSettings:   firstNonEmpty(strings.TrimSpace(os.Getenv(EnvRingSettings)), DefaultRingSettings),
			RotorPositions: firstNonEmpty(strings.TrimSpace(os.Getenv(EnvRotorPositions)), DefaultRotorPositions),
			PlugboardPairs: strings.TrimSpace(os.Getenv(EnvPlugboardPairs)),
		},
		GroupSize: groupSize,
		Journal:   strings.TrimSpace(os.Getenv(EnvJournal)),
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
