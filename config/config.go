// Package config loads the settings of gopherlogic from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/crillab/gopherlogic/display"
	"github.com/crillab/gopherlogic/truth"
	"github.com/joho/godotenv"
	"github.com/tliron/commonlog"
)

// log is looked up on each use, so that the backend chosen by the program applies.
func log() commonlog.Logger {
	return commonlog.GetLogger("gopherlogic.config")
}

// Environment variables read by FromEnv.
const (
	EnvPath     = "GOPHERLOGIC_ENV_PATH"
	EnvGlyphs   = "GOPHERLOGIC_GLYPHS"
	EnvColor    = "GOPHERLOGIC_COLOR"
	EnvFormat   = "GOPHERLOGIC_FORMAT"
	EnvMaxAtoms = "GOPHERLOGIC_MAX_ATOMS"
)

// DefaultEnvFile is the dotenv file read when no other is named.
const DefaultEnvFile = ".env"

// Config holds the output and evaluation settings.
type Config struct {
	Glyphs   bool // Display logical symbols rather than ASCII operators
	Color    display.ColorMode
	Format   display.Format
	MaxAtoms int
}

// Default returns the settings used when nothing is configured.
func Default() *Config {
	return &Config{
		Glyphs:   true,
		Color:    display.ColorAuto,
		Format:   display.FormatText,
		MaxAtoms: truth.DefaultMaxAtoms,
	}
}

// LoadDotEnv loads environment variables from a dotenv file.
// If path is empty, the file named by GOPHERLOGIC_ENV_PATH is used, or DefaultEnvFile;
// such a default file may be missing. A file explicitly named by path must exist.
// Variables already set in the environment are kept.
func LoadDotEnv(path string) error {
	explicit := path != ""
	if !explicit {
		if path = os.Getenv(EnvPath); path == "" {
			log().Debugf("%s is not set, using default path %q", EnvPath, DefaultEnvFile)
			path = DefaultEnvFile
		}
	}
	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			log().Debugf("skipping missing %q", path)
			return nil
		}
		return fmt.Errorf("could not load %q: %w", path, err)
	}
	log().Infof("loaded environment from %q", path)
	return nil
}

// FromEnv returns the default settings overridden by environment variables.
func FromEnv() (*Config, error) {
	cfg := Default()
	if v := os.Getenv(EnvGlyphs); v != "" {
		switch v {
		case "unicode":
			cfg.Glyphs = true
		case "ascii":
			cfg.Glyphs = false
		default:
			return nil, fmt.Errorf("invalid %s %q (expected unicode or ascii)", EnvGlyphs, v)
		}
	}
	if v := os.Getenv(EnvColor); v != "" {
		m, err := display.ParseColorMode(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvColor, err)
		}
		cfg.Color = m
	}
	if v := os.Getenv(EnvFormat); v != "" {
		f, err := display.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvFormat, err)
		}
		cfg.Format = f
	}
	if v := os.Getenv(EnvMaxAtoms); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > truth.MaxAtoms {
			return nil, fmt.Errorf("invalid %s %q (expected an integer between 1 and %d)", EnvMaxAtoms, v, truth.MaxAtoms)
		}
		cfg.MaxAtoms = n
	}
	return cfg, nil
}

// Load loads the dotenv file at path, then reads the settings from the environment.
func Load(path string) (*Config, error) {
	if err := LoadDotEnv(path); err != nil {
		return nil, err
	}
	return FromEnv()
}
