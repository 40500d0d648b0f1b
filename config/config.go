// Package config loads Cleric's optional cleric.toml: a gcc path override,
// the default stop-after-phase, and extra flags for the assembler/linker
// step. The default/load/platform-path shape follows
// lookbusy1344-arm_emulator/config/config.go — DefaultConfig, GetConfigPath
// by OS, LoadFrom falling back to defaults when the file is absent — scaled
// down from that emulator's five config sections to Cleric's much smaller
// surface.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config is Cleric's optional user configuration.
type Config struct {
	Toolchain struct {
		GCCPath          string   `toml:"gcc_path"`
		AssemblerFlags   []string `toml:"assembler_flags"`
		LinkerFlags      []string `toml:"linker_flags"`
	} `toml:"toolchain"`

	Pipeline struct {
		DefaultStopPhase string `toml:"default_stop_phase"` // "", "lex", "parse", "validate", "tac", "codegen"
	} `toml:"pipeline"`
}

// DefaultConfig returns Cleric's built-in defaults: plain "gcc" on PATH, no
// extra flags, and run the full pipeline.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Toolchain.GCCPath = "gcc"
	cfg.Pipeline.DefaultStopPhase = ""
	return cfg
}

// GetConfigPath returns the platform-specific path cleric.toml is read
// from: ~/.config/cleric/cleric.toml on macOS/Linux,
// %APPDATA%\cleric\cleric.toml on Windows, and "cleric.toml" in the
// current directory otherwise.
func GetConfigPath() string {
	var dir string
	switch runtime.GOOS {
	case "windows":
		dir = os.Getenv("APPDATA")
		if dir == "" {
			dir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		dir = filepath.Join(dir, "cleric")
	case "darwin", "linux":
		home, err := os.UserHomeDir()
		if err != nil {
			return "cleric.toml"
		}
		dir = filepath.Join(home, ".config", "cleric")
	default:
		return "cleric.toml"
	}
	return filepath.Join(dir, "cleric.toml")
}

// Load reads the default config path, returning built-in defaults if no
// file exists there.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom reads and decodes the TOML file at path, returning built-in
// defaults (not an error) if the file does not exist.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}
