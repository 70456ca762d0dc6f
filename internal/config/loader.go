package config

import (
	"log"
	"os"
	"path/filepath"
)

// FileName is the config file looked up in the working directory.
const FileName = "localpaint.toml"

// Loader finds and reads the config file.
type Loader struct {
	OverridePath string // -config flag
}

// NewLoader creates a Loader.
func NewLoader(overridePath string) *Loader {
	return &Loader{OverridePath: overridePath}
}

// Load reads the first config file found, or returns defaults when there
// is none. An explicit override that does not exist is an error.
func (l *Loader) Load() (*Config, error) {
	if l.OverridePath != "" {
		if _, err := os.Stat(l.OverridePath); err != nil {
			return nil, err
		}
	}
	path := l.ConfigPath()
	if path == "" {
		return New(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, err
	}
	log.Printf("[CONFIG] Loaded %s", path)
	return cfg, nil
}

// ConfigPath returns the path of the config file to use, or "".
func (l *Loader) ConfigPath() string {
	if l.OverridePath != "" {
		if _, err := os.Stat(l.OverridePath); err == nil {
			return l.OverridePath
		}
	}

	wd, _ := os.Getwd()
	local := filepath.Join(wd, FileName)
	if _, err := os.Stat(local); err == nil {
		return local
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	xdg := filepath.Join(home, ".config", "localpaint", "config.toml")
	if _, err := os.Stat(xdg); err == nil {
		return xdg
	}
	return ""
}
