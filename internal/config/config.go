// Package config loads LocalPaint settings from a TOML file.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	"LocalPaint/internal/fonts"
	"LocalPaint/internal/render"
	"LocalPaint/internal/stroke"
)

// Canvas holds the drawing surface settings.
type Canvas struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Background string `toml:"background"`
}

// Pen holds the initial tool settings.
type Pen struct {
	Color     string `toml:"color"`
	Fill      string `toml:"fill"`
	Width     int    `toml:"width"`
	LineStyle string `toml:"line_style"`
	Font      string `toml:"font"`
	FontSize  int    `toml:"font_size"`
}

// Mirror holds the live view server settings.
type Mirror struct {
	Enabled bool   `toml:"enabled"`
	Port    int    `toml:"port"`
	Name    string `toml:"name"`
}

// Config holds the application configuration.
type Config struct {
	SaveDir      string `toml:"save_dir"`
	FontList     string `toml:"font_list"`
	HistoryLimit int    `toml:"history_limit"`
	Canvas       Canvas `toml:"canvas"`
	Pen          Pen    `toml:"pen"`
	Mirror       Mirror `toml:"mirror"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		SaveDir: ".",
		Canvas:  Canvas{Width: 640, Height: 480, Background: "black"},
		Pen: Pen{
			Color:     "white",
			Width:     3,
			LineStyle: string(stroke.LineSolid),
			Font:      fonts.Fallback,
			FontSize:  fonts.DefaultSize,
		},
		Mirror: Mirror{Port: 8888, Name: "LocalPaint"},
	}
}

// Parse reads TOML from r on top of the defaults.
func Parse(r io.Reader) (*Config, error) {
	cfg := New()
	md, err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("parse config: unknown keys %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("canvas size %dx%d must be positive", c.Canvas.Width, c.Canvas.Height)
	}
	if _, ok := render.ParseColor(c.Canvas.Background); !ok {
		return fmt.Errorf("canvas background %q is not a colour", c.Canvas.Background)
	}
	if c.Pen.Width < 1 {
		return fmt.Errorf("pen width %d must be at least 1", c.Pen.Width)
	}
	if _, ok := stroke.ParseLineStyle(c.Pen.LineStyle); !ok {
		return fmt.Errorf("pen line style %q is not one of SOLID, DASHED, DOTS", c.Pen.LineStyle)
	}
	if c.Mirror.Port < 0 || c.Mirror.Port > 65535 {
		return fmt.Errorf("mirror port %d out of range", c.Mirror.Port)
	}
	if c.HistoryLimit < 0 {
		return fmt.Errorf("history limit %d must not be negative", c.HistoryLimit)
	}
	return nil
}

// String returns the configuration in TOML form.
func (c *Config) String() string {
	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(c); err != nil {
		return fmt.Sprintf("# %v\n", err)
	}
	return sb.String()
}
