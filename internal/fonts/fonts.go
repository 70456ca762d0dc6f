// Package fonts supplies the list of font families text strokes may use.
package fonts

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"slices"
	"strings"
)

const (
	// Fallback replaces any family the provider does not list.
	Fallback = "Arial"
	// DefaultSize is the point size used when none is given.
	DefaultSize = 14
)

//go:embed fonts.json
var embedded []byte

// Provider returns the valid font family names.
type Provider interface {
	Fonts() []string
}

// List is a fixed set of family names.
type List []string

// Fonts implements Provider.
func (l List) Fonts() []string { return slices.Clone(l) }

type fontFile struct {
	Fonts []string `json:"fonts"`
}

// Parse reads a {"fonts": [...]} document.
func Parse(data []byte) (List, error) {
	var f fontFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse font list: %w", err)
	}
	return List(f.Fonts), nil
}

// Embedded returns the font list bundled with the program.
func Embedded() List {
	l, err := Parse(embedded)
	if err != nil {
		log.Printf("[FONTS] Bundled font list unreadable: %v", err)
		return List{Fallback}
	}
	return l
}

// LoadFile reads a font list from disk.
func LoadFile(path string) (List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font list: %w", err)
	}
	return Parse(data)
}

// Resolve returns name when p lists it (ignoring case) and Fallback
// otherwise. A nil provider accepts nothing but the fallback.
func Resolve(p Provider, name string) string {
	name = strings.TrimSpace(name)
	if p == nil || name == "" {
		return Fallback
	}
	for _, f := range p.Fonts() {
		if strings.EqualFold(f, name) {
			return f
		}
	}
	return Fallback
}
