package render

import (
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ParseColor resolves a canvas colour string: "#rgb", "#rrggbb" or a
// named colour ("white", "green", ...). ok is false for the empty string
// and for anything unrecognised.
func ParseColor(s string) (c color.RGBA, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return color.RGBA{}, false
	}
	if strings.HasPrefix(s, "#") {
		hex, err := colorful.Hex(s)
		if err != nil {
			return color.RGBA{}, false
		}
		r, g, b := hex.RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 0xff}, true
	}
	named, ok := colornames.Map[strings.ToLower(strings.ReplaceAll(s, " ", ""))]
	return named, ok
}

// ColorOr parses s, returning fallback when s is empty or unknown.
func ColorOr(s string, fallback color.RGBA) color.RGBA {
	if c, ok := ParseColor(s); ok {
		return c
	}
	return fallback
}

// Hex formats c as "#rrggbb".
func Hex(c color.Color) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}
