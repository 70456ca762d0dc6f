// Package export writes renderings of canvas items to image and vector
// files.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"LocalPaint/internal/render"
)

// PNG rasterizes the canvas.
type PNG struct{}

func (PNG) Export(path string, items []render.Item, w, h int, background string) error {
	return render.SavePNG(path, items, w, h, background)
}

// Exporter writes items to a file.
type Exporter interface {
	Export(path string, items []render.Item, w, h int, background string) error
}

// All returns every exporter keyed by format name.
func All() map[string]Exporter {
	return map[string]Exporter{
		"png": PNG{},
		"pdf": PDF{},
		"svg": SVG{},
		"eps": EPS{},
	}
}

// NextFreeName returns the first path dir/<base><i><ext>, counting i from
// 1, that does not exist yet.
func NextFreeName(dir, base, ext string) (string, error) {
	for i := 1; ; i++ {
		path := filepath.Join(dir, fmt.Sprintf("%s%d%s", base, i, ext))
		_, err := os.Stat(path)
		if errors.Is(err, os.ErrNotExist) {
			return path, nil
		}
		if err != nil {
			return "", fmt.Errorf("stat %s: %w", path, err)
		}
	}
}

// box is the normalized box of a two-corner item.
func box(it render.Item) (x0, y0, x1, y1 float64) {
	a, b := it.Points[0], it.Points[1]
	return float64(min(a.X, b.X)), float64(min(a.Y, b.Y)), float64(max(a.X, b.X)), float64(max(a.Y, b.Y))
}

// dashArray is the on/off pattern of an outline, empty when solid.
func dashArray(s render.Style) []float64 {
	w := float64(max(s.Width, 1))
	switch s.Dash {
	case render.DashDashed:
		return []float64{4 * w, 2 * w}
	case render.DashDots:
		return []float64{w, 2 * w}
	}
	return []float64{}
}
