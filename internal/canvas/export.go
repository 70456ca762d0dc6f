package canvas

import (
	"errors"
	"fmt"
	"log"
	"slices"
	"strings"

	"LocalPaint/internal/render"
)

var (
	// ErrUnknownFormat is returned for an export format with no exporter.
	ErrUnknownFormat = errors.New("unknown export format")
	// ErrNothingToExport is returned when the board is empty.
	ErrNothingToExport = errors.New("nothing to export")
)

// Exporter writes a rendering of the board to a file.
type Exporter interface {
	Export(path string, items []render.Item, w, h int, background string) error
}

// ExporterFunc adapts a function to Exporter.
type ExporterFunc func(path string, items []render.Item, w, h int, background string) error

func (f ExporterFunc) Export(path string, items []render.Item, w, h int, background string) error {
	return f(path, items, w, h, background)
}

// Formats lists the registered export formats, sorted.
func (c *Controller) Formats() []string {
	out := make([]string, 0, len(c.exporters))
	for f := range c.exporters {
		out = append(out, f)
	}
	slices.Sort(out)
	return out
}

// Items renders the board onto a private display list and returns its
// items. Selection outlines and other interaction artifacts are left out.
func (c *Controller) Items() []render.Item {
	var m render.Measurer
	if d, ok := c.surface.(*render.DisplayList); ok {
		m = d.Measurer()
	}
	scratch := render.NewDisplayList(m)
	for _, s := range c.board.Strokes() {
		clone := s.Clone()
		clone.Attach(scratch)
		clone.Paint()
	}
	return scratch.Items()
}

// Export writes the board in format to path.
func (c *Controller) Export(format, path string) error {
	format = strings.ToLower(strings.TrimPrefix(format, "."))
	e, ok := c.exporters[format]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	c.settle()
	if c.board.Len() == 0 {
		return ErrNothingToExport
	}
	if err := e.Export(path, c.Items(), c.width, c.height, c.background); err != nil {
		return fmt.Errorf("export %s: %w", format, err)
	}
	log.Printf("[CANVAS] Exported %d strokes as %s to %s", c.board.Len(), format, path)
	return nil
}
