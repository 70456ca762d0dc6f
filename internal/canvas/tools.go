package canvas

import (
	"LocalPaint/internal/fonts"
	"LocalPaint/internal/stroke"
)

// Tool is the active drawing mode.
type Tool string

const (
	ToolSelect   Tool = "select"
	ToolFreehand Tool = "freehand"
	ToolRect     Tool = "rect"
	ToolOval     Tool = "oval"
	ToolTriangle Tool = "triangle"
	ToolPolygon  Tool = "polygon"
	ToolText     Tool = "text"
)

// AllTools lists the modes in toolbar order.
var AllTools = []Tool{ToolSelect, ToolFreehand, ToolRect, ToolOval, ToolTriangle, ToolPolygon, ToolText}

// Tools is the tool state owned by the toolbar. The controller reads it
// whenever a new stroke is started.
type Tools struct {
	Mode      Tool
	Color     string
	Fill      string
	Width     int
	LineStyle stroke.LineStyle
	Font      string
	FontSize  int
	Bold      bool
	Italic    bool
}

// DefaultTools is a white 3px pen over a black canvas.
func DefaultTools() *Tools {
	return &Tools{
		Mode:      ToolFreehand,
		Color:     "white",
		Width:     3,
		LineStyle: stroke.LineSolid,
		Font:      fonts.Fallback,
		FontSize:  fonts.DefaultSize,
	}
}

// Style is the paint style new strokes get.
func (t *Tools) Style() stroke.Style {
	return stroke.Style{Color: t.Color, Fill: t.Fill, Width: t.Width, LineStyle: t.LineStyle}
}

// TextFont is the font new text strokes get.
func (t *Tools) TextFont() stroke.Font {
	return stroke.Font{Name: t.Font, Size: t.FontSize, Bold: t.Bold, Italic: t.Italic}
}
