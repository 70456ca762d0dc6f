// Package stroke holds the drawable entities of a canvas. Each variant owns
// its coordinates and the surface items it painted.
package stroke

import (
	"github.com/google/uuid"

	"LocalPaint/internal/geom"
	"LocalPaint/internal/render"
)

// Kind is the variant tag of a stroke, as written to saved documents.
type Kind string

const (
	KindFreehand          Kind = "FreeStyleStroke"
	KindShape             Kind = "ShapeStroke"
	KindTriangle          Kind = "TriangleStroke"
	KindPolygon           Kind = "PolygonStroke"
	KindText              Kind = "TextStroke"
	KindUnfinishedPolygon Kind = "UnfinishedPolygonStroke"
)

// ShapeKind distinguishes the box-defined shapes.
type ShapeKind string

const (
	ShapeRect     ShapeKind = "RECT"
	ShapeOval     ShapeKind = "OVAL"
	ShapeTriangle ShapeKind = "TRIANGLE"
)

// LineStyle is the outline pattern of a stroke.
type LineStyle string

const (
	LineSolid  LineStyle = "SOLID"
	LineDashed LineStyle = "DASHED"
	LineDots   LineStyle = "DOTS"
)

// ParseLineStyle maps a saved line style name back to a LineStyle. Empty
// input means solid.
func ParseLineStyle(s string) (LineStyle, bool) {
	switch LineStyle(s) {
	case "", LineSolid:
		return LineSolid, true
	case LineDashed, LineDots:
		return LineStyle(s), true
	}
	return "", false
}

func (l LineStyle) dash() render.Dash {
	switch l {
	case LineDashed:
		return render.DashDashed
	case LineDots:
		return render.DashDots
	}
	return render.DashSolid
}

// Style is the paint configuration a stroke is created with.
type Style struct {
	Color     string
	Fill      string
	Width     int
	LineStyle LineStyle
}

// Stroke is one drawable entity. Two strokes are the same only if they are
// the same value; identical fields do not make them equal.
type Stroke interface {
	ID() string
	Kind() Kind
	Points() []geom.Point
	Color() string
	Width() int
	LineStyle() LineStyle

	// Paint removes whatever the stroke drew before and draws it again.
	Paint()
	// Move translates every coordinate and repaints.
	Move(dx, dy int)
	// Continue extends the stroke while it is being drawn.
	Continue(x, y int)
	// Delete removes the painted items. Lists holding the stroke are untouched.
	Delete()
	// Clone deep-copies the stroke. The copy has a new ID and is not painted.
	Clone() Stroke
	// Attach moves an unpainted stroke onto another surface.
	Attach(s render.Surface)
	// Raise lifts the stroke's items to the top of the surface.
	Raise()
	// Bounds is the painted extent, or the coordinate box when unpainted.
	Bounds() (geom.Rect, bool)
	// Painting lists the surface items currently owned by the stroke.
	Painting() []render.ItemID

	base() *Base
}

// Base carries the fields every variant shares.
type Base struct {
	id        string
	color     string
	width     int
	lineStyle LineStyle
	coords    []geom.Point
	surface   render.Surface
	items     []render.ItemID
}

func newBase(s render.Surface, points []geom.Point, style Style) Base {
	ls := style.LineStyle
	if ls == "" {
		ls = LineSolid
	}
	return Base{
		id:        uuid.NewString(),
		color:     style.Color,
		width:     max(style.Width, 1),
		lineStyle: ls,
		coords:    geom.Clone(points),
		surface:   s,
	}
}

func (b *Base) base() *Base { return b }

func (b *Base) ID() string { return b.id }

// Points returns a copy of the coordinates.
func (b *Base) Points() []geom.Point { return geom.Clone(b.coords) }

func (b *Base) Color() string { return b.color }

func (b *Base) Width() int { return b.width }

func (b *Base) LineStyle() LineStyle { return b.lineStyle }

func (b *Base) Painting() []render.ItemID {
	out := make([]render.ItemID, len(b.items))
	copy(out, b.items)
	return out
}

func (b *Base) Delete() {
	if b.surface != nil && len(b.items) > 0 {
		b.surface.Delete(b.items...)
	}
	b.items = nil
}

func (b *Base) Raise() {
	if b.surface != nil && len(b.items) > 0 {
		b.surface.Raise(b.items...)
	}
}

func (b *Base) Attach(s render.Surface) {
	b.Delete()
	b.surface = s
}

func (b *Base) Bounds() (geom.Rect, bool) {
	if b.surface != nil && len(b.items) > 0 {
		if r, ok := b.surface.BBox(b.items...); ok {
			return r, true
		}
	}
	return geom.Bounds(b.coords)
}

func (b *Base) style() render.Style {
	return render.Style{Outline: b.color, Width: b.width, Dash: b.lineStyle.dash()}
}

func (b *Base) translate(dx, dy int) {
	b.coords = geom.Translate(b.coords, dx, dy)
}

func (b *Base) draw(id render.ItemID) {
	b.items = append(b.items, id)
}

func (b *Base) clone() Base {
	c := *b
	c.id = uuid.NewString()
	c.coords = geom.Clone(b.coords)
	c.items = nil
	return c
}

// SetColor changes the outline colour. The caller repaints.
func (b *Base) SetColor(c string) { b.color = c }

// SetWidth changes the outline width, clamped to at least 1.
func (b *Base) SetWidth(w int) { b.width = max(w, 1) }

// SetLineStyle changes the outline pattern.
func (b *Base) SetLineStyle(l LineStyle) { b.lineStyle = l }

// SetPoints replaces the coordinates without repainting. Used when a
// document is decoded and by property restores.
func (b *Base) SetPoints(points []geom.Point) { b.coords = geom.Clone(points) }

// Fill returns the fill colour of variants that have one.
func Fill(s Stroke) (string, bool) {
	switch v := s.(type) {
	case *Shape:
		return v.fill, true
	case *Triangle:
		return v.fill, true
	case *Polygon:
		return v.fill, true
	case *UnfinishedPolygon:
		return v.fill, true
	}
	return "", false
}

// IsText reports whether s is a text stroke.
func IsText(s Stroke) bool {
	_, ok := s.(*Text)
	return ok
}
