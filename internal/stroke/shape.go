package stroke

import (
	"LocalPaint/internal/geom"
	"LocalPaint/internal/render"
)

// Shape is a rectangle or oval spanned by two opposite corners. The first
// point is the anchor; Continue rubber-bands the second.
type Shape struct {
	Base
	fill  string
	shape ShapeKind
}

var _ Stroke = (*Shape)(nil)

// NewShape starts a rectangle or oval at the given point.
func NewShape(s render.Surface, at geom.Point, style Style, kind ShapeKind) *Shape {
	if kind != ShapeOval {
		kind = ShapeRect
	}
	sh := &Shape{Base: newBase(s, []geom.Point{at}, style), fill: style.Fill, shape: kind}
	sh.Paint()
	return sh
}

func (s *Shape) Kind() Kind { return KindShape }

// Shape reports whether this is a rectangle or an oval.
func (s *Shape) Shape() ShapeKind { return s.shape }

func (s *Shape) Fill() string { return s.fill }

// SetFill changes the fill colour; "" means hollow. The caller repaints.
func (s *Shape) SetFill(fill string) { s.fill = fill }

// Corners returns the two defining points, repeating the anchor while the
// second point has not been set.
func (s *Shape) Corners() (geom.Point, geom.Point) {
	return corners(s.coords)
}

func corners(coords []geom.Point) (geom.Point, geom.Point) {
	switch len(coords) {
	case 0:
		return geom.Point{}, geom.Point{}
	case 1:
		return coords[0], coords[0]
	}
	return coords[0], coords[1]
}

func (s *Shape) Paint() {
	s.Delete()
	if s.surface == nil || len(s.coords) == 0 {
		return
	}
	a, b := s.Corners()
	style := s.style()
	style.Fill = s.fill
	if s.shape == ShapeOval {
		s.draw(s.surface.Oval(a, b, style))
		return
	}
	s.draw(s.surface.Rectangle(a, b, style))
}

func (s *Shape) Move(dx, dy int) {
	s.translate(dx, dy)
	s.Paint()
}

func (s *Shape) Continue(x, y int) {
	s.coords = rubberBand(s.coords, geom.Pt(x, y))
	s.Paint()
}

func rubberBand(coords []geom.Point, p geom.Point) []geom.Point {
	switch len(coords) {
	case 0:
		return []geom.Point{p}
	case 1:
		return append(coords, p)
	}
	coords[1] = p
	return coords
}

func (s *Shape) Clone() Stroke {
	return &Shape{Base: s.clone(), fill: s.fill, shape: s.shape}
}

// Triangle is spanned by two points. Point 0 is the apex; the other
// vertices are ((x0+x1)/2, y1) and (x1, y0).
type Triangle struct {
	Base
	fill string
}

var _ Stroke = (*Triangle)(nil)

// NewTriangle starts a triangle at the given point.
func NewTriangle(s render.Surface, at geom.Point, style Style) *Triangle {
	t := &Triangle{Base: newBase(s, []geom.Point{at}, style), fill: style.Fill}
	t.Paint()
	return t
}

func (t *Triangle) Kind() Kind { return KindTriangle }

// Shape is always ShapeTriangle.
func (t *Triangle) Shape() ShapeKind { return ShapeTriangle }

func (t *Triangle) Fill() string { return t.fill }

// SetFill changes the fill colour; "" means hollow. The caller repaints.
func (t *Triangle) SetFill(fill string) { t.fill = fill }

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Vertices derives the three corners from the two defining points.
func (t *Triangle) Vertices() (apex, mid, corner geom.Point) {
	p0, p1 := corners(t.coords)
	return p0, geom.Pt(floorDiv(p0.X+p1.X, 2), p1.Y), geom.Pt(p1.X, p0.Y)
}

func (t *Triangle) Paint() {
	t.Delete()
	if t.surface == nil || len(t.coords) == 0 {
		return
	}
	a, b, c := t.Vertices()
	style := t.style()
	style.Fill = t.fill
	t.draw(t.surface.Polygon([]geom.Point{a, b, c}, style))
}

func (t *Triangle) Move(dx, dy int) {
	t.translate(dx, dy)
	t.Paint()
}

func (t *Triangle) Continue(x, y int) {
	t.coords = rubberBand(t.coords, geom.Pt(x, y))
	t.Paint()
}

func (t *Triangle) Clone() Stroke {
	return &Triangle{Base: t.clone(), fill: t.fill}
}
