package stroke

import (
	"LocalPaint/internal/geom"
	"LocalPaint/internal/render"
)

// CloseTolerance is the half-size of the square around a vertex in which a
// click closes an unfinished polygon.
const CloseTolerance = 5

// MinPolygonPoints is the vertex count a polygon needs before it can close.
const MinPolygonPoints = 3

// Polygon is a closed, filled-or-hollow polygon. The closing edge from the
// last vertex back to the first is implicit.
type Polygon struct {
	Base
	fill string
}

var _ Stroke = (*Polygon)(nil)

// NewPolygon builds a polygon from its vertices and paints it.
func NewPolygon(s render.Surface, points []geom.Point, style Style) *Polygon {
	p := &Polygon{Base: newBase(s, points, style), fill: style.Fill}
	p.Paint()
	return p
}

func (p *Polygon) Kind() Kind { return KindPolygon }

func (p *Polygon) Fill() string { return p.fill }

// SetFill changes the fill colour; "" means hollow. The caller repaints.
func (p *Polygon) SetFill(fill string) { p.fill = fill }

func (p *Polygon) Paint() {
	p.Delete()
	if p.surface == nil || len(p.coords) == 0 {
		return
	}
	style := p.style()
	style.Fill = p.fill
	p.draw(p.surface.Polygon(p.coords, style))
}

func (p *Polygon) Move(dx, dy int) {
	p.translate(dx, dy)
	p.Paint()
}

// Continue appends a vertex.
func (p *Polygon) Continue(x, y int) {
	p.coords = append(p.coords, geom.Pt(x, y))
	p.Paint()
}

func (p *Polygon) Clone() Stroke {
	return &Polygon{Base: p.clone(), fill: p.fill}
}

// UnfinishedPolygon collects vertices click by click. It is drawn as open
// edges and never joins a board; Finish turns it into a Polygon.
type UnfinishedPolygon struct {
	Base
	fill string
}

var _ Stroke = (*UnfinishedPolygon)(nil)

// NewUnfinishedPolygon starts a polygon at its first vertex.
func NewUnfinishedPolygon(s render.Surface, at geom.Point, style Style) *UnfinishedPolygon {
	return &UnfinishedPolygon{Base: newBase(s, []geom.Point{at}, style), fill: style.Fill}
}

func (u *UnfinishedPolygon) Kind() Kind { return KindUnfinishedPolygon }

func (u *UnfinishedPolygon) Paint() {
	u.Delete()
	if u.surface == nil {
		return
	}
	style := u.style()
	for i := 1; i < len(u.coords); i++ {
		u.draw(u.surface.Line([]geom.Point{u.coords[i-1], u.coords[i]}, style))
	}
}

func (u *UnfinishedPolygon) Move(dx, dy int) {
	u.translate(dx, dy)
	u.Paint()
}

// Continue appends a vertex and draws the edge leading to it.
func (u *UnfinishedPolygon) Continue(x, y int) {
	p := geom.Pt(x, y)
	last := u.coords[len(u.coords)-1]
	u.coords = append(u.coords, p)
	if u.surface != nil {
		u.draw(u.surface.Line([]geom.Point{last, p}, u.style()))
	}
}

// NearVertex reports whether p falls inside the closing square of any
// vertex collected so far.
func (u *UnfinishedPolygon) NearVertex(p geom.Point) bool {
	for _, v := range u.coords {
		if abs(p.X-v.X) < CloseTolerance && abs(p.Y-v.Y) < CloseTolerance {
			return true
		}
	}
	return false
}

// CanFinish reports whether enough vertices exist to close the polygon.
func (u *UnfinishedPolygon) CanFinish() bool {
	return len(u.coords) >= MinPolygonPoints
}

// Finish removes the open edges and returns the painted Polygon. ok is
// false while fewer than MinPolygonPoints vertices exist.
func (u *UnfinishedPolygon) Finish() (p *Polygon, ok bool) {
	if !u.CanFinish() {
		return nil, false
	}
	u.Delete()
	style := Style{Color: u.color, Fill: u.fill, Width: u.width, LineStyle: u.lineStyle}
	return NewPolygon(u.surface, u.coords, style), true
}

func (u *UnfinishedPolygon) Clone() Stroke {
	return &UnfinishedPolygon{Base: u.clone(), fill: u.fill}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
