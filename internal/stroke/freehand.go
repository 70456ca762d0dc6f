package stroke

import (
	"LocalPaint/internal/geom"
	"LocalPaint/internal/render"
)

// Freehand is a polyline that grows one point at a time while the pointer
// is dragged. Each segment is its own surface item.
type Freehand struct {
	Base
}

var _ Stroke = (*Freehand)(nil)

// NewFreehand starts a freehand stroke at the given point and paints it.
func NewFreehand(s render.Surface, at geom.Point, style Style) *Freehand {
	f := &Freehand{Base: newBase(s, []geom.Point{at}, style)}
	f.Paint()
	return f
}

func (f *Freehand) Kind() Kind { return KindFreehand }

func (f *Freehand) Paint() {
	f.Delete()
	if f.surface == nil || len(f.coords) == 0 {
		return
	}
	style := f.style()
	if len(f.coords) == 1 {
		f.draw(f.surface.Line([]geom.Point{f.coords[0], f.coords[0]}, style))
		return
	}
	for i := 1; i < len(f.coords); i++ {
		f.draw(f.surface.Line([]geom.Point{f.coords[i-1], f.coords[i]}, style))
	}
}

func (f *Freehand) Move(dx, dy int) {
	f.translate(dx, dy)
	f.Paint()
}

// Continue appends a point and draws only the new segment.
func (f *Freehand) Continue(x, y int) {
	p := geom.Pt(x, y)
	if len(f.coords) == 0 {
		f.coords = append(f.coords, p)
		f.Paint()
		return
	}
	last := f.coords[len(f.coords)-1]
	f.coords = append(f.coords, p)
	if f.surface == nil {
		return
	}
	if len(f.coords) == 2 && len(f.items) == 1 {
		// replace the single-point dot with the first real segment
		f.Delete()
	}
	f.draw(f.surface.Line([]geom.Point{last, p}, f.style()))
}

func (f *Freehand) Clone() Stroke {
	return &Freehand{Base: f.clone()}
}
