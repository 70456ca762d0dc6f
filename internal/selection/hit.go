package selection

import (
	"LocalPaint/internal/geom"
	"LocalPaint/internal/stroke"
)

// marquee is the selection rectangle prepared for hit testing. The lattice
// is half-open: points on the max edges are not part of it.
type marquee struct {
	minX, minY, maxX, maxY int
	lattice                []geom.Point
	set                    geom.PointSet
	samples                int
}

func newMarquee(a, b geom.Point, samples int) *marquee {
	r := geom.RectOf(a, b)
	lattice := geom.Lattice(a, b)
	return &marquee{
		minX: r.MinX, minY: r.MinY, maxX: r.MaxX, maxY: r.MaxY,
		lattice: lattice,
		set:     geom.NewPointSet(lattice),
		samples: samples,
	}
}

func (m *marquee) hits(s stroke.Stroke) bool {
	switch v := s.(type) {
	case *stroke.Shape:
		if v.Shape() == stroke.ShapeOval {
			a, b := v.Corners()
			return m.any(func(p geom.Point) bool { return geom.InEllipse(p, a, b) })
		}
		return m.boxHit(s, v.Fill() == "")
	case *stroke.Text:
		return m.boxHit(s, false)
	case *stroke.Triangle:
		apex, mid, corner := v.Vertices()
		return m.any(func(p geom.Point) bool { return geom.InTriangle(p, apex, mid, corner) })
	case *stroke.Polygon:
		return m.set.Intersects(m.edges(v.Points()))
	}
	return m.set.Intersects(s.Points())
}

// boxHit compares the painted box of s against the marquee. A hollow shape
// whose box strictly surrounds the marquee is not hit.
func (m *marquee) boxHit(s stroke.Stroke, hollow bool) bool {
	r, ok := s.Bounds()
	if !ok {
		return false
	}
	if r.MinX > m.maxX || r.MaxX < m.minX {
		return false
	}
	if r.MinY > m.maxY || m.minY > r.MaxY {
		return false
	}
	if hollow && r.MinX < m.minX && r.MaxX > m.maxX && r.MinY < m.minY && r.MaxY > m.maxY {
		return false
	}
	return true
}

func (m *marquee) any(inside func(geom.Point) bool) bool {
	for _, p := range m.lattice {
		if inside(p) {
			return true
		}
	}
	return false
}

// edges samples every edge of a closed polygon, the closing one included.
func (m *marquee) edges(points []geom.Point) []geom.Point {
	var out []geom.Point
	for i, p := range points {
		q := points[(i+1)%len(points)]
		out = append(out, geom.PointsOnSegment(p.X, p.Y, q.X, q.Y, m.samples)...)
	}
	return out
}
