package geom

import "math"

// DefaultSamples is the number of points taken along a segment when a
// polygon edge is tested against a marquee.
const DefaultSamples = 20

// Point is an integer canvas position.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy int) Point { return Point{X: p.X + dx, Y: p.Y + dy} }

// Rect is an axis-aligned box with inclusive bounds.
type Rect struct {
	MinX, MinY, MaxX, MaxY int
}

// RectOf normalizes two opposite corners into a Rect.
func RectOf(a, b Point) Rect {
	return Rect{
		MinX: min(a.X, b.X),
		MinY: min(a.Y, b.Y),
		MaxX: max(a.X, b.X),
		MaxY: max(a.Y, b.Y),
	}
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// Union returns the smallest Rect covering both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		MinX: min(r.MinX, o.MinX),
		MinY: min(r.MinY, o.MinY),
		MaxX: max(r.MaxX, o.MaxX),
		MaxY: max(r.MaxY, o.MaxY),
	}
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{MinX: r.MinX + dx, MinY: r.MinY + dy, MaxX: r.MaxX + dx, MaxY: r.MaxY + dy}
}

// Inset grows r by d on every side; a negative d shrinks it.
func (r Rect) Inset(d int) Rect {
	return Rect{MinX: r.MinX - d, MinY: r.MinY - d, MaxX: r.MaxX + d, MaxY: r.MaxY + d}
}

// Min returns the top-left corner.
func (r Rect) Min() Point { return Point{X: r.MinX, Y: r.MinY} }

// Max returns the bottom-right corner.
func (r Rect) Max() Point { return Point{X: r.MaxX, Y: r.MaxY} }

// Bounds returns the bounding box of points. ok is false for an empty slice.
func Bounds(points []Point) (r Rect, ok bool) {
	if len(points) == 0 {
		return Rect{}, false
	}
	r = Rect{MinX: points[0].X, MinY: points[0].Y, MaxX: points[0].X, MaxY: points[0].Y}
	for _, p := range points[1:] {
		r.MinX = min(r.MinX, p.X)
		r.MinY = min(r.MinY, p.Y)
		r.MaxX = max(r.MaxX, p.X)
		r.MaxY = max(r.MaxY, p.Y)
	}
	return r, true
}

// Translate returns a new slice with every point moved by (dx, dy).
func Translate(points []Point, dx, dy int) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = p.Add(dx, dy)
	}
	return out
}

// Clone returns a copy of points that shares no storage with the input.
func Clone(points []Point) []Point {
	if points == nil {
		return nil
	}
	out := make([]Point, len(points))
	copy(out, points)
	return out
}

// PointsOnSegment samples n evenly spaced points from (x0,y0) to (x1,y1),
// both ends included. Coordinates are truncated toward zero. Vertical
// segments interpolate y directly since their slope is undefined.
func PointsOnSegment(x0, y0, x1, y1, n int) []Point {
	if n < 2 {
		n = 2
	}
	steps := float64(n - 1)
	points := make([]Point, n)

	if x0 == x1 {
		for i := range points {
			y := float64(y0) + float64(i)*float64(y1-y0)/steps
			points[i] = Point{X: x0, Y: int(y)}
		}
		return points
	}

	m := float64(y1-y0) / float64(x1-x0)
	b := float64(y0) - m*float64(x0)
	for i := range points {
		x := float64(x0) + float64(i)*float64(x1-x0)/steps
		points[i] = Point{X: int(x), Y: int(m*x + b)}
	}
	return points
}

func sign(p1, p2, p3 Point) int {
	return (p1.X-p3.X)*(p2.Y-p3.Y) - (p2.X-p3.X)*(p1.Y-p3.Y)
}

// InTriangle reports whether p is inside the triangle abc using the
// cross-product sign test. A point exactly on an edge yields a zero sign,
// which counts as "not negative"; such points may land on either side.
func InTriangle(p, a, b, c Point) bool {
	b1 := sign(p, a, b) < 0
	b2 := sign(p, b, c) < 0
	b3 := sign(p, c, a) < 0
	return b1 == b2 && b2 == b3
}

// InEllipse reports whether p is inside the ellipse inscribed in the box
// with opposite corners c1 and c2. A box that is flat on one axis is
// treated as the segment between its corners, a box flat on both axes as a
// single point.
func InEllipse(p, c1, c2 Point) bool {
	cx := float64(c1.X+c2.X) / 2
	cy := float64(c1.Y+c2.Y) / 2
	rx := math.Abs(float64(c2.X-c1.X)) / 2
	ry := math.Abs(float64(c2.Y-c1.Y)) / 2
	dx := float64(p.X) - cx
	dy := float64(p.Y) - cy

	switch {
	case rx == 0 && ry == 0:
		return dx == 0 && dy == 0
	case rx == 0:
		return dx == 0 && math.Abs(dy) <= ry
	case ry == 0:
		return dy == 0 && math.Abs(dx) <= rx
	}
	return dx*dx/(rx*rx)+dy*dy/(ry*ry) <= 1
}

// Lattice lists every integer point of [minX,maxX) x [minY,maxY) spanned by
// the corners a and b, x-major. The max edges are excluded on both axes.
func Lattice(a, b Point) []Point {
	r := RectOf(a, b)
	w, h := r.MaxX-r.MinX, r.MaxY-r.MinY
	if w <= 0 || h <= 0 {
		return nil
	}
	points := make([]Point, 0, w*h)
	for x := r.MinX; x < r.MaxX; x++ {
		for y := r.MinY; y < r.MaxY; y++ {
			points = append(points, Point{X: x, Y: y})
		}
	}
	return points
}

// PointSet is a lookup set of points.
type PointSet map[Point]struct{}

// NewPointSet builds a set from points.
func NewPointSet(points []Point) PointSet {
	s := make(PointSet, len(points))
	for _, p := range points {
		s[p] = struct{}{}
	}
	return s
}

// Has reports whether p is in the set.
func (s PointSet) Has(p Point) bool {
	_, ok := s[p]
	return ok
}

// Intersects reports whether any of points is in the set.
func (s PointSet) Intersects(points []Point) bool {
	for _, p := range points {
		if s.Has(p) {
			return true
		}
	}
	return false
}
