package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointsOnSegment(t *testing.T) {
	points := PointsOnSegment(0, 0, 19, 38, 20)
	require.Len(t, points, 20)
	assert.Equal(t, Pt(0, 0), points[0])
	assert.Equal(t, Pt(19, 38), points[19])
	assert.Equal(t, Pt(10, 20), points[10])
}

func TestPointsOnSegmentVertical(t *testing.T) {
	points := PointsOnSegment(5, 0, 5, 10, 11)
	require.Len(t, points, 11)
	for i, p := range points {
		assert.Equal(t, Pt(5, i), p)
	}
}

func TestPointsOnSegmentClampsSamples(t *testing.T) {
	points := PointsOnSegment(1, 2, 3, 4, 0)
	assert.Equal(t, []Point{Pt(1, 2), Pt(3, 4)}, points)
}

func TestInTriangle(t *testing.T) {
	a, b, c := Pt(10, 10), Pt(30, 50), Pt(50, 10)

	side := func(p1, p2, p3 Point) bool {
		return (p1.X-p3.X)*(p2.Y-p3.Y)-(p2.X-p3.X)*(p1.Y-p3.Y) < 0
	}
	p := Pt(25, 40)
	want := side(p, a, b) == side(p, b, c) && side(p, b, c) == side(p, c, a)
	assert.Equal(t, want, InTriangle(p, a, b, c))

	assert.True(t, InTriangle(Pt(30, 20), a, b, c))
	assert.False(t, InTriangle(Pt(0, 0), a, b, c))
	assert.False(t, InTriangle(Pt(30, 60), a, b, c))
}

func TestInEllipse(t *testing.T) {
	c1, c2 := Pt(0, 0), Pt(100, 50)
	assert.True(t, InEllipse(Pt(50, 25), c1, c2))
	assert.False(t, InEllipse(Pt(0, 0), c1, c2))
	assert.True(t, InEllipse(Pt(100, 25), c1, c2))
	assert.False(t, InEllipse(Pt(101, 25), c1, c2))
}

func TestInEllipseDegenerate(t *testing.T) {
	tests := []struct {
		name   string
		p      Point
		c1, c2 Point
		want   bool
	}{
		{"point box hit", Pt(5, 5), Pt(5, 5), Pt(5, 5), true},
		{"point box miss", Pt(5, 6), Pt(5, 5), Pt(5, 5), false},
		{"vertical line hit", Pt(5, 8), Pt(5, 0), Pt(5, 10), true},
		{"vertical line miss", Pt(6, 8), Pt(5, 0), Pt(5, 10), false},
		{"horizontal line hit", Pt(3, 0), Pt(0, 0), Pt(10, 0), true},
		{"horizontal line beyond", Pt(11, 0), Pt(0, 0), Pt(10, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InEllipse(tt.p, tt.c1, tt.c2))
		})
	}
}

func TestLatticeHalfOpen(t *testing.T) {
	points := Lattice(Pt(2, 3), Pt(0, 1))
	assert.Equal(t, []Point{Pt(0, 1), Pt(0, 2), Pt(1, 1), Pt(1, 2)}, points)
	assert.Empty(t, Lattice(Pt(4, 4), Pt(4, 9)))
}

func TestBoundsAndUnion(t *testing.T) {
	r, ok := Bounds([]Point{Pt(3, 9), Pt(-1, 4), Pt(7, 5)})
	require.True(t, ok)
	assert.Equal(t, Rect{MinX: -1, MinY: 4, MaxX: 7, MaxY: 9}, r)

	_, ok = Bounds(nil)
	assert.False(t, ok)

	u := r.Union(Rect{MinX: 0, MinY: 0, MaxX: 2, MaxY: 2})
	assert.Equal(t, Rect{MinX: -1, MinY: 0, MaxX: 7, MaxY: 9}, u)
	assert.True(t, u.Contains(Pt(7, 9)))
	assert.False(t, u.Contains(Pt(8, 9)))
}

func TestPointSet(t *testing.T) {
	s := NewPointSet(Lattice(Pt(0, 0), Pt(3, 3)))
	assert.True(t, s.Has(Pt(2, 2)))
	assert.False(t, s.Has(Pt(3, 3)))
	assert.True(t, s.Intersects([]Point{Pt(9, 9), Pt(1, 0)}))
	assert.False(t, s.Intersects([]Point{Pt(9, 9)}))
}
