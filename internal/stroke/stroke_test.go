package stroke

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LocalPaint/internal/fonts"
	"LocalPaint/internal/geom"
	"LocalPaint/internal/render"
)

var white = Style{Color: "#ffffff", Width: 1}

func newSurface() *render.DisplayList {
	return render.NewDisplayList(render.FixedMeasurer{Advance: 8, Height: 16})
}

func TestTextStroke(t *testing.T) {
	d := newSurface()
	txt := NewText(d, geom.Pt(50, 50), white, Font{}, "Hello")
	require.Len(t, txt.Painting(), 1)
	assert.Equal(t, "Hello", txt.Text())
	assert.Equal(t, fonts.Fallback, txt.Font().Name)

	txt.Move(10, 10)
	assert.Equal(t, []geom.Point{geom.Pt(60, 60)}, txt.Points())

	txt.AddChar("!", 5)
	assert.Equal(t, "Hello!", txt.Text())
	assert.Len(t, txt.Painting(), 1)
	assert.Equal(t, 1, d.Len())

	txt.RemoveChar(5)
	assert.Equal(t, "Hello", txt.Text())
	txt.RemoveChar(42)
	assert.Equal(t, "Hello", txt.Text())

	txt.AddChar("X", 0)
	assert.Equal(t, "XHello", txt.Text())
}

func TestTextSetFontFallsBack(t *testing.T) {
	d := newSurface()
	txt := NewText(d, geom.Pt(0, 0), white, Font{Name: "Courier New", Size: 12}, "a")
	p := fonts.List{"Arial", "Courier New"}

	txt.SetFont(Font{Name: "Nope", Size: 20, Bold: true}, p)
	assert.Equal(t, Font{Name: "Arial", Size: 20, Bold: true}, txt.Font())

	txt.SetFont(Font{Name: "courier new"}, p)
	assert.Equal(t, "Courier New", txt.Font().Name)
	assert.Equal(t, 20, txt.Font().Size)
}

func TestShapeStroke(t *testing.T) {
	d := newSurface()
	oval := NewShape(d, geom.Pt(50, 50), Style{Color: "black", Fill: "red", Width: 1}, ShapeOval)
	oval.Continue(100, 100)
	assert.Len(t, oval.Points(), 2)
	oval.Paint()
	assert.Len(t, oval.Painting(), 1)
	oval.Move(10, 10)
	assert.Equal(t, []geom.Point{geom.Pt(60, 60), geom.Pt(110, 110)}, oval.Points())

	rect := NewShape(d, geom.Pt(100, 100), Style{Color: "blue", Fill: "green", Width: 1}, ShapeRect)
	rect.Continue(150, 150)
	rect.Move(-10, -10)
	assert.Equal(t, []geom.Point{geom.Pt(90, 90), geom.Pt(140, 140)}, rect.Points())
	rect.Continue(160, 160)
	assert.Equal(t, []geom.Point{geom.Pt(90, 90), geom.Pt(160, 160)}, rect.Points())
	assert.Equal(t, 2, d.Len())
}

func TestFreehandStroke(t *testing.T) {
	d := newSurface()
	f := NewFreehand(d, geom.Pt(50, 50), white)
	f.SetPoints([]geom.Point{geom.Pt(50, 50), geom.Pt(100, 100), geom.Pt(150, 50)})
	f.Paint()
	assert.Len(t, f.Painting(), 2)

	f.Move(10, 10)
	assert.Equal(t, []geom.Point{geom.Pt(60, 60), geom.Pt(110, 110), geom.Pt(160, 60)}, f.Points())

	f.Continue(150, 150)
	assert.Len(t, f.Points(), 4)
	assert.Len(t, f.Painting(), 3)

	c := f.Clone()
	assert.Equal(t, f.Points(), c.Points())
	assert.NotEqual(t, f.ID(), c.ID())
	assert.Empty(t, c.Painting())

	c.Move(1, 1)
	assert.Equal(t, geom.Pt(60, 60), f.Points()[0])
}

func TestFreehandFirstSegmentReplacesDot(t *testing.T) {
	d := newSurface()
	f := NewFreehand(d, geom.Pt(0, 0), white)
	require.Len(t, f.Painting(), 1)
	f.Continue(10, 10)
	assert.Len(t, f.Painting(), 1)
	assert.Equal(t, 1, d.Len())
}

func TestMoveScenario(t *testing.T) {
	d := newSurface()
	f := NewFreehand(d, geom.Pt(0, 0), white)
	f.Continue(10, 10)
	f.Move(5, 5)
	assert.Equal(t, []geom.Point{geom.Pt(5, 5), geom.Pt(15, 15)}, f.Points())
}

func TestPolygonStroke(t *testing.T) {
	d := newSurface()
	p := NewPolygon(d, []geom.Point{geom.Pt(50, 50)}, white)
	p.Continue(100, 100)
	assert.Len(t, p.Points(), 2)
	assert.Len(t, p.Painting(), 1)

	p.Move(10, 10)
	assert.Equal(t, []geom.Point{geom.Pt(60, 60), geom.Pt(110, 110)}, p.Points())

	p.Continue(150, 50)
	p.Move(-20, 20)
	assert.Equal(t, []geom.Point{geom.Pt(40, 80), geom.Pt(90, 130), geom.Pt(130, 70)}, p.Points())
	assert.Equal(t, 1, d.Len())
}

func TestUnfinishedPolygon(t *testing.T) {
	d := newSurface()
	u := NewUnfinishedPolygon(d, geom.Pt(0, 0), Style{Color: "white", Fill: "red", Width: 2})
	u.Continue(40, 0)
	assert.False(t, u.CanFinish())
	_, ok := u.Finish()
	assert.False(t, ok)

	u.Continue(40, 40)
	assert.Len(t, u.Painting(), 2)
	assert.True(t, u.NearVertex(geom.Pt(3, -4)))
	assert.False(t, u.NearVertex(geom.Pt(5, 0)))
	assert.False(t, u.NearVertex(geom.Pt(20, 20)))

	p, ok := u.Finish()
	require.True(t, ok)
	assert.Empty(t, u.Painting())
	assert.Equal(t, []geom.Point{geom.Pt(0, 0), geom.Pt(40, 0), geom.Pt(40, 40)}, p.Points())
	assert.Equal(t, "red", p.Fill())
	assert.Equal(t, 2, p.Width())
	assert.Len(t, p.Painting(), 1)
	assert.Equal(t, 1, d.Len())
}

func TestTriangleVertices(t *testing.T) {
	d := newSurface()
	tr := NewTriangle(d, geom.Pt(10, 10), white)
	tr.Continue(51, 50)
	a, b, c := tr.Vertices()
	assert.Equal(t, geom.Pt(10, 10), a)
	assert.Equal(t, geom.Pt(30, 50), b)
	assert.Equal(t, geom.Pt(51, 10), c)

	tr.SetPoints([]geom.Point{geom.Pt(-3, 0), geom.Pt(0, 4)})
	_, b, _ = tr.Vertices()
	assert.Equal(t, geom.Pt(-2, 4), b)
}

func TestDeleteRemovesItemsOnly(t *testing.T) {
	d := newSurface()
	s := NewShape(d, geom.Pt(0, 0), white, ShapeRect)
	s.Continue(5, 5)
	s.Delete()
	assert.Zero(t, d.Len())
	assert.Len(t, s.Points(), 2)
	s.Delete()
}

func TestAttachMovesToAnotherSurface(t *testing.T) {
	d1, d2 := newSurface(), newSurface()
	s := NewShape(d1, geom.Pt(0, 0), white, ShapeRect)
	c := s.Clone()
	c.Attach(d2)
	c.Paint()
	assert.Equal(t, 1, d1.Len())
	assert.Equal(t, 1, d2.Len())
}

func TestBoundsFallsBackToCoordinates(t *testing.T) {
	d := newSurface()
	s := NewShape(d, geom.Pt(10, 10), Style{Color: "white", Width: 2}, ShapeRect)
	s.Continue(20, 30)
	r, ok := s.Bounds()
	require.True(t, ok)
	assert.Equal(t, geom.Rect{MinX: 9, MinY: 9, MaxX: 21, MaxY: 31}, r)

	c := s.Clone()
	r, ok = c.Bounds()
	require.True(t, ok)
	assert.Equal(t, geom.Rect{MinX: 10, MinY: 10, MaxX: 20, MaxY: 30}, r)
}

func TestSnapshotApply(t *testing.T) {
	d := newSurface()
	s := NewShape(d, geom.Pt(0, 0), Style{Color: "white", Fill: "red", Width: 2}, ShapeRect)
	s.Continue(10, 10)

	before := Snapshot(s, FieldAll)
	assert.True(t, before.Has(FieldFill))
	assert.False(t, before.Has(FieldFont))

	s.SetColor("blue")
	s.SetFill("")
	s.Move(3, 3)
	Apply(s, before)
	assert.Equal(t, "white", s.Color())
	assert.Equal(t, "red", s.Fill())
	assert.Equal(t, []geom.Point{geom.Pt(0, 0), geom.Pt(10, 10)}, s.Points())

	coords := Snapshot(s, FieldCoordinates)
	s.SetColor("green")
	s.Move(1, 1)
	Apply(s, coords)
	assert.Equal(t, "green", s.Color())
	assert.Equal(t, geom.Pt(0, 0), s.Points()[0])
}

func TestSnapshotText(t *testing.T) {
	d := newSurface()
	txt := NewText(d, geom.Pt(0, 0), white, Font{Name: "Arial", Size: 12}, "hi")
	p := Snapshot(txt, FieldTextStyle)
	assert.Equal(t, "Arial", p.Font)
	assert.Equal(t, 12, p.FontSize)
	assert.False(t, p.Has(FieldFill))

	txt.SetFont(Font{Name: "Courier", Size: 30, Italic: true}, fonts.List{"Courier"})
	Apply(txt, p)
	assert.Equal(t, Font{Name: "Arial", Size: 12}, txt.Font())
	assert.Equal(t, "hi", txt.Text())
}

func TestParseLineStyle(t *testing.T) {
	l, ok := ParseLineStyle("")
	assert.True(t, ok)
	assert.Equal(t, LineSolid, l)
	l, ok = ParseLineStyle("DOTS")
	assert.True(t, ok)
	assert.Equal(t, LineDots, l)
	_, ok = ParseLineStyle("WAVY")
	assert.False(t, ok)
}

func TestFill(t *testing.T) {
	d := newSurface()
	_, ok := Fill(NewFreehand(d, geom.Pt(0, 0), white))
	assert.False(t, ok)
	f, ok := Fill(NewTriangle(d, geom.Pt(0, 0), Style{Color: "white", Fill: "blue", Width: 1}))
	assert.True(t, ok)
	assert.Equal(t, "blue", f)
}
