package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LocalPaint/internal/geom"
)

func newTestList() *DisplayList {
	return NewDisplayList(FixedMeasurer{Advance: 8, Height: 16})
}

func ids(items []Item) []ItemID {
	out := make([]ItemID, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestDisplayListStacking(t *testing.T) {
	d := newTestList()
	a := d.Line([]geom.Point{geom.Pt(0, 0), geom.Pt(5, 5)}, Style{Outline: "white", Width: 1})
	b := d.Rectangle(geom.Pt(0, 0), geom.Pt(5, 5), Style{Outline: "white", Width: 1})
	c := d.Oval(geom.Pt(0, 0), geom.Pt(5, 5), Style{Outline: "white", Width: 1})
	assert.Equal(t, []ItemID{a, b, c}, ids(d.Items()))

	d.Raise(a, b)
	assert.Equal(t, []ItemID{c, a, b}, ids(d.Items()))

	d.Delete(a, 999)
	assert.Equal(t, []ItemID{c, b}, ids(d.Items()))

	d.Clear()
	assert.Zero(t, d.Len())
}

func TestDisplayListBBox(t *testing.T) {
	d := newTestList()
	r := d.Rectangle(geom.Pt(50, 50), geom.Pt(10, 10), Style{Outline: "white", Width: 3})
	box, ok := d.BBox(r)
	require.True(t, ok)
	assert.Equal(t, geom.Rect{MinX: 8, MinY: 8, MaxX: 52, MaxY: 52}, box)

	txt := d.Text(geom.Pt(100, 100), TextStyle{Text: "abc", Size: 14})
	box, ok = d.BBox(txt)
	require.True(t, ok)
	assert.Equal(t, geom.Rect{MinX: 100, MinY: 100, MaxX: 124, MaxY: 116}, box)

	box, ok = d.BBox(r, txt)
	require.True(t, ok)
	assert.Equal(t, geom.Rect{MinX: 8, MinY: 8, MaxX: 124, MaxY: 116}, box)

	_, ok = d.BBox(12345)
	assert.False(t, ok)
}

func TestDisplayListOnChange(t *testing.T) {
	d := newTestList()
	calls := 0
	d.OnChange = func() { calls++ }
	id := d.Polygon([]geom.Point{geom.Pt(0, 0), geom.Pt(4, 0), geom.Pt(0, 4)}, Style{})
	d.Raise(id)
	d.Delete(id)
	d.Delete(id)
	assert.Equal(t, 3, calls)
}

func TestItemsAreCopies(t *testing.T) {
	d := newTestList()
	d.Line([]geom.Point{geom.Pt(1, 1), geom.Pt(2, 2)}, Style{})
	items := d.Items()
	items[0].Points[0] = geom.Pt(99, 99)
	assert.Equal(t, geom.Pt(1, 1), d.Items()[0].Points[0])
}

func TestParseColor(t *testing.T) {
	c, ok := ParseColor("#ff0000")
	require.True(t, ok)
	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, c)

	c, ok = ParseColor("#fff")
	require.True(t, ok)
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, c)

	c, ok = ParseColor("White")
	require.True(t, ok)
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, c)

	_, ok = ParseColor("")
	assert.False(t, ok)
	_, ok = ParseColor("not-a-colour")
	assert.False(t, ok)

	assert.Equal(t, "#00ff00", Hex(color.RGBA{G: 0xff, A: 0xff}))
}

func TestRasterizeFilledRectangle(t *testing.T) {
	d := newTestList()
	d.Rectangle(geom.Pt(10, 10), geom.Pt(50, 50), Style{Fill: "#ff0000", Width: 1})
	img := Rasterize(d.Items(), 64, 64, "#000000")
	require.Equal(t, 64, img.Bounds().Dx())

	r, g, b, _ := img.At(30, 30).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Zero(t, g)
	assert.Zero(t, b)

	r, _, _, _ = img.At(2, 2).RGBA()
	assert.Zero(t, r)
}
