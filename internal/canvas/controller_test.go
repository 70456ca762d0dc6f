package canvas

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LocalPaint/internal/action"
	"LocalPaint/internal/fonts"
	"LocalPaint/internal/geom"
	"LocalPaint/internal/render"
	"LocalPaint/internal/stroke"
)

type recorder struct {
	path   string
	items  []render.Item
	w, h   int
	bg     string
	called int
}

func (r *recorder) Export(path string, items []render.Item, w, h int, bg string) error {
	r.path, r.items, r.w, r.h, r.bg = path, items, w, h, bg
	r.called++
	return nil
}

func newController(t *testing.T, opts ...Option) (*Controller, *render.DisplayList) {
	t.Helper()
	d := render.NewDisplayList(render.FixedMeasurer{Advance: 8, Height: 16})
	opts = append([]Option{WithFonts(fonts.List{"Arial", "Courier New"})}, opts...)
	return New(d, nil, opts...), d
}

func drag(c *Controller, from geom.Point, to ...geom.Point) {
	c.PointerDown(from)
	for _, p := range to {
		c.Drag(p)
	}
	c.Release(to[len(to)-1])
}

func click(c *Controller, p geom.Point) {
	c.PointerDown(p)
	c.Release(p)
}

func undoDepth(c *Controller) int {
	n, _ := c.History().Len()
	return n
}

func TestFreehandGesture(t *testing.T) {
	c, d := newController(t)
	drag(c, geom.Pt(0, 0), geom.Pt(5, 5), geom.Pt(10, 10))

	require.Equal(t, 1, c.Board().Len())
	s := c.Board().At(0)
	assert.Equal(t, stroke.KindFreehand, s.Kind())
	assert.Equal(t, []geom.Point{geom.Pt(0, 0), geom.Pt(5, 5), geom.Pt(10, 10)}, s.Points())
	assert.Equal(t, 1, undoDepth(c))

	require.True(t, c.Undo())
	assert.Zero(t, c.Board().Len())
	assert.Zero(t, d.Len())
}

func TestMoveThenUndoCreation(t *testing.T) {
	c, d := newController(t)
	drag(c, geom.Pt(0, 0), geom.Pt(10, 10))
	s := c.Board().At(0)

	s.Move(5, 5)
	assert.Equal(t, []geom.Point{geom.Pt(5, 5), geom.Pt(15, 15)}, s.Points())

	require.True(t, c.Undo())
	assert.False(t, c.Board().Contains(s))
	assert.Empty(t, s.Painting())
	assert.Zero(t, d.Len())
}

func TestShapeTools(t *testing.T) {
	for _, tool := range []Tool{ToolRect, ToolOval, ToolTriangle} {
		c, _ := newController(t)
		c.SetTool(tool)
		drag(c, geom.Pt(10, 10), geom.Pt(30, 30), geom.Pt(50, 40))
		require.Equal(t, 1, c.Board().Len(), tool)
		assert.Equal(t, []geom.Point{geom.Pt(10, 10), geom.Pt(50, 40)}, c.Board().At(0).Points(), tool)
		assert.Equal(t, 1, undoDepth(c), tool)
	}
}

func TestEmptyTextIsDiscarded(t *testing.T) {
	c, d := newController(t)
	c.SetTool(ToolText)
	click(c, geom.Pt(10, 10))
	require.NotNil(t, c.PendingText())

	c.SetTool(ToolSelect)
	assert.Nil(t, c.PendingText())
	assert.Zero(t, c.Board().Len())
	assert.False(t, c.History().CanUndo())
	assert.Zero(t, d.Len())
}

func TestTyping(t *testing.T) {
	c, d := newController(t)
	c.SetTool(ToolText)
	click(c, geom.Pt(10, 10))
	for _, r := range "hi" {
		c.Key(RuneKey(r))
	}
	c.Key(NamedKey(KeyLeft))
	c.Key(RuneKey('X'))
	assert.Equal(t, "hXi", c.PendingText().Text())
	assert.Equal(t, 2, c.Cursor())

	c.Key(NamedKey(KeyBackspace))
	assert.Equal(t, "hi", c.PendingText().Text())
	c.Key(NamedKey(KeyRight))
	c.Key(NamedKey(KeyRight))
	assert.Equal(t, 2, c.Cursor())
	c.Key(RuneKey('\t'))
	assert.Equal(t, "hi", c.PendingText().Text())

	// the next click commits and starts another text
	click(c, geom.Pt(200, 200))
	require.Equal(t, 1, c.Board().Len())
	assert.Equal(t, "hi", c.Board().At(0).(*stroke.Text).Text())
	assert.Equal(t, 1, undoDepth(c))

	c.Key(NamedKey(KeyEscape))
	assert.Nil(t, c.PendingText())
	assert.Equal(t, 1, c.Board().Len())
	assert.Equal(t, 1, d.Len())
}

func TestPolygonCloses(t *testing.T) {
	c, d := newController(t)
	c.SetTool(ToolPolygon)
	click(c, geom.Pt(0, 0))
	click(c, geom.Pt(40, 0))
	c.Move(geom.Pt(40, 20))
	click(c, geom.Pt(40, 40))
	assert.Zero(t, c.Board().Len())

	click(c, geom.Pt(2, 2))
	require.Equal(t, 1, c.Board().Len())
	p := c.Board().At(0)
	assert.Equal(t, stroke.KindPolygon, p.Kind())
	assert.Equal(t, []geom.Point{geom.Pt(0, 0), geom.Pt(40, 0), geom.Pt(40, 40)}, p.Points())
	assert.Nil(t, c.Polygon())
	assert.Equal(t, 1, undoDepth(c))
	assert.Equal(t, 1, d.Len())
}

func TestPolygonClosesNearLastVertex(t *testing.T) {
	c, _ := newController(t)
	c.SetTool(ToolPolygon)
	click(c, geom.Pt(0, 0))
	click(c, geom.Pt(100, 0))
	click(c, geom.Pt(100, 100))

	click(c, geom.Pt(102, 102))
	require.Equal(t, 1, c.Board().Len())
	assert.Nil(t, c.Polygon())
	assert.Len(t, c.Board().At(0).Points(), 3)
}

func TestPolygonNeedsThreeVertices(t *testing.T) {
	c, d := newController(t)
	c.SetTool(ToolPolygon)
	click(c, geom.Pt(0, 0))
	click(c, geom.Pt(40, 0))
	click(c, geom.Pt(41, 1))
	require.NotNil(t, c.Polygon())
	assert.Len(t, c.Polygon().Points(), 2)
	assert.Zero(t, c.Board().Len())

	c.Key(NamedKey(KeyEscape))
	assert.Nil(t, c.Polygon())
	assert.Zero(t, d.Len())
}

func selectAll(c *Controller) {
	c.SetTool(ToolSelect)
	drag(c, geom.Pt(0, 0), geom.Pt(300, 300))
}

func TestDragRecordsOneAction(t *testing.T) {
	c, _ := newController(t)
	c.SetTool(ToolRect)
	drag(c, geom.Pt(10, 10), geom.Pt(50, 50))
	selectAll(c)
	require.Equal(t, 1, c.Selection().Len())
	depth := undoDepth(c)

	drag(c, geom.Pt(20, 20), geom.Pt(25, 25), geom.Pt(30, 30))
	assert.Equal(t, depth+1, undoDepth(c))
	assert.Equal(t, action.KindChangeProperty, c.History().Peek().Kind())
	rect := c.Board().At(0)
	assert.Equal(t, []geom.Point{geom.Pt(20, 20), geom.Pt(60, 60)}, rect.Points())

	require.True(t, c.Undo())
	assert.Equal(t, []geom.Point{geom.Pt(10, 10), geom.Pt(50, 50)}, rect.Points())
	require.True(t, c.Redo())
	assert.Equal(t, []geom.Point{geom.Pt(20, 20), geom.Pt(60, 60)}, rect.Points())
}

func TestClickWithoutMoveRecordsNothing(t *testing.T) {
	c, _ := newController(t)
	c.SetTool(ToolRect)
	drag(c, geom.Pt(10, 10), geom.Pt(50, 50))
	selectAll(c)
	depth := undoDepth(c)

	drag(c, geom.Pt(20, 20), geom.Pt(20, 20))
	assert.Equal(t, depth, undoDepth(c))
}

func TestPasteRecordsCreate(t *testing.T) {
	c, _ := newController(t)
	c.SetTool(ToolRect)
	drag(c, geom.Pt(10, 10), geom.Pt(20, 20))
	selectAll(c)

	assert.Equal(t, 1, c.Copy(geom.Pt(0, 0)))
	assert.Equal(t, 1, c.Paste(geom.Pt(100, 50)))
	require.Equal(t, 2, c.Board().Len())
	pasted := c.Board().At(1)
	assert.Equal(t, []geom.Point{geom.Pt(110, 60), geom.Pt(120, 70)}, pasted.Points())
	assert.NotEqual(t, c.Board().At(0).ID(), pasted.ID())
	assert.Equal(t, action.KindCreate, c.History().Peek().Kind())
	assert.Equal(t, []stroke.Stroke{pasted}, c.Selection().Selected())

	c.Paste(geom.Pt(200, 50))
	assert.Equal(t, 3, c.Board().Len())

	require.True(t, c.Undo())
	require.True(t, c.Undo())
	assert.Equal(t, 1, c.Board().Len())
	assert.Zero(t, c.Selection().Len())
}

func TestDeleteSelected(t *testing.T) {
	c, _ := newController(t)
	c.SetTool(ToolRect)
	drag(c, geom.Pt(10, 10), geom.Pt(20, 20))
	drag(c, geom.Pt(100, 100), geom.Pt(120, 120))
	first := c.Board().At(0)
	c.SetTool(ToolSelect)
	drag(c, geom.Pt(0, 0), geom.Pt(30, 30))

	c.Key(NamedKey(KeyDelete))
	require.Equal(t, 1, c.Board().Len())
	assert.False(t, c.Board().Contains(first))

	require.True(t, c.Undo())
	assert.Equal(t, first, c.Board().At(0))
}

func TestMoveForwardBackward(t *testing.T) {
	c, _ := newController(t)
	c.SetTool(ToolRect)
	drag(c, geom.Pt(10, 10), geom.Pt(20, 20))
	drag(c, geom.Pt(100, 100), geom.Pt(120, 120))
	before := c.Strokes()
	c.SetTool(ToolSelect)
	drag(c, geom.Pt(0, 0), geom.Pt(30, 30))

	require.True(t, c.MoveForward())
	assert.Equal(t, []stroke.Stroke{before[1], before[0]}, c.Strokes())
	assert.False(t, c.MoveForward())

	require.True(t, c.Undo())
	assert.Equal(t, before, c.Strokes())
	assert.False(t, c.MoveBackward())
}

func TestSetTextPropertiesFallsBack(t *testing.T) {
	c, _ := newController(t)
	c.SetTool(ToolText)
	click(c, geom.Pt(10, 10))
	c.Key(RuneKey('a'))
	c.SetTool(ToolSelect)
	drag(c, geom.Pt(0, 0), geom.Pt(40, 40))
	require.Equal(t, 1, c.Selection().Len())
	text := c.Board().At(0).(*stroke.Text)

	n := c.SetTextProperties(TextProps{Color: "red", Font: "Comic Sans", Size: 30, Bold: true})
	assert.Equal(t, 1, n)
	assert.Equal(t, stroke.Font{Name: "Arial", Size: 30, Bold: true}, text.Font())
	assert.Equal(t, "red", text.Color())

	require.True(t, c.Undo())
	assert.Equal(t, stroke.Font{Name: "Arial", Size: fonts.DefaultSize}, text.Font())
	assert.Equal(t, "white", text.Color())

	c.Selection().Add(text)
	c.SetTextProperties(TextProps{Font: "courier new", Size: 12})
	assert.Equal(t, "Courier New", text.Font().Name)
}

func TestSetShapeProperties(t *testing.T) {
	c, _ := newController(t)
	drag(c, geom.Pt(0, 0), geom.Pt(10, 10))
	c.SetTool(ToolOval)
	drag(c, geom.Pt(20, 20), geom.Pt(40, 40))
	selectAll(c)

	n := c.SetShapeProperties(ShapeProps{Color: "blue", Fill: "red", Width: 5, LineStyle: stroke.LineDashed})
	assert.Equal(t, 2, n)
	free, oval := c.Board().At(0), c.Board().At(1).(*stroke.Shape)
	assert.Equal(t, "blue", free.Color())
	assert.Equal(t, 5, free.Width())
	assert.Equal(t, "red", oval.Fill())
	assert.Equal(t, stroke.LineDashed, oval.LineStyle())

	require.True(t, c.Undo())
	assert.Equal(t, "white", free.Color())
	assert.Equal(t, "", oval.Fill())
	assert.Equal(t, 3, oval.Width())
}

func TestShapePropertiesKeepFill(t *testing.T) {
	c, _ := newController(t)
	drag(c, geom.Pt(0, 0), geom.Pt(10, 10))
	c.SetTool(ToolRect)
	c.Tools().Fill = "red"
	drag(c, geom.Pt(20, 20), geom.Pt(40, 40))
	selectAll(c)

	n := c.SetShapeProperties(ShapeProps{Width: 5, KeepFill: true})
	assert.Equal(t, 2, n)
	rect := c.Board().At(1).(*stroke.Shape)
	assert.Equal(t, "red", rect.Fill())
	assert.Equal(t, 5, rect.Width())
	assert.Equal(t, 5, c.Board().At(0).Width())
}

func TestGroupThroughController(t *testing.T) {
	c, _ := newController(t)
	c.SetTool(ToolRect)
	drag(c, geom.Pt(10, 10), geom.Pt(20, 20))
	drag(c, geom.Pt(100, 100), geom.Pt(120, 120))
	selectAll(c)
	require.True(t, c.Group())

	c.Selection().Clear()
	drag(c, geom.Pt(0, 0), geom.Pt(30, 30))
	assert.Equal(t, 2, c.Selection().Len())
	assert.Equal(t, 1, c.Ungroup())
}

func TestClearCanvas(t *testing.T) {
	c, d := newController(t)
	drag(c, geom.Pt(0, 0), geom.Pt(10, 10))
	drag(c, geom.Pt(20, 20), geom.Pt(30, 30))

	require.True(t, c.ClearCanvas())
	assert.Zero(t, c.Board().Len())
	assert.Zero(t, d.Len())
	assert.False(t, c.ClearCanvas())

	require.True(t, c.Undo())
	assert.Equal(t, 2, c.Board().Len())
}

func TestLoadIsAtomic(t *testing.T) {
	c, _ := newController(t)
	drag(c, geom.Pt(0, 0), geom.Pt(10, 10))
	before := c.Strokes()
	depth := undoDepth(c)

	err := c.LoadData([]byte(`[{"type": "FreeStyleStroke", "coordinates": [[0,0]], "width": 1}, {"type": "Nope", "coordinates": [[0,0]], "width": 1}]`))
	require.Error(t, err)
	assert.Equal(t, before, c.Strokes())
	assert.Equal(t, depth, undoDepth(c))

	err = c.LoadData([]byte(`[{"type": "ShapeStroke", "shape": "RECT", "coordinates": [[5,5],[9,9]], "color": "red", "width": 2}]`))
	require.NoError(t, err)
	require.Equal(t, 1, c.Board().Len())
	assert.Equal(t, stroke.KindShape, c.Board().At(0).Kind())
	assert.NotEmpty(t, c.Board().At(0).Painting())
	assert.Equal(t, action.KindLoadDocument, c.History().Peek().Kind())

	require.True(t, c.Undo())
	assert.Equal(t, before, c.Strokes())
}

func TestUndoLoadRestoresGroups(t *testing.T) {
	c, _ := newController(t)
	c.SetTool(ToolRect)
	drag(c, geom.Pt(10, 10), geom.Pt(20, 20))
	drag(c, geom.Pt(100, 100), geom.Pt(120, 120))
	selectAll(c)
	require.True(t, c.Group())

	require.NoError(t, c.LoadData([]byte(`[{"type": "ShapeStroke", "shape": "RECT", "coordinates": [[5,5],[9,9]], "color": "red", "width": 2}]`)))
	assert.Empty(t, c.Selection().Groups())

	require.True(t, c.Undo())
	groups := c.Selection().Groups()
	require.Len(t, groups, 1)
	assert.ElementsMatch(t, c.Strokes(), groups[0])

	require.True(t, c.Redo())
	assert.Empty(t, c.Selection().Groups())
	assert.Equal(t, action.KindLoadDocument, c.History().Peek().Kind())
}

func TestSaveAndLoad(t *testing.T) {
	at := time.Date(2025, time.January, 2, 3, 4, 5, 0, time.UTC)
	c, _ := newController(t, WithClock(func() time.Time { return at }))
	c.SetTool(ToolTriangle)
	drag(c, geom.Pt(10, 10), geom.Pt(50, 50))

	dir := t.TempDir()
	path, err := c.Save(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "canvas-data-020125-030405.json"), path)

	other, _ := newController(t)
	require.NoError(t, other.Load(path))
	require.Equal(t, 1, other.Board().Len())
	assert.Equal(t, []geom.Point{geom.Pt(10, 10), geom.Pt(50, 50)}, other.Board().At(0).Points())

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o644))
	assert.Error(t, other.Load(bad))
	assert.Equal(t, 1, other.Board().Len())
}

func TestExport(t *testing.T) {
	rec := &recorder{}
	c, _ := newController(t, WithExporter("svg", rec), WithSize(320, 200), WithBackground("navy"))

	assert.ErrorIs(t, c.Export("gif", "x.gif"), ErrUnknownFormat)
	assert.ErrorIs(t, c.Export("svg", "x.svg"), ErrNothingToExport)

	c.SetTool(ToolRect)
	drag(c, geom.Pt(10, 10), geom.Pt(20, 20))
	selectAll(c)
	require.NotEmpty(t, c.Selection().Artifacts())

	require.NoError(t, c.Export(".SVG", "out.svg"))
	assert.Equal(t, 1, rec.called)
	assert.Equal(t, "out.svg", rec.path)
	require.Len(t, rec.items, 1)
	assert.Equal(t, render.KindRectangle, rec.items[0].Kind)
	assert.Equal(t, 320, rec.w)
	assert.Equal(t, 200, rec.h)
	assert.Equal(t, "navy", rec.bg)
	assert.Equal(t, []string{"svg"}, c.Formats())
}

func TestOnChangeFollowsHistory(t *testing.T) {
	c, _ := newController(t)
	calls := 0
	c.OnChange = func() { calls++ }

	drag(c, geom.Pt(0, 0), geom.Pt(10, 10))
	c.Undo()
	c.Redo()
	assert.Equal(t, 3, calls)

	c.Undo()
	c.Undo()
	assert.Equal(t, 4, calls)
}
