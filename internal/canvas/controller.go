// Package canvas routes pointer and keyboard input to the stroke model,
// the selection engine and the undo history of one drawing surface.
//
// A Controller is not safe for concurrent use. All calls are expected to
// come from the UI event loop, one event at a time.
package canvas

import (
	"time"

	"LocalPaint/internal/action"
	"LocalPaint/internal/fonts"
	"LocalPaint/internal/geom"
	"LocalPaint/internal/render"
	"LocalPaint/internal/selection"
	"LocalPaint/internal/state"
	"LocalPaint/internal/stroke"
)

// TextBoxColor outlines the text being typed.
const TextBoxColor = "green"

type gesture int

const (
	gestureNone gesture = iota
	gestureDraw
	gestureMarquee
	gestureMove
)

// Controller owns the board, selection, history and clipboard of a canvas.
type Controller struct {
	surface render.Surface
	tools   *Tools
	board   *state.Board
	sel     *selection.Engine
	history *action.History

	fonts      fonts.Provider
	exporters  map[string]Exporter
	width      int
	height     int
	background string
	now        func() time.Time

	// OnChange runs after every history change.
	OnChange func()

	pressed bool
	press   geom.Point
	gesture gesture
	last    geom.Point

	drawing    stroke.Stroke
	moveTarget []stroke.Stroke
	moveProps  []stroke.Props

	polygon   *stroke.UnfinishedPolygon
	rubber    render.ItemID
	hasRubber bool

	text    *stroke.Text
	cursor  int
	textBox render.ItemID
	hasBox  bool

	clipboard []stroke.Stroke
	copiedAt  geom.Point
}

// Option configures a Controller.
type Option func(*Controller)

// WithFonts sets the font list used to validate property edits.
func WithFonts(p fonts.Provider) Option {
	return func(c *Controller) { c.fonts = p }
}

// WithSize sets the logical canvas size used by exports.
func WithSize(w, h int) Option {
	return func(c *Controller) { c.width, c.height = w, h }
}

// WithBackground sets the canvas colour used by exports.
func WithBackground(color string) Option {
	return func(c *Controller) { c.background = color }
}

// WithExporter registers e under format.
func WithExporter(format string, e Exporter) Option {
	return func(c *Controller) { c.exporters[format] = e }
}

// WithHistoryLimit caps the number of undoable actions.
func WithHistoryLimit(n int) Option {
	return func(c *Controller) { c.history.Limit = n }
}

// WithClock replaces the time source used to name saved files.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// New creates a controller painting on surface. tools may be shared with
// the toolbar; nil gets DefaultTools.
func New(surface render.Surface, tools *Tools, opts ...Option) *Controller {
	if tools == nil {
		tools = DefaultTools()
	}
	board := state.NewBoard()
	c := &Controller{
		surface:    surface,
		tools:      tools,
		board:      board,
		sel:        selection.New(board, surface),
		history:    action.NewHistory(),
		fonts:      fonts.Embedded(),
		exporters:  map[string]Exporter{},
		width:      640,
		height:     480,
		background: "black",
		now:        time.Now,
	}
	c.history.OnChange = c.changed
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) changed() {
	if c.OnChange != nil {
		c.OnChange()
	}
}

// Tools returns the tool state the controller reads.
func (c *Controller) Tools() *Tools { return c.tools }

// Board returns the live stroke list.
func (c *Controller) Board() *state.Board { return c.board }

// Selection returns the selection engine.
func (c *Controller) Selection() *selection.Engine { return c.sel }

// History returns the undo log.
func (c *Controller) History() *action.History { return c.history }

// Strokes returns the live strokes in stacking order.
func (c *Controller) Strokes() []stroke.Stroke { return c.board.Strokes() }

// Size returns the logical canvas size.
func (c *Controller) Size() (w, h int) { return c.width, c.height }

// Background returns the canvas colour.
func (c *Controller) Background() string { return c.background }

// PendingText returns the text being typed, or nil.
func (c *Controller) PendingText() *stroke.Text { return c.text }

// SetTool switches the mode. Pending text is committed and an unfinished
// polygon is dropped.
func (c *Controller) SetTool(t Tool) {
	c.CommitText()
	c.CancelPolygon()
	c.tools.Mode = t
}

// PointerDown handles a primary button press at p.
func (c *Controller) PointerDown(p geom.Point) {
	c.CommitText()
	if c.sel.Len() > 0 && !c.sel.Contains(p) {
		c.sel.Clear()
	}
	c.pressed, c.press, c.gesture = true, p, gestureNone

	switch c.tools.Mode {
	case ToolText:
		c.startText(p)
	case ToolPolygon:
		c.polygonClick(p)
	}
}

// Drag handles pointer motion with the primary button held.
func (c *Controller) Drag(p geom.Point) {
	if !c.pressed {
		c.PointerDown(p)
	}
	if c.gesture == gestureNone {
		c.beginGesture()
	}
	switch c.gesture {
	case gestureMove:
		c.sel.DragTo(p)
	case gestureDraw:
		c.drawing.Continue(p.X, p.Y)
	case gestureMarquee:
		c.sel.ShowMarquee(c.press, p)
	}
	c.last = p
}

func (c *Controller) beginGesture() {
	if c.sel.Len() > 0 {
		if targets, props, ok := c.sel.BeginDrag(c.press); ok {
			c.moveTarget, c.moveProps = targets, props
			c.gesture = gestureMove
			return
		}
	}
	style := c.tools.Style()
	switch c.tools.Mode {
	case ToolFreehand:
		c.drawing = stroke.NewFreehand(c.surface, c.press, style)
	case ToolRect:
		c.drawing = stroke.NewShape(c.surface, c.press, style, stroke.ShapeRect)
	case ToolOval:
		c.drawing = stroke.NewShape(c.surface, c.press, style, stroke.ShapeOval)
	case ToolTriangle:
		c.drawing = stroke.NewTriangle(c.surface, c.press, style)
	case ToolSelect:
		c.sel.Clear()
		c.gesture = gestureMarquee
		c.last = c.press
		return
	default:
		return
	}
	c.board.Append(c.drawing)
	c.gesture = gestureDraw
}

// Release handles the primary button going up and finishes the gesture.
func (c *Controller) Release(p geom.Point) {
	switch c.gesture {
	case gestureMove:
		if c.sel.EndDrag() {
			c.history.Push(action.NewChangeProperty(c.board, c.moveTarget, c.moveProps))
		}
		c.moveTarget, c.moveProps = nil, nil
	case gestureDraw:
		c.history.Push(action.NewCreate(c.board, c.drawing))
		c.drawing = nil
	case gestureMarquee:
		c.sel.HideMarquee()
		c.sel.SelectByRect(c.press, c.last)
	}
	c.pressed, c.gesture = false, gestureNone
}

// Move handles pointer motion without a button held. While a polygon is
// open it draws the edge that the next click would add.
func (c *Controller) Move(p geom.Point) {
	if c.polygon == nil {
		return
	}
	c.clearRubber()
	pts := c.polygon.Points()
	style := c.tools.Style()
	c.rubber = c.surface.Line([]geom.Point{pts[len(pts)-1], p},
		render.Style{Outline: style.Color, Width: max(style.Width, 1)})
	c.hasRubber = true
}

func (c *Controller) clearRubber() {
	if c.hasRubber {
		c.surface.Delete(c.rubber)
		c.hasRubber = false
	}
}

func (c *Controller) polygonClick(p geom.Point) {
	if c.polygon == nil {
		c.polygon = stroke.NewUnfinishedPolygon(c.surface, p, c.tools.Style())
		return
	}
	if !c.polygon.NearVertex(p) {
		c.polygon.Continue(p.X, p.Y)
		return
	}
	poly, ok := c.polygon.Finish()
	if !ok {
		return
	}
	c.clearRubber()
	c.polygon = nil
	c.board.Append(poly)
	c.history.Push(action.NewCreate(c.board, poly))
}

// Polygon returns the polygon being built, or nil.
func (c *Controller) Polygon() *stroke.UnfinishedPolygon { return c.polygon }

// CancelPolygon drops the polygon being built.
func (c *Controller) CancelPolygon() {
	if c.polygon == nil {
		return
	}
	c.polygon.Delete()
	c.polygon = nil
	c.clearRubber()
}

func (c *Controller) startText(p geom.Point) {
	c.text = stroke.NewText(c.surface, p, c.tools.Style(), c.tools.TextFont(), "")
	c.cursor = 0
	c.drawTextBox()
}

func (c *Controller) drawTextBox() {
	c.clearTextBox()
	if c.text == nil {
		return
	}
	r, ok := c.text.Bounds()
	if !ok {
		return
	}
	c.textBox = c.surface.Rectangle(r.Min(), r.Max(), render.Style{Outline: TextBoxColor, Width: 1})
	c.hasBox = true
	c.text.Raise()
}

func (c *Controller) clearTextBox() {
	if c.hasBox {
		c.surface.Delete(c.textBox)
		c.hasBox = false
	}
}

// CommitText ends typing. Non-empty text joins the board and is recorded;
// empty text is discarded without a trace.
func (c *Controller) CommitText() {
	if c.text == nil {
		return
	}
	t := c.text
	c.text = nil
	c.clearTextBox()
	if t.Text() == "" {
		t.Delete()
		return
	}
	c.board.Append(t)
	c.history.Push(action.NewCreate(c.board, t))
}

// Cursor returns the insertion index inside the pending text.
func (c *Controller) Cursor() int { return c.cursor }
