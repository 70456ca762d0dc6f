package canvas

import (
	"fmt"
	"log"

	"LocalPaint/internal/action"
	"LocalPaint/internal/codec"
	"LocalPaint/internal/geom"
	"LocalPaint/internal/selection"
	"LocalPaint/internal/stroke"
)

// settle ends any in-progress text or polygon before a command touches the
// board.
func (c *Controller) settle() {
	c.CommitText()
	c.CancelPolygon()
}

// Copy puts clones of the selection on the clipboard. at is the reference
// point a later paste is measured from.
func (c *Controller) Copy(at geom.Point) int {
	c.clipboard = c.clipboard[:0]
	for _, s := range c.sel.Selected() {
		c.clipboard = append(c.clipboard, s.Clone())
	}
	c.copiedAt = at
	return len(c.clipboard)
}

// CanPaste reports whether the clipboard holds anything.
func (c *Controller) CanPaste() bool { return len(c.clipboard) > 0 }

// Paste adds fresh copies of the clipboard, offset by the distance from the
// copy point to at, and selects them.
func (c *Controller) Paste(at geom.Point) int {
	if len(c.clipboard) == 0 {
		return 0
	}
	c.settle()
	dx, dy := at.X-c.copiedAt.X, at.Y-c.copiedAt.Y
	pasted := make([]stroke.Stroke, 0, len(c.clipboard))
	for _, s := range c.clipboard {
		n := s.Clone()
		n.Attach(c.surface)
		n.Move(dx, dy)
		pasted = append(pasted, n)
	}
	c.board.Append(pasted...)
	c.history.Push(action.NewCreate(c.board, pasted...))
	c.sel.Clear()
	c.sel.Add(pasted...)
	return len(pasted)
}

// DeleteSelected removes the selected strokes.
func (c *Controller) DeleteSelected() int {
	targets := c.sel.Selected()
	if len(targets) == 0 {
		return 0
	}
	del := action.NewDelete(c.board, targets...)
	c.sel.Clear()
	del.Apply()
	c.history.Push(del)
	return len(targets)
}

// MoveForward raises the selection above every other stroke.
func (c *Controller) MoveForward() bool { return c.reorder(true) }

// MoveBackward lowers the selection below every other stroke.
func (c *Controller) MoveBackward() bool { return c.reorder(false) }

func (c *Controller) reorder(forward bool) bool {
	perm := c.sel.Reorder(forward)
	if perm == nil {
		return false
	}
	c.history.Push(action.NewChangeOrder(c.board, perm))
	return true
}

// TextProps are the settings the text properties dialog edits.
type TextProps struct {
	Color  string
	Font   string
	Size   int
	Bold   bool
	Italic bool
}

// ShapeProps are the settings the shape properties dialog edits.
type ShapeProps struct {
	Color     string
	Fill      string
	Width     int
	LineStyle stroke.LineStyle
	// KeepFill leaves every fill as it is and ignores Fill.
	KeepFill bool
}

// SetTextProperties applies p to every selected text stroke. Fonts the
// font list does not know become the fallback font.
func (c *Controller) SetTextProperties(p TextProps) int {
	var targets []stroke.Stroke
	for _, s := range c.sel.Selected() {
		if stroke.IsText(s) {
			targets = append(targets, s)
		}
	}
	if len(targets) == 0 {
		return 0
	}
	act := action.Snapshot(c.board, targets, stroke.FieldTextStyle)
	for _, s := range targets {
		t := s.(*stroke.Text)
		if p.Color != "" {
			t.SetColor(p.Color)
		}
		t.SetFont(stroke.Font{Name: p.Font, Size: p.Size, Bold: p.Bold, Italic: p.Italic}, c.fonts)
	}
	action.Repaint(c.board, targets)
	c.sel.Refresh()
	c.history.Push(act)
	return len(targets)
}

type filler interface{ SetFill(string) }

// SetShapeProperties applies p to every selected non-text stroke. Strokes
// without a fill ignore p.Fill, as do all strokes when p.KeepFill is set.
func (c *Controller) SetShapeProperties(p ShapeProps) int {
	var targets []stroke.Stroke
	for _, s := range c.sel.Selected() {
		if !stroke.IsText(s) {
			targets = append(targets, s)
		}
	}
	if len(targets) == 0 {
		return 0
	}
	act := action.Snapshot(c.board, targets, stroke.FieldShapeStyle)
	for _, s := range targets {
		props := stroke.Snapshot(s, stroke.FieldShapeStyle)
		if p.Color != "" {
			props.Color = p.Color
		}
		if p.Width > 0 {
			props.Width = p.Width
		}
		if p.LineStyle != "" {
			props.LineStyle = p.LineStyle
		}
		stroke.Apply(s, props)
		if f, ok := s.(filler); ok && !p.KeepFill {
			f.SetFill(p.Fill)
		}
	}
	action.Repaint(c.board, targets)
	c.sel.Refresh()
	c.history.Push(act)
	return len(targets)
}

// Group joins the selection into a group.
func (c *Controller) Group() bool { return c.sel.Group() }

// Ungroup dissolves the groups touching the selection.
func (c *Controller) Ungroup() int { return c.sel.Ungroup() }

// ClearCanvas removes every stroke as one undoable action.
func (c *Controller) ClearCanvas() bool {
	c.settle()
	c.sel.Clear()
	if c.board.Len() == 0 {
		return false
	}
	c.history.Push(action.Clear(c.board))
	return true
}

// Undo reverses the latest action.
func (c *Controller) Undo() bool {
	c.settle()
	ok := c.history.Undo()
	c.sel.Prune()
	return ok
}

// Redo re-applies the latest undone action.
func (c *Controller) Redo() bool {
	c.settle()
	ok := c.history.Redo()
	c.sel.Prune()
	return ok
}

// Save writes the board to a new document in dir.
func (c *Controller) Save(dir string) (string, error) {
	c.settle()
	return codec.SaveFile(dir, c.board.Strokes(), c.now())
}

// Document encodes the board.
func (c *Controller) Document() ([]byte, error) {
	return codec.Encode(c.board.Strokes())
}

// Load replaces the board with the document at path. On error the board
// is untouched.
func (c *Controller) Load(path string) error {
	strokes, err := codec.LoadFile(path, c.surface)
	if err != nil {
		return err
	}
	c.replace(strokes)
	return nil
}

// LoadData replaces the board with an encoded document. On error the board
// is untouched.
func (c *Controller) LoadData(data []byte) error {
	strokes, err := codec.Decode(data, c.surface)
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}
	c.replace(strokes)
	return nil
}

func (c *Controller) replace(strokes []stroke.Stroke) {
	c.settle()
	prior := c.sel.Groups()
	c.sel.Clear()
	c.sel.ResetGroups()
	c.history.Push(&docLoad{LoadDocument: action.Load(c.board, strokes), sel: c.sel, groups: prior})
	log.Printf("[CANVAS] Document loaded with %d strokes", len(strokes))
}

// docLoad is a document load that also swaps the selection groups, so
// undoing a load brings back the groups of the replaced document.
type docLoad struct {
	*action.LoadDocument
	sel    *selection.Engine
	groups [][]stroke.Stroke
}

func (d *docLoad) swap(next action.Action) action.Action {
	current := d.sel.Groups()
	d.sel.Clear()
	d.sel.SetGroups(d.groups)
	return &docLoad{LoadDocument: next.(*action.LoadDocument), sel: d.sel, groups: current}
}

func (d *docLoad) Undo() action.Action { return d.swap(d.LoadDocument.Undo()) }

func (d *docLoad) Redo() action.Action { return d.swap(d.LoadDocument.Redo()) }
