// Package selection implements marquee selection, grouping, dragging and
// stacking changes over the strokes of a board.
package selection

import (
	"slices"

	"LocalPaint/internal/geom"
	"LocalPaint/internal/render"
	"LocalPaint/internal/state"
	"LocalPaint/internal/stroke"
)

const (
	// OutlineColor is the colour of the box drawn around a selection.
	OutlineColor = "green"
	// MarqueeColor is the colour of the rubber-band rectangle.
	MarqueeColor = "#fff"
)

// Engine owns the selection set and the user-defined groups of a board.
// Selection artifacts (outline and marquee) are painted on the same surface
// as the strokes but never belong to the board.
type Engine struct {
	board   *state.Board
	surface render.Surface

	// Samples is the number of points taken along each polygon edge.
	Samples int

	selected []stroke.Stroke
	groups   [][]stroke.Stroke

	box     geom.Rect
	hasBox  bool
	outline render.ItemID
	marquee render.ItemID
	drawn   struct{ outline, marquee bool }

	dragging bool
	moved    bool
	prev     geom.Point
}

// New creates an engine over board, painting artifacts on surface.
func New(board *state.Board, surface render.Surface) *Engine {
	return &Engine{board: board, surface: surface, Samples: geom.DefaultSamples}
}

// SelectByRect adds every stroke touched by the marquee spanned by start and
// end to the selection and returns the number of strokes now selected.
func (e *Engine) SelectByRect(start, end geom.Point) int {
	m := newMarquee(start, end, e.Samples)
	for _, s := range e.board.Strokes() {
		if e.IsSelected(s) || !m.hits(s) {
			continue
		}
		e.add(e.expand(s)...)
	}
	e.refresh()
	return len(e.selected)
}

// Add selects strokes directly, without group expansion.
func (e *Engine) Add(strokes ...stroke.Stroke) {
	e.add(strokes...)
	e.refresh()
}

func (e *Engine) add(strokes ...stroke.Stroke) {
	for _, s := range strokes {
		if !e.IsSelected(s) {
			e.selected = append(e.selected, s)
		}
	}
}

// Clear empties the selection and removes the outline.
func (e *Engine) Clear() {
	e.selected = nil
	e.dragging, e.moved = false, false
	e.refresh()
}

// Selected returns the selected strokes in board order.
func (e *Engine) Selected() []stroke.Stroke {
	var out []stroke.Stroke
	for _, s := range e.board.Strokes() {
		if e.IsSelected(s) {
			out = append(out, s)
		}
	}
	return out
}

// Len is the number of selected strokes.
func (e *Engine) Len() int { return len(e.selected) }

// IsSelected reports whether s is in the selection.
func (e *Engine) IsSelected(s stroke.Stroke) bool {
	return slices.Contains(e.selected, s)
}

// BBox is the union of the painted extents of the selection.
func (e *Engine) BBox() (geom.Rect, bool) { return e.box, e.hasBox }

// Contains reports whether p lies inside the selection box, edges included.
func (e *Engine) Contains(p geom.Point) bool {
	return e.hasBox && e.box.Contains(p)
}

// Prune drops selected strokes that are no longer on the board and redraws
// the outline.
func (e *Engine) Prune() {
	e.selected = slices.DeleteFunc(e.selected, func(s stroke.Stroke) bool {
		return !e.board.Contains(s)
	})
	e.refresh()
}

// Refresh recomputes the selection box after the selected strokes changed.
func (e *Engine) Refresh() { e.refresh() }

func (e *Engine) refresh() {
	var ids []render.ItemID
	for _, s := range e.selected {
		ids = append(ids, s.Painting()...)
	}
	e.box, e.hasBox = geom.Rect{}, false
	if len(ids) > 0 && e.surface != nil {
		e.box, e.hasBox = e.surface.BBox(ids...)
	}
	if !e.hasBox {
		for _, s := range e.selected {
			r, ok := s.Bounds()
			if !ok {
				continue
			}
			if e.hasBox {
				e.box = e.box.Union(r)
			} else {
				e.box, e.hasBox = r, true
			}
		}
	}
	e.drawOutline()
}

func (e *Engine) drawOutline() {
	if e.surface == nil {
		return
	}
	if e.drawn.outline {
		e.surface.Delete(e.outline)
		e.drawn.outline = false
	}
	if !e.hasBox {
		return
	}
	e.outline = e.surface.Rectangle(e.box.Min(), e.box.Max(), render.Style{Outline: OutlineColor, Width: 1})
	e.drawn.outline = true
}

// ShowMarquee draws the rubber-band rectangle between a and b, replacing
// any previous one.
func (e *Engine) ShowMarquee(a, b geom.Point) {
	e.HideMarquee()
	if e.surface == nil {
		return
	}
	r := geom.RectOf(a, b)
	e.marquee = e.surface.Rectangle(r.Min(), r.Max(), render.Style{Outline: MarqueeColor, Width: 1})
	e.drawn.marquee = true
}

// HideMarquee removes the rubber-band rectangle.
func (e *Engine) HideMarquee() {
	if e.drawn.marquee && e.surface != nil {
		e.surface.Delete(e.marquee)
	}
	e.drawn.marquee = false
}

// Artifacts lists the surface items the engine currently owns.
func (e *Engine) Artifacts() []render.ItemID {
	var ids []render.ItemID
	if e.drawn.outline {
		ids = append(ids, e.outline)
	}
	if e.drawn.marquee {
		ids = append(ids, e.marquee)
	}
	return ids
}

// BeginDrag starts moving the selection when p lies inside its box. It
// returns the selected strokes with a snapshot of their coordinates, taken
// before anything moves.
func (e *Engine) BeginDrag(p geom.Point) ([]stroke.Stroke, []stroke.Props, bool) {
	if len(e.selected) == 0 || !e.Contains(p) {
		return nil, nil, false
	}
	e.dragging, e.moved = true, false
	e.prev = p
	targets := e.Selected()
	props := make([]stroke.Props, len(targets))
	for i, s := range targets {
		props[i] = stroke.Snapshot(s, stroke.FieldCoordinates)
	}
	return targets, props, true
}

// Dragging reports whether a drag gesture is in progress.
func (e *Engine) Dragging() bool { return e.dragging }

// DragTo moves the selection by the distance from the previous drag point.
// Strokes are walked in board order from the first selected one: selected
// strokes move, the rest are raised so stacking is kept.
func (e *Engine) DragTo(p geom.Point) {
	if !e.dragging {
		return
	}
	dx, dy := p.X-e.prev.X, p.Y-e.prev.Y
	e.prev = p
	if dx == 0 && dy == 0 {
		return
	}
	e.moved = true
	started := false
	for _, s := range e.board.Strokes() {
		selected := e.IsSelected(s)
		if !started && !selected {
			continue
		}
		started = true
		if selected {
			s.Move(dx, dy)
		} else {
			s.Raise()
		}
	}
	e.box = e.box.Translate(dx, dy)
	e.drawOutline()
}

// EndDrag finishes the gesture and reports whether anything moved.
func (e *Engine) EndDrag() bool {
	moved := e.dragging && e.moved
	e.dragging, e.moved = false, false
	return moved
}

// Reorder moves the selected strokes above (forward) or below the rest,
// keeping relative order inside both partitions, and restacks the surface.
// It returns the permutation that maps every new position back to the old
// one, or nil when the order did not change.
func (e *Engine) Reorder(forward bool) []int {
	current := e.board.Strokes()
	var picked, rest []int
	for i, s := range current {
		if e.IsSelected(s) {
			picked = append(picked, i)
		} else {
			rest = append(rest, i)
		}
	}
	if len(picked) == 0 {
		return nil
	}
	perm := append(slices.Clone(rest), picked...)
	if !forward {
		perm = append(slices.Clone(picked), rest...)
	}
	identity := true
	next := make([]stroke.Stroke, len(current))
	for i, from := range perm {
		next[i] = current[from]
		identity = identity && i == from
	}
	if identity {
		return nil
	}
	e.board.Replace(next)
	e.board.Restack()
	if e.drawn.outline {
		e.surface.Raise(e.outline)
	}
	return perm
}
