// Package action implements reversible commands over a shared board.
//
// Undo and Redo never mutate the receiver: each returns a new Action that
// reverses the one just performed, so the history can treat both stacks as
// plain sequences of commands.
package action

import (
	"slices"

	"LocalPaint/internal/state"
	"LocalPaint/internal/stroke"
)

// Kind names the operation an action records.
type Kind string

const (
	KindCreate         Kind = "create"
	KindDelete         Kind = "delete"
	KindChangeProperty Kind = "change-property"
	KindChangeOrder    Kind = "change-order"
	KindClearCanvas    Kind = "clear-canvas"
	KindLoadDocument   Kind = "load-document"
)

// Action is one reversible user operation.
type Action interface {
	Kind() Kind
	Undo() Action
	Redo() Action
}

// Create records strokes that were added to the board.
type Create struct {
	board   *state.Board
	strokes []stroke.Stroke
}

// NewCreate records that created were appended to board.
func NewCreate(board *state.Board, created ...stroke.Stroke) *Create {
	return &Create{board: board, strokes: slices.Clone(created)}
}

func (a *Create) Kind() Kind { return KindCreate }

// Strokes returns the recorded strokes.
func (a *Create) Strokes() []stroke.Stroke { return slices.Clone(a.strokes) }

// Undo removes the strokes and their rendering.
func (a *Create) Undo() Action {
	for _, s := range a.strokes {
		a.board.Remove(s)
		s.Delete()
	}
	return NewCreate(a.board, a.strokes...)
}

// Redo appends the strokes again and repaints them.
func (a *Create) Redo() Action {
	for _, s := range a.strokes {
		a.board.Append(s)
		s.Paint()
	}
	return NewCreate(a.board, a.strokes...)
}

type placed struct {
	stroke stroke.Stroke
	index  int
}

// Delete records strokes removed from the board together with the
// positions they held.
type Delete struct {
	board  *state.Board
	placed []placed
}

// NewDelete captures the current positions of deleted. Call it before the
// strokes are removed.
func NewDelete(board *state.Board, deleted ...stroke.Stroke) *Delete {
	a := &Delete{board: board}
	for _, s := range deleted {
		if i := board.Index(s); i >= 0 {
			a.placed = append(a.placed, placed{stroke: s, index: i})
		}
	}
	slices.SortFunc(a.placed, func(x, y placed) int { return x.index - y.index })
	return a
}

func (a *Delete) Kind() Kind { return KindDelete }

// Strokes returns the recorded strokes, lowest position first.
func (a *Delete) Strokes() []stroke.Stroke {
	out := make([]stroke.Stroke, len(a.placed))
	for i, p := range a.placed {
		out[i] = p.stroke
	}
	return out
}

// Apply removes the strokes and their rendering. It is used for the
// initial deletion as well as for Redo.
func (a *Delete) Apply() {
	for _, p := range a.placed {
		a.board.Remove(p.stroke)
		p.stroke.Delete()
	}
}

// Undo puts every stroke back at its old position.
func (a *Delete) Undo() Action {
	for _, p := range a.placed {
		a.board.Insert(p.index, p.stroke)
		p.stroke.Paint()
	}
	a.board.Restack()
	return &Delete{board: a.board, placed: slices.Clone(a.placed)}
}

// Redo deletes the strokes again.
func (a *Delete) Redo() Action {
	next := NewDelete(a.board, a.Strokes()...)
	next.Apply()
	return next
}

// ChangeProperty records property values of some strokes from before an
// edit. Undo and Redo are the same swap.
type ChangeProperty struct {
	board   *state.Board
	targets []stroke.Stroke
	props   []stroke.Props
}

// NewChangeProperty records originals[i] as the earlier state of targets[i].
func NewChangeProperty(board *state.Board, targets []stroke.Stroke, originals []stroke.Props) *ChangeProperty {
	return &ChangeProperty{board: board, targets: slices.Clone(targets), props: slices.Clone(originals)}
}

// Snapshot is a convenience that records mask for each target as it is
// now. Call it before mutating the targets.
func Snapshot(board *state.Board, targets []stroke.Stroke, mask stroke.Field) *ChangeProperty {
	props := make([]stroke.Props, len(targets))
	for i, s := range targets {
		props[i] = stroke.Snapshot(s, mask)
	}
	return NewChangeProperty(board, targets, props)
}

func (a *ChangeProperty) Kind() Kind { return KindChangeProperty }

// Targets returns the strokes the action edits.
func (a *ChangeProperty) Targets() []stroke.Stroke { return slices.Clone(a.targets) }

func (a *ChangeProperty) swap() Action {
	current := make([]stroke.Props, len(a.targets))
	for i, s := range a.targets {
		current[i] = stroke.Snapshot(s, a.props[i].Mask)
		stroke.Apply(s, a.props[i])
	}
	Repaint(a.board, a.targets)
	return NewChangeProperty(a.board, a.targets, current)
}

func (a *ChangeProperty) Undo() Action { return a.swap() }

func (a *ChangeProperty) Redo() Action { return a.swap() }

// Repaint walks the board in order, repainting changed strokes and raising
// the rest so the stacking order survives the repaint.
func Repaint(board *state.Board, changed []stroke.Stroke) {
	for _, s := range board.Strokes() {
		if slices.Contains(changed, s) {
			s.Paint()
			continue
		}
		s.Raise()
	}
}

// ChangeOrder records a reordering of the board as a permutation: the
// stroke now at position i goes to position perm[i] when the action runs.
type ChangeOrder struct {
	board *state.Board
	perm  []int
}

// NewChangeOrder records perm, which must map the board's current order
// back to the order before the change.
func NewChangeOrder(board *state.Board, perm []int) *ChangeOrder {
	return &ChangeOrder{board: board, perm: slices.Clone(perm)}
}

func (a *ChangeOrder) Kind() Kind { return KindChangeOrder }

// Permutation returns the recorded permutation.
func (a *ChangeOrder) Permutation() []int { return slices.Clone(a.perm) }

func (a *ChangeOrder) apply() Action {
	current := a.board.Strokes()
	if len(current) != len(a.perm) {
		return a
	}
	next := make([]stroke.Stroke, len(current))
	inverse := make([]int, len(current))
	for i, to := range a.perm {
		next[to] = current[i]
		inverse[to] = i
	}
	a.board.Replace(next)
	a.board.Restack()
	return NewChangeOrder(a.board, inverse)
}

func (a *ChangeOrder) Undo() Action { return a.apply() }

func (a *ChangeOrder) Redo() Action { return a.apply() }

// ClearCanvas records every stroke that was on the board when it was
// cleared.
type ClearCanvas struct {
	board   *state.Board
	strokes []stroke.Stroke
}

// NewClearCanvas records snapshot as the cleared strokes.
func NewClearCanvas(board *state.Board, snapshot []stroke.Stroke) *ClearCanvas {
	return &ClearCanvas{board: board, strokes: slices.Clone(snapshot)}
}

// Clear empties the board, deleting all rendering, and returns the action
// that records it.
func Clear(board *state.Board) *ClearCanvas {
	a := NewClearCanvas(board, board.Strokes())
	for _, s := range a.strokes {
		s.Delete()
	}
	board.Replace(nil)
	return a
}

func (a *ClearCanvas) Kind() Kind { return KindClearCanvas }

// Undo re-appends and repaints every cleared stroke.
func (a *ClearCanvas) Undo() Action {
	for _, s := range a.strokes {
		a.board.Append(s)
		s.Paint()
	}
	return NewClearCanvas(a.board, a.strokes)
}

// Redo clears the board again.
func (a *ClearCanvas) Redo() Action {
	return Clear(a.board)
}

// LoadDocument records the strokes that were live before a document
// replaced them. Undo and Redo swap the live list with the stored one.
type LoadDocument struct {
	board  *state.Board
	stored []stroke.Stroke
}

// NewLoadDocument records prior as the list that a load replaced.
func NewLoadDocument(board *state.Board, prior []stroke.Stroke) *LoadDocument {
	return &LoadDocument{board: board, stored: slices.Clone(prior)}
}

// Load replaces the board contents with loaded and returns the action
// that records it.
func Load(board *state.Board, loaded []stroke.Stroke) *LoadDocument {
	return NewLoadDocument(board, loaded).swap()
}

func (a *LoadDocument) Kind() Kind { return KindLoadDocument }

func (a *LoadDocument) swap() *LoadDocument {
	current := a.board.Strokes()
	for _, s := range current {
		s.Delete()
	}
	a.board.Replace(a.stored)
	for _, s := range a.stored {
		s.Paint()
	}
	return NewLoadDocument(a.board, current)
}

func (a *LoadDocument) Undo() Action { return a.swap() }

func (a *LoadDocument) Redo() Action { return a.swap() }
