// Package state holds the live, ordered list of strokes on a canvas. The
// list order is the stacking order: later strokes paint above earlier ones.
package state

import (
	"slices"

	"LocalPaint/internal/stroke"
)

// Board is the single canvas-owned stroke list. Actions and the selection
// engine hold a *Board; nothing keeps a private copy of the list.
type Board struct {
	strokes []stroke.Stroke
	clock   Clock
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{}
}

func (b *Board) touch() { b.clock.Tick() }

// Revision increases on every mutation.
func (b *Board) Revision() uint64 { return b.clock.Now() }

// Strokes returns the strokes in stacking order. The slice is a copy.
func (b *Board) Strokes() []stroke.Stroke {
	return slices.Clone(b.strokes)
}

// Len is the number of strokes.
func (b *Board) Len() int { return len(b.strokes) }

// At returns the stroke at index i.
func (b *Board) At(i int) stroke.Stroke { return b.strokes[i] }

// Index returns the position of s, or -1.
func (b *Board) Index(s stroke.Stroke) int {
	return slices.Index(b.strokes, s)
}

// Contains reports whether s is on the board.
func (b *Board) Contains(s stroke.Stroke) bool { return b.Index(s) >= 0 }

// Append adds strokes on top of the stack.
func (b *Board) Append(s ...stroke.Stroke) {
	if len(s) == 0 {
		return
	}
	b.strokes = append(b.strokes, s...)
	b.touch()
}

// Insert places s at index i, clamped to the list bounds.
func (b *Board) Insert(i int, s stroke.Stroke) {
	i = min(max(i, 0), len(b.strokes))
	b.strokes = slices.Insert(b.strokes, i, s)
	b.touch()
}

// Remove takes s off the board. A stroke that is not on the board is
// ignored and false is returned.
func (b *Board) Remove(s stroke.Stroke) bool {
	i := b.Index(s)
	if i < 0 {
		return false
	}
	b.strokes = slices.Delete(b.strokes, i, i+1)
	b.touch()
	return true
}

// Replace swaps in a whole new list and returns the previous one.
func (b *Board) Replace(list []stroke.Stroke) []stroke.Stroke {
	prev := b.strokes
	b.strokes = slices.Clone(list)
	b.touch()
	return prev
}

// Restack raises every stroke's items in list order so the surface
// stacking matches the board.
func (b *Board) Restack() {
	for _, s := range b.strokes {
		s.Raise()
	}
}
