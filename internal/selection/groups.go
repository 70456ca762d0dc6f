package selection

import (
	"log"
	"slices"

	"LocalPaint/internal/stroke"
)

// Group joins the current selection into one group. Members are taken out
// of any group they belonged to; a group left with fewer than two members
// is dissolved. It reports false when fewer than two strokes are selected.
func (e *Engine) Group() bool {
	members := e.Selected()
	if len(members) < 2 {
		return false
	}
	kept := e.groups[:0]
	for _, g := range e.groups {
		g = slices.DeleteFunc(g, func(s stroke.Stroke) bool { return slices.Contains(members, s) })
		if len(g) >= 2 {
			kept = append(kept, g)
		}
	}
	e.groups = append(kept, members)
	log.Printf("[SELECT] Grouped %d strokes (%d groups)", len(members), len(e.groups))
	return true
}

// Ungroup dissolves every group that shares a stroke with the selection and
// returns how many were dissolved.
func (e *Engine) Ungroup() int {
	n := len(e.groups)
	e.groups = slices.DeleteFunc(e.groups, func(g []stroke.Stroke) bool {
		for _, s := range g {
			if e.IsSelected(s) {
				return true
			}
		}
		return false
	})
	return n - len(e.groups)
}

// Groups returns a copy of the current groups.
func (e *Engine) Groups() [][]stroke.Stroke {
	out := make([][]stroke.Stroke, len(e.groups))
	for i, g := range e.groups {
		out[i] = slices.Clone(g)
	}
	return out
}

// SetGroups replaces the current groups with copies of groups.
func (e *Engine) SetGroups(groups [][]stroke.Stroke) {
	e.groups = make([][]stroke.Stroke, 0, len(groups))
	for _, g := range groups {
		e.groups = append(e.groups, slices.Clone(g))
	}
}

// ResetGroups forgets every group.
func (e *Engine) ResetGroups() { e.groups = nil }

// GroupOf returns the group holding s, or nil.
func (e *Engine) GroupOf(s stroke.Stroke) []stroke.Stroke {
	for _, g := range e.groups {
		if slices.Contains(g, s) {
			return slices.Clone(g)
		}
	}
	return nil
}

// expand returns s together with the rest of its group. Members that are
// not on the board right now are left out.
func (e *Engine) expand(s stroke.Stroke) []stroke.Stroke {
	g := e.GroupOf(s)
	if g == nil {
		return []stroke.Stroke{s}
	}
	return slices.DeleteFunc(g, func(m stroke.Stroke) bool { return !e.board.Contains(m) })
}
