package action

import "log"

// History is a linear undo/redo log. Pushing a new action discards the
// redo stack; branching redo is not supported.
type History struct {
	undo []Action
	redo []Action

	// Limit caps the undo stack. Zero means unlimited.
	Limit int
	// OnChange, when set, runs after every push, undo, redo and reset.
	OnChange func()
}

// NewHistory creates an empty log.
func NewHistory() *History {
	return &History{}
}

func (h *History) changed() {
	if h.OnChange != nil {
		h.OnChange()
	}
}

// Push records an action that has already been performed.
func (h *History) Push(a Action) {
	if a == nil {
		return
	}
	h.undo = append(h.undo, a)
	if h.Limit > 0 && len(h.undo) > h.Limit {
		h.undo = h.undo[len(h.undo)-h.Limit:]
	}
	h.redo = nil
	log.Printf("[HISTORY] Recorded %s (%d undoable)", a.Kind(), len(h.undo))
	h.changed()
}

// Undo reverses the latest action. It reports false when there is nothing
// to undo.
func (h *History) Undo() bool {
	if len(h.undo) == 0 {
		return false
	}
	a := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, a.Undo())
	log.Printf("[HISTORY] Undid %s", a.Kind())
	h.changed()
	return true
}

// Redo re-applies the latest undone action. It reports false when there is
// nothing to redo.
func (h *History) Redo() bool {
	if len(h.redo) == 0 {
		return false
	}
	a := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, a.Redo())
	log.Printf("[HISTORY] Redid %s", a.Kind())
	h.changed()
	return true
}

// CanUndo reports whether Undo would do anything.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether Redo would do anything.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Len returns the sizes of the undo and redo stacks.
func (h *History) Len() (undo, redo int) { return len(h.undo), len(h.redo) }

// Peek returns the action Undo would reverse, or nil.
func (h *History) Peek() Action {
	if len(h.undo) == 0 {
		return nil
	}
	return h.undo[len(h.undo)-1]
}

// Reset empties both stacks.
func (h *History) Reset() {
	h.undo, h.redo = nil, nil
	h.changed()
}
