package tracker

import (
	"fmt"

	"go.uber.org/zap"
)

const maxUndo = 256

// History is the undo/redo stack of a Document. Each entry is one Change;
// a ChangeSequence counts as a single entry, so one Undo reverts all of it.
type History struct {
	undoStack []Change
	redoStack []Change
	log       *zap.SugaredLogger
}

// Record pushes an already applied change onto the undo stack and clears the
// redo stack. Changes that did not modify anything are not recorded.
func (h *History) Record(c Change) (recorded bool) {
	if c == nil || c.Noop() {
		return false
	}
	h.undoStack = pushCapped(h.undoStack, c)
	h.redoStack = nil
	h.logger().Debugw("recorded change", "change", describeChange(c), "undoDepth", len(h.undoStack))
	return true
}

// Undo reverts the most recent entry.
func (h *History) Undo() bool {
	if len(h.undoStack) == 0 {
		return false
	}
	c := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	c.Undo()
	h.redoStack = pushCapped(h.redoStack, c)
	h.logger().Debugw("undo", "change", describeChange(c), "undoDepth", len(h.undoStack))
	return true
}

// Redo re-applies the most recently undone entry.
func (h *History) Redo() bool {
	if len(h.redoStack) == 0 {
		return false
	}
	c := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	c.Redo()
	h.undoStack = pushCapped(h.undoStack, c)
	h.logger().Debugw("redo", "change", describeChange(c), "undoDepth", len(h.undoStack))
	return true
}

func (h *History) CanUndo() bool { return len(h.undoStack) > 0 }
func (h *History) CanRedo() bool { return len(h.redoStack) > 0 }

// Len returns the number of entries that can be undone.
func (h *History) Len() int { return len(h.undoStack) }

// Last returns the entry that the next Undo would revert.
func (h *History) Last() (Change, bool) {
	if len(h.undoStack) == 0 {
		return nil, false
	}
	return h.undoStack[len(h.undoStack)-1], true
}

func (h *History) logger() *zap.SugaredLogger {
	if h.log == nil {
		return zap.NewNop().Sugar()
	}
	return h.log
}

func pushCapped(stack []Change, c Change) []Change {
	if len(stack) >= maxUndo {
		copy(stack, stack[len(stack)-maxUndo+1:])
		stack = stack[:maxUndo-1]
	}
	return append(stack, c)
}

func describeChange(c Change) string {
	switch c := c.(type) {
	case *ParamChange:
		return fmt.Sprintf("%v %d->%d", c.param, c.oldValue, c.newValue)
	case *ChangeSequence:
		return fmt.Sprintf("sequence of %d", len(c.changes))
	case *songChange:
		return "song"
	}
	return fmt.Sprintf("%T", c)
}

// Undo returns an Action to undo the last change.
func (d *Document) Undo() Action { return MakeAction((*historyUndo)(d)) }

type historyUndo Document

func (d *historyUndo) Enabled() bool { return d.history.CanUndo() }
func (d *historyUndo) Do()           { d.history.Undo() }

// Redo returns an Action to redo the last undone change.
func (d *Document) Redo() Action { return MakeAction((*historyRedo)(d)) }

type historyRedo Document

func (d *historyRedo) Enabled() bool { return d.history.CanRedo() }
func (d *historyRedo) Do()           { d.history.Redo() }
