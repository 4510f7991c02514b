package tracker

import "github.com/beeptrack/beeptrack"

type (
	// Change is a mutation of the document that has already been applied and
	// can be reverted with Undo and re-applied with Redo. A Change is what
	// gets recorded into the History: either a single ParamChange or a
	// ChangeSequence bundling several of them into one undo step.
	Change interface {
		Undo()
		Redo()
		// Noop reports whether applying the change left the document as it
		// was.
		Noop() bool
	}

	// ParamChange sets one song parameter. Constructing a ParamChange applies
	// it to the document immediately. The song snapshots before and after the
	// change are kept, so undoing also restores any notes, bars or patterns
	// that the structural change dropped.
	ParamChange struct {
		doc           *Document
		param         Param
		oldValue      int
		newValue      int
		before, after beeptrack.Song
	}

	// ChangeSequence is an ordered batch of Changes. It is undone in reverse
	// order and redone in forward order, always in full.
	ChangeSequence struct {
		changes []Change
	}

	// songChange replaces the whole song, e.g. when loading a file.
	songChange struct {
		doc           *Document
		before, after beeptrack.Song
	}
)

// NewParamChange sets param of the document to value, clamped to the bounds
// of the param, and returns the Change describing it.
func NewParamChange(doc *Document, param Param, value int) *ParamChange {
	c := &ParamChange{
		doc:      doc,
		param:    param,
		oldValue: param.value(&doc.song),
		before:   doc.song.Copy(),
	}
	param.apply(&doc.song, param.Range().Clamp(value))
	c.newValue = param.value(&doc.song)
	c.after = doc.song.Copy()
	if !c.Noop() {
		doc.changed()
	}
	return c
}

func NewChangeBeats(doc *Document, beats int) *ParamChange {
	return NewParamChange(doc, ParamBeats, beats)
}

func NewChangeBars(doc *Document, bars int) *ParamChange {
	return NewParamChange(doc, ParamBars, bars)
}

func NewChangePatterns(doc *Document, patterns int) *ParamChange {
	return NewParamChange(doc, ParamPatterns, patterns)
}

func NewChangeInstruments(doc *Document, instruments int) *ParamChange {
	return NewParamChange(doc, ParamInstruments, instruments)
}

func (c *ParamChange) Param() Param  { return c.param }
func (c *ParamChange) OldValue() int { return c.oldValue }
func (c *ParamChange) NewValue() int { return c.newValue }
func (c *ParamChange) Noop() bool    { return c.oldValue == c.newValue }

func (c *ParamChange) Undo() {
	c.doc.song = c.before.Copy()
	c.doc.changed()
}

func (c *ParamChange) Redo() {
	c.doc.song = c.after.Copy()
	c.doc.changed()
}

// Append adds an already applied change to the end of the sequence.
func (s *ChangeSequence) Append(c Change) {
	s.changes = append(s.changes, c)
}

func (s *ChangeSequence) Len() int { return len(s.changes) }

// Changes returns the changes of the sequence in the order they were applied.
func (s *ChangeSequence) Changes() []Change {
	return append([]Change(nil), s.changes...)
}

func (s *ChangeSequence) Noop() bool {
	for _, c := range s.changes {
		if !c.Noop() {
			return false
		}
	}
	return true
}

func (s *ChangeSequence) Undo() {
	for i := len(s.changes) - 1; i >= 0; i-- {
		s.changes[i].Undo()
	}
}

func (s *ChangeSequence) Redo() {
	for _, c := range s.changes {
		c.Redo()
	}
}

func newSongChange(doc *Document, song beeptrack.Song) *songChange {
	c := &songChange{doc: doc, before: doc.song.Copy(), after: song.Copy()}
	doc.song = song.Copy()
	doc.changed()
	return c
}

func (c *songChange) Undo() {
	c.doc.song = c.before.Copy()
	c.doc.changed()
}

func (c *songChange) Redo() {
	c.doc.song = c.after.Copy()
	c.doc.changed()
}

func (c *songChange) Noop() bool { return false }
