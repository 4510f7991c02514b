package tracker

import (
	"slices"
	"strconv"
)

type (
	// Widget is a node of a prompt's widget tree that can receive events.
	Widget interface {
		Key() string
		AddListener(kind EventKind, h Handler)
		RemoveListener(kind EventKind, h Handler) (removed bool)
	}

	EventKind int

	// Event is delivered to the handlers listening on its Target. A KeyPress
	// handler may call PreventDefault to keep the character out of the
	// editor.
	Event struct {
		Kind      EventKind
		Rune      rune
		Target    Widget
		prevented bool
	}

	// Handler receives events. The handler value is its identity: the same
	// value must be given to RemoveListener that was given to AddListener, so
	// handlers have to be comparable, in practice pointers.
	Handler interface {
		HandleEvent(e *Event)
	}

	listeners struct {
		entries []listener
	}

	listener struct {
		kind    EventKind
		handler Handler
	}

	// Editor is a single line bounded number editor.
	Editor struct {
		listeners
		key     string
		text    string
		bounds  RangeInclusive
		focused bool
	}

	Button struct {
		listeners
		key   string
		Label string
	}
)

const (
	KeyPressEvent EventKind = iota
	BlurEvent
	ClickEvent
)

func (k EventKind) String() string {
	switch k {
	case KeyPressEvent:
		return "keypress"
	case BlurEvent:
		return "blur"
	case ClickEvent:
		return "click"
	}
	return "unknown"
}

func (e *Event) PreventDefault()        { e.prevented = true }
func (e *Event) DefaultPrevented() bool { return e.prevented }

// AddListener registers h for events of the given kind. Adding the same
// handler twice for the same kind has no effect.
func (l *listeners) AddListener(kind EventKind, h Handler) {
	for _, e := range l.entries {
		if e.kind == kind && e.handler == h {
			return
		}
	}
	l.entries = append(l.entries, listener{kind: kind, handler: h})
}

// RemoveListener unregisters h. Removing a handler that is not registered is
// a no-op.
func (l *listeners) RemoveListener(kind EventKind, h Handler) (removed bool) {
	for i, e := range l.entries {
		if e.kind == kind && e.handler == h {
			l.entries = slices.Delete(l.entries, i, i+1)
			return true
		}
	}
	return false
}

// ListenerCount returns the number of registered handlers of all kinds.
func (l *listeners) ListenerCount() int { return len(l.entries) }

func (l *listeners) dispatch(e *Event) {
	// handlers may remove listeners while we iterate
	for _, entry := range slices.Clone(l.entries) {
		if entry.kind == e.Kind {
			entry.handler.HandleEvent(e)
		}
	}
}

func (e *Editor) Key() string               { return e.key }
func (e *Editor) Text() string              { return e.text }
func (e *Editor) Range() RangeInclusive     { return e.bounds }
func (e *Editor) Focused() bool             { return e.focused }
func (e *Editor) Focus()                    { e.focused = true }
func (e *Editor) SetText(text string)       { e.text = text }
func (e *Editor) SetRange(r RangeInclusive) { e.bounds = r }

// KeyPress delivers a typed character to the editor. Unless a handler
// prevents it, printable characters are appended and backspace deletes the
// last character.
func (e *Editor) KeyPress(r rune) (inserted bool) {
	ev := Event{Kind: KeyPressEvent, Rune: r, Target: e}
	e.dispatch(&ev)
	if ev.prevented {
		return false
	}
	switch {
	case r == '\b':
		if t := []rune(e.text); len(t) > 0 {
			e.text = string(t[:len(t)-1])
		}
	case r >= ' ':
		e.text += string(r)
	}
	return true
}

// Type delivers every character of s as a key press.
func (e *Editor) Type(s string) {
	for _, r := range s {
		e.KeyPress(r)
	}
}

// Replace clears the editor and types text into it, so the result only
// contains characters the key handlers let through.
func (e *Editor) Replace(text string) {
	e.text = ""
	e.Type(text)
}

// Blur removes focus from the editor and notifies the blur handlers.
func (e *Editor) Blur() {
	e.focused = false
	e.dispatch(&Event{Kind: BlurEvent, Target: e})
}

func (b *Button) Key() string { return b.key }

func (b *Button) Click() {
	b.dispatch(&Event{Kind: ClickEvent, Target: b})
}

// Widget tree

type (
	// TreeDesc describes the contents of a prompt.
	TreeDesc struct {
		Title   string
		Fields  []FieldDesc
		Buttons []ButtonDesc
	}

	FieldDesc struct {
		Key   string
		Label string
		Hint  string
		Range RangeInclusive
		Value int
	}

	ButtonDesc struct {
		Key   string
		Label string
	}

	// Tree owns the widgets of one prompt. Rendering code walks Fields and
	// Buttons in order.
	Tree struct {
		Title   string
		Fields  []*Field
		Buttons []*Button
	}

	Field struct {
		Label  string
		Hint   string
		Editor *Editor
	}
)

// BuildTree creates fresh widgets for desc. The returned tree shares nothing
// with other trees.
func BuildTree(desc TreeDesc) *Tree {
	t := &Tree{Title: desc.Title}
	for _, f := range desc.Fields {
		editor := &Editor{key: f.Key, text: strconv.Itoa(f.Value), bounds: f.Range}
		t.Fields = append(t.Fields, &Field{Label: f.Label, Hint: f.Hint, Editor: editor})
	}
	for _, b := range desc.Buttons {
		t.Buttons = append(t.Buttons, &Button{key: b.Key, Label: b.Label})
	}
	return t
}

// Editor returns the editor with the given key, or nil.
func (t *Tree) Editor(key string) *Editor {
	for _, f := range t.Fields {
		if f.Editor.key == key {
			return f.Editor
		}
	}
	return nil
}

// Button returns the button with the given key, or nil.
func (t *Tree) Button(key string) *Button {
	for _, b := range t.Buttons {
		if b.key == key {
			return b
		}
	}
	return nil
}

// ListenerCount returns the number of handlers attached to all the widgets of
// the tree.
func (t *Tree) ListenerCount() int {
	n := 0
	for _, f := range t.Fields {
		n += f.Editor.ListenerCount()
	}
	for _, b := range t.Buttons {
		n += b.ListenerCount()
	}
	return n
}
