package gioui

import (
	"fmt"
	"image"
	"os"

	"gioui.org/app"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"github.com/beeptrack/beeptrack/tracker"
	"go.uber.org/zap"
)

type (
	// Tracker is the editor window: the song panel with the prompt stack drawn
	// on top of it.
	Tracker struct {
		Theme     *Theme
		Doc       *tracker.Document
		Prompts   *tracker.PromptStack
		SongPanel *SongPanel

		dialog      *PromptDialog
		preferences Preferences
		keyMap      KeyMap
		log         *zap.SugaredLogger
	}

	SaveSong Tracker

	C = layout.Context
	D = layout.Dimensions
)

func NewTracker(doc *tracker.Document, log *zap.SugaredLogger) *Tracker {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	t := &Tracker{
		Theme:   NewTheme(),
		Doc:     doc,
		Prompts: tracker.NewPromptStack(log),
		log:     log,
	}
	var err error
	if t.preferences, err = MakePreferences(); err != nil {
		log.Warnw("could not read preferences", "error", err)
	}
	t.keyMap = t.preferences.KeyMap()
	t.SongPanel = NewSongPanel(t)
	return t
}

// Main runs the window until it is closed.
func (t *Tracker) Main() error {
	w := new(app.Window)
	w.Option(app.Size(t.preferences.WindowSize()))
	if t.preferences.Window.Maximized {
		w.Option(app.Maximized.Option())
	}
	var ops op.Ops
	title := ""
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			t.Prompts.CancelAll()
			return e.Err
		case app.FrameEvent:
			if s := titleFromDocument(t.Doc); s != title {
				title = s
				w.Option(app.Title(title))
			}
			gtx := app.NewContext(&ops, e)
			t.Layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func titleFromDocument(doc *tracker.Document) string {
	title := "beeptrack"
	if path := doc.FilePath(); path != "" {
		title = fmt.Sprintf("beeptrack - %s", path)
	}
	if doc.ChangedSinceSave() {
		title += " *"
	}
	return title
}

func (t *Tracker) Layout(gtx C) {
	defer clip.Rect(image.Rectangle{Max: gtx.Constraints.Max}).Push(gtx.Ops).Pop()
	paint.Fill(gtx.Ops, t.Theme.Material.Bg)
	event.Op(gtx.Ops, t)
	t.SongPanel.Layout(gtx, t)
	t.layoutPrompt(gtx)
	for {
		ev, ok := gtx.Event(key.Filter{Name: "", Optional: key.ModShortcut | key.ModShift | key.ModAlt | key.ModCtrl})
		if !ok {
			break
		}
		if e, ok := ev.(key.Event); ok && e.State == key.Press {
			t.KeyEvent(e)
		}
	}
}

// layoutPrompt draws the active prompt, if any. The dialog is rebuilt
// whenever the active prompt changes.
func (t *Tracker) layoutPrompt(gtx C) {
	p := t.Prompts.Active()
	if p == nil {
		t.dialog = nil
		return
	}
	if t.dialog == nil || t.dialog.Prompt() != p {
		t.dialog = NewPromptDialog(p)
	}
	PromptDialogLayout(t.Theme, t.dialog).Layout(gtx)
}

// KeyEvent runs the action bound to e. While a prompt is open, only the
// prompt's own actions are available.
func (t *Tracker) KeyEvent(e key.Event) {
	action, ok := t.keyMap.Action(e)
	if !ok {
		return
	}
	if t.dialog != nil && t.Prompts.Active() != nil {
		switch action {
		case "Confirm":
			t.dialog.Confirm()
		case "Cancel":
			t.dialog.Cancel()
		}
		return
	}
	switch action {
	case "Undo":
		t.Doc.Undo().Do()
	case "Redo":
		t.Doc.Redo().Do()
	case "SongSize":
		t.Prompts.SongSize(t.Doc).Do()
	case "SaveSong":
		t.SaveSong().Do()
	default:
		t.log.Debugw("unknown key action", "action", action)
	}
}

// SaveSong writes the song back to the file it was loaded from.
func (t *Tracker) SaveSong() tracker.Action { return tracker.MakeAction((*SaveSong)(t)) }
func (t *SaveSong) Enabled() bool {
	return t.Doc.FilePath() != "" && t.Doc.ChangedSinceSave() && t.Prompts.Len() == 0
}
func (t *SaveSong) Do() {
	f, err := os.Create(t.Doc.FilePath())
	if err != nil {
		t.log.Errorw("could not save song", "error", err)
		return
	}
	if err := t.Doc.WriteSong(f); err != nil {
		t.log.Errorw("could not save song", "error", err)
	}
}
