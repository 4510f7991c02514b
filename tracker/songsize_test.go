package tracker_test

import (
	"strconv"
	"testing"

	"github.com/beeptrack/beeptrack"
	"github.com/beeptrack/beeptrack/tracker"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"go.uber.org/zap"
)

type recordingHost struct {
	closed []tracker.Prompt
}

func (h *recordingHost) ClosePrompt(p tracker.Prompt) {
	h.closed = append(h.closed, p)
}

func newTestDocument() *tracker.Document {
	return tracker.NewDocument(beeptrack.DefaultSong(), zap.NewNop().Sugar())
}

func songSize(doc *tracker.Document) [4]int {
	return [4]int{doc.Beats().Value(), doc.Bars().Value(), doc.Patterns().Value(), doc.Instruments().Value()}
}

func setEditors(p *tracker.SongSizePrompt, values ...string) {
	for i, param := range tracker.Params {
		e := p.Editor(param)
		e.Focus()
		e.Replace(values[i])
		e.Blur()
	}
}

func TestSongSizePromptPopulatesEditors(t *testing.T) {
	doc := newTestDocument()
	p := tracker.NewSongSizePrompt(doc, &recordingHost{})
	want := songSize(doc)
	for i, param := range tracker.Params {
		e := p.Editor(param)
		if e.Text() != strconv.Itoa(want[i]) {
			t.Errorf("%v editor: expected %d, got %q", param, want[i], e.Text())
		}
		if e.Range() != param.Range() {
			t.Errorf("%v editor: expected range %v, got %v", param, param.Range(), e.Range())
		}
	}
	if p.State() != tracker.PromptOpen {
		t.Errorf("expected a new prompt to be open, got %v", p.State())
	}
	if got := p.Tree().ListenerCount(); got != 10 {
		t.Errorf("expected 10 attached handlers, got %d", got)
	}
}

func TestSongSizePromptRejectsNonNumericKeys(t *testing.T) {
	doc := newTestDocument()
	p := tracker.NewSongSizePrompt(doc, &recordingHost{})
	for _, param := range tracker.Params {
		e := p.Editor(param)
		before := e.Text()
		for _, r := range "aZ-+ eE,/:~ä" {
			if e.KeyPress(r) {
				t.Errorf("%v editor: key %q should have been rejected", param, r)
			}
		}
		if e.Text() != before {
			t.Errorf("%v editor: expected %q, got %q", param, before, e.Text())
		}
		if !e.KeyPress('7') || !e.KeyPress('.') {
			t.Errorf("%v editor: digits and the decimal point should be accepted", param)
		}
		if e.Text() != before+"7." {
			t.Errorf("%v editor: expected %q, got %q", param, before+"7.", e.Text())
		}
	}
}

func TestSongSizePromptNormalizesOnBlur(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"", "3"},
		{"abc", "3"},
		{"0", "3"},
		{"-5", "3"},
		{"999", "15"},
		{"7.9", "7"},
		{" 12 ", "12"},
		{"1e1", "10"},
		{"Infinity", "15"},
		{"4", "4"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			p := tracker.NewSongSizePrompt(newTestDocument(), &recordingHost{})
			e := p.Editor(tracker.ParamBeats)
			e.SetText(tt.text)
			e.Blur()
			if e.Text() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, e.Text())
			}
		})
	}
}

func TestSongSizePromptBlurKeepsEveryEditorInRange(t *testing.T) {
	p := tracker.NewSongSizePrompt(newTestDocument(), &recordingHost{})
	for _, param := range tracker.Params {
		for _, text := range []string{"-1000", "0", "1", "5.5", "64", "1000", "x"} {
			e := p.Editor(param)
			e.SetText(text)
			e.Blur()
			v, err := strconv.Atoi(e.Text())
			if err != nil {
				t.Fatalf("%v editor: %q normalized to a non-integer %q", param, text, e.Text())
			}
			if r := param.Range(); v < r.Min || v > r.Max {
				t.Errorf("%v editor: %q normalized to %d, outside [%d,%d]", param, text, v, r.Min, r.Max)
			}
		}
	}
}

func TestSongSizePromptConfirm(t *testing.T) {
	doc := newTestDocument()
	stack := tracker.NewPromptStack(nil)
	p := tracker.NewSongSizePrompt(doc, stack)
	stack.Open(p)
	setEditors(p, "10", "8", "4", "2")
	p.Tree().Button(tracker.OkayKey).Click()
	if got, want := songSize(doc), [4]int{10, 8, 4, 2}; got != want {
		t.Errorf("expected song size %v, got %v", want, got)
	}
	if doc.History().Len() != 1 {
		t.Fatalf("expected exactly one history entry, got %d", doc.History().Len())
	}
	last, _ := doc.History().Last()
	seq, ok := last.(*tracker.ChangeSequence)
	if !ok {
		t.Fatalf("expected a ChangeSequence, got %T", last)
	}
	if seq.Len() != 4 {
		t.Fatalf("expected 4 changes, got %d", seq.Len())
	}
	for i, c := range seq.Changes() {
		pc, ok := c.(*tracker.ParamChange)
		if !ok {
			t.Fatalf("change %d: expected a ParamChange, got %T", i, c)
		}
		if pc.Param() != tracker.Params[i] {
			t.Errorf("change %d: expected %v, got %v", i, tracker.Params[i], pc.Param())
		}
	}
	if p.State() != tracker.PromptClosed {
		t.Errorf("expected the prompt to be closed, got %v", p.State())
	}
	if stack.Len() != 0 {
		t.Errorf("expected the prompt to be removed from the stack")
	}
}

func TestSongSizePromptUndoRevertsAllParams(t *testing.T) {
	doc := newTestDocument()
	before := songSize(doc)
	p := tracker.NewSongSizePrompt(doc, &recordingHost{})
	setEditors(p, "10", "8", "4", "2")
	p.Confirm()
	doc.Undo().Do()
	if got := songSize(doc); got != before {
		t.Errorf("expected one undo to restore %v, got %v", before, got)
	}
	if doc.Undo().Enabled() {
		t.Errorf("expected nothing left to undo")
	}
	doc.Redo().Do()
	if got, want := songSize(doc), [4]int{10, 8, 4, 2}; got != want {
		t.Errorf("expected redo to restore %v, got %v", want, got)
	}
}

func TestSongSizePromptUndoRestoresSongData(t *testing.T) {
	song := beeptrack.DefaultSong()
	song.Instruments = 2
	song.Channels[1].Sequence[12] = 6
	song.Channels[1].Patterns[5] = beeptrack.Pattern{
		Instrument: 1,
		Notes:      []beeptrack.Note{{Pitches: []int{60}, Start: 20, End: 28}},
	}
	doc := tracker.NewDocument(song, nil)
	p := tracker.NewSongSizePrompt(doc, &recordingHost{})
	setEditors(p, "4", "8", "4", "1")
	p.Confirm()
	after := doc.Song()
	if err := after.Validate(); err != nil {
		t.Errorf("song invalid after resize: %v", err)
	}
	doc.Undo().Do()
	if diff := cmp.Diff(song, doc.Song(), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("undo did not restore the song (-want +got):\n%s", diff)
	}
}

func TestSongSizePromptCancel(t *testing.T) {
	doc := newTestDocument()
	before := songSize(doc)
	host := &recordingHost{}
	p := tracker.NewSongSizePrompt(doc, host)
	setEditors(p, "10", "8", "4", "2")
	p.Tree().Button(tracker.CancelKey).Click()
	if got := songSize(doc); got != before {
		t.Errorf("cancel changed the song size from %v to %v", before, got)
	}
	if doc.History().Len() != 0 {
		t.Errorf("cancel recorded %d history entries", doc.History().Len())
	}
	if len(host.closed) != 1 || host.closed[0] != tracker.Prompt(p) {
		t.Errorf("expected the host to be asked to close the prompt once, got %v", host.closed)
	}
}

func TestSongSizePromptIgnoresEventsAfterClose(t *testing.T) {
	for _, name := range []string{tracker.OkayKey, tracker.CancelKey} {
		t.Run(name, func(t *testing.T) {
			doc := newTestDocument()
			host := &recordingHost{}
			p := tracker.NewSongSizePrompt(doc, host)
			setEditors(p, "12", "32", "16", "5")
			p.Tree().Button(name).Click()
			size, entries := songSize(doc), doc.History().Len()
			if n := p.Tree().ListenerCount(); n != 0 {
				t.Errorf("expected all handlers to be detached, %d remain", n)
			}
			for _, param := range tracker.Params {
				e := p.Editor(param)
				e.KeyPress('x')
				e.KeyPress('3')
				e.Blur()
			}
			p.Tree().Button(tracker.OkayKey).Click()
			p.Tree().Button(tracker.CancelKey).Click()
			p.Confirm()
			p.Cancel()
			if got := songSize(doc); got != size {
				t.Errorf("events after close changed the song size from %v to %v", size, got)
			}
			if doc.History().Len() != entries {
				t.Errorf("events after close changed the history")
			}
			if len(host.closed) != 1 {
				t.Errorf("expected exactly one ClosePrompt call, got %d", len(host.closed))
			}
		})
	}
}

func TestSongSizePromptClampsValuesThatWereNeverBlurred(t *testing.T) {
	doc := newTestDocument()
	p := tracker.NewSongSizePrompt(doc, &recordingHost{})
	p.Editor(tracker.ParamBeats).Replace("99")
	p.Editor(tracker.ParamBars).Replace("2.5")
	p.Editor(tracker.ParamPatterns).Replace("")
	p.Editor(tracker.ParamInstruments).Replace(".")
	p.Confirm()
	if got, want := songSize(doc), [4]int{beeptrack.BeatsMax, 2, beeptrack.PatternsMin, 1}; got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestSongSizePromptUnchangedConfirmRecordsNothing(t *testing.T) {
	doc := newTestDocument()
	p := tracker.NewSongSizePrompt(doc, &recordingHost{})
	p.Confirm()
	if doc.History().Len() != 0 {
		t.Errorf("confirming unchanged values recorded %d entries", doc.History().Len())
	}
	if p.State() != tracker.PromptClosed {
		t.Errorf("expected the prompt to close, got %v", p.State())
	}
}
