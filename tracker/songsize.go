package tracker

// PromptState is the lifecycle state of a prompt. PromptClosed is terminal.
type PromptState int

const (
	PromptOpen PromptState = iota
	PromptCommitting
	PromptClosed
)

func (s PromptState) String() string {
	switch s {
	case PromptOpen:
		return "open"
	case PromptCommitting:
		return "committing"
	case PromptClosed:
		return "closed"
	}
	return "unknown"
}

// Keys of the widgets in the song size prompt tree.
const (
	OkayKey   = "okay"
	CancelKey = "cancel"
)

type (
	// SongSizePrompt lets the user edit beats per bar, bars per song,
	// patterns per channel and instruments per channel, and commits all four
	// as a single undoable ChangeSequence.
	SongSizePrompt struct {
		doc     *Document
		host    Host
		tree    *Tree
		editors [paramCount]*Editor
		okay    *Button
		cancel  *Button
		state   PromptState

		keyFilter  *keyFilter
		normalizer *blurNormalizer
		onOkay     *okayHandler
		onCancel   *cancelHandler
	}

	keyFilter      struct{ prompt *SongSizePrompt }
	blurNormalizer struct{ prompt *SongSizePrompt }
	okayHandler    struct{ prompt *SongSizePrompt }
	cancelHandler  struct{ prompt *SongSizePrompt }
)

var songSizeFields = [paramCount]struct{ label, hint string }{
	ParamBeats:       {"Beats per bar:", "Multiples of 3 or 4 are recommended"},
	ParamBars:        {"Bars per song:", "Multiples of 2 or 4 are recommended"},
	ParamPatterns:    {"Patterns per channel:", ""},
	ParamInstruments: {"Instruments per channel:", ""},
}

// NewSongSizePrompt builds the prompt with its editors populated from doc.
// The caller is responsible for showing it, e.g. with PromptStack.Open; the
// prompt calls host.ClosePrompt once it is confirmed or cancelled.
func NewSongSizePrompt(doc *Document, host Host) *SongSizePrompt {
	desc := TreeDesc{Title: "Custom Song Size"}
	for _, param := range Params {
		desc.Fields = append(desc.Fields, FieldDesc{
			Key:   param.String(),
			Label: songSizeFields[param].label,
			Hint:  songSizeFields[param].hint,
			Range: param.Range(),
			Value: doc.Param(param).Value(),
		})
	}
	desc.Buttons = []ButtonDesc{{Key: OkayKey, Label: "Okay"}, {Key: CancelKey, Label: "Cancel"}}
	p := &SongSizePrompt{
		doc:   doc,
		host:  host,
		tree:  BuildTree(desc),
		state: PromptOpen,
	}
	p.keyFilter = &keyFilter{p}
	p.normalizer = &blurNormalizer{p}
	p.onOkay = &okayHandler{p}
	p.onCancel = &cancelHandler{p}
	for _, param := range Params {
		p.editors[param] = p.tree.Editor(param.String())
	}
	p.okay = p.tree.Button(OkayKey)
	p.cancel = p.tree.Button(CancelKey)
	p.attach()
	return p
}

func (p *SongSizePrompt) Tree() *Tree                { return p.tree }
func (p *SongSizePrompt) State() PromptState         { return p.state }
func (p *SongSizePrompt) Editor(param Param) *Editor { return p.editors[param] }

// Confirm commits the values of the editors to the document as one history
// entry and closes the prompt. It does nothing unless the prompt is open.
func (p *SongSizePrompt) Confirm() {
	if p.state != PromptOpen {
		return
	}
	p.state = PromptCommitting
	sequence := new(ChangeSequence)
	for _, param := range Params {
		sequence.Append(NewParamChange(p.doc, param, p.editorValue(param)))
	}
	p.doc.History().Record(sequence)
	p.doc.log.Infow("song size changed",
		"beats", p.doc.song.Beats,
		"bars", p.doc.song.Bars,
		"patterns", p.doc.song.Patterns,
		"instruments", p.doc.song.Instruments)
	p.close()
}

// Cancel closes the prompt without touching the document.
func (p *SongSizePrompt) Cancel() {
	if p.state != PromptOpen {
		return
	}
	p.close()
}

// editorValue floors the editor text. Text that is not a number keeps the
// current value; bounds are enforced by the change itself.
func (p *SongSizePrompt) editorValue(param Param) int {
	if v, ok := FloorValue(p.editors[param].Text()); ok {
		return v
	}
	return param.value(&p.doc.song)
}

func (p *SongSizePrompt) attach() {
	p.okay.AddListener(ClickEvent, p.onOkay)
	p.cancel.AddListener(ClickEvent, p.onCancel)
	for _, e := range p.editors {
		e.AddListener(KeyPressEvent, p.keyFilter)
	}
	for _, e := range p.editors {
		e.AddListener(BlurEvent, p.normalizer)
	}
}

func (p *SongSizePrompt) detach() {
	p.okay.RemoveListener(ClickEvent, p.onOkay)
	p.cancel.RemoveListener(ClickEvent, p.onCancel)
	for _, e := range p.editors {
		e.RemoveListener(KeyPressEvent, p.keyFilter)
	}
	for _, e := range p.editors {
		e.RemoveListener(BlurEvent, p.normalizer)
	}
}

func (p *SongSizePrompt) close() {
	if p.state == PromptClosed {
		return
	}
	p.state = PromptClosed
	p.detach()
	p.host.ClosePrompt(p)
}

func (h *keyFilter) HandleEvent(e *Event) {
	if !AcceptKey(e.Rune) {
		e.PreventDefault()
	}
}

func (h *blurNormalizer) HandleEvent(e *Event) {
	if ed, ok := e.Target.(*Editor); ok {
		ed.SetText(Normalize(ed.Text(), ed.Range()))
	}
}

func (h *okayHandler) HandleEvent(e *Event)   { h.prompt.Confirm() }
func (h *cancelHandler) HandleEvent(e *Event) { h.prompt.Cancel() }

var _ Prompt = (*SongSizePrompt)(nil)
