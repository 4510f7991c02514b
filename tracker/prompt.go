package tracker

import (
	"go.uber.org/zap"
)

type (
	// Prompt is a modal dialog shown on top of the editor. Only the topmost
	// prompt of a PromptStack receives input.
	Prompt interface {
		Tree() *Tree
		Confirm()
		Cancel()
	}

	// Host is told when a prompt is done and should be removed from view.
	Host interface {
		ClosePrompt(p Prompt)
	}

	// PromptStack is the Host of the editor window: it keeps the open prompts
	// in the order they were opened.
	PromptStack struct {
		prompts []Prompt
		log     *zap.SugaredLogger
	}
)

func NewPromptStack(log *zap.SugaredLogger) *PromptStack {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &PromptStack{log: log}
}

func (s *PromptStack) Open(p Prompt) {
	s.prompts = append(s.prompts, p)
	s.log.Debugw("opened prompt", "title", p.Tree().Title, "depth", len(s.prompts))
}

// ClosePrompt removes p from the stack. Closing a prompt that is not on the
// stack does nothing.
func (s *PromptStack) ClosePrompt(p Prompt) {
	for i := len(s.prompts) - 1; i >= 0; i-- {
		if s.prompts[i] == p {
			s.prompts = append(s.prompts[:i], s.prompts[i+1:]...)
			s.log.Debugw("closed prompt", "title", p.Tree().Title, "depth", len(s.prompts))
			return
		}
	}
}

// Active returns the topmost prompt, or nil if no prompt is open.
func (s *PromptStack) Active() Prompt {
	if len(s.prompts) == 0 {
		return nil
	}
	return s.prompts[len(s.prompts)-1]
}

func (s *PromptStack) Len() int { return len(s.prompts) }

// CancelAll cancels every open prompt, topmost first.
func (s *PromptStack) CancelAll() {
	for p := s.Active(); p != nil; p = s.Active() {
		n := len(s.prompts)
		p.Cancel()
		if len(s.prompts) == n { // prompt did not close itself
			s.ClosePrompt(p)
		}
	}
}

// SongSize returns an Action that opens the song size prompt for doc. It is
// disabled while another prompt is open.
func (s *PromptStack) SongSize(doc *Document) Action {
	return MakeAction(&openSongSize{stack: s, doc: doc})
}

type openSongSize struct {
	stack *PromptStack
	doc   *Document
}

func (o *openSongSize) Enabled() bool { return o.stack.Len() == 0 }
func (o *openSongSize) Do()           { o.stack.Open(NewSongSizePrompt(o.doc, o.stack)) }
