package gioui

import (
	"image"

	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/component"
	"github.com/beeptrack/beeptrack/tracker"
)

type (
	// PromptDialog renders the widget tree of a tracker.Prompt and forwards
	// the user's input to it: typed text goes through the editor's key
	// handlers, focus loss blurs the editor and button clicks click the
	// tree's buttons.
	PromptDialog struct {
		prompt  tracker.Prompt
		fields  []*dialogField
		buttons []*dialogButton
		submit  bool
	}

	dialogField struct {
		field   *tracker.Field
		editor  widget.Editor
		tipArea component.TipArea
		focused bool
	}

	dialogButton struct {
		button    *tracker.Button
		clickable widget.Clickable
	}

	PromptDialogStyle struct {
		dialog      *PromptDialog
		Theme       *Theme
		Inset       layout.Inset
		FieldInset  layout.Inset
		LabelWidth  unit.Dp
		EditorWidth unit.Dp
	}
)

func NewPromptDialog(p tracker.Prompt) *PromptDialog {
	d := &PromptDialog{prompt: p}
	tree := p.Tree()
	for _, f := range tree.Fields {
		df := &dialogField{field: f}
		df.editor.SingleLine = true
		df.editor.Submit = true
		df.editor.SetText(f.Editor.Text())
		d.fields = append(d.fields, df)
	}
	for _, b := range tree.Buttons {
		d.buttons = append(d.buttons, &dialogButton{button: b})
	}
	return d
}

func (d *PromptDialog) Prompt() tracker.Prompt { return d.prompt }

func PromptDialogLayout(th *Theme, d *PromptDialog) PromptDialogStyle {
	return PromptDialogStyle{
		dialog:      d,
		Theme:       th,
		Inset:       layout.Inset{Top: unit.Dp(12), Bottom: unit.Dp(12), Left: unit.Dp(20), Right: unit.Dp(20)},
		FieldInset:  layout.Inset{Top: unit.Dp(4), Bottom: unit.Dp(4)},
		LabelWidth:  unit.Dp(220),
		EditorWidth: unit.Dp(60),
	}
}

// Update processes the input of the last frame. Editors are synced and blurred
// before buttons are clicked, so a click sees normalized text.
func (d *PromptDialog) Update(gtx C) {
	for _, f := range d.fields {
		for {
			ev, ok := f.editor.Update(gtx)
			if !ok {
				break
			}
			switch ev.(type) {
			case widget.ChangeEvent:
				f.field.Editor.Replace(f.editor.Text())
				f.syncText()
			case widget.SubmitEvent:
				d.submit = true
			}
		}
		focused := gtx.Source.Focused(&f.editor)
		switch {
		case focused && !f.focused:
			f.field.Editor.Focus()
		case !focused && f.focused:
			f.field.Editor.Blur()
			f.syncText()
		}
		f.focused = focused
	}
	if d.submit {
		d.submit = false
		d.Confirm()
		return
	}
	for _, b := range d.buttons {
		for b.clickable.Clicked(gtx) {
			b.button.Click()
		}
	}
}

// Confirm blurs the focused editor and confirms the prompt.
func (d *PromptDialog) Confirm() {
	d.blurAll()
	d.prompt.Confirm()
}

func (d *PromptDialog) Cancel() {
	d.prompt.Cancel()
}

func (d *PromptDialog) blurAll() {
	for _, f := range d.fields {
		if f.focused {
			f.focused = false
			f.field.Editor.Blur()
			f.syncText()
		}
	}
}

func (f *dialogField) syncText() {
	if t := f.field.Editor.Text(); t != f.editor.Text() {
		f.editor.SetText(t)
		f.editor.SetCaret(len(t), len(t))
	}
}

func (d *PromptDialog) focusFirst(gtx C) {
	for _, f := range d.fields {
		if gtx.Source.Focused(&f.editor) {
			return
		}
	}
	for _, b := range d.buttons {
		if gtx.Source.Focused(&b.clickable) {
			return
		}
	}
	if len(d.fields) > 0 {
		gtx.Execute(key.FocusCmd{Tag: &d.fields[0].editor})
	}
}

func (s PromptDialogStyle) Layout(gtx C) D {
	d := s.dialog
	d.Update(gtx)
	d.focusFirst(gtx)
	th := s.Theme
	paint.Fill(gtx.Ops, dialogBgColor)
	tree := d.prompt.Tree()
	children := []layout.FlexChild{
		layout.Rigid(Label(tree.Title, highEmphasisTextColor, th.Material.Shaper)),
	}
	for _, f := range d.fields {
		children = append(children, layout.Rigid(func(gtx C) D {
			return s.FieldInset.Layout(gtx, func(gtx C) D { return s.layoutField(gtx, f) })
		}))
	}
	children = append(children, layout.Rigid(func(gtx C) D {
		return layout.E.Layout(gtx, func(gtx C) D {
			buttons := make([]layout.FlexChild, 0, len(d.buttons))
			for i, b := range d.buttons {
				btn := LowEmphasisButton(&th.Material, &b.clickable, b.button.Label)
				if i == 0 {
					btn = HighEmphasisButton(&th.Material, &b.clickable, b.button.Label)
				}
				buttons = append(buttons, layout.Rigid(func(gtx C) D {
					return layout.UniformInset(unit.Dp(4)).Layout(gtx, btn.Layout)
				}))
			}
			return layout.Flex{Axis: layout.Horizontal}.Layout(gtx, buttons...)
		})
	}))
	return layout.Center.Layout(gtx, func(gtx C) D {
		return Popup().Layout(gtx, func(gtx C) D {
			return s.Inset.Layout(gtx, func(gtx C) D {
				return layout.Flex{Axis: layout.Vertical}.Layout(gtx, children...)
			})
		})
	})
}

func (s PromptDialogStyle) layoutField(gtx C, f *dialogField) D {
	th := s.Theme
	editor := func(gtx C) D {
		gtx.Constraints = layout.Exact(image.Pt(gtx.Dp(s.EditorWidth), gtx.Sp(th.Material.TextSize*3/2)))
		defer clip.UniformRRect(image.Rectangle{Max: gtx.Constraints.Min}, gtx.Dp(4)).Push(gtx.Ops).Pop()
		paint.Fill(gtx.Ops, editorBgColor)
		return layout.UniformInset(unit.Dp(2)).Layout(gtx, func(gtx C) D {
			ed := material.Editor(&th.Material, &f.editor, "")
			ed.Color = white
			return ed.Layout(gtx)
		})
	}
	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			gtx.Constraints.Min.X = gtx.Dp(s.LabelWidth)
			return Label(f.field.Label, mediumEmphasisTextColor, th.Material.Shaper)(gtx)
		}),
		layout.Rigid(func(gtx C) D {
			if f.field.Hint == "" {
				return editor(gtx)
			}
			return f.tipArea.Layout(gtx, Tooltip(th, f.field.Hint), editor)
		}),
	)
}
