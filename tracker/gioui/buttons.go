package gioui

import (
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/component"
	"github.com/beeptrack/beeptrack/tracker"
)

// ActionClickable binds a clickable area to a tracker.Action.
type ActionClickable struct {
	Action    tracker.Action
	Clickable widget.Clickable
	tipArea   component.TipArea
}

func NewActionClickable(a tracker.Action) *ActionClickable {
	return &ActionClickable{Action: a}
}

// update performs the action once for every click since the last frame.
func (a *ActionClickable) update(gtx C) {
	for a.Clickable.Clicked(gtx) {
		a.Action.Do()
	}
}

func ActionButton(gtx C, th *Theme, a *ActionClickable, text string) material.ButtonStyle {
	a.update(gtx)
	ret := LowEmphasisButton(&th.Material, &a.Clickable, text)
	if !a.Action.Enabled() {
		ret.Color = disabledTextColor
	}
	return ret
}

// ActionIcon returns an icon button for the action, with a tooltip.
func ActionIcon(gtx C, th *Theme, a *ActionClickable, icon []byte, tip string) layout.Widget {
	a.update(gtx)
	btn := IconButton(&th.Material, &a.Clickable, icon, tip, a.Action.Enabled())
	return func(gtx C) D {
		return a.tipArea.Layout(gtx, Tooltip(th, tip), btn.Layout)
	}
}

func IconButton(th *material.Theme, w *widget.Clickable, icon []byte, description string, enabled bool) material.IconButtonStyle {
	ret := material.IconButton(th, w, widgetForIcon(icon), description)
	ret.Background = transparent
	ret.Inset = layout.UniformInset(unit.Dp(6))
	if enabled {
		ret.Color = primaryColor
	} else {
		ret.Color = disabledTextColor
	}
	return ret
}

func LowEmphasisButton(th *material.Theme, w *widget.Clickable, text string) material.ButtonStyle {
	ret := material.Button(th, w, text)
	ret.Color = th.Palette.Fg
	ret.Background = transparent
	ret.Inset = layout.UniformInset(unit.Dp(6))
	return ret
}

func HighEmphasisButton(th *material.Theme, w *widget.Clickable, text string) material.ButtonStyle {
	ret := material.Button(th, w, text)
	ret.Color = th.Palette.ContrastFg
	ret.Background = th.Palette.Fg
	ret.Inset = layout.UniformInset(unit.Dp(6))
	return ret
}
