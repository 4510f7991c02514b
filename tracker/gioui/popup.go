package gioui

import (
	"image"
	"image/color"

	"gioui.org/io/event"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
)

// PopupStyle draws a rounded surface with a drop shadow on top of everything
// else. Pointer events outside the surface are swallowed, so the widgets
// underneath a modal popup cannot be clicked.
type PopupStyle struct {
	SurfaceColor color.NRGBA
	ShadowColor  color.NRGBA
	Shadow       unit.Dp
	Radius       unit.Dp
}

func Popup() PopupStyle {
	return PopupStyle{
		SurfaceColor: popupSurfaceColor,
		ShadowColor:  popupShadowColor,
		Shadow:       unit.Dp(2),
		Radius:       unit.Dp(6),
	}
}

func (s PopupStyle) Layout(gtx C, contents layout.Widget) D {
	bg := func(gtx C) D {
		rrect := clip.UniformRRect(image.Rectangle{Max: gtx.Constraints.Min}, gtx.Dp(s.Radius))
		shadow := rrect
		d := gtx.Dp(s.Shadow)
		shadow.Rect.Min = shadow.Rect.Min.Sub(image.Pt(d, d))
		shadow.Rect.Max = shadow.Rect.Max.Add(image.Pt(d, d))
		paint.FillShape(gtx.Ops, s.ShadowColor, shadow.Op(gtx.Ops))
		paint.FillShape(gtx.Ops, s.SurfaceColor, rrect.Op(gtx.Ops))
		area := clip.Rect(image.Rect(-1e6, -1e6, 1e6, 1e6)).Push(gtx.Ops)
		event.Op(gtx.Ops, &modalTag)
		area.Pop()
		return D{Size: gtx.Constraints.Min}
	}
	macro := op.Record(gtx.Ops)
	dims := layout.Stack{}.Layout(gtx,
		layout.Expanded(bg),
		layout.Stacked(contents),
	)
	op.Defer(gtx.Ops, macro.Stop())
	return dims
}

var modalTag bool
