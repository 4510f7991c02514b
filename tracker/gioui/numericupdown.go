package gioui

import (
	"image"
	"image/color"

	"gioui.org/font"
	"gioui.org/gesture"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/x/component"
	"github.com/beeptrack/beeptrack/tracker"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

// NumberInput is the state of a stepper bound to a tracker.Int. Every click
// on the +/- buttons, and every step of a drag, records one change.
type NumberInput struct {
	Int            tracker.Int
	dragStartValue int
	dragStartXY    float32
	clickDecrease  gesture.Click
	clickIncrease  gesture.Click
	tipArea        component.TipArea
}

type NumericUpDownStyle struct {
	NumberInput     *NumberInput
	Color           color.NRGBA
	Font            font.Font
	TextSize        unit.Sp
	IconColor       color.NRGBA
	BackgroundColor color.NRGBA
	CornerRadius    unit.Dp
	ButtonWidth     unit.Dp
	UnitsPerStep    unit.Dp
	Tooltip         component.Tooltip
	Width           unit.Dp
	Height          unit.Dp
	shaper          *text.Shaper
}

func NewNumberInput(v tracker.Int) *NumberInput {
	return &NumberInput{Int: v}
}

func NumericUpDown(th *Theme, number *NumberInput, tooltip string) NumericUpDownStyle {
	return NumericUpDownStyle{
		NumberInput:     number,
		Color:           white,
		IconColor:       th.Material.Palette.Fg,
		BackgroundColor: numberInputBgColor,
		CornerRadius:    unit.Dp(4),
		ButtonWidth:     unit.Dp(16),
		UnitsPerStep:    unit.Dp(8),
		TextSize:        th.Material.TextSize * 14 / 16,
		Tooltip:         Tooltip(th, tooltip),
		Width:           unit.Dp(70),
		Height:          unit.Dp(20),
		shaper:          th.Material.Shaper,
	}
}

func (s *NumericUpDownStyle) Update(gtx C) {
	in := s.NumberInput
	pxPerStep := float32(gtx.Dp(s.UnitsPerStep))
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: in,
			Kinds:  pointer.Press | pointer.Drag | pointer.Release,
		})
		if !ok {
			break
		}
		if e, ok := ev.(pointer.Event); ok {
			switch e.Kind {
			case pointer.Press:
				in.dragStartValue = in.Int.Value()
				in.dragStartXY = e.Position.X - e.Position.Y
			case pointer.Drag:
				delta := e.Position.X - e.Position.Y - in.dragStartXY
				in.Int.SetValue(in.dragStartValue + int(delta/pxPerStep+0.5))
			}
		}
	}
	for ev, ok := in.clickDecrease.Update(gtx.Source); ok; ev, ok = in.clickDecrease.Update(gtx.Source) {
		if ev.Kind == gesture.KindClick {
			in.Int.Add(-1)
		}
	}
	for ev, ok := in.clickIncrease.Update(gtx.Source); ok; ev, ok = in.clickIncrease.Update(gtx.Source) {
		if ev.Kind == gesture.KindClick {
			in.Int.Add(1)
		}
	}
}

func (s NumericUpDownStyle) Layout(gtx C) D {
	if s.Tooltip.Text.Text != "" {
		return s.NumberInput.tipArea.Layout(gtx, s.Tooltip, s.actualLayout)
	}
	return s.actualLayout(gtx)
}

func (s *NumericUpDownStyle) actualLayout(gtx C) D {
	s.Update(gtx)
	gtx.Constraints = layout.Exact(image.Pt(gtx.Dp(s.Width), gtx.Dp(s.Height)))
	width := gtx.Dp(s.ButtonWidth)
	height := gtx.Dp(s.Height)
	button := func(click *gesture.Click, icon []byte) layout.Widget {
		return func(gtx C) D {
			gtx.Constraints = layout.Exact(image.Pt(width, height))
			return layout.Background{}.Layout(gtx,
				func(gtx C) D {
					defer clip.Rect(image.Rectangle{Max: gtx.Constraints.Min}).Push(gtx.Ops).Pop()
					click.Add(gtx.Ops)
					return D{Size: gtx.Constraints.Min}
				},
				func(gtx C) D { return widgetForIcon(icon).Layout(gtx, s.IconColor) },
			)
		}
	}
	return layout.Background{}.Layout(gtx,
		func(gtx C) D {
			defer clip.UniformRRect(image.Rectangle{Max: gtx.Constraints.Min}, gtx.Dp(s.CornerRadius)).Push(gtx.Ops).Pop()
			paint.Fill(gtx.Ops, s.BackgroundColor)
			event.Op(gtx.Ops, s.NumberInput) // drag area, below the buttons
			return D{Size: gtx.Constraints.Min}
		},
		func(gtx C) D {
			return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
				layout.Rigid(button(&s.NumberInput.clickDecrease, icons.ContentRemove)),
				layout.Flexed(1, func(gtx C) D {
					paint.ColorOp{Color: s.Color}.Add(gtx.Ops)
					return widget.Label{Alignment: text.Middle}.Layout(gtx, s.shaper, s.Font, s.TextSize, s.NumberInput.Int.String(), op.CallOp{})
				}),
				layout.Rigid(button(&s.NumberInput.clickIncrease, icons.ContentAdd)),
			)
		},
	)
}
