package gioui

import (
	"gioui.org/layout"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"github.com/beeptrack/beeptrack/tracker"
	"github.com/beeptrack/beeptrack/version"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

// SongPanel shows the song size with a stepper per parameter, and the
// toolbar of document actions.
type SongPanel struct {
	Steppers [len(tracker.Params)]*NumberInput

	UndoBtn     *ActionClickable
	RedoBtn     *ActionClickable
	SaveBtn     *ActionClickable
	SongSizeBtn *ActionClickable
}

var stepperTips = [len(tracker.Params)]string{
	tracker.ParamBeats:       "Beats per bar",
	tracker.ParamBars:        "Bars per song",
	tracker.ParamPatterns:    "Patterns per channel",
	tracker.ParamInstruments: "Instruments per channel",
}

func NewSongPanel(t *Tracker) *SongPanel {
	ret := &SongPanel{
		UndoBtn:     NewActionClickable(t.Doc.Undo()),
		RedoBtn:     NewActionClickable(t.Doc.Redo()),
		SaveBtn:     NewActionClickable(t.SaveSong()),
		SongSizeBtn: NewActionClickable(t.Prompts.SongSize(t.Doc)),
	}
	for _, p := range tracker.Params {
		ret.Steppers[p] = NewNumberInput(t.Doc.Param(p))
	}
	return ret
}

func (s *SongPanel) Layout(gtx C, t *Tracker) D {
	th := t.Theme
	paint.Fill(gtx.Ops, songSurfaceColor)
	keys := t.keyMap
	toolbar := func(gtx C) D {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(ActionIcon(gtx, th, s.UndoBtn, icons.ContentUndo, keys.Hint("Undo", " (%s)", "Undo"))),
			layout.Rigid(ActionIcon(gtx, th, s.RedoBtn, icons.ContentRedo, keys.Hint("Redo", " (%s)", "Redo"))),
			layout.Rigid(ActionIcon(gtx, th, s.SaveBtn, icons.ContentSave, keys.Hint("Save song", " (%s)", "SaveSong"))),
			layout.Rigid(ActionButton(gtx, th, s.SongSizeBtn, "Song size...").Layout),
			layout.Flexed(1, func(gtx C) D {
				return layout.E.Layout(gtx, LabelStyle{
					Text:      version.VersionOrHash,
					Color:     disabledTextColor,
					Font:      labelDefaultFont,
					FontSize:  unit.Sp(12),
					Alignment: layout.E,
					Shaper:    th.Material.Shaper,
				}.Layout)
			}),
		)
	}
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(toolbar),
		layout.Rigid(func(gtx C) D {
			return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx C) D {
				return s.layoutSteppers(gtx, th)
			})
		}),
	)
}

func (s *SongPanel) layoutSteppers(gtx C, th *Theme) D {
	rows := make([]layout.FlexChild, 0, len(s.Steppers))
	for _, p := range tracker.Params {
		rows = append(rows, layout.Rigid(func(gtx C) D {
			return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
				layout.Rigid(func(gtx C) D {
					gtx.Constraints.Min.X = gtx.Dp(unit.Dp(140))
					return Label(p.String()+":", mediumEmphasisTextColor, th.Material.Shaper)(gtx)
				}),
				layout.Rigid(NumericUpDown(th, s.Steppers[p], stepperTips[p]).Layout),
			)
		}))
	}
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx, rows...)
}
