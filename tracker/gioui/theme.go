package gioui

import (
	"image/color"

	"gioui.org/font/gofont"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

type Theme struct {
	Material material.Theme
	Tooltip  struct {
		Bg    color.NRGBA
		Color color.NRGBA
	}
}

var fontCollection = gofont.Collection()

var white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
var black = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
var transparent = color.NRGBA{A: 0}

var primaryColor = color.NRGBA{R: 206, G: 147, B: 216, A: 255}
var secondaryColor = color.NRGBA{R: 128, G: 222, B: 234, A: 255}

var highEmphasisTextColor = color.NRGBA{R: 222, G: 222, B: 222, A: 222}
var mediumEmphasisTextColor = color.NRGBA{R: 153, G: 153, B: 153, A: 153}
var disabledTextColor = color.NRGBA{R: 255, G: 255, B: 255, A: 97}

var backgroundColor = color.NRGBA{R: 18, G: 18, B: 18, A: 255}
var songSurfaceColor = color.NRGBA{R: 37, G: 37, B: 38, A: 255}

var labelDefaultFont = fontCollection[6].Font
var labelDefaultFontSize = unit.Sp(18)

var popupSurfaceColor = color.NRGBA{R: 50, G: 50, B: 51, A: 255}
var popupShadowColor = color.NRGBA{R: 0, G: 0, B: 0, A: 192}
var dialogBgColor = color.NRGBA{R: 0, G: 0, B: 0, A: 224}

var numberInputBgColor = color.NRGBA{R: 255, G: 255, B: 255, A: 3}
var editorBgColor = color.NRGBA{R: 255, G: 255, B: 255, A: 8}

var tooltipBgColor = color.NRGBA{R: 60, G: 60, B: 61, A: 255}

func NewTheme() *Theme {
	th := &Theme{Material: *material.NewTheme()}
	th.Material.Shaper = text.NewShaper(text.WithCollection(fontCollection))
	th.Material.Palette.Bg = backgroundColor
	th.Material.Palette.Fg = primaryColor
	th.Material.Palette.ContrastBg = primaryColor
	th.Material.Palette.ContrastFg = black
	th.Material.TextSize = unit.Sp(16)
	th.Tooltip.Bg = tooltipBgColor
	th.Tooltip.Color = white
	return th
}
