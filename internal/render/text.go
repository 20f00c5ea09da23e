package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/rook-computer/tiergen/internal/render/layout"
	"github.com/rook-computer/tiergen/internal/textwrap"
)

// newFace parses ttf and returns a face whose em is sizePx pixels tall.
func newFace(ttf []byte, sizePx float64) (font.Face, error) {
	tt, err := truetype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	// DPI 72 makes points and pixels coincide.
	return truetype.NewFace(tt, &truetype.Options{Size: sizePx, DPI: 72, Hinting: font.HintingNone}), nil
}

// drawTextWithShadow draws text in the shadow colour shifted by the layout's
// shadow offset, then draws it again in the text colour at anchor.
func (l Layout) drawTextWithShadow(img draw.Image, face font.Face, text string, anchor image.Point) {
	l.drawText(img, face, text, layout.Shift(anchor, l.ShadowOffset), l.ShadowColor)
	l.drawText(img, face, text, anchor, l.TextColor)
}

// drawText wraps text at the layout's wrap width and draws each line
// left-aligned, with anchor as the top-left corner of the first line.
func (l Layout) drawText(img draw.Image, face font.Face, text string, anchor image.Point, fg color.Color) {
	lines := textwrap.Wrap(text, l.WrapWidth)
	ascent := face.Metrics().Ascent.Ceil()
	drawer := &font.Drawer{Dst: img, Src: image.NewUniform(fg), Face: face}
	for i, origin := range layout.LineOrigins(anchor, len(lines), l.LineHeight()) {
		drawer.Dot = fixed.P(origin.X, origin.Y+ascent)
		drawer.DrawString(lines[i])
	}
}
