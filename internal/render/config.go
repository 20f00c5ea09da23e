package render

import (
	"image"
	"image/color"
	"math"
)

// Layout holds the fixed geometry and colours of a rendered portrait.
// Text offsets are tuned for Size, so changing one usually means changing all.
type Layout struct {
	// Size is the width and height every raster is resized to.
	Size int

	FontSize  float64
	WrapWidth int // characters per line

	TitleAnchor image.Point
	// NameX and NameBottom place the name anchor at (NameX, Size-NameBottom).
	NameX      int
	NameBottom int

	ShadowOffset int

	TextColor   color.NRGBA
	ShadowColor color.NRGBA
}

// DefaultLayout matches the in-game tier list look.
var DefaultLayout = Layout{
	Size:         600,
	FontSize:     50,
	WrapWidth:    15,
	TitleAnchor:  image.Pt(22, 14),
	NameX:        71,
	NameBottom:   130,
	ShadowOffset: 5,
	TextColor:    color.NRGBA{R: 0xFF, G: 0xD9, B: 0x00, A: 0xFF}, // #ffd900
	ShadowColor:  color.NRGBA{R: 0x1E, G: 0x1E, B: 0x1E, A: 0xFF}, // #1e1e1e
}

// LineHeight is the vertical advance between wrapped lines.
func (l Layout) LineHeight() int {
	return int(math.Round(l.FontSize * 1.5))
}
