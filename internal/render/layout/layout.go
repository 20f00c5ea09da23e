package layout

import "image"

// Square returns the rectangle of a sizePx by sizePx canvas at the origin.
func Square(sizePx int) image.Rectangle {
	if sizePx < 0 {
		sizePx = 0
	}
	return image.Rect(0, 0, sizePx, sizePx)
}

// Shift moves point down and to the right by offsetPx on both axes.
func Shift(point image.Point, offsetPx int) image.Point {
	return point.Add(image.Pt(offsetPx, offsetPx))
}

// AnchorBottomLeft returns the point xPx from the left edge of rect and
// bottomPx above its bottom edge.
func AnchorBottomLeft(rect image.Rectangle, xPx, bottomPx int) image.Point {
	rect = Normalize(rect)
	return image.Pt(rect.Min.X+xPx, rect.Max.Y-bottomPx)
}

// LineOrigins returns the top-left origin of each of count left-aligned lines
// starting at anchor and advancing lineHeightPx downwards.
func LineOrigins(anchor image.Point, count, lineHeightPx int) []image.Point {
	if count <= 0 {
		return nil
	}
	out := make([]image.Point, count)
	for i := range out {
		out[i] = image.Pt(anchor.X, anchor.Y+i*lineHeightPx)
	}
	return out
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}
