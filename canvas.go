package overlay

import (
	"unicode/utf8"

	"golang.org/x/image/font/basicfont"
)

// TextMetrics measures text without drawing it.
type TextMetrics interface {
	MeasureText(s string, size int, bold bool) Vec2
}

// Canvas is the drawing surface widgets render onto.
type Canvas interface {
	TextMetrics

	// FillRect paints a solid rectangle.
	FillRect(r Rect, color uint32)

	// DrawText paints s so that its anchor point align lies on at, and
	// returns the rectangle the text covers.
	DrawText(s string, size int, bold bool, color uint32, at Vec2, align Align) Rect
}

// Glyph atlas layout shared by DrawList and the OpenGL font texture:
// ASCII 32-127 in a 16x6 grid of basicfont 7x13 cells.
const (
	GlyphCols = 16
	GlyphRows = 6
)

// GlyphCell returns the pixel size of one atlas cell.
func GlyphCell() (w, h int) {
	return basicfont.Face7x13.Advance, basicfont.Face7x13.Height
}

// MonoMetrics measures text as a scaled monospace bitmap font, matching
// what DrawList renders.
type MonoMetrics struct{}

// MeasureText returns the size of s at the given pixel size.
func (MonoMetrics) MeasureText(s string, size int, bold bool) Vec2 {
	cw, ch := monoCell(size)
	n := utf8.RuneCountInString(s)
	w := float32(n) * cw
	if bold && n > 0 {
		w++
	}
	return Vec2{X: w, Y: ch}
}

// monoCell scales the atlas cell to a text size.
func monoCell(size int) (w, h float32) {
	gw, gh := GlyphCell()
	scale := float32(size) / float32(gh)
	return float32(gw) * scale, float32(gh) * scale
}
