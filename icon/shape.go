package icon

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
)

// fillRect fills rect with col, replacing what was there.
func fillRect(dst draw.Image, rect image.Rectangle, col color.Color) {
	draw.Draw(dst, rect, image.NewUniform(col), image.Point{}, draw.Src)
}

// fillRoundedRect draws an anti-aliased filled rounded rectangle.
func fillRoundedRect(dc *gg.Context, rect image.Rectangle, radius int, col color.Color) {
	if rect.Empty() {
		return
	}
	x, y := float64(rect.Min.X), float64(rect.Min.Y)
	w, h := float64(rect.Dx()), float64(rect.Dy())
	roundedRectangle(dc, x, y, w, h, float64(radius))
	dc.SetColor(col)
	dc.Fill()
}

// strokeRoundedRect draws the outline of a rounded rectangle, width pixels
// thick, inside rect.
func strokeRoundedRect(dc *gg.Context, rect image.Rectangle, radius, width int, col color.Color) {
	if rect.Empty() || width <= 0 {
		return
	}
	lw := float64(width)
	// the pen is centred on the path, so the path runs half a pen inside.
	x, y := float64(rect.Min.X)+lw/2, float64(rect.Min.Y)+lw/2
	w, h := float64(rect.Dx())-lw, float64(rect.Dy())-lw
	if w <= 0 || h <= 0 {
		fillRoundedRect(dc, rect, radius, col)
		return
	}
	roundedRectangle(dc, x, y, w, h, float64(radius)-lw/2)
	dc.SetColor(col)
	dc.SetLineWidth(lw)
	dc.Stroke()
}

// roundedRectangle adds the rounded rectangle path to dc.  The radius is
// clamped to half of the shorter side.
func roundedRectangle(dc *gg.Context, x, y, w, h, radius float64) {
	r := min(radius, w/2, h/2)
	if r <= 0 {
		dc.DrawRectangle(x, y, w, h)
		return
	}
	dc.DrawRoundedRectangle(x, y, w, h, r)
}
