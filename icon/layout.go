package icon

import "image"

// Layout holds the geometry of the icon for a given size.  All values are
// derived from Size by integer division.
type Layout struct {
	Size int

	Badge       image.Rectangle
	BadgeRadius int

	Border       image.Rectangle
	BorderRadius int
	BorderWidth  int

	// Base is the body of the clapboard, Lid is the strip directly above it.
	Base        image.Rectangle
	Lid         image.Rectangle
	StripeWidth int
	Stripes     []image.Rectangle

	TextTop  int
	FontSize float64
}

// NewLayout computes the layout for an icon of size×size pixels.
func NewLayout(size int) Layout {
	margin := size / 20
	borderMargin := size / 15
	borderWidth := max(size/64, 1)

	clapWidth := size / 3
	clapHeight := size / 5
	clapX := (size - clapWidth) / 2
	clapY := size / 3
	lidHeight := clapHeight / 4

	l := Layout{
		Size:         size,
		Badge:        image.Rect(margin, margin, size-margin, size-margin),
		BadgeRadius:  size / 8,
		Border:       image.Rect(borderMargin, borderMargin, size-borderMargin, size-borderMargin),
		BorderRadius: size / 10,
		BorderWidth:  borderWidth,
		Base:         image.Rect(clapX, clapY, clapX+clapWidth, clapY+clapHeight),
		Lid:          image.Rect(clapX, clapY-lidHeight, clapX+clapWidth, clapY),
		StripeWidth:  clapWidth / 6,
		TextTop:      size - size/4,
		FontSize:     float64(size / 12),
	}
	l.Stripes = stripes(l.Lid, l.StripeWidth)
	return l
}

// stripes returns the dark stripes of the lid: one stripe-width wide,
// starting at every even multiple of the stripe width.  The last stripe may
// overhang the right edge of the lid.
func stripes(lid image.Rectangle, width int) []image.Rectangle {
	if width <= 0 {
		return nil
	}
	var ss []image.Rectangle
	for x := 0; x < lid.Dx(); x += 2 * width {
		ss = append(ss, image.Rect(lid.Min.X+x, lid.Min.Y, lid.Min.X+x+width, lid.Max.Y))
	}
	return ss
}
