// Package icon draws the clapboard application icon.
package icon

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/bollyword/mkicons/fontmgr"
)

// Text is the lettering under the clapboard.
const Text = "MM"

// textDPI makes font points equal to pixels.
const textDPI = 72

var (
	BadgeColor  = color.RGBA{0x8B, 0x15, 0x38, 0xff} // #8B1538
	GoldColor   = color.RGBA{0xFF, 0xD7, 0x00, 0xff} // #FFD700
	BaseColor   = color.RGBA{45, 45, 45, 0xff}
	StripeColor = color.RGBA{26, 26, 26, 0xff}
)

var (
	// ErrUnavailable is returned by Open if the binary was built without
	// the imaging backend.
	ErrUnavailable = errors.New("imaging backend unavailable")
	ErrInvalidSize = errors.New("invalid icon size")
)

// FaceLoader returns a font face of the given size in points.
type FaceLoader func(size float64) font.Face

// Renderer draws icons.  It holds no state between calls.
type Renderer struct {
	fontFiles []string
	loadFace  FaceLoader
}

type Option func(*Renderer)

// WithFontFiles sets the font files to try, in order, instead of the font
// catalogue.
func WithFontFiles(filenames ...string) Option {
	return func(r *Renderer) {
		r.fontFiles = filenames
	}
}

// WithFaceLoader sets a custom face loader.  It takes precedence over
// WithFontFiles.
func WithFaceLoader(fn FaceLoader) Option {
	return func(r *Renderer) {
		r.loadFace = fn
	}
}

// Open returns a new Renderer.  It returns an error wrapping ErrUnavailable
// if the imaging backend is not compiled in.
func Open(opts ...Option) (*Renderer, error) {
	if err := backend(); err != nil {
		return nil, fmt.Errorf("icon: %w", err)
	}
	r := &Renderer{}
	for _, opt := range opts {
		opt(r)
	}
	if r.loadFace == nil {
		r.loadFace = func(size float64) font.Face {
			return fontmgr.LoadSerifBold(size, textDPI, r.fontFiles...)
		}
	}
	return r, nil
}

// Generate draws the icon of size×size pixels on a transparent canvas.
func (r *Renderer) Generate(size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	l := NewLayout(size)
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	dc := gg.NewContextForRGBA(img)
	fillRoundedRect(dc, l.Badge, l.BadgeRadius, BadgeColor)
	strokeRoundedRect(dc, l.Border, l.BorderRadius, l.BorderWidth, GoldColor)

	fillRect(img, l.Base, BaseColor)
	fillRect(img, l.Lid, GoldColor)
	for _, s := range l.Stripes {
		fillRect(img, s, StripeColor)
	}

	face := r.loadFace(l.FontSize)
	if face == nil {
		face = fontmgr.DefaultFont
	}
	drawText(img, face, Text, l.TextTop, GoldColor)

	slog.Debug("icon generated", "size", size, "stripes", len(l.Stripes))
	return img, nil
}

// drawText draws a single line of text centred horizontally, with the top of
// the line at top.
func drawText(img *image.RGBA, face font.Face, text string, top int, col color.Color) {
	bounds, _ := font.BoundString(face, text)
	width := (bounds.Max.X - bounds.Min.X).Ceil()
	x := (img.Bounds().Dx() - width) / 2

	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x) - bounds.Min.X, Y: fixed.I(top) + face.Metrics().Ascent},
	}
	d.DrawString(text)
}
